// Package contact implements the contact form submission flow: field state,
// a single-flight submit lifecycle around an injected Sender, and a result
// banner that clears itself after a fixed delay.
package contact

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultResultTTL is how long a result banner stays on screen.
const DefaultResultTTL = 5 * time.Second

// Option configures a Controller.
type Option func(*Controller)

// WithResultTTL overrides how long the result banner is kept.
func WithResultTTL(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithScheduler replaces the timer source used for the banner auto-clear.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithLogger attaches a logger. Phase changes are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithMessages overrides the banner texts.
func WithMessages(success, failure string) Option {
	return func(c *Controller) {
		if success != "" {
			c.successText = success
		}
		if failure != "" {
			c.failureText = failure
		}
	}
}

// Controller owns one contact form. It is safe for concurrent use.
type Controller struct {
	send        Sender
	sched       Scheduler
	ttl         time.Duration
	successText string
	failureText string
	log         zerolog.Logger

	mu         sync.Mutex
	state      State
	gen        uint64
	clearTimer Timer
	cancelSend context.CancelFunc
	closed     bool
}

// NewController builds a controller that delivers through send. It panics
// if send is nil.
func NewController(send Sender, opts ...Option) *Controller {
	if send == nil {
		panic("contact: NewController called with nil Sender")
	}
	c := &Controller{
		send:        send,
		sched:       WallClock,
		ttl:         DefaultResultTTL,
		successText: SuccessText,
		failureText: FailureText,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the form.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	if s.Result != nil {
		r := *s.Result
		s.Result = &r
	}
	return s
}

// ResultTTL reports how long a banner stays up after a submission resolves.
func (c *Controller) ResultTTL() time.Duration {
	return c.ttl
}

// UpdateField overwrites one input. Updates after Close are dropped.
func (c *Controller) UpdateField(field Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state = c.state.WithField(field, value)
}

// Submit delivers the current fields and blocks until the send resolves.
//
// The phase moves to Submitting before the Sender is called. On return the
// controller is Idle again and the returned banner is on screen until the
// result TTL elapses or another submission starts. A failed delivery returns
// the failure banner together with an error wrapping ErrSendFailed.
func (c *Controller) Submit(ctx context.Context) (ResultMessage, error) {
	return c.SubmitWith(ctx, nil)
}

// SubmitWith is Submit with edits applied to the fields first. The edits are
// applied only once the submission is accepted: a rejected call (closed or
// already submitting) leaves the fields as they were.
func (c *Controller) SubmitWith(ctx context.Context, edits map[Field]string) (ResultMessage, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ResultMessage{}, ErrClosed
	}
	if c.state.Submitting() {
		c.mu.Unlock()
		return ResultMessage{}, ErrSubmissionInFlight
	}
	for field, value := range edits {
		c.state = c.state.WithField(field, value)
	}
	c.stopTimerLocked()
	c.gen++
	gen := c.gen
	c.transitionLocked(c.state.Begin())
	snapshot := c.state.Fields
	sendCtx, cancel := context.WithCancel(ctx)
	c.cancelSend = cancel
	c.mu.Unlock()

	started := time.Now()
	sendErr := c.send.Send(sendCtx, snapshot)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelSend = nil
	if c.closed || gen != c.gen {
		return ResultMessage{}, ErrClosed
	}

	var err error
	if sendErr != nil {
		err = fmt.Errorf("%w: %w", ErrSendFailed, sendErr)
		c.log.Warn().Err(sendErr).Dur("elapsed", time.Since(started)).Msg("contact message not delivered")
		c.transitionLocked(c.state.Fail(c.failureText))
	} else {
		c.log.Info().Dur("elapsed", time.Since(started)).Msg("contact message delivered")
		c.transitionLocked(c.state.Succeed(c.successText))
	}
	result := *c.state.Result
	c.transitionLocked(c.state.Settle())

	c.clearTimer = c.sched.AfterFunc(c.ttl, func() { c.expire(gen) })
	return result, err
}

// Close tears the controller down. A pending send is cancelled and its
// outcome discarded; a pending banner clear is stopped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopTimerLocked()
	if c.cancelSend != nil {
		c.cancelSend()
		c.cancelSend = nil
	}
}

func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return
	}
	c.clearTimer = nil
	c.state = c.state.ExpireResult()
	c.log.Debug().Msg("result banner cleared")
}

func (c *Controller) stopTimerLocked() {
	if c.clearTimer != nil {
		c.clearTimer.Stop()
		c.clearTimer = nil
	}
}

func (c *Controller) transitionLocked(next State) {
	if next.Phase != c.state.Phase {
		c.log.Debug().Stringer("from", c.state.Phase).Stringer("to", next.Phase).Msg("contact form transition")
	}
	c.state = next
}
