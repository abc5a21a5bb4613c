package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) last(t *testing.T) *fakeTimer {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.timers, "no timer scheduled")
	return s.timers[len(s.timers)-1]
}

// blockingSender holds every Send until release is closed.
type blockingSender struct {
	entered chan Fields
	release chan struct{}
	err     error
}

func newBlockingSender(err error) *blockingSender {
	return &blockingSender{entered: make(chan Fields, 1), release: make(chan struct{}), err: err}
}

func (b *blockingSender) Send(ctx context.Context, f Fields) error {
	b.entered <- f
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.release:
		return b.err
	}
}

func fill(c *Controller, name, email, message string) {
	c.UpdateField(FieldName, name)
	c.UpdateField(FieldEmail, email)
	c.UpdateField(FieldMessage, message)
}

func TestUpdateFieldLastWriteWins(t *testing.T) {
	c := NewController(DelaySender{})

	c.UpdateField(FieldName, "A")
	c.UpdateField(FieldEmail, "a@x.com")
	c.UpdateField(FieldName, "Ada")
	c.UpdateField(FieldMessage, "  untrimmed  ")

	got := c.State().Fields
	assert.Equal(t, Fields{Name: "Ada", Email: "a@x.com", Message: "  untrimmed  "}, got)
	assert.Equal(t, PhaseIdle, c.State().Phase)
	assert.Nil(t, c.State().Result)
}

func TestSubmitEntersSubmittingBeforeSendResolves(t *testing.T) {
	sender := newBlockingSender(nil)
	c := NewController(sender, WithScheduler(&fakeScheduler{}))
	fill(c, "Ada", "ada@x.com", "Hi")

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()

	sent := <-sender.entered
	assert.Equal(t, "Ada", sent.Name)

	state := c.State()
	assert.Equal(t, PhaseSubmitting, state.Phase)
	assert.True(t, state.Submitting())
	assert.Nil(t, state.Result)

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(sender.release)
	require.NoError(t, <-done)
	assert.Equal(t, PhaseIdle, c.State().Phase)
}

func TestSubmitSuccessClearsFieldsAndSchedulesClear(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewController(DelaySender{}, WithScheduler(sched))
	fill(c, "Ada", "ada@x.com", "Hi")

	result, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ResultMessage{Success: true, Text: "Your message has been sent! I'll get back to you soon."}, result)

	state := c.State()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.True(t, state.Fields.IsZero())
	require.NotNil(t, state.Result)
	assert.True(t, state.Result.Success)

	timer := sched.last(t)
	assert.Equal(t, 5*time.Second, timer.d)
	timer.f()
	assert.Nil(t, c.State().Result)
}

func TestSubmitFailurePreservesFields(t *testing.T) {
	boom := errors.New("relay down")
	sched := &fakeScheduler{}
	c := NewController(DelaySender{Err: boom}, WithScheduler(sched))
	fill(c, "Ada", "ada@x.com", "Hi")

	result, err := c.Submit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.ErrorIs(t, err, boom)
	assert.False(t, result.Success)
	assert.Equal(t, FailureText, result.Text)

	state := c.State()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Equal(t, Fields{Name: "Ada", Email: "ada@x.com", Message: "Hi"}, state.Fields)
	require.NotNil(t, state.Result)
	assert.False(t, state.Result.Success)

	sched.last(t).f()
	assert.Nil(t, c.State().Result)
}

func TestResubmitIsIsolatedFromPreviousAttempt(t *testing.T) {
	sched := &fakeScheduler{}
	var fail bool
	sender := SenderFunc(func(ctx context.Context, f Fields) error {
		if fail {
			return errors.New("nope")
		}
		return nil
	})
	c := NewController(sender, WithScheduler(sched))

	fill(c, "Ada", "ada@x.com", "Hi")
	_, err := c.Submit(context.Background())
	require.NoError(t, err)
	first := sched.last(t)

	fail = true
	fill(c, "Grace", "grace@x.com", "Hello")
	result, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrSendFailed)
	assert.False(t, result.Success)

	assert.True(t, first.stopped, "earlier clear timer must be cancelled by a new submission")
	// A stale timer firing anyway must not clear the newer banner.
	first.f()
	state := c.State()
	require.NotNil(t, state.Result)
	assert.False(t, state.Result.Success)
	assert.Equal(t, "Grace", state.Fields.Name)

	second := sched.last(t)
	assert.NotSame(t, first, second)
	second.f()
	assert.Nil(t, c.State().Result)
}

func TestSubmitClearsBannerWhenStarting(t *testing.T) {
	sched := &fakeScheduler{}
	sender := newBlockingSender(nil)
	c := NewController(sender, WithScheduler(sched))

	go func() { <-sender.entered; sender.release <- struct{}{} }()
	_, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, c.State().Result)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = c.Submit(context.Background())
	}()
	<-sender.entered
	assert.Nil(t, c.State().Result)
	close(sender.release)
	<-done
}

func TestCloseCancelsInFlightSend(t *testing.T) {
	sched := &fakeScheduler{}
	sender := newBlockingSender(nil)
	c := NewController(sender, WithScheduler(sched))
	fill(c, "Ada", "ada@x.com", "Hi")

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()
	<-sender.entered

	c.Close()
	assert.ErrorIs(t, <-done, ErrClosed)
	assert.Empty(t, sched.timers, "no clear timer after teardown")
	assert.Equal(t, "Ada", c.State().Fields.Name)

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrClosed)

	c.UpdateField(FieldName, "ignored")
	assert.Equal(t, "Ada", c.State().Fields.Name)
}

func TestCloseStopsPendingClear(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewController(DelaySender{}, WithScheduler(sched))

	_, err := c.Submit(context.Background())
	require.NoError(t, err)
	timer := sched.last(t)

	c.Close()
	c.Close()
	assert.True(t, timer.stopped)

	timer.f()
	assert.NotNil(t, c.State().Result, "closed controller must not be mutated by its timer")
}

func TestExampleScenarioWithWallClock(t *testing.T) {
	if testing.Short() {
		t.Skip("uses real timers")
	}
	c := NewController(DelaySender{Delay: 20 * time.Millisecond}, WithResultTTL(60*time.Millisecond))
	defer c.Close()
	fill(c, "Ada", "ada@x.com", "Hi")

	start := time.Now()
	result, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.True(t, result.Success)
	assert.Equal(t, Fields{}, c.State().Fields)
	assert.NotNil(t, c.State().Result)

	assert.Eventually(t, func() bool {
		return c.State().Result == nil
	}, time.Second, 5*time.Millisecond)
}

func TestWithMessagesOverridesTexts(t *testing.T) {
	c := NewController(DelaySender{}, WithScheduler(&fakeScheduler{}), WithMessages("thanks", ""))

	result, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "thanks", result.Text)
	assert.Equal(t, DefaultResultTTL, c.ResultTTL())
}

func TestStateSnapshotIsDetached(t *testing.T) {
	c := NewController(DelaySender{}, WithScheduler(&fakeScheduler{}))
	_, err := c.Submit(context.Background())
	require.NoError(t, err)

	snap := c.State()
	snap.Result.Text = "mutated"
	assert.Equal(t, SuccessText, c.State().Result.Text)
}

func TestNewControllerRejectsNilSender(t *testing.T) {
	assert.PanicsWithValue(t, "contact: NewController called with nil Sender", func() {
		NewController(nil)
	})
}

func TestSubmitWithAppliesEditsOnlyWhenAccepted(t *testing.T) {
	sender := newBlockingSender(errors.New("relay down"))
	c := NewController(sender, WithScheduler(&fakeScheduler{}))
	c.UpdateField(FieldMessage, "Hi")

	done := make(chan error, 1)
	go func() {
		_, err := c.SubmitWith(context.Background(), map[Field]string{FieldName: "Ada", FieldEmail: "ada@x.com"})
		done <- err
	}()
	sent := <-sender.entered
	assert.Equal(t, Fields{Name: "Ada", Email: "ada@x.com", Message: "Hi"}, sent)

	_, err := c.SubmitWith(context.Background(), map[Field]string{FieldName: "Eve", FieldMessage: "spam"})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, sent, c.State().Fields, "rejected submission must not touch the fields")

	close(sender.release)
	assert.ErrorIs(t, <-done, ErrSendFailed)
	assert.Equal(t, sent, c.State().Fields)

	c.Close()
	_, err = c.SubmitWith(context.Background(), map[Field]string{FieldName: "Eve"})
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, "Ada", c.State().Fields.Name)
}
