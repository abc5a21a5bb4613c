package contact

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sender delivers a contact message somewhere the site owner will read it.
type Sender interface {
	Send(ctx context.Context, fields Fields) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, fields Fields) error

func (fn SenderFunc) Send(ctx context.Context, fields Fields) error {
	return fn(ctx, fields)
}

// DefaultStubDelay is the simulated delivery latency of DelaySender.
const DefaultStubDelay = time.Second

// DelaySender pretends to deliver: it waits Delay and then returns Err.
// The zero value succeeds immediately.
type DelaySender struct {
	Delay time.Duration
	Err   error
}

func (s DelaySender) Send(ctx context.Context, _ Fields) error {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return s.Err
}

// LogSender writes the submission to the log and reports success.
type LogSender struct {
	logger zerolog.Logger
}

// NewLogSender constructs a logging sender.
func NewLogSender(logger zerolog.Logger) *LogSender {
	return &LogSender{logger: logger.With().Str("component", "contact_delivery").Logger()}
}

func (s *LogSender) Send(ctx context.Context, fields Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info().
		Str("name", fields.Name).
		Str("email", fields.Email).
		Int("message_len", len(fields.Message)).
		Msg("contact submission delivered to log")
	return nil
}
