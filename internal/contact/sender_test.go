package contact

import (
	"bytes"
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelaySender(t *testing.T) {
	t.Run("succeeds after delay", func(t *testing.T) {
		start := time.Now()
		err := DelaySender{Delay: 10 * time.Millisecond}.Send(context.Background(), Fields{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("returns configured error", func(t *testing.T) {
		boom := errors.New("boom")
		assert.ErrorIs(t, DelaySender{Err: boom}.Send(context.Background(), Fields{}), boom)
	})

	t.Run("honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := DelaySender{Delay: time.Hour}.Send(ctx, Fields{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSender(zerolog.New(&buf))

	require.NoError(t, s.Send(context.Background(), Fields{Name: "Ada", Email: "ada@x.com", Message: "Hi"}))
	out := buf.String()
	assert.Contains(t, out, `"component":"contact_delivery"`)
	assert.Contains(t, out, `"email":"ada@x.com"`)
	assert.Contains(t, out, `"message_len":2`)
}

func TestSMTPSender(t *testing.T) {
	cfg := SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "me@example.com", Password: "secret", To: "inbox@example.com"}

	t.Run("missing credentials", func(t *testing.T) {
		s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587"})
		assert.ErrorIs(t, s.Send(context.Background(), Fields{}), errSMTPCredentials)
	})

	t.Run("composes message", func(t *testing.T) {
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		s := NewSMTPSender(cfg)
		s.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		}

		err := s.Send(context.Background(), Fields{Name: "Ada\r\nBcc: x@y.z", Email: "ada@x.com", Message: "Hi there"})
		require.NoError(t, err)
		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.Equal(t, "me@example.com", gotFrom)
		assert.Equal(t, []string{"inbox@example.com"}, gotTo)

		headers, body, found := strings.Cut(string(gotMsg), "\r\n\r\n")
		require.True(t, found, "headers and body are separated by a blank line")
		assert.Contains(t, headers, "Subject: Portfolio Contact: Ada  Bcc: x@y.z")
		assert.Contains(t, headers, "Reply-To: ada@x.com")
		assert.NotContains(t, headers, "\r\nBcc:", "header injection must be neutralised")
		assert.Contains(t, body, "Hi there")
	})

	t.Run("wraps relay errors", func(t *testing.T) {
		s := NewSMTPSender(cfg)
		s.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("535 auth failed")
		}
		err := s.Send(context.Background(), Fields{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "smtp send to smtp.example.com:587")
	})

	t.Run("abandons on cancel", func(t *testing.T) {
		s := NewSMTPSender(cfg)
		block := make(chan struct{})
		defer close(block)
		s.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			<-block
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, s.Send(ctx, Fields{}), context.DeadlineExceeded)
	})
}
