package contact

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPConfig holds the mail relay settings for SMTPSender.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

// SMTPSender mails each submission to the site owner.
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender builds a sender that relays through cfg.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

var errSMTPCredentials = errors.New("SMTP credentials not configured")

func (s *SMTPSender) Send(ctx context.Context, fields Fields) error {
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return errSMTPCredentials
	}

	msg := composeMessage(s.cfg.Username, s.cfg.To, fields)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)

	// net/smtp has no context support; abandon the wait instead.
	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(addr, auth, s.cfg.Username, []string{s.cfg.To}, msg)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send to %s: %w", addr, err)
		}
		return nil
	}
}

func composeMessage(from, to string, fields Fields) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(fields.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, fields.Name, fields.Email, fields.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe(fields.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe keeps visitor input from injecting extra mail headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
