package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/visitors"
	"github.com/Zachkp/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the web server",
	RunE:    runServe,
}

func init() {
	addServeFlags(serveCmd)
}

func addServeFlags(c *cobra.Command) {
	c.Flags().IntP("port", "p", 0, "port to listen on")
	c.Flags().String("host", "", "host to bind")
	c.Flags().String("sender", "", "contact delivery: stub, log or smtp")
}

// bindServeFlags binds only the flags the user set so unset ones do not
// shadow environment or file values.
func bindServeFlags(c *cobra.Command, v *viper.Viper) {
	for flag, key := range map[string]string{
		"port":   "server.port",
		"host":   "server.host",
		"sender": "contact.sender",
	} {
		if f := c.Flags().Lookup(flag); f != nil && f.Changed {
			_ = v.BindPFlag(key, f)
		}
	}
}

func runServe(c *cobra.Command, _ []string) error {
	v := viper.GetViper()
	bindServeFlags(c, v)

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store *visitors.Store
	if cfg.Visitors.Enabled {
		store, err = visitors.Open(ctx, cfg.Visitors.DSN, "", logging.Component(log, "visitors"))
		if err != nil {
			return fmt.Errorf("visitor tracking: %w", err)
		}
		defer store.Close()
		log.Info().Msg("privacy: visitor tracking enabled with hashed IP addresses")
	}

	sender, err := newSender(cfg, log)
	if err != nil {
		return err
	}
	contactLog := logging.Component(log, "contact")
	forms := contact.NewRegistry(func() *contact.Controller {
		return contact.NewController(sender,
			contact.WithResultTTL(cfg.Contact.ResultTTL),
			contact.WithMessages(cfg.Contact.SuccessText, cfg.Contact.FailureText),
			contact.WithLogger(contactLog),
		)
	}, cfg.Contact.IdleTimeout, contactLog, contact.WithMaxSessions(cfg.Contact.MaxSessions))

	srv, err := web.New(cfg, logging.Component(log, "web"), forms, store)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func newSender(cfg *config.Config, log zerolog.Logger) (contact.Sender, error) {
	switch cfg.Contact.Sender {
	case config.SenderStub:
		return contact.DelaySender{Delay: cfg.Contact.StubDelay}, nil
	case config.SenderLog:
		return contact.NewLogSender(log), nil
	case config.SenderSMTP:
		return contact.NewSMTPSender(contact.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			To:       cfg.SMTP.To,
		}), nil
	default:
		return nil, fmt.Errorf("unknown contact sender %q", cfg.Contact.Sender)
	}
}
