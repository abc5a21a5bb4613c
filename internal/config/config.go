// Package config loads site configuration with Viper from an optional
// .portfolio.yml file, PORTFOLIO_* environment variables, and the legacy
// variable names the site was first deployed with (PORT, SMTP_*, TO_EMAIL,
// ADMIN_*). A .env file in the working directory is loaded by main.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PORTFOLIO"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Contact  ContactConfig  `mapstructure:"contact"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Visitors VisitorsConfig `mapstructure:"visitors"`
}

type ServerConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Mode      string `mapstructure:"mode"` // gin mode: debug, release, test
	StaticDir string `mapstructure:"static_dir"`
	ImagesDir string `mapstructure:"images_dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ContactConfig struct {
	Sender        string        `mapstructure:"sender"` // stub, log, smtp
	StubDelay     time.Duration `mapstructure:"stub_delay"`
	ResultTTL     time.Duration `mapstructure:"result_ttl"`
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	MaxSessions   int           `mapstructure:"max_sessions"`
	SuccessText   string        `mapstructure:"success_text"`
	FailureText   string        `mapstructure:"failure_text"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	To       string `mapstructure:"to"`
}

type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type VisitorsConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	DSN       string        `mapstructure:"dsn"`
	Retention time.Duration `mapstructure:"retention"`
}

// Sender modes.
const (
	SenderStub = "stub"
	SenderLog  = "log"
	SenderSMTP = "smtp"
)

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.static_dir", "./static")
	v.SetDefault("server.images_dir", "./images")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("contact.sender", SenderStub)
	v.SetDefault("contact.stub_delay", "1s")
	v.SetDefault("contact.result_ttl", "5s")
	v.SetDefault("contact.idle_timeout", "30m")
	v.SetDefault("contact.sweep_interval", "1m")
	v.SetDefault("contact.max_sessions", 10000)
	v.SetDefault("contact.success_text", "")
	v.SetDefault("contact.failure_text", "")

	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.to", "")

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")

	v.SetDefault("visitors.enabled", true)
	v.SetDefault("visitors.dsn", "file:portfolio.db?_pragma=busy_timeout(5000)")
	v.SetDefault("visitors.retention", "8760h")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Names the deployment already uses.
	legacy := map[string]string{
		"server.port":    "PORT",
		"smtp.host":      "SMTP_HOST",
		"smtp.port":      "SMTP_PORT",
		"smtp.user":      "SMTP_USER",
		"smtp.password":  "SMTP_PASS",
		"smtp.to":        "TO_EMAIL",
		"admin.username": "ADMIN_USERNAME",
		"admin.password": "ADMIN_PASSWORD",
	}
	for key, env := range legacy {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, prefixed, env)
	}
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	if cfg.SMTP.To == "" {
		cfg.SMTP.To = cfg.SMTP.User
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// UsingDefaultAdmin reports whether the admin login still has the built-in
// development credentials.
func (c *Config) UsingDefaultAdmin() bool {
	return c.Admin.Username == "admin" && c.Admin.Password == "admin123"
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server: port %d out of range", cfg.Server.Port)
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server: unknown mode %q", cfg.Server.Mode)
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log: unknown format %q", cfg.Log.Format)
	}

	c := cfg.Contact
	switch c.Sender {
	case SenderStub, SenderLog:
	case SenderSMTP:
		if cfg.SMTP.User == "" || cfg.SMTP.Password == "" {
			return fmt.Errorf("smtp: sender %q needs smtp.user and smtp.password", SenderSMTP)
		}
		if cfg.SMTP.Host == "" || cfg.SMTP.Port == "" {
			return fmt.Errorf("smtp: host and port are required")
		}
	default:
		return fmt.Errorf("contact: unknown sender %q", c.Sender)
	}
	if c.ResultTTL <= 0 {
		return fmt.Errorf("contact: result_ttl must be positive, got %s", c.ResultTTL)
	}
	if c.StubDelay < 0 {
		return fmt.Errorf("contact: stub_delay must not be negative, got %s", c.StubDelay)
	}
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("contact: idle_timeout must be positive, got %s", c.IdleTimeout)
	}
	if c.MaxSessions <= 0 {
		return fmt.Errorf("contact: max_sessions must be positive, got %d", c.MaxSessions)
	}

	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return fmt.Errorf("admin: username and password must not be empty")
	}

	if cfg.Visitors.Enabled && cfg.Visitors.DSN == "" {
		return fmt.Errorf("visitors: dsn is required when tracking is enabled")
	}
	return nil
}
