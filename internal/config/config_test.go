package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, SenderStub, cfg.Contact.Sender)
	assert.Equal(t, time.Second, cfg.Contact.StubDelay)
	assert.Equal(t, 5*time.Second, cfg.Contact.ResultTTL)
	assert.Equal(t, 30*time.Minute, cfg.Contact.IdleTimeout)
	assert.Equal(t, 10000, cfg.Contact.MaxSessions)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, 365*24*time.Hour, cfg.Visitors.Retention)
	assert.True(t, cfg.Visitors.Enabled)
	assert.True(t, cfg.UsingDefaultAdmin())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("PORTFOLIO_CONTACT_SENDER", "smtp")
	t.Setenv("PORTFOLIO_CONTACT_RESULT_TTL", "2s")
	t.Setenv("ADMIN_USERNAME", "zach")

	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, SenderSMTP, cfg.Contact.Sender)
	assert.Equal(t, 2*time.Second, cfg.Contact.ResultTTL)
	assert.Equal(t, "me@example.com", cfg.SMTP.User)
	assert.Equal(t, "me@example.com", cfg.SMTP.To, "recipient defaults to the relay account")
	assert.Equal(t, "zach", cfg.Admin.Username)
	assert.False(t, cfg.UsingDefaultAdmin())
}

func TestPrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PORTFOLIO_SERVER_PORT", "7070")

	cfg, err := Load(newViper(t))
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 3000
  mode: release
log:
  format: json
contact:
  sender: log
  result_ttl: 10s
visitors:
  enabled: false
`), 0o600))

	v := newViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, SenderLog, cfg.Contact.Sender)
	assert.Equal(t, 10*time.Second, cfg.Contact.ResultTTL)
	assert.False(t, cfg.Visitors.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]any
		wantErr string
	}{
		{"port out of range", map[string]any{"server.port": 70000}, "server: port 70000"},
		{"unknown mode", map[string]any{"server.mode": "prod"}, `unknown mode "prod"`},
		{"unknown log format", map[string]any{"log.format": "xml"}, `unknown format "xml"`},
		{"unknown sender", map[string]any{"contact.sender": "pigeon"}, `unknown sender "pigeon"`},
		{"smtp without credentials", map[string]any{"contact.sender": "smtp"}, "needs smtp.user"},
		{"zero ttl", map[string]any{"contact.result_ttl": "0s"}, "result_ttl must be positive"},
		{"negative stub delay", map[string]any{"contact.stub_delay": "-1s"}, "stub_delay"},
		{"zero session cap", map[string]any{"contact.max_sessions": 0}, "max_sessions must be positive"},
		{"empty admin password", map[string]any{"admin.password": ""}, "admin:"},
		{"tracking without dsn", map[string]any{"visitors.dsn": ""}, "visitors: dsn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper(t)
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
