package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/edgard/teamsbridge/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

const minimalConfig = `
webhook:
  secret: "super-secret"
gemini:
  api_key: "test-key"
`

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, minimalConfig)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Webhook.SignatureHeader != "X-Teams-Signature" {
		t.Errorf("signature header = %q", cfg.Webhook.SignatureHeader)
	}
	if cfg.Handler.Timeout != 30*time.Second {
		t.Errorf("handler timeout = %v, want 30s", cfg.Handler.Timeout)
	}
	if cfg.Handler.DefaultCity != "" {
		t.Errorf("default city = %q, want empty", cfg.Handler.DefaultCity)
	}
	if len(cfg.Scheduler.Tasks) == 0 {
		t.Error("scheduler tasks not defaulted")
	}
}

func TestLoadConfigReadsFileValues(t *testing.T) {
	path := writeConfigFile(t, `
webhook:
  secret: "super-secret"
  signature_header: "X-Custom-Sig"
gemini:
  api_key: "test-key"
handler:
  timeout: 10s
  default_city: "New York"
server:
  port: 9999
`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Webhook.SignatureHeader != "X-Custom-Sig" {
		t.Errorf("signature header = %q", cfg.Webhook.SignatureHeader)
	}
	if cfg.Handler.Timeout != 10*time.Second {
		t.Errorf("handler timeout = %v", cfg.Handler.Timeout)
	}
	if cfg.Handler.DefaultCity != "New York" {
		t.Errorf("default city = %q", cfg.Handler.DefaultCity)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfigFile(t, minimalConfig)

	t.Setenv("BOT_WEBHOOK_SECRET", "env-secret")
	t.Setenv("BOT_LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Webhook.Secret != "env-secret" {
		t.Errorf("secret = %q, want env override", cfg.Webhook.Secret)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadConfigMissingFileUsesEnv(t *testing.T) {
	t.Setenv("BOT_WEBHOOK_SECRET", "env-secret")
	t.Setenv("BOT_GEMINI_API_KEY", "env-key")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Webhook.Secret != "env-secret" {
		t.Errorf("secret = %q", cfg.Webhook.Secret)
	}
}

func TestLoadConfigFatalWithoutRequiredValues(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name: "missing webhook secret",
			content: `
gemini:
  api_key: "test-key"
`,
		},
		{
			name: "missing gemini api key",
			content: `
webhook:
  secret: "super-secret"
`,
		},
		{
			name: "invalid log level",
			content: minimalConfig + `
log:
  level: "loud"
`,
		},
		{
			name: "port out of range",
			content: minimalConfig + `
server:
  port: 99999
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfigFile(t, tc.content)

			_, err := config.LoadConfig(path)
			if err == nil {
				t.Fatal("expected configuration error, got nil")
			}
			if !errors.Is(err, config.ErrConfiguration) {
				t.Errorf("error = %v, want ErrConfiguration", err)
			}
		})
	}
}
