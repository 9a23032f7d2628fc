// Package config provides configuration loading, validation, and management
// for the TeamsBridge application. It handles reading from YAML files,
// environment variables, setting default values, and validating
// configuration parameters.
package config

import (
	"errors"
	"time"
)

// ErrConfiguration indicates a fatal configuration problem detected at startup.
var ErrConfiguration = errors.New("configuration error")

// Config defines the application configuration parameters for all components
// of the TeamsBridge system, including logging, the webhook surface, intent
// handling, AI integration, and the lookup cache. It is constructed once at
// startup and never mutated afterwards.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Server    ServerConfig    `mapstructure:"server"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Handler   HandlerConfig   `mapstructure:"handler"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LogConfig controls log level and output format.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"             validate:"required,min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"required,min=1s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required,min=1s"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"   validate:"required,min=1024"`
}

// WebhookConfig holds the shared secret and signature header used to
// authenticate inbound Teams messages. The secret has no default: the
// process refuses to start without one.
type WebhookConfig struct {
	Secret          string `mapstructure:"secret"           validate:"required"`
	SignatureHeader string `mapstructure:"signature_header" validate:"required"`
}

// HandlerConfig controls intent handler invocation.
type HandlerConfig struct {
	// Timeout bounds a single downstream handler call. Exceeding it yields
	// a failed terminal response; nothing is retried by this service.
	Timeout time.Duration `mapstructure:"timeout" validate:"required,min=1s,max=10m"`
	// DefaultCity is the fallback subject when a message carries an intent
	// but no extractable location. Empty means ask the user to clarify.
	DefaultCity string `mapstructure:"default_city"`
}

// GeminiConfig holds settings for the Gemini AI client backing the
// weather, time, and traffic handlers.
type GeminiConfig struct {
	APIKey            string  `mapstructure:"api_key"             validate:"required"`
	ModelName         string  `mapstructure:"model_name"          validate:"required"`
	Temperature       float32 `mapstructure:"temperature"         validate:"min=0,max=2"`
	SystemInstruction string  `mapstructure:"system_instruction"`
	MaxRetries        int     `mapstructure:"max_retries"         validate:"min=0,max=10"`
	RetryDelaySeconds int     `mapstructure:"retry_delay_seconds" validate:"min=1,max=60"`
}

// CacheConfig controls the SQLite-backed lookup cache shared by the intent
// handlers. Entries are keyed by (intent, subject) and expire after TTL.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Path    string        `mapstructure:"path" validate:"required"`
	TTL     time.Duration `mapstructure:"ttl"  validate:"required,min=1m"`
}

// TaskConfig defines scheduling for a single background task.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// SchedulerConfig maps task names to their cron schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}
