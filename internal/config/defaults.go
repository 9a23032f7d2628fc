package config

import "time"

// Default values for configuration
const (
	// Log defaults
	DefaultLogLevel = "info"
	DefaultLogJSON  = true

	// Server defaults
	DefaultServerHost            = "0.0.0.0"
	DefaultServerPort            = 8080
	DefaultServerReadTimeout     = 15 * time.Second
	DefaultServerWriteTimeout    = 60 * time.Second
	DefaultServerShutdownTimeout = 10 * time.Second
	DefaultServerMaxBodyBytes    = 1 << 20 // Teams activities are small; 1 MiB is generous

	// Webhook defaults
	DefaultSignatureHeader = "X-Teams-Signature"

	// Handler defaults
	DefaultHandlerTimeout = 30 * time.Second

	// Gemini defaults
	DefaultGeminiModel             = "gemini-2.0-flash"
	DefaultGeminiTemperature       = 0.5
	DefaultGeminiMaxRetries        = 2
	DefaultGeminiRetryDelaySeconds = 2

	// Cache defaults
	DefaultCachePath = "cache.db"
	DefaultCacheTTL  = 10 * time.Minute
)

// DefaultSchedulerTasks lists the background tasks scheduled out of the box:
// expired cache entry eviction and SQLite maintenance.
var DefaultSchedulerTasks = map[string]TaskConfig{
	"cache_eviction":  {Enabled: true, Schedule: "*/10 * * * *"},
	"sql_maintenance": {Enabled: true, Schedule: "0 4 * * *"},
}
