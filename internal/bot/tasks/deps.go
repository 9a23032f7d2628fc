// Package tasks implements the scheduled background tasks of the service:
// lookup cache eviction and SQLite maintenance.
package tasks

import (
	"log/slog"

	"github.com/edgard/teamsbridge/internal/config"
	"github.com/edgard/teamsbridge/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
}
