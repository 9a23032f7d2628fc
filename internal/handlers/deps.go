package handlers

import (
	"log/slog"

	"github.com/edgard/teamsbridge/internal/config"
	"github.com/edgard/teamsbridge/internal/database"
	"github.com/edgard/teamsbridge/internal/gemini"
)

// HandlerDeps provides dependencies for intent handlers.
type HandlerDeps struct {
	Logger       *slog.Logger
	Config       *config.Config
	Store        database.Store
	GeminiClient gemini.Client
}
