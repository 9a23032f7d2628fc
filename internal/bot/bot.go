// Package bot implements lifecycle management and component orchestration
// for the TeamsBridge service: the webhook HTTP server and the background
// task scheduler run together and shut down together.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/edgard/teamsbridge/internal/config"
	"github.com/edgard/teamsbridge/internal/database"
	"github.com/edgard/teamsbridge/internal/webhook"
)

// Bot represents the application and manages its components' lifecycle.
type Bot struct {
	logger    *slog.Logger
	cfg       *config.Config
	db        *sqlx.DB
	store     database.Store
	server    *webhook.Server
	scheduler *Scheduler
}

// NewBot creates the application orchestrator with all required components.
func NewBot(
	logger *slog.Logger,
	cfg *config.Config,
	db *sqlx.DB,
	store database.Store,
	server *webhook.Server,
	scheduler *Scheduler,
) *Bot {
	return &Bot{
		logger:    logger.With("component", "orchestrator"),
		cfg:       cfg,
		db:        db,
		store:     store,
		server:    server,
		scheduler: scheduler,
	}
}

// Run starts all components and blocks until ctx is cancelled or a component
// fails. Shutdown is graceful: in-flight webhook requests drain within the
// configured shutdown timeout and the scheduler waits for running jobs.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting orchestrator")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := b.server.Start(); err != nil {
			return fmt.Errorf("webhook server: %w", err)
		}
		if gCtx.Err() == nil {
			return fmt.Errorf("webhook server stopped unexpectedly")
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, stopping webhook server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), b.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := b.server.Stop(shutdownCtx); err != nil {
			b.logger.Error("Error stopping webhook server", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := b.scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, stopping scheduler")

		if err := b.scheduler.Stop(); err != nil {
			b.logger.Error("Error stopping scheduler", "error", err)
		}
		return nil
	})

	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Orchestrator stopped gracefully")
	return nil
}
