// Package main contains the entrypoint for the TeamsBridge webhook service.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edgard/teamsbridge/internal/bot"
	"github.com/edgard/teamsbridge/internal/bot/tasks"
	"github.com/edgard/teamsbridge/internal/config"
	"github.com/edgard/teamsbridge/internal/database"
	"github.com/edgard/teamsbridge/internal/gemini"
	"github.com/edgard/teamsbridge/internal/handlers"
	"github.com/edgard/teamsbridge/internal/intent"
	"github.com/edgard/teamsbridge/internal/logger"
	"github.com/edgard/teamsbridge/internal/signature"
	"github.com/edgard/teamsbridge/internal/teams"
	"github.com/edgard/teamsbridge/internal/webhook"

	_ "modernc.org/sqlite"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger, db,
// ai client, webhook server, scheduler), handles graceful shutdown, and
// returns an exit code (0 for success, 1 for failure).
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	verifier, err := signature.NewVerifier(cfg.Webhook.Secret)
	if err != nil {
		log.Error("Failed to initialize signature verifier", "error", err)
		return 1
	}

	db, err := database.NewDB(cfg.Cache.Path)
	if err != nil {
		log.Error("Failed to open cache database", "path", cfg.Cache.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db)
	store := database.NewStore(db, log)

	gemClient, err := gemini.NewClient(ctx, cfg.Gemini, log)
	if err != nil {
		log.Error("Failed to initialize Gemini client", "error", err)
		return 1
	}

	hDeps := handlers.HandlerDeps{
		Logger:       log,
		Config:       cfg,
		Store:        store,
		GeminiClient: gemClient,
	}
	tDeps := tasks.TaskDeps{
		Logger: log,
		Store:  store,
		Config: cfg,
	}

	router := intent.NewRouter(cfg.Handler.DefaultCity)
	builder := teams.NewReplyBuilder("teamsbridge-bot", "TeamsBridge")
	server := webhook.NewServer(cfg, log, verifier, router, builder,
		handlers.RegisterAllIntents(hDeps), version)

	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, cfg, db, store, server, sched)

	log.Info("Starting TeamsBridge", "version", version)
	runErr := app.Run(ctx)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Service stopped due to error", "error", runErr)
		time.Sleep(time.Second)
		return 1
	}

	log.Info("Service stopped gracefully")
	time.Sleep(time.Second)
	return 0
}
