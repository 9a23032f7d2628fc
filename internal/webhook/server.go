// Package webhook exposes the HTTP surface of the service: the Teams
// webhook endpoint and the health probe. Each inbound request is verified,
// normalized, routed, and answered independently; no state is shared between
// requests beyond read-only configuration and the handler registry.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/edgard/teamsbridge/internal/config"
	"github.com/edgard/teamsbridge/internal/handlers"
	"github.com/edgard/teamsbridge/internal/intent"
	"github.com/edgard/teamsbridge/internal/logger"
	"github.com/edgard/teamsbridge/internal/signature"
	"github.com/edgard/teamsbridge/internal/teams"
)

// Server owns the HTTP listener and the per-request pipeline dependencies.
// All fields are set at construction and read-only afterwards.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	verifier *signature.Verifier
	router   *intent.Router
	builder  *teams.ReplyBuilder
	handlers map[intent.Kind]handlers.HandlerFunc
	version  string
	srv      *http.Server
}

// NewServer wires the request pipeline into an HTTP server. The listener is
// not bound until Start is called.
func NewServer(
	cfg *config.Config,
	log *slog.Logger,
	verifier *signature.Verifier,
	router *intent.Router,
	builder *teams.ReplyBuilder,
	intentHandlers map[intent.Kind]handlers.HandlerFunc,
	version string,
) *Server {
	s := &Server{
		cfg:      cfg,
		log:      log,
		verifier: verifier,
		router:   router,
		builder:  builder,
		handlers: intentHandlers,
		version:  version,
	}

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// Routes builds the handler tree. Exposed so tests can drive the full
// pipeline through httptest without binding a socket.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/teams/webhook", s.handleWebhook)
	mux.HandleFunc("GET /health", s.handleHealth)
	return logger.Middleware(s.log)(mux)
}

// Start binds the listener and blocks until the server is shut down.
// A clean shutdown returns nil.
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server", "addr", s.srv.Addr)

	err := s.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Stop drains in-flight requests and closes the listener, bounded by ctx.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Stopping HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
