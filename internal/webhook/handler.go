package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/edgard/teamsbridge/internal/handlers"
	"github.com/edgard/teamsbridge/internal/intent"
	"github.com/edgard/teamsbridge/internal/teams"
)

// Response bodies for the rejected and failed terminal states. The rejected
// body is identical for signature failures and malformed payloads so the
// caller cannot probe which check failed; the distinct reason goes to the
// logs only.
const (
	rejectedMsg = "Invalid request signature"
	failedMsg   = "internal error"
)

type errorResponse struct {
	Error string `json:"error"`
}

type ignoredResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// handleWebhook runs one request through the pipeline: verify the signature
// over the raw body, parse and normalize the activity, route it to an intent
// handler, and wrap the result into a Teams reply. Every failure is mapped
// to a terminal response here; nothing is retried.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	receivedAt := time.Now().UTC()
	log := s.log.With("request_id", w.Header().Get("X-Request-ID"))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.WarnContext(ctx, "Rejecting oversized request body", "limit", maxErr.Limit)
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		log.WarnContext(ctx, "Failed to read request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unable to read request body"})
		return
	}

	if err := s.verifier.Verify(body, r.Header.Get(s.cfg.Webhook.SignatureHeader)); err != nil {
		// Metadata only: the unverified body may hold user data and
		// must not reach the logs.
		log.WarnContext(ctx, "Rejecting request with bad signature",
			"reason", err, "body_bytes", len(body), "remote_addr", r.RemoteAddr)
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: rejectedMsg})
		return
	}

	activity, err := teams.ParseActivity(body)
	if err != nil {
		log.WarnContext(ctx, "Rejecting malformed payload", "reason", err)
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: rejectedMsg})
		return
	}

	if activity.Type != teams.ActivityTypeMessage {
		log.DebugContext(ctx, "Ignoring non-message activity", "activity_type", activity.Type)
		writeJSON(w, http.StatusOK, ignoredResponse{Status: "ignored", Reason: "Not a message activity"})
		return
	}

	env, err := activity.Envelope(receivedAt)
	if err != nil {
		log.WarnContext(ctx, "Rejecting message with missing required fields", "reason", err)
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: rejectedMsg})
		return
	}

	routed, routeErr := s.router.Route(env)
	if routeErr != nil {
		if errors.Is(routeErr, intent.ErrMissingSubject) {
			log.InfoContext(ctx, "Asking user to clarify subject",
				"intent", string(routed.Kind), "conversation_id", env.ConversationID)
			s.writeReply(w, log, env, handlers.ClarificationResult(routed.Kind))
			return
		}
		log.ErrorContext(ctx, "Routing failed", "error", routeErr)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: failedMsg})
		return
	}

	handler, ok := s.handlers[routed.Kind]
	if !ok {
		log.ErrorContext(ctx, "No handler registered for intent", "intent", string(routed.Kind))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: failedMsg})
		return
	}

	handlerCtx, cancel := context.WithTimeout(ctx, s.cfg.Handler.Timeout)
	defer cancel()

	result, err := handler(handlerCtx, routed, env)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.ErrorContext(ctx, "Intent handler timed out",
				"intent", string(routed.Kind), "timeout", s.cfg.Handler.Timeout)
		} else {
			log.ErrorContext(ctx, "Intent handler failed",
				"intent", string(routed.Kind), "error", err)
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: failedMsg})
		return
	}

	log.InfoContext(ctx, "Responding to message",
		"intent", string(routed.Kind), "subject", routed.Subject,
		"conversation_id", env.ConversationID)
	s.writeReply(w, log, env, result)
}

// handleHealth reports liveness. It deliberately touches neither the
// verifier nor any downstream handler, so it stays green while those fail.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   s.version,
	})
}

func (s *Server) writeReply(w http.ResponseWriter, log *slog.Logger, env *teams.MessageEnvelope, result teams.HandlerResult) {
	reply := s.builder.BuildReply(env, result)
	data, err := teams.MarshalReply(reply)
	if err != nil {
		log.Error("Failed to marshal reply", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: failedMsg})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
