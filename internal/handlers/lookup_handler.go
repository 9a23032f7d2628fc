package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/edgard/teamsbridge/internal/database"
	"github.com/edgard/teamsbridge/internal/intent"
	"github.com/edgard/teamsbridge/internal/teams"
)

// lookupHandler answers subject-bearing intents (weather, time, traffic) by
// consulting the cache first and falling back to the AI client. Successful
// answers are cached keyed by (intent, subject) until the configured TTL.
type lookupHandler struct {
	deps      HandlerDeps
	kind      intent.Kind
	promptFmt string
	factTitle string
}

// NewWeatherHandler returns the handler for weather questions.
func NewWeatherHandler(deps HandlerDeps) HandlerFunc {
	return lookupHandler{
		deps:      deps,
		kind:      intent.Weather,
		promptFmt: "What is the current weather in %s? Include temperature and conditions in two short sentences.",
		factTitle: "Location",
	}.Handle
}

// NewTimeHandler returns the handler for time questions.
func NewTimeHandler(deps HandlerDeps) HandlerFunc {
	return lookupHandler{
		deps:      deps,
		kind:      intent.Time,
		promptFmt: "What is the current local time in %s? Mention the timezone in one short sentence.",
		factTitle: "Location",
	}.Handle
}

// NewTrafficHandler returns the handler for traffic questions.
func NewTrafficHandler(deps HandlerDeps) HandlerFunc {
	return lookupHandler{
		deps:      deps,
		kind:      intent.Traffic,
		promptFmt: "How is road traffic in %s right now? Summarize congestion in two short sentences.",
		factTitle: "Area",
	}.Handle
}

func (h lookupHandler) Handle(ctx context.Context, in intent.Intent, env *teams.MessageEnvelope) (teams.HandlerResult, error) {
	log := h.deps.Logger.With("handler", string(h.kind))

	if in.Subject == "" {
		return teams.HandlerResult{}, fmt.Errorf("%s handler called without a subject: %w", h.kind, intent.ErrMissingSubject)
	}

	if cached := h.cachedSummary(ctx, in.Subject); cached != "" {
		log.DebugContext(ctx, "Serving reply from lookup cache", "subject", in.Subject)
		return h.result(in.Subject, cached), nil
	}

	summary, err := h.deps.GeminiClient.GenerateAnswer(ctx, fmt.Sprintf(h.promptFmt, in.Subject))
	if err != nil {
		return teams.HandlerResult{}, fmt.Errorf("failed to generate %s answer for %q: %w", h.kind, in.Subject, err)
	}

	h.saveSummary(ctx, in.Subject, summary)

	return h.result(in.Subject, summary), nil
}

func (h lookupHandler) result(subject, summary string) teams.HandlerResult {
	return teams.HandlerResult{
		Intent:  string(h.kind),
		Subject: subject,
		Summary: summary,
		Facts:   []teams.Fact{{Title: h.factTitle, Value: subject}},
	}
}

func (h lookupHandler) cachedSummary(ctx context.Context, subject string) string {
	if !h.deps.Config.Cache.Enabled || h.deps.Store == nil {
		return ""
	}
	log := h.deps.Logger.With("handler", string(h.kind))

	entry, err := h.deps.Store.GetCachedReply(ctx, string(h.kind), subject, time.Now().UTC())
	if err != nil {
		log.WarnContext(ctx, "Lookup cache read failed, falling through to AI client",
			"subject", subject, "error", err)
		return ""
	}
	if entry == nil {
		return ""
	}
	return entry.Summary
}

func (h lookupHandler) saveSummary(ctx context.Context, subject, summary string) {
	if !h.deps.Config.Cache.Enabled || h.deps.Store == nil || summary == "" {
		return
	}
	log := h.deps.Logger.With("handler", string(h.kind))

	now := time.Now().UTC()
	entry := &database.CachedReply{
		CreatedAt: now,
		Intent:    string(h.kind),
		Subject:   subject,
		Summary:   summary,
		ExpiresAt: now.Add(h.deps.Config.Cache.TTL),
	}
	if err := h.deps.Store.SaveCachedReply(ctx, entry); err != nil {
		log.WarnContext(ctx, "Failed to cache handler reply", "subject", subject, "error", err)
	}
}
