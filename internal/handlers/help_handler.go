package handlers

import (
	"context"

	"github.com/edgard/teamsbridge/internal/intent"
	"github.com/edgard/teamsbridge/internal/teams"
)

const helpSummary = "Hi! I can answer quick questions about weather, local time, and traffic. " +
	"Ask me about a city and I'll look it up."

// NewHelpHandler returns the handler for greetings and help requests. It
// never touches the AI client or the cache, so it stays available even when
// those dependencies are degraded.
func NewHelpHandler(deps HandlerDeps) HandlerFunc {
	return func(ctx context.Context, in intent.Intent, env *teams.MessageEnvelope) (teams.HandlerResult, error) {
		deps.Logger.DebugContext(ctx, "Handling help request",
			"conversation_id", env.ConversationID, "sender_id", env.SenderID)

		return teams.HandlerResult{
			Intent:  string(intent.Help),
			Summary: helpSummary,
			Facts: []teams.Fact{
				{Title: "Weather", Value: "\"What's the weather in Boston?\""},
				{Title: "Time", Value: "\"What time is it in Tokyo?\""},
				{Title: "Traffic", Value: "\"How is traffic in Seattle?\""},
			},
		}, nil
	}
}
