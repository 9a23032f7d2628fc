package handlers

import (
	"context"

	"github.com/edgard/teamsbridge/internal/intent"
	"github.com/edgard/teamsbridge/internal/teams"
)

const unknownSummary = "I'm not sure how to help with that. " +
	"I can answer questions about weather, time, and traffic; say \"help\" to see examples."

// NewUnknownHandler returns the handler for messages that matched no known
// intent. The reply is a fixed redirect to the help text rather than a
// free-form AI answer, so an unrecognized message never burns an AI call.
func NewUnknownHandler(deps HandlerDeps) HandlerFunc {
	return func(ctx context.Context, in intent.Intent, env *teams.MessageEnvelope) (teams.HandlerResult, error) {
		deps.Logger.DebugContext(ctx, "Handling unrecognized message",
			"conversation_id", env.ConversationID, "sender_id", env.SenderID)

		return teams.HandlerResult{
			Intent:  string(intent.Unknown),
			Summary: unknownSummary,
		}, nil
	}
}
