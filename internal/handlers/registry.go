package handlers

import (
	"context"

	"github.com/edgard/teamsbridge/internal/intent"
	"github.com/edgard/teamsbridge/internal/teams"
)

// HandlerFunc processes one routed intent and returns the result rendered
// into the outbound reply. Implementations must honor ctx cancellation: the
// endpoint bounds every call with the configured handler timeout.
type HandlerFunc func(ctx context.Context, in intent.Intent, env *teams.MessageEnvelope) (teams.HandlerResult, error)

// RegisterAllIntents initializes and returns the map of intent handlers.
// Every routable intent kind has an entry; the endpoint treats a missing
// entry as an internal error.
func RegisterAllIntents(deps HandlerDeps) map[intent.Kind]HandlerFunc {
	return map[intent.Kind]HandlerFunc{
		intent.Weather: NewWeatherHandler(deps),
		intent.Time:    NewTimeHandler(deps),
		intent.Traffic: NewTrafficHandler(deps),
		intent.Help:    NewHelpHandler(deps),
		intent.Unknown: NewUnknownHandler(deps),
	}
}

// ClarificationResult is the soft reply sent when an intent needs a subject
// the message did not provide. It is not an error response: the request
// succeeded, the user just needs to say which city they mean.
func ClarificationResult(kind intent.Kind) teams.HandlerResult {
	var summary string
	switch kind {
	case intent.Weather:
		summary = "Which city would you like the weather for? Try: \"what's the weather in Boston?\""
	case intent.Time:
		summary = "Which city or timezone should I check the time for? Try: \"what time is it in Tokyo?\""
	case intent.Traffic:
		summary = "Which city's traffic should I look at? Try: \"how is traffic in Seattle?\""
	default:
		summary = "Could you tell me which city you mean?"
	}
	return teams.HandlerResult{
		Intent:  string(kind),
		Summary: summary,
	}
}
