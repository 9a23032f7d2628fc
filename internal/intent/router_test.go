package intent_test

import (
	"errors"
	"testing"
	"time"

	"github.com/edgard/teamsbridge/internal/intent"
	"github.com/edgard/teamsbridge/internal/teams"
)

func envelope(text string) *teams.MessageEnvelope {
	return &teams.MessageEnvelope{
		ActivityType:   teams.ActivityTypeMessage,
		ConversationID: "c1",
		SenderID:       "u1",
		Text:           text,
		ReceivedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRoute(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		text        string
		wantKind    intent.Kind
		wantSubject string
		wantErr     error
	}{
		{
			name:        "weather with preposition",
			text:        "What's the weather in Boston?",
			wantKind:    intent.Weather,
			wantSubject: "Boston",
		},
		{
			name:        "time with preposition",
			text:        "what time is it in tokyo?",
			wantKind:    intent.Time,
			wantSubject: "Tokyo",
		},
		{
			name:        "traffic with multi-word city",
			text:        "How is the traffic for new york.",
			wantKind:    intent.Traffic,
			wantSubject: "New York",
		},
		{
			name:        "leading place name",
			text:        "boston weather",
			wantKind:    intent.Weather,
			wantSubject: "Boston",
		},
		{
			name:        "forecast keyword",
			text:        "forecast for Paris",
			wantKind:    intent.Weather,
			wantSubject: "Paris",
		},
		{
			name:     "bare weather keyword",
			text:     "weather",
			wantKind: intent.Weather,
			wantErr:  intent.ErrMissingSubject,
		},
		{
			name:     "time without subject",
			text:     "what time is it?",
			wantKind: intent.Time,
			wantErr:  intent.ErrMissingSubject,
		},
		{
			name:     "traffic without subject",
			text:     "how is the traffic?",
			wantKind: intent.Traffic,
			wantErr:  intent.ErrMissingSubject,
		},
		{
			name:        "weather outranks traffic",
			text:        "weather and traffic in Boston",
			wantKind:    intent.Weather,
			wantSubject: "Boston",
		},
		{
			name:     "greeting",
			text:     "hello",
			wantKind: intent.Help,
		},
		{
			name:     "help phrase",
			text:     "what can you do",
			wantKind: intent.Help,
		},
		{
			name:     "short keyword requires word match",
			text:     "this should not be a greeting",
			wantKind: intent.Unknown,
		},
		{
			name:     "empty text",
			text:     "",
			wantKind: intent.Help,
		},
		{
			name:     "unrelated text",
			text:     "tell me a joke",
			wantKind: intent.Unknown,
		},
	}

	router := intent.NewRouter("")

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := router.Route(envelope(tc.text))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Route(%q) error = %v, want %v", tc.text, err, tc.wantErr)
			}
			if got.Kind != tc.wantKind {
				t.Errorf("Route(%q) kind = %q, want %q", tc.text, got.Kind, tc.wantKind)
			}
			if got.Subject != tc.wantSubject {
				t.Errorf("Route(%q) subject = %q, want %q", tc.text, got.Subject, tc.wantSubject)
			}
		})
	}
}

func TestRouteFallbackSubject(t *testing.T) {
	t.Parallel()

	router := intent.NewRouter("New York")

	got, err := router.Route(envelope("weather"))
	if err != nil {
		t.Fatalf("Route with fallback returned error: %v", err)
	}
	if got.Kind != intent.Weather || got.Subject != "New York" {
		t.Errorf("Route = %+v, want weather intent with fallback subject", got)
	}
}

func TestRouteIsPure(t *testing.T) {
	t.Parallel()

	router := intent.NewRouter("")
	env := envelope("What's the weather in Boston?")

	first, err1 := router.Route(env)
	second, err2 := router.Route(env)

	if first != second {
		t.Errorf("Route returned different intents for identical envelopes: %+v vs %+v", first, second)
	}
	if !errors.Is(err1, err2) && !errors.Is(err2, err1) {
		t.Errorf("Route returned different errors for identical envelopes: %v vs %v", err1, err2)
	}
}
