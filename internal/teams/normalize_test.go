package teams_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/edgard/teamsbridge/internal/teams"
)

func TestNormalizeValidMessage(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"type": "message",
		"id": "m1",
		"text": "  What's the weather in Boston?  ",
		"from": {"id": "u1", "name": "Ana"},
		"conversation": {"id": "c1"}
	}`)
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	env, err := teams.Normalize(body, receivedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if env.ActivityType != teams.ActivityTypeMessage {
		t.Errorf("activity type = %q, want %q", env.ActivityType, teams.ActivityTypeMessage)
	}
	if env.ConversationID != "c1" || env.SenderID != "u1" || env.SenderName != "Ana" {
		t.Errorf("unexpected identity fields: %+v", env)
	}
	if env.Text != "What's the weather in Boston?" {
		t.Errorf("text = %q, want trimmed original", env.Text)
	}
	if !env.ReceivedAt.Equal(receivedAt) {
		t.Errorf("receivedAt = %v, want %v", env.ReceivedAt, receivedAt)
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	t.Parallel()

	body := []byte(`{"type":"message","text":"hello","from":{"id":"u1"},"conversation":{"id":"c1"}}`)
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first, err := teams.Normalize(body, receivedAt)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := teams.Normalize(body, receivedAt)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalize is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestNormalizeCleansText(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "control characters stripped",
			text: "hel\x00lo\x1F world",
			want: "hello world",
		},
		{
			name: "surrounding whitespace trimmed",
			text: "\t  weather in Boston \n",
			want: "weather in Boston",
		},
		{
			name: "empty text is legal",
			text: "   ",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			activity := &teams.Activity{
				Type:         teams.ActivityTypeMessage,
				Text:         tc.text,
				From:         teams.Account{ID: "u1"},
				Conversation: teams.Conversation{ID: "c1"},
			}
			env, err := activity.Envelope(time.Now())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if env.Text != tc.want {
				t.Errorf("text = %q, want %q", env.Text, tc.want)
			}
		})
	}
}

func TestNormalizeRejectsMalformedPayloads(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body []byte
	}{
		{
			name: "invalid json",
			body: []byte(`{"type": "message",`),
		},
		{
			name: "not an object",
			body: []byte(`[1, 2, 3]`),
		},
		{
			name: "missing sender",
			body: []byte(`{"type":"message","text":"hi","conversation":{"id":"c1"}}`),
		},
		{
			name: "missing conversation",
			body: []byte(`{"type":"message","text":"hi","from":{"id":"u1"}}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := teams.Normalize(tc.body, time.Now())
			if !errors.Is(err, teams.ErrMalformedPayload) {
				t.Errorf("error = %v, want ErrMalformedPayload", err)
			}
		})
	}
}

func TestParseActivityPreservesType(t *testing.T) {
	t.Parallel()

	activity, err := teams.ParseActivity([]byte(`{"type":"conversationUpdate","conversation":{"id":"c1"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if activity.Type != "conversationUpdate" {
		t.Errorf("type = %q, want conversationUpdate", activity.Type)
	}
}
