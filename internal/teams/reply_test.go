package teams_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/edgard/teamsbridge/internal/teams"
)

func testEnvelope() *teams.MessageEnvelope {
	return &teams.MessageEnvelope{
		ActivityType:   teams.ActivityTypeMessage,
		ConversationID: "c1",
		SenderID:       "u1",
		SenderName:     "Ana",
		Text:           "what's the weather in Boston?",
		ReceivedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildReplyIsIdempotent(t *testing.T) {
	t.Parallel()

	builder := teams.NewReplyBuilder("bot-1", "TeamsBridge")
	env := testEnvelope()
	result := teams.HandlerResult{
		Intent:  "weather",
		Subject: "Boston",
		Summary: "Sunny, 21C.",
		Facts:   []teams.Fact{{Title: "Location", Value: "Boston"}},
	}

	first, err := teams.MarshalReply(builder.BuildReply(env, result))
	if err != nil {
		t.Fatalf("first marshal failed: %v", err)
	}
	second, err := teams.MarshalReply(builder.BuildReply(env, result))
	if err != nil {
		t.Fatalf("second marshal failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("reply is not byte-identical across builds:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestBuildReplyAddressesSender(t *testing.T) {
	t.Parallel()

	builder := teams.NewReplyBuilder("bot-1", "TeamsBridge")
	env := testEnvelope()

	reply := builder.BuildReply(env, teams.HandlerResult{Intent: "help", Summary: "hi"})

	if reply.Type != teams.ActivityTypeMessage {
		t.Errorf("type = %q, want message", reply.Type)
	}
	if reply.From.ID != "bot-1" || reply.From.Name != "TeamsBridge" {
		t.Errorf("from = %+v, want bot identity", reply.From)
	}
	if reply.Conversation.ID != "c1" {
		t.Errorf("conversation = %q, want c1", reply.Conversation.ID)
	}
	if reply.Recipient.ID != "u1" {
		t.Errorf("recipient = %q, want original sender", reply.Recipient.ID)
	}
	if reply.Timestamp != "2025-06-01T12:00:00Z" {
		t.Errorf("timestamp = %q, want envelope received time", reply.Timestamp)
	}
	if len(reply.Attachments) != 1 {
		t.Fatalf("attachments = %d, want 1", len(reply.Attachments))
	}
	if got := reply.Attachments[0].ContentType; got != teams.AdaptiveCardContentType {
		t.Errorf("attachment content type = %q", got)
	}
}

func TestBuildErrorReplyHidesInternalDetail(t *testing.T) {
	t.Parallel()

	builder := teams.NewReplyBuilder("bot-1", "TeamsBridge")
	env := testEnvelope()

	data, err := teams.MarshalReply(builder.BuildErrorReply(env))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	payload := string(data)
	for _, leak := range []string{"goroutine", "panic", "sql", "secret", ".go:"} {
		if strings.Contains(payload, leak) {
			t.Errorf("error reply leaks internal detail %q: %s", leak, payload)
		}
	}
	if !strings.Contains(payload, "try again") {
		t.Errorf("error reply missing apology text: %s", payload)
	}
}

func TestNewResultCardTitles(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		result teams.HandlerResult
		want   string
	}{
		{
			name:   "weather card names the city",
			result: teams.HandlerResult{Intent: "weather", Subject: "Boston"},
			want:   "Weather in Boston",
		},
		{
			name:   "time card names the city",
			result: teams.HandlerResult{Intent: "time", Subject: "Tokyo"},
			want:   "Time in Tokyo",
		},
		{
			name:   "traffic card names the area",
			result: teams.HandlerResult{Intent: "traffic", Subject: "Seattle"},
			want:   "Traffic in Seattle",
		},
		{
			name:   "help card is generic",
			result: teams.HandlerResult{Intent: "help"},
			want:   "What I can do",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			card := teams.NewResultCard(tc.result)
			if len(card.Content.Body) == 0 {
				t.Fatal("card has empty body")
			}
			if got := card.Content.Body[0].Text; !strings.Contains(got, tc.want) {
				t.Errorf("card title = %q, want to contain %q", got, tc.want)
			}
		})
	}
}

func TestNewResultCardRendersFacts(t *testing.T) {
	t.Parallel()

	card := teams.NewResultCard(teams.HandlerResult{
		Intent:  "weather",
		Subject: "Boston",
		Summary: "Sunny.",
		Facts:   []teams.Fact{{Title: "Location", Value: "Boston"}},
	})

	var factSet *teams.CardElement
	for i := range card.Content.Body {
		if card.Content.Body[i].Type == "FactSet" {
			factSet = &card.Content.Body[i]
		}
	}
	if factSet == nil {
		t.Fatal("card has no FactSet element")
	}
	if len(factSet.Facts) != 1 || factSet.Facts[0].Title != "Location" || factSet.Facts[0].Value != "Boston" {
		t.Errorf("unexpected facts: %+v", factSet.Facts)
	}
}
