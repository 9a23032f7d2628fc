package teams

import (
	"encoding/json"
	"time"
)

// HandlerResult is what an intent handler hands back on success: the intent
// that produced it, the subject it answered about, a user-visible summary,
// and optional structured facts rendered into the reply card.
type HandlerResult struct {
	Intent  string
	Subject string
	Summary string
	Facts   []Fact
}

// Fact is a single title/value pair of structured handler output.
type Fact struct {
	Title string
	Value string
}

// TeamsReply is the outbound message structure Teams expects.
type TeamsReply struct {
	Type         string       `json:"type"`
	From         Account      `json:"from"`
	Conversation Conversation `json:"conversation"`
	Recipient    Account      `json:"recipient"`
	Text         string       `json:"text,omitempty"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	Timestamp    string       `json:"timestamp"`
}

// ReplyBuilder converts handler results into the Teams reply schema. It is a
// pure function of its inputs: the reply timestamp comes from the envelope's
// received time, never from the wall clock, so building the same result
// twice yields byte-identical output. That keeps retried deliveries safe.
type ReplyBuilder struct {
	botID   string
	botName string
}

// NewReplyBuilder creates a ReplyBuilder identifying the bot in outbound
// replies.
func NewReplyBuilder(botID, botName string) *ReplyBuilder {
	return &ReplyBuilder{botID: botID, botName: botName}
}

// BuildReply wraps a successful HandlerResult into the reply envelope with an
// Adaptive Card attachment.
func (b *ReplyBuilder) BuildReply(env *MessageEnvelope, result HandlerResult) TeamsReply {
	return TeamsReply{
		Type:         ActivityTypeMessage,
		From:         Account{ID: b.botID, Name: b.botName},
		Conversation: Conversation{ID: env.ConversationID},
		Recipient:    Account{ID: env.SenderID, Name: env.SenderName},
		Attachments:  []Attachment{NewResultCard(result)},
		Timestamp:    env.ReceivedAt.UTC().Format(time.RFC3339),
	}
}

// BuildErrorReply produces the user-facing reply for a failed handler call.
// The text is a fixed apology; internal error detail stays in the logs and
// never crosses this boundary.
func (b *ReplyBuilder) BuildErrorReply(env *MessageEnvelope) TeamsReply {
	return TeamsReply{
		Type:         ActivityTypeMessage,
		From:         Account{ID: b.botID, Name: b.botName},
		Conversation: Conversation{ID: env.ConversationID},
		Recipient:    Account{ID: env.SenderID, Name: env.SenderName},
		Attachments:  []Attachment{NewErrorCard()},
		Timestamp:    env.ReceivedAt.UTC().Format(time.RFC3339),
	}
}

// MarshalReply serializes a reply for the HTTP response body.
func MarshalReply(reply TeamsReply) ([]byte, error) {
	return json.Marshal(reply)
}
