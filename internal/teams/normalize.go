package teams

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrMalformedPayload is returned when the request body is not valid JSON or
// lacks the fields required to route a message.
var ErrMalformedPayload = errors.New("malformed payload")

// Matches control characters (non-printable ranges), which are stripped from
// message text before routing.
var controlCharsRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

// MessageEnvelope is the normalized, immutable view of a verified inbound
// message. It decouples the Teams wire format from intent routing and reply
// building. Envelopes are request-scoped and never shared across requests.
type MessageEnvelope struct {
	ActivityType   string
	ConversationID string
	SenderID       string
	SenderName     string
	Text           string
	ReceivedAt     time.Time
}

// ParseActivity decodes a verified raw body into an Activity. It fails with
// ErrMalformedPayload when the body is not a JSON object of the expected
// shape; the underlying decode error is wrapped for internal logging but
// must never reach the caller of the webhook.
func ParseActivity(body []byte) (*Activity, error) {
	var activity Activity
	if err := json.Unmarshal(body, &activity); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return &activity, nil
}

// Normalize parses a verified raw body into a MessageEnvelope. It is
// deterministic: identical bytes and receivedAt always yield the same
// envelope. No network or disk I/O happens here.
func Normalize(body []byte, receivedAt time.Time) (*MessageEnvelope, error) {
	activity, err := ParseActivity(body)
	if err != nil {
		return nil, err
	}
	return activity.Envelope(receivedAt)
}

// Envelope converts an already-parsed Activity into a MessageEnvelope,
// checking required fields and cleaning the text. Message text is trimmed of
// leading and trailing whitespace and stripped of control characters; an
// empty result is legal and routes to the no-op/help path downstream.
func (a *Activity) Envelope(receivedAt time.Time) (*MessageEnvelope, error) {
	if a.From.ID == "" {
		return nil, fmt.Errorf("%w: missing sender id", ErrMalformedPayload)
	}
	if a.Conversation.ID == "" {
		return nil, fmt.Errorf("%w: missing conversation id", ErrMalformedPayload)
	}

	text := controlCharsRegex.ReplaceAllString(a.Text, "")
	text = strings.TrimSpace(text)

	return &MessageEnvelope{
		ActivityType:   a.Type,
		ConversationID: a.Conversation.ID,
		SenderID:       a.From.ID,
		SenderName:     a.From.Name,
		Text:           text,
		ReceivedAt:     receivedAt.UTC(),
	}, nil
}
