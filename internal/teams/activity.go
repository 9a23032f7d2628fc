// Package teams implements the Microsoft Teams wire formats used by the
// webhook: inbound Bot Framework activities, the normalized message envelope
// the rest of the application works with, and outbound replies with
// Adaptive Card attachments.
package teams

// Activity types this service cares about. Anything that is not a message
// activity is acknowledged without routing.
const ActivityTypeMessage = "message"

// Activity represents an inbound Teams Bot Framework activity.
type Activity struct {
	Type         string       `json:"type"`
	ID           string       `json:"id,omitempty"`
	Timestamp    string       `json:"timestamp,omitempty"`
	ServiceURL   string       `json:"serviceUrl,omitempty"`
	ChannelID    string       `json:"channelId,omitempty"`
	From         Account      `json:"from"`
	Conversation Conversation `json:"conversation"`
	Recipient    Account      `json:"recipient,omitempty"`
	Text         string       `json:"text"`
	Locale       string       `json:"locale,omitempty"`
	ReplyToID    string       `json:"replyToId,omitempty"`
}

// Account represents a user or bot account in Teams.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Conversation identifies the Teams conversation an activity belongs to.
type Conversation struct {
	ID string `json:"id"`
}
