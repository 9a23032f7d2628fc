package teams

import "fmt"

// AdaptiveCardContentType is the attachment content type Teams expects for
// Adaptive Cards.
const AdaptiveCardContentType = "application/vnd.microsoft.card.adaptive"

const (
	adaptiveCardSchema  = "http://adaptivecards.io/schemas/adaptive-card.json"
	adaptiveCardVersion = "1.4"
)

// Attachment wraps a card for inclusion in a TeamsReply.
type Attachment struct {
	ContentType string       `json:"contentType"`
	Content     AdaptiveCard `json:"content"`
}

// AdaptiveCard is the card payload rendered by the Teams client.
type AdaptiveCard struct {
	Schema  string        `json:"$schema"`
	Type    string        `json:"type"`
	Version string        `json:"version"`
	Body    []CardElement `json:"body"`
}

// CardElement is a single element of a card body. Only the element kinds
// this service emits (TextBlock, Container, FactSet) are modeled.
type CardElement struct {
	Type      string        `json:"type"`
	Text      string        `json:"text,omitempty"`
	Weight    string        `json:"weight,omitempty"`
	Size      string        `json:"size,omitempty"`
	Wrap      bool          `json:"wrap,omitempty"`
	IsSubtle  bool          `json:"isSubtle,omitempty"`
	Separator bool          `json:"separator,omitempty"`
	Spacing   string        `json:"spacing,omitempty"`
	Items     []CardElement `json:"items,omitempty"`
	Facts     []CardFact    `json:"facts,omitempty"`
}

// CardFact is a FactSet row.
type CardFact struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// NewResultCard renders a HandlerResult as an Adaptive Card attachment. The
// card title depends on the intent that produced the result; facts, when
// present, are rendered as a FactSet above the summary.
func NewResultCard(result HandlerResult) Attachment {
	var title string
	switch result.Intent {
	case "weather":
		title = fmt.Sprintf("☁️ Weather in %s", result.Subject)
	case "time":
		title = fmt.Sprintf("🕐 Time in %s", result.Subject)
	case "traffic":
		title = fmt.Sprintf("🚗 Traffic in %s", result.Subject)
	case "help":
		title = "💬 What I can do"
	default:
		title = "💬 Reply"
	}

	body := []CardElement{
		{Type: "TextBlock", Text: title, Weight: "Bolder", Size: "Large", Wrap: true},
	}

	if len(result.Facts) > 0 {
		facts := make([]CardFact, 0, len(result.Facts))
		for _, f := range result.Facts {
			facts = append(facts, CardFact{Title: f.Title, Value: f.Value})
		}
		body = append(body, CardElement{Type: "FactSet", Facts: facts})
	}

	if result.Summary != "" {
		body = append(body, CardElement{
			Type:      "TextBlock",
			Text:      result.Summary,
			Wrap:      true,
			Separator: len(result.Facts) > 0,
			Spacing:   "Medium",
		})
	}

	return newAttachment(body)
}

// NewErrorCard renders the generic apology card for handler failures.
func NewErrorCard() Attachment {
	return newAttachment([]CardElement{
		{Type: "TextBlock", Text: "⚠️ Something went wrong", Weight: "Bolder", Size: "Large", Wrap: true},
		{Type: "TextBlock", Text: "Sorry, I couldn't process your request. Please try again later.", Wrap: true},
	})
}

func newAttachment(body []CardElement) Attachment {
	return Attachment{
		ContentType: AdaptiveCardContentType,
		Content: AdaptiveCard{
			Schema:  adaptiveCardSchema,
			Type:    "AdaptiveCard",
			Version: adaptiveCardVersion,
			Body:    body,
		},
	}
}
