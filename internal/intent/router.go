package intent

import (
	"strings"
	"unicode"

	"github.com/edgard/teamsbridge/internal/teams"
)

// keywordSet pairs an intent kind with the keywords that select it. Order in
// the routing table is significant: the first matching set wins, so weather
// outranks time, which outranks traffic, which outranks help.
type keywordSet struct {
	kind     Kind
	keywords []string
}

var routingTable = []keywordSet{
	{Weather, []string{"weather", "temperature", "forecast", "rain", "sunny", "cloudy"}},
	{Time, []string{"time", "clock", "hour", "timezone", "what time"}},
	{Traffic, []string{"traffic", "congestion", "roads", "commute", "driving"}},
	{Help, []string{"help", "hello", "hi", "hey", "start", "commands", "what can you do"}},
}

// Router maps normalized messages to intents. It holds only immutable
// configuration and is safe for concurrent use.
type Router struct {
	fallbackSubject string
}

// NewRouter creates a Router. fallbackSubject, when non-empty, is used as
// the subject for messages that carry an intent but no extractable location;
// when empty, such messages yield ErrMissingSubject so the user can be asked
// to clarify.
func NewRouter(fallbackSubject string) *Router {
	return &Router{fallbackSubject: fallbackSubject}
}

// Route classifies a message. Empty text routes to Help; unmatched text
// routes to Unknown. For the subject-bearing intents (weather, time,
// traffic) the returned error is either nil or the soft ErrMissingSubject;
// in both cases the returned Intent carries the matched kind.
func (r *Router) Route(env *teams.MessageEnvelope) (Intent, error) {
	text := strings.ToLower(env.Text)
	if text == "" {
		return Intent{Kind: Help}, nil
	}

	words := wordSet(text)

	for _, set := range routingTable {
		if !matchesAny(text, words, set.keywords) {
			continue
		}
		if set.kind == Help {
			return Intent{Kind: Help}, nil
		}

		subject := extractSubject(text)
		if subject == "" {
			subject = r.fallbackSubject
		}
		if subject == "" {
			return Intent{Kind: set.kind}, ErrMissingSubject
		}
		return Intent{Kind: set.kind, Subject: subject}, nil
	}

	return Intent{Kind: Unknown}, nil
}

// matchesAny reports whether any keyword selects this text. Single words
// must match whole words so short keywords like "hi" don't fire inside
// unrelated words; phrases match as substrings.
func matchesAny(text string, words map[string]bool, keywords []string) bool {
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(text, kw) {
				return true
			}
			continue
		}
		if words[kw] {
			return true
		}
	}
	return false
}

func wordSet(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = true
	}
	return words
}
