package intent

import (
	"regexp"
	"strings"
)

// Subject extraction patterns, tried in order against lowercased text:
// a preposition phrase ("weather in boston"), a keyword followed directly by
// a place ("weather boston"), or a leading place ("boston weather"). The
// stopwords "in", "for", and "at" separate the keyword from the subject and
// are never part of it.
var subjectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:in|for|at)\s+([a-z][a-z\s]*?)\s*(?:[?.!,]|$)`),
	regexp.MustCompile(`\b(?:weather|temperature|forecast|time|clock|timezone|traffic|congestion|commute)\s+([a-z][a-z\s]*?)\s*(?:[?.!,]|$)`),
	regexp.MustCompile(`^([a-z][a-z\s]*?)\s+(?:weather|time|traffic)\b`),
}

// Function words that can bracket a captured subject ("is it sunny", "in
// boston today"). They are trimmed from the edges only, so multi-word place
// names survive intact.
var subjectFillerWords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "it": true, "its": true,
	"was": true, "be": true, "there": true, "here": true, "now": true,
	"right": true, "today": true, "tonight": true, "tomorrow": true,
	"like": true, "what": true, "whats": true, "how": true, "hows": true,
	"please": true, "currently": true, "outside": true, "going": true,
	"to": true, "do": true, "me": true, "my": true, "you": true, "your": true,
}

// extractSubject pulls the subject (typically a city name) out of lowercased
// message text. It returns "" when no pattern matches or the match is all
// filler; the Router decides between the configured fallback and a
// clarification prompt.
func extractSubject(text string) string {
	for _, re := range subjectPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		subject := trimFillerWords(m[1])
		if subject == "" {
			continue
		}
		return titleCase(subject)
	}
	return ""
}

func trimFillerWords(s string) string {
	words := strings.Fields(s)
	for len(words) > 0 && subjectFillerWords[words[0]] {
		words = words[1:]
	}
	for len(words) > 0 && subjectFillerWords[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// titleCase capitalizes each word of a subject for presentable replies
// ("new york" -> "New York").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
