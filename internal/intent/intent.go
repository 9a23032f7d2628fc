// Package intent classifies normalized messages into a closed set of intents
// via ordered keyword matching, and extracts the subject (typically a city)
// the message asks about. Routing is pure: no I/O, no hidden state.
package intent

import "errors"

// ErrMissingSubject is a soft error: the message carried a recognizable
// intent but no extractable subject and no fallback is configured. Callers
// surface it as a clarification prompt, not a failure.
var ErrMissingSubject = errors.New("missing subject")

// Kind enumerates the closed set of intents this service routes.
type Kind string

const (
	Weather Kind = "weather"
	Time    Kind = "time"
	Traffic Kind = "traffic"
	Help    Kind = "help"
	Unknown Kind = "unknown"
)

// Intent is the routing decision for a message: what the user asked about
// and, where applicable, the extracted subject.
type Intent struct {
	Kind    Kind
	Subject string
}
