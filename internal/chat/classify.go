package chat

import (
	"strings"

	"github.com/samber/lo"
)

// Kind is the routing class of a user utterance.
type Kind int

// Utterance kinds. SearchQuery is the fallback: anything not recognized
// as an acknowledgment starts a new search.
const (
	SearchQuery Kind = iota
	Acknowledgment
)

// acknowledgmentPhrases are the prefixes that mark an utterance as a
// conversational acknowledgment rather than a new search intent.
var acknowledgmentPhrases = []string{
	"ok", "okay", "yes", "yeah", "sure", "go on", "continue", "tell me more",
	"thanks", "thank you", "cool", "great", "awesome", "nice", "perfect",
}

// Classify routes an utterance. The match is a prefix check on the
// trimmed, lower-cased text.
func Classify(utterance string) Kind {
	msg := strings.ToLower(strings.TrimSpace(utterance))

	isAck := lo.SomeBy(acknowledgmentPhrases, func(phrase string) bool {
		return strings.HasPrefix(msg, phrase)
	})
	if isAck {
		return Acknowledgment
	}
	return SearchQuery
}
