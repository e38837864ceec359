package chat

// Speaker identifies who produced a conversation entry.
type Speaker string

// Speaker values.
const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Entry is one turn of the conversation.
type Entry struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Log is an append-only ordered list of conversation entries. Append
// returns an extended copy so previously handed-out logs never mutate
// under a reader.
type Log []Entry

// Append returns a new Log with the entry added.
func (l Log) Append(speaker Speaker, text string) Log {
	out := make(Log, len(l), len(l)+1)
	copy(out, l)
	return append(out, Entry{Speaker: speaker, Text: text})
}

// State is the conversation state owned by the Router (its single
// writer). Everything else reads snapshots.
type State struct {
	log             Log
	lastSearchQuery string
	hasSearched     bool
	searching       bool
}

// History returns the conversation entries in append order.
func (s State) History() []Entry {
	return append([]Entry(nil), s.log...)
}

// LastSearchQuery returns the most recent search query, if any.
func (s State) LastSearchQuery() (string, bool) {
	return s.lastSearchQuery, s.hasSearched
}

// Searching reports whether an aggregation is currently in flight.
func (s State) Searching() bool {
	return s.searching
}
