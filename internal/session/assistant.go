package session

import "strings"

// Speaker identifies who produced a transcript turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is one entry of the conversation transcript.
type Turn struct {
	Speaker Speaker
	Text    string
}

// Assistant manages the conversational overlay: open/closed state, the
// append-only transcript, and the pending input line. Reply scheduling is the
// caller's concern; the assistant only exposes the append points, so every
// append happens against the transcript as it exists at that moment.
type Assistant struct {
	open    bool
	turns   []Turn
	pending string
}

func NewAssistant(opening []Turn) *Assistant {
	return &Assistant{turns: append([]Turn(nil), opening...)}
}

func (a *Assistant) IsOpen() bool { return a.open }
func (a *Assistant) Open()        { a.open = true }
func (a *Assistant) Close()       { a.open = false }
func (a *Assistant) Toggle()      { a.open = !a.open }

func (a *Assistant) PendingInput() string     { return a.pending }
func (a *Assistant) SetPendingInput(s string) { a.pending = s }

// Send appends the pending input as a user turn and clears it. A blank
// (trimmed-empty) input is a silent no-op. The returned snapshot is the
// transcript as of the send, including the new user turn; the caller hands it
// to whatever produces the reply.
func (a *Assistant) Send() ([]Turn, bool) {
	text := strings.TrimSpace(a.pending)
	if text == "" {
		return nil, false
	}
	a.turns = append(a.turns, Turn{Speaker: SpeakerUser, Text: text})
	a.pending = ""
	return a.Transcript(), true
}

// AppendReply appends exactly one assistant turn. Called once per send when
// the deferred reply resolves; because it reads the live transcript rather
// than any snapshot, overlapping replies cannot overwrite each other.
func (a *Assistant) AppendReply(text string) {
	a.turns = append(a.turns, Turn{Speaker: SpeakerAssistant, Text: text})
}

// Transcript returns a copy of the turns in order.
func (a *Assistant) Transcript() []Turn {
	return append([]Turn(nil), a.turns...)
}

func (a *Assistant) Len() int { return len(a.turns) }
