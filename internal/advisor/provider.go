package advisor

import "context"

// Speaker labels for transcript turns handed to a provider.
const (
	SpeakerUser      = "user"
	SpeakerAssistant = "assistant"
)

// Turn is one turn of the conversation as seen by the backend.
type Turn struct {
	Speaker string
	Text    string
}

// Provider produces exactly one reply for the transcript-so-far. The caller
// owns scheduling and the append; a provider must not retain the slice.
type Provider interface {
	Reply(ctx context.Context, transcript []Turn) (string, error)
}
