package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func openingTurns() []Turn {
	return []Turn{
		{Speaker: SpeakerAssistant, Text: "Hi! I'm Ally, ready to help with your home purchase."},
		{Speaker: SpeakerUser, Text: "What should I offer on the loft?"},
	}
}

func TestAssistantSendAppendsUserTurn(t *testing.T) {
	t.Parallel()

	a := NewAssistant(openingTurns())
	a.SetPendingInput("  How strong is my offer?  ")

	snapshot, ok := a.Send()
	require.True(t, ok)
	require.Empty(t, a.PendingInput(), "send clears the input line")
	require.Len(t, snapshot, 3)
	require.Equal(t, SpeakerUser, snapshot[2].Speaker)
	require.Equal(t, "How strong is my offer?", snapshot[2].Text, "input is trimmed")
	require.Equal(t, 3, a.Len())
}

func TestAssistantBlankSendIsNoOp(t *testing.T) {
	t.Parallel()

	a := NewAssistant(openingTurns())
	a.SetPendingInput("   ")

	_, ok := a.Send()
	require.False(t, ok)
	require.Equal(t, 2, a.Len())
	require.Equal(t, "   ", a.PendingInput(), "no-op send leaves the input alone")
}

func TestAssistantOverlappingSendsEachGetOneReply(t *testing.T) {
	t.Parallel()

	a := NewAssistant(nil)

	a.SetPendingInput("first question")
	snap1, ok := a.Send()
	require.True(t, ok)
	require.Len(t, snap1, 1)

	// second send lands before the first reply resolves
	a.SetPendingInput("second question")
	snap2, ok := a.Send()
	require.True(t, ok)
	require.Len(t, snap2, 2)

	a.AppendReply("reply to first")
	a.AppendReply("reply to second")

	turns := a.Transcript()
	require.Len(t, turns, 4)
	require.Equal(t, []Turn{
		{Speaker: SpeakerUser, Text: "first question"},
		{Speaker: SpeakerUser, Text: "second question"},
		{Speaker: SpeakerAssistant, Text: "reply to first"},
		{Speaker: SpeakerAssistant, Text: "reply to second"},
	}, turns)
}

func TestAssistantOpenCloseKeepsTranscript(t *testing.T) {
	t.Parallel()

	a := NewAssistant(openingTurns())
	require.False(t, a.IsOpen())

	a.Open()
	require.True(t, a.IsOpen())
	a.SetPendingInput("draft in progress")
	a.Close()
	require.False(t, a.IsOpen())
	require.Equal(t, 2, a.Len())
	require.Equal(t, "draft in progress", a.PendingInput(), "closing keeps the pending input")

	a.Toggle()
	require.True(t, a.IsOpen())
}

func TestAssistantTranscriptIsACopy(t *testing.T) {
	t.Parallel()

	a := NewAssistant(openingTurns())
	turns := a.Transcript()
	turns[0].Text = "mutated"
	require.Equal(t, "Hi! I'm Ally, ready to help with your home purchase.", a.Transcript()[0].Text)
}
