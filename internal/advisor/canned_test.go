package advisor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCannedProviderAlwaysReturnsFixedReply(t *testing.T) {
	t.Parallel()

	p := NewCannedProvider()
	ctx := context.Background()

	reply, err := p.Reply(ctx, []Turn{{Speaker: SpeakerUser, Text: "What should I offer?"}})
	require.NoError(t, err)
	require.Equal(t, FixedReply, reply)

	reply, err = p.Reply(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, FixedReply, reply, "reply does not depend on the transcript")
}

func TestCannedProviderHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	p := NewCannedProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Reply(ctx, nil)
	require.Error(t, err)
}
