package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentally/buyerdesk/internal/database/repository"
)

func seedMessages() []repository.Message {
	return []repository.Message{
		{ID: "m1", Category: "lender", Sender: "Sarah Johnson", Subject: "Pre-approval update", Unread: true},
		{ID: "m2", Category: "inspector", Sender: "Mike Torres", Subject: "Inspection scheduled"},
		{ID: "m3", Category: "lender", Sender: "Sarah Johnson", Subject: "Rate lock options"},
		{ID: "m4", Category: "agent", Sender: "Jennifer Lee", Subject: "Counter offer received", Unread: true},
	}
}

func TestInboxFirstMessageSelected(t *testing.T) {
	t.Parallel()

	in := NewInbox(seedMessages(), nil)
	sel := in.Selected()
	require.NotNil(t, sel)
	require.Equal(t, "m1", sel.ID)
	require.True(t, sel.Unread, "initial selection does not mark read")
}

func TestInboxFilterPreservesSelection(t *testing.T) {
	t.Parallel()

	in := NewInbox(seedMessages(), nil)
	require.True(t, in.SelectMessage("m2"))

	in.SetFilter("lender")
	visible := in.Visible()
	require.Len(t, visible, 2)
	require.Equal(t, "m1", visible[0].ID)
	require.Equal(t, "m3", visible[1].ID)

	sel := in.Selected()
	require.NotNil(t, sel, "filtered-out selection still resolves")
	require.Equal(t, "m2", sel.ID)

	in.SetFilter(FilterAll)
	require.Len(t, in.Visible(), 4)
	require.Equal(t, "m2", in.Selected().ID)
}

func TestInboxMarkReadIsMonotonic(t *testing.T) {
	t.Parallel()

	in := NewInbox(seedMessages(), nil)
	require.Equal(t, 2, in.UnreadCount())

	require.True(t, in.SelectMessage("m1"), "first select flips unread")
	require.False(t, in.SelectMessage("m1"), "re-select reports no change")
	require.Equal(t, 1, in.UnreadCount())

	require.False(t, in.SelectMessage("m2"), "already-read select reports no change")
	require.Equal(t, "m2", in.SelectedID())
}

func TestInboxUnknownSelectionIgnored(t *testing.T) {
	t.Parallel()

	in := NewInbox(seedMessages(), nil)
	require.True(t, in.SelectMessage("m4"))

	require.False(t, in.SelectMessage("nope"))
	require.Equal(t, "m4", in.SelectedID(), "unknown id leaves selection alone")
}

func TestInboxAnnotations(t *testing.T) {
	t.Parallel()

	in := NewInbox(seedMessages(), map[string]string{"m1": "This rate is competitive for your profile."})

	advice, ok := in.AnnotationFor("m1")
	require.True(t, ok)
	require.Equal(t, "This rate is competitive for your profile.", advice)

	_, ok = in.AnnotationFor("m2")
	require.False(t, ok)
}

func TestInboxComposeKeepsBodyAcrossOpenClose(t *testing.T) {
	t.Parallel()

	in := NewInbox(seedMessages(), nil)
	require.False(t, in.ComposeOpen())

	in.OpenCompose()
	in.SetComposeBody("Following up on the appraisal")
	in.CloseCompose()
	require.False(t, in.ComposeOpen())
	require.Equal(t, "Following up on the appraisal", in.ComposeBody())

	in.OpenCompose()
	require.Equal(t, "m1", in.SelectedID(), "compose does not touch selection")
}
