package session

import (
	"github.com/agentally/buyerdesk/internal/database/repository"
)

// FilterAll shows every message; the remaining filters match Message.Category.
const FilterAll = "all"

// Filters is the fixed tab order for the communications hub.
var Filters = []string{FilterAll, "lender", "inspector", "title", "agent"}

// Inbox manages the correspondence list: category filtering, the single
// selected message, and the compose panel. Messages themselves are seed data;
// the only mutation is the monotonic unread flag.
type Inbox struct {
	messages    []repository.Message
	annotations map[string]string
	filter      string
	selectedID  string
	composeOpen bool
	composeBody string
}

// NewInbox copies the seed messages so the caller's slice stays untouched.
// The first message starts selected, matching the reference behavior; its
// unread flag is not cleared until it is explicitly selected.
func NewInbox(messages []repository.Message, annotations map[string]string) *Inbox {
	in := &Inbox{
		messages:    append([]repository.Message(nil), messages...),
		annotations: annotations,
		filter:      FilterAll,
	}
	if in.annotations == nil {
		in.annotations = map[string]string{}
	}
	if len(in.messages) > 0 {
		in.selectedID = in.messages[0].ID
	}
	return in
}

func (in *Inbox) Filter() string { return in.filter }

// SetFilter narrows the visible list. The current selection is deliberately
// left alone even when the new filter hides it; the detail pane keeps showing
// the previously selected message.
func (in *Inbox) SetFilter(f string) {
	in.filter = f
}

// Visible returns the messages matching the active filter, in seed order.
func (in *Inbox) Visible() []repository.Message {
	if in.filter == FilterAll || in.filter == "" {
		return append([]repository.Message(nil), in.messages...)
	}
	var out []repository.Message
	for _, m := range in.messages {
		if m.Category == in.filter {
			out = append(out, m)
		}
	}
	return out
}

func (in *Inbox) Messages() []repository.Message {
	return append([]repository.Message(nil), in.messages...)
}

// SelectMessage selects the message and marks it read. Unknown ids are
// ignored so the selection always resolves. The returned flag reports whether
// the unread flag actually flipped, letting the caller persist the change;
// re-selecting an already-read message reports false.
func (in *Inbox) SelectMessage(id string) bool {
	for i := range in.messages {
		if in.messages[i].ID != id {
			continue
		}
		in.selectedID = id
		if in.messages[i].Unread {
			in.messages[i].Unread = false
			return true
		}
		return false
	}
	return false
}

// Selected resolves the selected message, nil when nothing is selected.
func (in *Inbox) Selected() *repository.Message {
	for i := range in.messages {
		if in.messages[i].ID == in.selectedID {
			m := in.messages[i]
			return &m
		}
	}
	return nil
}

func (in *Inbox) SelectedID() string { return in.selectedID }

// AnnotationFor looks up the advisory text for a message id. Messages without
// an entry report ok=false and render nothing.
func (in *Inbox) AnnotationFor(id string) (string, bool) {
	advice, ok := in.annotations[id]
	return advice, ok
}

func (in *Inbox) UnreadCount() int {
	n := 0
	for _, m := range in.messages {
		if m.Unread {
			n++
		}
	}
	return n
}

func (in *Inbox) ComposeOpen() bool { return in.composeOpen }

// OpenCompose and CloseCompose toggle the compose panel without touching the
// message selection. The body is kept as typed across open/close.
func (in *Inbox) OpenCompose()  { in.composeOpen = true }
func (in *Inbox) CloseCompose() { in.composeOpen = false }

func (in *Inbox) ComposeBody() string     { return in.composeBody }
func (in *Inbox) SetComposeBody(s string) { in.composeBody = s }
