package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/agentally/buyerdesk/internal/session"
)

type keyMap struct {
	Quit      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Assistant key.Binding
	Move      key.Binding
	Select    key.Binding
	Offer     key.Binding
	Search    key.Binding
	Continue  key.Binding
	Back      key.Binding
	Submit    key.Binding
	SaveDraft key.Binding
	Filter    key.Binding
	Compose   key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
	PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	Assistant: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "ask ally")),
	Move:      key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "move")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Offer:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "make offer")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Continue:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "continue")),
	Back:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
	Submit:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
	SaveDraft: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "save draft")),
	Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	Compose:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compose")),
}

func helpFor(tab session.Tab) string {
	common := []key.Binding{keys.NextTab, keys.Assistant, keys.Quit}
	var bindings []key.Binding
	switch tab {
	case session.TabProperties:
		bindings = []key.Binding{keys.Move, keys.Offer, keys.Search}
	case session.TabOffers:
		bindings = []key.Binding{keys.Move, keys.Select, keys.Continue, keys.Back, keys.Submit, keys.SaveDraft}
	case session.TabCommunications:
		bindings = []key.Binding{keys.Move, keys.Select, keys.Filter, keys.Compose}
	}
	bindings = append(bindings, common...)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
