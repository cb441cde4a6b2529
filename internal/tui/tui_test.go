package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/agentally/buyerdesk/internal/advisor"
	"github.com/agentally/buyerdesk/internal/config"
	"github.com/agentally/buyerdesk/internal/database/repository"
	"github.com/agentally/buyerdesk/internal/session"
)

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{}
	cfg.Assistant.DelayMS = 1
	cfg.UI.BuyerInitials = "JD"
	a := New(context.Background(), cfg, Repos{}, advisor.NewCannedProvider())
	a.applySeed(seedLoadedMsg{
		properties: []repository.Property{
			{ID: "p1", Title: "Modern Downtown Loft", Address: "123 Urban St", PriceCents: 78_500_000, Beds: 2, Baths: 2, Sqft: 1450},
			{ID: "p2", Title: "Seaside Villa", Address: "456 Ocean Ave", PriceCents: 125_000_000, Beds: 4, Baths: 3, Sqft: 3200},
		},
		templates: []repository.OfferTemplate{
			{ID: "t1", Name: "Standard Offer", Description: "Balanced terms"},
		},
		messages: []repository.Message{
			{ID: "m1", Category: "lender", Sender: "Sarah Johnson", Subject: "Pre-approval update", Date: "Mar 14", Body: "Finalized.", Unread: true},
			{ID: "m2", Category: "agent", Sender: "Jennifer Lee", Subject: "Counter offer", Date: "Mar 13", Body: "They countered."},
		},
		annotations: map[string]string{"m1": "This rate is competitive."},
		stats: []repository.BuyerStat{
			{Key: "saved", Label: "Saved Properties", Value: 12},
		},
		openers: []repository.ChatOpener{
			{ID: "c1", Speaker: "assistant", Body: "Hi! I'm Ally."},
		},
	})
	return a
}

func press(a *App, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := a.Update(msg)
	return cmd
}

func TestOfferRequestSwitchesToWizard(t *testing.T) {
	a := testApp(t)

	press(a, "j")
	press(a, "o")

	if got := a.sess.Tab(); got != session.TabOffers {
		t.Fatalf("tab = %q, want offers", got)
	}
	if got := a.sess.Wizard.PropertyID(); got != "p2" {
		t.Fatalf("wizard property = %q, want p2", got)
	}
	if got := a.sess.Wizard.Form().AmountCents; got != 125_000_000 {
		t.Fatalf("prefilled amount = %d, want listing price", got)
	}
}

func TestWizardFlowThroughKeys(t *testing.T) {
	a := testApp(t)
	a.sess.SetTab(session.TabOffers)

	press(a, "enter") // select property
	press(a, "c")     // advance to template
	press(a, "enter") // select template
	press(a, "c")     // advance to terms
	press(a, "c")     // advance to review

	if got := a.sess.Wizard.Stage(); got != session.StageReview {
		t.Fatalf("stage = %d, want review", got)
	}
	if a.sess.Wizard.Draft() == nil {
		t.Fatal("draft missing on review stage")
	}

	press(a, "s") // submit
	if got := len(a.sess.Offers()); got != 1 {
		t.Fatalf("offers = %d, want 1", got)
	}
	if got := a.sess.Offers()[0].Status; got != session.StatusSubmitted {
		t.Fatalf("status = %q, want submitted", got)
	}
	if got := a.sess.Wizard.Stage(); got != session.StageProperty {
		t.Fatalf("stage after submit = %d, want 1", got)
	}
}

func TestInboxSelectionSchedulesPersistence(t *testing.T) {
	a := testApp(t)
	a.sess.SetTab(session.TabCommunications)

	cmd := press(a, "enter")
	if cmd == nil {
		t.Fatal("first select of unread message should schedule a mark-read command")
	}
	if cmd = press(a, "enter"); cmd != nil {
		t.Fatal("re-select should not schedule anything")
	}
}

func TestAssistantSendAndReply(t *testing.T) {
	a := testApp(t)

	press(a, "a")
	if !a.sess.Assistant.IsOpen() {
		t.Fatal("assistant should open")
	}
	before := a.sess.Assistant.Len()

	press(a, "hello")
	cmd := press(a, "enter")
	if cmd == nil {
		t.Fatal("send should schedule a reply command")
	}
	if got := a.sess.Assistant.Len(); got != before+1 {
		t.Fatalf("transcript = %d turns, want user turn appended synchronously", got)
	}

	a.Update(assistantReplyMsg{text: advisor.FixedReply})
	turns := a.sess.Assistant.Transcript()
	last := turns[len(turns)-1]
	if last.Speaker != session.SpeakerAssistant || last.Text != advisor.FixedReply {
		t.Fatalf("last turn = %+v, want fixed assistant reply", last)
	}

	press(a, "esc")
	if a.sess.Assistant.IsOpen() {
		t.Fatal("esc should close the assistant")
	}
	if got := a.sess.Assistant.Len(); got != before+2 {
		t.Fatalf("closing changed the transcript: %d turns", got)
	}
}

func TestEmptyAssistantSendIsNoOp(t *testing.T) {
	a := testApp(t)

	press(a, "a")
	if cmd := press(a, "enter"); cmd != nil {
		t.Fatal("empty send should not schedule a reply")
	}
}

func TestViewRendersActiveTab(t *testing.T) {
	a := testApp(t)

	out := a.View()
	if !strings.Contains(out, "Modern Downtown Loft") {
		t.Error("properties view missing listing title")
	}
	if !strings.Contains(out, "$785,000") {
		t.Error("properties view missing formatted price")
	}

	a.sess.SetTab(session.TabCommunications)
	out = ansi.Strip(a.View())
	if !strings.Contains(out, "Sarah Johnson") {
		t.Error("communications view missing sender")
	}
	if !strings.Contains(out, "This rate is competitive.") {
		t.Error("communications view missing annotation for selected message")
	}
}

func TestMoneyFormatting(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0"},
		{78_500_000, "$785,000"},
		{125_000_000, "$1,250,000"},
		{99_900, "$999"},
		{-150_000, "-$1,500"},
	}
	for _, c := range cases {
		if got := money(c.cents); got != c.want {
			t.Errorf("money(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestRankProperties(t *testing.T) {
	props := []repository.Property{
		{ID: "p1", Title: "Modern Downtown Loft"},
		{ID: "p2", Title: "Seaside Villa"},
		{ID: "p3", Title: "Mountain Retreat"},
	}

	got := rankProperties(props, "villa")
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("substring match = %+v, want p2 only", got)
	}

	got = rankProperties(props, "lofft")
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("fuzzy match = %+v, want p1 only", got)
	}

	if got = rankProperties(props, "zzzzzz"); len(got) != 0 {
		t.Fatalf("distant query matched %+v, want nothing", got)
	}

	if got = rankProperties(props, "  "); len(got) != 3 {
		t.Fatalf("blank query should keep all properties, got %d", len(got))
	}
}

func TestCompositeDockKeepsBaseOutsidePanel(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat(strings.Repeat("x", 20)+"\n", 8), "\n")
	out := compositeDock(base, "hi", 20, 8)

	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("height = %d, want 8", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 20 {
			t.Errorf("line %d width = %d, want 20", i, w)
		}
	}
	if !strings.HasPrefix(ansi.Strip(lines[0]), "xxxx") {
		t.Error("top of base should be untouched")
	}
	if !strings.Contains(ansi.Strip(out), "hi") {
		t.Error("panel content missing from composite")
	}
}

func TestCompositeCenterPlacesCard(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 30)+"\n", 10), "\n")
	out := ansi.Strip(compositeCenter(base, "modal", 30, 10))

	if !strings.Contains(out, "modal") {
		t.Fatal("card content missing")
	}
	lines := strings.Split(out, "\n")
	if strings.Contains(lines[0], "modal") {
		t.Error("card should not touch the top row")
	}
}
