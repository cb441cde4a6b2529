package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentally/buyerdesk/internal/advisor"
	"github.com/agentally/buyerdesk/internal/config"
	"github.com/agentally/buyerdesk/internal/database/repository"
	"github.com/agentally/buyerdesk/internal/session"
)

// Repos groups the read-side repositories the dashboard consumes.
type Repos struct {
	Properties *repository.PropertyRepo
	Offers     *repository.OfferRepo
	Messages   *repository.MessageRepo
	Timeline   *repository.TimelineRepo
	Market     *repository.MarketRepo
	Dashboard  *repository.DashboardRepo
}

// App ties the seed data, the session state aggregate, and the assistant
// backend together behind one bubbletea model.
type App struct {
	ctx      context.Context
	cfg      config.Config
	repos    Repos
	provider advisor.Provider

	sess *session.Session

	width  int
	height int
	status string

	properties []repository.Property
	propTitle  map[string]string
	templates  []repository.OfferTemplate
	stages     []repository.TimelineStage
	market     []repository.MarketPoint
	insights   []repository.MarketInsight
	stats      []repository.BuyerStat

	// properties tab
	propCursor  int
	propMode    string
	searchOpen  bool
	searchQuery string

	// wizard
	wizardCursor int
	formField    int

	// communications
	msgCursor int
}

func New(ctx context.Context, cfg config.Config, repos Repos, provider advisor.Provider) *App {
	return &App{
		ctx:      ctx,
		cfg:      cfg,
		repos:    repos,
		provider: provider,
		propMode: "saved",
		width:    100,
		height:   34,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadSeed()
}

// messages

type seedLoadedMsg struct {
	properties  []repository.Property
	templates   []repository.OfferTemplate
	stages      []repository.TimelineStage
	market      []repository.MarketPoint
	insights    []repository.MarketInsight
	stats       []repository.BuyerStat
	messages    []repository.Message
	annotations map[string]string
	openers     []repository.ChatOpener
	saved       []repository.SavedOffer
}

type assistantReplyMsg struct {
	text string
}

type statusMsg string

type errMsg struct{ error }

// commands

func (a *App) loadSeed() tea.Cmd {
	return func() tea.Msg {
		var m seedLoadedMsg
		var err error
		if m.properties, err = a.repos.Properties.List(a.ctx); err != nil {
			return errMsg{err}
		}
		if m.templates, err = a.repos.Offers.ListTemplates(a.ctx); err != nil {
			return errMsg{err}
		}
		if m.saved, err = a.repos.Offers.ListSaved(a.ctx); err != nil {
			return errMsg{err}
		}
		if m.messages, err = a.repos.Messages.List(a.ctx); err != nil {
			return errMsg{err}
		}
		if m.annotations, err = a.repos.Messages.Annotations(a.ctx); err != nil {
			return errMsg{err}
		}
		if m.stages, err = a.repos.Timeline.ListStages(a.ctx); err != nil {
			return errMsg{err}
		}
		if m.market, err = a.repos.Market.ListPoints(a.ctx); err != nil {
			return errMsg{err}
		}
		if m.insights, err = a.repos.Market.ListInsights(a.ctx); err != nil {
			return errMsg{err}
		}
		if m.stats, err = a.repos.Dashboard.ListStats(a.ctx); err != nil {
			return errMsg{err}
		}
		if m.openers, err = a.repos.Dashboard.ListOpeners(a.ctx); err != nil {
			return errMsg{err}
		}
		return m
	}
}

// assistantReplyCmd resolves one deferred reply. The snapshot captures the
// transcript as of the send; the append itself happens back in Update against
// the live transcript, so overlapping sends each land exactly one reply.
func (a *App) assistantReplyCmd(snapshot []session.Turn) tea.Cmd {
	delay := time.Duration(a.cfg.Assistant.DelayMS) * time.Millisecond
	if delay <= 0 {
		delay = time.Millisecond
	}
	provider := a.provider
	ctx := a.ctx
	turns := make([]advisor.Turn, len(snapshot))
	for i, t := range snapshot {
		turns[i] = advisor.Turn{Speaker: string(t.Speaker), Text: t.Text}
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		reply, err := provider.Reply(ctx, turns)
		if err != nil {
			return errMsg{err}
		}
		return assistantReplyMsg{text: reply}
	})
}

func (a *App) markReadCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.repos.Messages.MarkRead(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case seedLoadedMsg:
		a.applySeed(m)
	case assistantReplyMsg:
		if a.sess != nil {
			a.sess.Assistant.AppendReply(m.text)
		}
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) applySeed(m seedLoadedMsg) {
	a.properties = m.properties
	a.templates = m.templates
	a.stages = m.stages
	a.market = m.market
	a.insights = m.insights
	a.stats = m.stats

	a.propTitle = make(map[string]string, len(m.properties))
	for _, p := range m.properties {
		a.propTitle[p.ID] = p.Title
	}

	opening := make([]session.Turn, 0, len(m.openers))
	for _, o := range m.openers {
		opening = append(opening, session.Turn{Speaker: session.Speaker(o.Speaker), Text: o.Body})
	}
	saved := make([]session.SavedOffer, 0, len(m.saved))
	for _, o := range m.saved {
		date, _ := time.Parse("Jan 2, 2006", o.Date)
		saved = append(saved, session.SavedOffer{
			ID:          o.ID,
			PropertyID:  o.PropertyID,
			Date:        date,
			Status:      o.Status,
			AmountCents: o.AmountCents,
		})
	}
	a.sess = session.New(session.Seed{
		Messages:    m.messages,
		Annotations: m.annotations,
		Opening:     opening,
		SavedOffers: saved,
	})
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.sess == nil {
		switch m.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}
	// text-entry surfaces first so typed letters never trigger shortcuts
	if a.sess.Assistant.IsOpen() {
		return a.handleChatKey(m)
	}
	if a.sess.Tab() == session.TabCommunications && a.sess.Inbox.ComposeOpen() {
		return a.handleComposeKey(m)
	}
	if a.sess.Tab() == session.TabProperties && a.searchOpen {
		return a.handleSearchKey(m)
	}

	switch {
	case key.Matches(m, keys.Quit):
		return a, tea.Quit
	case key.Matches(m, keys.Assistant):
		a.sess.Assistant.Open()
		return a, nil
	case key.Matches(m, keys.NextTab):
		a.cycleTab(1)
		return a, nil
	case key.Matches(m, keys.PrevTab):
		a.cycleTab(-1)
		return a, nil
	}
	if s := m.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '6' {
		a.sess.SetTab(session.TabOrder[s[0]-'1'])
		return a, nil
	}

	switch a.sess.Tab() {
	case session.TabProperties:
		return a.handlePropertiesKey(m)
	case session.TabOffers:
		return a.handleWizardKey(m)
	case session.TabCommunications:
		return a.handleInboxKey(m)
	}
	return a, nil
}

func (a *App) cycleTab(delta int) {
	cur := 0
	for i, t := range session.TabOrder {
		if t == a.sess.Tab() {
			cur = i
			break
		}
	}
	n := len(session.TabOrder)
	a.sess.SetTab(session.TabOrder[(cur+delta+n)%n])
}
