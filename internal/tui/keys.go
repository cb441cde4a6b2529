package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentally/buyerdesk/internal/database/repository"
	"github.com/agentally/buyerdesk/internal/session"
)

func (a *App) handleChatKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.sess.Assistant.Close()
		return a, nil
	case "enter":
		snapshot, ok := a.sess.Assistant.Send()
		if !ok {
			return a, nil
		}
		return a, a.assistantReplyCmd(snapshot)
	case "backspace":
		in := a.sess.Assistant.PendingInput()
		if in != "" {
			a.sess.Assistant.SetPendingInput(in[:len(in)-1])
		}
		return a, nil
	}
	if text, ok := keyText(m); ok {
		a.sess.Assistant.SetPendingInput(a.sess.Assistant.PendingInput() + text)
	}
	return a, nil
}

// keyText extracts printable input from a key press, treating space uniformly
// with runes.
func keyText(m tea.KeyMsg) (string, bool) {
	switch m.Type {
	case tea.KeySpace:
		return " ", true
	case tea.KeyRunes:
		return string(m.Runes), true
	}
	return "", false
}

func (a *App) handleComposeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.sess.Inbox.CloseCompose()
		return a, nil
	case "enter":
		a.sess.Inbox.CloseCompose()
		a.status = "message queued"
		return a, nil
	case "backspace":
		body := a.sess.Inbox.ComposeBody()
		if body != "" {
			a.sess.Inbox.SetComposeBody(body[:len(body)-1])
		}
		return a, nil
	}
	if text, ok := keyText(m); ok {
		a.sess.Inbox.SetComposeBody(a.sess.Inbox.ComposeBody() + text)
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.searchOpen = false
		a.searchQuery = ""
		a.propCursor = 0
		return a, nil
	case "enter":
		a.searchOpen = false
		return a, nil
	case "backspace":
		if a.searchQuery != "" {
			a.searchQuery = a.searchQuery[:len(a.searchQuery)-1]
		}
		a.propCursor = 0
		return a, nil
	}
	if text, ok := keyText(m); ok {
		a.searchQuery += text
		a.propCursor = 0
	}
	return a, nil
}

// visibleProperties applies the saved/recent toggle and any active fuzzy query.
func (a *App) visibleProperties() []repository.Property {
	props := a.properties
	if a.propMode == "recent" {
		rev := make([]repository.Property, len(props))
		for i, p := range props {
			rev[len(props)-1-i] = p
		}
		props = rev
	}
	if a.searchQuery != "" {
		props = rankProperties(props, a.searchQuery)
	}
	return props
}

func (a *App) handlePropertiesKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	props := a.visibleProperties()
	switch m.String() {
	case "up", "k":
		if a.propCursor > 0 {
			a.propCursor--
		}
	case "down", "j":
		if a.propCursor < len(props)-1 {
			a.propCursor++
		}
	case "s":
		a.propMode = "saved"
		a.propCursor = 0
	case "r":
		a.propMode = "recent"
		a.propCursor = 0
	case "/":
		a.searchOpen = true
		a.searchQuery = ""
		a.propCursor = 0
	case "o", "enter":
		if a.propCursor < len(props) {
			p := props[a.propCursor]
			a.sess.RequestOfferFor(p.ID)
			a.prefillAmount(p.ID)
			a.status = "drafting offer for " + p.Title
		}
	}
	return a, nil
}

func (a *App) prefillAmount(propertyID string) {
	for _, p := range a.properties {
		if p.ID == propertyID {
			form := a.sess.Wizard.Form()
			form.AmountCents = p.PriceCents
			a.sess.Wizard.SetForm(form)
			return
		}
	}
}

func (a *App) handleWizardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := a.sess.Wizard
	switch w.Stage() {
	case session.StageProperty:
		switch m.String() {
		case "up", "k":
			if a.wizardCursor > 0 {
				a.wizardCursor--
			}
		case "down", "j":
			if a.wizardCursor < len(a.properties)-1 {
				a.wizardCursor++
			}
		case "enter":
			if a.wizardCursor < len(a.properties) {
				p := a.properties[a.wizardCursor]
				w.SelectProperty(p.ID)
				a.prefillAmount(p.ID)
			}
		case "c":
			w.Advance()
			a.wizardCursor = 0
		case "b":
			w.Retreat()
		}
	case session.StageTemplate:
		switch m.String() {
		case "up", "k":
			if a.wizardCursor > 0 {
				a.wizardCursor--
			}
		case "down", "j":
			if a.wizardCursor < len(a.templates)-1 {
				a.wizardCursor++
			}
		case "enter":
			if a.wizardCursor < len(a.templates) {
				w.SelectTemplate(a.templates[a.wizardCursor].ID)
			}
		case "c":
			w.Advance()
			a.formField = 0
		case "b":
			w.Retreat()
			a.wizardCursor = 0
		}
	case session.StageTerms:
		a.handleTermsKey(m)
	case session.StageReview:
		switch m.String() {
		case "s":
			if offer := a.sess.SubmitOffer(); offer != nil {
				a.status = "offer submitted"
				a.wizardCursor = 0
				a.formField = 0
			}
		case "d":
			if offer := a.sess.SaveDraftOffer(); offer != nil {
				a.status = "draft saved"
				a.wizardCursor = 0
				a.formField = 0
			}
		case "b":
			w.Retreat()
		}
	}
	return a, nil
}

const (
	fieldAmount = iota
	fieldEarnest
	fieldClosing
	fieldInspection
	fieldFinancing
	fieldAppraisal
	fieldHomeSale
	fieldCount
)

func (a *App) handleTermsKey(m tea.KeyMsg) {
	w := a.sess.Wizard
	form := w.Form()
	switch m.String() {
	case "up", "k":
		if a.formField > 0 {
			a.formField--
		}
		return
	case "down", "j":
		if a.formField < fieldCount-1 {
			a.formField++
		}
		return
	case "c":
		w.Advance()
		return
	case "b":
		w.Retreat()
		a.wizardCursor = 0
		return
	case "enter", " ":
		switch a.formField {
		case fieldInspection:
			form.Contingencies.Inspection = !form.Contingencies.Inspection
		case fieldFinancing:
			form.Contingencies.Financing = !form.Contingencies.Financing
		case fieldAppraisal:
			form.Contingencies.Appraisal = !form.Contingencies.Appraisal
		case fieldHomeSale:
			form.Contingencies.HomeSale = !form.Contingencies.HomeSale
		}
		w.SetForm(form)
		return
	case "backspace":
		switch a.formField {
		case fieldAmount:
			form.AmountCents = form.AmountCents / 10 / 100 * 100
		case fieldEarnest:
			form.EarnestCents = form.EarnestCents / 10 / 100 * 100
		case fieldClosing:
			form.ClosingDays /= 10
		}
		w.SetForm(form)
		return
	}
	if m.Type == tea.KeyRunes && len(m.Runes) == 1 && m.Runes[0] >= '0' && m.Runes[0] <= '9' {
		d := int64(m.Runes[0] - '0')
		switch a.formField {
		case fieldAmount:
			form.AmountCents = form.AmountCents*10 + d*100
		case fieldEarnest:
			form.EarnestCents = form.EarnestCents*10 + d*100
		case fieldClosing:
			form.ClosingDays = form.ClosingDays*10 + int(d)
		}
		w.SetForm(form)
	}
}

func (a *App) handleInboxKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := a.sess.Inbox.Visible()
	switch m.String() {
	case "up", "k":
		if a.msgCursor > 0 {
			a.msgCursor--
		}
	case "down", "j":
		if a.msgCursor < len(visible)-1 {
			a.msgCursor++
		}
	case "enter":
		if a.msgCursor < len(visible) {
			id := visible[a.msgCursor].ID
			if a.sess.Inbox.SelectMessage(id) {
				return a, a.markReadCmd(id)
			}
		}
	case "f":
		a.cycleFilter()
	case "c":
		a.sess.Inbox.OpenCompose()
	}
	return a, nil
}

func (a *App) cycleFilter() {
	cur := a.sess.Inbox.Filter()
	next := 0
	for i, f := range session.Filters {
		if f == cur {
			next = (i + 1) % len(session.Filters)
			break
		}
	}
	a.sess.Inbox.SetFilter(session.Filters[next])
	if n := len(a.sess.Inbox.Visible()); a.msgCursor >= n && n > 0 {
		a.msgCursor = n - 1
	}
}

func truncateWords(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	if i := strings.LastIndexByte(cut, ' '); i > max/2 {
		cut = cut[:i]
	}
	return cut + "…"
}
