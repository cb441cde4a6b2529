package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentally/buyerdesk/internal/session"
)

var (
	colorAccent = lipgloss.Color("#fab387")
	colorMuted  = lipgloss.Color("#9399b2")
	colorFaint  = lipgloss.Color("#585b70")
	colorGood   = lipgloss.Color("#a6e3a1")
	colorAlert  = lipgloss.Color("#f38ba8")

	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	unreadStyle   = lipgloss.NewStyle().Foreground(colorAlert).Bold(true)
	goodStyle     = lipgloss.NewStyle().Foreground(colorGood)
	faintStyle    = lipgloss.NewStyle().Foreground(colorFaint)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var tabLabels = map[session.Tab]string{
	session.TabProperties:     "Properties",
	session.TabOffers:         "Offers",
	session.TabSavedOffers:    "Saved Offers",
	session.TabCommunications: "Communications",
	session.TabMarket:         "Market Analysis",
	session.TabTimeline:       "Timeline",
}

func (a *App) View() string {
	if a.sess == nil {
		return "loading buyerdesk..."
	}
	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	switch a.sess.Tab() {
	case session.TabProperties:
		b.WriteString(a.viewProperties())
	case session.TabOffers:
		b.WriteString(a.viewOffers())
	case session.TabSavedOffers:
		b.WriteString(a.viewSavedOffers())
	case session.TabCommunications:
		b.WriteString(a.viewCommunications())
	case session.TabMarket:
		b.WriteString(a.viewMarket())
	case session.TabTimeline:
		b.WriteString(a.viewTimeline())
	}
	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	out := b.String()
	if a.sess.Tab() == session.TabCommunications && a.sess.Inbox.ComposeOpen() {
		out = compositeCenter(out, a.renderCompose(), a.width, a.height)
	}
	if a.sess.Assistant.IsOpen() {
		out = compositeDock(out, a.renderChat(), a.width, a.height)
	}
	return out
}

func (a *App) renderHeader() string {
	brand := titleStyle.Render("Agent Ally — Home Buying Dashboard")
	unread := a.sess.Inbox.UnreadCount()
	if unread > 0 {
		brand += unreadStyle.Render(fmt.Sprintf("  (%d unread)", unread))
	}

	cards := make([]string, 0, len(a.stats))
	for _, s := range a.stats {
		cards = append(cards, cardStyle.Render(
			selectedStyle.Render(strconv.Itoa(s.Value))+"\n"+labelStyle.Render(s.Label),
		))
	}
	statRow := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	tabs := make([]string, 0, len(session.TabOrder))
	for i, t := range session.TabOrder {
		label := fmt.Sprintf("%d:%s", i+1, tabLabels[t])
		if t == a.sess.Tab() {
			tabs = append(tabs, selectedStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, labelStyle.Render(" "+label+" "))
		}
	}
	return brand + "\n" + statRow + "\n" + strings.Join(tabs, " ")
}

func (a *App) renderFooter() string {
	help := faintStyle.Render(helpFor(a.sess.Tab()))
	if a.status == "" {
		return help
	}
	return help + "\n" + labelStyle.Render(a.status)
}

func (a *App) viewProperties() string {
	var b strings.Builder
	mode := "Saved Properties"
	if a.propMode == "recent" {
		mode = "Recently Viewed"
	}
	b.WriteString(titleStyle.Render(mode))
	if a.searchOpen || a.searchQuery != "" {
		b.WriteString(labelStyle.Render("   search: ") + a.searchQuery)
		if a.searchOpen {
			b.WriteString(selectedStyle.Render("▌"))
		}
	}
	b.WriteString("\n")

	props := a.visibleProperties()
	if len(props) == 0 {
		b.WriteString(faintStyle.Render("no properties match\n"))
		return b.String()
	}
	for i, p := range props {
		marker := "  "
		line := fmt.Sprintf("%-26s %10s  %.0fbd %.1fba  %s sqft\n%s",
			p.Title, money(p.PriceCents), p.Beds, p.Baths, groupDigits(p.Sqft), "    "+p.Address)
		if i == a.propCursor {
			marker = selectedStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}
	return b.String()
}

func (a *App) viewOffers() string {
	var b strings.Builder
	w := a.sess.Wizard
	b.WriteString(titleStyle.Render("Create New Offer"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("   step %d of 4\n", w.Stage())))

	steps := []string{"Property", "Template", "Terms", "Review"}
	for i, s := range steps {
		stage := i + 1
		switch {
		case stage == w.Stage():
			b.WriteString(selectedStyle.Render("●" + s + " "))
		case stage < w.Stage():
			b.WriteString(goodStyle.Render("✓" + s + " "))
		default:
			b.WriteString(faintStyle.Render("○" + s + " "))
		}
	}
	b.WriteString("\n\n")

	switch w.Stage() {
	case session.StageProperty:
		b.WriteString("Select a property:\n")
		for i, p := range a.properties {
			marker := "  "
			check := " "
			if p.ID == w.PropertyID() {
				check = goodStyle.Render("✓")
			}
			line := fmt.Sprintf("[%s] %-26s %s", check, p.Title, money(p.PriceCents))
			if i == a.wizardCursor {
				marker = selectedStyle.Render("> ")
			}
			b.WriteString(marker + line + "\n")
		}
	case session.StageTemplate:
		b.WriteString("Choose an offer template:\n")
		for i, t := range a.templates {
			marker := "  "
			check := " "
			if t.ID == w.TemplateID() {
				check = goodStyle.Render("✓")
			}
			line := fmt.Sprintf("[%s] %s\n      %s", check, t.Name, faintStyle.Render(t.Description))
			if i == a.wizardCursor {
				marker = selectedStyle.Render("> ")
			}
			b.WriteString(marker + line + "\n")
		}
	case session.StageTerms:
		b.WriteString(a.viewTermsForm())
	case session.StageReview:
		b.WriteString(a.viewReview())
	}
	return b.String()
}

func (a *App) viewTermsForm() string {
	form := a.sess.Wizard.Form()
	rows := []struct {
		label string
		value string
	}{
		{"Offer amount", money(form.AmountCents)},
		{"Earnest money", money(form.EarnestCents)},
		{"Closing window", fmt.Sprintf("%d days", form.ClosingDays)},
		{"Inspection contingency", checkbox(form.Contingencies.Inspection)},
		{"Financing contingency", checkbox(form.Contingencies.Financing)},
		{"Appraisal contingency", checkbox(form.Contingencies.Appraisal)},
		{"Home sale contingency", checkbox(form.Contingencies.HomeSale)},
	}
	var b strings.Builder
	b.WriteString("Offer terms:\n")
	for i, r := range rows {
		marker := "  "
		line := fmt.Sprintf("%-24s %s", r.label, r.value)
		if i == a.formField {
			marker = selectedStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}
	b.WriteString(faintStyle.Render("type digits to edit, enter/space toggles contingencies\n"))
	return b.String()
}

func (a *App) viewReview() string {
	draft := a.sess.Wizard.Draft()
	if draft == nil {
		return faintStyle.Render("nothing to review yet\n")
	}
	var b strings.Builder
	b.WriteString("Review your offer:\n")
	b.WriteString(fmt.Sprintf("  Property        %s\n", a.propTitle[draft.PropertyID]))
	b.WriteString(fmt.Sprintf("  Template        %s\n", a.templateName(draft.TemplateID)))
	b.WriteString(fmt.Sprintf("  Amount          %s\n", money(draft.AmountCents)))
	b.WriteString(fmt.Sprintf("  Earnest money   %s\n", money(draft.EarnestCents)))
	b.WriteString(fmt.Sprintf("  Closing         %d days\n", draft.ClosingDays))
	b.WriteString(fmt.Sprintf("  Contingencies   %s\n", contingencyList(draft.Contingencies)))
	b.WriteString(goodStyle.Render("  [s] Submit offer") + "   " + labelStyle.Render("[d] Save as draft") + "\n")
	return b.String()
}

func (a *App) viewSavedOffers() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Saved Offers") + "\n")
	offers := a.sess.Offers()
	if len(offers) == 0 {
		b.WriteString(faintStyle.Render("no saved offers yet\n"))
		return b.String()
	}
	for _, o := range offers {
		status := labelStyle.Render(o.Status)
		if o.Status == session.StatusSubmitted {
			status = goodStyle.Render(o.Status)
		}
		b.WriteString(fmt.Sprintf("  %-26s %10s  %s  %s\n",
			a.propTitle[o.PropertyID], money(o.AmountCents), o.Date.Format(a.dateFormat()), status))
	}
	return b.String()
}

func (a *App) viewCommunications() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Communications Hub"))
	b.WriteString(labelStyle.Render("   filter: ") + selectedStyle.Render(a.sess.Inbox.Filter()))
	b.WriteString("\n")

	visible := a.sess.Inbox.Visible()
	selected := a.sess.Inbox.Selected()
	for i, m := range visible {
		marker := "  "
		dot := " "
		if m.Unread {
			dot = unreadStyle.Render("●")
		}
		line := fmt.Sprintf("%s %-22s %-34s %s", dot, m.Sender, truncateWords(m.Subject, 34), faintStyle.Render(m.Date))
		if i == a.msgCursor {
			marker = selectedStyle.Render("> ")
		}
		if selected != nil && m.ID == selected.ID {
			line = selectedStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}

	if selected != nil {
		b.WriteString("\n")
		b.WriteString(selectedStyle.Render(selected.Subject) + "\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%s — %s  %s\n", selected.Sender, selected.SenderRole, selected.Date)))
		b.WriteString(selected.Body + "\n")
		if len(selected.Attachments) > 0 {
			b.WriteString(labelStyle.Render("Attachments: "))
			names := make([]string, 0, len(selected.Attachments))
			for _, att := range selected.Attachments {
				names = append(names, fmt.Sprintf("%s (%s)", att.Name, att.Size))
			}
			b.WriteString(strings.Join(names, ", ") + "\n")
		}
		if advice, ok := a.sess.Inbox.AnnotationFor(selected.ID); ok {
			b.WriteString(cardStyle.Render(goodStyle.Render("Ally: ")+advice) + "\n")
		}
	}
	return b.String()
}

func (a *App) renderCompose() string {
	body := a.sess.Inbox.ComposeBody()
	return titleStyle.Render("New Message") + "\n\n" +
		body + selectedStyle.Render("▌") + "\n\n" +
		faintStyle.Render("[enter] Send  [esc] Cancel")
}

func (a *App) viewMarket() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Market Analysis — Median Price Trend ($k)") + "\n")
	chartWidth := a.width - 4
	if chartWidth > 72 {
		chartWidth = 72
	}
	b.WriteString(renderMarketChart(a.market, chartWidth))
	b.WriteString("\n\n")

	if len(a.market) >= 2 {
		first := a.market[0].Value
		last := a.market[len(a.market)-1].Value
		change := (last - first) / first * 100
		b.WriteString(renderIndicatorBar("Price growth (6mo)", fmt.Sprintf("%+.1f%%", change), change/50, 28) + "\n")
	}
	b.WriteString(renderIndicatorBar("Avg days on market", "18 days", 0.3, 28) + "\n")
	b.WriteString(renderIndicatorBar("Inventory level", "Low", 0.25, 28) + "\n\n")

	b.WriteString(titleStyle.Render("Neighborhood Insights") + "\n")
	for _, ins := range a.insights {
		b.WriteString(selectedStyle.Render("• "+ins.Area+": ") + ins.Body + "\n")
	}
	return b.String()
}

func (a *App) viewTimeline() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Purchase Timeline") + "\n")
	for _, st := range a.stages {
		var glyph string
		switch session.StageState(st) {
		case session.StageCompleted:
			glyph = goodStyle.Render("✓")
		case session.StageActive:
			glyph = selectedStyle.Render("●")
		default:
			glyph = faintStyle.Render("○")
		}
		name := st.Name
		if session.StageState(st) == session.StageActive {
			name = selectedStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s %-28s %s\n", glyph, name, faintStyle.Render(st.Date)))
		if st.Description != "" {
			b.WriteString(faintStyle.Render("   "+st.Description) + "\n")
		}
		if len(st.Tasks) > 0 {
			done, total := session.StageProgress(st)
			b.WriteString(labelStyle.Render(fmt.Sprintf("   %d/%d tasks done", done, total)) + "\n")
			for _, t := range st.Tasks {
				box := "[ ]"
				if t.Completed {
					box = goodStyle.Render("[x]")
				}
				due := ""
				if t.Due != nil {
					due = faintStyle.Render("  due " + *t.Due)
				}
				b.WriteString(fmt.Sprintf("   %s %s%s\n", box, t.Name, due))
			}
		}
	}
	return b.String()
}

func (a *App) renderChat() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ally — Your Home Buying Assistant") + "\n")
	turns := a.sess.Assistant.Transcript()
	start := 0
	if len(turns) > 8 {
		start = len(turns) - 8
	}
	for _, t := range turns[start:] {
		who := goodStyle.Render("Ally")
		if t.Speaker == session.SpeakerUser {
			who = selectedStyle.Render(a.cfg.UI.BuyerInitials)
		}
		b.WriteString(who + labelStyle.Render(" │ "))
		b.WriteString(wrapText(t.Text, 44) + "\n")
	}
	b.WriteString("\n" + labelStyle.Render("> ") + a.sess.Assistant.PendingInput() + selectedStyle.Render("▌") + "\n")
	b.WriteString(faintStyle.Render("[enter] Send  [esc] Close"))
	return b.String()
}

func (a *App) dateFormat() string {
	if a.cfg.UI.DateFormat == "" {
		return "Jan 2, 2006"
	}
	return a.cfg.UI.DateFormat
}

func (a *App) templateName(id string) string {
	for _, t := range a.templates {
		if t.ID == id {
			return t.Name
		}
	}
	return "—"
}

func checkbox(on bool) string {
	if on {
		return goodStyle.Render("[x]")
	}
	return "[ ]"
}

func contingencyList(c session.Contingencies) string {
	var parts []string
	if c.Inspection {
		parts = append(parts, "inspection")
	}
	if c.Financing {
		parts = append(parts, "financing")
	}
	if c.Appraisal {
		parts = append(parts, "appraisal")
	}
	if c.HomeSale {
		parts = append(parts, "home sale")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// money renders whole-dollar amounts with thousands separators.
func money(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := groupDigits(int(cents / 100))
	if neg {
		return "-$" + s
	}
	return "$" + s
}

func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteString(",")
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteString(",")
		}
	}
	return b.String()
}

func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n      ")
}
