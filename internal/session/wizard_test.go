package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWizardAdvanceGuards(t *testing.T) {
	t.Parallel()

	w := NewWizard()
	require.Equal(t, StageProperty, w.Stage())

	w.Advance()
	require.Equal(t, StageProperty, w.Stage(), "advance without a property must not move")

	w.SelectProperty("prop-1")
	w.Advance()
	require.Equal(t, StageTemplate, w.Stage())

	// property selection is stage-1 only
	w.SelectProperty("prop-2")
	require.Equal(t, "prop-1", w.PropertyID())

	w.Advance()
	require.Equal(t, StageTemplate, w.Stage(), "advance without a template must not move")

	w.SelectTemplate("tpl-1")
	w.Advance()
	require.Equal(t, StageTerms, w.Stage())
	require.Nil(t, w.Draft(), "draft must not exist before the review transition")

	w.Advance()
	require.Equal(t, StageReview, w.Stage())
	require.NotNil(t, w.Draft())
	require.Equal(t, "prop-1", w.Draft().PropertyID)
	require.Equal(t, "tpl-1", w.Draft().TemplateID)

	w.Advance()
	require.Equal(t, StageReview, w.Stage(), "review is the final stage")
}

func TestWizardDraftSnapshotsForm(t *testing.T) {
	t.Parallel()

	w := NewWizard()
	w.SelectProperty("prop-1")
	w.Advance()
	w.SelectTemplate("tpl-1")
	w.Advance()

	form := w.Form()
	form.AmountCents = 76_500_000
	form.Contingencies.HomeSale = true
	w.SetForm(form)
	w.Advance()

	require.Equal(t, int64(76_500_000), w.Draft().AmountCents)
	require.True(t, w.Draft().Contingencies.HomeSale)

	// editing the form after materialization does not touch the draft
	form.AmountCents = 1
	w.SetForm(form)
	require.Equal(t, int64(76_500_000), w.Draft().AmountCents)
}

func TestWizardRetreatKeepsDownstreamSelections(t *testing.T) {
	t.Parallel()

	w := NewWizard()
	w.SelectProperty("prop-1")
	w.Advance()
	w.SelectTemplate("tpl-1")
	w.Advance()
	require.Equal(t, StageTerms, w.Stage())

	w.Retreat()
	w.Retreat()
	require.Equal(t, StageProperty, w.Stage())
	require.Equal(t, "tpl-1", w.TemplateID(), "going back must not discard later choices")

	w.Retreat()
	require.Equal(t, StageProperty, w.Stage(), "stage is floored at 1")
}

func TestWizardDefaultsAndReset(t *testing.T) {
	t.Parallel()

	w := NewWizard()
	form := w.Form()
	require.Equal(t, int64(1_500_000), form.EarnestCents)
	require.Equal(t, 30, form.ClosingDays)
	require.True(t, form.Contingencies.Inspection)
	require.True(t, form.Contingencies.Financing)
	require.True(t, form.Contingencies.Appraisal)
	require.False(t, form.Contingencies.HomeSale)

	w.SelectProperty("prop-1")
	w.Advance()
	w.SelectTemplate("tpl-1")
	w.Advance()
	form.EarnestCents = 1
	w.SetForm(form)

	w.Reset()
	require.Equal(t, StageProperty, w.Stage())
	require.Empty(t, w.PropertyID())
	require.Empty(t, w.TemplateID())
	require.Equal(t, int64(1_500_000), w.Form().EarnestCents)
	require.Nil(t, w.Draft())
}

func TestWizardTakeRequiresReview(t *testing.T) {
	t.Parallel()

	w := NewWizard()
	require.Nil(t, w.take())

	w.SelectProperty("prop-1")
	w.Advance()
	w.SelectTemplate("tpl-1")
	w.Advance()
	require.Nil(t, w.take(), "terms stage has no draft to take")

	w.Advance()
	d := w.take()
	require.NotNil(t, d)
	require.Equal(t, "prop-1", d.PropertyID)
	require.Equal(t, StageProperty, w.Stage(), "take resets the wizard")
	require.Nil(t, w.Draft())
}
