package session

// Wizard stages. The flow is property -> template -> terms -> review.
const (
	StageProperty = 1
	StageTemplate = 2
	StageTerms    = 3
	StageReview   = 4
)

// Contingencies is the optional-clause set carried by an offer.
type Contingencies struct {
	Inspection bool
	Financing  bool
	Appraisal  bool
	HomeSale   bool
}

// OfferForm holds the stage-3 term fields. Values are free-form until the
// draft is materialized; there is no field-level validation beyond presence.
type OfferForm struct {
	AmountCents   int64
	EarnestCents  int64
	ClosingDays   int
	Contingencies Contingencies
}

// OfferDraft is the in-progress offer. It exists only between the stage 3->4
// transition and submit/save/reset; at most one draft exists at a time.
type OfferDraft struct {
	PropertyID string
	TemplateID string
	OfferForm
}

// Wizard drives the guided offer-creation flow. Every operation is a total
// function: preconditions that do not hold make the operation a silent no-op,
// so the surrounding interface can rely on disabled affordances instead of
// error surfaces.
type Wizard struct {
	stage      int
	propertyID string
	templateID string
	form       OfferForm
	draft      *OfferDraft
}

func NewWizard() *Wizard {
	return &Wizard{stage: StageProperty, form: defaultForm()}
}

func defaultForm() OfferForm {
	return OfferForm{
		EarnestCents: 1_500_000,
		ClosingDays:  30,
		Contingencies: Contingencies{
			Inspection: true,
			Financing:  true,
			Appraisal:  true,
		},
	}
}

func (w *Wizard) Stage() int           { return w.stage }
func (w *Wizard) PropertyID() string   { return w.propertyID }
func (w *Wizard) TemplateID() string   { return w.templateID }
func (w *Wizard) Form() OfferForm      { return w.form }
func (w *Wizard) Draft() *OfferDraft   { return w.draft }
func (w *Wizard) SetForm(f OfferForm)  { w.form = f }

// SelectProperty records the chosen property. Only meaningful on stage 1;
// elsewhere it is ignored. It never advances the stage.
func (w *Wizard) SelectProperty(id string) {
	if w.stage != StageProperty {
		return
	}
	w.propertyID = id
}

// SelectTemplate records the chosen template. Only meaningful on stage 2.
func (w *Wizard) SelectTemplate(id string) {
	if w.stage != StageTemplate {
		return
	}
	w.templateID = id
}

// adoptProperty overwrites the property selection regardless of stage. Used
// for the cross-tab "make an offer on this property" handoff, which by policy
// does not rewind an in-flight wizard session.
func (w *Wizard) adoptProperty(id string) {
	w.propertyID = id
}

// Advance moves to the next stage when the current stage's selection is
// present. The draft is materialized from the current form values at the
// stage 3->4 transition and not before.
func (w *Wizard) Advance() {
	switch w.stage {
	case StageProperty:
		if w.propertyID == "" {
			return
		}
		w.stage = StageTemplate
	case StageTemplate:
		if w.templateID == "" {
			return
		}
		w.stage = StageTerms
	case StageTerms:
		form := w.form
		w.draft = &OfferDraft{PropertyID: w.propertyID, TemplateID: w.templateID, OfferForm: form}
		w.stage = StageReview
	}
}

// Retreat steps back one stage, floored at 1. Downstream selections are kept
// so returning to an earlier stage does not discard later choices.
func (w *Wizard) Retreat() {
	if w.stage > StageProperty {
		w.stage--
	}
}

// Reset clears every selection and returns to stage 1.
func (w *Wizard) Reset() {
	w.stage = StageProperty
	w.propertyID = ""
	w.templateID = ""
	w.form = defaultForm()
	w.draft = nil
}

// take returns the draft and resets the wizard. Nil when not on stage 4.
func (w *Wizard) take() *OfferDraft {
	if w.stage != StageReview || w.draft == nil {
		return nil
	}
	d := w.draft
	w.Reset()
	return d
}
