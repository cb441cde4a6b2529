package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/agentally/buyerdesk/internal/database/repository"
)

// Tab identifies a top-level dashboard view.
type Tab string

const (
	TabProperties     Tab = "properties"
	TabOffers         Tab = "offers"
	TabSavedOffers    Tab = "saved-offers"
	TabCommunications Tab = "communications"
	TabMarket         Tab = "market"
	TabTimeline       Tab = "timeline"
)

// TabOrder is the rendering order of the dashboard tabs.
var TabOrder = []Tab{TabProperties, TabOffers, TabSavedOffers, TabCommunications, TabMarket, TabTimeline}

// OfferStatus values for saved offers.
const (
	StatusDraft     = "Draft"
	StatusSubmitted = "Submitted"
)

// SavedOffer is one row of the session's append-only offer list.
type SavedOffer struct {
	ID          string
	PropertyID  string
	Date        time.Time
	Status      string
	AmountCents int64
}

// Seed carries the immutable reference data loaded at session start.
type Seed struct {
	Messages    []repository.Message
	Annotations map[string]string
	Opening     []Turn
	SavedOffers []SavedOffer
}

// Session is the top-level state aggregate owned by the dashboard shell. It
// composes the controllers and carries the one piece of cross-component
// coordination: the offer-request handoff from the property list into the
// wizard. Sub-controllers never reach into each other.
type Session struct {
	tab       Tab
	Wizard    *Wizard
	Inbox     *Inbox
	Assistant *Assistant
	offers    []SavedOffer
	now       func() time.Time
}

func New(seed Seed) *Session {
	return &Session{
		tab:       TabProperties,
		Wizard:    NewWizard(),
		Inbox:     NewInbox(seed.Messages, seed.Annotations),
		Assistant: NewAssistant(seed.Opening),
		offers:    append([]SavedOffer(nil), seed.SavedOffers...),
		now:       time.Now,
	}
}

func (s *Session) Tab() Tab { return s.tab }

// SetTab switches the active dashboard view. No other controller state is
// touched, so leaving the wizard mid-flow and coming back resumes it.
func (s *Session) SetTab(t Tab) { s.tab = t }

// RequestOfferFor is the single cross-component command: a property card's
// "make an offer" action. It switches to the offers tab and hands the
// property to the wizard. When a wizard session is already past stage 1 the
// property selection is overwritten in place; the stage is never rewound.
func (s *Session) RequestOfferFor(propertyID string) {
	s.tab = TabOffers
	s.Wizard.adoptProperty(propertyID)
}

// SubmitOffer converts the stage-4 draft into a Submitted saved offer and
// resets the wizard. Outside stage 4 it is a silent no-op.
func (s *Session) SubmitOffer() *SavedOffer {
	return s.finishOffer(StatusSubmitted)
}

// SaveDraftOffer converts the stage-4 draft into a Draft saved offer and
// resets the wizard.
func (s *Session) SaveDraftOffer() *SavedOffer {
	return s.finishOffer(StatusDraft)
}

func (s *Session) finishOffer(status string) *SavedOffer {
	d := s.Wizard.take()
	if d == nil {
		return nil
	}
	offer := SavedOffer{
		ID:          uuid.NewString(),
		PropertyID:  d.PropertyID,
		Date:        s.now(),
		Status:      status,
		AmountCents: d.AmountCents,
	}
	s.offers = append(s.offers, offer)
	return &offer
}

// Offers returns the saved-offer list, oldest first.
func (s *Session) Offers() []SavedOffer {
	return append([]SavedOffer(nil), s.offers...)
}
