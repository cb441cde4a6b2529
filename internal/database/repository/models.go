package repository

// Property represents a listing row. Seed data; never mutated.
type Property struct {
	ID         string
	Title      string
	Address    string
	PriceCents int64
	Beds       float64
	Baths      float64
	Sqft       int
	ImageRef   string
	SortOrder  int
}

// OfferTemplate represents an offer template row.
type OfferTemplate struct {
	ID          string
	Name        string
	Description string
	SortOrder   int
}

// SavedOffer represents a previously saved or submitted offer.
type SavedOffer struct {
	ID          string
	PropertyID  string
	Date        string
	Status      string
	AmountCents int64
	SortOrder   int
}

// Attachment represents a document attached to a message.
type Attachment struct {
	Name string
	Size string
}

// Message represents a correspondence row. Immutable apart from Unread.
type Message struct {
	ID          string
	Category    string
	Sender      string
	SenderRole  string
	Subject     string
	Date        string
	Body        string
	Unread      bool
	SortOrder   int
	Attachments []Attachment
}

// TimelineTask is one checklist item inside a stage.
type TimelineTask struct {
	ID        string
	Name      string
	Completed bool
	Due       *string
	SortOrder int
}

// TimelineStage represents a transaction milestone row.
type TimelineStage struct {
	ID          string
	Name        string
	Completed   bool
	Active      bool
	Date        string
	Description string
	SortOrder   int
	Tasks       []TimelineTask
}

// MarketPoint is one month of the price-trend series.
type MarketPoint struct {
	Month     string
	Value     float64
	SortOrder int
}

// MarketInsight is one neighborhood insight line.
type MarketInsight struct {
	ID        string
	Area      string
	Body      string
	SortOrder int
}

// ChatOpener is one turn of the seeded opening conversation.
type ChatOpener struct {
	ID        string
	Speaker   string
	Body      string
	SortOrder int
}

// BuyerStat is one summary-card figure.
type BuyerStat struct {
	Key   string
	Label string
	Value int
}
