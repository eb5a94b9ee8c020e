package domain

import "time"

// LiveTicketID identifies the single ticket bound to the running chat
// session. It is always pinned first in triage views.
const LiveTicketID = "LIVE-CHAT-001"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusResolved   TicketStatus = "Resolved"
	TicketStatusClosed     TicketStatus = "Closed"
)

// Terminal reports whether no further status transitions are allowed.
func (s TicketStatus) Terminal() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}

// TicketPriority enumerates triage urgency.
type TicketPriority string

const (
	TicketPriorityHigh   TicketPriority = "High"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityLow    TicketPriority = "Low"
)

// Rank maps priorities to a sortable weight (High outranks Low).
func (p TicketPriority) Rank() int {
	switch p {
	case TicketPriorityHigh:
		return 3
	case TicketPriorityMedium:
		return 2
	case TicketPriorityLow:
		return 1
	}
	return 0
}

// TicketCategory is the closed set of routing categories.
type TicketCategory string

const (
	CategoryNetwork  TicketCategory = "Network"
	CategoryHardware TicketCategory = "Hardware"
	CategorySoftware TicketCategory = "Software"
	CategoryAccess   TicketCategory = "Access"
	CategoryOther    TicketCategory = "Other"
)

// ValidCategory reports whether v belongs to the closed category set.
func ValidCategory(v TicketCategory) bool {
	switch v {
	case CategoryNetwork, CategoryHardware, CategorySoftware, CategoryAccess, CategoryOther:
		return true
	}
	return false
}

// TicketSource identifies the intake channel.
type TicketSource string

const (
	SourcePortal TicketSource = "Portal"
	SourceEmail  TicketSource = "Email"
	SourceChat   TicketSource = "Chat"
	SourcePhone  TicketSource = "Phone"
)

// Sentiment labels the emotional tone detected in a conversation.
type Sentiment string

const (
	SentimentPositive   Sentiment = "Positive"
	SentimentNeutral    Sentiment = "Neutral"
	SentimentNegative   Sentiment = "Negative"
	SentimentFrustrated Sentiment = "Frustrated"
)

// Alerting reports whether the sentiment should raise a triage warning.
func (s Sentiment) Alerting() bool {
	return s == SentimentNegative || s == SentimentFrustrated
}

// SentimentBand groups a 0-100 sentiment score into a display band.
type SentimentBand string

const (
	BandCritical SentimentBand = "critical"
	BandWarning  SentimentBand = "warning"
	BandCalm     SentimentBand = "calm"
)

// BandForScore maps a sentiment score to its band: <=30 critical,
// <=60 warning, otherwise calm.
func BandForScore(score int) SentimentBand {
	switch {
	case score <= 30:
		return BandCritical
	case score <= 60:
		return BandWarning
	}
	return BandCalm
}

// BilingualText holds the RU/KZ variants of a generated summary.
type BilingualText struct {
	RU string `json:"ru"`
	KZ string `json:"kz"`
}

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID             string
	RequesterID    string
	Description    string
	Status         TicketStatus
	Priority       TicketPriority
	Category       TicketCategory
	Department     string
	Source         TicketSource
	Summary        BilingualText
	Sentiment      Sentiment
	SentimentScore int
	Messages       []Message
	Attachments    []Attachment
	AIFilled       bool
	CreatedAt      time.Time
}

// Live reports whether this is the chat-session ticket.
func (t *Ticket) Live() bool {
	return t.ID == LiveTicketID
}

// CanTransition reports whether a status change is allowed. Transitions move
// forward only; the live ticket may additionally jump straight to Closed
// (inactivity timeout or explicit close).
func (t *Ticket) CanTransition(next TicketStatus) bool {
	if t.Live() && next == TicketStatusClosed {
		return true
	}
	for _, candidate := range allowedTransitions[t.Status] {
		if candidate == next {
			return true
		}
	}
	return false
}

var allowedTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusOpen:       {TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed},
	TicketStatusInProgress: {TicketStatusResolved, TicketStatusClosed},
	TicketStatusResolved:   {},
	TicketStatusClosed:     {},
}
