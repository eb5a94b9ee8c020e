package events

import (
	"time"

	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/i18n"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated           EventType = "ticket_created"
	EventTicketStatusChanged     EventType = "ticket_status_changed"
	EventTicketAttributesUpdated EventType = "ticket_attributes_updated"
	EventTicketMessageAdded      EventType = "ticket_message_added"
)

// Event represents a store mutation broadcast to subscribers. Lang carries
// the UI language active when the mutation happened, so derived artifacts
// (notification text) localize the way the triggering view did.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Lang      i18n.Lang   `json:"lang"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Category domain.TicketCategory `json:"category"`
	Priority domain.TicketPriority `json:"priority"`
	Source   domain.TicketSource   `json:"source"`
	Summary  domain.BilingualText  `json:"summary"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketAttributesUpdatedPayload payload. FromChat distinguishes the
// classification path from manual admin edits.
type TicketAttributesUpdatedPayload struct {
	Sentiment      domain.Sentiment `json:"sentiment"`
	SentimentScore int              `json:"sentiment_score"`
	FromChat       bool             `json:"from_chat"`
}

// TicketMessageAddedPayload payload.
type TicketMessageAddedPayload struct {
	MessageID string               `json:"message_id"`
	Sender    domain.MessageSender `json:"sender"`
}
