// Package store holds the shared in-memory ticket collection read by both
// the chat session and the admin triage views. Every mutation replaces the
// backing list with a fresh copy, so readers only ever observe complete
// snapshots, and publishes a typed event through the dispatcher.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/events"
	"github.com/qolda-ai/support-desk/internal/i18n"
	apperrors "github.com/qolda-ai/support-desk/pkg/util"
)

// Filter selects tickets by lifecycle stage.
type Filter string

const (
	FilterActive   Filter = "Active"
	FilterResolved Filter = "Resolved"
	FilterAll      Filter = "All"
)

// Sort selects the queue ordering. The live ticket is pinned first
// regardless of the chosen sort.
type Sort string

const (
	SortDate     Sort = "Date"
	SortPriority Sort = "Priority"
	SortCategory Sort = "Category"
)

// Query combines a filter and sort for queue listings.
type Query struct {
	Filter Filter
	Sort   Sort
}

// AttributeChanges carries a partial attribute merge from a classification
// result or a manual edit. Zero values leave the current field untouched.
type AttributeChanges struct {
	Priority       domain.TicketPriority
	Category       domain.TicketCategory
	Department     string
	Sentiment      domain.Sentiment
	SentimentScore *int
}

// TicketStore is the single ordered ticket collection.
type TicketStore struct {
	mu         sync.RWMutex
	tickets    []domain.Ticket
	dispatcher events.Dispatcher
}

// New creates a store seeded with the live chat ticket.
func New(dispatcher events.Dispatcher) *TicketStore {
	s := &TicketStore{dispatcher: dispatcher}
	s.tickets = []domain.Ticket{newLiveTicket()}
	return s
}

func newLiveTicket() domain.Ticket {
	return domain.Ticket{
		ID:             domain.LiveTicketID,
		RequesterID:    "Current User (You)",
		Description:    "Live Chat Session",
		Status:         domain.TicketStatusOpen,
		Priority:       domain.TicketPriorityMedium,
		Category:       domain.CategoryOther,
		Department:     "Support",
		Source:         domain.SourceChat,
		Summary:        domain.BilingualText{RU: "Новый чат", KZ: "Жаңа чат"},
		Sentiment:      domain.SentimentNeutral,
		SentimentScore: 50,
		CreatedAt:      time.Now(),
	}
}

// Seed appends pre-existing tickets, keeping the live ticket in place.
func (s *TicketStore) Seed(tickets []domain.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Ticket, 0, len(s.tickets)+len(tickets))
	next = append(next, s.tickets...)
	next = append(next, tickets...)
	s.tickets = next
}

// List returns a snapshot of the queue for the given query.
func (s *TicketStore) List(q Query) []domain.Ticket {
	s.mu.RLock()
	snapshot := s.tickets
	s.mu.RUnlock()

	out := make([]domain.Ticket, 0, len(snapshot))
	for _, t := range snapshot {
		switch q.Filter {
		case FilterActive:
			if t.Status.Terminal() {
				continue
			}
		case FilterResolved:
			if !t.Status.Terminal() {
				continue
			}
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Live() != b.Live() {
			return a.Live()
		}
		switch q.Sort {
		case SortPriority:
			return a.Priority.Rank() > b.Priority.Rank()
		case SortCategory:
			return a.Category < b.Category
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
	return out
}

// Get returns the ticket with the given id.
func (s *TicketStore) Get(id string) (domain.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickets {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Ticket{}, false
}

// Live returns the chat-session ticket.
func (s *TicketStore) Live() domain.Ticket {
	t, _ := s.Get(domain.LiveTicketID)
	return t
}

// ActiveCount reports how many tickets are not yet Resolved or Closed.
func (s *TicketStore) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, t := range s.tickets {
		if !t.Status.Terminal() {
			n++
		}
	}
	return n
}

// Insert prepends a new ticket. IDs must be unique within the store.
func (s *TicketStore) Insert(ctx context.Context, lang i18n.Lang, ticket domain.Ticket) error {
	s.mu.Lock()
	for _, t := range s.tickets {
		if t.ID == ticket.ID {
			s.mu.Unlock()
			return apperrors.NewConflict("ticket id already exists", map[string]any{"id": ticket.ID})
		}
	}
	next := make([]domain.Ticket, 0, len(s.tickets)+1)
	next = append(next, ticket)
	next = append(next, s.tickets...)
	s.tickets = next
	s.mu.Unlock()

	s.publish(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Lang:     lang,
		Payload: events.TicketCreatedPayload{
			Category: ticket.Category,
			Priority: ticket.Priority,
			Source:   ticket.Source,
			Summary:  ticket.Summary,
		},
	})
	return nil
}

// AppendMessage adds a message to a ticket's conversation. For the live
// ticket the description mirrors the latest message text, matching what the
// triage queue shows for an ongoing chat.
func (s *TicketStore) AppendMessage(ctx context.Context, lang i18n.Lang, ticketID string, msg domain.Message) error {
	err := s.replace(ticketID, func(t *domain.Ticket) error {
		msgs := make([]domain.Message, len(t.Messages), len(t.Messages)+1)
		copy(msgs, t.Messages)
		t.Messages = append(msgs, msg)
		if t.Live() {
			t.Description = msg.Text
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketMessageAdded,
		TicketID: ticketID,
		Lang:     lang,
		Payload: events.TicketMessageAddedPayload{
			MessageID: msg.ID,
			Sender:    msg.Sender,
		},
	})
	return nil
}

// UpdateAttributes merges classification or edit results into a ticket.
// Last write wins; there is no ordering guarantee between overlapping
// classification calls beyond arrival order.
func (s *TicketStore) UpdateAttributes(ctx context.Context, lang i18n.Lang, ticketID string, changes AttributeChanges, fromChat bool) error {
	var sentiment domain.Sentiment
	var score int
	err := s.replace(ticketID, func(t *domain.Ticket) error {
		if changes.Priority != "" {
			t.Priority = changes.Priority
		}
		if changes.Category != "" {
			t.Category = changes.Category
		}
		if changes.Department != "" {
			t.Department = changes.Department
		}
		if changes.Sentiment != "" {
			t.Sentiment = changes.Sentiment
		}
		if changes.SentimentScore != nil {
			t.SentimentScore = *changes.SentimentScore
		}
		sentiment = t.Sentiment
		score = t.SentimentScore
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketAttributesUpdated,
		TicketID: ticketID,
		Lang:     lang,
		Payload: events.TicketAttributesUpdatedPayload{
			Sentiment:      sentiment,
			SentimentScore: score,
			FromChat:       fromChat,
		},
	})
	return nil
}

// SetSummary replaces a ticket's bilingual summary.
func (s *TicketStore) SetSummary(ctx context.Context, lang i18n.Lang, ticketID string, summary domain.BilingualText) error {
	return s.replace(ticketID, func(t *domain.Ticket) error {
		t.Summary = summary
		return nil
	})
}

// ClearAIFilled drops the AI-filled indicator after a manual edit.
func (s *TicketStore) ClearAIFilled(ticketID string) error {
	return s.replace(ticketID, func(t *domain.Ticket) error {
		t.AIFilled = false
		return nil
	})
}

// SetStatus transitions a ticket's status, enforcing forward-only moves.
func (s *TicketStore) SetStatus(ctx context.Context, lang i18n.Lang, ticketID string, next domain.TicketStatus) error {
	var old domain.TicketStatus
	err := s.replace(ticketID, func(t *domain.Ticket) error {
		if t.Status == next {
			return nil
		}
		if !t.CanTransition(next) {
			return apperrors.NewConflict("invalid status transition", map[string]any{
				"from": t.Status,
				"to":   next,
			})
		}
		old = t.Status
		t.Status = next
		return nil
	})
	if err != nil {
		return err
	}
	if old == "" || old == next {
		return nil
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticketID,
		Lang:     lang,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: old,
			NewStatus: next,
		},
	})
	return nil
}

// replace rebuilds the ticket list with the mutated ticket swapped in.
func (s *TicketStore) replace(ticketID string, mutate func(*domain.Ticket) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID != ticketID {
			continue
		}
		updated := s.tickets[i]
		if err := mutate(&updated); err != nil {
			return err
		}
		next := make([]domain.Ticket, len(s.tickets))
		copy(next, s.tickets)
		next[i] = updated
		s.tickets = next
		return nil
	}
	return apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
}

func (s *TicketStore) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
