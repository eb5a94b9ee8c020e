package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/events"
	"github.com/qolda-ai/support-desk/internal/i18n"
)

// NotificationFeed derives the admin alert list from store events. Every
// negative or frustrated sentiment reported by the chat classification path
// appends a new warning; repeated negative turns are not de-duplicated.
type NotificationFeed struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu    sync.Mutex
	items []domain.Notification
}

// NewNotificationFeed creates the feed.
func NewNotificationFeed(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationFeed {
	return &NotificationFeed{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to store events.
func (f *NotificationFeed) RegisterHandlers() {
	if f.dispatcher == nil {
		return
	}
	f.dispatcher.Subscribe(events.EventTicketAttributesUpdated, f.handleAttributesUpdated)
	f.dispatcher.Subscribe(events.EventTicketCreated, f.handleTicketCreated)
}

// List returns the feed, newest first.
func (f *NotificationFeed) List() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Notification, len(f.items))
	copy(out, f.items)
	return out
}

// UnreadCount reports how many entries are unread.
func (f *NotificationFeed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, item := range f.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkAllRead flags every entry as read. This is the only mutation the feed
// supports.
func (f *NotificationFeed) MarkAllRead() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		f.items[i].Read = true
	}
}

func (f *NotificationFeed) handleAttributesUpdated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketAttributesUpdatedPayload)
	if !ok || !payload.FromChat || !payload.Sentiment.Alerting() {
		return nil
	}
	catalog := i18n.Lookup(event.Lang)
	f.append(domain.Notification{
		Title:    catalog.NotifNegativeTitle,
		Message:  catalog.NotifNegativeBody(event.TicketID),
		Severity: domain.SeverityWarning,
	})
	f.logger.Info("negative sentiment alert",
		zap.String("ticket_id", event.TicketID),
		zap.String("sentiment", string(payload.Sentiment)),
		zap.Int("score", payload.SentimentScore))
	return nil
}

func (f *NotificationFeed) handleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return nil
	}
	catalog := i18n.Lookup(event.Lang)
	f.append(domain.Notification{
		Title:    catalog.NotifCreatedTitle,
		Message:  catalog.NotifCreatedBody(event.TicketID, payload.Category),
		Severity: domain.SeveritySuccess,
	})
	return nil
}

// append prepends so the feed reads newest first.
func (f *NotificationFeed) append(n domain.Notification) {
	n.ID = uuid.NewString()
	n.Timestamp = time.Now()
	f.mu.Lock()
	defer f.mu.Unlock()
	next := make([]domain.Notification, 0, len(f.items)+1)
	next = append(next, n)
	next = append(next, f.items...)
	f.items = next
}
