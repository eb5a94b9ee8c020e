// Package session implements the chat session state machine: one
// conversation bound to the store's live ticket, an inactivity timeout, and
// the per-turn classification protocol.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qolda-ai/support-desk/internal/ai"
	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/events"
	"github.com/qolda-ai/support-desk/internal/i18n"
	"github.com/qolda-ai/support-desk/internal/store"
	apperrors "github.com/qolda-ai/support-desk/pkg/util"
)

// State is the session lifecycle state.
type State string

const (
	StateActive State = "Active"
	StateClosed State = "Closed"
)

// CloseReason records which transition closed the session.
type CloseReason string

const (
	ReasonTimeout CloseReason = "timeout"
	ReasonAdmin   CloseReason = "admin"
	ReasonAI      CloseReason = "ai"
)

// welcomeMessageID marks the synthetic greeting pinned first in the
// transcript regardless of chronological order.
const welcomeMessageID = "welcome"

// TurnOutcome reports what one user turn appended.
type TurnOutcome struct {
	UserMessage domain.Message
	BotMessage  domain.Message
	Closed      bool
	Fallback    bool
}

// Session is the single running chat conversation.
type Session struct {
	store      *store.TicketStore
	classifier ai.Classifier
	logger     *zap.Logger
	inactivity time.Duration

	mu        sync.Mutex
	lang      i18n.Lang
	state     State
	reason    CloseReason
	userTurns int
	startedAt time.Time
	local     []domain.Message
	timer     *time.Timer
}

// New creates an Active session, arms the inactivity timer, and subscribes
// to store events so admin-side resolution closes the session too.
func New(ticketStore *store.TicketStore, classifier ai.Classifier, dispatcher events.Dispatcher, lang i18n.Lang, inactivity time.Duration, logger *zap.Logger) *Session {
	s := &Session{
		store:      ticketStore,
		classifier: classifier,
		logger:     logger,
		inactivity: inactivity,
		lang:       lang,
		state:      StateActive,
		startedAt:  time.Now(),
	}
	if dispatcher != nil {
		dispatcher.Subscribe(events.EventTicketStatusChanged, s.onStatusChanged)
		dispatcher.Subscribe(events.EventTicketMessageAdded, s.onMessageAdded)
	}
	s.armTimer()
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reason returns the close reason, empty while Active.
func (s *Session) Reason() CloseReason {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

// Lang returns the session language.
func (s *Session) Lang() i18n.Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLang switches the session language. The welcome message re-localizes
// on the next transcript read; history is untouched.
func (s *Session) SetLang(lang i18n.Lang) {
	if !lang.Valid() {
		return
	}
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
}

// Submit runs one user turn. The user message is applied optimistically to
// the local view and the shared store before the classification call; a
// failed call appends a single localized fallback message and never rolls
// the user's message back.
func (s *Session) Submit(ctx context.Context, text string, attachments []domain.Attachment) (*TurnOutcome, error) {
	text = strings.TrimSpace(text)
	if text == "" && len(attachments) == 0 {
		return nil, apperrors.NewValidationError("message text or attachments required", nil)
	}

	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return nil, apperrors.NewConflict("chat session is closed", nil)
	}
	lang := s.lang
	history := append([]domain.Message{}, s.local...)
	s.userTurns++
	firstTurn := s.userTurns == 1
	s.mu.Unlock()

	userMsg := domain.Message{
		ID:          uuid.NewString(),
		Sender:      domain.SenderUser,
		Text:        text,
		Attachments: attachments,
		Timestamp:   time.Now(),
	}
	s.appendLocal(userMsg)
	if err := s.store.AppendMessage(ctx, lang, domain.LiveTicketID, userMsg); err != nil {
		s.logger.Warn("store append failed", zap.Error(err))
	}

	result, err := s.classifier.ClassifyTurn(ctx, lang, history, text)
	if err != nil {
		s.logger.Warn("turn classification failed", zap.Error(err))
		fallback := s.appendBot(ctx, lang, i18n.Lookup(lang).AIFailureMessage)
		return &TurnOutcome{UserMessage: userMsg, BotMessage: fallback, Fallback: true}, nil
	}

	if firstTurn && result.GeneratedSummaryRU != "" && result.GeneratedSummaryKZ != "" {
		summary := domain.BilingualText{RU: result.GeneratedSummaryRU, KZ: result.GeneratedSummaryKZ}
		if err := s.store.SetSummary(ctx, lang, domain.LiveTicketID, summary); err != nil {
			s.logger.Warn("summary update failed", zap.Error(err))
		}
	}

	// Attribute merges apply in arrival order even if the session closed
	// while the call was in flight.
	if result.TicketData != nil {
		changes := store.AttributeChanges{
			Priority:   result.TicketData.Priority,
			Category:   result.TicketData.Category,
			Department: result.TicketData.Department,
			Sentiment:  result.TicketData.Sentiment,
		}
		if result.TicketData.SentimentScore > 0 {
			score := result.TicketData.SentimentScore
			changes.SentimentScore = &score
		}
		if err := s.store.UpdateAttributes(ctx, lang, domain.LiveTicketID, changes, true); err != nil {
			s.logger.Warn("attribute update failed", zap.Error(err))
		}
	}

	botMsg := s.appendBot(ctx, lang, result.Reply)
	outcome := &TurnOutcome{UserMessage: userMsg, BotMessage: botMsg}

	if result.CloseSession {
		s.closeWithMessage(ctx, ReasonAI, i18n.Lookup(lang).ClosedByAIMessage)
		outcome.Closed = true
	}
	return outcome, nil
}

// Transcript returns the reconciled conversation: the welcome message is
// pinned first, everything else is merged by id across the local optimistic
// view and the store's live ticket, sorted by timestamp ascending.
func (s *Session) Transcript() []domain.Message {
	s.mu.Lock()
	lang := s.lang
	local := append([]domain.Message{}, s.local...)
	startedAt := s.startedAt
	s.mu.Unlock()

	welcome := domain.Message{
		ID:        welcomeMessageID,
		Sender:    domain.SenderBot,
		Text:      i18n.Lookup(lang).Welcome,
		Timestamp: startedAt,
	}

	merged := make([]domain.Message, 0, len(local))
	seen := make(map[string]struct{}, len(local))
	for _, m := range local {
		merged = append(merged, m)
		seen[m.ID] = struct{}{}
	}
	for _, m := range s.store.Live().Messages {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		merged = append(merged, m)
		seen[m.ID] = struct{}{}
	}
	sortByTimestamp(merged)

	return append([]domain.Message{welcome}, merged...)
}

func sortByTimestamp(msgs []domain.Message) {
	for i := 1; i < len(msgs); i++ {
		for j := i; j > 0 && msgs[j].Timestamp.Before(msgs[j-1].Timestamp); j-- {
			msgs[j], msgs[j-1] = msgs[j-1], msgs[j]
		}
	}
}

// onStatusChanged closes the session when the live ticket reaches a
// terminal status through the admin path. No closing message is appended
// here; the agent's resolve reply already carries the notice.
func (s *Session) onStatusChanged(ctx context.Context, event events.Event) error {
	if event.TicketID != domain.LiveTicketID {
		return nil
	}
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok || !payload.NewStatus.Terminal() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed
	s.reason = ReasonAdmin
	s.stopTimerLocked()
	return nil
}

// onMessageAdded re-arms the inactivity timer on every live-ticket message,
// local or remote.
func (s *Session) onMessageAdded(ctx context.Context, event events.Event) error {
	if event.TicketID == domain.LiveTicketID {
		s.armTimer()
	}
	return nil
}

func (s *Session) appendLocal(msg domain.Message) {
	s.mu.Lock()
	s.local = append(s.local, msg)
	s.mu.Unlock()
	s.armTimer()
}

func (s *Session) appendBot(ctx context.Context, lang i18n.Lang, text string) domain.Message {
	msg := domain.Message{
		ID:        uuid.NewString(),
		Sender:    domain.SenderBot,
		Text:      text,
		Timestamp: time.Now(),
	}
	s.appendLocal(msg)
	if err := s.store.AppendMessage(ctx, lang, domain.LiveTicketID, msg); err != nil {
		s.logger.Warn("store append failed", zap.Error(err))
	}
	return msg
}

// closeWithMessage appends the closure system message, disables further
// input, and moves the live ticket to Closed.
func (s *Session) closeWithMessage(ctx context.Context, reason CloseReason, text string) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	s.state = StateClosed
	s.reason = reason
	lang := s.lang
	s.stopTimerLocked()
	s.mu.Unlock()

	msg := domain.Message{
		ID:        uuid.NewString(),
		Sender:    domain.SenderBot,
		Text:      text,
		Timestamp: time.Now(),
	}
	s.mu.Lock()
	s.local = append(s.local, msg)
	s.mu.Unlock()
	if err := s.store.AppendMessage(ctx, lang, domain.LiveTicketID, msg); err != nil {
		s.logger.Warn("store append failed", zap.Error(err))
	}
	if err := s.store.SetStatus(ctx, lang, domain.LiveTicketID, domain.TicketStatusClosed); err != nil {
		s.logger.Warn("live ticket close failed", zap.Error(err))
	}
}

func (s *Session) onInactivity() {
	s.mu.Lock()
	lang := s.lang
	active := s.state == StateActive
	s.mu.Unlock()
	if !active {
		return
	}
	s.closeWithMessage(context.Background(), ReasonTimeout, i18n.Lookup(lang).TimeoutMessage)
}

// armTimer (re)starts the inactivity countdown. Stopping before replacing
// keeps closed sessions from leaking timers.
func (s *Session) armTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.inactivity, s.onInactivity)
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
