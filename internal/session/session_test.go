package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/qolda-ai/support-desk/internal/ai"
	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/events"
	"github.com/qolda-ai/support-desk/internal/i18n"
	"github.com/qolda-ai/support-desk/internal/service"
	"github.com/qolda-ai/support-desk/internal/store"
)

type fakeClassifier struct {
	turn    *ai.TurnResult
	turnErr error
}

func (f *fakeClassifier) ClassifyTurn(ctx context.Context, lang i18n.Lang, history []domain.Message, userText string) (*ai.TurnResult, error) {
	if f.turnErr != nil {
		return nil, f.turnErr
	}
	return f.turn, nil
}

func (f *fakeClassifier) AnalyzeTicket(ctx context.Context, description string) (*ai.TicketAnalysis, error) {
	return nil, errors.New("not used")
}

func (f *fakeClassifier) DraftReply(ctx context.Context, lang i18n.Lang, summary, description string) (string, error) {
	return "", errors.New("not used")
}

func newTestSession(t *testing.T, classifier ai.Classifier, inactivity time.Duration) (*Session, *store.TicketStore, events.Dispatcher) {
	t.Helper()
	dispatcher := events.NewInMemoryDispatcher()
	ticketStore := store.New(dispatcher)
	s := New(ticketStore, classifier, dispatcher, i18n.LangRU, inactivity, zap.NewNop())
	return s, ticketStore, dispatcher
}

func countByText(msgs []domain.Message, text string) int {
	n := 0
	for _, m := range msgs {
		if m.Text == text {
			n++
		}
	}
	return n
}

func TestTranscriptPinsWelcomeFirst(t *testing.T) {
	s, _, _ := newTestSession(t, &fakeClassifier{}, time.Minute)

	msgs := s.Transcript()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "welcome", msgs[0].ID)
	assert.Equal(t, domain.SenderBot, msgs[0].Sender)
	assert.Equal(t, i18n.Lookup(i18n.LangRU).Welcome, msgs[0].Text)
}

func TestWelcomeRelocalizesOnLanguageSwitch(t *testing.T) {
	s, _, _ := newTestSession(t, &fakeClassifier{}, time.Minute)

	s.SetLang(i18n.LangKZ)
	msgs := s.Transcript()
	require.NotEmpty(t, msgs)
	assert.Equal(t, i18n.Lookup(i18n.LangKZ).Welcome, msgs[0].Text)

	// unsupported values are ignored
	s.SetLang(i18n.Lang("EN"))
	assert.Equal(t, i18n.LangKZ, s.Lang())
}

func TestSubmitAppliesTurnResult(t *testing.T) {
	classifier := &fakeClassifier{turn: &ai.TurnResult{
		Intent:             "SOLVE",
		Reply:              "Проверьте кабель, пожалуйста.",
		GeneratedSummaryRU: "Проблема с сетью",
		GeneratedSummaryKZ: "Желі мәселесі",
		TicketData: &ai.TicketAnalysis{
			Category:       domain.CategoryNetwork,
			Priority:       domain.TicketPriorityHigh,
			Department:     "Network Security",
			Sentiment:      domain.SentimentNegative,
			SentimentScore: 35,
		},
	}}
	s, ticketStore, _ := newTestSession(t, classifier, time.Minute)

	outcome, err := s.Submit(context.Background(), "Интернет не работает", nil)
	require.NoError(t, err)
	assert.False(t, outcome.Fallback)
	assert.False(t, outcome.Closed)
	assert.Equal(t, domain.SenderUser, outcome.UserMessage.Sender)
	assert.Equal(t, "Проверьте кабель, пожалуйста.", outcome.BotMessage.Text)

	live := ticketStore.Live()
	assert.Equal(t, "Проблема с сетью", live.Summary.RU)
	assert.Equal(t, "Желі мәселесі", live.Summary.KZ)
	assert.Equal(t, domain.CategoryNetwork, live.Category)
	assert.Equal(t, domain.TicketPriorityHigh, live.Priority)
	assert.Equal(t, 35, live.SentimentScore)
	require.Len(t, live.Messages, 2)
	assert.Equal(t, StateActive, s.State())
}

func TestSubmitRejectsEmptyInput(t *testing.T) {
	s, _, _ := newTestSession(t, &fakeClassifier{}, time.Minute)

	_, err := s.Submit(context.Background(), "   ", nil)
	require.Error(t, err)
}

func TestSubmitFallbackKeepsUserMessage(t *testing.T) {
	classifier := &fakeClassifier{turnErr: errors.New("service unavailable")}
	s, ticketStore, _ := newTestSession(t, classifier, time.Minute)

	outcome, err := s.Submit(context.Background(), "Помогите", nil)
	require.NoError(t, err)
	assert.True(t, outcome.Fallback)

	fallbackText := i18n.Lookup(i18n.LangRU).AIFailureMessage
	assert.Equal(t, fallbackText, outcome.BotMessage.Text)

	// one user message plus exactly one fallback, nothing rolled back
	live := ticketStore.Live()
	require.Len(t, live.Messages, 2)
	assert.Equal(t, "Помогите", live.Messages[0].Text)
	assert.Equal(t, 1, countByText(live.Messages, fallbackText))
	assert.Equal(t, StateActive, s.State())
}

func TestSubmitClosesSessionOnAIRequest(t *testing.T) {
	classifier := &fakeClassifier{turn: &ai.TurnResult{
		Intent:       "SOLVE",
		Reply:        "Рад был помочь!",
		CloseSession: true,
	}}
	s, ticketStore, _ := newTestSession(t, classifier, time.Minute)

	outcome, err := s.Submit(context.Background(), "Да, всё решено, спасибо", nil)
	require.NoError(t, err)
	assert.True(t, outcome.Closed)
	assert.Equal(t, StateClosed, s.State())
	assert.Equal(t, ReasonAI, s.Reason())

	live := ticketStore.Live()
	assert.Equal(t, domain.TicketStatusClosed, live.Status)
	closing := i18n.Lookup(i18n.LangRU).ClosedByAIMessage
	assert.Equal(t, 1, countByText(live.Messages, closing))

	_, err = s.Submit(context.Background(), "ещё вопрос", nil)
	require.Error(t, err)
}

func TestInactivityTimeoutClosesOnce(t *testing.T) {
	s, ticketStore, _ := newTestSession(t, &fakeClassifier{}, 20*time.Millisecond)

	require.Eventually(t, func() bool {
		return s.State() == StateClosed
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, ReasonTimeout, s.Reason())
	live := ticketStore.Live()
	assert.Equal(t, domain.TicketStatusClosed, live.Status)

	timeoutText := i18n.Lookup(i18n.LangRU).TimeoutMessage
	assert.Equal(t, 1, countByText(live.Messages, timeoutText))
	assert.Equal(t, 1, countByText(s.Transcript(), timeoutText))
}

func TestAdminResolveClosesSessionWithoutExtraMessage(t *testing.T) {
	s, ticketStore, _ := newTestSession(t, &fakeClassifier{}, time.Minute)

	err := ticketStore.SetStatus(context.Background(), i18n.LangRU, domain.LiveTicketID, domain.TicketStatusClosed)
	require.NoError(t, err)

	assert.Equal(t, StateClosed, s.State())
	assert.Equal(t, ReasonAdmin, s.Reason())

	// the agent's resolve reply carries the notice, the session adds nothing
	live := ticketStore.Live()
	assert.Empty(t, live.Messages)

	_, err = s.Submit(context.Background(), "привет", nil)
	require.Error(t, err)
}

func TestTranscriptMergesStoreMessages(t *testing.T) {
	classifier := &fakeClassifier{turn: &ai.TurnResult{Intent: "SOLVE", Reply: "Принято."}}
	s, ticketStore, _ := newTestSession(t, classifier, time.Minute)

	_, err := s.Submit(context.Background(), "Первый вопрос", nil)
	require.NoError(t, err)

	// an agent reply lands in the store but not in the local view
	agentMsg := domain.Message{
		ID:        "agent-1",
		Sender:    domain.SenderAgent,
		Text:      "Подключаюсь к диалогу.",
		Timestamp: time.Now().Add(time.Second),
	}
	require.NoError(t, ticketStore.AppendMessage(context.Background(), i18n.LangRU, domain.LiveTicketID, agentMsg))

	msgs := s.Transcript()
	require.Len(t, msgs, 4) // welcome, user, bot, agent
	assert.Equal(t, "welcome", msgs[0].ID)
	assert.Equal(t, "agent-1", msgs[len(msgs)-1].ID)

	for i := 2; i < len(msgs); i++ {
		assert.False(t, msgs[i].Timestamp.Before(msgs[i-1].Timestamp))
	}
}

func TestFrustratedTurnRaisesSingleWarning(t *testing.T) {
	classifier := &fakeClassifier{turn: &ai.TurnResult{
		Intent: "SOLVE",
		Reply:  "Понимаю ваше недовольство, сейчас разберемся.",
		TicketData: &ai.TicketAnalysis{
			Sentiment:      domain.SentimentFrustrated,
			SentimentScore: 10,
		},
	}}
	dispatcher := events.NewInMemoryDispatcher()
	ticketStore := store.New(dispatcher)
	feed := service.NewNotificationFeed(dispatcher, zap.NewNop())
	feed.RegisterHandlers()
	s := New(ticketStore, classifier, dispatcher, i18n.LangRU, time.Minute, zap.NewNop())

	_, err := s.Submit(context.Background(), "Это уже невыносимо!!!", nil)
	require.NoError(t, err)

	live := ticketStore.Live()
	assert.Equal(t, domain.SentimentFrustrated, live.Sentiment)
	assert.Equal(t, 10, live.SentimentScore)

	items := feed.List()
	require.Len(t, items, 1)
	assert.Equal(t, domain.SeverityWarning, items[0].Severity)
}

func TestSubmitWithAttachmentsOnly(t *testing.T) {
	classifier := &fakeClassifier{turn: &ai.TurnResult{Intent: "SOLVE", Reply: "Получил файл."}}
	s, ticketStore, _ := newTestSession(t, classifier, time.Minute)

	att := domain.Attachment{Name: "screenshot.png", MimeType: "image/png", URL: "blob:1"}
	outcome, err := s.Submit(context.Background(), "", []domain.Attachment{att})
	require.NoError(t, err)
	require.Len(t, outcome.UserMessage.Attachments, 1)
	assert.Equal(t, "screenshot.png", outcome.UserMessage.Attachments[0].Name)

	live := ticketStore.Live()
	require.Len(t, live.Messages, 2)
	require.Len(t, live.Messages[0].Attachments, 1)
}

func TestSummarySetOnlyOnFirstTurn(t *testing.T) {
	classifier := &fakeClassifier{turn: &ai.TurnResult{
		Intent:             "SOLVE",
		Reply:              "Ок",
		GeneratedSummaryRU: "Первая тема",
		GeneratedSummaryKZ: "Бірінші тақырып",
	}}
	s, ticketStore, _ := newTestSession(t, classifier, time.Minute)

	_, err := s.Submit(context.Background(), "первое сообщение", nil)
	require.NoError(t, err)

	classifier.turn.GeneratedSummaryRU = "Вторая тема"
	classifier.turn.GeneratedSummaryKZ = "Екінші тақырып"
	_, err = s.Submit(context.Background(), "второе сообщение", nil)
	require.NoError(t, err)

	live := ticketStore.Live()
	assert.Equal(t, "Первая тема", live.Summary.RU)
	assert.False(t, strings.Contains(live.Summary.RU, "Вторая"))
}
