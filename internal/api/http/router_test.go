package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/qolda-ai/support-desk/internal/ai"
	"github.com/qolda-ai/support-desk/internal/api/http/handlers"
	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/events"
	"github.com/qolda-ai/support-desk/internal/i18n"
	"github.com/qolda-ai/support-desk/internal/service"
	"github.com/qolda-ai/support-desk/internal/session"
	"github.com/qolda-ai/support-desk/internal/store"
)

type scriptedClassifier struct {
	turn     *ai.TurnResult
	analysis *ai.TicketAnalysis
	draft    string
}

func (s *scriptedClassifier) ClassifyTurn(ctx context.Context, lang i18n.Lang, history []domain.Message, userText string) (*ai.TurnResult, error) {
	if s.turn == nil {
		return nil, errors.New("no scripted turn")
	}
	return s.turn, nil
}

func (s *scriptedClassifier) AnalyzeTicket(ctx context.Context, description string) (*ai.TicketAnalysis, error) {
	if s.analysis == nil {
		return nil, errors.New("no scripted analysis")
	}
	return s.analysis, nil
}

func (s *scriptedClassifier) DraftReply(ctx context.Context, lang i18n.Lang, summary, description string) (string, error) {
	if s.draft == "" {
		return "", errors.New("no scripted draft")
	}
	return s.draft, nil
}

func newTestApp(t *testing.T, classifier ai.Classifier) (*fiber.App, *store.TicketStore) {
	t.Helper()
	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()
	ticketStore := store.New(dispatcher)
	chatSession := session.New(ticketStore, classifier, dispatcher, i18n.LangRU, time.Minute, logger)
	triageService := service.NewTriageService(ticketStore, classifier, logger)
	feed := service.NewNotificationFeed(dispatcher, logger)
	feed.RegisterHandlers()

	app := fiber.New()
	RegisterMiddlewares(app, logger, nil, 0)
	RegisterRoutes(app, RouteConfig{
		Health:        handlers.NewHealthHandler("support-desk", "test", nil),
		Chat:          handlers.NewChatHandler(chatSession),
		Tickets:       handlers.NewTicketsHandler(triageService),
		Notifications: handlers.NewNotificationsHandler(feed),
		Locale:        handlers.NewLocaleHandler(),
	})
	return app, ticketStore
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestListTicketsDefaultsToActiveQueue(t *testing.T) {
	app, ticketStore := newTestApp(t, &scriptedClassifier{})
	ticketStore.Seed([]domain.Ticket{
		{ID: "TICK-1", Description: "a", Status: domain.TicketStatusOpen, CreatedAt: time.Now()},
		{ID: "TICK-2", Description: "b", Status: domain.TicketStatusResolved, CreatedAt: time.Now()},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/tickets/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.EqualValues(t, 2, body["total"]) // live ticket and TICK-1

	items, ok := body["data"].([]any)
	require.True(t, ok)
	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, domain.LiveTicketID, first["id"])
}

func TestListTicketsRejectsUnknownFilter(t *testing.T) {
	app, _ := newTestApp(t, &scriptedClassifier{})

	resp, err := app.Test(httptest.NewRequest("GET", "/tickets/?filter=Broken", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
}

func TestGetTicketNotFound(t *testing.T) {
	app, _ := newTestApp(t, &scriptedClassifier{})

	resp, err := app.Test(httptest.NewRequest("GET", "/tickets/TICK-404", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateTicketRoundTrip(t *testing.T) {
	app, _ := newTestApp(t, &scriptedClassifier{})

	payload, _ := json.Marshal(map[string]any{
		"requester_id": "Emp-007",
		"description":  "Не работает почта",
		"priority":     "High",
		"category":     "Software",
	})
	req := httptest.NewRequest("POST", "/tickets/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Emp-007", data["requester_id"])
	assert.Equal(t, "High", data["priority"])
	assert.Equal(t, "Open", data["status"])
}

func TestChatTurnRoundTrip(t *testing.T) {
	classifier := &scriptedClassifier{turn: &ai.TurnResult{
		Intent: "SOLVE",
		Reply:  "Попробуйте перезагрузить компьютер.",
	}}
	app, _ := newTestApp(t, classifier)

	payload, _ := json.Marshal(map[string]any{"text": "Компьютер завис"})
	req := httptest.NewRequest("POST", "/chat/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	bot, ok := data["bot_message"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Попробуйте перезагрузить компьютер.", bot["text"])
	assert.Equal(t, "Active", data["state"])
}

func TestChatTurnFallbackOnClassifierFailure(t *testing.T) {
	app, _ := newTestApp(t, &scriptedClassifier{})

	payload, _ := json.Marshal(map[string]any{"text": "Помогите"})
	req := httptest.NewRequest("POST", "/chat/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["fallback"])
}

func TestSetLanguageValidatesInput(t *testing.T) {
	app, _ := newTestApp(t, &scriptedClassifier{})

	payload, _ := json.Marshal(map[string]any{"lang": "EN"})
	req := httptest.NewRequest("POST", "/chat/language", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFAQsLocalizeByHeader(t *testing.T) {
	app, _ := newTestApp(t, &scriptedClassifier{})

	req := httptest.NewRequest("GET", "/faqs", nil)
	req.Header.Set("Accept-Language", "kk-KZ")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "KZ", body["lang"])

	// explicit query parameter wins over the header
	req = httptest.NewRequest("GET", "/faqs?lang=RU", nil)
	req.Header.Set("Accept-Language", "kk-KZ")
	resp, err = app.Test(req)
	require.NoError(t, err)
	body = decodeBody(t, resp.Body)
	assert.Equal(t, "RU", body["lang"])
}

func TestLabelsLocalize(t *testing.T) {
	app, _ := newTestApp(t, &scriptedClassifier{})

	resp, err := app.Test(httptest.NewRequest("GET", "/labels?lang=KZ", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	statuses, ok := data["statuses"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, i18n.Lookup(i18n.LangKZ).Statuses[domain.TicketStatusOpen], statuses["Open"])
}

func TestNotificationsFlow(t *testing.T) {
	app, ticketStore := newTestApp(t, &scriptedClassifier{})

	score := 10
	require.NoError(t, ticketStore.UpdateAttributes(context.Background(), i18n.LangRU, domain.LiveTicketID, store.AttributeChanges{
		Sentiment:      domain.SentimentFrustrated,
		SentimentScore: &score,
	}, true))

	resp, err := app.Test(httptest.NewRequest("GET", "/notifications", nil))
	require.NoError(t, err)
	body := decodeBody(t, resp.Body)
	assert.EqualValues(t, 1, body["unread"])

	resp, err = app.Test(httptest.NewRequest("POST", "/notifications/read", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/notifications", nil))
	require.NoError(t, err)
	body = decodeBody(t, resp.Body)
	assert.EqualValues(t, 0, body["unread"])
}

func TestSimulateValidatesSource(t *testing.T) {
	app, _ := newTestApp(t, &scriptedClassifier{})

	payload, _ := json.Marshal(map[string]any{"source": "Fax"})
	req := httptest.NewRequest("POST", "/tickets/simulate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHealthLive(t *testing.T) {
	app, _ := newTestApp(t, &scriptedClassifier{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health/live", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "alive", body["status"])
}
