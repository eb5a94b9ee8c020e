package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qolda-ai/support-desk/internal/ai"
	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/i18n"
	"github.com/qolda-ai/support-desk/internal/store"
	apperrors "github.com/qolda-ai/support-desk/pkg/util"
)

// Departments is the routing list offered on manual creation.
var Departments = []string{
	"General Support",
	"Network Security",
	"IT Procurement",
	"Desktop Support",
	"Identity Management",
	"Software Support",
	"Hardware Maintenance",
	"Access Control",
}

// TriageService drives the admin dashboard workflows: queue listing, manual
// creation with optional AI auto-fill, agent replies, and reply drafting.
type TriageService struct {
	store      *store.TicketStore
	classifier ai.Classifier
	logger     *zap.Logger
}

// NewTriageService constructs the service.
func NewTriageService(ticketStore *store.TicketStore, classifier ai.Classifier, logger *zap.Logger) *TriageService {
	return &TriageService{store: ticketStore, classifier: classifier, logger: logger}
}

// CreateInput describes manual ticket creation. Zero-valued fields take the
// documented defaults. Analysis, when present, is the auto-fill result the
// admin applied; the ticket keeps its AI-filled indicator only while the
// submitted fields still match it.
type CreateInput struct {
	RequesterID    string
	Description    string
	Priority       domain.TicketPriority
	Category       domain.TicketCategory
	Department     string
	Source         domain.TicketSource
	Summary        domain.BilingualText
	Sentiment      domain.Sentiment
	SentimentScore int
	Analysis       *ai.TicketAnalysis
}

// Queue returns the filtered, sorted triage queue.
func (s *TriageService) Queue(q store.Query) []domain.Ticket {
	return s.store.List(q)
}

// Get returns one ticket.
func (s *TriageService) Get(ticketID string) (domain.Ticket, error) {
	ticket, ok := s.store.Get(ticketID)
	if !ok {
		return domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
	}
	return ticket, nil
}

// Create registers a manually entered ticket.
func (s *TriageService) Create(ctx context.Context, lang i18n.Lang, input CreateInput) (domain.Ticket, error) {
	if strings.TrimSpace(input.Description) == "" {
		return domain.Ticket{}, apperrors.NewValidationError("description required", nil)
	}

	ticket := domain.Ticket{
		ID:             fmt.Sprintf("TICK-M%03d", rand.Intn(1000)),
		RequesterID:    defaultString(input.RequesterID, "Emp-Manual"),
		Description:    strings.TrimSpace(input.Description),
		Status:         domain.TicketStatusOpen,
		Priority:       input.Priority,
		Category:       input.Category,
		Department:     input.Department,
		Source:         input.Source,
		Summary:        input.Summary,
		Sentiment:      input.Sentiment,
		SentimentScore: input.SentimentScore,
		CreatedAt:      time.Now(),
	}
	applyCreateDefaults(&ticket)
	ticket.AIFilled = analysisMatches(ticket, input.Analysis)

	if err := s.store.Insert(ctx, lang, ticket); err != nil {
		return domain.Ticket{}, err
	}
	return ticket, nil
}

// Analyze runs the one-shot attribute extraction used by the create form's
// auto-fill button.
func (s *TriageService) Analyze(ctx context.Context, description string) (*ai.TicketAnalysis, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}
	analysis, err := s.classifier.AnalyzeTicket(ctx, description)
	if err != nil {
		s.logger.Warn("ticket analysis failed", zap.Error(err))
		return nil, apperrors.NewDomainError("CLASSIFICATION_UNAVAILABLE",
			"ticket analysis unavailable, keep the defaults", 503, nil)
	}
	return analysis, nil
}

// Reply appends an agent message. With resolve set the message gains the
// localized closing notice and the ticket transitions to Resolved, or to
// Closed for the live ticket.
func (s *TriageService) Reply(ctx context.Context, lang i18n.Lang, ticketID, draft string, resolve bool) (domain.Ticket, error) {
	draft = strings.TrimSpace(draft)
	if draft == "" {
		return domain.Ticket{}, apperrors.NewValidationError("reply text required", nil)
	}
	ticket, ok := s.store.Get(ticketID)
	if !ok {
		return domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
	}
	if ticket.Status.Terminal() {
		return domain.Ticket{}, apperrors.NewConflict("ticket already resolved", map[string]any{"status": ticket.Status})
	}

	text := draft
	if resolve {
		text += "\n\n" + i18n.Lookup(lang).ClosedByAdminMessage
	}
	msg := domain.Message{
		ID:        uuid.NewString(),
		Sender:    domain.SenderAgent,
		Text:      text,
		Timestamp: time.Now(),
	}
	if err := s.store.AppendMessage(ctx, lang, ticketID, msg); err != nil {
		return domain.Ticket{}, err
	}

	if resolve {
		next := domain.TicketStatusResolved
		if ticket.Live() {
			next = domain.TicketStatusClosed
		}
		if err := s.store.SetStatus(ctx, lang, ticketID, next); err != nil {
			return domain.Ticket{}, err
		}
	}

	updated, _ := s.store.Get(ticketID)
	return updated, nil
}

// Draft asks the service for a reply draft. Failure degrades to the
// localized retry notice, mirroring what the agent would see in the
// compose box.
func (s *TriageService) Draft(ctx context.Context, lang i18n.Lang, ticketID string) (string, error) {
	ticket, ok := s.store.Get(ticketID)
	if !ok {
		return "", apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
	}
	summary := ticket.Summary.RU
	if lang == i18n.LangKZ {
		summary = ticket.Summary.KZ
	}
	draft, err := s.classifier.DraftReply(ctx, lang, summary, ticket.Description)
	if err != nil {
		s.logger.Warn("reply drafting failed", zap.Error(err))
		return i18n.Lookup(lang).DraftFailureMessage, nil
	}
	return draft, nil
}

// Stats summarizes the dashboard header figures. Everything except the
// active-ticket count is a static demo figure.
type Stats struct {
	AutomationRate  string `json:"automation_rate"`
	AvgResponse     string `json:"avg_response"`
	ActiveTickets   int    `json:"active_tickets"`
	CSATScore       string `json:"csat_score"`
	AutomationTrend string `json:"automation_trend"`
	ResponseTrend   string `json:"response_trend"`
}

// DashboardStats returns the header stat row.
func (s *TriageService) DashboardStats() Stats {
	return Stats{
		AutomationRate:  "68%",
		AvgResponse:     "1.2m",
		ActiveTickets:   s.store.ActiveCount(),
		CSATScore:       "4.8/5",
		AutomationTrend: "+12%",
		ResponseTrend:   "-30s",
	}
}

// simulation templates for the demo intake buttons.
var simulationTemplates = []struct {
	desc     string
	category domain.TicketCategory
	dept     string
	priority domain.TicketPriority
	summary  string
}{
	{"Не работает интернет в офисе 205", domain.CategoryNetwork, "Network Security", domain.TicketPriorityHigh, "Нет интернета оф.205"},
	{"Прошу выдать доступ к Jira", domain.CategoryAccess, "Identity Management", domain.TicketPriorityLow, "Доступ к Jira"},
	{"Сломался стул", domain.CategoryOther, "General Support", domain.TicketPriorityLow, "Сломался стул"},
	{"Ошибка 404 на внутреннем портале", domain.CategorySoftware, "Software Support", domain.TicketPriorityMedium, "Ошибка портала 404"},
	{"Принтер не печатает, мигает красным", domain.CategoryHardware, "Hardware Maintenance", domain.TicketPriorityMedium, "Сбой принтера"},
}

// SimulatedTicket is a canned intake draft for the create form.
type SimulatedTicket struct {
	RequesterID string                `json:"requester_id"`
	Description string                `json:"description"`
	Source      domain.TicketSource   `json:"source"`
	Priority    domain.TicketPriority `json:"priority"`
	Category    domain.TicketCategory `json:"category"`
	Department  string                `json:"department"`
	Summary     string                `json:"summary"`
}

// Simulate drafts an incoming ticket from one of the canned templates, with
// a requester id shaped by the chosen source.
func (s *TriageService) Simulate(source domain.TicketSource) SimulatedTicket {
	tpl := simulationTemplates[rand.Intn(len(simulationTemplates))]

	var requester string
	switch source {
	case domain.SourceEmail:
		requester = fmt.Sprintf("user%d@telecom.kz", rand.Intn(100))
	case domain.SourcePhone:
		requester = fmt.Sprintf("+7 701 %03d %03d", rand.Intn(1000), rand.Intn(1000))
	case domain.SourcePortal:
		requester = fmt.Sprintf("EMP-%d", rand.Intn(1000))
	}

	return SimulatedTicket{
		RequesterID: requester,
		Description: tpl.desc,
		Source:      source,
		Priority:    tpl.priority,
		Category:    tpl.category,
		Department:  tpl.dept,
		Summary:     tpl.summary,
	}
}

func applyCreateDefaults(t *domain.Ticket) {
	if t.Priority == "" {
		t.Priority = domain.TicketPriorityMedium
	}
	if t.Category == "" || !domain.ValidCategory(t.Category) {
		t.Category = domain.CategoryOther
	}
	if t.Department == "" {
		t.Department = "General Support"
	}
	if t.Source == "" {
		t.Source = domain.SourcePhone
	}
	if t.Sentiment == "" {
		t.Sentiment = domain.SentimentNeutral
	}
	if t.SentimentScore == 0 {
		t.SentimentScore = 50
	}
	if t.Summary.RU == "" {
		t.Summary.RU = truncate(t.Description, 20)
	}
	if t.Summary.KZ == "" {
		t.Summary.KZ = truncate(t.Description, 20)
	}
}

// analysisMatches reports whether the submitted fields still equal the
// auto-fill result. A manual edit after auto-fill clears the indicator.
func analysisMatches(t domain.Ticket, analysis *ai.TicketAnalysis) bool {
	if analysis == nil {
		return false
	}
	return t.Priority == analysis.Priority &&
		t.Category == analysis.Category &&
		t.Department == analysis.Department &&
		t.Sentiment == analysis.Sentiment &&
		t.SentimentScore == analysis.SentimentScore
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
