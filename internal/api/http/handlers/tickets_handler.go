package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolda-ai/support-desk/internal/ai"
	"github.com/qolda-ai/support-desk/internal/api/dto"
	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/i18n"
	"github.com/qolda-ai/support-desk/internal/service"
	"github.com/qolda-ai/support-desk/internal/store"
	apperrors "github.com/qolda-ai/support-desk/pkg/util"
)

// TicketsHandler manages the admin triage endpoints.
type TicketsHandler struct {
	service *service.TriageService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(triageService *service.TriageService) *TicketsHandler {
	return &TicketsHandler{service: triageService}
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	query := store.Query{
		Filter: store.Filter(c.Query("filter", string(store.FilterActive))),
		Sort:   store.Sort(c.Query("sort", string(store.SortDate))),
	}
	switch query.Filter {
	case store.FilterActive, store.FilterResolved, store.FilterAll:
	default:
		return apperrors.NewValidationError("filter must be Active, Resolved or All", nil)
	}
	switch query.Sort {
	case store.SortDate, store.SortPriority, store.SortCategory:
	default:
		return apperrors.NewValidationError("sort must be Date, Priority or Category", nil)
	}

	tickets := h.service.Queue(query)
	items := make([]dto.TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketSummary(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items, "total": len(items)})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(&ticket)})
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.CreateInput{
		RequesterID:    req.RequesterID,
		Description:    req.Description,
		Priority:       req.Priority,
		Category:       req.Category,
		Department:     req.Department,
		Source:         req.Source,
		Summary:        domain.BilingualText{RU: req.SummaryRU, KZ: req.SummaryKZ},
		Sentiment:      req.Sentiment,
		SentimentScore: req.SentimentScore,
	}
	if req.Analysis != nil {
		input.Analysis = &ai.TicketAnalysis{
			Category:       req.Analysis.Category,
			Priority:       req.Analysis.Priority,
			Department:     req.Analysis.Department,
			SummaryRU:      req.Analysis.SummaryRU,
			SummaryKZ:      req.Analysis.SummaryKZ,
			Sentiment:      req.Analysis.Sentiment,
			SentimentScore: req.Analysis.SentimentScore,
		}
	}

	ticket, err := h.service.Create(c.UserContext(), requestLang(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketDetail(&ticket)})
}

// AnalyzeTicket POST /tickets/analyze.
func (h *TicketsHandler) AnalyzeTicket(c *fiber.Ctx) error {
	var req dto.AnalyzeTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	analysis, err := h.service.Analyze(c.UserContext(), req.Description)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AnalysisPayload{
		Category:       analysis.Category,
		Priority:       analysis.Priority,
		Department:     analysis.Department,
		SummaryRU:      analysis.SummaryRU,
		SummaryKZ:      analysis.SummaryKZ,
		Sentiment:      analysis.Sentiment,
		SentimentScore: analysis.SentimentScore,
	}})
}

// Reply POST /tickets/:id/reply.
func (h *TicketsHandler) Reply(c *fiber.Ctx) error {
	var req dto.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.Reply(c.UserContext(), requestLang(c), c.Params("id"), req.Draft, req.Resolve)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ReplyResponse{
		Ticket:           ticketDetail(&ticket),
		SelectionCleared: req.Resolve,
	}})
}

// Assist POST /tickets/:id/assist.
func (h *TicketsHandler) Assist(c *fiber.Ctx) error {
	draft, err := h.service.Draft(c.UserContext(), requestLang(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"draft": draft}})
}

// Simulate POST /tickets/simulate.
func (h *TicketsHandler) Simulate(c *fiber.Ctx) error {
	var req dto.SimulateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	switch req.Source {
	case domain.SourceEmail, domain.SourcePhone, domain.SourcePortal:
	default:
		return apperrors.NewValidationError("source must be Email, Phone or Portal", nil)
	}
	return c.JSON(fiber.Map{"data": h.service.Simulate(req.Source)})
}

// Stats GET /tickets/stats.
func (h *TicketsHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.DashboardStats()})
}

// requestLang resolves the UI language: explicit ?lang= wins, otherwise the
// Accept-Language header, defaulting to RU.
func requestLang(c *fiber.Ctx) i18n.Lang {
	if lang := i18n.Lang(c.Query("lang")); lang.Valid() {
		return lang
	}
	return i18n.Match(c.Get(fiber.HeaderAcceptLanguage))
}

func ticketSummary(t *domain.Ticket) dto.TicketSummary {
	return dto.TicketSummary{
		ID:             t.ID,
		RequesterID:    t.RequesterID,
		Status:         t.Status,
		Priority:       t.Priority,
		Category:       t.Category,
		Department:     t.Department,
		Source:         t.Source,
		Summary:        t.Summary,
		Sentiment:      t.Sentiment,
		SentimentScore: t.SentimentScore,
		SentimentBand:  domain.BandForScore(t.SentimentScore),
		Live:           t.Live(),
		AIFilled:       t.AIFilled,
		HasAttachments: len(t.Attachments) > 0,
		CreatedAt:      t.CreatedAt,
	}
}

func ticketDetail(t *domain.Ticket) dto.TicketDetailResponse {
	msgs := make([]dto.MessageResponse, 0, len(t.Messages))
	for _, m := range t.Messages {
		msgs = append(msgs, messageResponse(m))
	}
	attachments := make([]dto.AttachmentPayload, 0, len(t.Attachments))
	for _, att := range t.Attachments {
		attachments = append(attachments, dto.AttachmentPayload{
			Name:     att.Name,
			MimeType: att.MimeType,
			URL:      att.URL,
		})
	}
	return dto.TicketDetailResponse{
		TicketSummary: ticketSummary(t),
		Description:   t.Description,
		Messages:      msgs,
		Attachments:   attachments,
	}
}
