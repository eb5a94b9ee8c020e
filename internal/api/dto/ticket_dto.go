package dto

import (
	"time"

	"github.com/qolda-ai/support-desk/internal/domain"
)

// TicketSummary is the queue-card view of a ticket.
type TicketSummary struct {
	ID             string                `json:"id"`
	RequesterID    string                `json:"requester_id"`
	Status         domain.TicketStatus   `json:"status"`
	Priority       domain.TicketPriority `json:"priority"`
	Category       domain.TicketCategory `json:"category"`
	Department     string                `json:"department"`
	Source         domain.TicketSource   `json:"source"`
	Summary        domain.BilingualText  `json:"summary"`
	Sentiment      domain.Sentiment      `json:"sentiment"`
	SentimentScore int                   `json:"sentiment_score"`
	SentimentBand  domain.SentimentBand  `json:"sentiment_band"`
	Live           bool                  `json:"live"`
	AIFilled       bool                  `json:"ai_filled"`
	HasAttachments bool                  `json:"has_attachments"`
	CreatedAt      time.Time             `json:"created_at"`
}

// TicketDetailResponse provides the full workspace view.
type TicketDetailResponse struct {
	TicketSummary
	Description string              `json:"description"`
	Messages    []MessageResponse   `json:"messages"`
	Attachments []AttachmentPayload `json:"attachments"`
}

// CreateTicketRequest is the manual creation payload. Analysis echoes the
// auto-fill result the form applied, if any.
type CreateTicketRequest struct {
	RequesterID    string                `json:"requester_id"`
	Description    string                `json:"description"`
	Priority       domain.TicketPriority `json:"priority"`
	Category       domain.TicketCategory `json:"category"`
	Department     string                `json:"department"`
	Source         domain.TicketSource   `json:"source"`
	SummaryRU      string                `json:"summary_ru"`
	SummaryKZ      string                `json:"summary_kz"`
	Sentiment      domain.Sentiment      `json:"sentiment"`
	SentimentScore int                   `json:"sentiment_score"`
	Analysis       *AnalysisPayload      `json:"analysis"`
}

// AnalyzeTicketRequest asks for a one-shot attribute extraction.
type AnalyzeTicketRequest struct {
	Description string `json:"description"`
}

// AnalysisPayload mirrors the structured classification result.
type AnalysisPayload struct {
	Category       domain.TicketCategory `json:"category"`
	Priority       domain.TicketPriority `json:"priority"`
	Department     string                `json:"department"`
	SummaryRU      string                `json:"summary_ru"`
	SummaryKZ      string                `json:"summary_kz"`
	Sentiment      domain.Sentiment      `json:"sentiment"`
	SentimentScore int                   `json:"sentiment_score"`
}

// ReplyRequest is an agent reply submission.
type ReplyRequest struct {
	Draft   string `json:"draft"`
	Resolve bool   `json:"resolve"`
}

// ReplyResponse returns the updated ticket. SelectionCleared tells the
// dashboard to drop its selected ticket after a resolve.
type ReplyResponse struct {
	Ticket           TicketDetailResponse `json:"ticket"`
	SelectionCleared bool                 `json:"selection_cleared"`
}

// SimulateRequest picks an intake channel for the canned draft.
type SimulateRequest struct {
	Source domain.TicketSource `json:"source"`
}
