package dto

import (
	"time"

	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/i18n"
	"github.com/qolda-ai/support-desk/internal/session"
)

// AttachmentPayload carries file metadata; the URL is a local object URL
// resolved on the client, nothing is uploaded.
type AttachmentPayload struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	URL      string `json:"url"`
}

// ChatMessageRequest is one user turn.
type ChatMessageRequest struct {
	Text        string              `json:"text"`
	Attachments []AttachmentPayload `json:"attachments"`
}

// ChatLanguageRequest switches the session language.
type ChatLanguageRequest struct {
	Lang i18n.Lang `json:"lang"`
}

// MessageResponse represents one transcript entry.
type MessageResponse struct {
	ID          string               `json:"id"`
	Sender      domain.MessageSender `json:"sender"`
	Text        string               `json:"text"`
	Attachments []AttachmentPayload  `json:"attachments,omitempty"`
	Timestamp   time.Time            `json:"timestamp"`
}

// TurnResponse reports the outcome of a submitted turn.
type TurnResponse struct {
	UserMessage MessageResponse `json:"user_message"`
	BotMessage  MessageResponse `json:"bot_message"`
	State       session.State   `json:"state"`
	Fallback    bool            `json:"fallback"`
}

// SessionResponse reports session lifecycle state.
type SessionResponse struct {
	State       session.State       `json:"state"`
	CloseReason session.CloseReason `json:"close_reason,omitempty"`
	Lang        i18n.Lang           `json:"lang"`
}
