package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolda-ai/support-desk/internal/api/dto"
	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/session"
	apperrors "github.com/qolda-ai/support-desk/pkg/util"
)

// ChatHandler manages the end-user chat endpoints.
type ChatHandler struct {
	session *session.Session
}

// NewChatHandler constructs handler.
func NewChatHandler(chatSession *session.Session) *ChatHandler {
	return &ChatHandler{session: chatSession}
}

// SubmitMessage POST /chat/messages.
func (h *ChatHandler) SubmitMessage(c *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	attachments := make([]domain.Attachment, 0, len(req.Attachments))
	for _, att := range req.Attachments {
		attachments = append(attachments, domain.Attachment{
			Name:     att.Name,
			MimeType: att.MimeType,
			URL:      att.URL,
		})
	}

	outcome, err := h.session.Submit(c.UserContext(), req.Text, attachments)
	if err != nil {
		return err
	}
	resp := dto.TurnResponse{
		UserMessage: messageResponse(outcome.UserMessage),
		BotMessage:  messageResponse(outcome.BotMessage),
		State:       h.session.State(),
		Fallback:    outcome.Fallback,
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": resp})
}

// Transcript GET /chat/transcript.
func (h *ChatHandler) Transcript(c *fiber.Ctx) error {
	msgs := h.session.Transcript()
	items := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, messageResponse(m))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Session GET /chat/session.
func (h *ChatHandler) Session(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.SessionResponse{
		State:       h.session.State(),
		CloseReason: h.session.Reason(),
		Lang:        h.session.Lang(),
	}})
}

// SetLanguage POST /chat/language.
func (h *ChatHandler) SetLanguage(c *fiber.Ctx) error {
	var req dto.ChatLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !req.Lang.Valid() {
		return apperrors.NewValidationError("lang must be RU or KZ", nil)
	}
	h.session.SetLang(req.Lang)
	return c.JSON(fiber.Map{"data": dto.SessionResponse{
		State:       h.session.State(),
		CloseReason: h.session.Reason(),
		Lang:        h.session.Lang(),
	}})
}

func messageResponse(m domain.Message) dto.MessageResponse {
	attachments := make([]dto.AttachmentPayload, 0, len(m.Attachments))
	for _, att := range m.Attachments {
		attachments = append(attachments, dto.AttachmentPayload{
			Name:     att.Name,
			MimeType: att.MimeType,
			URL:      att.URL,
		})
	}
	return dto.MessageResponse{
		ID:          m.ID,
		Sender:      m.Sender,
		Text:        m.Text,
		Attachments: attachments,
		Timestamp:   m.Timestamp,
	}
}
