package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolda-ai/support-desk/internal/api/dto"
	"github.com/qolda-ai/support-desk/internal/service"
)

// NotificationsHandler exposes the dashboard notification feed.
type NotificationsHandler struct {
	feed *service.NotificationFeed
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(feed *service.NotificationFeed) *NotificationsHandler {
	return &NotificationsHandler{feed: feed}
}

// ListNotifications GET /notifications.
func (h *NotificationsHandler) ListNotifications(c *fiber.Ctx) error {
	items := h.feed.List()
	resp := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		resp = append(resp, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Severity:  n.Severity,
			Timestamp: n.Timestamp,
			Read:      n.Read,
		})
	}
	return c.JSON(fiber.Map{"data": resp, "unread": h.feed.UnreadCount()})
}

// MarkAllRead POST /notifications/read.
func (h *NotificationsHandler) MarkAllRead(c *fiber.Ctx) error {
	h.feed.MarkAllRead()
	return c.JSON(fiber.Map{"data": fiber.Map{"unread": 0}})
}
