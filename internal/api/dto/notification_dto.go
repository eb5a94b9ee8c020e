package dto

import (
	"time"

	"github.com/qolda-ai/support-desk/internal/domain"
)

// NotificationResponse is one feed entry.
type NotificationResponse struct {
	ID        string                      `json:"id"`
	Title     string                      `json:"title"`
	Message   string                      `json:"message"`
	Severity  domain.NotificationSeverity `json:"severity"`
	Timestamp time.Time                   `json:"timestamp"`
	Read      bool                        `json:"read"`
}
