package domain

import "time"

// NotificationSeverity classifies feed entries.
type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeverityWarning NotificationSeverity = "warning"
	SeveritySuccess NotificationSeverity = "success"
	SeverityError   NotificationSeverity = "error"
)

// Notification is one entry in the admin alert feed. Entries are created on
// ticket-attribute transitions and mutated only by a bulk mark-all-read.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Severity  NotificationSeverity
	Timestamp time.Time
	Read      bool
}
