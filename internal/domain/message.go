package domain

import "time"

// MessageSender indicates who authored a message.
type MessageSender string

const (
	SenderUser  MessageSender = "user"
	SenderBot   MessageSender = "bot"
	SenderAgent MessageSender = "agent"
)

// Message captures one entry in a ticket conversation. Messages are
// append-only and ordered chronologically.
type Message struct {
	ID          string
	Sender      MessageSender
	Text        string
	Attachments []Attachment
	Timestamp   time.Time
}

// Attachment stores metadata for a user-selected file. The URL is a
// dereferenceable local object URL; nothing is uploaded or stored
// server-side.
type Attachment struct {
	Name     string
	MimeType string
	URL      string
}
