// Package i18n holds the static RU/KZ string tables for the support desk.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/qolda-ai/support-desk/internal/domain"
)

// Lang is a supported UI language tag.
type Lang string

const (
	LangRU Lang = "RU"
	LangKZ Lang = "KZ"
)

// DefaultLang is used when no supported language matches.
const DefaultLang = LangRU

// Valid reports whether l is a supported language.
func (l Lang) Valid() bool {
	return l == LangRU || l == LangKZ
}

// PromptName is the language name used in classification prompts.
func (l Lang) PromptName() string {
	if l == LangKZ {
		return "Kazakh"
	}
	return "Russian"
}

var matcher = language.NewMatcher([]language.Tag{
	language.Russian, // RU, the default
	language.Kazakh,  // KZ
})

// Match resolves an Accept-Language style value to a supported language.
func Match(accept string) Lang {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, index, _ := matcher.Match(tags...)
	if index == 1 {
		return LangKZ
	}
	return LangRU
}

// FAQ is one frequently-asked question with its canned answer.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Catalog is the full string table for one language.
type Catalog struct {
	AppTitle    string
	AppSubtitle string

	Welcome       string
	CurrentUser   string
	SessionClosed string

	TimeoutMessage       string
	ClosedByAdminMessage string
	ClosedByAIMessage    string
	AIFailureMessage     string
	DraftFailureMessage  string

	ConfirmResolutionQuestion string

	NotifNegativeTitle      string
	notifNegativeBodyPrefix string
	NotifCreatedTitle       string
	notifCreatedBodyPrefix  string

	FAQs []FAQ

	Statuses   map[domain.TicketStatus]string
	Priorities map[domain.TicketPriority]string
	Sentiments map[domain.Sentiment]string
	Categories map[domain.TicketCategory]string
	Sources    map[domain.TicketSource]string
}

// NotifNegativeBody renders the negative-sentiment warning body for a ticket.
func (c Catalog) NotifNegativeBody(ticketID string) string {
	return fmt.Sprintf("%s: %s", c.notifNegativeBodyPrefix, ticketID)
}

// NotifCreatedBody renders the ticket-created notification body.
func (c Catalog) NotifCreatedBody(ticketID string, category domain.TicketCategory) string {
	return fmt.Sprintf("%s: %s (%s)", c.notifCreatedBodyPrefix, ticketID, category)
}

// Lookup returns the catalog for lang, falling back to the default language.
func Lookup(lang Lang) Catalog {
	if lang == LangKZ {
		return kz
	}
	return ru
}
