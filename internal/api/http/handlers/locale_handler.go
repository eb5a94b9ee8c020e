package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolda-ai/support-desk/internal/i18n"
)

// LocaleHandler serves the static localized content.
type LocaleHandler struct{}

// NewLocaleHandler constructs handler.
func NewLocaleHandler() *LocaleHandler {
	return &LocaleHandler{}
}

// ListFAQs GET /faqs. Language is resolved from ?lang= or Accept-Language.
func (h *LocaleHandler) ListFAQs(c *fiber.Ctx) error {
	lang := requestLang(c)
	catalog := i18n.Lookup(lang)
	return c.JSON(fiber.Map{"data": catalog.FAQs, "lang": lang})
}

// Labels GET /labels returns the localized display names for the closed
// attribute sets, so the dashboard renders them without its own tables.
func (h *LocaleHandler) Labels(c *fiber.Ctx) error {
	lang := requestLang(c)
	catalog := i18n.Lookup(lang)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"statuses":   catalog.Statuses,
			"priorities": catalog.Priorities,
			"sentiments": catalog.Sentiments,
			"categories": catalog.Categories,
			"sources":    catalog.Sources,
		},
		"lang": lang,
	})
}
