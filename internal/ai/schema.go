package ai

import (
	"fmt"

	"github.com/qolda-ai/support-desk/internal/i18n"
)

// Response schemas declared to the service. The schemas are advisory: the
// service is asked for JSON of this shape, and the parser still validates
// and defaults every field.

var ticketDataSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"category":       map[string]any{"type": "STRING", "enum": []string{"Network", "Hardware", "Software", "Access", "Other"}},
		"priority":       map[string]any{"type": "STRING", "enum": []string{"High", "Medium", "Low"}},
		"department":     map[string]any{"type": "STRING"},
		"summaryRU":      map[string]any{"type": "STRING"},
		"summaryKZ":      map[string]any{"type": "STRING"},
		"sentiment":      map[string]any{"type": "STRING", "enum": []string{"Positive", "Neutral", "Negative", "Frustrated"}},
		"sentimentScore": map[string]any{"type": "INTEGER"},
	},
}

var turnSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"intent":             map[string]any{"type": "STRING", "enum": []string{"SOLVE", "TICKET"}, "description": "SOLVE if general question. TICKET if breakage/request."},
		"reply":              map[string]any{"type": "STRING", "description": "Detailed, step-by-step response in user language."},
		"closeSession":       map[string]any{"type": "BOOLEAN", "description": "Set to TRUE ONLY if user explicitly confirms the issue is resolved."},
		"generatedSummaryRU": map[string]any{"type": "STRING", "description": "If this is the FIRST message, generate 3-5 word summary in Russian. Else null."},
		"generatedSummaryKZ": map[string]any{"type": "STRING", "description": "If this is the FIRST message, generate 3-5 word summary in Kazakh. Else null."},
		"ticketData":         ticketDataSchema,
	},
	"required": []string{"intent", "reply"},
}

var analysisSchema = ticketDataSchema

const analyzeSystemInstruction = "You are an expert IT Ticket Analyzer. Analyze the description and extract structured data."

const draftSystemInstruction = "You are a senior IT support agent. Draft a polite, professional, concise response."

// turnSystemInstruction renders the per-turn system prompt. Session closure
// is a content-level contract: the instruction allows the service to signal
// closeSession only on explicit user confirmation.
func turnSystemInstruction(lang i18n.Lang) string {
	catalog := i18n.Lookup(lang)
	return fmt.Sprintf(`You are QOLDA.AI. Language: %s.
1. ACT as an expert IT support agent. Try to SOLVE the user's issue directly.
2. Do NOT say "I will pass this to a specialist" or "I have registered a ticket" unless the user specifically asks for a human or if the issue is physically impossible to solve via chat (e.g. broken hardware). Even then, try troubleshooting steps first.
3. Provide a CLEAR, CONCISE, and INFORMATIVE answer. Use bullet points.
4. Do NOT start with greetings.
5. After providing a solution, ASK the user: "%s"
6. ONLY set closeSession = true if the user EXPLICITLY confirms.
7. If this is the FIRST message from user, generate a short summary for 'generatedSummaryRU' and 'generatedSummaryKZ'.
8. Always analyze the conversation to populate 'ticketData'.`,
		lang.PromptName(), catalog.ConfirmResolutionQuestion)
}
