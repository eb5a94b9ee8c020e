// Package ai is the boundary to the external generative-language service.
// It formats prompts and response schemas, issues a single request/response
// call, and parses the textual JSON payload into typed fields. Failures are
// never retried here; callers substitute safe fallbacks.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/qolda-ai/support-desk/internal/config"
	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/i18n"
)

// TicketAnalysis is the structured ticket-attribute object returned by the
// service for both conversational turns and one-shot descriptions.
type TicketAnalysis struct {
	Category       domain.TicketCategory `json:"category"`
	Priority       domain.TicketPriority `json:"priority"`
	Department     string                `json:"department"`
	SummaryRU      string                `json:"summaryRU"`
	SummaryKZ      string                `json:"summaryKZ"`
	Sentiment      domain.Sentiment      `json:"sentiment"`
	SentimentScore int                   `json:"sentimentScore"`
}

// TurnResult is the structured outcome of one conversational turn.
type TurnResult struct {
	Intent             string          `json:"intent"`
	Reply              string          `json:"reply"`
	CloseSession       bool            `json:"closeSession"`
	GeneratedSummaryRU string          `json:"generatedSummaryRU"`
	GeneratedSummaryKZ string          `json:"generatedSummaryKZ"`
	TicketData         *TicketAnalysis `json:"ticketData"`
}

// Classifier is the shared contract between the chat session and the admin
// triage view.
type Classifier interface {
	// ClassifyTurn runs one conversational turn: the last few messages of
	// context plus the new user text.
	ClassifyTurn(ctx context.Context, lang i18n.Lang, history []domain.Message, userText string) (*TurnResult, error)
	// AnalyzeTicket extracts ticket attributes from a standalone description.
	AnalyzeTicket(ctx context.Context, description string) (*TicketAnalysis, error)
	// DraftReply produces a free-text agent reply draft. No schema.
	DraftReply(ctx context.Context, lang i18n.Lang, summary, description string) (string, error)
}

// Client calls the Google Generative Language REST API.
type Client struct {
	cfg  config.GeminiConfig
	http *http.Client
}

// NewClient constructs the REST client.
func NewClient(cfg config.GeminiConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.RequestTimeout()},
	}
}

// turnContextDepth limits how many prior messages ride along with a turn.
const turnContextDepth = 5

// ClassifyTurn implements Classifier.
func (c *Client) ClassifyTurn(ctx context.Context, lang i18n.Lang, history []domain.Message, userText string) (*TurnResult, error) {
	if len(history) > turnContextDepth {
		history = history[len(history)-turnContextDepth:]
	}
	var sb strings.Builder
	sb.WriteString("Context:\n")
	for _, m := range history {
		fmt.Fprintf(&sb, "%s: %s\n", m.Sender, m.Text)
	}
	fmt.Fprintf(&sb, "User: %s", userText)

	raw, err := c.generate(ctx, sb.String(), turnSystemInstruction(lang), turnSchema)
	if err != nil {
		return nil, err
	}

	var result TurnResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("parse turn result: %w", err)
	}
	if strings.TrimSpace(result.Reply) == "" {
		return nil, errors.New("turn result missing reply")
	}
	if result.Intent == "" {
		result.Intent = "SOLVE"
	}
	if result.TicketData != nil {
		result.TicketData.sanitize()
	}
	return &result, nil
}

// AnalyzeTicket implements Classifier.
func (c *Client) AnalyzeTicket(ctx context.Context, description string) (*TicketAnalysis, error) {
	raw, err := c.generate(ctx, description, analyzeSystemInstruction, analysisSchema)
	if err != nil {
		return nil, err
	}

	var analysis TicketAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("parse ticket analysis: %w", err)
	}
	if analysis.Category == "" && analysis.Priority == "" {
		return nil, errors.New("analysis missing category and priority")
	}
	analysis.sanitize()
	analysis.applyDefaults()
	return &analysis, nil
}

// DraftReply implements Classifier.
func (c *Client) DraftReply(ctx context.Context, lang i18n.Lang, summary, description string) (string, error) {
	prompt := fmt.Sprintf(
		"Language: %s\nTicket Summary: %s\nDescription: %s\n"+
			"Draft a response to the user telling them we are working on it or offering a solution.\n"+
			"IMPORTANT: Output only the response text in %s.",
		lang.PromptName(), summary, description, lang.PromptName())

	text, err := c.generate(ctx, prompt, draftSystemInstruction, nil)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty draft response")
	}
	return text, nil
}

// sanitize drops values outside the closed attribute sets; the response
// schema is advisory, not enforced by the service.
func (a *TicketAnalysis) sanitize() {
	if !domain.ValidCategory(a.Category) {
		a.Category = ""
	}
	if a.Priority.Rank() == 0 {
		a.Priority = ""
	}
	switch a.Sentiment {
	case domain.SentimentPositive, domain.SentimentNeutral, domain.SentimentNegative, domain.SentimentFrustrated:
	default:
		a.Sentiment = ""
	}
	if a.SentimentScore < 0 {
		a.SentimentScore = 0
	}
	if a.SentimentScore > 100 {
		a.SentimentScore = 100
	}
}

// applyDefaults fills the one-shot analysis fallbacks used by manual ticket
// creation.
func (a *TicketAnalysis) applyDefaults() {
	if a.Priority == "" {
		a.Priority = domain.TicketPriorityMedium
	}
	if a.Category == "" {
		a.Category = domain.CategoryOther
	}
	if a.Department == "" {
		a.Department = "General Support"
	}
	if a.Sentiment == "" {
		a.Sentiment = domain.SentimentNeutral
	}
	if a.SentimentScore == 0 {
		a.SentimentScore = 50
	}
}

// generateContent wire types.

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate issues one generateContent call and returns the text payload of
// the first candidate.
func (c *Client) generate(ctx context.Context, prompt, system string, schema map[string]any) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if system != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}
	if schema != nil {
		reqBody.GenerationConfig = &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generative service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generative service status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode generative response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no candidates in generative response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
