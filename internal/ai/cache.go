package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/qolda-ai/support-desk/internal/domain"
	"github.com/qolda-ai/support-desk/internal/i18n"
)

// CachedClassifier memoizes one-shot ticket analyses in Redis. Auto-filling
// the same description twice (a re-opened create form, a repeated
// simulation) skips the external call. The cache is best-effort: any Redis
// failure falls through to the wrapped classifier. Conversational turns and
// reply drafts are never cached.
type CachedClassifier struct {
	next   Classifier
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedClassifier wraps next with a Redis analysis cache.
func NewCachedClassifier(next Classifier, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedClassifier {
	return &CachedClassifier{next: next, client: client, ttl: ttl, logger: logger}
}

// ClassifyTurn delegates to the wrapped classifier.
func (c *CachedClassifier) ClassifyTurn(ctx context.Context, lang i18n.Lang, history []domain.Message, userText string) (*TurnResult, error) {
	return c.next.ClassifyTurn(ctx, lang, history, userText)
}

// AnalyzeTicket serves a cached analysis when one exists for the exact
// description, otherwise calls through and stores the result.
func (c *CachedClassifier) AnalyzeTicket(ctx context.Context, description string) (*TicketAnalysis, error) {
	key := analysisKey(description)
	if c.client != nil {
		if cached, err := c.client.Get(ctx, key).Result(); err == nil {
			var analysis TicketAnalysis
			if err := json.Unmarshal([]byte(cached), &analysis); err == nil {
				return &analysis, nil
			}
		}
	}

	analysis, err := c.next.AnalyzeTicket(ctx, description)
	if err != nil {
		return nil, err
	}

	if c.client != nil {
		if payload, err := json.Marshal(analysis); err == nil {
			if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
				c.logger.Debug("analysis cache write failed", zap.Error(err))
			}
		}
	}
	return analysis, nil
}

// DraftReply delegates to the wrapped classifier.
func (c *CachedClassifier) DraftReply(ctx context.Context, lang i18n.Lang, summary, description string) (string, error) {
	return c.next.DraftReply(ctx, lang, summary, description)
}

func analysisKey(description string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(description)))
	return "analysis:" + hex.EncodeToString(sum[:])
}
