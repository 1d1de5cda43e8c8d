package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"educrm/backend/internal/dto"
	"educrm/backend/pkg/redis"
)

const (
	summaryCacheKey = "finance:summary"
	summaryCacheTTL = 60 * time.Second
)

// summaryCache keeps the dashboard finance summary in Redis for a short TTL.
// It is an accelerator only: every method degrades to a no-op when Redis is
// absent or failing, and mutations invalidate the key so the dashboard never
// shows a stale figure longer than one TTL.
type summaryCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func newSummaryCache(rdb *redis.Client, logger *zap.Logger) *summaryCache {
	return &summaryCache{rdb: rdb, logger: logger}
}

// Get returns the cached summary or nil on miss/unavailable.
func (c *summaryCache) Get(ctx context.Context) *dto.FinanceSummaryResponse {
	if c.rdb == nil {
		return nil
	}
	b, err := c.rdb.GetJSON(ctx, summaryCacheKey)
	if err != nil {
		c.logger.Warn("summary cache read failed", zap.Error(err))
		return nil
	}
	if b == nil {
		return nil
	}
	var summary dto.FinanceSummaryResponse
	if err := json.Unmarshal(b, &summary); err != nil {
		c.logger.Warn("summary cache decode failed", zap.Error(err))
		return nil
	}
	return &summary
}

// Set stores the summary.
func (c *summaryCache) Set(ctx context.Context, summary *dto.FinanceSummaryResponse) {
	if c.rdb == nil {
		return
	}
	b, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := c.rdb.SetJSON(ctx, summaryCacheKey, b, summaryCacheTTL); err != nil {
		c.logger.Warn("summary cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached summary after a finance-relevant mutation.
func (c *summaryCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Delete(ctx, summaryCacheKey); err != nil {
		c.logger.Warn("summary cache invalidate failed", zap.Error(err))
	}
}
