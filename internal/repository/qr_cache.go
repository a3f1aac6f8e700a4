package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/eventpass/internal/domain"
)

const qrCacheKeyPrefix = "qr:"

// QRCache is a read-through cache for resolved short-links. Cache misses
// and cache errors both fall back to the store; the scan counter is never
// served from here.
type QRCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQRCache builds a cache over the given redis client.
func NewQRCache(client *redis.Client, ttl time.Duration) *QRCache {
	return &QRCache{client: client, ttl: ttl}
}

// Get returns the cached QR for shortID, or false on miss or error.
func (c *QRCache) Get(ctx context.Context, shortID string) (*domain.MarketingQR, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, qrCacheKeyPrefix+shortID).Bytes()
	if err != nil {
		return nil, false
	}
	var qr domain.MarketingQR
	if err := json.Unmarshal(payload, &qr); err != nil {
		return nil, false
	}
	return &qr, true
}

// Set stores the QR under its short id. Errors are ignored; the cache is
// best effort.
func (c *QRCache) Set(ctx context.Context, qr *domain.MarketingQR) {
	if c == nil || c.client == nil || qr == nil {
		return
	}
	payload, err := json.Marshal(qr)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, qrCacheKeyPrefix+qr.ShortID, payload, c.ttl).Err()
}

// Invalidate drops the cached entry for shortID.
func (c *QRCache) Invalidate(ctx context.Context, shortID string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, qrCacheKeyPrefix+shortID).Err()
}
