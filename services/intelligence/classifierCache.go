package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const classifierCachePrefix = "ai:label:"

// CachedClassifier remembers labels in Redis. Cache failures never fail a
// classification; they only cost a model call.
type CachedClassifier struct {
	inner  Classifier
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedClassifier(inner Classifier, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedClassifier {
	return &CachedClassifier{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *CachedClassifier) Classify(ctx context.Context, text string) (string, error) {
	key := cacheKey(text)

	label, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		return label, nil
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("classifier cache read failed", zap.Error(err))
	}

	label, err = c.inner.Classify(ctx, text)
	if err != nil {
		return "", err
	}

	if err := c.client.Set(ctx, key, label, c.ttl).Err(); err != nil {
		c.logger.Warn("classifier cache write failed", zap.Error(err))
	}
	return label, nil
}

// cacheKey normalizes case and whitespace so trivially different phrasings share an entry.
func cacheKey(text string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return classifierCachePrefix + hex.EncodeToString(sum[:])
}
