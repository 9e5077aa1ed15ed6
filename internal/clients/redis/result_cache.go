package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/types"
)

// ResultCache memoizes analysis results by answer fingerprint so the same
// effective submission always yields the same recommendation.
type ResultCache interface {
	Get(ctx context.Context, fingerprint string) (*types.RecommendationResult, bool)
	Set(ctx context.Context, fingerprint string, result *types.RecommendationResult)
	Close() error
}

type resultCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewResultCache(log *logger.Logger) (ResultCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	ttl := 24 * time.Hour
	if v := strings.TrimSpace(os.Getenv("RESULT_CACHE_TTL_HOURS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ttl = time.Duration(parsed) * time.Hour
		}
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &resultCache{
		log: log.With("service", "RedisResultCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func cacheKey(fingerprint string) string {
	sum := sha256.Sum256([]byte(fingerprint))
	return "clarity:result:" + hex.EncodeToString(sum[:])
}

func (c *resultCache) Get(ctx context.Context, fingerprint string) (*types.RecommendationResult, bool) {
	raw, err := c.rdb.Get(ctx, cacheKey(fingerprint)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Result cache read failed", "error", err)
		}
		return nil, false
	}
	var result types.RecommendationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.log.Warn("Result cache entry corrupt, ignoring", "error", err)
		return nil, false
	}
	return &result, true
}

func (c *resultCache) Set(ctx context.Context, fingerprint string, result *types.RecommendationResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		c.log.Warn("Result cache encode failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(fingerprint), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Result cache write failed", "error", err)
	}
}

func (c *resultCache) Close() error {
	return c.rdb.Close()
}
