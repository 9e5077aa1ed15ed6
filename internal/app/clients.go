package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/wowbook/clarity-backend/internal/clients/gemini"
	"github.com/wowbook/clarity-backend/internal/clients/redis"
	"github.com/wowbook/clarity-backend/internal/platform/logger"
)

type Clients struct {
	Gemini      gemini.Client
	ResultCache redis.ResultCache
}

// wireClients treats both clients as optional: without GEMINI_API_KEY the
// commentary falls back to defaults, without REDIS_ADDR nothing is cached.
func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	// Gemini
	var ai gemini.Client
	if strings.TrimSpace(os.Getenv("GEMINI_API_KEY")) != "" {
		g, err := gemini.NewClient(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init gemini client: %w", err)
		}
		ai = g
	} else {
		log.Warn("GEMINI_API_KEY not set, AI commentary disabled")
	}

	// Redis
	var cache redis.ResultCache
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		c, err := redis.NewResultCache(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis result cache: %w", err)
		}
		cache = c
	} else {
		log.Warn("REDIS_ADDR not set, result caching disabled")
	}

	return Clients{
		Gemini:      ai,
		ResultCache: cache,
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.ResultCache != nil {
		_ = c.ResultCache.Close()
	}
}
