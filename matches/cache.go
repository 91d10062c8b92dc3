package matches

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Cache ограничивает обращения к источникам окном TTL
type Cache struct {
	fetcher     Fetcher
	ttl         time.Duration
	fallbackTTL time.Duration
	now         func() time.Time
	logger      zerolog.Logger

	mu        sync.Mutex
	matches   []Match
	fetchedAt time.Time
	fallback  bool
	filled    bool
}

type CacheOption func(*Cache)

// WithFallbackTTL задает отдельное окно для резервных данных
func WithFallbackTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) { c.fallbackTTL = ttl }
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

// NewCache оборачивает fetcher. ttl <= 0 выключает кэширование
func NewCache(fetcher Fetcher, ttl time.Duration, logger zerolog.Logger, opts ...CacheOption) *Cache {
	c := &Cache{
		fetcher:     fetcher,
		ttl:         ttl,
		fallbackTTL: ttl,
		now:         time.Now,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpcomingMatches возвращает сохраненный список, пока окно не истекло.
// Возвращаемый срез общий для всех вызывающих, изменять его нельзя
func (c *Cache) UpcomingMatches(ctx context.Context) []Match {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filled {
		window := c.ttl
		if c.fallback {
			window = c.fallbackTTL
		}
		if age := c.now().Sub(c.fetchedAt); age < window {
			c.logger.Debug().Dur("age", age).Int("count", len(c.matches)).Msg("returning cached matches")
			return c.matches
		}
	}

	result := c.fetcher.Fetch(ctx)
	c.matches = result.Matches
	c.fetchedAt = c.now()
	c.fallback = result.Fallback
	c.filled = true

	c.logger.Info().
		Str("source", result.Source).
		Bool("fallback", result.Fallback).
		Int("count", len(result.Matches)).
		Msg("matches fetched")

	return c.matches
}
