package matches

import (
	"context"

	"github.com/rs/zerolog"
)

// FallbackSource - имя источника для резервных данных
const FallbackSource = "fallback"

// Result - итог работы цепочки стратегий
type Result struct {
	Matches  []Match
	Source   string
	Fallback bool
}

// Fetcher отдает матчи из какого-либо источника
type Fetcher interface {
	Fetch(ctx context.Context) Result
}

// Chain перебирает стратегии в фиксированном порядке, первая непустая побеждает
type Chain struct {
	strategies []Strategy
	fallback   func() []Match
	logger     zerolog.Logger
}

// NewChain создает цепочку. fallback может быть nil, тогда при неудаче вернется пустой список
func NewChain(logger zerolog.Logger, fallback func() []Match, strategies ...Strategy) *Chain {
	return &Chain{
		strategies: strategies,
		fallback:   fallback,
		logger:     logger,
	}
}

func (c *Chain) Fetch(ctx context.Context) Result {
	for _, strategy := range c.strategies {
		if err := ctx.Err(); err != nil {
			c.logger.Warn().Err(err).Msg("context done, skipping remaining strategies")
			break
		}

		outcome := strategy.Fetch(ctx)
		switch outcome.Status {
		case StatusOK:
			list := truncate(outcome.Matches, Limit)
			c.logger.Debug().Str("strategy", strategy.Name()).Int("count", len(list)).Msg("strategy succeeded")
			return Result{Matches: list, Source: strategy.Name()}
		case StatusEmpty:
			c.logger.Debug().Str("strategy", strategy.Name()).Msg("strategy returned no matches")
		case StatusFailed:
			c.logger.Warn().Err(outcome.Err).Str("strategy", strategy.Name()).Msg("strategy failed")
		}
	}

	if c.fallback == nil {
		return Result{Source: FallbackSource, Fallback: true}
	}

	list := c.fallback()
	c.logger.Info().Int("count", len(list)).Msg("all strategies exhausted, using fallback data")
	return Result{Matches: list, Source: FallbackSource, Fallback: true}
}
