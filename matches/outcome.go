package matches

import (
	"context"
	"errors"
)

// Status - тег результата одной стратегии
type Status int

const (
	StatusOK Status = iota
	StatusEmpty
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome - явный результат стратегии вместо проглоченных ошибок
type Outcome struct {
	Status  Status
	Matches []Match
	Err     error
}

// OK возвращает успешный результат; пустой список превращается в Empty
func OK(list []Match) Outcome {
	if len(list) == 0 {
		return Empty()
	}
	return Outcome{Status: StatusOK, Matches: list}
}

func Empty() Outcome {
	return Outcome{Status: StatusEmpty}
}

func Failed(err error) Outcome {
	if err == nil {
		err = errors.New("unknown failure")
	}
	return Outcome{Status: StatusFailed, Err: err}
}

// Strategy - один способ получить матчи из одного внешнего источника
type Strategy interface {
	Name() string
	Fetch(ctx context.Context) Outcome
}

// StrategyFunc позволяет использовать функцию как стратегию
type StrategyFunc struct {
	Label string
	Fn    func(ctx context.Context) Outcome
}

func (s StrategyFunc) Name() string { return s.Label }

func (s StrategyFunc) Fetch(ctx context.Context) Outcome { return s.Fn(ctx) }
