package bot

import (
	"fmt"
	"log/slog"
	"math/rand"
)

// Strategy selects a Brain implementation.
type Strategy int

const (
	// StrategyRandom picks uniformly among the legal plays.
	StrategyRandom Strategy = iota
)

// NewBrain creates a new bot brain using the specified strategy.
func NewBrain(strategy Strategy, rng *rand.Rand, logger *slog.Logger) (Brain, error) {
	switch strategy {
	case StrategyRandom:
		return NewRandomBrain(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy: %d", strategy)
	}
}
