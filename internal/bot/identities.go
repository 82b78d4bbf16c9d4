package bot

import (
	"math/rand"
	"time"
)

// The names automated players sit down with.
var botNames = []string{
	"AIshley",
	"FelAIcity",
	"AImy",
	"ChoBot",
	"Hirayama",
}

// NamePool hands out bot names in random order without repeats.
type NamePool struct {
	rng       *rand.Rand
	remaining []string
}

// NewNamePool creates a pool over the built-in names. A nil rng falls back
// to a time-seeded source.
func NewNamePool(rng *rand.Rand) *NamePool {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	remaining := make([]string, len(botNames))
	copy(remaining, botNames)
	return &NamePool{rng: rng, remaining: remaining}
}

// Next draws a name from the pool. It panics when the pool is empty; a
// four-player table never needs more names than the pool holds.
func (p *NamePool) Next() string {
	if len(p.remaining) == 0 {
		panic("bot name pool exhausted")
	}
	i := p.rng.Intn(len(p.remaining))
	name := p.remaining[i]
	p.remaining = append(p.remaining[:i], p.remaining[i+1:]...)
	return name
}
