package app

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Velfi/dai-di/internal/domain"
)

func TestNewSessionDealsTheWholeDeck(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(42)))
	sess := svc.NewSession()

	require.NotEmpty(t, sess.ID())

	seen := make(map[domain.Card]int, 52)
	for _, h := range sess.Hands() {
		assert.Len(t, h, 13)
		for _, card := range h {
			seen[card]++
		}
	}
	assert.Len(t, seen, 52, "the four hands must partition the deck")
	for card, n := range seen {
		assert.Equal(t, 1, n, "card %s dealt %d times", card, n)
	}
	assert.Empty(t, sess.deck, "a four-player deal leaves no cards undealt")
}

func TestNewSessionFirstTurnGoesToTheThreeOfDiamonds(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		svc := NewService(rand.New(rand.NewSource(seed)))
		sess := svc.NewSession()

		holder := -1
		for i, h := range sess.Hands() {
			if h.Contains(domain.ThreeOfDiamonds) {
				holder = i
			}
		}
		require.NotEqual(t, -1, holder)
		assert.Equal(t, holder, sess.WhoseTurn(), "seed %d", seed)
	}
}

func TestNewSessionIsReproducibleUnderASeed(t *testing.T) {
	first := NewService(rand.New(rand.NewSource(7))).NewSession()
	second := NewService(rand.New(rand.NewSource(7))).NewSession()

	assert.Equal(t, first.Hands(), second.Hands())
	assert.NotEqual(t, first.ID(), second.ID(), "session IDs are unique even for identical deals")
}

func TestNewServiceDefaultsItsRNG(t *testing.T) {
	svc := NewService(nil)
	sess := svc.NewSession()
	assert.Len(t, sess.CurrentPlayerHand(), 13)
}
