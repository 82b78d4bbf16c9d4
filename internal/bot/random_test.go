package bot

import (
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Velfi/dai-di/internal/app"
	"github.com/Velfi/dai-di/internal/domain"
)

func hand(t *testing.T, s string) domain.Hand {
	t.Helper()
	h, err := domain.ParseHand(s)
	require.NoError(t, err, "parse hand %q", s)
	return h
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRandomBrainPassesWhenNothingCanBePlayed(t *testing.T) {
	sess := app.NewService(rand.New(rand.NewSource(42))).NewSession()
	brain := NewRandomBrain(rand.New(rand.NewSource(1)), quietLogger())

	// Opening a game without the three of diamonds: no legal plays.
	move, err := brain.CalculateMove(sess, hand(t, "4C 5S 6D"))
	require.NoError(t, err)
	assert.True(t, move.Pass)

	// An emptied hand can never follow.
	require.NoError(t, sess.PlayCards(hand(t, "3D")))
	move, err = brain.CalculateMove(sess, domain.Hand{})
	require.NoError(t, err)
	assert.True(t, move.Pass)
}

func TestRandomBrainPlaysALegalMove(t *testing.T) {
	sess := app.NewService(rand.New(rand.NewSource(42))).NewSession()
	require.NoError(t, sess.PlayCards(hand(t, "3D")))

	brain := NewRandomBrain(rand.New(rand.NewSource(1)), quietLogger())
	move, err := brain.CalculateMove(sess, hand(t, "5C 5D 8H"))
	require.NoError(t, err)

	require.False(t, move.Pass)
	require.Len(t, move.Cards, 1)
	last, ok := sess.LastPlay()
	require.True(t, ok)
	assert.NoError(t, domain.MayFollow(last, move.Cards))
}

func TestRandomBrainIsDeterministicUnderASeed(t *testing.T) {
	deal := func() *app.Session {
		sess := app.NewService(rand.New(rand.NewSource(42))).NewSession()
		require.NoError(t, sess.PlayCards(hand(t, "3D")))
		return sess
	}

	first, err := NewRandomBrain(rand.New(rand.NewSource(7)), quietLogger()).
		CalculateMove(deal(), hand(t, "5C 5D 8H 9S 2C"))
	require.NoError(t, err)
	second, err := NewRandomBrain(rand.New(rand.NewSource(7)), quietLogger()).
		CalculateMove(deal(), hand(t, "5C 5D 8H 9S 2C"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNewBrainFactory(t *testing.T) {
	brain, err := NewBrain(StrategyRandom, nil, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &RandomBrain{}, brain)

	_, err = NewBrain(Strategy(99), nil, quietLogger())
	assert.EqualError(t, err, "unknown bot strategy: 99")
}
