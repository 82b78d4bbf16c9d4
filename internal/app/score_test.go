package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Velfi/dai-di/internal/domain"
)

func TestHandSizeToScore(t *testing.T) {
	tests := []struct {
		size     int
		expected int
	}{
		{0, 0},
		{1, -1},
		{7, -7},
		{10, -10},
		{11, -22},
		{12, -24},
		{13, -39},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HandSizeToScore(tt.size), "size %d", tt.size)
	}

	assert.Panics(t, func() { HandSizeToScore(14) })
	assert.Panics(t, func() { HandSizeToScore(-1) })
}

func TestFinalizeScores(t *testing.T) {
	deck := domain.NewDeck()

	sess := &Session{}
	sess.hands[0] = domain.Hand{}
	sess.hands[1] = append(domain.Hand{}, deck[:7]...)
	sess.hands[2] = append(domain.Hand{}, deck[7:20]...)
	sess.hands[3] = append(domain.Hand{}, deck[20:22]...)

	assert.Equal(t, [Players]int{0, 0, 0, 0}, sess.Scores(), "scores stay zero until the game is settled")

	scores := sess.FinalizeScores()
	assert.Equal(t, [Players]int{48, -7, -39, -2}, scores)
	assert.Equal(t, scores, sess.Scores())
}
