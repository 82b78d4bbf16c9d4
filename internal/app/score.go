package app

import "fmt"

// HandSizeToScore converts a leftover hand size into a final score. Cards
// left in hand are penalties: one point each up to ten cards, doubled at
// eleven or twelve, tripled at a full thirteen. The result is negated, so an
// emptied hand scores zero and everything else is below zero.
func HandSizeToScore(n int) int {
	var score int
	switch {
	case n >= 0 && n <= 10:
		score = n
	case n == 11 || n == 12:
		score = n * 2
	case n == 13:
		score = n * 3
	default:
		panic(fmt.Sprintf("hand size %d is impossible in a four-player game", n))
	}
	return -score
}

// FinalizeScores computes each seat's score from its remaining hand and
// records the result on the session. The winner, the one seat with no cards
// left, receives the combined magnitude of everyone else's penalties.
func (s *Session) FinalizeScores() [Players]int {
	winner := -1
	total := 0
	for i, hand := range s.hands {
		score := HandSizeToScore(len(hand))
		s.scores[i] = score
		total += score
		if len(hand) == 0 {
			winner = i
		}
	}
	if winner >= 0 {
		s.scores[winner] = -total
	}
	return s.scores
}

// Scores returns the per-seat scores recorded by FinalizeScores. All zeros
// until the game ends.
func (s *Session) Scores() [Players]int {
	return s.scores
}
