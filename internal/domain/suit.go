package domain

import (
	"fmt"
	"strings"
)

// Suit is one of the four card suits. Like ranks, suits have no intrinsic
// ordering; suit precedence is defined in compare.go.
type Suit int

const (
	Diamonds Suit = iota
	Clubs
	Hearts
	Spades
)

func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

// ParseSuit reads a suit token: a single letter, a full word, or a glyph.
// The hollow glyph variants are accepted too.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "d", "diamonds", "♦", "♢":
		return Diamonds, nil
	case "c", "clubs", "♣", "♧":
		return Clubs, nil
	case "h", "hearts", "♥", "♡":
		return Hearts, nil
	case "s", "spades", "♠", "♤":
		return Spades, nil
	}
	return 0, fmt.Errorf("`%s` is not a suit", s)
}
