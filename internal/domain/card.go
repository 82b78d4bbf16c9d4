package domain

import (
	"fmt"
	"strings"
)

// Card pairs a rank with a suit. Cards are plain values: two cards with the
// same rank and suit are the same card, and nothing but dealing discipline
// stops a caller from conjuring duplicates.
type Card struct {
	Rank Rank
	Suit Suit
}

// ThreeOfDiamonds is the lowest card by game precedence and must be part of
// the opening play of every game.
var ThreeOfDiamonds = Card{Rank: Three, Suit: Diamonds}

// TwoOfSpades is the highest card by game precedence.
var TwoOfSpades = Card{Rank: Two, Suit: Spades}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard reads a rank token immediately followed by a suit token, with no
// separator: "3d", "10H", "A♠". The suit is the final rune; everything
// before it is the rank.
func ParseCard(s string) (Card, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("`%s` is not a valid card", s)
	}

	rank, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(string(runes[len(runes)-1:]))
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}
