// Package terminal is the interactive front of the game: it renders hands,
// reads the human player's commands, and drives a session from the deal to
// the scoreboard.
package terminal

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/Velfi/dai-di/internal/domain"
)

// RenderCard colors a card for terminal display, diamonds and hearts in red
// and clubs and spades in black.
func RenderCard(card domain.Card) string {
	suit := card.Suit.String()
	switch card.Suit {
	case domain.Diamonds, domain.Hearts:
		suit = pterm.LightRed(suit)
	case domain.Clubs, domain.Spades:
		suit = pterm.Black(suit)
	}
	return card.Rank.String() + suit
}

// RenderHand renders every card in the hand, comma separated.
func RenderHand(hand domain.Hand) string {
	parts := make([]string, len(hand))
	for i, card := range hand {
		parts[i] = RenderCard(card)
	}
	return strings.Join(parts, ", ")
}
