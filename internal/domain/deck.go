package domain

// NewDeck returns the standard 52-card deck in suit-major order: all the
// diamonds from two through ace, then the clubs, hearts, and spades.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := Diamonds; s <= Spades; s++ {
		for r := Two; r <= Ace; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}
