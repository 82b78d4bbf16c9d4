package domain

// Precedence is a property of the game, not of the cards: three is the
// lowest rank and two the highest, diamonds the lowest suit and spades the
// highest. The tables below are ordered from lowest to highest.

var suitPrecedence = [...]Suit{Diamonds, Clubs, Hearts, Spades}

var rankPrecedence = [...]Rank{
	Three, Four, Five, Six, Seven, Eight, Nine, Ten,
	Jack, Queen, King, Ace, Two,
}

func suitOrder(s Suit) int {
	for i, p := range suitPrecedence {
		if p == s {
			return i
		}
	}
	return -1
}

func rankOrder(r Rank) int {
	for i, p := range rankPrecedence {
		if p == r {
			return i
		}
	}
	return -1
}

// CompareSuits orders two suits by game precedence. The result is negative
// when a is the lower suit, zero when they are equal, positive otherwise.
func CompareSuits(a, b Suit) int {
	return suitOrder(a) - suitOrder(b)
}

// CompareRanks orders two ranks by game precedence, with the same sign
// convention as CompareSuits.
func CompareRanks(a, b Rank) int {
	return rankOrder(a) - rankOrder(b)
}

// CompareCards orders two cards: rank precedence decides, suit precedence
// breaks ties. The spade ace beats the heart ace, which beats the heart
// king.
func CompareCards(a, b Card) int {
	if a.Rank == b.Rank {
		return CompareSuits(a.Suit, b.Suit)
	}
	return CompareRanks(a.Rank, b.Rank)
}
