package domain

import (
	"sort"
	"strings"
)

// Hand is an ordered selection of cards. A dealt hand, a submitted play,
// and the discard pile are all Hands; whether a Hand is a legal play is a
// separate check (see Validate in rules.go), not a structural invariant.
type Hand []Card

// ParseHand reads whitespace-separated card tokens. Trailing commas on a
// token are tolerated, so "3D, 4H, 5S" parses the same as "3D 4H 5S".
func ParseHand(s string) (Hand, error) {
	fields := strings.Fields(s)
	hand := make(Hand, 0, len(fields))
	for _, field := range fields {
		card, err := ParseCard(strings.TrimRight(field, ","))
		if err != nil {
			return nil, err
		}
		hand = append(hand, card)
	}
	return hand, nil
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	return append(Hand(nil), h...)
}

// Contains reports whether the hand holds the given card.
func (h Hand) Contains(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}
	return false
}

// ContainsAll reports whether the hand holds every card in cards, counting
// copies: a hand with one 3♦ does not contain a play listing 3♦ twice.
func (h Hand) ContainsAll(cards Hand) bool {
	counts := make(map[Card]int, len(h))
	for _, c := range h {
		counts[c]++
	}
	for _, c := range cards {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}

// Remove returns the hand with one instance of each given card removed.
func (h Hand) Remove(cards Hand) Hand {
	out := h.Clone()
	for _, c := range cards {
		for i, held := range out {
			if held == c {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}

// SortByRank arranges the hand rank-major: rank precedence first, suit
// precedence within a rank.
func (h Hand) SortByRank() {
	sort.Slice(h, func(i, j int) bool {
		return CompareCards(h[i], h[j]) < 0
	})
}

// SortBySuit arranges the hand suit-major: suit precedence first, rank
// precedence within a suit.
func (h Hand) SortBySuit() {
	sort.Slice(h, func(i, j int) bool {
		if h[i].Suit == h[j].Suit {
			return CompareRanks(h[i].Rank, h[j].Rank) < 0
		}
		return CompareSuits(h[i].Suit, h[j].Suit) < 0
	})
}

// HighestCard returns the highest card by game precedence, or false for an
// empty hand.
func (h Hand) HighestCard() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}
	best := h[0]
	for _, c := range h[1:] {
		if CompareCards(best, c) < 0 {
			best = c
		}
	}
	return best, true
}

// LowestCard returns the lowest card by game precedence, or false for an
// empty hand.
func (h Hand) LowestCard() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}
	best := h[0]
	for _, c := range h[1:] {
		if CompareCards(c, best) < 0 {
			best = c
		}
	}
	return best, true
}

// Combinations returns every k-card selection of the hand, each preserving
// the hand's current order. There are no results when k is out of range.
func (h Hand) Combinations(k int) []Hand {
	if k <= 0 || k > len(h) {
		return nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	var out []Hand
	for {
		pick := make(Hand, k)
		for i, j := range idx {
			pick[i] = h[j]
		}
		out = append(out, pick)

		i := k - 1
		for i >= 0 && idx[i] == len(h)-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// SortOrder selects which precedence leads when arranging a hand for
// display.
type SortOrder int

const (
	ByRank SortOrder = iota
	BySuit
)

func (o SortOrder) String() string {
	if o == BySuit {
		return "suit"
	}
	return "rank"
}
