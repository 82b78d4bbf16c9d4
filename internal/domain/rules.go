package domain

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyHand    = errors.New("a hand must contain at least one card")
	ErrInvalidSize  = errors.New("plays must be either a single card, a pair, a triplet, or a quintuple")
	ErrMixedRanks   = errors.New("1-3 card plays may only contain cards of the same rank")
	ErrNoCategory   = errors.New("5 card plays must be a straight, a flush, a full house, a four of a kind plus one, or a straight flush")
	ErrSizeMismatch = errors.New("during a trick, all hands must contain the same number of cards")

	ErrCardNotHigher    = errors.New("the played card must be higher than the previous card")
	ErrPairNotHigher    = errors.New("the played pair must be higher than the previous pair")
	ErrTripletNotHigher = errors.New("the played triplet must be higher than the previous triplet")
)

// FiveCardCategory identifies which shape a five-card play forms. The
// declaration order is the beating order: a play of a higher category beats
// any five-card play of a lower one.
type FiveCardCategory int

const (
	CategoryStraight FiveCardCategory = iota
	CategoryFlush
	CategoryFullHouse
	CategoryFourOfAKindPlusOne
	CategoryStraightFlush
)

func (c FiveCardCategory) String() string {
	switch c {
	case CategoryStraight:
		return "straight"
	case CategoryFlush:
		return "flush"
	case CategoryFullHouse:
		return "full house"
	case CategoryFourOfAKindPlusOne:
		return "four of a kind plus one"
	case CategoryStraightFlush:
		return "straight flush"
	}
	return "unknown"
}

func allSameRank(cards Hand) bool {
	if len(cards) == 0 {
		return false
	}
	r := cards[0].Rank
	for _, c := range cards {
		if c.Rank != r {
			return false
		}
	}
	return true
}

func rankCounts(cards Hand) map[Rank]int {
	counts := make(map[Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

// IsPair reports whether the hand is two cards of one rank.
func (h Hand) IsPair() bool {
	return len(h) == 2 && allSameRank(h)
}

// IsTriplet reports whether the hand is three cards of one rank.
func (h Hand) IsTriplet() bool {
	return len(h) == 3 && allSameRank(h)
}

// IsFourOfAKindPlusOne reports whether the hand is five cards where one rank
// appears four times. Card order does not matter.
func (h Hand) IsFourOfAKindPlusOne() bool {
	if len(h) != 5 {
		return false
	}
	for _, n := range rankCounts(h) {
		if n == 4 {
			return true
		}
	}
	return false
}

// IsFullHouse reports whether the hand is five cards where one rank appears
// three times and another twice.
func (h Hand) IsFullHouse() bool {
	if len(h) != 5 {
		return false
	}
	counts := rankCounts(h)
	if len(counts) != 2 {
		return false
	}
	for _, n := range counts {
		if n == 3 {
			return true
		}
	}
	return false
}

// IsFlush reports whether the hand is five cards of one suit.
func (h Hand) IsFlush() bool {
	if len(h) != 5 {
		return false
	}
	s := h[0].Suit
	for _, c := range h {
		if c.Suit != s {
			return false
		}
	}
	return true
}

// The straights this game recognizes, as rank multisets sorted by rank
// precedence: the eight basic runs plus three special straights that wrap
// around through the two.
var straightPatterns = [...][5]Rank{
	{Three, Four, Five, Six, Seven},
	{Four, Five, Six, Seven, Eight},
	{Five, Six, Seven, Eight, Nine},
	{Six, Seven, Eight, Nine, Ten},
	{Seven, Eight, Nine, Ten, Jack},
	{Eight, Nine, Ten, Jack, Queen},
	{Nine, Ten, Jack, Queen, King},
	{Ten, Jack, Queen, King, Ace},
	{Three, Four, Five, Ace, Two}, // A 2 3 4 5
	{Three, Four, Five, Six, Two}, // 2 3 4 5 6
	{Jack, Queen, King, Ace, Two}, // J Q K A 2
}

// IsStraight reports whether the hand is one of the recognized five-card
// runs. Because rank precedence is not numeric (two is high), straights are
// matched against fixed patterns rather than checked for consecutiveness.
func (h Hand) IsStraight() bool {
	if len(h) != 5 {
		return false
	}

	var ranks [5]Rank
	for i, c := range h {
		ranks[i] = c.Rank
	}
	sort.Slice(ranks[:], func(i, j int) bool {
		return CompareRanks(ranks[i], ranks[j]) < 0
	})

	for _, pattern := range straightPatterns {
		if ranks == pattern {
			return true
		}
	}
	return false
}

// IsStraightFlush reports whether the hand is a straight in a single suit.
func (h Hand) IsStraightFlush() bool {
	return h.IsStraight() && h.IsFlush()
}

// ClassifyFiveCards returns the dominant category of a five-card hand.
// Straight flush is checked first since it is also a straight and a flush.
func ClassifyFiveCards(h Hand) (FiveCardCategory, bool) {
	switch {
	case h.IsStraightFlush():
		return CategoryStraightFlush, true
	case h.IsFourOfAKindPlusOne():
		return CategoryFourOfAKindPlusOne, true
	case h.IsFullHouse():
		return CategoryFullHouse, true
	case h.IsFlush():
		return CategoryFlush, true
	case h.IsStraight():
		return CategoryStraight, true
	}
	return 0, false
}

// RankOfLargestGroup returns the rank that appears most often in the hand,
// breaking ties in favor of the lower precedence position. Four of a kind
// plus one is judged by this group, never by its kicker.
func (h Hand) RankOfLargestGroup() (Rank, bool) {
	if len(h) == 0 {
		return 0, false
	}

	var counts [13]int
	for _, c := range h {
		counts[rankOrder(c.Rank)]++
	}

	best := 0
	for i, n := range counts {
		if n > counts[best] {
			best = i
		}
	}
	return rankPrecedence[best], true
}

// Validate reports whether the hand is a playable shape: a single card, a
// pair, a triplet, or one of the five-card categories. The returned error
// carries the reason a player would be shown.
func (h Hand) Validate() error {
	switch len(h) {
	case 0:
		return ErrEmptyHand
	case 1, 2, 3:
		if !allSameRank(h) {
			return ErrMixedRanks
		}
		return nil
	case 5:
		if _, ok := ClassifyFiveCards(h); !ok {
			return ErrNoCategory
		}
		return nil
	}
	return ErrInvalidSize
}

// MayFollow decides whether candidate may legally beat prev within a trick.
//
// Sizes must match. One, two, and three-card plays compare by their highest
// card, so a pair of kings led by the spade beats a pair of kings led by the
// heart. Five-card plays compare by category first: straight, flush, full
// house, four of a kind plus one, and straight flush beat each other in that
// order, and within a category the highest card decides, except for four of
// a kind plus one which is judged by the rank of its group of four.
func MayFollow(prev, candidate Hand) error {
	if err := prev.Validate(); err != nil {
		return fmt.Errorf("the previous play is invalid: %w", err)
	}
	if len(prev) != len(candidate) {
		return ErrSizeMismatch
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	switch len(prev) {
	case 1, 2, 3:
		prevHigh, _ := prev.HighestCard()
		candHigh, _ := candidate.HighestCard()
		if CompareCards(prevHigh, candHigh) < 0 {
			return nil
		}
		switch len(prev) {
		case 1:
			return ErrCardNotHigher
		case 2:
			return ErrPairNotHigher
		}
		return ErrTripletNotHigher
	case 5:
		return mayFollowFiveCards(prev, candidate)
	}

	panic(fmt.Sprintf("unhandled play size %d", len(prev)))
}

func mayFollowFiveCards(prev, candidate Hand) error {
	prevCat, _ := ClassifyFiveCards(prev)
	candCat, _ := ClassifyFiveCards(candidate)

	if candCat != prevCat {
		if candCat > prevCat {
			return nil
		}
		return fmt.Errorf("a %s cannot beat a %s", candCat, prevCat)
	}

	if candCat == CategoryFourOfAKindPlusOne {
		prevRank, _ := prev.RankOfLargestGroup()
		candRank, _ := candidate.RankOfLargestGroup()
		if CompareRanks(prevRank, candRank) < 0 {
			return nil
		}
		return fmt.Errorf("the played %s must be higher than the previous %s", candCat, prevCat)
	}

	prevHigh, _ := prev.HighestCard()
	candHigh, _ := candidate.HighestCard()
	if CompareCards(prevHigh, candHigh) < 0 {
		return nil
	}
	return fmt.Errorf("the played %s must be higher than the previous %s", candCat, prevCat)
}
