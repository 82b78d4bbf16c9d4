package domain

import (
	"testing"
)

func mustCard(t *testing.T, s string) Card {
	t.Helper()
	card, err := ParseCard(s)
	if err != nil {
		t.Fatalf("parse card %q: %v", s, err)
	}
	return card
}

func mustHand(t *testing.T, s string) Hand {
	t.Helper()
	hand, err := ParseHand(s)
	if err != nil {
		t.Fatalf("parse hand %q: %v", s, err)
	}
	return hand
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		input    string
		expected Card
	}{
		{"3D", Card{Rank: Three, Suit: Diamonds}},
		{"3d", Card{Rank: Three, Suit: Diamonds}},
		{"10H", Card{Rank: Ten, Suit: Hearts}},
		{"JS", Card{Rank: Jack, Suit: Spades}},
		{"jc", Card{Rank: Jack, Suit: Clubs}},
		{"QH", Card{Rank: Queen, Suit: Hearts}},
		{"kd", Card{Rank: King, Suit: Diamonds}},
		{"AC", Card{Rank: Ace, Suit: Clubs}},
		{"2S", Card{Rank: Two, Suit: Spades}},
		{"2♠", Card{Rank: Two, Suit: Spades}},
		{"A♥", Card{Rank: Ace, Suit: Hearts}},
		{" 6h ", Card{Rank: Six, Suit: Hearts}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			if err != nil {
				t.Fatalf("ParseCard(%q) error: %v", tt.input, err)
			}
			if card != tt.expected {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, card, tt.expected)
			}
		})
	}
}

func TestParseCardRejectsGarbage(t *testing.T) {
	inputs := []string{"", " ", "5", "D", "XD", "0S", "14C", "5X"}

	for _, input := range inputs {
		if _, err := ParseCard(input); err == nil {
			t.Errorf("ParseCard(%q) should have failed", input)
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{Card{Rank: Three, Suit: Diamonds}, "3♦"},
		{Card{Rank: Ten, Suit: Clubs}, "10♣"},
		{Card{Rank: Queen, Suit: Hearts}, "Q♥"},
		{Card{Rank: Two, Suit: Spades}, "2♠"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestParseRankWords(t *testing.T) {
	tests := []struct {
		input    string
		expected Rank
	}{
		{"deuce", Two},
		{"two", Two},
		{"seven", Seven},
		{"ten", Ten},
		{"jack", Jack},
		{"11", Jack},
		{"queen", Queen},
		{"king", King},
		{"ace", Ace},
		{"1", Ace},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rank, err := ParseRank(tt.input)
			if err != nil {
				t.Fatalf("ParseRank(%q) error: %v", tt.input, err)
			}
			if rank != tt.expected {
				t.Errorf("ParseRank(%q) = %v, want %v", tt.input, rank, tt.expected)
			}
		})
	}

	if _, err := ParseRank("15"); err == nil {
		t.Errorf("ParseRank(15) should have failed")
	}
}

func TestParseSuitForms(t *testing.T) {
	tests := []struct {
		input    string
		expected Suit
	}{
		{"d", Diamonds},
		{"DIAMONDS", Diamonds},
		{"♦", Diamonds},
		{"♢", Diamonds},
		{"c", Clubs},
		{"Clubs", Clubs},
		{"♣", Clubs},
		{"h", Hearts},
		{"hearts", Hearts},
		{"♡", Hearts},
		{"s", Spades},
		{"spades", Spades},
		{"♤", Spades},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			suit, err := ParseSuit(tt.input)
			if err != nil {
				t.Fatalf("ParseSuit(%q) error: %v", tt.input, err)
			}
			if suit != tt.expected {
				t.Errorf("ParseSuit(%q) = %v, want %v", tt.input, suit, tt.expected)
			}
		})
	}

	if _, err := ParseSuit("x"); err == nil {
		t.Errorf("ParseSuit(x) should have failed")
	}
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, want 52", len(deck))
	}

	seen := make(map[Card]bool, len(deck))
	for _, card := range deck {
		if seen[card] {
			t.Fatalf("duplicate card %s in fresh deck", card)
		}
		seen[card] = true
	}
}

func TestCardRoundTrips(t *testing.T) {
	for _, card := range NewDeck() {
		parsed, err := ParseCard(card.String())
		if err != nil {
			t.Fatalf("ParseCard(%q) error: %v", card.String(), err)
		}
		if parsed != card {
			t.Errorf("ParseCard(%q) = %v, want %v", card.String(), parsed, card)
		}
	}
}
