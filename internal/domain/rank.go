package domain

import (
	"fmt"
	"strings"
)

// Rank is one of the thirteen card ranks. Ranks carry no ordering of their
// own; which rank beats which is game precedence and lives in compare.go.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return "?"
}

// ParseRank reads a rank token. Numeric forms ("2" through "10", plus "1",
// "11", "12", "13"), single letters ("j", "q", "k", "a"), and full words
// ("three", "deuce", "king") are all accepted, case-insensitively.
func ParseRank(s string) (Rank, error) {
	switch strings.ToLower(s) {
	case "2", "two", "deuce":
		return Two, nil
	case "3", "three":
		return Three, nil
	case "4", "four":
		return Four, nil
	case "5", "five":
		return Five, nil
	case "6", "six":
		return Six, nil
	case "7", "seven":
		return Seven, nil
	case "8", "eight":
		return Eight, nil
	case "9", "nine":
		return Nine, nil
	case "10", "ten":
		return Ten, nil
	case "11", "j", "jack":
		return Jack, nil
	case "12", "q", "queen":
		return Queen, nil
	case "13", "k", "king":
		return King, nil
	case "1", "a", "ace":
		return Ace, nil
	}
	return 0, fmt.Errorf("`%s` is not a rank", s)
}
