package app

import (
	"errors"

	"github.com/Velfi/dai-di/internal/domain"
)

// Players is the number of seats at the table. The deal, the turn rotation,
// and the score table all assume exactly four.
const Players = 4

var (
	ErrMissingOpeningCard = errors.New("the first play must contain the three of diamonds")
	ErrCardsNotHeld       = errors.New("cards are not in the current player's hand")
)

// Session is the authoritative state of one game. The four hands, the discard
// pile, and the undealt deck always partition the 52-card deck; every mutation
// either preserves that or is rejected without touching state.
//
// A Session tracks turns and passes but does not sequence them. Advancing the
// turn counter and resetting the trick between rounds is the orchestrator's
// job, which is why those mutators are exposed as separate primitives.
type Session struct {
	id          string
	discardPile domain.Hand
	lastPlay    domain.Hand
	deck        domain.Hand
	hands       [Players]domain.Hand
	scores      [Players]int
	turnCounter int
	passCounter int
}

// ID is the unique identifier assigned when the session was dealt.
func (s *Session) ID() string {
	return s.id
}

// WhoseTurn is the seat index of the player to act.
func (s *Session) WhoseTurn() int {
	return s.turnCounter % Players
}

// NumberOfPlayers returns the seat count.
func (s *Session) NumberOfPlayers() int {
	return Players
}

// CurrentPlayerHand returns a copy of the acting player's hand.
func (s *Session) CurrentPlayerHand() domain.Hand {
	return s.hands[s.WhoseTurn()].Clone()
}

// Hands returns a copy of every player's hand, by seat.
func (s *Session) Hands() [Players]domain.Hand {
	var hands [Players]domain.Hand
	for i := range s.hands {
		hands[i] = s.hands[i].Clone()
	}
	return hands
}

// LastPlay returns the trick to beat, or false at the start of a round.
func (s *Session) LastPlay() (domain.Hand, bool) {
	if s.lastPlay == nil {
		return nil, false
	}
	return s.lastPlay.Clone(), true
}

// PassCounter is the number of consecutive passes since the last accepted
// play or round reset.
func (s *Session) PassCounter() int {
	return s.passCounter
}

// Pass records that the acting player passed. It does not advance the turn.
func (s *Session) Pass() {
	s.passCounter++
}

// ResetPassCounter clears the pass count when a new round starts.
func (s *Session) ResetPassCounter() {
	s.passCounter = 0
}

// UnsetLastPlay clears the trick when a new round starts.
func (s *Session) UnsetLastPlay() {
	s.lastPlay = nil
}

// IncrementTurnCounter moves play to the next seat.
func (s *Session) IncrementTurnCounter() {
	s.turnCounter++
}

// IsRoundEnded reports whether every player has passed since the last
// accepted play.
func (s *Session) IsRoundEnded() bool {
	return s.passCounter >= Players
}

// IsGameEnded reports whether any player has emptied their hand.
func (s *Session) IsGameEnded() bool {
	for _, hand := range s.hands {
		if len(hand) == 0 {
			return true
		}
	}
	return false
}

// HighestCardStillInPlay returns the highest card remaining across all
// hands, or false if every hand is empty. When a play spends this card no
// other play can beat it, so the round may end on the spot.
func (s *Session) HighestCardStillInPlay() (domain.Card, bool) {
	var highest domain.Card
	found := false
	for _, hand := range s.hands {
		for _, card := range hand {
			if !found || domain.CompareCards(highest, card) < 0 {
				highest = card
				found = true
			}
		}
	}
	return highest, found
}

// IsValidPlay checks cards against the current trick. When a trick is live
// the follow rules decide. When the player is leading, any valid shape
// qualifies, except that the very first play of a game must contain the
// three of diamonds.
func (s *Session) IsValidPlay(cards domain.Hand) error {
	if last, ok := s.LastPlay(); ok {
		return domain.MayFollow(last, cards)
	}

	if err := cards.Validate(); err != nil {
		return err
	}
	if len(s.discardPile) == 0 && !cards.Contains(domain.ThreeOfDiamonds) {
		return ErrMissingOpeningCard
	}
	return nil
}

// PlayCards submits a play for the acting player. On success the cards move
// from the player's hand to the discard pile and become the trick to beat.
// On failure nothing changes: a rejected play never costs the player their
// cards. Playing cards the player does not hold fails with ErrCardsNotHeld.
func (s *Session) PlayCards(cards domain.Hand) error {
	if err := s.IsValidPlay(cards); err != nil {
		return err
	}

	seat := s.WhoseTurn()
	if !s.hands[seat].ContainsAll(cards) {
		return ErrCardsNotHeld
	}

	s.hands[seat] = s.hands[seat].Remove(cards)
	s.lastPlay = cards.Clone()
	s.discardPile = append(s.discardPile, cards...)
	return nil
}

// CurrentHandIncludes reports whether the acting player holds every card in
// cards, counting duplicates.
func (s *Session) CurrentHandIncludes(cards domain.Hand) bool {
	return s.hands[s.WhoseTurn()].ContainsAll(cards)
}

// PossiblePlays enumerates the legal plays available to hand given the
// current trick. An empty result means the player must pass.
func (s *Session) PossiblePlays(hand domain.Hand) []domain.Hand {
	return domain.PossiblePlays(hand, s.lastPlay, len(s.discardPile) == 0)
}
