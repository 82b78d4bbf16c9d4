// Package app owns game sessions: dealing them, mutating them turn by turn,
// and settling their scores. The rules themselves live in the domain package;
// this layer strings them together into a playable game.
package app

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Velfi/dai-di/internal/domain"
)

// Service deals new game sessions. The injected rng drives the shuffle,
// which makes deals reproducible under a fixed seed.
type Service struct {
	rng *rand.Rand
}

// NewService creates a Service. Passing a nil rng falls back to a
// time-seeded source.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// NewSession shuffles a fresh deck and deals it out evenly. With four
// players each seat receives thirteen cards and nothing is left over; any
// remainder would stay in the session's deck. The seat dealt the three of
// diamonds acts first.
func (s *Service) NewSession() *Session {
	deck := domain.NewDeck()
	s.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	sess := &Session{id: uuid.NewString()}

	perHand := len(deck) / Players
	dealt := 0
	for i := range sess.hands {
		sess.hands[i] = append(domain.Hand{}, deck[dealt:dealt+perHand]...)
		dealt += perHand
	}
	sess.deck = append(domain.Hand{}, deck[dealt:]...)

	for i, hand := range sess.hands {
		if hand.Contains(domain.ThreeOfDiamonds) {
			sess.turnCounter = i
			break
		}
	}

	return sess
}
