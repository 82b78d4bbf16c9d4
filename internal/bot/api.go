package bot

import (
	"github.com/Velfi/dai-di/internal/app"
	"github.com/Velfi/dai-di/internal/domain"
)

// Move represents the decision a player hands back to the orchestrator.
type Move struct {
	Pass  bool
	Cards domain.Hand
}

// Brain is the interface that all bot strategies must implement. The hand is
// the cards the strategy may play from; the session is a read-only view used
// to discover what the table will accept.
type Brain interface {
	CalculateMove(sess *app.Session, hand domain.Hand) (Move, error)
}
