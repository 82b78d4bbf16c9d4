package bot

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/Velfi/dai-di/internal/app"
	"github.com/Velfi/dai-di/internal/domain"
)

// RandomBrain plays a uniformly random choice among the legal plays, and
// passes when there are none.
type RandomBrain struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// NewRandomBrain creates a RandomBrain. A nil rng falls back to a
// time-seeded source and a nil logger falls back to the default logger.
func NewRandomBrain(rng *rand.Rand, logger *slog.Logger) *RandomBrain {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RandomBrain{rng: rng, logger: logger}
}

func (b *RandomBrain) CalculateMove(sess *app.Session, hand domain.Hand) (Move, error) {
	hand = hand.Clone()
	hand.SortByRank()

	plays := sess.PossiblePlays(hand)
	if len(plays) == 0 {
		b.logger.Info("no possible plays found")
		return Move{Pass: true}, nil
	}

	b.logger.Info("possible plays found", "count", len(plays))
	return Move{Cards: plays[b.rng.Intn(len(plays))]}, nil
}
