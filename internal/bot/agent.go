package bot

import (
	"github.com/Velfi/dai-di/internal/app"
	"github.com/Velfi/dai-di/internal/domain"
)

// Agent represents an autonomous player: a table name attached to a Brain.
type Agent struct {
	name  string
	brain Brain
}

// NewAgent creates an agent that decides its turns with the given brain.
func NewAgent(name string, brain Brain) *Agent {
	return &Agent{name: name, brain: brain}
}

// Name returns the agent's table name.
func (a *Agent) Name() string {
	return a.name
}

// TakeTurn asks the agent's brain for a move. If the brain fails, the agent
// passes and surfaces the error.
func (a *Agent) TakeTurn(sess *app.Session, hand domain.Hand) (Move, error) {
	move, err := a.brain.CalculateMove(sess, hand)
	if err != nil {
		return Move{Pass: true}, err
	}
	return move, nil
}
