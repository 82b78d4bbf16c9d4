package terminal

import (
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/Velfi/dai-di/internal/app"
)

type gameState int

const (
	stateStartNewGame gameState = iota
	statePlay
	statePostGame
	stateEnd
)

// Orchestrator drives one game from deal to scoreboard. It owns the flow
// between four states: start a new game, play turns, settle scores, end.
// All rule decisions stay inside the session; the orchestrator sequences
// turns and narrates them.
type Orchestrator struct {
	service *app.Service
	logger  *slog.Logger
	state   gameState
	session *app.Session
	players []Player
}

// NewOrchestrator creates an orchestrator over the given players, seated in
// order. A nil logger falls back to the default logger.
func NewOrchestrator(service *app.Service, players []Player, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		service: service,
		logger:  logger,
		state:   stateStartNewGame,
		players: players,
	}
}

// Run ticks the state machine until the game ends. The returned error is
// fatal to the game; rule violations never surface here, they are narrated
// and retried inside the play state.
func (o *Orchestrator) Run() error {
	for o.state != stateEnd {
		if err := o.tick(); err != nil {
			return err
		}
	}
	o.logger.Info("Thank you for playing!")
	return nil
}

func (o *Orchestrator) tick() error {
	switch o.state {
	case stateStartNewGame:
		return o.startNewGame()
	case statePlay:
		return o.playTurn()
	case statePostGame:
		o.postGame()
	}
	return nil
}

func (o *Orchestrator) startNewGame() error {
	pterm.Println("Starting a new four-player game")

	sess := o.service.NewSession()
	if len(o.players) != sess.NumberOfPlayers() {
		return fmt.Errorf("a session seats %d players, got %d", sess.NumberOfPlayers(), len(o.players))
	}
	o.session = sess

	pterm.Println(`Good luck Player! Enter "help" if you need some guidance.`)
	pterm.Println("The player with the 3♦ will go first.")
	o.logger.Info("session dealt",
		"session", sess.ID(),
		"first_player", o.players[sess.WhoseTurn()].Name(),
	)

	o.state = statePlay
	return nil
}

// playTurn resolves a single player's turn. The player is re-prompted until
// they produce a pass or an accepted play, so one call always advances the
// game by exactly one turn.
func (o *Orchestrator) playTurn() error {
	pterm.Println()

	if o.session.IsGameEnded() {
		o.state = statePostGame
		return nil
	}

	player := o.players[o.session.WhoseTurn()]

	// Snapshot the highest card before the play removes it from its hand,
	// so a play spending it can be recognized as round-ending.
	highestInPlay, haveHighest := o.session.HighestCardStillInPlay()

	highestCardWasPlayed := false
	for {
		move, err := player.TakeTurn(o.session, o.session.CurrentPlayerHand())
		if err != nil {
			return fmt.Errorf("%s's turn: %w", player.Name(), err)
		}

		if move.Pass {
			pterm.Printfln("%s will pass", player.Name())
			o.session.Pass()

			// Once every opponent has passed on the leader's play, the
			// trick resets and a new round begins.
			if o.session.PassCounter() == o.session.NumberOfPlayers()-1 {
				o.session.ResetPassCounter()
				o.session.UnsetLastPlay()
			}
			break
		}

		if !o.session.CurrentHandIncludes(move.Cards) {
			pterm.Printfln("%s doesn't have %s in their hand so the play is invalid",
				player.Name(), RenderHand(move.Cards))
			continue
		}

		if err := o.session.PlayCards(move.Cards); err != nil {
			pterm.Printfln("can't play '%s': %v", RenderHand(move.Cards), err)
			continue
		}

		if haveHighest && move.Cards.Contains(highestInPlay) {
			highestCardWasPlayed = true
		}
		o.session.ResetPassCounter()

		if highestCardWasPlayed {
			pterm.Printfln("%s plays %s, ending the round.", player.Name(), RenderHand(move.Cards))
		} else {
			pterm.Printfln("%s plays %s", player.Name(), RenderHand(move.Cards))
		}
		break
	}

	// Playing the highest card left in the game wins the round outright:
	// the trick resets and the same player leads the next round.
	if highestCardWasPlayed {
		o.session.ResetPassCounter()
		o.session.UnsetLastPlay()
	} else {
		o.session.IncrementTurnCounter()
	}

	return nil
}

func (o *Orchestrator) postGame() {
	scores := o.session.FinalizeScores()

	longest := 0
	for _, player := range o.players {
		if len(player.Name()) > longest {
			longest = len(player.Name())
		}
	}

	pterm.Println("Game over. Let's see the scores:")
	pterm.Println()
	for i, player := range o.players {
		pterm.Printfln("\t%-*s:\t%+d", longest, player.Name(), scores[i])
	}
	pterm.Println()

	for i, hand := range o.session.Hands() {
		if len(hand) == 0 {
			pterm.Printfln("Congratulations %s!", o.players[i].Name())
			break
		}
	}

	o.state = stateEnd
}
