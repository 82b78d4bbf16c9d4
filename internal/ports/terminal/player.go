package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Velfi/dai-di/internal/app"
	"github.com/Velfi/dai-di/internal/bot"
	"github.com/Velfi/dai-di/internal/domain"
)

// Player is one seat's decision maker, human or automated. Implementations
// must play cards drawn from the hand they are given.
type Player interface {
	Name() string
	TakeTurn(sess *app.Session, hand domain.Hand) (bot.Move, error)
}

type humanAction int

const (
	actionPlay humanAction = iota
	actionPass
	actionQuit
	actionHelp
	actionToggleSort
)

// interpretInput maps one line of input to a command. Anything that is not a
// recognized command is treated as an attempted play. The input must already
// be trimmed of surrounding whitespace.
func interpretInput(input string) (humanAction, domain.Hand, error) {
	switch input {
	case "p", "pass":
		return actionPass, nil, nil
	case "q", "quit":
		return actionQuit, nil, nil
	case "", "help":
		return actionHelp, nil, nil
	case "sort":
		return actionToggleSort, nil, nil
	}

	cards, err := domain.ParseHand(input)
	if err != nil {
		return actionPlay, nil, err
	}
	return actionPlay, cards, nil
}

// HumanPlayer reads turns from the terminal. Between plays it supports a few
// commands: pass, quit, help, and toggling the hand sort order.
type HumanPlayer struct {
	name   string
	sortBy domain.SortOrder
}

// NewHumanPlayer creates a terminal-driven player. Hands start out sorted by
// rank.
func NewHumanPlayer(name string) *HumanPlayer {
	return &HumanPlayer{name: name, sortBy: domain.ByRank}
}

// Name returns the player's display name.
func (p *HumanPlayer) Name() string {
	return p.name
}

// TakeTurn shows the player their hand and the trick to beat, then prompts
// until the input resolves to a play or a pass. Quitting exits the process
// on the spot.
func (p *HumanPlayer) TakeTurn(sess *app.Session, hand domain.Hand) (bot.Move, error) {
	for {
		switch p.sortBy {
		case domain.BySuit:
			hand.SortBySuit()
		default:
			hand.SortByRank()
		}

		pterm.Println()
		if last, ok := sess.LastPlay(); ok {
			pterm.Println("Last play: " + RenderHand(last))
		}
		pterm.Println(p.name + "'s hand: " + handLine(hand))

		input, err := pterm.DefaultInteractiveTextInput.Show("Your play")
		if err != nil {
			return bot.Move{}, fmt.Errorf("reading play input: %w", err)
		}

		action, cards, parseErr := interpretInput(strings.TrimSpace(input))
		switch action {
		case actionPass:
			return bot.Move{Pass: true}, nil
		case actionQuit:
			pterm.Println("Quitting immediately. Thanks for playing.")
			os.Exit(0)
		case actionHelp:
			printUsage()
		case actionToggleSort:
			p.toggleSortOrder()
			pterm.Printfln("hand rearranged by %s", p.sortBy)
		case actionPlay:
			if parseErr != nil {
				pterm.Printfln("invalid input: %v", parseErr)
				continue
			}
			return bot.Move{Cards: cards}, nil
		}
	}
}

func (p *HumanPlayer) toggleSortOrder() {
	if p.sortBy == domain.ByRank {
		p.sortBy = domain.BySuit
	} else {
		p.sortBy = domain.ByRank
	}
}

// handLine renders a hand the way the prompt shows it, every card followed
// by a separator.
func handLine(hand domain.Hand) string {
	var b strings.Builder
	for _, card := range hand {
		b.WriteString(RenderCard(card))
		b.WriteString(", ")
	}
	return b.String()
}

func printUsage() {
	pterm.Println("Enter the space-separated list of the cards you want to play")
	pterm.Println("For example: '2c 3h 4d 5s 6s' or '2C 2D 2H' or 'jc'")
	pterm.Println("You may pass your turn: enter 'p' or 'pass'")
	pterm.Println("You may quit the game: enter 'q' or 'quit'")
	pterm.Println("You may toggle between sorting by rank and sorting by suit: enter 'sort'")
}
