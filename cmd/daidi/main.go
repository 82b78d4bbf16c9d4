package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/Velfi/dai-di/internal/app"
	"github.com/Velfi/dai-di/internal/bot"
	"github.com/Velfi/dai-di/internal/config"
	"github.com/Velfi/dai-di/internal/ports/terminal"
)

func main() {
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	slog.SetDefault(logger)

	if err := config.Load(); err != nil {
		pterm.Error.Printfln("loading configuration: %v", err)
		os.Exit(1)
	}
	cfg := config.Get()

	seed := time.Now().UnixNano()
	if cfg.SeedSet {
		seed = cfg.Seed
		logger.Info("using fixed seed", "seed", seed)
	}
	// One process-wide source drives the shuffle, the bot names, and the
	// bots' choices, so a fixed seed replays the whole game.
	rng := rand.New(rand.NewSource(seed))

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Dai ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Di", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	svc := app.NewService(rng)

	names := bot.NewNamePool(rng)
	players := make([]terminal.Player, 0, app.Players)
	players = append(players, terminal.NewHumanPlayer(cfg.PlayerName))
	for len(players) < app.Players {
		name := names.Next()
		brain := bot.NewRandomBrain(rng, logger.With("player", name))
		players = append(players, bot.NewAgent(name, brain))
	}

	o := terminal.NewOrchestrator(svc, players, logger)
	if err := o.Run(); err != nil {
		pterm.Error.Printfln("game aborted: %v", err)
		os.Exit(1)
	}
}
