package main

import (
	"fmt"
	"os"
	"time"

	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/config"
	"github.com/madans2984/uno/event"
	"github.com/madans2984/uno/game"
	"github.com/madans2984/uno/player"
	"github.com/madans2984/uno/ui"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	color.SetEnabled(cfg.Color)

	seed := cfg.Seed
	if !cfg.Seeded {
		seed = time.Now().UnixNano()
	}

	printer := ui.NewPrinter(color.Stdout, 0)
	bus := event.NewBus()
	view := ui.NewView(printer, cfg.PlayerName).Attach(bus)
	prompter := ui.NewPrompter(os.Stdin, printer)
	if cfg.PlayerName != "" && !cfg.PlayersSet {
		if cfg.Players, err = player.PromptPlayerCount(prompter); err != nil {
			return err
		}
	}
	players, err := player.CreatePlayers(cfg.Players, cfg.PlayerName, seed,
		player.WithStrategy(cfg.Bot),
		player.WithTerminal(prompter, view),
	)
	if err != nil {
		return err
	}

	opts := []game.Option{
		game.WithBus(bus),
		game.WithSeed(seed),
		game.WithDelay(cfg.BotDelay),
		game.WithDeckOptions(game.WithWildCount(cfg.Wilds)),
	}
	if cfg.Audit {
		opts = append(opts, game.WithAudit())
	}

	view.Welcome()
	g, err := game.New(players, opts...)
	if err != nil {
		return err
	}
	_, err = g.Run()
	return err
}
