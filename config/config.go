// Package config reads the settings of a game from the environment. An optional .env
// file is loaded first; variables already set in the environment take precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/madans2984/uno/consts"
	"github.com/spf13/cast"
)

const (
	EnvPlayerName = "UNO_PLAYER_NAME"
	EnvPlayers    = "UNO_PLAYERS"
	EnvBotDelay   = "UNO_BOT_DELAY"
	EnvSeed       = "UNO_SEED"
	EnvAudit      = "UNO_AUDIT"
	EnvWilds      = "UNO_WILDS"
	EnvBot        = "UNO_BOT"
	EnvColor      = "UNO_COLOR"
)

type Config struct {
	// PlayerName is the human player's name. Empty seats bots only.
	PlayerName string
	Players    int
	// PlayersSet is false when the number of players was left to the human to choose.
	PlayersSet bool
	BotDelay   time.Duration
	Seed       int64
	// Seeded is false when no seed was configured and every game is different.
	Seeded bool
	Audit  bool
	Wilds  int
	Bot    string
	Color  bool
}

func Default() Config {
	return Config{
		PlayerName: "Player",
		Players:    consts.Players,
		BotDelay:   consts.BotDelay,
		Wilds:      consts.WildCount,
		Bot:        "naive",
		Color:      true,
	}
}

// Load reads the environment after loading filenames, ".env" when none are given. Missing
// files are ignored.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Default()
	if name, ok := os.LookupEnv(EnvPlayerName); ok {
		cfg.PlayerName = strings.TrimSpace(name)
	}
	if err := lookup(EnvPlayers, func(value string) (err error) {
		cfg.Players, err = cast.ToIntE(value)
		cfg.PlayersSet = err == nil
		return
	}); err != nil {
		return Config{}, err
	}
	if err := lookup(EnvBotDelay, func(value string) (err error) {
		cfg.BotDelay, err = cast.ToDurationE(value)
		return
	}); err != nil {
		return Config{}, err
	}
	if err := lookup(EnvSeed, func(value string) (err error) {
		cfg.Seed, err = cast.ToInt64E(value)
		cfg.Seeded = err == nil
		return
	}); err != nil {
		return Config{}, err
	}
	if err := lookup(EnvAudit, func(value string) (err error) {
		cfg.Audit, err = cast.ToBoolE(value)
		return
	}); err != nil {
		return Config{}, err
	}
	if err := lookup(EnvWilds, func(value string) (err error) {
		cfg.Wilds, err = cast.ToIntE(value)
		return
	}); err != nil {
		return Config{}, err
	}
	if err := lookup(EnvColor, func(value string) (err error) {
		cfg.Color, err = cast.ToBoolE(value)
		return
	}); err != nil {
		return Config{}, err
	}
	if bot, ok := os.LookupEnv(EnvBot); ok {
		cfg.Bot = strings.ToLower(strings.TrimSpace(bot))
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Players < 2 || c.Players > consts.MaxPlayers:
		return fmt.Errorf("%s must be between 2 and %d, got %d", EnvPlayers, consts.MaxPlayers, c.Players)
	case c.BotDelay < 0:
		return fmt.Errorf("%s must not be negative, got %s", EnvBotDelay, c.BotDelay)
	case c.Wilds < 0:
		return fmt.Errorf("%s must not be negative, got %d", EnvWilds, c.Wilds)
	case c.Bot != "naive" && c.Bot != "good":
		return fmt.Errorf("%s must be naive or good, got '%s'", EnvBot, c.Bot)
	}
	return nil
}

func lookup(key string, convert func(value string) error) error {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	if err := convert(strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("invalid %s '%s': %w", key, value, err)
	}
	return nil
}
