package player

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/consts"
	"github.com/madans2984/uno/game"
	"github.com/madans2984/uno/ui"
)

const (
	Naive = "naive"
	Good  = "good"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

type factoryOptions struct {
	strategy string
	prompter *ui.Prompter
	view     *ui.View
}

type Option func(*factoryOptions)

// WithStrategy picks the bots: Naive or Good.
func WithStrategy(strategy string) Option {
	return func(o *factoryOptions) {
		o.strategy = strategy
	}
}

// WithTerminal sets where the human player reads answers and sees the table.
func WithTerminal(prompter *ui.Prompter, view *ui.View) Option {
	return func(o *factoryOptions) {
		o.prompter = prompter
		o.view = view
	}
}

// PromptPlayerCount asks the human how many players sit at the table, bots included.
func PromptPlayerCount(prompter *ui.Prompter) (int, error) {
	return prompter.PromptIntegerInRange(2, consts.MaxPlayers,
		fmt.Sprintf("How many players (2-%d)?\n", consts.MaxPlayers))
}

// CreatePlayers seats the human player first, followed by bots named from a shuffle
// driven by seed. An empty humanPlayerName seats only bots.
func CreatePlayers(numberOfPlayers int, humanPlayerName string, seed int64, opts ...Option) ([]game.Player, error) {
	o := factoryOptions{strategy: Naive}
	for _, opt := range opts {
		opt(&o)
	}
	if o.strategy != Naive && o.strategy != Good {
		return nil, fmt.Errorf("unknown bot strategy '%s'", o.strategy)
	}
	if numberOfPlayers < 2 || numberOfPlayers > len(botNames) {
		return nil, fmt.Errorf("cannot seat %d players", numberOfPlayers)
	}

	players := make([]game.Player, 0, numberOfPlayers)
	if humanPlayerName != "" {
		if o.prompter == nil {
			o.prompter = ui.NewPrompter(os.Stdin, ui.NewPrinter(color.Stdout, 0))
		}
		players = append(players, NewHumanPlayer(humanPlayerName, o.prompter, o.view))
	}
	players = append(players, generateBots(numberOfPlayers-len(players), seed, o.strategy)...)
	return players, nil
}

func generateBots(amount int, seed int64, strategy string) []game.Player {
	names := make([]string, len(botNames))
	copy(names, botNames)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })

	bots := make([]game.Player, 0, amount)
	for i, botName := range names[:amount] {
		if strategy == Good {
			bots = append(bots, NewGoodPlayer(botName))
		} else {
			bots = append(bots, NewNaivePlayer(botName, seed+int64(i)))
		}
	}
	return bots
}
