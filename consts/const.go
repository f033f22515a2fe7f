package consts

import "time"

const (
	// Players is the number of seats in the reference game.
	Players    = 4
	MaxPlayers = 10
	HandSize   = 7

	// RecycleThreshold is the draw pile size below which the discard pile is reused
	// before any draw.
	RecycleThreshold = 5

	// WildCount is the number of plain wild and of wild draw four cards in the deck.
	WildCount = 6

	// MaxBotAttempts bounds how often an automated player may return an unusable
	// selection before the engine plays its first legal card instead.
	MaxBotAttempts = 3

	BotDelay = 1 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsEmptyPile         = NewErr(1, true, "Pile is empty. ")
	ErrorsInsufficientCards = NewErr(2, true, "Not enough cards in pile. ")
	ErrorsCardsLost         = NewErr(3, true, "Card accounting broken. ")
	ErrorsIllegalMove       = NewErr(4, false, "Illegal move. ")
	ErrorsInvalidSelection  = NewErr(5, false, "Invalid selection. ")
	ErrorsInputClosed       = NewErr(6, true, "Input closed. ")
)
