package action

// Action is the effect an action card leaves for the turn that follows it.
type Action int

const (
	None Action = iota
	Skip
	DrawTwo
	DrawFour
	Reverse
)

// Amount is the number of cards the affected player draws.
func (a Action) Amount() int {
	switch a {
	case DrawTwo:
		return 2
	case DrawFour:
		return 4
	default:
		return 0
	}
}

func (a Action) String() string {
	switch a {
	case None:
		return "None"
	case Skip:
		return "Skip"
	case DrawTwo:
		return "+2"
	case DrawFour:
		return "+4"
	case Reverse:
		return "Reverse"
	default:
		return "Unknown"
	}
}
