package consts

const (
	MinPlayers       = 2
	MaxPlayers       = 10
	StartingHandSize = 7

	// DeckSize is the full card set: per color one 0, two each of 1-9,
	// two Skip, two Draw, two Reverse; plus four Wild and four WildDraw.
	DeckSize = 108
)
