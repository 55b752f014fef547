package entities

// GameType identifies which engine resolved a play
type GameType string

const (
	GameSlots    GameType = "slots"
	GameRoulette GameType = "roulette"
)

// GameDetails defines what game-specific result details must provide
type GameDetails interface {
	// Game returns the type of game that produced the details
	Game() GameType
}

// GameResult represents the outcome of a single resolved play
type GameResult struct {
	Won        bool        `json:"won"`
	Amount     int64       `json:"amount"`      // Signed net change to the balance (negative bet on a loss)
	NewBalance int64       `json:"new_balance"` // Balance after the play is applied
	Details    GameDetails `json:"details,omitempty"`
}

// SlotDetails carries the three reel symbols drawn for a slot play
type SlotDetails struct {
	Symbols [3]string `json:"symbols"`
}

// Game returns the type of game that produced the details
func (d SlotDetails) Game() GameType { return GameSlots }

// RouletteDetails carries the winning pocket for a roulette play
type RouletteDetails struct {
	Number int `json:"number"`
}

// Game returns the type of game that produced the details
func (d RouletteDetails) Game() GameType { return GameRoulette }
