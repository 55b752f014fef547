package entities

import (
	"time"
)

// Transaction represents a single immutable audit record of one play.
// Entries are append-only; they are never mutated or removed once logged.
type Transaction struct {
	ID        string     `json:"id"`        // Unique identifier
	PlayerID  string     `json:"player_id"` // Player associated with the play
	Game      GameType   `json:"game"`      // Which engine resolved the play
	Bet       int64      `json:"bet"`       // Amount wagered
	Result    GameResult `json:"result"`    // Full outcome of the play
	Timestamp time.Time  `json:"timestamp"` // When the play was applied
}
