package entities

// Player represents a registered casino patron
type Player struct {
	ID      string `json:"id"`      // Unique identifier assigned at registration
	Name    string `json:"name"`    // Display name, stored trimmed
	Balance int64  `json:"balance"` // Current balance in whole currency units
}
