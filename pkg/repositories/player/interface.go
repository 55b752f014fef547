package player

import (
	"context"
	"errors"

	"github.com/luckyseven/casino/pkg/entities"
)

var (
	// ErrPlayerNotFound is returned for lookups of unknown player ids.
	// Balance updates return it too; the original system silently ignored
	// unknown ids there, which hid a real defect.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrNegativeBalance guards balance updates independently of the
	// upstream bet validation
	ErrNegativeBalance = errors.New("balance cannot be negative")
)

// Store defines the interface for ledger state: players and their
// append-only transaction log
type Store interface {
	// SavePlayer creates or replaces a player record
	SavePlayer(ctx context.Context, p *entities.Player) error

	// GetPlayer retrieves a player by id
	GetPlayer(ctx context.Context, id string) (*entities.Player, error)

	// UpdateBalance sets a player's balance to newBalance
	UpdateBalance(ctx context.Context, id string, newBalance int64) error

	// ApplyPlay applies a resolved play as one unit: the new balance is
	// computed inside the store from the current stored balance plus the
	// play's signed amount, then the transaction is appended, in that
	// order. Either both happen or neither. Computing the balance here
	// rather than trusting the caller's read copy keeps concurrent plays
	// for the same player from erasing each other. Returns the resulting
	// balance.
	ApplyPlay(ctx context.Context, id string, amount int64, tx *entities.Transaction) (int64, error)

	// GetTransactions retrieves all transactions for a player in
	// insertion order
	GetTransactions(ctx context.Context, playerID string) ([]*entities.Transaction, error)
}
