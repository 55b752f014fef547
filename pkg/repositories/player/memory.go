package player

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luckyseven/casino/pkg/entities"
)

// MemoryStore implements Store using in-memory storage. State lives for
// the process lifetime only.
type MemoryStore struct {
	players      map[string]*entities.Player
	transactions map[string][]*entities.Transaction
	mu           sync.RWMutex
}

// NewMemoryStore creates a new in-memory player store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players:      make(map[string]*entities.Player),
		transactions: make(map[string][]*entities.Transaction),
	}
}

// SavePlayer creates or replaces a player record
func (s *MemoryStore) SavePlayer(ctx context.Context, p *entities.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy to prevent concurrent modification
	playerCopy := *p
	s.players[p.ID] = &playerCopy

	return nil
}

// GetPlayer retrieves a player by id
func (s *MemoryStore) GetPlayer(ctx context.Context, id string) (*entities.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.players[id]
	if !exists {
		return nil, ErrPlayerNotFound
	}

	// Return a copy to prevent concurrent modification
	playerCopy := *p
	return &playerCopy, nil
}

// UpdateBalance sets a player's balance to newBalance
func (s *MemoryStore) UpdateBalance(ctx context.Context, id string, newBalance int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setBalanceLocked(id, newBalance)
}

// ApplyPlay updates the player's balance and appends the transaction under
// a single critical section, so a play can never be half-applied. The new
// balance is derived from the stored balance, not the caller's read copy,
// so two plays resolved against the same stale snapshot still both land.
func (s *MemoryStore) ApplyPlay(ctx context.Context, id string, amount int64, tx *entities.Transaction) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.players[id]
	if !exists {
		return 0, ErrPlayerNotFound
	}

	newBalance := p.Balance + amount
	if newBalance < 0 {
		return 0, ErrNegativeBalance
	}
	p.Balance = newBalance

	txCopy := *tx
	if txCopy.ID == "" {
		txCopy.ID = uuid.New().String()
	}
	if txCopy.Timestamp.IsZero() {
		txCopy.Timestamp = time.Now()
	}
	// The logged balance reflects the ledger at apply time
	txCopy.Result.NewBalance = newBalance
	s.transactions[id] = append(s.transactions[id], &txCopy)

	return newBalance, nil
}

// GetTransactions retrieves all transactions for a player in insertion order
func (s *MemoryStore) GetTransactions(ctx context.Context, playerID string) ([]*entities.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transactions := s.transactions[playerID]

	// Copy out so callers can't touch the log
	result := make([]*entities.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		txCopy := *tx
		result = append(result, &txCopy)
	}

	return result, nil
}

// setBalanceLocked enforces the non-negative balance guard. Callers must
// hold the write lock.
func (s *MemoryStore) setBalanceLocked(id string, newBalance int64) error {
	if newBalance < 0 {
		return ErrNegativeBalance
	}

	p, exists := s.players[id]
	if !exists {
		return ErrPlayerNotFound
	}

	p.Balance = newBalance
	return nil
}
