package casino

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luckyseven/casino/internal/logging"
	"github.com/luckyseven/casino/internal/types"
	"github.com/luckyseven/casino/pkg/entities"
	"github.com/luckyseven/casino/pkg/games"
	"github.com/luckyseven/casino/pkg/games/roulette"
	"github.com/luckyseven/casino/pkg/games/slots"
	playerRepo "github.com/luckyseven/casino/pkg/repositories/player"
)

// MinInitialBalance is the smallest balance a player may register with.
// Part of the API contract.
const MinInitialBalance int64 = 10

// Service is the ledger: it owns the players, the transaction log and the
// game engines, and runs each play as one validate-resolve-apply-log unit
type Service struct {
	store    playerRepo.Store
	slots    *slots.Machine
	roulette *roulette.Wheel
	logger   *logging.Logger
}

// NewService creates a ledger service over the given store. Both engines
// draw from the same random source.
func NewService(store playerRepo.Store, rng games.RandomSource, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default
	}
	return &Service{
		store:    store,
		slots:    slots.NewMachine(rng),
		roulette: roulette.NewWheel(rng),
		logger:   logger,
	}
}

// RegisterPlayer creates a new player with a fresh id and the given
// starting balance. The name is stored trimmed.
func (s *Service) RegisterPlayer(ctx context.Context, name string, initialBalance int64) (*entities.Player, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, types.NewCasinoError(types.ErrInvalidName, "player name cannot be empty")
	}
	if initialBalance < MinInitialBalance {
		return nil, types.NewCasinoError(types.ErrInvalidInitialBalance,
			fmt.Sprintf("initial balance %d is below the minimum of %d", initialBalance, MinInitialBalance))
	}

	p := &entities.Player{
		ID:      uuid.New().String(),
		Name:    trimmed,
		Balance: initialBalance,
	}

	if err := s.store.SavePlayer(ctx, p); err != nil {
		return nil, types.WrapError(types.ErrInternalError, "failed to save player", err)
	}

	s.logger.Info("Registered player %s (%s) with balance %d", p.Name, p.ID, p.Balance)
	return p, nil
}

// GetPlayer looks up a player by id without mutating any state
func (s *Service) GetPlayer(ctx context.Context, id string) (*entities.Player, error) {
	p, err := s.store.GetPlayer(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(err, id)
	}
	return p, nil
}

// UpdateBalance sets a player's balance directly. Unknown ids are an
// error here too; the original design's silent no-op hid real mistakes.
func (s *Service) UpdateBalance(ctx context.Context, id string, newBalance int64) error {
	if err := s.store.UpdateBalance(ctx, id, newBalance); err != nil {
		return s.mapStoreError(err, id)
	}
	return nil
}

// PlaySlots resolves one slot wager and applies it to the ledger
func (s *Service) PlaySlots(ctx context.Context, playerID string, bet int64) (*entities.GameResult, error) {
	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	result, err := s.slots.Spin(bet, p)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, p, entities.GameSlots, bet, result)
}

// PlayRoulette resolves one roulette wager and applies it to the ledger
func (s *Service) PlayRoulette(ctx context.Context, playerID string, bet int64, betType roulette.BetType, betValue int) (*entities.GameResult, error) {
	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	result, err := s.roulette.Spin(bet, p, betType, betValue)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, p, entities.GameRoulette, bet, result)
}

// PlayParams carries the game-specific wager inputs for Play
type PlayParams struct {
	BetType  roulette.BetType
	BetValue int
}

// Play dispatches a wager to the engine matching the game type
func (s *Service) Play(ctx context.Context, game entities.GameType, playerID string, bet int64, params PlayParams) (*entities.GameResult, error) {
	switch game {
	case entities.GameSlots:
		return s.PlaySlots(ctx, playerID, bet)
	case entities.GameRoulette:
		return s.PlayRoulette(ctx, playerID, bet, params.BetType, params.BetValue)
	default:
		return nil, types.NewCasinoError(types.ErrUnknownGame, fmt.Sprintf("no engine for game %q", game))
	}
}

// GetHistory retrieves all of a player's transactions in insertion order.
// A player with no plays gets an empty slice.
func (s *Service) GetHistory(ctx context.Context, playerID string) ([]*entities.Transaction, error) {
	if _, err := s.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	transactions, err := s.store.GetTransactions(ctx, playerID)
	if err != nil {
		return nil, types.WrapError(types.ErrInternalError, "failed to load transactions", err)
	}
	return transactions, nil
}

// apply writes a resolved play back to the ledger: balance first, then the
// log entry, as one unit. The store applies the signed amount against the
// balance it holds at that moment; the engine's NewBalance came from a read
// copy and is replaced with the authoritative value, so concurrent plays
// for the same player serialize instead of overwriting each other.
func (s *Service) apply(ctx context.Context, p *entities.Player, game entities.GameType, bet int64, result *entities.GameResult) (*entities.GameResult, error) {
	tx := &entities.Transaction{
		ID:        uuid.New().String(),
		PlayerID:  p.ID,
		Game:      game,
		Bet:       bet,
		Result:    *result,
		Timestamp: time.Now(),
	}

	newBalance, err := s.store.ApplyPlay(ctx, p.ID, result.Amount, tx)
	if err != nil {
		return nil, s.mapStoreError(err, p.ID)
	}
	result.NewBalance = newBalance

	s.logger.Info("Player %s played %s: bet=%d won=%v amount=%d balance=%d",
		p.ID, game, bet, result.Won, result.Amount, result.NewBalance)
	return result, nil
}

// mapStoreError translates store sentinels into the caller-facing taxonomy
func (s *Service) mapStoreError(err error, playerID string) error {
	switch {
	case errors.Is(err, playerRepo.ErrPlayerNotFound):
		return types.NewCasinoError(types.ErrPlayerNotFound, fmt.Sprintf("no player with id %q", playerID))
	case errors.Is(err, playerRepo.ErrNegativeBalance):
		return types.NewCasinoError(types.ErrNegativeBalance, "balance cannot go negative")
	default:
		return types.WrapError(types.ErrInternalError, "store operation failed", err)
	}
}
