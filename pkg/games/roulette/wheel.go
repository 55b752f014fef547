package roulette

import (
	"fmt"

	"github.com/luckyseven/casino/internal/types"
	"github.com/luckyseven/casino/pkg/entities"
	"github.com/luckyseven/casino/pkg/games"
)

// BetType represents the kind of roulette wager
type BetType string

const (
	BetRed    BetType = "red"
	BetBlack  BetType = "black"
	BetNumber BetType = "number"
)

// pockets is the number of wheel positions, 0 through 36
const pockets = 37

// Payout multipliers. Even-money bets pay 2x the stake, a straight-up
// number bet pays 35x.
const (
	evenMoneyMultiplier  int64 = 2
	straightUpMultiplier int64 = 35
)

// redNumbers is the standard single-zero wheel red set. 0 is neither red
// nor black; every other number is black.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// IsRed reports whether a pocket is red
func IsRed(number int) bool {
	return redNumbers[number]
}

// IsBlack reports whether a pocket is black
func IsBlack(number int) bool {
	return number != 0 && !redNumbers[number]
}

// Wheel resolves roulette wagers against an injected random source
type Wheel struct {
	rng games.RandomSource
}

// NewWheel creates a roulette wheel drawing from the given source
func NewWheel(rng games.RandomSource) *Wheel {
	return &Wheel{rng: rng}
}

// Spin resolves one roulette wager. Validation mirrors the slot machine,
// with the extra constraint that number bets name a pocket in [0, 36].
// The player is not mutated; the ledger applies the returned result.
func (w *Wheel) Spin(bet int64, player *entities.Player, betType BetType, betValue int) (*entities.GameResult, error) {
	if err := games.ValidateBet(bet, player.Balance); err != nil {
		return nil, err
	}

	switch betType {
	case BetRed, BetBlack:
	case BetNumber:
		if betValue < 0 || betValue >= pockets {
			return nil, types.NewCasinoError(types.ErrInvalidNumberBet,
				fmt.Sprintf("number bet must name a pocket between 0 and 36, got %d", betValue))
		}
	default:
		return nil, types.NewCasinoError(types.ErrInvalidBet, fmt.Sprintf("unknown bet type %q", betType))
	}

	number := w.rng.Intn(pockets)

	// Resolution order matters: a drawn zero beats the colour bets, so red
	// and black always lose on 0.
	won := false
	var multiplier int64
	switch {
	case number == 0:
		won = betType == BetNumber && betValue == 0
		multiplier = straightUpMultiplier
	case betType == BetRed:
		won = IsRed(number)
		multiplier = evenMoneyMultiplier
	case betType == BetBlack:
		won = IsBlack(number)
		multiplier = evenMoneyMultiplier
	case betType == BetNumber:
		won = number == betValue
		multiplier = straightUpMultiplier
	}
	if !won {
		multiplier = 0
	}

	amount := bet*multiplier - bet
	return &entities.GameResult{
		Won:        won,
		Amount:     amount,
		NewBalance: player.Balance + amount,
		Details:    entities.RouletteDetails{Number: number},
	}, nil
}
