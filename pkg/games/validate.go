package games

import (
	"fmt"

	"github.com/luckyseven/casino/internal/types"
)

// Table limits shared by every game. Part of the API contract.
const (
	MinBet int64 = 1
	MaxBet int64 = 1_000_000
)

// ValidateBet checks a wager against the table limits and the player's
// current balance. Checks run in a fixed order: sign, table limits, funds.
func ValidateBet(bet, balance int64) error {
	if bet <= 0 {
		return types.NewCasinoError(types.ErrInvalidBet, "bet must be a positive amount")
	}
	if bet < MinBet {
		return types.NewCasinoError(types.ErrBetTooLow, fmt.Sprintf("bet %d is below the table minimum of %d", bet, MinBet))
	}
	if bet > MaxBet {
		return types.NewCasinoError(types.ErrBetTooHigh, fmt.Sprintf("bet %d exceeds the table maximum of %d", bet, MaxBet))
	}
	if bet > balance {
		return types.NewCasinoError(types.ErrInsufficientFunds, fmt.Sprintf("bet %d exceeds balance %d", bet, balance))
	}
	return nil
}
