package roulette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/luckyseven/casino/internal/types"
	"github.com/luckyseven/casino/pkg/entities"
	"github.com/luckyseven/casino/pkg/games/mock_games"
)

// fixedSource always draws the same pocket
type fixedSource struct {
	number int
}

func (s fixedSource) Intn(n int) int { return s.number % n }

func newPlayer(balance int64) *entities.Player {
	return &entities.Player{ID: "p1", Name: "Test", Balance: balance}
}

func TestSpinZeroBeatsColourBets(t *testing.T) {
	// A drawn 0 loses for red and black and only pays a number bet on 0.
	wheel := NewWheel(fixedSource{number: 0})

	testCases := []struct {
		name     string
		betType  BetType
		betValue int
		won      bool
		amount   int64
	}{
		{name: "red loses on zero", betType: BetRed, won: false, amount: -10},
		{name: "black loses on zero", betType: BetBlack, won: false, amount: -10},
		{name: "number bet on zero wins 35x", betType: BetNumber, betValue: 0, won: true, amount: 340},
		{name: "number bet elsewhere loses", betType: BetNumber, betValue: 17, won: false, amount: -10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := wheel.Spin(10, newPlayer(1000), tc.betType, tc.betValue)
			require.NoError(t, err)

			assert.Equal(t, tc.won, result.Won)
			assert.Equal(t, tc.amount, result.Amount)
			assert.Equal(t, int64(1000)+tc.amount, result.NewBalance)

			details, ok := result.Details.(entities.RouletteDetails)
			require.True(t, ok, "roulette results should carry RouletteDetails")
			assert.Equal(t, 0, details.Number)
		})
	}
}

func TestSpinColourBets(t *testing.T) {
	testCases := []struct {
		name    string
		number  int
		betType BetType
		won     bool
	}{
		{name: "red bet on red pocket", number: 32, betType: BetRed, won: true},
		{name: "red bet on black pocket", number: 15, betType: BetRed, won: false},
		{name: "black bet on black pocket", number: 15, betType: BetBlack, won: true},
		{name: "black bet on red pocket", number: 32, betType: BetBlack, won: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wheel := NewWheel(fixedSource{number: tc.number})

			result, err := wheel.Spin(10, newPlayer(100), tc.betType, 0)
			require.NoError(t, err)

			assert.Equal(t, tc.won, result.Won)
			if tc.won {
				assert.Equal(t, int64(10), result.Amount, "even-money bets pay 2x")
			} else {
				assert.Equal(t, int64(-10), result.Amount)
			}
		})
	}
}

func TestSpinStraightUpBet(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mock_games.NewMockRandomSource(ctrl)
	rng.EXPECT().Intn(37).Return(17)

	wheel := NewWheel(rng)

	result, err := wheel.Spin(20, newPlayer(1000), BetNumber, 17)
	require.NoError(t, err)

	assert.True(t, result.Won)
	assert.Equal(t, int64(20*35-20), result.Amount)
	assert.Equal(t, int64(1000+20*35-20), result.NewBalance)
}

func TestSpinValidation(t *testing.T) {
	testCases := []struct {
		name     string
		bet      int64
		balance  int64
		betType  BetType
		betValue int
		code     types.ErrorCode
	}{
		{name: "zero bet", bet: 0, balance: 100, betType: BetRed, code: types.ErrInvalidBet},
		{name: "insufficient funds", bet: 200, balance: 100, betType: BetRed, code: types.ErrInsufficientFunds},
		{name: "number bet above 36", bet: 20, balance: 100, betType: BetNumber, betValue: 37, code: types.ErrInvalidNumberBet},
		{name: "number bet below 0", bet: 20, balance: 100, betType: BetNumber, betValue: -1, code: types.ErrInvalidNumberBet},
		{name: "unknown bet type", bet: 20, balance: 100, betType: BetType("green"), code: types.ErrInvalidBet},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wheel := NewWheel(fixedSource{number: 1})

			result, err := wheel.Spin(tc.bet, newPlayer(tc.balance), tc.betType, tc.betValue)

			assert.Nil(t, result)
			assert.True(t, types.IsCasinoError(err, tc.code),
				"expected code %s, got %v", tc.code, err)
		})
	}
}

func TestRedAndBlackPartitionTheWheel(t *testing.T) {
	// Every non-zero pocket is exactly one of red or black.
	redCount := 0
	for number := 1; number <= 36; number++ {
		assert.NotEqual(t, IsRed(number), IsBlack(number),
			"pocket %d must be exactly one colour", number)
		if IsRed(number) {
			redCount++
		}
	}
	assert.Equal(t, 18, redCount, "the wheel has 18 red pockets")

	assert.False(t, IsRed(0), "zero is not red")
	assert.False(t, IsBlack(0), "zero is not black")
}
