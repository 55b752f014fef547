package slots

import (
	"github.com/luckyseven/casino/pkg/entities"
	"github.com/luckyseven/casino/pkg/games"
)

// Symbols is the fixed reel strip. Every reel draws uniformly from this set.
var Symbols = []string{"🍒", "🍊", "🍋", "🎰", "💎", "7️⃣"}

// payouts maps a winning symbol to its multiplier when all three reels
// show it. Rarer symbols pay more.
var payouts = map[string]int64{
	"7️⃣": 5,
	"💎":  4,
	"🎰":  3,
	"🍋":  3,
	"🍊":  2,
	"🍒":  2,
}

// fallbackMultiplier applies when a winning symbol has no payout entry.
// Every symbol has one, so this should never be hit.
const fallbackMultiplier int64 = 2

// Machine resolves slot wagers against an injected random source
type Machine struct {
	rng games.RandomSource
}

// NewMachine creates a slot machine drawing from the given source
func NewMachine(rng games.RandomSource) *Machine {
	return &Machine{rng: rng}
}

// Spin resolves one slot wager. It validates the bet, draws three
// independent reels and computes the payout. The player is not mutated;
// the ledger applies the returned result.
func (m *Machine) Spin(bet int64, player *entities.Player) (*entities.GameResult, error) {
	if err := games.ValidateBet(bet, player.Balance); err != nil {
		return nil, err
	}

	var reels [3]string
	for i := range reels {
		reels[i] = Symbols[m.rng.Intn(len(Symbols))]
	}

	won := reels[0] == reels[1] && reels[1] == reels[2]

	var multiplier int64
	if won {
		multiplier = fallbackMultiplier
		if payout, ok := payouts[reels[0]]; ok {
			multiplier = payout
		}
	}

	amount := bet*multiplier - bet
	return &entities.GameResult{
		Won:        won,
		Amount:     amount,
		NewBalance: player.Balance + amount,
		Details:    entities.SlotDetails{Symbols: reels},
	}, nil
}

// Multiplier returns the payout multiplier for a winning symbol
func Multiplier(symbol string) int64 {
	if payout, ok := payouts[symbol]; ok {
		return payout
	}
	return fallbackMultiplier
}
