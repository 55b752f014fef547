package games

import (
	"math/rand"
	"time"
)

//go:generate mockgen -source=random.go -destination=mock_games/mock_random.go -package=mock_games

// RandomSource supplies the uniform draws consumed by the game engines.
// Engines take it as a dependency so tests can replace it with a
// deterministic implementation.
type RandomSource interface {
	// Intn returns a uniform random int in [0, n)
	Intn(n int) int
}

// NewSource returns a RandomSource seeded from the clock
func NewSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededSource returns a RandomSource with a fixed seed for
// reproducible runs
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
