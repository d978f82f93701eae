package generator

import (
	"math/rand"
	"time"

	"dungeongen/pkg/engine/world"
)

// GridGenerator is an interface for layout generation algorithms
type GridGenerator interface {
	// Generate discards the previous layout and builds a new one
	Generate()
	Grid() *world.Grid
	Rooms() []world.Room
	Stats() Stats
	Name() string
}

// Stats summarises the last run
type Stats struct {
	Rooms     int
	Corridors int
	Attempts  int
}

// Source is the randomness a generator draws from. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n); n is always positive.
	Intn(n int) int
}

// NewSource returns a seeded source. A zero seed is replaced with the current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// DefaultGenerator creates the rooms-and-corridors generator with DefaultConfig
func DefaultGenerator(seed int64) GridGenerator {
	g, err := New(DefaultConfig(), NewSource(seed))
	if err != nil {
		panic("default generator config is invalid: " + err.Error())
	}
	return g
}
