package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid generator config")

// Defaults
const (
	DefaultGridSize    = 20
	DefaultCellSize    = 30
	DefaultRoomCount   = 5
	DefaultMinRoomSize = 3
	DefaultMaxRoomSize = 6
	DefaultMaxAttempts = 100
)

// Config is fixed for the lifetime of a generator.
type Config struct {
	// GridSize is the side length of the square grid.
	GridSize int

	// CellSize is the on-screen size of a cell in pixels. The generator
	// ignores it; graphical hosts read it from here.
	CellSize int

	// RoomCount is the number of rooms placement aims for.
	RoomCount int

	MinRoomSize int
	MaxRoomSize int

	// MaxAttempts caps room placement tries across the whole run.
	MaxAttempts int
}

// DefaultConfig returns the stock 20x20, five room layout
func DefaultConfig() Config {
	return Config{
		GridSize:    DefaultGridSize,
		CellSize:    DefaultCellSize,
		RoomCount:   DefaultRoomCount,
		MinRoomSize: DefaultMinRoomSize,
		MaxRoomSize: DefaultMaxRoomSize,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Validate reports the first problem with the config, or nil.
// A MaxRoomSize too large for the grid is allowed: such rooms are simply never placed.
func (c Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid size %d must be positive", ErrInvalidConfig, c.GridSize)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	case c.RoomCount <= 0:
		return fmt.Errorf("%w: room count %d must be positive", ErrInvalidConfig, c.RoomCount)
	case c.MinRoomSize <= 0:
		return fmt.Errorf("%w: min room size %d must be positive", ErrInvalidConfig, c.MinRoomSize)
	case c.MaxRoomSize < c.MinRoomSize:
		return fmt.Errorf("%w: max room size %d is below min room size %d", ErrInvalidConfig, c.MaxRoomSize, c.MinRoomSize)
	case c.GridSize < c.MinRoomSize+2:
		return fmt.Errorf("%w: grid size %d cannot fit a %d cell room with padding", ErrInvalidConfig, c.GridSize, c.MinRoomSize)
	case c.MaxAttempts <= 0:
		return fmt.Errorf("%w: attempt budget %d must be positive", ErrInvalidConfig, c.MaxAttempts)
	}
	return nil
}
