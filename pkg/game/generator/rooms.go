package generator

import (
	"fmt"

	"dungeongen/pkg/engine/world"
)

// Corridor is the L-shaped path carved between two consecutive rooms.
// The horizontal leg runs along From's row, the vertical leg along To's column.
type Corridor struct {
	From world.Point
	To   world.Point
}

// Bend returns the corner of the L
func (c Corridor) Bend() world.Point {
	return world.Point{Row: c.From.Row, Col: c.To.Col}
}

// Cells returns every cell the corridor covers, horizontal leg first
func (c Corridor) Cells() []world.Point {
	var cells []world.Point
	lo, hi := minMax(c.From.Col, c.To.Col)
	for col := lo; col <= hi; col++ {
		cells = append(cells, world.Point{Row: c.From.Row, Col: col})
	}
	lo, hi = minMax(c.From.Row, c.To.Row)
	for row := lo; row <= hi; row++ {
		cells = append(cells, world.Point{Row: row, Col: c.To.Col})
	}
	return cells
}

// RoomsGenerator places random rectangular rooms and chains them with corridors
type RoomsGenerator struct {
	cfg Config
	rng Source

	grid      *world.Grid
	rooms     []world.Room
	corridors []Corridor
	attempts  int
}

// New creates a generator with an empty grid. The config is validated here
// so that Generate never fails.
func New(cfg Config, rng Source) (*RoomsGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	return &RoomsGenerator{
		cfg:  cfg,
		rng:  rng,
		grid: world.NewGrid(cfg.GridSize),
	}, nil
}

// Name returns the name of this generator
func (g *RoomsGenerator) Name() string {
	return "Rooms and Corridors"
}

// Config returns the configuration the generator was built with
func (g *RoomsGenerator) Config() Config {
	return g.cfg
}

// Grid returns the current layout
func (g *RoomsGenerator) Grid() *world.Grid {
	return g.grid
}

// Rooms returns the placed rooms in placement order
func (g *RoomsGenerator) Rooms() []world.Room {
	return append([]world.Room(nil), g.rooms...)
}

// Corridors returns the corridors carved by the last run
func (g *RoomsGenerator) Corridors() []Corridor {
	return append([]Corridor(nil), g.corridors...)
}

// Attempts returns how many placement attempts the last run used
func (g *RoomsGenerator) Attempts() int {
	return g.attempts
}

// Stats returns counts from the last run
func (g *RoomsGenerator) Stats() Stats {
	return Stats{
		Rooms:     len(g.rooms),
		Corridors: len(g.corridors),
		Attempts:  g.attempts,
	}
}

// Generate clears the grid, places rooms and then connects them
func (g *RoomsGenerator) Generate() {
	g.grid.Reset()
	g.rooms = g.rooms[:0]
	g.corridors = g.corridors[:0]
	g.attempts = 0

	g.placeRooms()
	g.connectRooms()
}

// placeRooms tries random rooms until the target count or the attempt budget is reached
func (g *RoomsGenerator) placeRooms() {
	for len(g.rooms) < g.cfg.RoomCount && g.attempts < g.cfg.MaxAttempts {
		g.attempts++

		room, ok := g.randomRoom()
		if !ok || !g.isRoomValid(room) {
			continue
		}

		g.carveRoom(room, len(g.rooms))
		g.rooms = append(g.rooms, room)
	}
}

// randomRoom draws a room size and a position leaving a 1-cell border at the grid edge.
// Returns false when the drawn size cannot fit at all.
func (g *RoomsGenerator) randomRoom() (world.Room, bool) {
	width := g.randRange(g.cfg.MinRoomSize, g.cfg.MaxRoomSize)
	height := g.randRange(g.cfg.MinRoomSize, g.cfg.MaxRoomSize)

	maxX := g.cfg.GridSize - width - 1
	maxY := g.cfg.GridSize - height - 1
	if maxX < 1 || maxY < 1 {
		return world.Room{}, false
	}

	return world.Room{
		X:      g.randRange(1, maxX),
		Y:      g.randRange(1, maxY),
		Width:  width,
		Height: height,
	}, true
}

// isRoomValid checks the room and its padding are in bounds and clear
func (g *RoomsGenerator) isRoomValid(room world.Room) bool {
	return g.grid.IsAreaClear(room.Padded(world.RoomPadding))
}

// carveRoom marks every cell of the room occupied
func (g *RoomsGenerator) carveRoom(room world.Room, index int) {
	for row := room.Y; row < room.Y+room.Height; row++ {
		for col := room.X; col < room.X+room.Width; col++ {
			g.grid.MarkRoom(row, col, index)
		}
	}
}

// connectRooms joins each room to the next one in placement order
func (g *RoomsGenerator) connectRooms() {
	for i := 0; i+1 < len(g.rooms); i++ {
		x1, y1 := g.rooms[i].Center()
		x2, y2 := g.rooms[i+1].Center()

		c := Corridor{
			From: world.Point{Row: y1, Col: x1},
			To:   world.Point{Row: y2, Col: x2},
		}
		for _, p := range c.Cells() {
			g.grid.MarkCorridor(p.Row, p.Col)
		}
		g.corridors = append(g.corridors, c)
	}
}

// randRange returns a value in [lo, hi] inclusive
func (g *RoomsGenerator) randRange(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
