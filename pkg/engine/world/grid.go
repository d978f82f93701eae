package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Grid is a square occupancy map with encapsulated cell storage
type Grid struct {
	cells [][]*Cell
	size  int
}

// NewGrid creates a new empty grid with the given dimension
func NewGrid(size int) *Grid {
	g := &Grid{}
	g.Build(size)
	return g
}

// Size returns the grid dimension
func (g *Grid) Size() int {
	return g.size
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.size
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.size
}

// Build initializes the grid with the given dimension, discarding any previous cells
func (g *Grid) Build(size int) {
	if size <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.size = size
	g.cells = make([][]*Cell, size)

	for row := 0; row < size; row++ {
		g.cells[row] = make([]*Cell, size)
		for col := 0; col < size; col++ {
			g.cells[row][col] = NewCell(row, col)
		}
	}
}

// Reset marks every cell empty
func (g *Grid) Reset() {
	g.ForEachCell(func(row, col int, cell *Cell) {
		cell.clear()
	})
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// IsPlayablePosition checks if a position is inside the 1-cell border around the grid
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.size-1 && col >= 1 && col < g.size-1
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// IsOccupied returns true if the position is in bounds and carved
func (g *Grid) IsOccupied(row, col int) bool {
	return g.GetCell(row, col).Occupied()
}

// MarkRoom marks the cell as part of the room with the given placement index.
// Returns false if out of bounds.
func (g *Grid) MarkRoom(row, col, index int) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	cell.Kind = CellRoom
	cell.RoomIndex = index
	return true
}

// MarkCorridor marks the cell as corridor unless a room already covers it.
// Returns false if out of bounds.
func (g *Grid) MarkCorridor(row, col int) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	if cell.Kind == CellEmpty {
		cell.Kind = CellCorridor
	}
	return true
}

// IsAreaClear returns true if every cell of r is in bounds and empty
func (g *Grid) IsAreaClear(r Room) bool {
	for row := r.Y; row < r.Y+r.Height; row++ {
		for col := r.X; col < r.X+r.Width; col++ {
			if !g.IsValidPosition(row, col) || g.cells[row][col].Occupied() {
				return false
			}
		}
	}
	return true
}

// ForEachCell iterates over all cells in the grid in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// OccupiedCount returns the number of carved cells
func (g *Grid) OccupiedCount() int {
	n := 0
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Occupied() {
			n++
		}
	})
	return n
}

// OccupiedSet returns the positions of all carved cells
func (g *Grid) OccupiedSet() mapset.Set[Point] {
	set := mapset.New[Point]()
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Occupied() {
			set.Put(cell.Point())
		}
	})
	return set
}

// Occupancy returns a row-major copy of the occupancy flags
func (g *Grid) Occupancy() [][]bool {
	out := make([][]bool, g.size)
	for row := range out {
		out[row] = make([]bool, g.size)
		for col := range out[row] {
			out[row][col] = g.cells[row][col].Occupied()
		}
	}
	return out
}

// Validate checks the grid for structural issues and returns an error or nil if valid
func (g *Grid) Validate() error {
	if g.size <= 0 || len(g.cells) != g.size {
		return fmt.Errorf("grid has invalid dimensions %d", g.size)
	}
	for row, cells := range g.cells {
		if len(cells) != g.size {
			return fmt.Errorf("grid row %d has %d cells, want %d", row, len(cells), g.size)
		}
		for col, cell := range cells {
			if cell == nil || cell.Row != row || cell.Col != col {
				return fmt.Errorf("grid cell %d:%d is misplaced", row, col)
			}
			if cell.Kind == CellRoom && cell.RoomIndex < 0 {
				return fmt.Errorf("room cell %d:%d has no room index", row, col)
			}
		}
	}
	return nil
}
