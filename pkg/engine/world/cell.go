// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based layout.
package world

// CellKind records what carved a cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellRoom
	CellCorridor
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "Empty"
	case CellRoom:
		return "Room"
	case CellCorridor:
		return "Corridor"
	default:
		return "Unknown"
	}
}

// Cell represents a single cell/tile in the grid.
type Cell struct {
	// Grid position
	Row int
	Col int

	// Kind is CellEmpty for unoccupied cells. A cell carved by a room keeps
	// CellRoom even when a corridor later runs across it.
	Kind CellKind

	// RoomIndex is the placement index of the room covering this cell, or -1.
	RoomIndex int
}

// NewCell creates a new empty cell at the given position
func NewCell(row, col int) *Cell {
	return &Cell{
		Row:       row,
		Col:       col,
		RoomIndex: -1,
	}
}

// Occupied returns true if a room or corridor has been carved into the cell
func (c *Cell) Occupied() bool {
	return c != nil && c.Kind != CellEmpty
}

// IsCorridor returns true if only a corridor covers this cell
func (c *Cell) IsCorridor() bool {
	return c != nil && c.Kind == CellCorridor
}

// Point returns the cell's position as a Point
func (c *Cell) Point() Point {
	return Point{Row: c.Row, Col: c.Col}
}

// clear resets the cell to empty
func (c *Cell) clear() {
	c.Kind = CellEmpty
	c.RoomIndex = -1
}
