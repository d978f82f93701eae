package world

import "github.com/zyedidia/generic/mapset"

// RoomPadding is the buffer, in cells, kept clear around every placed room.
const RoomPadding = 1

// Room is an axis-aligned rectangle in grid coordinates. X is the column of
// the left edge and Y the row of the top edge.
type Room struct {
	X, Y          int
	Width, Height int
}

// Center returns the room's center column and row, truncating toward the top left
func (r Room) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the cell at (row, col) lies inside the room
func (r Room) Contains(row, col int) bool {
	return col >= r.X && col < r.X+r.Width && row >= r.Y && row < r.Y+r.Height
}

// Padded returns the room grown by n cells on every side
func (r Room) Padded(n int) Room {
	return Room{
		X:      r.X - n,
		Y:      r.Y - n,
		Width:  r.Width + 2*n,
		Height: r.Height + 2*n,
	}
}

// Intersects returns true if the two rectangles share at least one cell
func (r Room) Intersects(o Room) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Area returns the number of cells covered by the room
func (r Room) Area() int {
	return r.Width * r.Height
}

// Footprint returns the set of points covered by the room
func (r Room) Footprint() mapset.Set[Point] {
	cells := mapset.New[Point]()
	for row := r.Y; row < r.Y+r.Height; row++ {
		for col := r.X; col < r.X+r.Width; col++ {
			cells.Put(Point{Row: row, Col: col})
		}
	}
	return cells
}
