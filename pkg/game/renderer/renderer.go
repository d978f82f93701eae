// Package renderer defines the display host contract and helpers shared by all backends.
package renderer

import (
	"image"

	"dungeongen/pkg/game/i18n"
	"dungeongen/pkg/game/state"
)

// Version is reported in window titles and dumps
const Version = "1.0.0"

// ButtonHeight is the height in pixels of the regenerate button strip in graphical hosts
const ButtonHeight = 40

// buttonMargin is the gap around the regenerate button
const buttonMargin = 6

// StatusLine returns the translated one-line summary of the current layout
func StatusLine(s *state.Session) string {
	stats := s.Stats()
	return i18n.T("STATUS_LINE", s.Generation, stats.Rooms, stats.Corridors, stats.Attempts)
}

// Layout is the pixel geometry of a graphical host: the grid on top and the
// regenerate button underneath.
type Layout struct {
	GridSize int
	CellSize int
}

// Width returns the window width in pixels
func (l Layout) Width() int {
	return l.GridSize * l.CellSize
}

// Height returns the window height in pixels
func (l Layout) Height() int {
	return l.GridSize*l.CellSize + ButtonHeight
}

// CellRect returns the pixel rectangle of the cell at (row, col)
func (l Layout) CellRect(row, col int) image.Rectangle {
	x := col * l.CellSize
	y := row * l.CellSize
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize)
}

// ButtonRect returns the pixel rectangle of the regenerate button
func (l Layout) ButtonRect() image.Rectangle {
	top := l.GridSize * l.CellSize
	return image.Rect(buttonMargin, top+buttonMargin, l.Width()-buttonMargin, top+ButtonHeight-buttonMargin)
}

// InButton returns true if the pixel (x, y) is on the regenerate button
func (l Layout) InButton(x, y int) bool {
	return image.Pt(x, y).In(l.ButtonRect())
}

// CellAt returns the cell under pixel (x, y), or false when outside the grid
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 || x >= l.Width() || y >= l.GridSize*l.CellSize {
		return 0, 0, false
	}
	return y / l.CellSize, x / l.CellSize, true
}

// Zoom returns the layout with the cell size changed by delta, clamped to [lo, hi]
func (l Layout) Zoom(delta, lo, hi int) Layout {
	size := l.CellSize + delta
	if size < lo {
		size = lo
	}
	if size > hi {
		size = hi
	}
	l.CellSize = size
	return l
}
