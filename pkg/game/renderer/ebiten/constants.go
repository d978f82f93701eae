// Package ebiten provides an Ebiten-based 2D graphical host for the dungeon generator.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground   = color.RGBA{240, 240, 240, 255} // Empty cells
	colorOccupied     = color.RGBA{100, 100, 100, 255} // Rooms and corridors
	colorGridLine     = color.RGBA{0, 0, 0, 255}       // Cell borders
	colorButton       = color.RGBA{60, 60, 80, 255}
	colorButtonHover  = color.RGBA{80, 80, 110, 255}
	colorButtonBorder = color.RGBA{30, 30, 40, 255}
	colorButtonText   = color.RGBA{240, 240, 255, 255}
	colorStrip        = color.RGBA{26, 26, 46, 255} // Behind the button
)

// Cell size constraints for zooming
const (
	minCellSize  = 8
	maxCellSize  = 96
	cellSizeStep = 4
	baseFontSize = 14.0
)
