package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/i18n"
)

// drawGrid paints every cell: filled gray when occupied, with a 1px black border
func (e *EbitenRenderer) drawGrid(screen *ebiten.Image) {
	e.session.Grid().ForEachCell(func(row, col int, cell *world.Cell) {
		r := e.layout.CellRect(row, col)

		fill := colorBackground
		if cell.Occupied() {
			fill = colorOccupied
		}
		fillRect(screen, r, fill)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, colorGridLine, false)
	})
}

// drawButton paints the regenerate button with its centered label
func (e *EbitenRenderer) drawButton(screen *ebiten.Image) {
	r := e.layout.ButtonRect()

	bg := colorButton
	if x, y := ebiten.CursorPosition(); e.layout.InButton(x, y) {
		bg = colorButtonHover
	}
	fillRect(screen, r, bg)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, colorButtonBorder, false)

	label := i18n.T("GENERATE_BUTTON")
	face := e.getUIFontFace()
	w, h := text.Measure(label, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.Min.X)+(float64(r.Dx())-w)/2, float64(r.Min.Y)+(float64(r.Dy())-h)/2)
	op.ColorScale.ScaleWithColor(colorButtonText)
	text.Draw(screen, label, face, op)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}
