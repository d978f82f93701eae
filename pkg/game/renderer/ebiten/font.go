package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go font used for the button label
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	e.sansFontSource = src
	return nil
}

// getUIFontFace returns a cached face for button text, scaled a little with the cell size
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	size := baseFontSize
	if e.layout.CellSize < 20 {
		size = baseFontSize - 2
	}
	if e.cachedUIFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedUIFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   size,
		}
	}
	return e.cachedUIFace
}
