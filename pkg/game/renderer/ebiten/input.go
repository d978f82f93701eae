package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "dungeongen/pkg/engine/input"
	"dungeongen/pkg/game/devtools"
)

// keyCodes maps the keys we listen for to binding codes
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyG:              "g",
	ebiten.KeyR:              "r",
	ebiten.KeySpace:          "space",
	ebiten.KeyEnter:          "enter",
	ebiten.KeyD:              "d",
	ebiten.KeyP:              "p",
	ebiten.KeyQ:              "q",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
}

// handleInput turns this frame's key presses and button clicks into intents
func (e *EbitenRenderer) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if e.layout.InButton(x, y) {
			e.apply(engineinput.MapToIntent(engineinput.RawInput{Device: engineinput.DeviceMouse, Code: "mouse_left"}))
		}
	}

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			e.apply(engineinput.MapToIntent(engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code}))
		}
	}
}

// apply performs an intent
func (e *EbitenRenderer) apply(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionRegenerate:
		e.session.Regenerate()
		e.updateTitle()
	case engineinput.ActionDumpMap:
		if path, err := devtools.DumpMapToFile(e.dumpDir, e.session); err != nil {
			log.Printf("map dump failed: %v", err)
		} else {
			log.Printf("map written to %s", path)
		}
	case engineinput.ActionScreenshot:
		if path, err := devtools.SaveScreenshotHTML(e.dumpDir, e.session); err != nil {
			log.Printf("screenshot failed: %v", err)
		} else {
			log.Printf("screenshot written to %s", path)
		}
	case engineinput.ActionZoomIn:
		e.zoom(cellSizeStep)
	case engineinput.ActionZoomOut:
		e.zoom(-cellSizeStep)
	case engineinput.ActionQuit:
		e.quit = true
	}
}

// zoom changes the cell size and resizes the window to match
func (e *EbitenRenderer) zoom(delta int) {
	e.layout = e.layout.Zoom(delta, minCellSize, maxCellSize)
	ebiten.SetWindowSize(e.layout.Width(), e.layout.Height())
}
