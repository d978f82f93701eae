package ebiten

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"dungeongen/pkg/game/i18n"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/game/state"
)

// EbitenRenderer draws the grid in a window with a regenerate button below it.
// Ebiten calls Update and Draw from one goroutine, so regeneration never races drawing.
type EbitenRenderer struct {
	layout  renderer.Layout
	dumpDir string

	session *state.Session

	sansFontSource   *text.GoTextFaceSource
	cachedUIFace     *text.GoTextFace
	cachedUIFontSize float64

	windowOpenedLogged bool
	quit               bool
}

// New creates an Ebiten renderer for a grid of the given size
func New(gridSize, cellSize int, dumpDir string) *EbitenRenderer {
	return &EbitenRenderer{
		layout:  renderer.Layout{GridSize: gridSize, CellSize: cellSize},
		dumpDir: dumpDir,
	}
}

// Name returns the renderer name
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Init loads fonts and sets window properties
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.layout.Width(), e.layout.Height())
	ebiten.SetWindowTitle(i18n.T("WINDOW_TITLE"))
	return nil
}

// Run opens the window and blocks until it is closed
func (e *EbitenRenderer) Run(s *state.Session) error {
	e.session = s
	e.updateTitle()

	if err := ebiten.RunGame(e); err != nil && err != ebiten.Termination {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.handleInput()

	if e.quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the grid and the button (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorStrip)
	e.drawGrid(screen)
	e.drawButton(screen)
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.layout.Width(), e.layout.Height()
}

// updateTitle shows the status line in the window title
func (e *EbitenRenderer) updateTitle() {
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", i18n.T("WINDOW_TITLE"), renderer.StatusLine(e.session)))
}
