package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"dungeongen/pkg/engine/input"
	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/i18n"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/game/state"
)

// Cell icons; each grid cell is drawn two characters wide so the map looks square
const (
	IconRoom     = "██"
	IconCorridor = "▓▓"
	IconEmpty    = "··"
)

const clearScreen = "\x1b[H\x1b[2J"

// KeyReader returns the next key press
type KeyReader func() (input.RawInput, error)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	readKey KeyReader

	// dumpDir is where map dumps and screenshots are written
	dumpDir string

	colorTitle    color.Style
	colorRoom     color.Style
	colorCorridor color.Style
	colorEmpty    color.Style
	colorStatus   color.Style
	colorSubtle   color.Style
	colorDenied   color.Style
}

// New creates a TUI renderer drawing to stdout and reading raw terminal keys
func New(dumpDir string) *TUIRenderer {
	return &TUIRenderer{
		out:     os.Stdout,
		readKey: input.ReadKey,
		dumpDir: dumpDir,
	}
}

// NewWithIO creates a TUI renderer with explicit output and key source
func NewWithIO(out io.Writer, readKey KeyReader, dumpDir string) *TUIRenderer {
	return &TUIRenderer{
		out:     out,
		readKey: readKey,
		dumpDir: dumpDir,
	}
}

// Name returns the renderer name
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorRoom = color.Style{color.FgGray}
	t.colorCorridor = color.Style{color.FgWhite}
	t.colorEmpty = color.Style{color.FgBlack, color.OpBold}
	t.colorStatus = color.Style{color.FgBlue}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	return nil
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleCorridor:
		return t.colorCorridor.Sprint(text)
	case renderer.StyleEmpty:
		return t.colorEmpty.Sprint(text)
	case renderer.StyleStatus:
		return t.colorStatus.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// Run draws the session and handles keys until the user quits
func (t *TUIRenderer) Run(s *state.Session) error {
	for {
		t.RenderFrame(s)

		raw, err := t.readKey()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if quit := t.Handle(s, input.MapToIntent(raw)); quit {
			return nil
		}
	}
}

// Handle applies an intent to the session and returns true when the user asked to quit
func (t *TUIRenderer) Handle(s *state.Session, intent input.Intent) bool {
	switch intent.Action {
	case input.ActionRegenerate:
		s.Regenerate()
		s.AddMessage(i18n.T("GENERATED"))
	case input.ActionDumpMap:
		path, err := devtools.DumpMapToFile(t.dumpDir, s)
		t.report(s, path, err)
	case input.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(t.dumpDir, s)
		t.report(s, path, err)
	case input.ActionQuit:
		return true
	}
	return false
}

func (t *TUIRenderer) report(s *state.Session, path string, err error) {
	if err != nil {
		s.AddMessage(t.StyleText(i18n.T("MAP_DUMP_FAILED", err.Error()), renderer.StyleDenied))
		return
	}
	s.AddMessage(i18n.T("MAP_DUMPED", path))
}

// RenderFrame draws one complete frame
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	width, _ := terminal.GetSize()
	grid := s.Grid()
	margin := strings.Repeat(" ", terminal.LeftMargin(width, grid.Cols()*2))

	fmt.Fprint(t.out, clearScreen)
	fmt.Fprintln(t.out, t.StyleText(i18n.T("WINDOW_TITLE"), renderer.StyleTitle))
	fmt.Fprintln(t.out, t.StyleText(renderer.StatusLine(s), renderer.StyleStatus))
	fmt.Fprintln(t.out, t.StyleText(i18n.T("SEED_LINE", s.Seed), renderer.StyleSubtle))
	fmt.Fprintln(t.out)

	t.printMap(grid, margin)

	fmt.Fprintln(t.out)
	t.printLegend()
	t.printMessagesPane(s)
	fmt.Fprintln(t.out, t.StyleText(i18n.T("HELP_KEYS"), renderer.StyleSubtle))
}

func (t *TUIRenderer) printMap(grid *world.Grid, margin string) {
	var sb strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		sb.Reset()
		sb.WriteString(margin)
		for col := 0; col < grid.Cols(); col++ {
			sb.WriteString(t.renderCell(grid.GetCell(row, col)))
		}
		fmt.Fprintln(t.out, sb.String())
	}
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(c *world.Cell) string {
	switch {
	case c.IsCorridor():
		return t.StyleText(IconCorridor, renderer.StyleCorridor)
	case c.Occupied():
		return t.StyleText(IconRoom, renderer.StyleRoom)
	default:
		return t.StyleText(IconEmpty, renderer.StyleEmpty)
	}
}

func (t *TUIRenderer) printLegend() {
	fmt.Fprintf(t.out, "%s: %s %s  %s %s  %s %s\n",
		i18n.T("LEGEND"),
		t.StyleText(IconRoom, renderer.StyleRoom), i18n.T("LEGEND_ROOM"),
		t.StyleText(IconCorridor, renderer.StyleCorridor), i18n.T("LEGEND_CORRIDOR"),
		t.StyleText(IconEmpty, renderer.StyleEmpty), i18n.T("LEGEND_EMPTY"))
}

func (t *TUIRenderer) printMessagesPane(s *state.Session) {
	if len(s.Messages) == 0 {
		return
	}
	fmt.Fprintln(t.out)
	for _, msg := range s.Messages {
		fmt.Fprintln(t.out, "- "+msg)
	}
	fmt.Fprintln(t.out)
}
