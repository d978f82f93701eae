// Package text is a non-interactive renderer that prints a single layout and exits.
package text

import (
	"fmt"
	"io"
	"os"

	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/game/state"
)

// TextRenderer prints the current layout to a writer
type TextRenderer struct {
	out io.Writer

	// Full selects the complete dump (metadata, rooms, corridors) over the bare map
	Full bool
}

// New creates a text renderer writing to stdout
func New(full bool) *TextRenderer {
	return &TextRenderer{out: os.Stdout, Full: full}
}

// NewWithWriter creates a text renderer writing to out
func NewWithWriter(out io.Writer, full bool) *TextRenderer {
	return &TextRenderer{out: out, Full: full}
}

// Name returns the renderer name
func (r *TextRenderer) Name() string {
	return "text"
}

// Init is a no-op for plain text output
func (r *TextRenderer) Init() error {
	return nil
}

// Run prints the session once
func (r *TextRenderer) Run(s *state.Session) error {
	if r.Full {
		return devtools.WriteDump(r.out, s)
	}
	if _, err := fmt.Fprintln(r.out, renderer.StatusLine(s)); err != nil {
		return err
	}
	return devtools.WriteMap(r.out, s.Grid())
}
