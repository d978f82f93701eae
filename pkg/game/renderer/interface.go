package renderer

import (
	"fmt"
	"sort"
	"strings"

	"dungeongen/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleRoom
	StyleCorridor
	StyleEmpty
	StyleStatus
	StyleSubtle
	StyleDenied
)

// Renderer is a display host for a dungeon session. Implementations can
// include TUI (terminal), Ebiten, or a one-shot text printer.
type Renderer interface {
	// Name is the identifier used to pick the renderer on the command line
	Name() string

	// Init prepares the renderer (colors, fonts, window settings)
	Init() error

	// Run shows the session and blocks until the user quits. Hosts call
	// s.Regenerate in response to user requests and then redraw.
	Run(s *state.Session) error
}

// Registry maps renderer names to implementations
type Registry map[string]Renderer

// NewRegistry indexes the given renderers by name
func NewRegistry(renderers ...Renderer) Registry {
	r := make(Registry, len(renderers))
	for _, rend := range renderers {
		r[rend.Name()] = rend
	}
	return r
}

// Get returns the renderer registered under name
func (r Registry) Get(name string) (Renderer, error) {
	rend, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown renderer %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return rend, nil
}

// Names returns the registered names in sorted order
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
