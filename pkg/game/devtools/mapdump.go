// Package devtools provides developer tools for inspecting generated layouts.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// Cell symbols used by text dumps
const (
	SymbolRoom     = '#'
	SymbolCorridor = '+'
	SymbolEmpty    = '.'
)

// corridorLister is implemented by generators that record their corridors.
type corridorLister interface {
	Corridors() []generator.Corridor
}

// CellSymbol returns the single-character symbol for a cell
func CellSymbol(cell *world.Cell) rune {
	switch {
	case cell == nil || !cell.Occupied():
		return SymbolEmpty
	case cell.IsCorridor():
		return SymbolCorridor
	default:
		return SymbolRoom
	}
}

// WriteMap writes the grid to w, one line per row
func WriteMap(w io.Writer, grid *world.Grid) error {
	line := make([]rune, 0, grid.Cols())
	for row := 0; row < grid.Rows(); row++ {
		line = line[:0]
		for col := 0; col < grid.Cols(); col++ {
			line = append(line, CellSymbol(grid.GetCell(row, col)))
		}
		if _, err := fmt.Fprintln(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}

// WriteDump writes metadata, legend, map and the room and corridor lists to w.
// Format is human-readable (sections, key: value).
func WriteDump(w io.Writer, s *state.Session) error {
	grid := s.Grid()
	stats := s.Stats()

	fmt.Fprintln(w, "=== DUNGEON DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "generator: %s\n", s.Generator.Name())
	fmt.Fprintf(w, "generation: %d\n", s.Generation)
	fmt.Fprintf(w, "seed: %d\n", s.Seed)
	fmt.Fprintf(w, "grid_size: %d\n", grid.Size())
	fmt.Fprintf(w, "coordinate_system: x=col, y=row (0-based)\n")
	fmt.Fprintf(w, "rooms: %d\n", stats.Rooms)
	fmt.Fprintf(w, "corridors: %d\n", stats.Corridors)
	fmt.Fprintf(w, "attempts: %d\n", stats.Attempts)
	fmt.Fprintf(w, "occupied_cells: %d\n", grid.OccupiedCount())
	fmt.Fprintf(w, "rooms_reachable_from_first: %d\n", reachableRooms(grid, s.Rooms()))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintf(w, "%c = room  %c = corridor  %c = empty\n", SymbolRoom, SymbolCorridor, SymbolEmpty)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	if err := WriteMap(w, grid); err != nil {
		return err
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms (placement order) ---")
	for i, r := range s.Rooms() {
		cx, cy := r.Center()
		fmt.Fprintf(w, "  %d: x: %d y: %d width: %d height: %d center: %d,%d\n", i, r.X, r.Y, r.Width, r.Height, cx, cy)
	}
	fmt.Fprintln(w, "")

	if cl, ok := s.Generator.(corridorLister); ok {
		fmt.Fprintln(w, "--- Corridors ---")
		for i, c := range cl.Corridors() {
			b := c.Bend()
			fmt.Fprintf(w, "  %d: from: %d,%d bend: %d,%d to: %d,%d\n", i, c.From.Col, c.From.Row, b.Col, b.Row, c.To.Col, c.To.Row)
		}
	}

	_, err := fmt.Fprintln(w, "")
	return err
}

// reachableRooms counts rooms whose center can be reached from the first room's center
func reachableRooms(grid *world.Grid, rooms []world.Room) int {
	if len(rooms) == 0 {
		return 0
	}
	x, y := rooms[0].Center()
	reach := world.Reachable(grid, world.Point{Row: y, Col: x})

	n := 0
	for _, r := range rooms {
		cx, cy := r.Center()
		if reach.Has(world.Point{Row: cy, Col: cx}) {
			n++
		}
	}
	return n
}

// DumpMapToFile writes a full dump to map.txt in dir and returns its absolute path
func DumpMapToFile(dir string, s *state.Session) (string, error) {
	if s == nil || s.Generator == nil {
		return "", fmt.Errorf("no dungeon to dump")
	}

	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	if err := WriteDump(f, s); err != nil {
		return "", fmt.Errorf("write map dump: %w", err)
	}
	return absPath, nil
}
