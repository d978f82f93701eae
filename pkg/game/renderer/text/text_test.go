package text

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/i18n"
	"dungeongen/pkg/game/state"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	if err := i18n.Init("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestRun_PrintsStatusAndMap(t *testing.T) {
	s := state.NewSession(generator.DefaultGenerator(8), 8)
	s.Regenerate()

	var buf bytes.Buffer
	if err := NewWithWriter(&buf, false).Run(s); err != nil {
		t.Fatalf("Run: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1+s.Grid().Size() {
		t.Fatalf("printed %d lines, want status + %d rows", len(lines), s.Grid().Size())
	}
	if !strings.HasPrefix(lines[0], "Dungeon #1:") {
		t.Errorf("status line = %q", lines[0])
	}
	occupied := 0
	for _, l := range lines[1:] {
		occupied += len(l) - strings.Count(l, ".")
	}
	if occupied != s.Grid().OccupiedCount() {
		t.Errorf("printed %d occupied cells, grid has %d", occupied, s.Grid().OccupiedCount())
	}
}

func TestRun_FullDump(t *testing.T) {
	s := state.NewSession(generator.DefaultGenerator(8), 8)
	s.Regenerate()

	var buf bytes.Buffer
	if err := NewWithWriter(&buf, true).Run(s); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(buf.String(), "--- Rooms (placement order) ---") {
		t.Error("full dump has no room list")
	}
}
