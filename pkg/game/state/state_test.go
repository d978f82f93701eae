package state

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"dungeongen/pkg/game/generator"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestSession_Regenerate(t *testing.T) {
	s := NewSession(generator.DefaultGenerator(9), 9)
	if s.Generation != 0 {
		t.Fatalf("Generation = %d before first run, want 0", s.Generation)
	}
	s.Regenerate()
	s.Regenerate()
	if s.Generation != 2 {
		t.Errorf("Generation = %d, want 2", s.Generation)
	}
	if st := s.Stats(); st.Rooms != len(s.Rooms()) || st.Rooms == 0 {
		t.Errorf("Stats().Rooms = %d, Rooms() = %d, want equal and non-zero", st.Rooms, len(s.Rooms()))
	}
	if s.Grid().OccupiedCount() == 0 {
		t.Error("grid is empty after Regenerate")
	}
}

func TestSession_MessageLogIsBounded(t *testing.T) {
	s := NewSession(generator.DefaultGenerator(1), 1)
	for i := 0; i < maxMessages+3; i++ {
		s.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(s.Messages) != maxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(s.Messages), maxMessages)
	}
	if s.Messages[0] != "m3" {
		t.Errorf("oldest kept message = %q, want m3", s.Messages[0])
	}
	s.ClearMessages()
	if len(s.Messages) != 0 {
		t.Errorf("len(Messages) after clear = %d", len(s.Messages))
	}
}
