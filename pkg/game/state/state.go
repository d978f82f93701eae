// Package state holds what a display host keeps between regenerations.
package state

import (
	"log"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

const maxMessages = 5

// Session is a host's view of one generator: the layout plus a short message log
type Session struct {
	Generator generator.GridGenerator

	// Seed is the seed the generator's source was created with, for display only.
	Seed int64

	// Generation counts completed Generate calls.
	Generation int

	Messages []string
}

// NewSession wraps gen. The caller runs the first generation with Regenerate.
func NewSession(gen generator.GridGenerator, seed int64) *Session {
	return &Session{
		Generator: gen,
		Seed:      seed,
		Messages:  make([]string, 0),
	}
}

// Regenerate builds a new layout synchronously
func (s *Session) Regenerate() {
	s.Generator.Generate()
	s.Generation++

	stats := s.Generator.Stats()
	log.Printf("generated dungeon #%d: rooms=%d corridors=%d attempts=%d", s.Generation, stats.Rooms, stats.Corridors, stats.Attempts)
}

// Grid returns the current layout
func (s *Session) Grid() *world.Grid {
	return s.Generator.Grid()
}

// Rooms returns the rooms of the current layout
func (s *Session) Rooms() []world.Room {
	return s.Generator.Rooms()
}

// Stats returns the counts from the last generation
func (s *Session) Stats() generator.Stats {
	return s.Generator.Stats()
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
