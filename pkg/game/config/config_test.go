package config

import (
	"errors"
	"testing"

	"dungeongen/pkg/game/generator"
)

func TestParse_Defaults(t *testing.T) {
	opts, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.Generator != generator.DefaultConfig() {
		t.Errorf("Generator = %+v, want defaults", opts.Generator)
	}
	if opts.Renderer != "ebiten" {
		t.Errorf("Renderer = %q, want ebiten", opts.Renderer)
	}
	if opts.Seed == 0 {
		t.Error("Seed = 0, want a clock seed")
	}
}

func TestParse_Overrides(t *testing.T) {
	opts, err := Parse([]string{"-renderer", "text", "-seed", "12", "-grid", "30", "-rooms", "8", "-min-room", "2", "-max-room", "5", "-full"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.Renderer != "text" || opts.Seed != 12 || !opts.FullDump {
		t.Errorf("Renderer/Seed/FullDump = %q/%d/%v", opts.Renderer, opts.Seed, opts.FullDump)
	}
	g := opts.Generator
	if g.GridSize != 30 || g.RoomCount != 8 || g.MinRoomSize != 2 || g.MaxRoomSize != 5 {
		t.Errorf("Generator = %+v", g)
	}
}

func TestParse_RejectsInvalidConfig(t *testing.T) {
	_, err := Parse([]string{"-min-room", "7", "-max-room", "3"})
	if !errors.Is(err, generator.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	if _, err := Parse([]string{"-bogus"}); err == nil {
		t.Error("Parse(-bogus) = nil error")
	}
}
