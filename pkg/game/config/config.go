// Package config parses command-line options for the dungeongen binary.
package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/i18n"
)

// Options holds everything parsed from the command line
type Options struct {
	Renderer string
	Seed     int64
	Lang     string
	DumpDir  string
	LogFile  string

	// FullDump selects the complete dump in the text renderer
	FullDump bool

	Generator generator.Config
}

// Parse reads options from args (without the program name). flag.ErrHelp is
// returned when -h was given.
func Parse(args []string) (Options, error) {
	opts := Options{Generator: generator.DefaultConfig()}
	cfg := &opts.Generator

	fs := flag.NewFlagSet("dungeongen", flag.ContinueOnError)
	fs.StringVar(&opts.Renderer, "renderer", "ebiten", "display host: ebiten, tui or text")
	fs.Int64Var(&opts.Seed, "seed", 0, "random seed (0 seeds from the clock)")
	fs.StringVar(&opts.Lang, "lang", os.Getenv("LANG"), "interface language ("+strings.Join(i18n.Languages(), ", ")+")")
	fs.StringVar(&opts.DumpDir, "dump", ".", "directory for map dumps and screenshots")
	fs.StringVar(&opts.LogFile, "log", "", "write log output to this file instead of stderr")
	fs.BoolVar(&opts.FullDump, "full", false, "text renderer: print the full dump instead of the bare map")
	fs.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "grid dimension in cells")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "cell size in pixels (ebiten)")
	fs.IntVar(&cfg.RoomCount, "rooms", cfg.RoomCount, "target number of rooms")
	fs.IntVar(&cfg.MinRoomSize, "min-room", cfg.MinRoomSize, "minimum room width/height")
	fs.IntVar(&cfg.MaxRoomSize, "max-room", cfg.MaxRoomSize, "maximum room width/height")
	fs.IntVar(&cfg.MaxAttempts, "attempts", cfg.MaxAttempts, "room placement attempt budget")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if err := cfg.Validate(); err != nil {
		return opts, err
	}

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return opts, nil
}
