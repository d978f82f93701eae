package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/i18n"
	"dungeongen/pkg/game/renderer"
	ebitenrenderer "dungeongen/pkg/game/renderer/ebiten"
	textrenderer "dungeongen/pkg/game/renderer/text"
	"dungeongen/pkg/game/renderer/tui"
	"dungeongen/pkg/game/state"
)

func run(opts config.Options) error {
	if err := i18n.Init(opts.Lang); err != nil {
		log.Printf("%v; falling back to %s", err, i18n.DefaultLanguage)
		if err := i18n.Init(i18n.DefaultLanguage); err != nil {
			return err
		}
	}

	gen, err := generator.New(opts.Generator, generator.NewSource(opts.Seed))
	if err != nil {
		return err
	}

	registry := renderer.NewRegistry(
		ebitenrenderer.New(opts.Generator.GridSize, opts.Generator.CellSize, opts.DumpDir),
		tui.New(opts.DumpDir),
		textrenderer.New(opts.FullDump),
	)
	r, err := registry.Get(opts.Renderer)
	if err != nil {
		return err
	}
	if r.Name() == "tui" && !terminal.IsTerminal() {
		return fmt.Errorf("tui renderer needs an interactive terminal; try -renderer text")
	}
	if err := r.Init(); err != nil {
		return fmt.Errorf("init %s renderer: %w", r.Name(), err)
	}

	s := state.NewSession(gen, opts.Seed)
	s.Regenerate()

	log.Printf("starting %s renderer (seed %d)", r.Name(), opts.Seed)
	return r.Run(s)
}

func main() {
	opts, err := config.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Cannot open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(opts); err != nil {
		log.Fatalf("dungeongen: %v", err)
	}
}
