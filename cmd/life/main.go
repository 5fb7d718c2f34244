//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"golife/internal/app"
	"golife/internal/core"
	_ "golife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

const simName = "life"

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	factory, ok := core.Sims()[simName]
	if !ok {
		log.Fatalf("unknown sim %q", simName)
	}

	sim := factory(map[string]string{
		"width":  strconv.Itoa(cfg.Width),
		"height": strconv.Itoa(cfg.Height),
	})
	sim.Reset(cfg.Seed)

	session := core.NewSession(cfg.Speed)
	game := app.New(sim, cfg.CellSize, session, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("golife — " + sim.Name())
	ebiten.SetTPS(session.Speed)
	ebiten.SetWindowSize(size.W*cfg.CellSize, size.H*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
