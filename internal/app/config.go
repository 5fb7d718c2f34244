package app

import (
	"flag"

	"github.com/pkg/errors"

	"golife/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	Speed    int
	Seed     int64
}

// NewConfig returns a Config populated with the classic board: a 100×100
// grid of 8-pixel cells ticking at 10 generations per second.
func NewConfig() *Config {
	return &Config{Width: 100, Height: 100, CellSize: 8, Speed: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "pixels per cell")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial speed in generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the spawning RNG")
}

// Validate rejects configurations that cannot produce a usable window.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Speed < core.SpeedMin || c.Speed > core.SpeedMax {
		return errors.Errorf("speed must be within [%d, %d], got %d", core.SpeedMin, core.SpeedMax, c.Speed)
	}
	return nil
}
