package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"life-editor/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	WindowWidth          int     `json:"window_width"`
	WindowHeight         int     `json:"window_height"`
	CellSize             int     `json:"cell_size"`
	GenerationsPerSecond int     `json:"generations_per_second"`
	FrameTPS             int     `json:"frame_tps"`
	Seed                 int64   `json:"seed"`
	Density              float64 `json:"density"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		WindowWidth:          1024,
		WindowHeight:         1024,
		CellSize:             10,
		GenerationsPerSecond: 10,
		FrameTPS:             60,
		Seed:                 42,
		Density:              0.25,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell edge length in pixels")
	fs.IntVar(&c.GenerationsPerSecond, "gps", c.GenerationsPerSecond, "generations per second while simulating")
	fs.IntVar(&c.FrameTPS, "tps", c.FrameTPS, "frame ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the randomize key")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability when randomizing")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional JSON file overriding the defaults")
}

// LoadFile overlays values from a JSON file onto c. Keys missing from the
// file keep their current value.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "read config %s", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "decode config %s", filename)
	}
	return nil
}

// Validate reports the first setting that cannot produce a usable board.
func (c *Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return errors.Errorf("window must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.CellSize > c.WindowWidth || c.CellSize > c.WindowHeight:
		return errors.Errorf("cell size %d does not fit a %dx%d window", c.CellSize, c.WindowWidth, c.WindowHeight)
	case c.GenerationsPerSecond <= 0:
		return errors.Errorf("generations per second must be positive, got %d", c.GenerationsPerSecond)
	case c.FrameTPS <= 0:
		return errors.Errorf("frame tps must be positive, got %d", c.FrameTPS)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density must be within [0, 1], got %g", c.Density)
	}
	return nil
}

// GridSize is the board size in cells implied by the window and cell size.
func (c *Config) GridSize() core.Size {
	return core.Size{W: c.WindowWidth / c.CellSize, H: c.WindowHeight / c.CellSize}
}
