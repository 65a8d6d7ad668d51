// Package config loads game settings from defaults, an optional TOML file and CLI flags
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/bubble-slicer/constants"
	"github.com/lixenwraith/bubble-slicer/engine"
)

// Config is the full set of startup settings
type Config struct {
	// Playfield size in pixels
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// FitTerminal sizes the playfield to the terminal at startup, overriding Width and Height
	FitTerminal bool `toml:"fit_terminal"`

	// PauseBlocksSlice rejects slices while paused
	PauseBlocksSlice bool `toml:"pause_blocks_slice"`

	// Seed for bubble randomness, 0 picks one from the wall clock
	Seed int64 `toml:"seed"`

	Muted bool `toml:"muted"`
	Debug bool `toml:"debug"`

	Tuning engine.Tuning `toml:"tuning"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Width:       constants.DefaultPlayfieldWidth,
		Height:      constants.DefaultPlayfieldHeight,
		FitTerminal: true,
		Tuning:      engine.DefaultTuning(),
	}
}

// Load decodes a TOML file over the defaults
// An empty path returns the defaults unchanged
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, fmt.Errorf("config %s: decode: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the playfield and tuning values
func (c Config) Validate() error {
	if !dimension(c.Width) || !dimension(c.Height) {
		return fmt.Errorf("%w: %vx%v", engine.ErrInvalidGeometry, c.Width, c.Height)
	}
	return c.Tuning.Validate()
}

func dimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
