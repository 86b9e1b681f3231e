package overlay

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/c9s/chartdraw/pkg/types"
)

// Default pixel tolerances. The values match what users of the previous
// implementation are calibrated to; do not tune them casually.
const (
	DefaultHitThreshold    = 8.0
	DefaultCloseRadius     = 10.0
	DefaultMagnetThreshold = 20.0
)

// Config is the per-chart-instance configuration of the overlay. One
// Config belongs to one Manager; nothing here is process-global.
type Config struct {
	Magnet          types.MagnetMode `yaml:"magnet" json:"magnet"`
	MagnetThreshold float64          `yaml:"magnetThreshold" json:"magnetThreshold"`

	HitThreshold float64 `yaml:"hitThreshold" json:"hitThreshold"`
	CloseRadius  float64 `yaml:"closeRadius" json:"closeRadius"`

	// Locked freezes every drawing on the chart regardless of the
	// per-drawing locked flag.
	Locked bool `yaml:"locked" json:"locked"`

	// Sticker is the emoji/content the sticker tool stamps.
	Sticker string `yaml:"sticker" json:"sticker"`
}

func DefaultConfig() *Config {
	return &Config{
		Magnet:          types.MagnetModeNone,
		MagnetThreshold: DefaultMagnetThreshold,
		HitThreshold:    DefaultHitThreshold,
		CloseRadius:     DefaultCloseRadius,
	}
}

// LoadConfig reads a yaml overlay config, filling omitted tolerances
// with the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can not read overlay config %s", path)
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "can not parse overlay config %s", path)
	}

	if c.Magnet == "" {
		c.Magnet = types.MagnetModeNone
	}
	if c.HitThreshold <= 0 {
		c.HitThreshold = DefaultHitThreshold
	}
	if c.CloseRadius <= 0 {
		c.CloseRadius = DefaultCloseRadius
	}
	if c.MagnetThreshold <= 0 {
		c.MagnetThreshold = DefaultMagnetThreshold
	}

	return c, nil
}
