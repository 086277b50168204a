package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a run
type Config struct {
	Generations    int           `json:"generations"`
	Pattern        string        `json:"pattern"`
	Rows           int           `json:"rows"`
	Cols           int           `json:"cols"`
	RandomDensity  float64       `json:"random_density"`
	Seed           int64         `json:"seed"`
	Render         string        `json:"render"`
	UseParallel    bool          `json:"use_parallel"`
	Workers        int           `json:"workers"`
	StopWhenStable bool          `json:"stop_when_stable"`
	FrameRate      time.Duration `json:"frame_rate"`
}

// DefaultConfig returns the settings of the demo run
func DefaultConfig() Config {
	return Config{
		Generations:   5,
		Pattern:       "demo",
		Rows:          20,
		Cols:          40,
		RandomDensity: 0.15,
		Seed:          1,
		Render:        "csv",
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks the ranges of the numeric settings
func (c Config) Validate() error {
	switch {
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "generations must not be negative, got %d", c.Generations)
	case c.Rows < 0 || c.Cols < 0:
		return errors.Wrapf(ErrInvalidConfig, "rows and cols must not be negative, got %dx%d", c.Rows, c.Cols)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density must be within [0,1], got %v", c.RandomDensity)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must not be negative, got %v", c.FrameRate)
	}
	return nil
}
