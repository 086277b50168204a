package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"generations": 12, "pattern": "blinker", "use_parallel": true}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Generations != 12 || config.Pattern != "blinker" || !config.UseParallel {
		t.Errorf("unexpected config %+v", config)
	}
	// untouched fields keep their defaults
	if config.Render != "csv" || config.RandomDensity != 0.15 {
		t.Errorf("defaults not preserved: %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		is   error
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			is:   os.ErrNotExist,
		},
		{
			name: "bad json",
			path: func(t *testing.T) string { return writeConfig(t, `{"generations": `) },
		},
		{
			name: "negative generations",
			path: func(t *testing.T) string { return writeConfig(t, `{"generations": -1}`) },
			is:   ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path(t))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"zero generations", func(c *Config) { c.Generations = 0 }, true},
		{"negative rows", func(c *Config) { c.Rows = -1 }, false},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }, false},
		{"negative workers", func(c *Config) { c.Workers = -2 }, false},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			err := config.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestStatsUpdate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stats := &Stats{StartTime: start}

	stats.Update(1, 10, start.Add(100*time.Millisecond))
	if math.Abs(stats.GenerationsPerSecond-10) > 1e-9 {
		t.Errorf("GenerationsPerSecond = %v, want 10", stats.GenerationsPerSecond)
	}

	stats.Update(8, 20, start.Add(2*time.Second))
	if stats.TotalGenerations != 8 || stats.Population != 20 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if math.Abs(stats.AveragePopulation-11) > 1e-9 {
		t.Errorf("AveragePopulation = %v, want 11", stats.AveragePopulation)
	}
	if math.Abs(stats.GenerationsPerSecond-4) > 1e-9 {
		t.Errorf("GenerationsPerSecond = %v, want 4", stats.GenerationsPerSecond)
	}

	// a clock reading at or before the start leaves the rate alone
	stats.Update(9, 20, start)
	if math.Abs(stats.GenerationsPerSecond-4) > 1e-9 {
		t.Errorf("GenerationsPerSecond = %v, want 4", stats.GenerationsPerSecond)
	}
}
