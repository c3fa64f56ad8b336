package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-glider/model"
)

// Config holds the configuration for a simulation run
type Config struct {
	Size             int           `json:"size"`
	Iterations       int           `json:"iterations"`
	FrameRate        time.Duration `json:"frame_rate"`
	UseParallel      bool          `json:"use_parallel"`
	Workers          int           `json:"workers"`
	UseMemoryPool    bool          `json:"use_memory_pool"`
	StopWhenStagnant bool          `json:"stop_when_stagnant"`
	HistorySize      int           `json:"history_size"`
}

// ErrInvalidIterations is returned for a non-positive iteration count
var ErrInvalidIterations = errors.New("iterations must be positive")

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:             20,
		Iterations:       10,
		FrameRate:        0,
		UseParallel:      false,
		Workers:          0, // one per CPU
		UseMemoryPool:    true,
		StopWhenStagnant: false,
		HistorySize:      5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values the simulation cannot run without
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Wrapf(model.ErrInvalidSize, "[Validate] size: %d", c.Size)
	}
	if c.Iterations <= 0 {
		return errors.Wrapf(ErrInvalidIterations, "[Validate] iterations: %d", c.Iterations)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative: %v", c.FrameRate)
	}
	return nil
}
