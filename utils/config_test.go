package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-glider/model"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"size": 32, "iterations": 7, "use_parallel": true, "frame_rate": 1000000}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Size != 32 || config.Iterations != 7 || !config.UseParallel {
		t.Fatalf("config = %+v", config)
	}
	if config.FrameRate != time.Millisecond {
		t.Fatalf("FrameRate = %v, want 1ms", config.FrameRate)
	}
	// untouched fields keep their defaults
	if config.HistorySize != DefaultConfig().HistorySize || !config.UseMemoryPool {
		t.Fatalf("defaults lost: %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file err = %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{size:"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	config := DefaultConfig()
	config.Size = 0
	if err := config.Validate(); !errors.Is(err, model.ErrInvalidSize) {
		t.Fatalf("size 0: err = %v", err)
	}

	config = DefaultConfig()
	config.Iterations = -1
	if err := config.Validate(); !errors.Is(err, ErrInvalidIterations) {
		t.Fatalf("iterations -1: err = %v", err)
	}

	config = DefaultConfig()
	config.FrameRate = -time.Second
	if err := config.Validate(); err == nil {
		t.Fatal("negative frame rate accepted")
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 10, 500*time.Millisecond)
	if s.AveragePopulation != 10 || s.GenerationsPerSecond != 2 {
		t.Fatalf("stats = %+v", s)
	}
	s.Update(2, 20, 0)
	if s.AveragePopulation != 11 || s.TotalGenerations != 2 || s.ActiveCells != 20 {
		t.Fatalf("stats = %+v", s)
	}
}
