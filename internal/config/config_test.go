package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/trajlab/internal/study"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Speed != 50 {
		t.Errorf("expected speed 50, got %f", cfg.Speed)
	}
	if cfg.BaseStep <= 0 {
		t.Error("base step should be positive")
	}
	if cfg.Study.Divisor != study.DefaultDivisor {
		t.Errorf("expected divisor %f, got %f", study.DefaultDivisor, cfg.Study.Divisor)
	}
	if cfg.Study.MaxRange != 30000 {
		t.Errorf("expected max range 30000, got %f", cfg.Study.MaxRange)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Angle = 60
	cfg.Drag = 0.25

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Angle != 60 {
		t.Errorf("expected angle 60, got %f", loaded.Angle)
	}
	if loaded.Drag != 0.25 {
		t.Errorf("expected drag 0.25, got %f", loaded.Drag)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("angle: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Angle != 30 {
		t.Errorf("expected angle 30, got %f", cfg.Angle)
	}
	if cfg.Speed != DefaultSpeed {
		t.Errorf("expected default speed, got %f", cfg.Speed)
	}
}

func TestOptionsFallBackToDefaults(t *testing.T) {
	cfg := &Config{}
	opts := cfg.Options()

	if opts.Divisor != study.DefaultDivisor {
		t.Errorf("expected default divisor, got %f", opts.Divisor)
	}
	if opts.Count != study.DefaultCount {
		t.Errorf("expected default count, got %d", opts.Count)
	}
	if opts.MinStep != study.DefaultMinStep {
		t.Errorf("expected default min step, got %g", opts.MinStep)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("reference")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Speed != 50 || cfg.Angle != 45 || cfg.Drag != 0.1 {
		t.Errorf("reference preset mismatch: %+v", cfg)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}
