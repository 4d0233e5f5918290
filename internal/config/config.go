package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajlab/internal/phys"
	"github.com/san-kum/trajlab/internal/study"
)

const (
	DefaultSpeed    = 50.0
	DefaultAngle    = 45.0
	DefaultMass     = 1.0
	DefaultDrag     = 0.1
	DefaultBaseStep = 0.1
)

type Config struct {
	Speed    float64     `yaml:"speed"`
	Angle    float64     `yaml:"angle"`
	Mass     float64     `yaml:"mass"`
	Drag     float64     `yaml:"drag"`
	BaseStep float64     `yaml:"base_step"`
	Study    StudyConfig `yaml:"study"`
}

// StudyConfig holds the step-series and safety policy. Zero values fall back
// to the package defaults, so a config file only has to name what it changes.
type StudyConfig struct {
	Divisor  float64 `yaml:"divisor"`
	Count    int     `yaml:"count"`
	MinStep  float64 `yaml:"min_step"`
	MaxRange float64 `yaml:"max_range"`
}

func DefaultConfig() *Config {
	return &Config{
		Speed:    DefaultSpeed,
		Angle:    DefaultAngle,
		Mass:     DefaultMass,
		Drag:     DefaultDrag,
		BaseStep: DefaultBaseStep,
		Study: StudyConfig{
			Divisor:  study.DefaultDivisor,
			Count:    study.DefaultCount,
			MinStep:  study.DefaultMinStep,
			MaxRange: phys.DefaultMaxRange,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() phys.Params {
	return phys.Params{
		Speed: c.Speed,
		Angle: c.Angle,
		Mass:  c.Mass,
		Drag:  c.Drag,
	}
}

func (c *Config) Options() study.Options {
	opts := study.DefaultOptions()
	if c.Study.Divisor > 1 {
		opts.Divisor = c.Study.Divisor
	}
	if c.Study.Count > 0 {
		opts.Count = c.Study.Count
	}
	if c.Study.MinStep > 0 {
		opts.MinStep = c.Study.MinStep
	}
	return opts
}

func (c *Config) Integrator() *phys.Integrator {
	integ := phys.New()
	if c.Study.MaxRange > 0 {
		integ.MaxRange = c.Study.MaxRange
	}
	return integ
}
