package config

var Presets = map[string]*Config{
	// Convergence table for this scenario is pinned by the integrator tests.
	"reference": {
		Speed: 50, Angle: 45, Mass: 1.0, Drag: 0.1, BaseStep: 0.1,
	},
	"vacuum": {
		Speed: 50, Angle: 45, Mass: 1.0, Drag: 0, BaseStep: 0.1,
	},
	"mortar": {
		Speed: 70, Angle: 80, Mass: 4.0, Drag: 0.05, BaseStep: 0.1,
	},
	"heavy_drag": {
		Speed: 100, Angle: 30, Mass: 0.5, Drag: 0.8, BaseStep: 0.05,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
