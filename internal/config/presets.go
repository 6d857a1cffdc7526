package config

// Presets are the canonical sweep configurations, keyed model name → preset
// name.
var Presets = map[string]map[string]*Config{
	"morris_thorne": {
		"power_law_n0.5": {
			Model: "morris_thorne", L0: 1.0,
			Shape: "power_law", ShapeParams: map[string]float64{"n": 0.5},
			Redshift: "zero",
		},
		"power_law_n0.8": {
			Model: "morris_thorne", L0: 1.0,
			Shape: "power_law", ShapeParams: map[string]float64{"n": 0.8},
			Redshift: "zero",
		},
		"exponential": {
			Model: "morris_thorne", L0: 1.0,
			Shape: "exponential", ShapeParams: map[string]float64{"lambda_scale": 2.0},
			Redshift: "zero",
		},
		"tanh": {
			Model: "morris_thorne", L0: 1.0,
			Shape: "tanh", ShapeParams: map[string]float64{"sigma": 0.3},
			Redshift: "zero",
		},
		"gaussian_redshift": {
			Model: "morris_thorne", L0: 1.0,
			Shape: "power_law", ShapeParams: map[string]float64{"n": 0.5},
			Redshift: "gaussian_hump", RedshiftParams: map[string]float64{"amplitude": 0.1, "width": 1.0},
		},
	},
	"thin_shell": {
		"default": {
			Model: "thin_shell",
			Shell: ShellConfig{A: 2.0, M: 0.4},
		},
		"wide": {
			Model: "thin_shell",
			Shell: ShellConfig{A: 5.0, M: 1.0},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	out := *cfg
	if out.ANEC == (ANECConfig{}) {
		out.ANEC = DefaultConfig().ANEC
	}
	return &out
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
