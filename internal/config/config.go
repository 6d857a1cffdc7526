package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultL0             = 1.0
	DefaultShellRadius    = 2.0
	DefaultShellMass      = 0.4
	DefaultLRangeFactor   = 5.0
	DefaultNGeodesics     = 9
	DefaultRMaxFactor     = 3.0
	DefaultCrossingPoints = 2001
)

// Config describes one analysis run.
type Config struct {
	Model          string             `yaml:"model"` // morris_thorne or thin_shell
	L0             float64            `yaml:"l0"`
	Shape          string             `yaml:"shape"`
	ShapeParams    map[string]float64 `yaml:"shape_params"`
	Redshift       string             `yaml:"redshift"`
	RedshiftParams map[string]float64 `yaml:"redshift_params"`
	Shell          ShellConfig        `yaml:"shell"`
	ANEC           ANECConfig         `yaml:"anec"`
}

// ShellConfig holds thin-shell parameters.
type ShellConfig struct {
	A float64 `yaml:"a"`
	M float64 `yaml:"m"`
}

// ANECConfig holds integration settings for both ANEC modes.
type ANECConfig struct {
	LRangeFactor   float64 `yaml:"l_range_factor"`
	NGeodesics     int     `yaml:"n_geodesics"`
	RMaxFactor     float64 `yaml:"r_max_factor"`
	CrossingPoints int     `yaml:"crossing_points"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    "morris_thorne",
		L0:       DefaultL0,
		Shape:    "power_law",
		Redshift: "zero",
		Shell:    ShellConfig{A: DefaultShellRadius, M: DefaultShellMass},
		ANEC: ANECConfig{
			LRangeFactor:   DefaultLRangeFactor,
			NGeodesics:     DefaultNGeodesics,
			RMaxFactor:     DefaultRMaxFactor,
			CrossingPoints: DefaultCrossingPoints,
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
