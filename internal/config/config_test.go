package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "morris_thorne" {
		t.Errorf("expected model morris_thorne, got %s", cfg.Model)
	}
	if cfg.L0 != DefaultL0 {
		t.Errorf("expected l0 %g, got %g", DefaultL0, cfg.L0)
	}
	if cfg.Shape != "power_law" || cfg.Redshift != "zero" {
		t.Errorf("unexpected defaults: %s/%s", cfg.Shape, cfg.Redshift)
	}
	if cfg.ANEC.CrossingPoints != DefaultCrossingPoints {
		t.Errorf("expected %d crossing points, got %d", DefaultCrossingPoints, cfg.ANEC.CrossingPoints)
	}
	if cfg.Shell.A != DefaultShellRadius || cfg.Shell.M != DefaultShellMass {
		t.Errorf("unexpected shell defaults: %v", cfg.Shell)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("morris_thorne", "power_law_n0.5")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.ShapeParams["n"] != 0.5 {
		t.Errorf("expected n=0.5, got %g", cfg.ShapeParams["n"])
	}
	if cfg.ANEC.CrossingPoints == 0 {
		t.Error("preset should fill ANEC defaults")
	}
}

func TestGetPresetCopies(t *testing.T) {
	a := GetPreset("morris_thorne", "tanh")
	b := GetPreset("morris_thorne", "tanh")
	a.L0 = 99
	if b.L0 == 99 {
		t.Error("presets must not share state between calls")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("morris_thorne", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "tanh"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("morris_thorne")
	if len(presets) == 0 {
		t.Error("expected presets for morris_thorne")
	}

	presets = ListPresets("thin_shell")
	if len(presets) != 2 {
		t.Errorf("expected 2 thin_shell presets, got %d", len(presets))
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.L0 = 2.5
	cfg.Shape = "exponential"
	cfg.ShapeParams = map[string]float64{"lambda_scale": 3.0}
	cfg.ANEC.NGeodesics = 5

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.L0 != 2.5 || loaded.Shape != "exponential" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.ShapeParams["lambda_scale"] != 3.0 {
		t.Errorf("round trip lost shape params: %v", loaded.ShapeParams)
	}
	if loaded.ANEC.NGeodesics != 5 {
		t.Errorf("round trip lost anec settings: %+v", loaded.ANEC)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
