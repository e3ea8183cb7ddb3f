package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/k-sandesh/edusim/internal/models"
	"github.com/k-sandesh/edusim/internal/sim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "projectile" {
		t.Errorf("expected model projectile, got %s", cfg.Model)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Model = "kepler"
	cfg.Theme = "retro"
	cfg.Params = map[string]float64{"a": 2.0, "e": 0.6}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Model != "kepler" || got.Theme != "retro" {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.Params["e"] != 0.6 {
		t.Errorf("params e = %v, want 0.6", got.Params["e"])
	}
}

func TestLoadRepairsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("model: tide\ndt: -1\nfps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dt != DefaultDt || cfg.FPS != DefaultFPS {
		t.Errorf("bad values not repaired: dt=%v fps=%v", cfg.Dt, cfg.FPS)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyClampsAndSkipsUnknown(t *testing.T) {
	m := models.NewKepler()
	p := sim.NewParams(m.Specs())

	cfg := &Config{Params: map[string]float64{"e": 5.0, "no_such": 1}}
	cfg.Apply(p)

	if got := p.Get("e"); got != 0.95 {
		t.Errorf("e = %v, want clamped to 0.95", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("projectile", "moon")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["gravity"] != 1.62 {
		t.Errorf("expected lunar gravity, got %v", cfg.Params["gravity"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("projectile", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "moon") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("snell")) != 3 {
		t.Error("expected three snell presets")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

// Every preset must reference a registered model and only that model's
// parameter names.
func TestPresetsMatchModels(t *testing.T) {
	reg := models.NewRegistry()
	for modelName, presets := range Presets {
		m, err := reg.Get(modelName)
		if err != nil {
			t.Errorf("preset group %q: %v", modelName, err)
			continue
		}
		known := map[string]bool{}
		for _, spec := range m.Specs() {
			known[spec.Name] = true
		}
		for presetName, cfg := range presets {
			for param := range cfg.Params {
				if !known[param] {
					t.Errorf("%s/%s references unknown parameter %q", modelName, presetName, param)
				}
			}
		}
	}
}
