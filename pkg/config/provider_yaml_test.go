package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
data_dir: /data/run42
calibration_path: /data/calib.csv
output_dir: /data/out
workers: 4
scenarios:
  - name: campaign-a
    prominence: 50
    window_radius: 12
    molecular_band: {min_nm: 200, max_nm: 550}
    atomic_band: {min_nm: 700, max_nm: 900}
    diagnostic_band: {min_nm: 300, max_nm: 400}
    min_band_intensity: 100
    boltzmann_lines:
      - {wavelength_nm: 337.0, g: 4, einstein_a: 1.39e+7, upper_energy_ev: 11.03}
      - {wavelength_nm: 357.6, g: 6, einstein_a: 8.88e+6, upper_energy_ev: 11.28}
      - {wavelength_nm: 380.4, g: 8, einstein_a: 3.34e+6, upper_energy_ev: 11.53}
      - {wavelength_nm: 405.8, g: 10, einstein_a: 9.60e+5, upper_energy_ev: 11.78}
  - name: campaign-b
    prominence: 200
    window_radius: 10
    molecular_band: {min_nm: 200, max_nm: 700}
    atomic_band: {min_nm: 700, max_nm: 900}
    assign_tolerance_nm: 2.5
    diagnostic_band: {min_nm: 300, max_nm: 400}
    min_band_intensity: 150
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestYAMLProviderLoadConfig(t *testing.T) {
	provider := NewYAMLProvider(writeConfig(t, sampleYAML))
	defer provider.Close()

	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.DataDir != "/data/run42" {
		t.Errorf("data dir = %q", cfg.DataDir)
	}
	if cfg.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Workers)
	}
	if len(cfg.Scenarios) != 2 {
		t.Fatalf("scenarios = %d, want 2", len(cfg.Scenarios))
	}

	a := cfg.Scenarios[0]
	if a.Prominence != 50 || a.MolecularBand.MaxNM != 550 {
		t.Errorf("campaign-a loaded wrong: %+v", a)
	}
	if len(a.BoltzmannLines) != 4 {
		t.Fatalf("campaign-a boltzmann lines = %d, want 4", len(a.BoltzmannLines))
	}
	if a.BoltzmannLines[0].WavelengthNM != 337.0 || a.BoltzmannLines[0].EinsteinA != 1.39e7 {
		t.Errorf("first boltzmann line loaded wrong: %+v", a.BoltzmannLines[0])
	}

	b := cfg.Scenarios[1]
	if b.Prominence != 200 || b.MolecularBand.MaxNM != 700 || b.AssignToleranceNM != 2.5 {
		t.Errorf("campaign-b loaded wrong: %+v", b)
	}
}

func TestYAMLProviderGetScenario(t *testing.T) {
	provider := NewYAMLProvider(writeConfig(t, sampleYAML))
	defer provider.Close()

	sc, err := provider.GetScenario("campaign-b")
	if err != nil {
		t.Fatalf("GetScenario: %v", err)
	}
	if sc.Name != "campaign-b" {
		t.Errorf("got scenario %q", sc.Name)
	}

	// Empty name selects the first scenario.
	sc, err = provider.GetScenario("")
	if err != nil {
		t.Fatalf("GetScenario: %v", err)
	}
	if sc.Name != "campaign-a" {
		t.Errorf("empty name should select the first scenario, got %q", sc.Name)
	}

	if _, err := provider.GetScenario("no-such-campaign"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestYAMLProviderBuiltinFallback(t *testing.T) {
	provider := NewYAMLProvider(writeConfig(t, "data_dir: /data/run42\n"))
	defer provider.Close()

	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Scenarios) != 2 {
		t.Fatalf("expected builtin campaign presets, got %d scenarios", len(cfg.Scenarios))
	}
	if cfg.Scenarios[0].Name != "campaign-a" || cfg.Scenarios[1].Name != "campaign-b" {
		t.Errorf("unexpected preset names %q, %q", cfg.Scenarios[0].Name, cfg.Scenarios[1].Name)
	}
	if cfg.Scenarios[0].MolecularBand.MaxNM == cfg.Scenarios[1].MolecularBand.MaxNM {
		t.Error("the two campaign presets must differ in molecular boundary")
	}
}

func TestYAMLProviderMissingFile(t *testing.T) {
	provider := NewYAMLProvider(filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := provider.LoadConfig(); err == nil {
		t.Error("expected error for missing config file")
	}
}
