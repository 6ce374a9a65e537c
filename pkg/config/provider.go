package config

import "fmt"

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// GetScenario returns one named scenario
	GetScenario(name string) (*ScenarioData, error)

	// Configuration management
	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	DataDir         string         `json:"data_dir"`
	CalibrationPath string         `json:"calibration_path,omitempty"`
	CatalogPath     string         `json:"catalog_path,omitempty"`
	OutputDir       string         `json:"output_dir,omitempty"`
	Workers         int            `json:"workers,omitempty"`
	Scenarios       []ScenarioData `json:"scenarios"`
}

// ScenarioData holds the tunables for one measurement campaign. The two
// historical campaigns disagreed on the molecular upper bound and the
// prominence threshold, so none of this is hard-coded anywhere.
type ScenarioData struct {
	Name              string              `json:"name"`
	Prominence        float64             `json:"prominence"`
	WindowRadius      int                 `json:"window_radius"`
	MolecularBand     BandData            `json:"molecular_band"`
	AtomicBand        BandData            `json:"atomic_band"`
	AssignToleranceNM float64             `json:"assign_tolerance_nm,omitempty"`
	DiagnosticBand    BandData            `json:"diagnostic_band"`
	MinBandIntensity  float64             `json:"min_band_intensity"`
	BoltzmannK        float64             `json:"boltzmann_k_ev_per_k,omitempty"`
	BoltzmannLines    []BoltzmannLineData `json:"boltzmann_lines"`
}

// BandData is a closed wavelength interval in nm
type BandData struct {
	MinNM float64 `json:"min_nm"`
	MaxNM float64 `json:"max_nm"`
}

// BoltzmannLineData is one reference transition of the four-line set
type BoltzmannLineData struct {
	WavelengthNM  float64 `json:"wavelength_nm"`
	G             float64 `json:"g"`
	EinsteinA     float64 `json:"einstein_a"`
	UpperEnergyEV float64 `json:"upper_energy_ev"`
}

// FindScenario looks a scenario up by name in already-loaded config data.
// An empty name selects the first scenario.
func (c *ConfigData) FindScenario(name string) (*ScenarioData, error) {
	if len(c.Scenarios) == 0 {
		return nil, fmt.Errorf("configuration defines no scenarios")
	}
	if name == "" {
		return &c.Scenarios[0], nil
	}
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found in configuration", name)
}

// defaultBoltzmannLines is the canonical N2 second-positive reference set.
func defaultBoltzmannLines() []BoltzmannLineData {
	return []BoltzmannLineData{
		{WavelengthNM: 337.0, G: 4, EinsteinA: 1.39e7, UpperEnergyEV: 11.03},
		{WavelengthNM: 357.6, G: 6, EinsteinA: 8.88e6, UpperEnergyEV: 11.28},
		{WavelengthNM: 380.4, G: 8, EinsteinA: 3.34e6, UpperEnergyEV: 11.53},
		{WavelengthNM: 405.8, G: 10, EinsteinA: 9.60e5, UpperEnergyEV: 11.78},
	}
}

// BuiltinScenarios returns the two historical measurement-campaign presets,
// used when a configuration file defines no scenarios of its own.
func BuiltinScenarios() []ScenarioData {
	return []ScenarioData{
		{
			Name:             "campaign-a",
			Prominence:       50,
			WindowRadius:     12,
			MolecularBand:    BandData{MinNM: 200, MaxNM: 550},
			AtomicBand:       BandData{MinNM: 700, MaxNM: 900},
			DiagnosticBand:   BandData{MinNM: 300, MaxNM: 400},
			MinBandIntensity: 100,
			BoltzmannLines:   defaultBoltzmannLines(),
		},
		{
			Name:             "campaign-b",
			Prominence:       200,
			WindowRadius:     12,
			MolecularBand:    BandData{MinNM: 200, MaxNM: 700},
			AtomicBand:       BandData{MinNM: 700, MaxNM: 900},
			DiagnosticBand:   BandData{MinNM: 300, MaxNM: 400},
			MinBandIntensity: 100,
			BoltzmannLines:   defaultBoltzmannLines(),
		},
	}
}
