package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		DataDir         string `yaml:"data_dir"`
		CalibrationPath string `yaml:"calibration_path,omitempty"`
		CatalogPath     string `yaml:"catalog_path,omitempty"`
		OutputDir       string `yaml:"output_dir,omitempty"`
		Workers         int    `yaml:"workers,omitempty"`
		Scenarios       []struct {
			Name          string  `yaml:"name"`
			Prominence    float64 `yaml:"prominence"`
			WindowRadius  int     `yaml:"window_radius"`
			MolecularBand struct {
				MinNM float64 `yaml:"min_nm"`
				MaxNM float64 `yaml:"max_nm"`
			} `yaml:"molecular_band"`
			AtomicBand struct {
				MinNM float64 `yaml:"min_nm"`
				MaxNM float64 `yaml:"max_nm"`
			} `yaml:"atomic_band"`
			AssignToleranceNM float64 `yaml:"assign_tolerance_nm,omitempty"`
			DiagnosticBand    struct {
				MinNM float64 `yaml:"min_nm"`
				MaxNM float64 `yaml:"max_nm"`
			} `yaml:"diagnostic_band"`
			MinBandIntensity float64 `yaml:"min_band_intensity"`
			BoltzmannK       float64 `yaml:"boltzmann_k_ev_per_k,omitempty"`
			BoltzmannLines   []struct {
				WavelengthNM  float64 `yaml:"wavelength_nm"`
				G             float64 `yaml:"g"`
				EinsteinA     float64 `yaml:"einstein_a"`
				UpperEnergyEV float64 `yaml:"upper_energy_ev"`
			} `yaml:"boltzmann_lines"`
		} `yaml:"scenarios"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	config := &ConfigData{
		DataDir:         yamlConfig.DataDir,
		CalibrationPath: yamlConfig.CalibrationPath,
		CatalogPath:     yamlConfig.CatalogPath,
		OutputDir:       yamlConfig.OutputDir,
		Workers:         yamlConfig.Workers,
	}

	for _, sc := range yamlConfig.Scenarios {
		scenario := ScenarioData{
			Name:              sc.Name,
			Prominence:        sc.Prominence,
			WindowRadius:      sc.WindowRadius,
			MolecularBand:     BandData{MinNM: sc.MolecularBand.MinNM, MaxNM: sc.MolecularBand.MaxNM},
			AtomicBand:        BandData{MinNM: sc.AtomicBand.MinNM, MaxNM: sc.AtomicBand.MaxNM},
			AssignToleranceNM: sc.AssignToleranceNM,
			DiagnosticBand:    BandData{MinNM: sc.DiagnosticBand.MinNM, MaxNM: sc.DiagnosticBand.MaxNM},
			MinBandIntensity:  sc.MinBandIntensity,
			BoltzmannK:        sc.BoltzmannK,
		}
		for _, line := range sc.BoltzmannLines {
			scenario.BoltzmannLines = append(scenario.BoltzmannLines, BoltzmannLineData{
				WavelengthNM:  line.WavelengthNM,
				G:             line.G,
				EinsteinA:     line.EinsteinA,
				UpperEnergyEV: line.UpperEnergyEV,
			})
		}
		config.Scenarios = append(config.Scenarios, scenario)
	}

	// Configurations without scenarios fall back to the built-in campaign
	// presets.
	if len(config.Scenarios) == 0 {
		config.Scenarios = BuiltinScenarios()
	}

	y.config = config
	return config, nil
}

// GetScenario returns one named scenario from the loaded configuration
func (y *YAMLProvider) GetScenario(name string) (*ScenarioData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return y.config.FindScenario(name)
}

// IsReadOnly returns true since YAML files are read-only configuration sources
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML providers
func (y *YAMLProvider) Close() error {
	return nil
}
