package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	settings, err := s.loadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	config.DataDir = settings["data_dir"]
	config.CalibrationPath = settings["calibration_path"]
	config.CatalogPath = settings["catalog_path"]
	config.OutputDir = settings["output_dir"]
	if _, err := fmt.Sscanf(settings["workers"], "%d", &config.Workers); err != nil {
		config.Workers = 0
	}

	scenarios, err := s.loadScenarios()
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}
	config.Scenarios = scenarios
	if len(config.Scenarios) == 0 {
		config.Scenarios = BuiltinScenarios()
	}

	return config, nil
}

func (s *SQLiteProvider) loadSettings() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

func (s *SQLiteProvider) loadScenarios() ([]ScenarioData, error) {
	rows, err := s.db.Query(`
		SELECT name, prominence, window_radius,
		       molecular_min_nm, molecular_max_nm,
		       atomic_min_nm, atomic_max_nm,
		       assign_tolerance_nm,
		       diagnostic_min_nm, diagnostic_max_nm,
		       min_band_intensity, boltzmann_k_ev_per_k
		FROM scenarios ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scenarios []ScenarioData
	for rows.Next() {
		var sc ScenarioData
		err := rows.Scan(&sc.Name, &sc.Prominence, &sc.WindowRadius,
			&sc.MolecularBand.MinNM, &sc.MolecularBand.MaxNM,
			&sc.AtomicBand.MinNM, &sc.AtomicBand.MaxNM,
			&sc.AssignToleranceNM,
			&sc.DiagnosticBand.MinNM, &sc.DiagnosticBand.MaxNM,
			&sc.MinBandIntensity, &sc.BoltzmannK)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range scenarios {
		lines, err := s.loadBoltzmannLines(scenarios[i].Name)
		if err != nil {
			return nil, err
		}
		scenarios[i].BoltzmannLines = lines
	}
	return scenarios, nil
}

func (s *SQLiteProvider) loadBoltzmannLines(scenario string) ([]BoltzmannLineData, error) {
	rows, err := s.db.Query(`
		SELECT wavelength_nm, g, einstein_a, upper_energy_ev
		FROM boltzmann_lines WHERE scenario = ? ORDER BY position`, scenario)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []BoltzmannLineData
	for rows.Next() {
		var line BoltzmannLineData
		if err := rows.Scan(&line.WavelengthNM, &line.G, &line.EinsteinA, &line.UpperEnergyEV); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// GetScenario returns one named scenario from the database
func (s *SQLiteProvider) GetScenario(name string) (*ScenarioData, error) {
	config, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	return config.FindScenario(name)
}

// IsReadOnly returns false since SQLite databases support configuration updates
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
