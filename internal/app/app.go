// Package app wires configuration, measurement loading and the spectral
// analysis engine into a batch run over a directory of shots.
package app

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/oes-lab/plasmaspec/internal/loader"
	"github.com/oes-lab/plasmaspec/internal/spectral"
	"github.com/oes-lab/plasmaspec/pkg/config"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	scenarioName   string
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, scenarioName string, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		scenarioName:   scenarioName,
		logger:         logger,
	}
}

// Run analyzes every shot in the configured data directory and writes the
// results CSV. Per-shot failures are logged and skipped; only configuration
// problems abort the run.
func (a *App) Run(ctx context.Context) error {
	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	scenario, err := cfg.FindScenario(a.scenarioName)
	if err != nil {
		return err
	}

	catalog, err := a.loadCatalog(cfg)
	if err != nil {
		return err
	}

	var calibration *loader.Calibration
	if cfg.CalibrationPath != "" {
		calibration, err = loader.LoadCalibration(cfg.CalibrationPath)
		if err != nil {
			return fmt.Errorf("loading calibration: %w", err)
		}
	}

	analyzer, err := spectral.NewAnalyzer(catalog, analyzerParams(scenario))
	if err != nil {
		return fmt.Errorf("building analyzer: %w", err)
	}

	shots, err := loader.ScanShots(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", cfg.DataDir, err)
	}

	runID := uuid.New().String()
	a.logger.Infow("starting analysis run",
		"run_id", runID,
		"scenario", scenario.Name,
		"shots", len(shots),
		"catalog_lines", catalog.Len(),
	)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results, err := a.analyzeShots(ctx, shots, scenario, calibration, analyzer, workers)
	if err != nil {
		return err
	}
	a.logger.Infow("analysis run complete",
		"run_id", runID,
		"analyzed", len(results),
		"skipped", len(shots)-len(results),
	)

	if cfg.OutputDir != "" {
		path, err := WriteResultsCSV(cfg.OutputDir, runID, results)
		if err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		a.logger.Infof("results written to %s", path)
	}
	PrintResults(results)
	return nil
}

// analyzeShots fans the shots out to a worker pool. Spectra are independent,
// so the only shared state is the result slice, index-aligned with shots.
func (a *App) analyzeShots(
	ctx context.Context,
	shots []loader.Shot,
	scenario *config.ScenarioData,
	calibration *loader.Calibration,
	analyzer *spectral.Analyzer,
	workers int,
) ([]Result, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	slots := make([]*Result, len(shots))
	var wg sync.WaitGroup
	for i, shot := range shots {
		if ctx.Err() != nil {
			break
		}
		i, shot := i, shot
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			result, err := a.processShot(shot, scenario, calibration, analyzer)
			if err != nil {
				a.logger.Warnf("shot %d skipped: %v", shot.Number, err)
				return
			}
			slots[i] = result
		})
		if err != nil {
			wg.Done()
			return nil, fmt.Errorf("submitting shot %d: %w", shot.Number, err)
		}
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results, nil
}

func (a *App) processShot(
	shot loader.Shot,
	scenario *config.ScenarioData,
	calibration *loader.Calibration,
	analyzer *spectral.Analyzer,
) (*Result, error) {
	var spectrum *spectral.Spectrum
	var err error
	if calibration != nil {
		spectrum, err = loader.LoadRawSpectrum(shot.SpectrumPath, calibration)
	} else {
		spectrum, err = loader.LoadSpectrum(shot.SpectrumPath)
	}
	if err != nil {
		return nil, err
	}

	// A zero-valued band means the scenario configures no diagnostic gate.
	band := spectral.Band{MinNM: scenario.DiagnosticBand.MinNM, MaxNM: scenario.DiagnosticBand.MaxNM}
	if (band != spectral.Band{}) && !loader.PassesDiagnosticBand(spectrum, band, scenario.MinBandIntensity) {
		return nil, fmt.Errorf("inconclusive measurement: diagnostic band below %v", scenario.MinBandIntensity)
	}

	analysis := analyzer.Analyze(spectrum)
	if analysis.TemperatureErr != nil {
		a.logger.Debugf("shot %d: no temperature: %v", shot.Number, analysis.TemperatureErr)
	}

	result := &Result{
		Shot:     shot.Number,
		Scenario: scenario.Name,
		Analysis: analysis,
	}
	if shot.TagsPath != "" {
		tags, err := loader.LoadTags(shot.TagsPath)
		if err != nil {
			a.logger.Warnf("shot %d: unreadable tags: %v", shot.Number, err)
		} else {
			result.Tags = tags
		}
	}
	return result, nil
}

func (a *App) loadCatalog(cfg *config.ConfigData) (*spectral.Catalog, error) {
	if cfg.CatalogPath == "" {
		return spectral.DefaultCatalog(), nil
	}
	catalog, err := loader.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return catalog, nil
}

// analyzerParams maps a configuration scenario onto engine parameters,
// filling defaults for everything the scenario leaves unset.
func analyzerParams(sc *config.ScenarioData) spectral.Params {
	params := spectral.DefaultParams()
	params.Prominence = sc.Prominence
	if sc.WindowRadius > 0 {
		params.WindowRadius = sc.WindowRadius
	}
	params.Classifier = spectral.ClassifierParams{
		MolecularBand:       spectral.Band{MinNM: sc.MolecularBand.MinNM, MaxNM: sc.MolecularBand.MaxNM},
		AtomicBand:          spectral.Band{MinNM: sc.AtomicBand.MinNM, MaxNM: sc.AtomicBand.MaxNM},
		MaxAssignDistanceNM: sc.AssignToleranceNM,
	}
	if sc.BoltzmannK > 0 {
		params.BoltzmannK = sc.BoltzmannK
	}
	if len(sc.BoltzmannLines) > 0 {
		lines := make(spectral.BoltzmannLineSet, 0, len(sc.BoltzmannLines))
		for _, l := range sc.BoltzmannLines {
			lines = append(lines, spectral.BoltzmannLine{
				WavelengthNM:  l.WavelengthNM,
				G:             l.G,
				EinsteinA:     l.EinsteinA,
				UpperEnergyEV: l.UpperEnergyEV,
			})
		}
		params.Lines = lines
	}
	return params
}
