package spectral

import "errors"

// Params collects the per-scenario tunables for one analysis pass. Every
// threshold lives here rather than in the algorithms; the two measurement
// campaigns ran with different prominence thresholds and region boundaries.
type Params struct {
	Prominence   float64
	WindowRadius int
	Classifier   ClassifierParams
	Lines        BoltzmannLineSet
	BoltzmannK   float64 // eV/K
}

// DefaultParams returns the campaign-A tunables.
func DefaultParams() Params {
	return Params{
		Prominence:   50,
		WindowRadius: 12,
		Classifier:   DefaultClassifierParams(),
		Lines:        DefaultBoltzmannLines(),
		BoltzmannK:   DefaultBoltzmannConstantEVPerK,
	}
}

// Analysis is everything computed from a single spectrum: the classified
// peaks (converged fits only), how many candidates were dropped by fit
// validation, the region balance, and the independent temperature estimate.
// TemperatureErr records why the estimate is invalid when Temperature.Valid
// is false.
type Analysis struct {
	Peaks          []ClassifiedPeak
	RejectedFits   int
	Summary        RegionSummary
	Temperature    BoltzmannResult
	TemperatureErr error
}

// Analyzer runs the peak pipeline and the Boltzmann estimate over spectra.
// It holds only read-only state after construction, so one Analyzer may
// process independent spectra concurrently as long as its Solver is
// reentrant (GonumSolver is).
type Analyzer struct {
	catalog *Catalog
	params  Params
	solver  Solver
	find    PeakFinder
}

// NewAnalyzer validates the configuration and builds an analyzer backed by
// the gonum solver and the built-in peak finder.
func NewAnalyzer(catalog *Catalog, params Params) (*Analyzer, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if err := params.Lines.Validate(); err != nil {
		return nil, err
	}
	if params.BoltzmannK <= 0 {
		return nil, errors.New("spectral: boltzmann constant must be positive")
	}
	return &Analyzer{
		catalog: catalog,
		params:  params,
		solver:  GonumSolver{},
		find:    FindPeaks,
	}, nil
}

// SetSolver replaces the least-squares solver; intended for tests that need
// deterministic or failing solver behavior.
func (a *Analyzer) SetSolver(s Solver) { a.solver = s }

// SetPeakFinder replaces the peak locator; intended for tests.
func (a *Analyzer) SetPeakFinder(f PeakFinder) { a.find = f }

// Analyze runs detect → fit → classify → aggregate plus the temperature
// estimate over one spectrum. Pure function of the spectrum and the
// analyzer's immutable state; per-peak fit failures and per-spectrum
// estimator failures are recorded in the result, never raised.
func (a *Analyzer) Analyze(s *Spectrum) Analysis {
	var out Analysis

	for _, candidate := range LocatePeaks(s, a.find, a.params.Prominence) {
		fitted := FitPeak(s, candidate, a.params.WindowRadius, a.solver)
		if !fitted.Converged {
			out.RejectedFits++
			continue
		}
		out.Peaks = append(out.Peaks, Classify(fitted, a.catalog, a.params.Classifier))
	}
	out.Summary = Aggregate(out.Peaks)

	out.Temperature, out.TemperatureErr = EstimateTemperature(s, a.params.Lines, a.params.BoltzmannK)
	return out
}
