package spectral

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultBoltzmannConstantEVPerK is k_B in eV/K.
const DefaultBoltzmannConstantEVPerK = 8.617e-5

// Sentinel errors for the temperature estimator. ErrBadLineSet is a
// configuration error; the rest are recoverable per-spectrum conditions: the
// affected spectrum yields no temperature, and batch processing continues.
var (
	ErrBadLineSet           = errors.New("spectral: boltzmann line set must hold exactly four lines with positive g and A")
	ErrEmptySpectrum        = errors.New("spectral: spectrum holds no samples")
	ErrNonPositiveIntensity = errors.New("spectral: non-positive intensity at a reference line")
	ErrDegenerateSlope      = errors.New("spectral: zero regression slope, temperature undefined")
)

// BoltzmannLine is one reference transition of the four-line set used for
// the Boltzmann plot.
type BoltzmannLine struct {
	WavelengthNM  float64
	G             float64
	EinsteinA     float64
	UpperEnergyEV float64
}

// BoltzmannLineSet is the fixed set of reference lines. Validate enforces
// the exactly-four invariant.
type BoltzmannLineSet []BoltzmannLine

// Validate checks the exactly-4-lines invariant and that every line carries
// positive g and A. A violation is a configuration error, fatal to the run.
func (ls BoltzmannLineSet) Validate() error {
	if len(ls) != 4 {
		return ErrBadLineSet
	}
	for _, l := range ls {
		if l.G <= 0 || l.EinsteinA <= 0 {
			return ErrBadLineSet
		}
	}
	return nil
}

// DefaultBoltzmannLines returns the canonical N2 second-positive reference
// set used for rotational temperature estimation.
func DefaultBoltzmannLines() BoltzmannLineSet {
	return BoltzmannLineSet{
		{WavelengthNM: 337.0, G: 4, EinsteinA: 1.39e7, UpperEnergyEV: 11.03},
		{WavelengthNM: 357.6, G: 6, EinsteinA: 8.88e6, UpperEnergyEV: 11.28},
		{WavelengthNM: 380.4, G: 8, EinsteinA: 3.34e6, UpperEnergyEV: 11.53},
		{WavelengthNM: 405.8, G: 10, EinsteinA: 9.60e5, UpperEnergyEV: 11.78},
	}
}

// BoltzmannResult is the outcome of one Boltzmann-plot fit. Energies and
// LogRatios carry the four plot points for diagnostics even when Valid is
// false because of a degenerate slope; on a reference-line intensity failure
// no points are available.
type BoltzmannResult struct {
	TemperatureK float64
	Energies     []float64
	LogRatios    []float64
	Slope        float64
	Intercept    float64
	Valid        bool
}

// EstimateTemperature performs a Boltzmann-plot temperature fit over the
// spectrum. For each reference line it takes the measured intensity at the
// nearest sampled wavelength, forms ln(I/(g·A)) against the upper-state
// energy, and fits a line by ordinary least squares; the slope yields
// T = -1/(kB·slope).
//
// The intensity gate is all-or-nothing: a single non-positive reference
// intensity invalidates the whole estimate. kB must be positive; pass
// DefaultBoltzmannConstantEVPerK unless the scenario overrides it.
func EstimateTemperature(s *Spectrum, lines BoltzmannLineSet, kB float64) (BoltzmannResult, error) {
	if err := lines.Validate(); err != nil {
		return BoltzmannResult{}, err
	}
	if kB <= 0 {
		return BoltzmannResult{}, ErrBadLineSet
	}
	if s == nil || s.Len() == 0 {
		return BoltzmannResult{}, ErrEmptySpectrum
	}

	energies := make([]float64, len(lines))
	logRatios := make([]float64, len(lines))
	for i, line := range lines {
		intensity := s.Intensities[s.NearestSample(line.WavelengthNM)]
		if intensity <= 0 {
			return BoltzmannResult{}, ErrNonPositiveIntensity
		}
		energies[i] = line.UpperEnergyEV
		logRatios[i] = math.Log(intensity / (line.G * line.EinsteinA))
	}

	intercept, slope := stat.LinearRegression(energies, logRatios, nil, false)

	result := BoltzmannResult{
		Energies:  energies,
		LogRatios: logRatios,
		Slope:     slope,
		Intercept: intercept,
	}
	if slope == 0 {
		return result, ErrDegenerateSlope
	}

	result.TemperatureK = -1 / (kB * slope)
	result.Valid = true
	return result, nil
}
