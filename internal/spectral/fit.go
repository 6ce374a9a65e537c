package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// minFitSamples is the smallest window the 4-parameter Gaussian fit accepts.
const minFitSamples = 5

// FittedPeak is the outcome of fitting one candidate peak. When Converged is
// true, Sigma > 0 and Area >= 0; when false, only CenterNM (the candidate
// wavelength) is meaningful.
type FittedPeak struct {
	CenterNM  float64
	Amplitude float64
	Sigma     float64
	Offset    float64
	Area      float64
	Converged bool
}

// Solver minimizes an unconstrained scalar objective starting from init and
// returns the optimal parameter vector. Implementations must be safe for
// concurrent use or constructed per goroutine.
type Solver interface {
	Minimize(objective func(params []float64) float64, init []float64) ([]float64, error)
}

// GonumSolver runs gonum's Nelder-Mead simplex over the objective. The
// iteration cap bounds pathological fits; zero means DefaultMaxIterations.
type GonumSolver struct {
	MaxIterations int
}

// DefaultMaxIterations bounds a single peak fit. Well-conditioned windows
// converge in well under a hundred iterations.
const DefaultMaxIterations = 500

func (g GonumSolver) Minimize(objective func(params []float64) float64, init []float64) ([]float64, error) {
	problem := optimize.Problem{Func: objective}
	maxIter := g.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	// Without an explicit converger the optimizer only stops at the
	// iteration cap, which reports as an error even for clean fits.
	settings := &optimize.Settings{
		MajorIterations: maxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 100,
		},
	}

	result, err := optimize.Minimize(problem, init, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, err
	}
	if err := result.Status.Err(); err != nil {
		return nil, err
	}
	return result.X, nil
}

// FitPeak fits a Gaussian-plus-offset model
//
//	y = amplitude * exp(-0.5*((x-center)/sigma)²) + offset
//
// to a window of 2*windowRadius+1 samples centered on the candidate, clipped
// to the spectrum bounds. The fit is rejected (Converged false) when fewer
// than five samples remain, the solver fails, or the fitted width or height
// is non-positive. Area is the analytic integral of the Gaussian term,
// amplitude*sigma*sqrt(2π), excluding the baseline.
func FitPeak(s *Spectrum, c CandidatePeak, windowRadius int, solver Solver) FittedPeak {
	failed := FittedPeak{CenterNM: c.WavelengthNM}

	lo := c.Index - windowRadius
	if lo < 0 {
		lo = 0
	}
	hi := c.Index + windowRadius
	if hi > s.Len()-1 {
		hi = s.Len() - 1
	}
	if hi-lo+1 < minFitSamples {
		return failed
	}

	x := s.Wavelengths[lo : hi+1]
	y := s.Intensities[lo : hi+1]

	yMin, yMax := floats.Min(y), floats.Max(y)

	init := []float64{
		yMax - yMin,              // amplitude
		c.WavelengthNM,           // center
		(x[len(x)-1] - x[0]) / 6, // sigma
		yMin,                     // offset
	}

	objective := func(p []float64) float64 {
		amp, center, sigma, offset := p[0], p[1], p[2], p[3]
		if sigma == 0 {
			return math.Inf(1)
		}
		var sse float64
		for i := range x {
			t := (x[i] - center) / sigma
			r := amp*math.Exp(-0.5*t*t) + offset - y[i]
			sse += r * r
		}
		return sse
	}

	p, err := solver.Minimize(objective, init)
	if err != nil {
		return failed
	}

	amp, center, sigma, offset := p[0], p[1], p[2], p[3]
	if sigma <= 0 || amp <= 0 {
		return failed
	}

	return FittedPeak{
		CenterNM:  center,
		Amplitude: amp,
		Sigma:     sigma,
		Offset:    offset,
		Area:      GaussianArea(amp, sigma),
		Converged: true,
	}
}

// GaussianArea is the analytic integral of a baseline-free Gaussian.
func GaussianArea(amplitude, sigma float64) float64 {
	return amplitude * sigma * math.Sqrt(2*math.Pi)
}
