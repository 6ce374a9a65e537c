package spectral

import (
	"errors"
	"math"
	"testing"
)

// fixedSolver ignores the objective and returns canned parameters, so the
// post-fit validation paths can be exercised without a real solver.
type fixedSolver struct {
	params []float64
	err    error
}

func (f fixedSolver) Minimize(_ func([]float64) float64, _ []float64) ([]float64, error) {
	return f.params, f.err
}

func TestGaussianArea(t *testing.T) {
	got := GaussianArea(10, 2)
	want := 10 * 2 * math.Sqrt(2*math.Pi) // ≈ 50.133
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("GaussianArea(10, 2) = %v, want %v", got, want)
	}
	if math.Abs(got-50.133) > 0.001 {
		t.Errorf("GaussianArea(10, 2) = %v, want ≈ 50.133", got)
	}
}

func TestGonumSolverConvergesOnQuadratic(t *testing.T) {
	// A well-conditioned objective must terminate by convergence, well
	// inside the iteration cap, and not report the cap as an error.
	objective := func(p []float64) float64 {
		d0, d1 := p[0]-3, p[1]+2
		return d0*d0 + d1*d1
	}

	p, err := GonumSolver{}.Minimize(objective, []float64{0, 0})
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if math.Abs(p[0]-3) > 1e-4 || math.Abs(p[1]+2) > 1e-4 {
		t.Errorf("minimum = %v, want (3, -2)", p)
	}
}

func TestFitPeakRecoversSyntheticGaussian(t *testing.T) {
	const (
		amplitude = 1000.0
		center    = 750.0
		sigma     = 1.5
		offset    = 10.0
	)
	s := gaussianSpectrum(740, 0.5, 41, amplitude, center, sigma, offset)

	candidate := CandidatePeak{
		Index:        s.NearestSample(center),
		WavelengthNM: center,
		Intensity:    s.Intensities[s.NearestSample(center)],
	}

	fitted := FitPeak(s, candidate, 12, GonumSolver{})
	if !fitted.Converged {
		t.Fatal("fit did not converge on a clean synthetic Gaussian")
	}
	if math.Abs(fitted.Amplitude-amplitude) > 0.05*amplitude {
		t.Errorf("amplitude = %v, want %v ± 5%%", fitted.Amplitude, amplitude)
	}
	if math.Abs(fitted.Sigma-sigma) > 0.05*sigma {
		t.Errorf("sigma = %v, want %v ± 5%%", fitted.Sigma, sigma)
	}
	if math.Abs(fitted.CenterNM-center) > 0.1 {
		t.Errorf("center = %v, want %v ± 0.1", fitted.CenterNM, center)
	}
	wantArea := GaussianArea(fitted.Amplitude, fitted.Sigma)
	if fitted.Area != wantArea {
		t.Errorf("area = %v, want %v", fitted.Area, wantArea)
	}
}

func TestFitPeakClippedWindowStillFits(t *testing.T) {
	// Peak two samples from the array edge: the window is clipped but still
	// holds enough samples, so the fit must be attempted rather than dropped.
	s := gaussianSpectrum(749, 0.5, 30, 500, 750, 1.0, 5)
	candidate := CandidatePeak{Index: 2, WavelengthNM: s.Wavelengths[2], Intensity: s.Intensities[2]}

	fitted := FitPeak(s, candidate, 12, GonumSolver{})
	if !fitted.Converged {
		t.Fatal("clipped-window fit should still converge")
	}
}

func TestFitPeakRejections(t *testing.T) {
	s := gaussianSpectrum(740, 0.5, 41, 1000, 750, 1.5, 10)
	mid := CandidatePeak{Index: 20, WavelengthNM: s.Wavelengths[20], Intensity: s.Intensities[20]}

	tests := []struct {
		name      string
		spectrum  *Spectrum
		candidate CandidatePeak
		radius    int
		solver    Solver
	}{
		{
			name:     "window smaller than five samples",
			spectrum: s,
			candidate: CandidatePeak{
				Index: 0, WavelengthNM: s.Wavelengths[0], Intensity: s.Intensities[0],
			},
			radius: 1, // clipped window is 2 samples
			solver: GonumSolver{},
		},
		{
			name:      "solver error",
			spectrum:  s,
			candidate: mid,
			radius:    12,
			solver:    fixedSolver{err: errors.New("no convergence")},
		},
		{
			name:      "non-positive fitted sigma",
			spectrum:  s,
			candidate: mid,
			radius:    12,
			solver:    fixedSolver{params: []float64{1000, 750, -1.5, 10}},
		},
		{
			name:      "non-positive fitted amplitude",
			spectrum:  s,
			candidate: mid,
			radius:    12,
			solver:    fixedSolver{params: []float64{-100, 750, 1.5, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fitted := FitPeak(tt.spectrum, tt.candidate, tt.radius, tt.solver)
			if fitted.Converged {
				t.Error("expected fit rejection")
			}
			if fitted.CenterNM != tt.candidate.WavelengthNM {
				t.Errorf("rejected fit should keep candidate wavelength, got %v", fitted.CenterNM)
			}
		})
	}
}

func TestFitPeakUsesFixedSolverParameters(t *testing.T) {
	s := gaussianSpectrum(740, 0.5, 41, 1000, 750, 1.5, 10)
	candidate := CandidatePeak{Index: 20, WavelengthNM: 750, Intensity: s.Intensities[20]}

	fitted := FitPeak(s, candidate, 12, fixedSolver{params: []float64{10, 750.2, 2, 1}})
	if !fitted.Converged {
		t.Fatal("expected converged fit")
	}
	want := GaussianArea(10, 2)
	if math.Abs(fitted.Area-want) > 1e-9 {
		t.Errorf("area = %v, want %v", fitted.Area, want)
	}
	if fitted.CenterNM != 750.2 {
		t.Errorf("center = %v, want 750.2", fitted.CenterNM)
	}
}
