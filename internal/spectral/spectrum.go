// Package spectral implements peak analysis and Boltzmann-plot temperature
// estimation for pulsed-plasma optical emission spectra.
package spectral

import "sort"

// Spectrum is a single calibrated emission measurement: parallel wavelength
// and intensity samples. Wavelengths must be strictly increasing; loaders are
// responsible for validating that before a Spectrum reaches this package.
// A Spectrum is never mutated here, so the same instance may be analyzed
// concurrently.
type Spectrum struct {
	Wavelengths []float64
	Intensities []float64
}

// Len returns the number of samples.
func (s *Spectrum) Len() int {
	return len(s.Wavelengths)
}

// NearestSample returns the index of the sample whose wavelength is closest
// to target. Ties between two adjacent samples resolve to the lower
// wavelength.
func (s *Spectrum) NearestSample(target float64) int {
	n := len(s.Wavelengths)
	i := sort.SearchFloat64s(s.Wavelengths, target)
	if i == 0 {
		return 0
	}
	if i == n {
		return n - 1
	}
	if target-s.Wavelengths[i-1] <= s.Wavelengths[i]-target {
		return i - 1
	}
	return i
}
