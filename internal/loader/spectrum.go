package loader

import (
	"fmt"
	"strconv"

	"github.com/oes-lab/plasmaspec/internal/spectral"
)

// LoadSpectrum reads a two-column (wavelength, intensity) CSV into a
// Spectrum. A non-numeric first row is treated as a header. The engine
// requires strictly increasing wavelengths and non-negative intensities, so
// both are enforced here.
func LoadSpectrum(path string) (*spectral.Spectrum, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	s := &spectral.Spectrum{}
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("spectrum %s row %d: want 2 columns, got %d", path, i+1, len(row))
		}
		w, werr := strconv.ParseFloat(row[0], 64)
		y, yerr := strconv.ParseFloat(row[1], 64)
		if werr != nil || yerr != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("spectrum %s row %d: non-numeric data", path, i+1)
		}
		s.Wavelengths = append(s.Wavelengths, w)
		s.Intensities = append(s.Intensities, y)
	}

	if err := validateSpectrum(s, path); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadRawSpectrum reads a one-intensity-per-row file recorded in pixel order
// and joins it with the wavelength calibration. The row count must match the
// calibration's pixel count exactly.
func LoadRawSpectrum(path string, calib *Calibration) (*spectral.Spectrum, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var intensities []float64
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		y, err := strconv.ParseFloat(row[len(row)-1], 64)
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("spectrum %s row %d: non-numeric intensity", path, i+1)
		}
		intensities = append(intensities, y)
	}

	if len(intensities) != len(calib.WavelengthsNM) {
		return nil, fmt.Errorf("spectrum %s: %d samples but calibration has %d pixels",
			path, len(intensities), len(calib.WavelengthsNM))
	}

	s := &spectral.Spectrum{
		Wavelengths: append([]float64(nil), calib.WavelengthsNM...),
		Intensities: intensities,
	}
	if err := validateSpectrum(s, path); err != nil {
		return nil, err
	}
	return s, nil
}

func validateSpectrum(s *spectral.Spectrum, path string) error {
	if s.Len() == 0 {
		return fmt.Errorf("spectrum %s is empty", path)
	}
	for i := 0; i < s.Len(); i++ {
		if i > 0 && s.Wavelengths[i] <= s.Wavelengths[i-1] {
			return fmt.Errorf("spectrum %s: wavelengths not strictly increasing at sample %d", path, i)
		}
		if s.Intensities[i] < 0 {
			return fmt.Errorf("spectrum %s: negative intensity at sample %d", path, i)
		}
	}
	return nil
}

// PassesDiagnosticBand reports whether the spectrum's maximum intensity
// inside the band reaches floor. Shots that fail are inconclusive
// measurements and are rejected before analysis.
func PassesDiagnosticBand(s *spectral.Spectrum, band spectral.Band, floor float64) bool {
	max := 0.0
	seen := false
	for i, w := range s.Wavelengths {
		if !band.Contains(w) {
			continue
		}
		if !seen || s.Intensities[i] > max {
			max = s.Intensities[i]
			seen = true
		}
	}
	return seen && max >= floor
}
