// Package loader reads measurement artifacts from disk: wavelength
// calibration tables, per-shot spectra and their process-parameter sidecars,
// and line-catalog CSVs. It validates everything before any of it reaches
// the analysis engine.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Calibration maps detector pixel position to wavelength in nm. It is loaded
// once at startup and shared read-only across all shots.
type Calibration struct {
	WavelengthsNM []float64
}

// LoadCalibration reads a calibration CSV with one wavelength per row
// (pixel order), optionally prefixed by a header line. Wavelengths must be
// strictly increasing.
func LoadCalibration(path string) (*Calibration, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var wavelengths []float64
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		w, err := strconv.ParseFloat(row[len(row)-1], 64)
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("calibration %s row %d: %w", path, i+1, err)
		}
		wavelengths = append(wavelengths, w)
	}
	if len(wavelengths) == 0 {
		return nil, fmt.Errorf("calibration %s holds no wavelengths", path)
	}
	for i := 1; i < len(wavelengths); i++ {
		if wavelengths[i] <= wavelengths[i-1] {
			return nil, fmt.Errorf("calibration %s not strictly increasing at pixel %d", path, i)
		}
	}

	return &Calibration{WavelengthsNM: wavelengths}, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}
