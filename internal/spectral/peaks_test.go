package spectral

import (
	"reflect"
	"testing"
)

func TestFindPeaks(t *testing.T) {
	tests := []struct {
		name          string
		y             []float64
		minProminence float64
		expected      []int
	}{
		{
			name:          "empty series",
			y:             nil,
			minProminence: 1,
			expected:      nil,
		},
		{
			name:          "monotonic has no peaks",
			y:             []float64{1, 2, 3, 4, 5},
			minProminence: 0,
			expected:      nil,
		},
		{
			name:          "single peak",
			y:             []float64{0, 1, 5, 1, 0},
			minProminence: 1,
			expected:      []int{2},
		},
		{
			name:          "edges never qualify",
			y:             []float64{9, 1, 0, 1, 9},
			minProminence: 0,
			expected:      nil,
		},
		{
			name:          "two peaks ordered by position",
			y:             []float64{0, 4, 0, 0, 7, 0},
			minProminence: 1,
			expected:      []int{1, 4},
		},
		{
			name:          "prominence filters shallow bump",
			y:             []float64{0, 10, 8, 9, 0},
			minProminence: 2,
			expected:      []int{1},
		},
		{
			name:          "shallow bump passes lower threshold",
			y:             []float64{0, 10, 8, 9, 0},
			minProminence: 1,
			expected:      []int{1, 3},
		},
		{
			name:          "plateau reports middle sample",
			y:             []float64{0, 5, 5, 5, 0},
			minProminence: 1,
			expected:      []int{2},
		},
		{
			name:          "threshold is inclusive",
			y:             []float64{0, 3, 0},
			minProminence: 3,
			expected:      []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPeaks(tt.y, tt.minProminence)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("FindPeaks(%v, %v) = %v, want %v", tt.y, tt.minProminence, got, tt.expected)
			}
		})
	}
}

func TestLocatePeaks(t *testing.T) {
	s := &Spectrum{
		Wavelengths: []float64{300, 301, 302, 303, 304},
		Intensities: []float64{0, 1, 5, 1, 0},
	}

	candidates := LocatePeaks(s, FindPeaks, 1)
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	c := candidates[0]
	if c.Index != 2 || c.WavelengthNM != 302 || c.Intensity != 5 {
		t.Errorf("unexpected candidate %+v", c)
	}
}

func TestLocatePeaksEmptyResult(t *testing.T) {
	s := &Spectrum{
		Wavelengths: []float64{300, 301, 302},
		Intensities: []float64{1, 1, 1},
	}
	if got := LocatePeaks(s, FindPeaks, 1); len(got) != 0 {
		t.Errorf("expected no candidates on a flat series, got %v", got)
	}
}
