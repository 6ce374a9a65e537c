package spectral

import (
	"math"
	"testing"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name          string
		peaks         []ClassifiedPeak
		wantMolecular float64
		wantAtomic    float64
		wantRatio     float64
		wantValid     bool
		wantOther     int
	}{
		{
			name:      "no peaks",
			peaks:     nil,
			wantValid: false,
		},
		{
			name: "both regions populated",
			peaks: []ClassifiedPeak{
				{Region: RegionMolecular, NormalizedArea: 2, Normalized: true},
				{Region: RegionMolecular, NormalizedArea: 3, Normalized: true},
				{Region: RegionAtomic, NormalizedArea: 10, Normalized: true},
			},
			wantMolecular: 5,
			wantAtomic:    10,
			wantRatio:     2,
			wantValid:     true,
		},
		{
			name: "zero molecular sum leaves ratio undefined",
			peaks: []ClassifiedPeak{
				{Region: RegionAtomic, NormalizedArea: 10, Normalized: true},
			},
			wantAtomic: 10,
			wantValid:  false,
		},
		{
			name: "other peaks excluded from both sums",
			peaks: []ClassifiedPeak{
				{Region: RegionMolecular, NormalizedArea: 4, Normalized: true},
				{Region: RegionOther, NormalizedArea: 99, Normalized: true},
			},
			wantMolecular: 4,
			wantRatio:     0,
			wantValid:     true,
			wantOther:     1,
		},
		{
			name: "undefined normalized area counts as zero",
			peaks: []ClassifiedPeak{
				{Region: RegionMolecular, NormalizedArea: 4, Normalized: true},
				{Region: RegionMolecular, Normalized: false},
			},
			wantMolecular: 4,
			wantRatio:     0,
			wantValid:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.peaks)
			if math.Abs(got.MolecularSum-tt.wantMolecular) > 1e-12 {
				t.Errorf("molecular sum = %v, want %v", got.MolecularSum, tt.wantMolecular)
			}
			if math.Abs(got.AtomicSum-tt.wantAtomic) > 1e-12 {
				t.Errorf("atomic sum = %v, want %v", got.AtomicSum, tt.wantAtomic)
			}
			if got.RatioValid != tt.wantValid {
				t.Fatalf("ratio valid = %v, want %v", got.RatioValid, tt.wantValid)
			}
			if got.RatioValid && math.Abs(got.Ratio-tt.wantRatio) > 1e-12 {
				t.Errorf("ratio = %v, want %v", got.Ratio, tt.wantRatio)
			}
			if !got.RatioValid && got.Ratio != 0 {
				t.Errorf("undefined ratio must not carry a value, got %v", got.Ratio)
			}
			if got.OtherCount != tt.wantOther {
				t.Errorf("other count = %d, want %d", got.OtherCount, tt.wantOther)
			}
		})
	}
}
