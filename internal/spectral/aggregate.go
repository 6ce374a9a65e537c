package spectral

// RegionSummary is the per-spectrum balance of molecular vs atomic emission.
// Ratio is AtomicSum/MolecularSum; RatioValid is false when the molecular
// sum is zero, which callers must distinguish from a ratio of zero.
type RegionSummary struct {
	MolecularSum float64
	AtomicSum    float64
	Ratio        float64
	RatioValid   bool
	OtherCount   int
}

// Aggregate sums normalized peak areas per region. Peaks outside both bands
// are counted but contribute to neither sum, and peaks without a defined
// normalized area contribute zero.
func Aggregate(peaks []ClassifiedPeak) RegionSummary {
	var summary RegionSummary
	for _, p := range peaks {
		switch p.Region {
		case RegionMolecular:
			summary.MolecularSum += p.NormalizedArea
		case RegionAtomic:
			summary.AtomicSum += p.NormalizedArea
		default:
			summary.OtherCount++
		}
	}
	if summary.MolecularSum != 0 {
		summary.Ratio = summary.AtomicSum / summary.MolecularSum
		summary.RatioValid = true
	}
	return summary
}
