package spectral

import "math"

// CandidatePeak is a detected local maximum, prior to fitting.
type CandidatePeak struct {
	Index        int
	WavelengthNM float64
	Intensity    float64
}

// PeakFinder locates local maxima in an intensity series whose prominence is
// at least minProminence, returning their indices in ascending order. It
// exists as a type so tests can substitute a deterministic stand-in for the
// real finder.
type PeakFinder func(intensities []float64, minProminence float64) []int

// FindPeaks finds local maxima and filters them by prominence
// (scipy.signal.find_peaks compatible for the prominence criterion).
// Prominence is measured down to the higher of the two base minima, where
// each base is the lowest point between the peak and the nearest
// higher-or-boundary sample on that side. Plateau maxima report their middle
// sample. Series edges never qualify.
func FindPeaks(y []float64, minProminence float64) []int {
	var peaks []int
	n := len(y)

	i := 1
	for i < n-1 {
		if y[i] <= y[i-1] {
			i++
			continue
		}
		// Possible peak or leading edge of a plateau; find the plateau end.
		j := i
		for j < n-1 && y[j+1] == y[i] {
			j++
		}
		if j < n-1 && y[j+1] < y[i] {
			mid := (i + j) / 2
			if prominence(y, mid) >= minProminence {
				peaks = append(peaks, mid)
			}
		}
		i = j + 1
	}
	return peaks
}

func prominence(y []float64, p int) float64 {
	leftMin := y[p]
	for i := p - 1; i >= 0; i-- {
		if y[i] > y[p] {
			break
		}
		if y[i] < leftMin {
			leftMin = y[i]
		}
	}

	rightMin := y[p]
	for i := p + 1; i < len(y); i++ {
		if y[i] > y[p] {
			break
		}
		if y[i] < rightMin {
			rightMin = y[i]
		}
	}

	return y[p] - math.Max(leftMin, rightMin)
}

// LocatePeaks runs find over the spectrum's intensity series and translates
// the resulting indices back to (wavelength, intensity) candidates. An empty
// result is not an error; it just means nothing cleared the prominence bar.
func LocatePeaks(s *Spectrum, find PeakFinder, minProminence float64) []CandidatePeak {
	indices := find(s.Intensities, minProminence)
	candidates := make([]CandidatePeak, 0, len(indices))
	for _, idx := range indices {
		candidates = append(candidates, CandidatePeak{
			Index:        idx,
			WavelengthNM: s.Wavelengths[idx],
			Intensity:    s.Intensities[idx],
		})
	}
	return candidates
}
