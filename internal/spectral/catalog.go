package spectral

import (
	"errors"
	"math"
)

// ErrEmptyCatalog is returned when a Catalog is constructed with no lines.
var ErrEmptyCatalog = errors.New("spectral: line catalog is empty")

// CatalogLine is a single known spectral transition. G, UpperEnergyEV,
// LowerEnergyEV, IntensityRef and FranckCondon are optional; zero means the
// value is not tabulated for this line.
type CatalogLine struct {
	WavelengthNM  float64
	G             float64 // statistical weight of the upper level
	EinsteinA     float64 // spontaneous emission rate, s⁻¹
	UpperEnergyEV float64
	LowerEnergyEV float64
	IntensityRef  float64 // relative intensity from the reference tables
	FranckCondon  float64 // vibrational band weighting, where applicable
}

// Catalog is an ordered set of known transitions. It is immutable after
// construction and safe for concurrent lookups.
type Catalog struct {
	lines []CatalogLine
}

// NewCatalog builds a catalog from the given lines, preserving their order.
// Lookup ties are broken toward earlier insertion, so callers that care about
// tie-breaking should order their table accordingly.
func NewCatalog(lines []CatalogLine) (*Catalog, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{lines: make([]CatalogLine, len(lines))}
	copy(c.lines, lines)
	return c, nil
}

// Len returns the number of lines in the catalog.
func (c *Catalog) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the catalog contents.
func (c *Catalog) Lines() []CatalogLine {
	out := make([]CatalogLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// NearestLine returns the catalog entry whose wavelength is closest to
// target. When two entries are equidistant, the one inserted first wins.
func (c *Catalog) NearestLine(target float64) CatalogLine {
	best := c.lines[0]
	bestDist := math.Abs(best.WavelengthNM - target)
	for _, line := range c.lines[1:] {
		d := math.Abs(line.WavelengthNM - target)
		if d < bestDist {
			best = line
			bestDist = d
		}
	}
	return best
}

// DefaultCatalog returns the built-in line table: the N2 second positive
// system bands used for the molecular region plus the strong atomic N, O, Ar
// and H lines seen in nitrogen process plasmas. Wavelengths in nm, A in s⁻¹,
// energies in eV.
func DefaultCatalog() *Catalog {
	c, _ := NewCatalog([]CatalogLine{
		// N2 C³Πu → B³Πg (second positive system) band heads.
		{WavelengthNM: 315.9, G: 2, EinsteinA: 1.17e7, UpperEnergyEV: 11.28, LowerEnergyEV: 7.35, FranckCondon: 0.393},
		{WavelengthNM: 337.0, G: 4, EinsteinA: 1.39e7, UpperEnergyEV: 11.03, LowerEnergyEV: 7.35, FranckCondon: 0.455},
		{WavelengthNM: 353.7, G: 4, EinsteinA: 6.03e6, UpperEnergyEV: 11.28, LowerEnergyEV: 7.77, FranckCondon: 0.328},
		{WavelengthNM: 357.6, G: 6, EinsteinA: 8.88e6, UpperEnergyEV: 11.28, LowerEnergyEV: 7.81, FranckCondon: 0.330},
		{WavelengthNM: 371.1, G: 6, EinsteinA: 4.93e6, UpperEnergyEV: 11.53, LowerEnergyEV: 8.19, FranckCondon: 0.203},
		{WavelengthNM: 375.5, G: 8, EinsteinA: 4.29e6, UpperEnergyEV: 11.53, LowerEnergyEV: 8.22, FranckCondon: 0.198},
		{WavelengthNM: 380.4, G: 8, EinsteinA: 3.34e6, UpperEnergyEV: 11.53, LowerEnergyEV: 8.27, FranckCondon: 0.212},
		{WavelengthNM: 394.3, G: 10, EinsteinA: 1.68e6, UpperEnergyEV: 11.78, LowerEnergyEV: 8.64, FranckCondon: 0.088},
		{WavelengthNM: 399.8, G: 10, EinsteinA: 1.46e6, UpperEnergyEV: 11.78, LowerEnergyEV: 8.68, FranckCondon: 0.091},
		{WavelengthNM: 405.8, G: 10, EinsteinA: 9.60e5, UpperEnergyEV: 11.78, LowerEnergyEV: 8.72, FranckCondon: 0.095},
		// N2+ B²Σu+ → X²Σg+ (first negative system).
		{WavelengthNM: 391.4, G: 2, EinsteinA: 1.14e7, UpperEnergyEV: 18.75, LowerEnergyEV: 15.58},
		{WavelengthNM: 427.8, G: 2, EinsteinA: 3.71e6, UpperEnergyEV: 18.75, LowerEnergyEV: 15.86},
		// Atomic lines.
		{WavelengthNM: 656.3, G: 18, EinsteinA: 4.41e7, UpperEnergyEV: 12.09, LowerEnergyEV: 10.20, IntensityRef: 500},
		{WavelengthNM: 742.4, G: 6, EinsteinA: 5.95e6, UpperEnergyEV: 11.996, LowerEnergyEV: 10.33, IntensityRef: 380},
		{WavelengthNM: 744.2, G: 4, EinsteinA: 1.19e7, UpperEnergyEV: 11.996, LowerEnergyEV: 10.33, IntensityRef: 480},
		{WavelengthNM: 746.8, G: 2, EinsteinA: 1.96e7, UpperEnergyEV: 11.996, LowerEnergyEV: 10.34, IntensityRef: 550},
		{WavelengthNM: 750.4, G: 1, EinsteinA: 4.45e7, UpperEnergyEV: 13.48, LowerEnergyEV: 11.83, IntensityRef: 450},
		{WavelengthNM: 777.2, G: 7, EinsteinA: 3.69e7, UpperEnergyEV: 10.74, LowerEnergyEV: 9.15, IntensityRef: 870},
		{WavelengthNM: 811.5, G: 7, EinsteinA: 3.31e7, UpperEnergyEV: 13.08, LowerEnergyEV: 11.55, IntensityRef: 1000},
		{WavelengthNM: 821.6, G: 6, EinsteinA: 2.26e7, UpperEnergyEV: 11.84, LowerEnergyEV: 10.33, IntensityRef: 650},
		{WavelengthNM: 844.6, G: 5, EinsteinA: 3.22e7, UpperEnergyEV: 10.99, LowerEnergyEV: 9.52, IntensityRef: 810},
		{WavelengthNM: 868.0, G: 8, EinsteinA: 2.46e7, UpperEnergyEV: 11.76, LowerEnergyEV: 10.33, IntensityRef: 430},
	})
	return c
}
