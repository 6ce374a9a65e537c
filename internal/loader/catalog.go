package loader

import (
	"fmt"
	"strconv"

	"github.com/oes-lab/plasmaspec/internal/spectral"
)

// LoadCatalog reads a line-catalog CSV with columns
//
//	wavelength_nm, g, einstein_a, e_upper_ev, e_lower_ev, intensity_ref, franck_condon
//
// where everything after einstein_a may be blank. Row order is preserved
// because nearest-line ties break toward earlier rows.
func LoadCatalog(path string) (*spectral.Catalog, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var lines []spectral.CatalogLine
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("catalog %s row %d: want at least 3 columns, got %d", path, i+1, len(row))
		}
		w, werr := strconv.ParseFloat(row[0], 64)
		if werr != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("catalog %s row %d: bad wavelength %q", path, i+1, row[0])
		}

		line := spectral.CatalogLine{WavelengthNM: w}
		fields := []*float64{
			&line.G, &line.EinsteinA, &line.UpperEnergyEV,
			&line.LowerEnergyEV, &line.IntensityRef, &line.FranckCondon,
		}
		for j, dst := range fields {
			col := j + 1
			if col >= len(row) || row[col] == "" {
				continue
			}
			v, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				return nil, fmt.Errorf("catalog %s row %d col %d: %w", path, i+1, col+1, err)
			}
			*dst = v
		}
		lines = append(lines, line)
	}

	return spectral.NewCatalog(lines)
}
