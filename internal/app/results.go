package app

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/oes-lab/plasmaspec/internal/loader"
	"github.com/oes-lab/plasmaspec/internal/spectral"
)

// Result is one analyzed shot joined with its process tags.
type Result struct {
	Shot     int
	Scenario string
	Analysis spectral.Analysis
	Tags     *loader.ProcessTags
}

// WriteResultsCSV writes one row per analyzed shot and returns the file
// path. Undefined ratios and invalid temperatures are written as empty
// cells, never as zeros, so downstream filtering stays honest.
func WriteResultsCSV(dir, runID string, results []Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("results-%s.csv", runID))

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"shot", "scenario", "peaks", "rejected_fits",
		"molecular_sum", "atomic_sum", "atomic_molecular_ratio",
		"temperature_k", "boltzmann_slope",
		"power_w", "pressure_pa", "flow_sccm",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, r := range results {
		summary := r.Analysis.Summary
		temp := r.Analysis.Temperature

		record := []string{
			strconv.Itoa(r.Shot),
			r.Scenario,
			strconv.Itoa(len(r.Analysis.Peaks)),
			strconv.Itoa(r.Analysis.RejectedFits),
			fmt.Sprintf("%.6g", summary.MolecularSum),
			fmt.Sprintf("%.6g", summary.AtomicSum),
			"", // ratio
			"", // temperature
			"", // slope
			"", // power
			"", // pressure
			"", // flow
		}
		if summary.RatioValid {
			record[6] = fmt.Sprintf("%.6g", summary.Ratio)
		}
		if temp.Valid {
			record[7] = fmt.Sprintf("%.2f", temp.TemperatureK)
			record[8] = fmt.Sprintf("%.6g", temp.Slope)
		}
		if r.Tags != nil {
			record[9] = fmt.Sprintf("%.2f", r.Tags.PowerW)
			record[10] = fmt.Sprintf("%.2f", r.Tags.PressurePa)
			record[11] = fmt.Sprintf("%.2f", r.Tags.FlowSCCM)
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}
	writer.Flush()
	return path, writer.Error()
}

// PrintResults writes a human-readable summary table to stdout.
func PrintResults(results []Result) {
	fmt.Printf("%-6s | %-12s | %5s | %10s | %10s | %8s | %10s\n",
		"Shot", "Scenario", "Peaks", "Mol. Sum", "At. Sum", "At/Mol", "T (K)")
	fmt.Printf("-------+--------------+-------+------------+------------+----------+-----------\n")

	for _, r := range results {
		summary := r.Analysis.Summary

		ratio := "undef"
		if summary.RatioValid {
			ratio = fmt.Sprintf("%8.3f", summary.Ratio)
		}
		temp := "invalid"
		if r.Analysis.Temperature.Valid {
			temp = fmt.Sprintf("%10.1f", r.Analysis.Temperature.TemperatureK)
		}

		fmt.Printf("%-6d | %-12s | %5d | %10.4g | %10.4g | %8s | %10s\n",
			r.Shot, r.Scenario, len(r.Analysis.Peaks),
			summary.MolecularSum, summary.AtomicSum, ratio, temp)
	}
}
