package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// Shot is one measurement located on disk: the spectrum file plus an
// optional process-parameter sidecar.
type Shot struct {
	Number       int
	SpectrumPath string
	TagsPath     string // empty when no sidecar exists
}

// shotFilePattern matches the acquisition software's per-shot naming
// convention, e.g. shot0042.csv.
var shotFilePattern = regexp.MustCompile(`^shot(\d+)\.csv$`)

// ScanShots walks the measurement directory and returns the shots it finds,
// ordered by shot number. A directory with no shot files is an error: it
// almost always means a mistyped path.
func ScanShots(dir string) ([]Shot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var shots []Shot
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := shotFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		shot := Shot{
			Number:       num,
			SpectrumPath: filepath.Join(dir, entry.Name()),
		}
		tags := filepath.Join(dir, fmt.Sprintf("shot%s.json", m[1]))
		if _, err := os.Stat(tags); err == nil {
			shot.TagsPath = tags
		}
		shots = append(shots, shot)
	}

	if len(shots) == 0 {
		return nil, fmt.Errorf("no shot files found in %s", dir)
	}
	sort.Slice(shots, func(i, j int) bool { return shots[i].Number < shots[j].Number })
	return shots, nil
}
