package loader

import (
	"encoding/json"
	"fmt"
	"os"
)

// ProcessTags holds the process parameters recorded alongside a shot. The
// analysis engine never reads these; they are joined with its outputs for
// reporting only.
type ProcessTags struct {
	PowerW     float64 `json:"power_w"`
	PressurePa float64 `json:"pressure_pa"`
	FlowSCCM   float64 `json:"flow_sccm"`
}

// LoadTags reads a per-shot JSON sidecar. Unknown keys are ignored; missing
// keys stay zero.
func LoadTags(path string) (*ProcessTags, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tags ProcessTags
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("tags %s: %w", path, err)
	}
	return &tags, nil
}
