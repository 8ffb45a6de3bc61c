package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is the index written next to the rendered outputs.
type Manifest struct {
	Generated string   `json:"generated"`
	Total     int      `json:"total"`
	Succeeded int      `json:"succeeded"`
	Files     []Result `json:"files"`
}

// WriteManifest writes manifest.json describing every processed file.
func WriteManifest(path, generated string, results []Result) error {
	m := Manifest{Generated: generated, Total: len(results), Files: results}
	for _, r := range results {
		if r.Success {
			m.Succeeded++
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
