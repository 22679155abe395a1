package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// IndexFileName is the primary persisted artifact.
const IndexFileName = "codebase-index.json"

// Load reads a persisted CodebaseIndex. A missing file returns (nil, nil);
// malformed data returns an error so the caller can fall back to a full
// rebuild.
func Load(outputDir string) (CodebaseIndex, error) {
	data, err := os.ReadFile(filepath.Join(outputDir, IndexFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}
	var idx CodebaseIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	return idx, nil
}

// Save writes the CodebaseIndex wholesale, overwriting any prior artifact.
func Save(outputDir string, idx CodebaseIndex) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("mkdir output: %w", err)
	}
	return WriteJSON(filepath.Join(outputDir, IndexFileName), idx)
}

// WriteJSON marshals v with two-space indentation and writes it wholesale.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
