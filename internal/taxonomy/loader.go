package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
)

// MappingFile is the on-disk shape of a dimension mapping: the dimension
// name and its synonym groups in declaration order.
type MappingFile struct {
	Dimension string         `json:"dimension"`
	Groups    []SynonymGroup `json:"groups"`
}

// LoadMappingFile reads a dimension mapping from a JSON file and constructs
// a validated Mapping. The file's dimension must match the expected one so
// a vibe table cannot be wired into the energy slot by accident.
func LoadMappingFile(path, dimension string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}

	var mf MappingFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse mapping file %s: %w", path, err)
	}

	if mf.Dimension != dimension {
		return nil, fmt.Errorf("mapping file %s declares dimension %q, expected %q", path, mf.Dimension, dimension)
	}

	return NewMapping(mf.Dimension, mf.Groups)
}
