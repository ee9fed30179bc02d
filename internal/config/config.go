package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// UnmappedPolicy controls what happens to tags that match neither an
	// alias nor a canonical name: "drop" (default), "keep", or "report".
	UnmappedPolicy string `json:"unmapped_policy,omitempty"`

	// StrictAliases makes an alias claimed by two synonym groups a hard
	// error instead of a recorded conflict resolved by declaration order.
	StrictAliases bool `json:"strict_aliases,omitempty"`

	// VibeMappingPath overrides the builtin vibe mapping with a JSON
	// mapping file. Empty means use the builtin table.
	VibeMappingPath string `json:"vibe_mapping_path,omitempty"`

	// EnergyMappingPath overrides the builtin energy mapping.
	EnergyMappingPath string `json:"energy_mapping_path,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UnmappedPolicy: "drop",
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.tagfold.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.UnmappedPolicy = overlay.UnmappedPolicy
	if result.UnmappedPolicy == "" {
		result.UnmappedPolicy = base.UnmappedPolicy
	}

	result.VibeMappingPath = overlay.VibeMappingPath
	if result.VibeMappingPath == "" {
		result.VibeMappingPath = base.VibeMappingPath
	}

	result.EnergyMappingPath = overlay.EnergyMappingPath
	if result.EnergyMappingPath == "" {
		result.EnergyMappingPath = base.EnergyMappingPath
	}

	// Booleans: overlay wins if true, else base
	result.StrictAliases = base.StrictAliases || overlay.StrictAliases

	// Arrays: merge and deduplicate
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
