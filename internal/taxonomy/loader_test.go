package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMappingFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapping.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write mapping file: %v", err)
	}
	return path
}

func TestLoadMappingFile(t *testing.T) {
	path := writeMappingFile(t, `{
		"dimension": "vibe",
		"groups": [
			{"canonical": "cafe", "aliases": ["café", "coffee"]},
			{"canonical": "bar", "aliases": ["cocktails"]}
		]
	}`)

	m, err := LoadMappingFile(path, "vibe")
	if err != nil {
		t.Fatalf("LoadMappingFile: %v", err)
	}

	if m.Dimension() != "vibe" {
		t.Errorf("Dimension() = %q, want vibe", m.Dimension())
	}
	if got, _ := m.Resolve("café"); got != "cafe" {
		t.Errorf("Resolve(café) = %q, want cafe", got)
	}
}

func TestLoadMappingFileDimensionMismatch(t *testing.T) {
	path := writeMappingFile(t, `{
		"dimension": "vibe",
		"groups": [{"canonical": "cafe", "aliases": ["coffee"]}]
	}`)

	if _, err := LoadMappingFile(path, "energy"); err == nil {
		t.Error("expected error for dimension mismatch")
	}
}

func TestLoadMappingFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad json", `{not json`},
		{"structurally invalid mapping", `{"dimension": "vibe", "groups": [{"canonical": "cafe", "aliases": []}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeMappingFile(t, tt.content)
			if _, err := LoadMappingFile(path, "vibe"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadMappingFileMissing(t *testing.T) {
	if _, err := LoadMappingFile(filepath.Join(t.TempDir(), "absent.json"), "vibe"); err == nil {
		t.Error("expected error for missing file")
	}
}
