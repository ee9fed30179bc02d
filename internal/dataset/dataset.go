// Package dataset is the file-backed record source and sink: a JSON array
// of place objects read whole into memory and written back atomically.
package dataset

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/tagfold/internal/place"
)

// Load reads a JSON array of place records from path.
func Load(path string) ([]*place.Place, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var places []*place.Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	return places, nil
}

// Save writes the records to path as a 2-space-indented JSON array with
// non-ASCII characters left unescaped. The file is written to a random
// temp name in the destination directory and renamed into place, so a
// failure mid-write never clobbers the original.
func Save(path string, places []*place.Place) error {
	if places == nil {
		places = []*place.Place{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(places); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create dataset directory: %w", err)
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generate temp file name: %w", err)
	}
	tempPath := path + "." + hex.EncodeToString(randBytes) + ".tmp"

	if err := os.WriteFile(tempPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("finalize dataset write: %w", err)
	}

	return nil
}
