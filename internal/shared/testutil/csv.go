package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// WriteCSV writes a header-first CSV fixture into dir and returns its path.
func WriteCSV(t *testing.T, dir, name string, records [][]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create CSV fixture %s: %v", name, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		t.Fatalf("Failed to write CSV fixture %s: %v", name, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		t.Fatalf("Failed to flush CSV fixture %s: %v", name, err)
	}

	return path
}
