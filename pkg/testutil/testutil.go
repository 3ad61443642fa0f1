package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dashtabs/pkg/tabs"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// TabNames returns the names of entries in order
func TabNames(entries []*tabs.Tab) []string {
	out := make([]string, 0, len(entries))
	for _, tab := range entries {
		out = append(out, tab.Name())
	}
	return out
}
