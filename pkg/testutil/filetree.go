package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FileTree represents a directory structure for testing. Values are
// either file contents (string) or nested FileTrees.
type FileTree map[string]interface{}

// CreateFileTree recursively creates tree under basePath
func CreateFileTree(t *testing.T, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			WriteFile(t, basePath, name, v)
		case FileTree:
			if err := os.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			CreateFileTree(t, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// WriteFile writes content to dir/rel, creating parents, and returns the
// full path. Leading newlines are trimmed so raw string literals can start
// on their own line.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	fullPath := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(strings.TrimLeft(content, "\n")), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
	return fullPath
}
