package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteLink writes data to name inside a per-test temporary directory and
// returns the full path.
//
// Example:
//
//	path := testutil.WriteLink(t, "notepad.lnk", testutil.Link{}.Bytes())
func WriteLink(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Touch creates an empty file (and its parent directories) and returns its path.
func Touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
	return path
}
