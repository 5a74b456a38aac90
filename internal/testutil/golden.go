package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// UpdateGoldenEnv names the environment variable that rewrites golden files
// instead of comparing against them.
const UpdateGoldenEnv = "TODO_UPDATE_GOLDEN"

// GoldenString compares got against testdata/<name>.golden in the calling
// package's directory.
func GoldenString(t *testing.T, name, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if os.Getenv(UpdateGoldenEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden file %s: %v (set %s=1 to create it)\nGot:\n%s", path, err, UpdateGoldenEnv, got)
	}
	if got != string(want) {
		t.Errorf("output mismatch for %s\nWant:\n%s\nGot:\n%s", name, want, got)
	}
}
