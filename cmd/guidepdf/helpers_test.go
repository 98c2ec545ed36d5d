package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and project fixtures
// ---------------------------------------------------------------------------

// testEnv is an Environment rooted at a temporary project directory.
type testEnv struct {
	*Environment
	root   string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	return &testEnv{
		Environment: &Environment{
			Now:    func() time.Time { return fixed },
			Stdout: stdout,
			Stderr: stderr,
			Getwd:  func() (string, error) { return root, nil },
		},
		root:   root,
		stdout: stdout,
		stderr: stderr,
	}
}

// sourcePath returns the default location of a guide source.
func (e *testEnv) sourcePath(name string) string {
	return filepath.Join(e.root, "resources", "guides", name)
}

// outputPath returns the default location of a generated PDF.
func (e *testEnv) outputPath(name string) string {
	return filepath.Join(e.root, "public", "resources", name)
}

// writeGuide writes a guide source under the default source directory.
func (e *testEnv) writeGuide(t *testing.T, name, content string) {
	t.Helper()
	writeFile(t, e.sourcePath(name), content)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func assertPDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected PDF at %s: %v", path, err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("%s is not a PDF", path)
	}
}

func assertNoFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("%s should not exist (err = %v)", path, err)
	}
}

func makeDir(path string) error {
	return os.MkdirAll(path, 0o750)
}
