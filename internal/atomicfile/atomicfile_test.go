package atomicfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestWriteFailureKeepsPreviousContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expenses.csv")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	errBoom := errors.New("boom")
	err := Write(path, 0o600, func(w io.Writer) error {
		if _, err := io.WriteString(w, "partial"); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("Write error = %v, want %v", err, errBoom)
	}

	if got := readFile(t, path); got != "old" {
		t.Errorf("content = %q, want %q", got, "old")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir entries = %v, want only expenses.csv", names)
	}
}

func TestWriteReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.txt")
	if err := os.WriteFile(path, []byte("2025-07,1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Write(path, 0o600, writeString("2025-07,2\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := readFile(t, path); got != "2025-07,2\n" {
		t.Errorf("content = %q", got)
	}
}

func TestWriteCreatesMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "budget.txt")
	if err := Write(path, 0o600, writeString("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := readFile(t, path); got != "x" {
		t.Errorf("content = %q, want x", got)
	}
}

func TestWriteKeepsExistingPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0o640); err != nil {
		t.Fatal(err)
	}

	if err := Write(path, 0o600, writeString("new")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := fi.Mode().Perm(); perm != 0o640 {
		t.Errorf("perm = %o, want 640", perm)
	}
}
