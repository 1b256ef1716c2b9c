package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileWriterWritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.reg")

	w := &FileWriter{Path: path}
	if err := w.WriteScript([]byte("Windows Registry Editor Version 5.00\r\n")); err != nil {
		t.Fatalf("WriteScript: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(got), "Windows Registry Editor") {
		t.Errorf("unexpected content: %q", got)
	}

	// Overwrite must replace, not append.
	if err := w.WriteScript([]byte("second")); err != nil {
		t.Fatalf("WriteScript: %v", err)
	}
	got, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("expected overwrite, got %q", got)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}
