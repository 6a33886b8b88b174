package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSourceWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "could\ndrain\n\n  nearby  \n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write word list: %v", err)
	}

	src, err := New(Config{Path: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer src.Close()

	words, err := src.Words(context.Background())
	if err != nil {
		t.Fatalf("Words() error = %v", err)
	}

	want := []string{"could", "drain", "nearby"}
	if len(words) != len(want) {
		t.Fatalf("Words() returned %d words, want %d", len(words), len(want))
	}
	for i, w := range words {
		if w != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, w, want[i])
		}
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := New(Config{Path: filepath.Join(t.TempDir(), "missing.txt")})
	if err == nil {
		t.Error("New() with missing file should return error")
	}
}

func TestFileSourceCanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("could\n"), 0o600); err != nil {
		t.Fatalf("failed to write word list: %v", err)
	}

	src, err := New(Config{Path: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Words(ctx); err == nil {
		t.Error("Words() with canceled context should return error")
	}
}
