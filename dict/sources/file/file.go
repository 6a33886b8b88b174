// Package file implements the word Source interface over a word list
// file with one word per line.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Config holds the file source parameters.
type Config struct {
	// Path is the word list file, one word per line. Blank lines are
	// ignored.
	Path string
}

// Source reads words from a word list file.
type Source struct {
	path string
}

// New creates a file source. It verifies the file exists up front so a
// bad path fails at open time rather than at load time.
func New(config Config) (*Source, error) {
	if _, err := os.Stat(config.Path); err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	return &Source{path: config.Path}, nil
}

// Words returns every non-blank line of the file.
func (s *Source) Words(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	words := make([]string, 0, 1<<16)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			words = append(words, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// Close is a no-op; the file is opened per call to Words.
func (s *Source) Close() error {
	return nil
}
