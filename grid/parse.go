package grid

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines reads all of r, trims surrounding whitespace and splits the
// remainder into lines. A trailing '\r' is dropped from every line.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// Parse reads grid text from r and builds a Grid with New.
func Parse(r io.Reader, opts ...Option) (*Grid, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return New(lines, opts...)
}

// Load opens the file at path and parses it as grid text.
func Load(path string, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("grid: load %q: %w", path, err)
	}
	return g, nil
}
