package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrInputNotFound is returned when the input CSV does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ResolveInputPath expands a leading ~ and returns the absolute path.
func ResolveInputPath(input string) (string, error) {
	if input == "" {
		return "", errors.New("input path is empty")
	}

	path, err := normalizePath(input)
	if err != nil {
		return "", err
	}
	return filepath.Abs(path)
}

// Open resolves path and opens it for reading. Callers close the file.
func Open(path string) (*os.File, error) {
	resolved, err := ResolveInputPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, resolved)
		}
		return nil, fmt.Errorf("open input: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("open input: %s is a directory", resolved)
	}

	return file, nil
}
