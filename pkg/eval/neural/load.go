package eval

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile loads the model from path, then from path next to the
// executable when path is relative. Every failure wraps
// ErrModelUnavailable.
func LoadFile(path string) (*Weights, string, error) {
	if path == "" {
		return nil, "", fmt.Errorf("%w: no model path", ErrModelUnavailable)
	}
	var errs []error
	for _, candidate := range searchPaths(path) {
		var w, err = readWeights(candidate)
		if err == nil {
			return w, candidate, nil
		}
		errs = append(errs, err)
	}
	return nil, "", fmt.Errorf("%w: %w", ErrModelUnavailable, errors.Join(errs...))
}

func readWeights(path string) (*Weights, error) {
	var f, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadWeights(f)
}

func searchPaths(path string) []string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return []string{filepath.Join(home, rest)}
		}
		return []string{path}
	}
	var paths = []string{path}
	if !filepath.IsAbs(path) {
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Join(filepath.Dir(exe), path))
		}
	}
	return paths
}
