package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader reads extra catalog files from disk.
type Loader struct {
	Paths []string
}

// NewLoader creates a loader over files or directories.
func NewLoader(paths ...string) *Loader {
	return &Loader{Paths: paths}
}

// LoadAll reads every path in order. Directories are scanned recursively
// and their YAML files are read in lexical order.
func (l *Loader) LoadAll(seeds *SeedSequence) ([]Definition, error) {
	var defs []Definition
	for _, root := range l.Paths {
		files, err := collect(root)
		if err != nil {
			return nil, err
		}
		for _, path := range files {
			d, err := l.LoadFile(path, seeds)
			if err != nil {
				return nil, err
			}
			defs = append(defs, d...)
		}
	}
	return defs, nil
}

// LoadFile reads a single catalog file.
func (l *Loader) LoadFile(path string, seeds *SeedSequence) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading file %s: %w", path, err)
	}
	defs, err := Parse(data, seeds)
	if err != nil {
		return nil, fmt.Errorf("catalog: parsing file %s: %w", path, err)
	}
	return defs, nil
}

func collect(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: walking directory %s: %w", root, err)
	}

	// Sort for determinism
	sort.Strings(files)
	return files, nil
}
