package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFile loads a single layout file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	l, err := ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	l.FilePath = path
	return l, nil
}

// LoadDir recursively loads every .yaml and .yml file under root, sorted by
// id. Files that fail to parse are skipped and reported in skipped.
func LoadDir(root string) (loaded []Layout, skipped []error, err error) {
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		l, loadErr := LoadFile(path)
		if loadErr != nil {
			skipped = append(skipped, loadErr)
			return nil
		}
		loaded = append(loaded, l)
		return nil
	})
	if err != nil {
		return nil, skipped, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].ID < loaded[j].ID
	})
	return loaded, skipped, nil
}

// RegisterDir loads a directory of layouts and adds them to the catalogue,
// overriding built-ins with the same id. It returns the loaded layouts.
func RegisterDir(root string) ([]Layout, []error, error) {
	loaded, skipped, err := LoadDir(root)
	if err != nil {
		return nil, skipped, err
	}
	for _, l := range loaded {
		Add(l)
	}
	return loaded, skipped, nil
}
