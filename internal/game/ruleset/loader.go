package ruleset

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// decodeDir reads every .yaml file in dir of fsys, decodes each as a YAML
// sequence of T, and returns the concatenated entries in file order.
//
// Precondition: dir must be a readable directory of fsys.
// Postcondition: Returns all parsed entries (may be empty slice) or a non-nil error.
func decodeDir[T any](fsys fs.FS, dir, kind string) ([]*T, error) {
	files, err := yamlFiles(fsys, dir)
	if err != nil {
		return nil, err
	}
	var out []*T
	for _, p := range files {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		var items []*T
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("parsing %s file %s: %w", kind, p, err)
		}
		for i, it := range items {
			if it == nil {
				return nil, fmt.Errorf("parsing %s file %s: entry %d is empty", kind, p, i)
			}
		}
		out = append(out, items...)
	}
	return out, nil
}

func yamlFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, path.Join(dir, name))
		}
	}
	return paths, nil
}
