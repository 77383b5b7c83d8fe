package inventory

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every definition type loaded from YAML.
type validator interface {
	Validate() error
}

// loadDefs reads every *.yaml file in dir of fsys. Each file holds a YAML
// sequence of definitions; every decoded definition is validated.
//
// Precondition: dir must be a readable directory of fsys.
// Postcondition: returns all valid definitions or the first encountered error.
func loadDefs[T any, P interface {
	*T
	validator
}](fsys fs.FS, dir, kind string) ([]*T, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("loading %s: cannot read directory %q: %w", kind, dir, err)
	}
	var out []*T
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("loading %s: cannot read file %q: %w", kind, p, err)
		}
		var defs []*T
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&defs); err != nil {
			return nil, fmt.Errorf("loading %s: cannot parse file %q: %w", kind, p, err)
		}
		for i, d := range defs {
			if d == nil {
				return nil, fmt.Errorf("loading %s: empty entry %d in %q", kind, i, p)
			}
			if err := P(d).Validate(); err != nil {
				return nil, fmt.Errorf("loading %s: invalid entry %d in %q: %w", kind, i, p, err)
			}
		}
		out = append(out, defs...)
	}
	return out, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
