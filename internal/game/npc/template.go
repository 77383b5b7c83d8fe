// Package npc provides monster template definitions, difficulty pools and
// loot generation.
package npc

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// Template defines a reusable monster type loaded from YAML.
type Template struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Tier      ruleset.Tier `yaml:"tier"`
	MaxHP     int          `yaml:"max_hp"`
	AC        int          `yaml:"ac"`
	HitBonus  int          `yaml:"hit_bonus"`
	MinDamage int          `yaml:"min_damage"`
	MaxDamage int          `yaml:"max_damage"`
	// XP is the experience awarded to the hero that defeats this monster.
	XP   int        `yaml:"xp"`
	Loot *LootTable `yaml:"loot"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, Tier is known,
// MaxHP >= 1, AC >= 0, 0 <= MinDamage <= MaxDamage and XP >= 0; returns an
// error on the first violation otherwise.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("npc template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("npc template %q: name must not be empty", t.ID)
	}
	if !t.Tier.Valid() {
		return fmt.Errorf("npc template %q: unknown tier %q", t.ID, t.Tier)
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("npc template %q: max_hp must be >= 1", t.ID)
	}
	if t.AC < 0 {
		return fmt.Errorf("npc template %q: ac must be >= 0", t.ID)
	}
	if t.MinDamage < 0 || t.MaxDamage < t.MinDamage {
		return fmt.Errorf("npc template %q: damage range %d-%d is invalid", t.ID, t.MinDamage, t.MaxDamage)
	}
	if t.XP < 0 {
		return fmt.Errorf("npc template %q: xp must be >= 0", t.ID)
	}
	if t.Loot != nil {
		if err := t.Loot.Validate(); err != nil {
			return fmt.Errorf("npc template %q: %w", t.ID, err)
		}
	}
	return nil
}

// LootTable returns the template's loot table, or the default table dropping
// gold in [XP/2, XP] when none is configured.
func (t *Template) LootTable() LootTable {
	if t.Loot != nil {
		return *t.Loot
	}
	return LootTable{Gold: &GoldDrop{Min: t.XP / 2, Max: t.XP}}
}

// LoadTemplatesFromBytes parses a YAML sequence of monster templates.
//
// Precondition: data must be valid YAML for a list of Templates.
// Postcondition: Returns validated templates, or an error. Unknown fields are rejected.
func LoadTemplatesFromBytes(data []byte) ([]*Template, error) {
	var tmpls []*Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tmpls); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	for i, tmpl := range tmpls {
		if tmpl == nil {
			return nil, fmt.Errorf("parsing template YAML: entry %d is empty", i)
		}
		if err := tmpl.Validate(); err != nil {
			return nil, err
		}
	}
	return tmpls, nil
}

// LoadTemplates reads all *.yaml files in dir of fsys and returns the parsed templates.
//
// Precondition: dir must be a readable directory of fsys.
// Postcondition: Returns all templates or an error on the first parse or validate
// failure; on error, the partial result is discarded.
func LoadTemplates(fsys fs.FS, dir string) ([]*Template, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading npc dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}

		tmpls, err := LoadTemplatesFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", p, err)
		}
		templates = append(templates, tmpls...)
	}
	return templates, nil
}
