// Package inventory provides definitions and loaders for weapons, armor and
// consumables, and the containers a hero carries them in.
package inventory

import (
	"errors"
	"fmt"
	"io/fs"
)

// WeaponDef defines the static properties of a weapon loaded from YAML.
type WeaponDef struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	HitBonus  int    `yaml:"hit_bonus"`
	MinDamage int    `yaml:"min_damage"`
	MaxDamage int    `yaml:"max_damage"`
	Price     int    `yaml:"price"`
	// InShop marks weapons the shop offers for sale.
	InShop bool `yaml:"in_shop"`
}

// Validate checks that the WeaponDef satisfies its invariants.
// Precondition: w is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (w *WeaponDef) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if w.MinDamage < 0 {
		errs = append(errs, errors.New("MinDamage must be >= 0"))
	}
	if w.MaxDamage < w.MinDamage {
		errs = append(errs, fmt.Errorf("MaxDamage (%d) must be >= MinDamage (%d)", w.MaxDamage, w.MinDamage))
	}
	if w.Price < 0 {
		errs = append(errs, errors.New("Price must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	return nil
}

// LoadWeapons reads all *.yaml files from dir in fsys, parses each as a list of
// WeaponDefs, validates them, and returns the collected slice.
// Precondition: dir is a readable directory of fsys.
// Postcondition: returns all valid WeaponDefs or the first encountered error.
func LoadWeapons(fsys fs.FS, dir string) ([]*WeaponDef, error) {
	return loadDefs[WeaponDef](fsys, dir, "weapons")
}
