// Package ruleset holds the immutable reference tables of the game: hero
// archetypes, skills, dungeons and the experience level table.
package ruleset

import (
	"errors"
	"fmt"
	"io/fs"
)

// Archetype defines a playable hero class and its starting loadout.
//
// Precondition: ID, Name, Weapon and Armor must be non-empty after loading;
// MaxHP must be positive.
type Archetype struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	MaxHP       int    `yaml:"max_hp"`
	MaxMP       int    `yaml:"max_mp"`
	BaseHit     int    `yaml:"base_hit"`
	BaseDamage  int    `yaml:"base_damage"`
	Weapon      string `yaml:"weapon"`
	Armor       string `yaml:"armor"`
	Speed       int    `yaml:"speed"`
}

// Validate reports every invariant violation of the archetype.
func (a *Archetype) Validate() error {
	var violations []error
	if a.ID == "" {
		violations = append(violations, errors.New("id must not be empty"))
	}
	if a.Name == "" {
		violations = append(violations, errors.New("name must not be empty"))
	}
	if a.MaxHP <= 0 {
		violations = append(violations, fmt.Errorf("max_hp must be > 0, got %d", a.MaxHP))
	}
	if a.MaxMP < 0 {
		violations = append(violations, fmt.Errorf("max_mp must be >= 0, got %d", a.MaxMP))
	}
	if a.Weapon == "" {
		violations = append(violations, errors.New("weapon must not be empty"))
	}
	if a.Armor == "" {
		violations = append(violations, errors.New("armor must not be empty"))
	}
	if len(violations) > 0 {
		return fmt.Errorf("archetype %q: %w", a.ID, errors.Join(violations...))
	}
	return nil
}

// LoadArchetypes reads all .yaml files in dir of fsys and parses each as a list of Archetypes.
//
// Precondition: dir must be a readable directory of fsys.
// Postcondition: Returns all parsed and validated archetypes or a non-nil error.
func LoadArchetypes(fsys fs.FS, dir string) ([]*Archetype, error) {
	archetypes, err := decodeDir[Archetype](fsys, dir, "archetype")
	if err != nil {
		return nil, err
	}
	for _, a := range archetypes {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}
	return archetypes, nil
}
