package ruleset

import (
	"errors"
	"fmt"
	"io/fs"
)

// Tier names a monster difficulty pool.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
	TierBoss   Tier = "boss"
)

// Valid reports whether t is one of the four known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierEasy, TierMedium, TierHard, TierBoss:
		return true
	}
	return false
}

// Dungeon describes a sequence of rooms ending in a boss encounter.
//
// Precondition: Rooms >= 1; Difficulty and Boss must be valid tiers.
type Dungeon struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Rooms      int    `yaml:"rooms"`
	Difficulty Tier   `yaml:"difficulty"`
	Boss       Tier   `yaml:"boss"`
}

// Validate reports every invariant violation of the dungeon.
func (d *Dungeon) Validate() error {
	var violations []error
	if d.ID == "" {
		violations = append(violations, errors.New("id must not be empty"))
	}
	if d.Rooms < 1 {
		violations = append(violations, fmt.Errorf("rooms must be >= 1, got %d", d.Rooms))
	}
	if !d.Difficulty.Valid() {
		violations = append(violations, fmt.Errorf("unknown difficulty tier %q", d.Difficulty))
	}
	if !d.Boss.Valid() {
		violations = append(violations, fmt.Errorf("unknown boss tier %q", d.Boss))
	}
	if len(violations) > 0 {
		return fmt.Errorf("dungeon %q: %w", d.ID, errors.Join(violations...))
	}
	return nil
}

// LoadDungeons reads all .yaml files in dir of fsys and parses each as a list of Dungeons.
//
// Precondition: dir must be a readable directory of fsys.
// Postcondition: Returns all parsed and validated dungeons or a non-nil error.
func LoadDungeons(fsys fs.FS, dir string) ([]*Dungeon, error) {
	dungeons, err := decodeDir[Dungeon](fsys, dir, "dungeon")
	if err != nil {
		return nil, err
	}
	for _, d := range dungeons {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	return dungeons, nil
}
