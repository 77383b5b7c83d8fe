package inventory

import (
	"errors"
	"fmt"
	"io/fs"
)

// ConsumableKind identifies what a consumable does when used.
type ConsumableKind string

const (
	// ConsumableHeal restores hit points to the user.
	ConsumableHeal ConsumableKind = "heal"
	// ConsumableDamage deals guaranteed damage to the opponent, ignoring armor class.
	ConsumableDamage ConsumableKind = "damage"
)

// ConsumableDef defines a single-use item sold by the shop.
type ConsumableDef struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Kind        ConsumableKind `yaml:"kind"`
	Value       int            `yaml:"value"`
	Price       int            `yaml:"price"`
	MaxStack    int            `yaml:"max_stack"`
}

// Validate checks that the ConsumableDef satisfies its invariants.
// Precondition: c is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (c *ConsumableDef) Validate() error {
	var errs []error
	if c.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if c.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if c.Kind != ConsumableHeal && c.Kind != ConsumableDamage {
		errs = append(errs, fmt.Errorf("Kind must be heal or damage; got %q", c.Kind))
	}
	if c.Value <= 0 {
		errs = append(errs, errors.New("Value must be > 0"))
	}
	if c.Price < 0 {
		errs = append(errs, errors.New("Price must be >= 0"))
	}
	if c.MaxStack < 1 {
		errs = append(errs, errors.New("MaxStack must be >= 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("consumable validation failed: %v", errs)
	}
	return nil
}

// LoadConsumables reads all *.yaml files from dir of fsys and returns the parsed ConsumableDefs.
// Precondition: dir is a readable directory of fsys.
// Postcondition: returns all valid ConsumableDefs or the first encountered error.
func LoadConsumables(fsys fs.FS, dir string) ([]*ConsumableDef, error) {
	return loadDefs[ConsumableDef](fsys, dir, "consumables")
}
