package inventory

import (
	"errors"
	"fmt"
	"io/fs"
)

// ArmorDef defines the static properties of an armor piece loaded from YAML.
type ArmorDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// AC is the armor class the piece grants; higher is harder to hit.
	AC     int  `yaml:"ac"`
	Price  int  `yaml:"price"`
	InShop bool `yaml:"in_shop"`
}

// Validate reports an error if the ArmorDef is missing required fields or contains illegal values.
// Precondition: def is non-nil.
// Postcondition: Returns nil iff the def is well-formed.
func (a *ArmorDef) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if a.AC < 0 {
		errs = append(errs, errors.New("ac must be >= 0"))
	}
	if a.Price < 0 {
		errs = append(errs, errors.New("price must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("armor validation failed: %v", errs)
	}
	return nil
}

// LoadArmors reads all .yaml files in dir of fsys and returns the parsed ArmorDefs.
// Precondition: dir must be a readable directory of fsys.
// Postcondition: all returned defs pass Validate.
func LoadArmors(fsys fs.FS, dir string) ([]*ArmorDef, error) {
	return loadDefs[ArmorDef](fsys, dir, "armors")
}
