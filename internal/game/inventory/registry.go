package inventory

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/cory-johannsen/crawl/internal/game/errs"
)

// Registry holds all loaded weapon, armor, and consumable definitions indexed by ID.
type Registry struct {
	weapons     map[string]*WeaponDef
	armors      map[string]*ArmorDef
	consumables map[string]*ConsumableDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		weapons:     make(map[string]*WeaponDef),
		armors:      make(map[string]*ArmorDef),
		consumables: make(map[string]*ConsumableDef),
	}
}

// LoadRegistry loads the weapons, armors and consumables directories of fsys
// into a new Registry.
//
// Postcondition: Returns a populated Registry or the first load/registration error.
func LoadRegistry(fsys fs.FS) (*Registry, error) {
	reg := NewRegistry()
	weapons, err := LoadWeapons(fsys, "weapons")
	if err != nil {
		return nil, err
	}
	for _, w := range weapons {
		if err := reg.RegisterWeapon(w); err != nil {
			return nil, err
		}
	}
	armors, err := LoadArmors(fsys, "armors")
	if err != nil {
		return nil, err
	}
	for _, a := range armors {
		if err := reg.RegisterArmor(a); err != nil {
			return nil, err
		}
	}
	consumables, err := LoadConsumables(fsys, "consumables")
	if err != nil {
		return nil, err
	}
	for _, c := range consumables {
		if err := reg.RegisterConsumable(c); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// RegisterWeapon adds w to the registry.
//
// Precondition:  w must not be nil.
// Postcondition: Weapon(w.ID) returns w; returns error if w.ID already registered.
func (r *Registry) RegisterWeapon(w *WeaponDef) error {
	if _, exists := r.weapons[w.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterWeapon: weapon ID %q already registered", w.ID)
	}
	r.weapons[w.ID] = w
	return nil
}

// RegisterArmor adds a to the registry.
//
// Precondition:  a must not be nil.
// Postcondition: Armor(a.ID) returns a; returns error if a.ID already registered.
func (r *Registry) RegisterArmor(a *ArmorDef) error {
	if _, exists := r.armors[a.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterArmor: armor ID %q already registered", a.ID)
	}
	r.armors[a.ID] = a
	return nil
}

// RegisterConsumable adds c to the registry.
//
// Precondition:  c must not be nil.
// Postcondition: Consumable(c.ID) returns c; returns error if c.ID already registered.
func (r *Registry) RegisterConsumable(c *ConsumableDef) error {
	if _, exists := r.consumables[c.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterConsumable: consumable ID %q already registered", c.ID)
	}
	r.consumables[c.ID] = c
	return nil
}

// Weapon returns the WeaponDef for id.
//
// Postcondition: returns an errs.ErrNotFound error when id is not registered.
func (r *Registry) Weapon(id string) (*WeaponDef, error) {
	if w, ok := r.weapons[id]; ok {
		return w, nil
	}
	return nil, errs.NotFound("weapon", id)
}

// Armor returns the ArmorDef for id.
//
// Postcondition: returns an errs.ErrNotFound error when id is not registered.
func (r *Registry) Armor(id string) (*ArmorDef, error) {
	if a, ok := r.armors[id]; ok {
		return a, nil
	}
	return nil, errs.NotFound("armor", id)
}

// Consumable returns the ConsumableDef for id.
//
// Postcondition: returns an errs.ErrNotFound error when id is not registered.
func (r *Registry) Consumable(id string) (*ConsumableDef, error) {
	if c, ok := r.consumables[id]; ok {
		return c, nil
	}
	return nil, errs.NotFound("consumable", id)
}

// ShopItem is one entry of the shop listing.
type ShopItem struct {
	ID    string
	Name  string
	Kind  string // "weapon", "armor" or "consumable"
	Price int
}

// ShopListing returns every item the shop sells, cheapest first, ties broken by ID.
func (r *Registry) ShopListing() []ShopItem {
	var out []ShopItem
	for _, w := range r.weapons {
		if w.InShop {
			out = append(out, ShopItem{ID: w.ID, Name: w.Name, Kind: "weapon", Price: w.Price})
		}
	}
	for _, a := range r.armors {
		if a.InShop {
			out = append(out, ShopItem{ID: a.ID, Name: a.Name, Kind: "armor", Price: a.Price})
		}
	}
	for _, c := range r.consumables {
		out = append(out, ShopItem{ID: c.ID, Name: c.Name, Kind: "consumable", Price: c.Price})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].ID < out[j].ID
	})
	return out
}
