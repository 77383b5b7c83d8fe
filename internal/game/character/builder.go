package character

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/inventory"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// DefaultBackpackSlots is the number of consumable stacks a new hero can carry.
const DefaultBackpackSlots = 6

// Build constructs a level-1 hero from archetype a with its starting loadout.
// The archetype's weapon and armor must resolve against items.
//
// Precondition: a and items must be non-nil; slots >= 0.
// Postcondition: Returns a Character at full HP and MP with zero xp and gold,
// or a non-nil error (errs.ErrNotFound for a missing weapon or armor).
func Build(a *ruleset.Archetype, items *inventory.Registry, slots int) (*Character, error) {
	if a == nil {
		return nil, errors.New("archetype must not be nil")
	}
	if items == nil {
		return nil, errors.New("item registry must not be nil")
	}
	weapon, err := items.Weapon(a.Weapon)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", a.ID, err)
	}
	armor, err := items.Armor(a.Armor)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", a.ID, err)
	}
	return &Character{
		Name:      a.Name,
		Archetype: a,
		Level:     1,
		Weapon:    weapon,
		Armor:     armor,
		Backpack:  inventory.NewBackpack(slots),
		Combatant: combat.NewHero(a, weapon, armor),
		items:     items,
	}, nil
}
