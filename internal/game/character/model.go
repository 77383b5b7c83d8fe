// Package character defines the hero's run-long state and the progression rules
// applied to it.
package character

import (
	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/inventory"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// Character represents the hero's state for one dungeon run.
//
// The embedded Combatant persists across every encounter of the run.
type Character struct {
	Name       string
	Archetype  *ruleset.Archetype
	Level      int
	Experience int

	Weapon   *inventory.WeaponDef
	Armor    *inventory.ArmorDef
	Purse    inventory.Purse
	Backpack *inventory.Backpack

	Combatant *combat.Combatant

	items *inventory.Registry
}

// Class returns the archetype ID, which keys the hero's skills.
func (c *Character) Class() string { return c.Archetype.ID }

// Equip replaces the wielded weapon and recomputes the combatant's base stats.
//
// Precondition: w must be non-nil.
// Postcondition: Combatant.Base reflects w; HP, MP and modifiers are unchanged.
func (c *Character) Equip(w *inventory.WeaponDef) {
	c.Weapon = w
	c.Combatant.Base = combat.HeroBase(c.Archetype, c.Weapon, c.Armor)
}

// Wear replaces the worn armor and recomputes the combatant's base stats.
//
// Precondition: a must be non-nil.
// Postcondition: Combatant.Base reflects a; HP, MP and modifiers are unchanged.
func (c *Character) Wear(a *inventory.ArmorDef) {
	c.Armor = a
	c.Combatant.Base = combat.HeroBase(c.Archetype, c.Weapon, c.Armor)
}

// Consume removes one carried unit of itemID and returns its definition.
// It implements combat.ItemBag.
//
// Postcondition: on error nothing is removed.
func (c *Character) Consume(itemID string) (*inventory.ConsumableDef, error) {
	def, err := c.items.Consumable(itemID)
	if err != nil {
		return nil, err
	}
	if err := c.Backpack.Take(itemID); err != nil {
		return nil, err
	}
	return def, nil
}
