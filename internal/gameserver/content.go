package gameserver

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/cory-johannsen/crawl/internal/game/inventory"
	"github.com/cory-johannsen/crawl/internal/game/npc"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// Content bundles every static reference table the engine reads.
type Content struct {
	Rules *ruleset.Registry
	Items *inventory.Registry
	Pools *npc.Pools
}

// LoadContent loads and cross-checks all reference tables from fsys.
//
// Postcondition: every archetype's weapon and armor and every loot item
// resolves; otherwise a non-nil error listing each dangling reference.
func LoadContent(fsys fs.FS) (*Content, error) {
	rules, err := ruleset.Load(fsys)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	items, err := inventory.LoadRegistry(fsys)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	pools, err := npc.LoadPools(fsys)
	if err != nil {
		return nil, fmt.Errorf("loading monsters: %w", err)
	}
	c := &Content{Rules: rules, Items: items, Pools: pools}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports every cross-table reference that does not resolve.
func (c *Content) Validate() error {
	var dangling []error
	for _, a := range c.Rules.Archetypes() {
		if _, err := c.Items.Weapon(a.Weapon); err != nil {
			dangling = append(dangling, fmt.Errorf("hero %q: %w", a.ID, err))
		}
		if _, err := c.Items.Armor(a.Armor); err != nil {
			dangling = append(dangling, fmt.Errorf("hero %q: %w", a.ID, err))
		}
	}
	for _, tier := range []ruleset.Tier{ruleset.TierEasy, ruleset.TierMedium, ruleset.TierHard, ruleset.TierBoss} {
		for _, tmpl := range c.Pools.Tier(tier) {
			lt := tmpl.LootTable()
			for _, drop := range lt.Items {
				if _, err := c.Items.Consumable(drop.ItemID); err != nil {
					dangling = append(dangling, fmt.Errorf("monster %q loot: %w", tmpl.ID, err))
				}
			}
		}
	}
	if len(dangling) > 0 {
		return fmt.Errorf("content integrity: %w", errors.Join(dangling...))
	}
	return nil
}
