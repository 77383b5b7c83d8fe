package character

import (
	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/npc"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// LevelUp reports the outcome of a level recomputation.
type LevelUp struct {
	From     int
	To       int
	Unlocked []*ruleset.Skill
}

// Gained returns the number of levels gained.
func (l LevelUp) Gained() int { return l.To - l.From }

// OnMonsterDefeated awards the monster's experience to the hero.
//
// Precondition: monster must be dead.
// Postcondition: c.Experience grew by monster.XP; returns the xp awarded.
func OnMonsterDefeated(c *Character, monster *combat.Combatant) int {
	c.Experience += monster.XP
	return monster.XP
}

// CheckLevelUp recomputes the hero's level from its experience total.
// The level never decreases, and recomputing from an unchanged total is a no-op.
// When restore is true, every gained level refills HP and MP.
//
// Precondition: c and rules must be non-nil.
// Postcondition: c.Level == max(old level, LevelFor(c.Experience)); the
// returned Unlocked lists skills whose required level lies in (From, To].
func CheckLevelUp(c *Character, rules *ruleset.Registry, restore bool) LevelUp {
	lu := LevelUp{From: c.Level, To: c.Level}
	target := rules.Levels().LevelFor(c.Experience)
	if target <= c.Level {
		return lu
	}
	lu.To = target
	lu.Unlocked = rules.UnlockedBetween(c.Class(), c.Level, target)
	c.Level = target
	c.Combatant.Level = target
	if restore {
		c.Combatant.CurrentHP = c.Combatant.MaxHP
		c.Combatant.CurrentMP = c.Combatant.MaxMP
	}
	return lu
}

// Collect moves generated loot into the hero's purse and backpack.
// Items that do not fit, or that name no known consumable, are returned as lost.
//
// Postcondition: c.Purse grew by loot.Gold.
func Collect(c *Character, loot npc.LootResult) (kept, lost []npc.LootItem) {
	c.Purse.Earn(loot.Gold)
	for _, item := range loot.Items {
		def, err := c.items.Consumable(item.ItemDefID)
		if err != nil || c.Backpack.Add(def, item.Quantity) != nil {
			lost = append(lost, item)
			continue
		}
		kept = append(kept, item)
	}
	return kept, lost
}
