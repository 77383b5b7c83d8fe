package combat

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/crawl/internal/game/condition"
	"github.com/cory-johannsen/crawl/internal/game/inventory"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// Stats are a combatant's effective combat statistics for the current turn.
type Stats struct {
	HitBonus   int
	MinDamage  int
	MaxDamage  int
	ArmorClass int
	Speed      int
	// Thorns is damage reflected onto an attacker whose hit lands.
	Thorns int
	// Poison is extra damage added to every landed weapon strike.
	Poison int
}

// HeroBase combines an archetype with its equipped weapon and armor.
//
// Precondition: all arguments must be non-nil.
// Postcondition: HitBonus = a.BaseHit + w.HitBonus; damage is the weapon range
// shifted by a.BaseDamage on both ends; AC = armor.AC.
func HeroBase(a *ruleset.Archetype, w *inventory.WeaponDef, armor *inventory.ArmorDef) BaseStats {
	return BaseStats{
		HitBonus:  a.BaseHit + w.HitBonus,
		MinDamage: w.MinDamage + a.BaseDamage,
		MaxDamage: w.MaxDamage + a.BaseDamage,
		AC:        armor.AC,
		Speed:     a.Speed,
	}
}

// EffectiveStats returns c's base stats with every active modifier summed on top.
// Damage modifiers shift both ends of the range.
//
// Precondition: c must be non-nil.
// Postcondition: MinDamage >= 0; MaxDamage >= MinDamage; ArmorClass, Thorns
// and Poison are >= 0. c is not modified.
func EffectiveStats(c *Combatant) Stats {
	mods := c.Modifiers
	dmg := mods.Sum(condition.StatDamage)
	s := Stats{
		HitBonus:   c.Base.HitBonus + mods.Sum(condition.StatHit),
		MinDamage:  max(0, c.Base.MinDamage+dmg),
		MaxDamage:  max(0, c.Base.MaxDamage+dmg),
		ArmorClass: max(0, c.Base.AC+mods.Sum(condition.StatAC)),
		Speed:      c.Base.Speed + mods.Sum(condition.StatSpeed),
		Thorns:     max(0, mods.Sum(condition.StatThorns)),
		Poison:     max(0, mods.Sum(condition.StatPoison)),
	}
	s.MaxDamage = max(s.MaxDamage, s.MinDamage)
	return s
}

// NewHero creates a level-1, full-health hero combatant for archetype a.
//
// Precondition: all arguments must be non-nil.
// Postcondition: HP and MP are at their maxima; Base == HeroBase(a, w, armor).
func NewHero(a *ruleset.Archetype, w *inventory.WeaponDef, armor *inventory.ArmorDef) *Combatant {
	return &Combatant{
		ID:         uuid.New().String(),
		Kind:       KindHero,
		Name:       a.Name,
		TemplateID: a.ID,
		Level:      1,
		MaxHP:      a.MaxHP,
		CurrentHP:  a.MaxHP,
		MaxMP:      a.MaxMP,
		CurrentMP:  a.MaxMP,
		Base:       HeroBase(a, w, armor),
		Modifiers:  condition.NewActiveSet(),
	}
}
