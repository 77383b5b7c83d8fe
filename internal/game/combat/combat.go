// Package combat implements the turn-based combat rules: effective stats, hit
// checks, damage, defending, skills and modifier housekeeping.
package combat

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/crawl/internal/game/condition"
	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/npc"
)

// Kind distinguishes the hero from monster combatants.
type Kind int

const (
	KindHero Kind = iota
	KindMonster
)

// String returns "hero" or "monster".
func (k Kind) String() string {
	if k == KindHero {
		return "hero"
	}
	return "monster"
}

// BaseStats are the stats a combatant starts its turn with before modifiers.
type BaseStats struct {
	HitBonus  int
	MinDamage int
	MaxDamage int
	AC        int
	Speed     int
}

// Combatant represents one participant in an encounter: the hero or a monster instance.
//
// Invariant: 0 <= CurrentHP <= MaxHP; 0 <= CurrentMP <= MaxMP; Dead iff CurrentHP == 0.
type Combatant struct {
	ID   string
	Kind Kind
	Name string
	// TemplateID is the archetype ID for the hero or the monster template ID.
	TemplateID string
	Level      int
	MaxHP      int
	CurrentHP  int
	MaxMP      int
	CurrentMP  int
	Base       BaseStats
	Modifiers  *condition.ActiveSet
	// Defending halves the next incoming damage instance.
	Defending bool
	Dead      bool
	// XP is the experience awarded for defeating a monster; zero for the hero.
	XP int
}

// NewMonster creates a full-health monster instance from tmpl.
//
// Precondition: tmpl must have passed Validate.
// Postcondition: CurrentHP == tmpl.MaxHP; the instance has a fresh unique ID.
func NewMonster(tmpl *npc.Template) *Combatant {
	return &Combatant{
		ID:         uuid.New().String(),
		Kind:       KindMonster,
		Name:       tmpl.Name,
		TemplateID: tmpl.ID,
		Level:      1,
		MaxHP:      tmpl.MaxHP,
		CurrentHP:  tmpl.MaxHP,
		Base: BaseStats{
			HitBonus:  tmpl.HitBonus,
			MinDamage: tmpl.MinDamage,
			MaxDamage: tmpl.MaxDamage,
			AC:        tmpl.AC,
		},
		Modifiers: condition.NewActiveSet(),
		XP:        tmpl.XP,
	}
}

// IsHero reports whether this combatant is the hero.
func (c *Combatant) IsHero() bool { return c.Kind == KindHero }

// IsDead reports whether this combatant has been killed.
func (c *Combatant) IsDead() bool { return c.Dead || c.CurrentHP <= 0 }

// ApplyDamage reduces CurrentHP by amount, flooring at zero, and marks the
// combatant dead when it reaches zero. It returns the HP actually removed.
//
// Precondition: amount must be >= 0.
// Postcondition: 0 <= CurrentHP <= MaxHP.
func (c *Combatant) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := c.CurrentHP
	c.CurrentHP -= amount
	if c.CurrentHP <= 0 {
		c.CurrentHP = 0
		c.Dead = true
	}
	return before - c.CurrentHP
}

// Heal restores up to amount HP, capped at MaxHP, and returns the HP restored.
// Dead combatants are not healed.
//
// Postcondition: 0 <= CurrentHP <= MaxHP.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 || c.IsDead() {
		return 0
	}
	before := c.CurrentHP
	c.CurrentHP = min(c.MaxHP, c.CurrentHP+amount)
	return c.CurrentHP - before
}

// SpendMP removes cost MP.
//
// Postcondition: returns errs.ErrInsufficientResource and leaves MP unchanged
// when cost exceeds CurrentMP.
func (c *Combatant) SpendMP(cost int) error {
	if cost > c.CurrentMP {
		return errs.Newf(errs.CodeInsufficientResource, "%s needs %d MP, has %d", c.Name, cost, c.CurrentMP)
	}
	if cost > 0 {
		c.CurrentMP -= cost
	}
	return nil
}

// RestoreAll sets HP and MP to their maxima and clears every modifier and the
// defending flag.
//
// Precondition: the combatant is not dead.
func (c *Combatant) RestoreAll() {
	c.CurrentHP = c.MaxHP
	c.CurrentMP = c.MaxMP
	c.Defending = false
	c.Modifiers.Clear()
}
