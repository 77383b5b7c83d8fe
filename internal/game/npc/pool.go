package npc

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// Pools groups monster templates by difficulty tier.
type Pools struct {
	byID   map[string]*Template
	byTier map[ruleset.Tier][]*Template
}

// NewPools returns empty Pools.
//
// Postcondition: Returns a non-nil *Pools ready to accept registrations.
func NewPools() *Pools {
	return &Pools{
		byID:   make(map[string]*Template),
		byTier: make(map[ruleset.Tier][]*Template),
	}
}

// LoadPools reads the monsters directory of fsys into new Pools.
//
// Postcondition: Returns Pools with a non-empty easy tier, or an error.
func LoadPools(fsys fs.FS) (*Pools, error) {
	tmpls, err := LoadTemplates(fsys, "monsters")
	if err != nil {
		return nil, err
	}
	p := NewPools()
	for _, t := range tmpls {
		if err := p.Register(t); err != nil {
			return nil, err
		}
	}
	if len(p.byTier[ruleset.TierEasy]) == 0 {
		return nil, fmt.Errorf("npc: the easy tier must have at least one monster")
	}
	return p, nil
}

// Register adds tmpl to its tier's pool.
//
// Precondition: tmpl must have passed Validate.
// Postcondition: Template(tmpl.ID) returns tmpl; returns error if tmpl.ID already registered.
func (p *Pools) Register(tmpl *Template) error {
	if _, exists := p.byID[tmpl.ID]; exists {
		return fmt.Errorf("npc: template ID %q already registered", tmpl.ID)
	}
	p.byID[tmpl.ID] = tmpl
	list := append(p.byTier[tmpl.Tier], tmpl)
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	p.byTier[tmpl.Tier] = list
	return nil
}

// Template returns the template for id, or an errs.ErrNotFound error.
func (p *Pools) Template(id string) (*Template, error) {
	if t, ok := p.byID[id]; ok {
		return t, nil
	}
	return nil, errs.NotFound("monster", id)
}

// Tier returns the templates of tier in ID order. An unknown or empty tier
// falls back to the easy pool.
func (p *Pools) Tier(tier ruleset.Tier) []*Template {
	if list := p.byTier[tier]; len(list) > 0 {
		return list
	}
	return p.byTier[ruleset.TierEasy]
}

// Draw returns one uniformly chosen template from tier's pool.
//
// Precondition: roller must be non-nil; the resolved pool must be non-empty.
func (p *Pools) Draw(tier ruleset.Tier, roller *dice.Roller) (*Template, error) {
	list := p.Tier(tier)
	if len(list) == 0 {
		return nil, errs.NotFound("monster tier", string(tier))
	}
	return list[roller.Pick("monster "+string(tier), len(list))], nil
}
