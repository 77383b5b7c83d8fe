package ruleset

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/cory-johannsen/crawl/internal/game/errs"
)

// Registry provides O(1) lookup of the reference tables by ID.
type Registry struct {
	archetypes map[string]*Archetype
	skills     map[string]*Skill
	byClass    map[string][]*Skill
	dungeons   map[string]*Dungeon
	levels     *LevelTable
}

// NewRegistry returns an empty Registry using levels as its level table.
//
// Precondition: levels must be non-nil.
// Postcondition: Returns a non-nil *Registry ready to accept registrations.
func NewRegistry(levels *LevelTable) *Registry {
	if levels == nil {
		panic("ruleset.NewRegistry: precondition violated: levels must be non-nil")
	}
	return &Registry{
		archetypes: make(map[string]*Archetype),
		skills:     make(map[string]*Skill),
		byClass:    make(map[string][]*Skill),
		dungeons:   make(map[string]*Dungeon),
		levels:     levels,
	}
}

// Load reads the heroes, skills, dungeons and levels directories of fsys.
//
// Postcondition: Returns a populated Registry or the first load/registration error.
// Every skill must belong to a loaded archetype.
func Load(fsys fs.FS) (*Registry, error) {
	levels, err := LoadLevelTable(fsys, "levels")
	if err != nil {
		return nil, err
	}
	reg := NewRegistry(levels)
	archetypes, err := LoadArchetypes(fsys, "heroes")
	if err != nil {
		return nil, err
	}
	for _, a := range archetypes {
		if err := reg.RegisterArchetype(a); err != nil {
			return nil, err
		}
	}
	skills, err := LoadSkills(fsys, "skills")
	if err != nil {
		return nil, err
	}
	for _, s := range skills {
		if err := reg.RegisterSkill(s); err != nil {
			return nil, err
		}
	}
	dungeons, err := LoadDungeons(fsys, "dungeons")
	if err != nil {
		return nil, err
	}
	for _, d := range dungeons {
		if err := reg.RegisterDungeon(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// RegisterArchetype adds a to the registry.
//
// Postcondition: Archetype(a.ID) returns a; returns error if a.ID already registered.
func (r *Registry) RegisterArchetype(a *Archetype) error {
	if _, exists := r.archetypes[a.ID]; exists {
		return fmt.Errorf("ruleset: archetype ID %q already registered", a.ID)
	}
	r.archetypes[a.ID] = a
	return nil
}

// RegisterSkill adds s to the registry.
//
// Postcondition: Skill(s.ID) returns s; returns error if s.ID is already
// registered or s.Class names no registered archetype.
func (r *Registry) RegisterSkill(s *Skill) error {
	if _, exists := r.skills[s.ID]; exists {
		return fmt.Errorf("ruleset: skill ID %q already registered", s.ID)
	}
	if _, ok := r.archetypes[s.Class]; !ok {
		return fmt.Errorf("ruleset: skill %q belongs to unknown class %q", s.ID, s.Class)
	}
	r.skills[s.ID] = s
	list := append(r.byClass[s.Class], s)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Level < list[j].Level })
	r.byClass[s.Class] = list
	return nil
}

// RegisterDungeon adds d to the registry.
//
// Postcondition: Dungeon(d.ID) returns d; returns error if d.ID already registered.
func (r *Registry) RegisterDungeon(d *Dungeon) error {
	if _, exists := r.dungeons[d.ID]; exists {
		return fmt.Errorf("ruleset: dungeon ID %q already registered", d.ID)
	}
	r.dungeons[d.ID] = d
	return nil
}

// Archetype returns the hero archetype for id, or an errs.ErrNotFound error.
func (r *Registry) Archetype(id string) (*Archetype, error) {
	if a, ok := r.archetypes[id]; ok {
		return a, nil
	}
	return nil, errs.NotFound("hero", id)
}

// Skill returns the skill for id, or an errs.ErrNotFound error.
func (r *Registry) Skill(id string) (*Skill, error) {
	if s, ok := r.skills[id]; ok {
		return s, nil
	}
	return nil, errs.NotFound("skill", id)
}

// Dungeon returns the dungeon for id, or an errs.ErrNotFound error.
func (r *Registry) Dungeon(id string) (*Dungeon, error) {
	if d, ok := r.dungeons[id]; ok {
		return d, nil
	}
	return nil, errs.NotFound("dungeon", id)
}

// SkillsFor returns the skills of class ordered by required level.
//
// Postcondition: the returned slice is a copy.
func (r *Registry) SkillsFor(class string) []*Skill {
	out := make([]*Skill, len(r.byClass[class]))
	copy(out, r.byClass[class])
	return out
}

// UnlockedBetween returns the skills of class whose required level is in (from, to].
func (r *Registry) UnlockedBetween(class string, from, to int) []*Skill {
	var out []*Skill
	for _, s := range r.byClass[class] {
		if s.Level > from && s.Level <= to {
			out = append(out, s)
		}
	}
	return out
}

// Archetypes returns every archetype sorted by ID.
func (r *Registry) Archetypes() []*Archetype {
	out := make([]*Archetype, 0, len(r.archetypes))
	for _, a := range r.archetypes {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Dungeons returns every dungeon sorted by room count, then ID.
func (r *Registry) Dungeons() []*Dungeon {
	out := make([]*Dungeon, 0, len(r.dungeons))
	for _, d := range r.dungeons {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rooms != out[j].Rooms {
			return out[i].Rooms < out[j].Rooms
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Levels returns the experience level table.
func (r *Registry) Levels() *LevelTable { return r.levels }
