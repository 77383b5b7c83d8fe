package ruleset

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/cory-johannsen/crawl/internal/game/condition"
)

// SkillType selects how a skill resolves.
type SkillType string

const (
	// SkillFixedDamage deals exactly Value damage, bypassing the hit check and armor class.
	SkillFixedDamage SkillType = "damage"
	// SkillDamageMultiplier performs a hit-checked attack whose damage is multiplied by Value.
	SkillDamageMultiplier SkillType = "damage_mod"
	// SkillMultiHit performs Count independent hit-checked attacks.
	SkillMultiHit SkillType = "damage_multi"
	// SkillHeal restores Value HP to the caster.
	SkillHeal SkillType = "heal"
	// SkillBuff pushes a {Stat, Value, Duration} modifier onto the caster.
	SkillBuff SkillType = "buff"
)

// Skill is a class ability unlocked at a given level.
//
// Value is a float so damage multipliers such as 1.5 can be expressed; for
// every other type it holds a whole number.
type Skill struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Class       string    `yaml:"class"`
	Level       int       `yaml:"level"`
	Type        SkillType `yaml:"type"`
	Cost        int       `yaml:"cost"`
	Value       float64   `yaml:"value"`
	Stat        string    `yaml:"stat"`
	Duration    int       `yaml:"duration"`
	Count       int       `yaml:"count"`
	Description string    `yaml:"description"`
}

// Amount returns Value truncated to an integer amount of HP or stat delta.
func (s *Skill) Amount() int { return int(s.Value) }

// BuffStat returns the modifier stat of a buff skill.
//
// Precondition: s passed Validate and s.Type == SkillBuff.
func (s *Skill) BuffStat() condition.Stat {
	st, _ := condition.ParseStat(s.Stat)
	return st
}

// Validate reports every invariant violation of the skill, including the
// type-specific fields each SkillType requires.
func (s *Skill) Validate() error {
	var violations []error
	if s.ID == "" {
		violations = append(violations, errors.New("id must not be empty"))
	}
	if s.Class == "" {
		violations = append(violations, errors.New("class must not be empty"))
	}
	if s.Level < 1 {
		violations = append(violations, fmt.Errorf("level must be >= 1, got %d", s.Level))
	}
	if s.Cost < 0 {
		violations = append(violations, fmt.Errorf("cost must be >= 0, got %d", s.Cost))
	}
	switch s.Type {
	case SkillFixedDamage, SkillHeal:
		if s.Value <= 0 {
			violations = append(violations, fmt.Errorf("%s skill value must be > 0", s.Type))
		}
	case SkillDamageMultiplier:
		if s.Value <= 0 {
			violations = append(violations, errors.New("damage_mod skill value must be > 0"))
		}
	case SkillMultiHit:
		if s.Count < 1 {
			violations = append(violations, errors.New("damage_multi skill count must be >= 1"))
		}
	case SkillBuff:
		if _, ok := condition.ParseStat(s.Stat); !ok {
			violations = append(violations, fmt.Errorf("unknown buff stat %q", s.Stat))
		}
		if s.Duration < 1 {
			violations = append(violations, errors.New("buff skill duration must be >= 1"))
		}
	default:
		violations = append(violations, fmt.Errorf("unknown skill type %q", s.Type))
	}
	if len(violations) > 0 {
		return fmt.Errorf("skill %q: %w", s.ID, errors.Join(violations...))
	}
	return nil
}

// LoadSkills reads all .yaml files in dir of fsys and parses each as a list of Skills.
//
// Precondition: dir must be a readable directory of fsys.
// Postcondition: Returns all parsed and validated skills or a non-nil error.
func LoadSkills(fsys fs.FS, dir string) ([]*Skill, error) {
	skills, err := decodeDir[Skill](fsys, dir, "skill")
	if err != nil {
		return nil, err
	}
	for _, s := range skills {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return skills, nil
}
