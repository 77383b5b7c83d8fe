package combat

import (
	"strconv"

	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// CanUse reports why caster may not cast skill right now, or nil.
// Checks run in order: ownership, level, then MP.
//
// Precondition: caster and skill must be non-nil.
func CanUse(caster *Combatant, skill *ruleset.Skill) error {
	if skill.Class != caster.TemplateID {
		return errs.Newf(errs.CodeInvalidAction, "%s cannot use %s", caster.Name, skill.Name)
	}
	if caster.Level < skill.Level {
		return errs.WithMetadata(errs.CodeSkillNotUnlocked,
			skill.Name+" is not unlocked yet",
			map[string]string{"skill": skill.ID, "required_level": strconv.Itoa(skill.Level)})
	}
	if caster.CurrentMP < skill.Cost {
		return errs.Newf(errs.CodeInsufficientResource, "%s needs %d MP, has %d", skill.Name, skill.Cost, caster.CurrentMP)
	}
	return nil
}

// UseSkill casts skill from caster at target as caster's whole turn.
//
// Precondition: ctx and ctx.Roller must be non-nil; skill must have passed Validate.
// Postcondition: on error (InvalidAction, SkillNotUnlocked, InsufficientResource)
// nothing has changed. On success caster.CurrentMP decreased by exactly skill.Cost,
// the skill's effect was applied and end-of-turn housekeeping ran once.
func UseSkill(caster, target *Combatant, skill *ruleset.Skill, ctx *Context) (ActionResult, error) {
	if err := checkTurn(caster, target); err != nil {
		return ActionResult{}, err
	}
	if err := CanUse(caster, skill); err != nil {
		return ActionResult{}, err
	}
	if err := caster.SpendMP(skill.Cost); err != nil {
		return ActionResult{}, err
	}

	res := ActionResult{ActorID: caster.ID, TargetID: target.ID, Action: Skill(skill.ID), MPSpent: skill.Cost}
	res.eventf("%s uses %s", caster.Name, skill.Name)
	switch skill.Type {
	case ruleset.SkillFixedDamage:
		s := Strike{Hit: true}
		s.Damage, s.Halved = deliver(target, skill.Amount())
		res.Strikes = append(res.Strikes, s)
		res.eventf("%s takes %d damage", target.Name, s.Damage)
	case ruleset.SkillDamageMultiplier:
		strike(caster, target, skill.Value, ctx, &res)
	case ruleset.SkillMultiHit:
		for i := 0; i < skill.Count && !target.IsDead() && !caster.IsDead(); i++ {
			strike(caster, target, 1, ctx, &res)
		}
	case ruleset.SkillHeal:
		res.Healed = caster.Heal(skill.Amount())
		res.eventf("%s recovers %d HP", caster.Name, res.Healed)
	case ruleset.SkillBuff:
		if err := caster.Modifiers.Apply(skill.ID, skill.BuffStat(), skill.Amount(), skill.Duration); err != nil {
			caster.CurrentMP += skill.Cost
			return ActionResult{}, errs.Wrap(errs.CodeInvalidAction, "cannot apply "+skill.Name, err)
		}
		mods := caster.Modifiers.All()
		m := mods[len(mods)-1]
		res.Buff = &m
		res.eventf("%s gains %+d %s for %d turns", caster.Name, m.Delta, m.Stat, m.Remaining)
	}
	finishTurn(caster, target, &res)
	return res, nil
}
