package combat

import (
	"math"

	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/inventory"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// SkillBook resolves skill IDs.
type SkillBook interface {
	Skill(id string) (*ruleset.Skill, error)
}

// ItemBag hands out consumables carried by the acting combatant.
type ItemBag interface {
	// Consume removes one unit of itemID and returns its definition.
	// On error nothing is removed.
	Consume(itemID string) (*inventory.ConsumableDef, error)
}

// Context carries the collaborators a turn resolution needs.
type Context struct {
	Roller *dice.Roller
	Rules  Rules
	Skills SkillBook
	// Items is the actor's consumable supply; nil when the actor carries none.
	Items ItemBag
}

// ResolveAction resolves one full turn of actor against target.
//
// Precondition: ctx and ctx.Roller must be non-nil.
// Postcondition: on error, no combatant state has changed. On success the
// target's defending flag is cleared, the actor's modifiers have ticked once and
// the result reports whether either combatant died.
func ResolveAction(actor, target *Combatant, action Action, ctx *Context) (ActionResult, error) {
	if err := checkTurn(actor, target); err != nil {
		return ActionResult{}, err
	}
	res := ActionResult{ActorID: actor.ID, TargetID: target.ID, Action: action}
	switch action.Type {
	case ActionAttack:
		strike(actor, target, 1, ctx, &res)
	case ActionDefend:
		actor.Defending = true
		res.eventf("%s braces for the next blow", actor.Name)
	case ActionSkill:
		if ctx.Skills == nil {
			return ActionResult{}, errs.Newf(errs.CodeInvalidAction, "%s has no skills", actor.Name)
		}
		skill, err := ctx.Skills.Skill(action.SkillID)
		if err != nil {
			return ActionResult{}, err
		}
		return UseSkill(actor, target, skill, ctx)
	case ActionItem:
		if err := useItem(actor, target, action.ItemID, ctx, &res); err != nil {
			return ActionResult{}, err
		}
	default:
		return ActionResult{}, errs.Newf(errs.CodeInvalidAction, "unknown action %q", action.Type)
	}
	finishTurn(actor, target, &res)
	return res, nil
}

// MonsterTurn resolves a monster's counter-turn. Monsters always basic-attack.
func MonsterTurn(monster, hero *Combatant, ctx *Context) (ActionResult, error) {
	return ResolveAction(monster, hero, Attack(), ctx)
}

func checkTurn(actor, target *Combatant) error {
	if actor == nil || target == nil {
		return errs.New(errs.CodeInvalidAction, "no opponent to act against")
	}
	if actor.IsDead() {
		return errs.Newf(errs.CodeInvalidAction, "%s is dead and cannot act", actor.Name)
	}
	if target.IsDead() {
		return errs.Newf(errs.CodeInvalidAction, "%s is already dead", target.Name)
	}
	return nil
}

// strike performs one hit-checked weapon attack, multiplying rolled damage by mult.
func strike(actor, target *Combatant, mult float64, ctx *Context, res *ActionResult) {
	as, ts := EffectiveStats(actor), EffectiveStats(target)
	roll := ctx.Roller.Roll("hit")
	s := Strike{Checked: true, Roll: roll, Hit: ctx.Rules.Hits(roll, as.HitBonus, ts.ArmorClass)}
	if !s.Hit {
		res.Strikes = append(res.Strikes, s)
		res.eventf("%s misses %s", actor.Name, target.Name)
		return
	}
	dmg := ctx.Roller.RollInt("damage", as.MinDamage, as.MaxDamage)
	if mult != 1 {
		dmg = int(math.Floor(float64(dmg) * mult))
	}
	dmg += as.Poison
	s.Damage, s.Halved = deliver(target, dmg)
	res.eventf("%s hits %s for %d damage", actor.Name, target.Name, s.Damage)
	if ts.Thorns > 0 {
		s.Reflected, _ = deliver(actor, ts.Thorns)
		res.eventf("%s takes %d thorns damage", actor.Name, s.Reflected)
	}
	res.Strikes = append(res.Strikes, s)
}

// deliver applies one damage instance, halving it (floor) when target is defending.
func deliver(target *Combatant, dmg int) (dealt int, halved bool) {
	if target.Defending {
		dmg /= 2
		target.Defending = false
		halved = true
	}
	return target.ApplyDamage(dmg), halved
}

func useItem(actor, target *Combatant, itemID string, ctx *Context, res *ActionResult) error {
	if ctx.Items == nil {
		return errs.Newf(errs.CodeInvalidAction, "%s carries no items", actor.Name)
	}
	def, err := ctx.Items.Consume(itemID)
	if err != nil {
		return err
	}
	switch def.Kind {
	case inventory.ConsumableHeal:
		res.Healed = actor.Heal(def.Value)
		res.eventf("%s uses %s and recovers %d HP", actor.Name, def.Name, res.Healed)
	case inventory.ConsumableDamage:
		s := Strike{Hit: true}
		s.Damage, s.Halved = deliver(target, def.Value)
		res.Strikes = append(res.Strikes, s)
		res.eventf("%s throws %s at %s for %d damage", actor.Name, def.Name, target.Name, s.Damage)
	}
	return nil
}

// finishTurn runs end-of-turn housekeeping exactly once per resolved turn.
func finishTurn(actor, target *Combatant, res *ActionResult) {
	target.Defending = false
	res.Expired = actor.Modifiers.Tick()
	for _, m := range res.Expired {
		res.eventf("%s wears off %s", m.Source, actor.Name)
	}
	res.TargetDied = target.IsDead()
	res.ActorDied = actor.IsDead()
	if res.TargetDied {
		res.eventf("%s is defeated", target.Name)
	}
	if res.ActorDied {
		res.eventf("%s is defeated", actor.Name)
	}
}
