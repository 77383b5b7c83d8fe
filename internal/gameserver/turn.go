package gameserver

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/character"
	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/npc"
)

// Victory reports the rewards of a won encounter.
type Victory struct {
	MonsterID string
	Boss      bool
	XP        int
	Gold      int
	Loot      []npc.LootItem
	// Lost holds loot that did not fit in the backpack.
	Lost    []npc.LootItem
	LevelUp character.LevelUp
}

// TurnResult is the outcome of one PerformAction call: the hero's turn and,
// when the encounter survived it, the monster's counter-turn.
type TurnResult struct {
	Hero    combat.ActionResult
	Monster *combat.ActionResult
	Victory *Victory
	Defeat  bool
}

// Terminal reports whether the encounter ended.
func (t TurnResult) Terminal() bool { return t.Victory != nil || t.Defeat }

// PerformAction resolves the hero's action and the monster's counter-turn as
// one atomic step.
//
// Precondition: run is in combat with the hero to act.
// Postcondition: on error nothing changes (errs.ErrInvalidAction when no
// encounter is active; errs.ErrInsufficientResource, errs.ErrSkillNotUnlocked
// and errs.ErrNotFound from the action). On success the turn owner is the
// hero again, or the encounter has ended.
func (e *Engine) PerformAction(run *dungeon.Run, action combat.Action) (TurnResult, error) {
	if run == nil || run.Status != dungeon.StatusInCombat || run.Monster == nil {
		return TurnResult{}, errs.New(errs.CodeInvalidAction, "there is nothing to fight")
	}
	if run.Turn != dungeon.TurnHero {
		return TurnResult{}, errs.New(errs.CodeInvalidAction, "it is not the hero's turn")
	}
	hero, monster := run.Hero.Combatant, run.Monster
	ctx := &combat.Context{
		Roller: e.roller,
		Rules:  e.opts.Combat,
		Skills: e.content.Rules,
		Items:  run.Hero,
	}

	heroRes, err := combat.ResolveAction(hero, monster, action, ctx)
	if err != nil {
		return TurnResult{}, err
	}
	e.logTurn(run, hero, heroRes)
	result := TurnResult{Hero: heroRes}
	if e.settle(run, &result) {
		return result, nil
	}

	run.Turn = dungeon.TurnMonster
	monsterRes, err := combat.MonsterTurn(monster, hero, &combat.Context{Roller: e.roller, Rules: e.opts.Combat})
	run.Turn = dungeon.TurnHero
	if err != nil {
		return TurnResult{}, err
	}
	e.logTurn(run, monster, monsterRes)
	result.Monster = &monsterRes
	e.settle(run, &result)
	return result, nil
}

// settle closes the encounter when either side died and reports whether it did.
func (e *Engine) settle(run *dungeon.Run, result *TurnResult) bool {
	hero, monster := run.Hero.Combatant, run.Monster
	switch {
	case hero.IsDead():
		result.Defeat = true
		run.EndEncounter()
		e.logger.Info("hero defeated",
			zap.String("run_id", run.ID),
			zap.Int("room", run.Room),
			zap.String("monster", monster.TemplateID),
		)
		return true
	case monster.IsDead():
		result.Victory = e.reward(run, monster)
		run.EndEncounter()
		return true
	}
	return false
}

func (e *Engine) reward(run *dungeon.Run, monster *combat.Combatant) *Victory {
	v := &Victory{MonsterID: monster.TemplateID, Boss: run.Boss}
	v.XP = character.OnMonsterDefeated(run.Hero, monster)
	if tmpl, err := e.content.Pools.Template(monster.TemplateID); err == nil {
		loot := npc.GenerateLoot(tmpl.LootTable(), e.roller)
		v.Gold = loot.Gold
		v.Loot, v.Lost = character.Collect(run.Hero, loot)
	}
	v.LevelUp = character.CheckLevelUp(run.Hero, e.content.Rules, e.opts.LevelUpRestore)
	e.logger.Info("monster defeated",
		zap.String("run_id", run.ID),
		zap.String("monster", v.MonsterID),
		zap.Bool("boss", v.Boss),
		zap.Int("xp", v.XP),
		zap.Int("gold", v.Gold),
		zap.Int("level", run.Hero.Level),
	)
	if v.LevelUp.Gained() > 0 {
		e.logger.Info("level up",
			zap.String("run_id", run.ID),
			zap.Int("from", v.LevelUp.From),
			zap.Int("to", v.LevelUp.To),
			zap.Int("skills_unlocked", len(v.LevelUp.Unlocked)),
		)
	}
	return v
}

func (e *Engine) logTurn(run *dungeon.Run, actor *combat.Combatant, res combat.ActionResult) {
	e.logger.Debug("turn resolved",
		zap.String("run_id", run.ID),
		zap.Stringer("actor", actor.Kind),
		zap.Stringer("action", res.Action.Type),
		zap.Int("damage", res.DamageDealt()),
		zap.Int("healed", res.Healed),
		zap.Bool("missed", res.Missed()),
	)
}
