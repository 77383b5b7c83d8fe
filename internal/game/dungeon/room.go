package dungeon

import (
	"fmt"

	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/npc"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// OutcomeKind classifies what a room holds.
type OutcomeKind int

const (
	OutcomeEmpty OutcomeKind = iota
	OutcomeHeal
	OutcomeMonster
	OutcomeBoss
	// OutcomeCleared is reported when the hero walks past the last room.
	OutcomeCleared
	// OutcomePending is reported by Advance before the new room is entered.
	OutcomePending
)

// String returns the lowercase outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeEmpty:
		return "empty"
	case OutcomeHeal:
		return "heal"
	case OutcomeMonster:
		return "monster"
	case OutcomeBoss:
		return "boss"
	case OutcomeCleared:
		return "cleared"
	case OutcomePending:
		return "pending"
	default:
		return "unknown"
	}
}

// RoomOutcome describes the result of entering or leaving a room.
type RoomOutcome struct {
	Kind OutcomeKind
	Room int
	// Amount is the heal event's HP value; Healed is what the hero actually regained.
	Amount  int
	Healed  int
	Monster *combat.Combatant
}

// EncounterRules are the room-event probabilities.
type EncounterRules struct {
	// MonsterChance is the share of non-boss rooms that hold a monster.
	MonsterChance float64
	// HealChance is the share that hold a heal event; the rest are empty.
	HealChance float64
	HealAmount int
}

// DefaultEncounterRules returns 60% monster, 30% heal of 30 HP, 10% empty.
func DefaultEncounterRules() EncounterRules {
	return EncounterRules{MonsterChance: 0.6, HealChance: 0.3, HealAmount: 30}
}

// Validate reports whether the chances form a valid distribution.
func (e EncounterRules) Validate() error {
	if e.MonsterChance < 0 || e.HealChance < 0 || e.MonsterChance+e.HealChance > 1 {
		return fmt.Errorf("monster (%v) and heal (%v) chances must be >= 0 and sum to at most 1",
			e.MonsterChance, e.HealChance)
	}
	if e.HealAmount < 0 {
		return fmt.Errorf("heal amount must be >= 0, got %d", e.HealAmount)
	}
	return nil
}

// Generator decides room outcomes.
type Generator struct {
	pools  *npc.Pools
	roller *dice.Roller
	rules  EncounterRules
}

// NewGenerator returns a Generator drawing monsters from pools.
//
// Precondition: pools and roller must be non-nil.
func NewGenerator(pools *npc.Pools, roller *dice.Roller, rules EncounterRules) *Generator {
	return &Generator{pools: pools, roller: roller, rules: rules}
}

// Generate decides what room of d holds.
// The last room always holds a monster from d's boss tier and consumes no event roll.
//
// Precondition: 1 <= room <= d.Rooms.
// Postcondition: the returned Monster, if any, is a fresh full-health instance.
func (g *Generator) Generate(d *ruleset.Dungeon, room int) (RoomOutcome, error) {
	if room < 1 || room > d.Rooms {
		return RoomOutcome{}, errs.Newf(errs.CodeInvalidAction, "room %d is outside %s", room, d.Name)
	}
	if room == d.Rooms {
		return g.spawn(OutcomeBoss, d.Boss, room)
	}
	roll := g.roller.Roll("room event")
	switch {
	case roll < g.rules.MonsterChance:
		return g.spawn(OutcomeMonster, d.Difficulty, room)
	case roll < g.rules.MonsterChance+g.rules.HealChance:
		return RoomOutcome{Kind: OutcomeHeal, Room: room, Amount: g.rules.HealAmount}, nil
	default:
		return RoomOutcome{Kind: OutcomeEmpty, Room: room}, nil
	}
}

func (g *Generator) spawn(kind OutcomeKind, tier ruleset.Tier, room int) (RoomOutcome, error) {
	tmpl, err := g.pools.Draw(tier, g.roller)
	if err != nil {
		return RoomOutcome{}, err
	}
	return RoomOutcome{Kind: kind, Room: room, Monster: combat.NewMonster(tmpl)}, nil
}

// EnterRoom generates the current room of run and applies it: a heal event
// heals the hero, a monster starts an encounter with the hero to act first.
//
// Postcondition: returns errs.ErrInvalidAction (and changes nothing) when the
// run is terminal or the room was already entered.
func (g *Generator) EnterRoom(run *Run) (RoomOutcome, error) {
	if run.Terminal() {
		return RoomOutcome{}, errs.Newf(errs.CodeInvalidAction, "run is %s", run.Status)
	}
	if run.entered {
		return RoomOutcome{}, errs.Newf(errs.CodeInvalidAction, "room %d was already entered", run.Room)
	}
	out, err := g.Generate(run.Dungeon, run.Room)
	if err != nil {
		return RoomOutcome{}, err
	}
	run.entered = true
	switch out.Kind {
	case OutcomeHeal:
		out.Healed = run.Hero.Combatant.Heal(out.Amount)
	case OutcomeMonster, OutcomeBoss:
		run.Monster = out.Monster
		run.Boss = out.Kind == OutcomeBoss
		run.Turn = TurnHero
		run.Status = StatusInCombat
	}
	return out, nil
}
