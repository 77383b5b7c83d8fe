// Package dungeon sequences the rooms of a dungeon run and generates what each
// room holds.
package dungeon

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/crawl/internal/game/character"
	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// Status is the lifecycle state of a run.
type Status int

const (
	StatusExploring Status = iota
	StatusInCombat
	StatusDefeated
	StatusCleared
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusExploring:
		return "exploring"
	case StatusInCombat:
		return "in_combat"
	case StatusDefeated:
		return "defeated"
	case StatusCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Turn names which side acts next in an encounter.
type Turn int

const (
	TurnHero Turn = iota
	TurnMonster
)

// Run is one hero's descent through one dungeon.
//
// Invariant: 1 <= Room <= Dungeon.Rooms+1; Room == Dungeon.Rooms+1 iff Status == StatusCleared.
// Monster is non-nil iff Status == StatusInCombat.
type Run struct {
	ID      string
	Dungeon *ruleset.Dungeon
	Hero    *character.Character
	Room    int
	Monster *combat.Combatant
	// Boss is true while the active monster is the dungeon's boss.
	Boss         bool
	Turn         Turn
	Status       Status
	BossDefeated bool
	// entered is true once the current room's outcome has been generated.
	entered bool
}

// NewRun starts hero at room 1 of d.
//
// Precondition: d and hero must be non-nil.
// Postcondition: Room == 1, Status == StatusExploring, the room is not yet entered.
func NewRun(d *ruleset.Dungeon, hero *character.Character) *Run {
	return &Run{
		ID:      uuid.New().String(),
		Dungeon: d,
		Hero:    hero,
		Room:    1,
		Status:  StatusExploring,
	}
}

// Terminal reports whether the run has ended in defeat or victory.
func (r *Run) Terminal() bool {
	return r.Status == StatusDefeated || r.Status == StatusCleared
}

// Entered reports whether the current room's outcome has been generated.
func (r *Run) Entered() bool { return r.entered }

// IsBossRoom reports whether the current room is the dungeon's last.
func (r *Run) IsBossRoom() bool { return r.Room == r.Dungeon.Rooms }

// Advance moves to the next room.
//
// Postcondition: returns errs.ErrInvalidAction (and changes nothing) when the
// run is terminal, the current room has not been entered, or a live monster
// blocks the way. Moving past the last room marks the run cleared.
func (r *Run) Advance() (RoomOutcome, error) {
	switch {
	case r.Terminal():
		return RoomOutcome{}, errs.Newf(errs.CodeInvalidAction, "run is %s", r.Status)
	case r.Status == StatusInCombat:
		return RoomOutcome{}, errs.New(errs.CodeInvalidAction, "cannot leave the room while a monster lives")
	case !r.entered:
		return RoomOutcome{}, errs.Newf(errs.CodeInvalidAction, "room %d has not been entered", r.Room)
	}
	r.Room++
	r.entered = false
	if r.Room > r.Dungeon.Rooms {
		r.Status = StatusCleared
		return RoomOutcome{Kind: OutcomeCleared, Room: r.Room}, nil
	}
	return RoomOutcome{Kind: OutcomePending, Room: r.Room}, nil
}

// EndEncounter clears the active monster after a terminal combat result.
//
// Postcondition: a dead hero marks the run defeated; otherwise the run returns
// to exploring and BossDefeated is set when the boss fell.
func (r *Run) EndEncounter() {
	boss := r.Boss
	r.Monster = nil
	r.Boss = false
	r.Turn = TurnHero
	if r.Hero.Combatant.IsDead() {
		r.Status = StatusDefeated
		return
	}
	if boss {
		r.BossDefeated = true
	}
	r.Status = StatusExploring
}
