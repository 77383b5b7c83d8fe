// Package gameserver exposes the rules engine to a presentation layer as a small
// synchronous API over explicit dungeon runs.
package gameserver

import (
	"errors"

	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/character"
	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/inventory"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// Options tunes the engine's rules.
type Options struct {
	Combat    combat.Rules
	Encounter dungeon.EncounterRules
	// LevelUpRestore refills HP and MP whenever the hero gains a level.
	LevelUpRestore bool
	BackpackSlots  int
}

// DefaultOptions returns the stock rules.
func DefaultOptions() Options {
	return Options{
		Combat:         combat.DefaultRules(),
		Encounter:      dungeon.DefaultEncounterRules(),
		LevelUpRestore: true,
		BackpackSlots:  character.DefaultBackpackSlots,
	}
}

// Engine resolves player intents against dungeon runs.
//
// Runs share nothing; an Engine holds only immutable tables and the roller.
// Calls for one run must not overlap.
type Engine struct {
	content *Content
	roller  *dice.Roller
	gen     *dungeon.Generator
	opts    Options
	logger  *zap.Logger
}

// NewEngine creates an Engine rolling with src.
//
// Precondition: content and src must be non-nil. A nil logger is replaced by a no-op logger.
// Postcondition: Returns a ready Engine, or an error when opts are invalid.
func NewEngine(content *Content, src dice.Source, opts Options, logger *zap.Logger) (*Engine, error) {
	if content == nil || src == nil {
		return nil, errors.New("gameserver: content and random source must be non-nil")
	}
	if err := opts.Combat.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Encounter.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	roller := dice.NewLoggedRoller(src, logger)
	return &Engine{
		content: content,
		roller:  roller,
		gen:     dungeon.NewGenerator(content.Pools, roller, opts.Encounter),
		opts:    opts,
		logger:  logger,
	}, nil
}

// Content returns the reference tables the engine was built with.
func (e *Engine) Content() *Content { return e.content }

// StartRun creates a fresh level-1 hero of heroID at room 1 of dungeonID.
//
// Postcondition: returns errs.ErrNotFound for an unknown hero or dungeon.
func (e *Engine) StartRun(heroID, dungeonID string) (*dungeon.Run, error) {
	a, err := e.content.Rules.Archetype(heroID)
	if err != nil {
		return nil, err
	}
	d, err := e.content.Rules.Dungeon(dungeonID)
	if err != nil {
		return nil, err
	}
	hero, err := character.Build(a, e.content.Items, e.opts.BackpackSlots)
	if err != nil {
		return nil, err
	}
	run := dungeon.NewRun(d, hero)
	e.logger.Info("run started",
		zap.String("run_id", run.ID),
		zap.String("hero", a.ID),
		zap.String("dungeon", d.ID),
		zap.Int("rooms", d.Rooms),
	)
	return run, nil
}

// EnterRoom generates and applies the current room of run.
//
// Postcondition: returns errs.ErrInvalidAction when the room was already
// entered or the run is over.
func (e *Engine) EnterRoom(run *dungeon.Run) (dungeon.RoomOutcome, error) {
	if run == nil {
		return dungeon.RoomOutcome{}, errs.New(errs.CodeInvalidAction, "no run")
	}
	out, err := e.gen.EnterRoom(run)
	if err != nil {
		return dungeon.RoomOutcome{}, err
	}
	fields := []zap.Field{
		zap.String("run_id", run.ID),
		zap.Int("room", out.Room),
		zap.Stringer("outcome", out.Kind),
	}
	if out.Monster != nil {
		fields = append(fields, zap.String("monster", out.Monster.TemplateID))
	}
	e.logger.Info("room entered", fields...)
	return out, nil
}

// AdvanceRoom leaves the current room and enters the next one.
//
// Postcondition: returns an OutcomeCleared outcome when the hero walks past
// the last room; errs.ErrInvalidAction while a monster lives or before the
// current room was entered.
func (e *Engine) AdvanceRoom(run *dungeon.Run) (dungeon.RoomOutcome, error) {
	if run == nil {
		return dungeon.RoomOutcome{}, errs.New(errs.CodeInvalidAction, "no run")
	}
	out, err := run.Advance()
	if err != nil {
		return dungeon.RoomOutcome{}, err
	}
	if out.Kind == dungeon.OutcomeCleared {
		e.logger.Info("dungeon cleared",
			zap.String("run_id", run.ID),
			zap.String("dungeon", run.Dungeon.ID),
			zap.Int("level", run.Hero.Level),
			zap.Int("gold", run.Hero.Purse.Gold()),
		)
		return out, nil
	}
	return e.EnterRoom(run)
}

// SkillStatus describes one of the hero's class skills.
type SkillStatus struct {
	Skill      *ruleset.Skill
	Unlocked   bool
	Affordable bool
}

// Skills lists the hero's class skills in required-level order.
func (e *Engine) Skills(run *dungeon.Run) []SkillStatus {
	hero := run.Hero
	var out []SkillStatus
	for _, s := range e.content.Rules.SkillsFor(hero.Class()) {
		out = append(out, SkillStatus{
			Skill:      s,
			Unlocked:   hero.Level >= s.Level,
			Affordable: hero.Combatant.CurrentMP >= s.Cost,
		})
	}
	return out
}

// Shop returns everything for sale.
func (e *Engine) Shop() []inventory.ShopItem { return e.content.Items.ShopListing() }

// Buy spends the hero's gold on itemID. Weapons and armor are equipped at once;
// consumables go into the backpack.
//
// Postcondition: on error (errs.ErrInvalidAction outside exploration, for items
// not for sale or a full backpack; errs.ErrInsufficientResource for too little
// gold; errs.ErrNotFound for unknown items) nothing changes. Buying the
// weapon or armor already equipped is errs.ErrInvalidAction.
func (e *Engine) Buy(run *dungeon.Run, itemID string) (inventory.ShopItem, error) {
	if err := exploring(run); err != nil {
		return inventory.ShopItem{}, err
	}
	item, ok := e.shopItem(itemID)
	if !ok {
		if e.known(itemID) {
			return inventory.ShopItem{}, errs.Newf(errs.CodeInvalidAction, "%s is not for sale", itemID)
		}
		return inventory.ShopItem{}, errs.NotFound("item", itemID)
	}
	hero := run.Hero
	if equipped(hero, item) {
		return inventory.ShopItem{}, errs.Newf(errs.CodeInvalidAction, "you already have %s equipped", item.Name)
	}
	if hero.Purse.Gold() < item.Price {
		return inventory.ShopItem{}, errs.Newf(errs.CodeInsufficientResource, "%s costs %s, you have %s",
			item.Name, inventory.FormatGold(item.Price), inventory.FormatGold(hero.Purse.Gold()))
	}
	switch item.Kind {
	case "weapon":
		w, _ := e.content.Items.Weapon(itemID)
		hero.Equip(w)
	case "armor":
		a, _ := e.content.Items.Armor(itemID)
		hero.Wear(a)
	case "consumable":
		c, _ := e.content.Items.Consumable(itemID)
		if err := hero.Backpack.Add(c, 1); err != nil {
			return inventory.ShopItem{}, err
		}
	}
	if err := hero.Purse.Spend(item.Price); err != nil {
		return inventory.ShopItem{}, err
	}
	e.logger.Info("item bought",
		zap.String("run_id", run.ID),
		zap.String("item", itemID),
		zap.Int("price", item.Price),
		zap.Int("gold_left", hero.Purse.Gold()),
	)
	return item, nil
}

// UseItem drinks a healing consumable outside combat and returns the HP regained.
//
// Postcondition: on error nothing is consumed.
func (e *Engine) UseItem(run *dungeon.Run, itemID string) (int, error) {
	if err := exploring(run); err != nil {
		return 0, err
	}
	def, err := e.content.Items.Consumable(itemID)
	if err != nil {
		return 0, err
	}
	if def.Kind != inventory.ConsumableHeal {
		return 0, errs.Newf(errs.CodeInvalidAction, "%s can only be used in combat", def.Name)
	}
	if _, err := run.Hero.Consume(itemID); err != nil {
		return 0, err
	}
	return run.Hero.Combatant.Heal(def.Value), nil
}

func equipped(hero *character.Character, item inventory.ShopItem) bool {
	switch item.Kind {
	case "weapon":
		return hero.Weapon.ID == item.ID
	case "armor":
		return hero.Armor.ID == item.ID
	}
	return false
}

func exploring(run *dungeon.Run) error {
	if run == nil {
		return errs.New(errs.CodeInvalidAction, "no run")
	}
	if run.Status != dungeon.StatusExploring {
		return errs.Newf(errs.CodeInvalidAction, "not available while %s", run.Status)
	}
	return nil
}

func (e *Engine) shopItem(id string) (inventory.ShopItem, bool) {
	for _, item := range e.content.Items.ShopListing() {
		if item.ID == id {
			return item, true
		}
	}
	return inventory.ShopItem{}, false
}

func (e *Engine) known(id string) bool {
	if _, err := e.content.Items.Weapon(id); err == nil {
		return true
	}
	if _, err := e.content.Items.Armor(id); err == nil {
		return true
	}
	return false
}
