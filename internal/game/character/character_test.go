package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/crawl/content"
	"github.com/cory-johannsen/crawl/internal/game/character"
	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/inventory"
	"github.com/cory-johannsen/crawl/internal/game/npc"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

type fixture struct {
	rules *ruleset.Registry
	items *inventory.Registry
	pools *npc.Pools
}

func load(t testing.TB) *fixture {
	t.Helper()
	rules, err := ruleset.Load(content.FS)
	require.NoError(t, err)
	items, err := inventory.LoadRegistry(content.FS)
	require.NoError(t, err)
	pools, err := npc.LoadPools(content.FS)
	require.NoError(t, err)
	return &fixture{rules: rules, items: items, pools: pools}
}

func (f *fixture) build(t testing.TB, id string) *character.Character {
	t.Helper()
	a, err := f.rules.Archetype(id)
	require.NoError(t, err)
	c, err := character.Build(a, f.items, character.DefaultBackpackSlots)
	require.NoError(t, err)
	return c
}

func (f *fixture) deadMonster(t testing.TB, id string) *combat.Combatant {
	t.Helper()
	tmpl, err := f.pools.Template(id)
	require.NoError(t, err)
	m := combat.NewMonster(tmpl)
	m.ApplyDamage(m.MaxHP)
	return m
}

func TestBuild_StartingLoadout(t *testing.T) {
	f := load(t)
	c := f.build(t, "guerreiro")
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 0, c.Experience)
	assert.Equal(t, 0, c.Purse.Gold())
	assert.Equal(t, "sword", c.Weapon.ID)
	assert.Equal(t, "chain", c.Armor.ID)
	assert.Equal(t, 150, c.Combatant.CurrentHP)
	assert.Equal(t, combat.KindHero, c.Combatant.Kind)
	assert.Equal(t, "guerreiro", c.Class())
}

func TestBuild_MissingWeaponIsNotFound(t *testing.T) {
	f := load(t)
	a := &ruleset.Archetype{ID: "x", Name: "X", MaxHP: 1, Weapon: "laser", Armor: "none"}
	_, err := character.Build(a, f.items, 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestEquipAndWear_RecomputeBase(t *testing.T) {
	f := load(t)
	c := f.build(t, "guerreiro")
	magic, err := f.items.Weapon("magic_sword")
	require.NoError(t, err)
	plate, err := f.items.Armor("plate")
	require.NoError(t, err)
	c.Combatant.CurrentHP = 10

	c.Equip(magic)
	c.Wear(plate)
	s := combat.EffectiveStats(c.Combatant)
	assert.Equal(t, 2+magic.HitBonus, s.HitBonus)
	assert.Equal(t, magic.MinDamage, s.MinDamage)
	assert.Equal(t, magic.MaxDamage, s.MaxDamage)
	assert.Equal(t, plate.AC, s.ArmorClass)
	assert.Equal(t, 10, c.Combatant.CurrentHP)
}

func TestReachingLevelTwoOnce(t *testing.T) {
	f := load(t)
	c := f.build(t, "guerreiro")
	c.Experience = 60

	gained := character.OnMonsterDefeated(c, f.deadMonster(t, "orc"))
	assert.Equal(t, 40, gained)
	assert.Equal(t, 100, c.Experience)

	lu := character.CheckLevelUp(c, f.rules, true)
	assert.Equal(t, 1, lu.Gained())
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 2, c.Combatant.Level)
	require.Len(t, lu.Unlocked, 1)
	assert.Equal(t, "grito", lu.Unlocked[0].ID)

	again := character.CheckLevelUp(c, f.rules, true)
	assert.Equal(t, 0, again.Gained())
	assert.Equal(t, 2, c.Level)
}

func TestCheckLevelUp_MultipleLevels(t *testing.T) {
	f := load(t)
	c := f.build(t, "mago")
	c.Experience = 500
	lu := character.CheckLevelUp(c, f.rules, false)
	assert.Equal(t, 1, lu.From)
	assert.Equal(t, 4, lu.To)
	assert.Len(t, lu.Unlocked, 2)
}

func TestCheckLevelUp_RestoreRefillsHPAndMP(t *testing.T) {
	f := load(t)
	c := f.build(t, "mago")
	c.Combatant.CurrentHP = 1
	c.Combatant.CurrentMP = 0
	c.Experience = 100

	character.CheckLevelUp(c, f.rules, true)
	assert.Equal(t, c.Combatant.MaxHP, c.Combatant.CurrentHP)
	assert.Equal(t, c.Combatant.MaxMP, c.Combatant.CurrentMP)
}

func TestCheckLevelUp_NoRestore(t *testing.T) {
	f := load(t)
	c := f.build(t, "mago")
	c.Combatant.CurrentHP = 1
	c.Experience = 100

	character.CheckLevelUp(c, f.rules, false)
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 1, c.Combatant.CurrentHP)
}

func TestProperty_CheckLevelUpIdempotentAndMonotonic(t *testing.T) {
	f := load(t)
	rapid.Check(t, func(rt *rapid.T) {
		c := f.build(t, "ladino")
		total := 0
		prev := c.Level
		for _, xp := range rapid.SliceOfN(rapid.IntRange(0, 800), 1, 10).Draw(rt, "awards") {
			total += xp
			c.Experience = total
			character.CheckLevelUp(c, f.rules, false)
			first := c.Level
			character.CheckLevelUp(c, f.rules, false)
			if c.Level != first {
				rt.Fatalf("second recompute changed level %d -> %d", first, c.Level)
			}
			if first < prev {
				rt.Fatalf("level decreased %d -> %d", prev, first)
			}
			if first != f.rules.Levels().LevelFor(total) {
				rt.Fatalf("level %d for %d xp, want %d", first, total, f.rules.Levels().LevelFor(total))
			}
			prev = first
		}
	})
}

func TestCollect_GoldAndItems(t *testing.T) {
	f := load(t)
	c := f.build(t, "guerreiro")
	kept, lost := character.Collect(c, npc.LootResult{
		Gold: 25,
		Items: []npc.LootItem{
			{ItemDefID: "potion", Quantity: 2},
			{ItemDefID: "ghost_item", Quantity: 1},
		},
	})
	assert.Equal(t, 25, c.Purse.Gold())
	require.Len(t, kept, 1)
	require.Len(t, lost, 1)
	assert.Equal(t, "ghost_item", lost[0].ItemDefID)
	assert.Equal(t, 2, c.Backpack.Count("potion"))
}

func TestConsume(t *testing.T) {
	f := load(t)
	c := f.build(t, "guerreiro")
	_, err := c.Consume("potion")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	potion, err := f.items.Consumable("potion")
	require.NoError(t, err)
	require.NoError(t, c.Backpack.Add(potion, 1))
	def, err := c.Consume("potion")
	require.NoError(t, err)
	assert.Equal(t, "potion", def.ID)
	assert.Equal(t, 0, c.Backpack.Count("potion"))

	_, err = c.Consume("unknown")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
