package combat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/crawl/content"
	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/inventory"
	"github.com/cory-johannsen/crawl/internal/game/npc"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

// fixedSrc returns min(val, n-1) for every Intn call.
type fixedSrc struct{ val int }

func (f fixedSrc) Intn(n int) int {
	if f.val >= n {
		return n - 1
	}
	return f.val
}

var (
	maxSrc  = fixedSrc{val: math.MaxInt}
	zeroSrc = fixedSrc{val: 0}
)

type world struct {
	rules *ruleset.Registry
	items *inventory.Registry
	pools *npc.Pools
}

func loadWorld(t testing.TB) *world {
	t.Helper()
	rules, err := ruleset.Load(content.FS)
	require.NoError(t, err)
	items, err := inventory.LoadRegistry(content.FS)
	require.NoError(t, err)
	pools, err := npc.LoadPools(content.FS)
	require.NoError(t, err)
	return &world{rules: rules, items: items, pools: pools}
}

func (w *world) hero(t testing.TB, id string) *combat.Combatant {
	t.Helper()
	a, err := w.rules.Archetype(id)
	require.NoError(t, err)
	weapon, err := w.items.Weapon(a.Weapon)
	require.NoError(t, err)
	armor, err := w.items.Armor(a.Armor)
	require.NoError(t, err)
	return combat.NewHero(a, weapon, armor)
}

func (w *world) monster(t testing.TB, id string) *combat.Combatant {
	t.Helper()
	tmpl, err := w.pools.Template(id)
	require.NoError(t, err)
	return combat.NewMonster(tmpl)
}

func (w *world) ctx(src dice.Source) *combat.Context {
	return &combat.Context{
		Roller: dice.NewLoggedRoller(src, nil),
		Rules:  combat.DefaultRules(),
		Skills: w.rules,
	}
}

// bag is an in-memory ItemBag.
type bag struct {
	items  *inventory.Registry
	counts map[string]int
}

func (b *bag) Consume(id string) (*inventory.ConsumableDef, error) {
	if b.counts[id] == 0 {
		return nil, errs.NotFound("carried item", id)
	}
	def, err := b.items.Consumable(id)
	if err != nil {
		return nil, err
	}
	b.counts[id]--
	return def, nil
}
