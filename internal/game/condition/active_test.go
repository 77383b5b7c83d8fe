package condition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/crawl/internal/game/condition"
)

func TestActiveSet_Apply_Sum(t *testing.T) {
	s := condition.NewActiveSet()
	require.NoError(t, s.Apply("escudo", condition.StatAC, 5, 3))
	require.NoError(t, s.Apply("grito", condition.StatDamage, 3, 4))
	assert.Equal(t, 5, s.Sum(condition.StatAC))
	assert.Equal(t, 3, s.Sum(condition.StatDamage))
	assert.Equal(t, 0, s.Sum(condition.StatHit))
	assert.True(t, s.Has("escudo"))
}

func TestActiveSet_Apply_RejectsZeroDuration(t *testing.T) {
	s := condition.NewActiveSet()
	assert.Error(t, s.Apply("x", condition.StatAC, 1, 0))
	assert.Equal(t, 0, s.Len())
}

func TestActiveSet_Apply_StacksSameSource(t *testing.T) {
	s := condition.NewActiveSet()
	require.NoError(t, s.Apply("furia", condition.StatDamage, 2, 3))
	require.NoError(t, s.Apply("furia", condition.StatDamage, 2, 1))
	assert.Equal(t, 4, s.Sum(condition.StatDamage))
	s.Tick()
	assert.Equal(t, 2, s.Sum(condition.StatDamage))
}

func TestActiveSet_Tick_ExpiresAtZero(t *testing.T) {
	s := condition.NewActiveSet()
	require.NoError(t, s.Apply("escudo", condition.StatAC, 5, 2))

	assert.Empty(t, s.Tick())
	assert.Equal(t, 5, s.Sum(condition.StatAC))

	expired := s.Tick()
	require.Len(t, expired, 1)
	assert.Equal(t, "escudo", expired[0].Source)
	assert.Equal(t, 0, s.Sum(condition.StatAC))
	assert.False(t, s.Has("escudo"))
}

func TestActiveSet_Tick_PreservesOrder(t *testing.T) {
	s := condition.NewActiveSet()
	require.NoError(t, s.Apply("a", condition.StatHit, 1, 5))
	require.NoError(t, s.Apply("b", condition.StatHit, 1, 1))
	require.NoError(t, s.Apply("c", condition.StatHit, 1, 5))
	s.Tick()
	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Source)
	assert.Equal(t, "c", all[1].Source)
}

func TestActiveSet_NilSum(t *testing.T) {
	var s *condition.ActiveSet
	assert.Equal(t, 0, s.Sum(condition.StatAC))
}

func TestParseStat_Aliases(t *testing.T) {
	for name, want := range map[string]condition.Stat{
		"baseDmg":    condition.StatDamage,
		"ac":         condition.StatAC,
		"poison_dmg": condition.StatPoison,
		"THORNS":     condition.StatThorns,
	} {
		got, ok := condition.ParseStat(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := condition.ParseStat("charisma")
	assert.False(t, ok)
}

func TestPropertyActiveSet_TickRemovesExpired(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		durations := rapid.SliceOfN(rapid.IntRange(1, 6), 1, 8).Draw(t, "durations")
		ticks := rapid.IntRange(0, 8).Draw(t, "ticks")
		s := condition.NewActiveSet()
		for _, d := range durations {
			require.NoError(t, s.Apply("buff", condition.StatAC, 1, d))
		}
		for i := 0; i < ticks; i++ {
			s.Tick()
		}
		want := 0
		for _, d := range durations {
			if d > ticks {
				want++
			}
		}
		assert.Equal(t, want, s.Len())
		assert.Equal(t, want, s.Sum(condition.StatAC))
		for _, m := range s.All() {
			assert.GreaterOrEqual(t, m.Remaining, 1)
		}
	})
}
