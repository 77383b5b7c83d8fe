package dice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/crawl/internal/game/dice"
)

// maxSrc always returns the largest legal value.
type maxSrc struct{}

func (maxSrc) Intn(n int) int { return n - 1 }

// zeroSrc always returns zero.
type zeroSrc struct{}

func (zeroSrc) Intn(int) int { return 0 }

func TestFloat_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, dice.Float(zeroSrc{}))
	hi := dice.Float(maxSrc{})
	assert.Less(t, hi, 1.0)
	assert.Greater(t, hi, 0.999999)
}

// recordSrc remembers the n of its last Intn call.
type recordSrc struct{ n int }

func (r *recordSrc) Intn(n int) int { r.n = n; return n - 1 }

func TestFloat_DrawsWithin32BitRange(t *testing.T) {
	src := &recordSrc{}
	v := dice.Float(src)
	assert.Equal(t, dice.FloatResolution, src.n)
	assert.LessOrEqual(t, int64(src.n), int64(math.MaxInt32))
	assert.Less(t, v, 1.0)
}

func TestBetween_Inclusive(t *testing.T) {
	assert.Equal(t, 6, dice.Between(zeroSrc{}, 6, 16))
	assert.Equal(t, 16, dice.Between(maxSrc{}, 6, 16))
	assert.Equal(t, 4, dice.Between(maxSrc{}, 4, 4))
}

func TestBetween_SwapsInvertedBounds(t *testing.T) {
	assert.Equal(t, 3, dice.Between(zeroSrc{}, 9, 3))
	assert.Equal(t, 9, dice.Between(maxSrc{}, 9, 3))
}

func TestProperty_Between_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(-50, 50).Draw(rt, "lo")
		hi := rapid.IntRange(lo, lo+100).Draw(rt, "hi")
		v := dice.Between(src, lo, hi)
		assert.GreaterOrEqual(rt, v, lo)
		assert.LessOrEqual(rt, v, hi)
	})
}

func TestProperty_Float_InUnitInterval(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		v := dice.Float(dice.NewSeededSource(seed))
		assert.GreaterOrEqual(rt, v, 0.0)
		assert.Less(rt, v, 1.0)
	})
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestSources_PanicOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(0) })
}

func TestRoller_LogsRolls(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := dice.NewLoggedRoller(maxSrc{}, zap.New(core))

	assert.Equal(t, 16, r.RollInt("damage", 6, 16))
	_ = r.Roll("hit")
	assert.Equal(t, 2, r.Pick("monster", 3))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "roll int", entries[0].Message)
	assert.Equal(t, "damage", entries[0].ContextMap()["purpose"])
	assert.Equal(t, int64(16), entries[0].ContextMap()["value"])
}

func TestRoller_NilLoggerIsNop(t *testing.T) {
	r := dice.NewLoggedRoller(zeroSrc{}, nil)
	assert.NotPanics(t, func() { r.Roll("hit") })
}
