package ruleset_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/crawl/content"
	"github.com/cory-johannsen/crawl/internal/game/condition"
	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
)

func loadDefault(t *testing.T) *ruleset.Registry {
	t.Helper()
	reg, err := ruleset.Load(content.FS)
	require.NoError(t, err)
	return reg
}

func TestLoad_EmbeddedContent(t *testing.T) {
	reg := loadDefault(t)

	assert.Len(t, reg.Archetypes(), 6)
	mago, err := reg.Archetype("mago")
	require.NoError(t, err)
	assert.Equal(t, 80, mago.MaxHP)
	assert.Equal(t, 50, mago.MaxMP)
	assert.Equal(t, "staff", mago.Weapon)

	raio, err := reg.Skill("raio")
	require.NoError(t, err)
	assert.Equal(t, ruleset.SkillFixedDamage, raio.Type)
	assert.Equal(t, 5, raio.Cost)
	assert.Equal(t, 15, raio.Amount())

	cave, err := reg.Dungeon("caverna_umida")
	require.NoError(t, err)
	assert.Equal(t, 5, cave.Rooms)
	assert.Equal(t, ruleset.TierEasy, cave.Difficulty)
	assert.Equal(t, ruleset.TierBoss, cave.Boss)
	assert.Len(t, reg.Dungeons(), 4)
	assert.Equal(t, "caverna_umida", reg.Dungeons()[0].ID)
}

func TestRegistry_UnknownIDs_NotFound(t *testing.T) {
	reg := loadDefault(t)
	_, err := reg.Archetype("paladino")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = reg.Skill("meteoro")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = reg.Dungeon("nowhere")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSkillsFor_OrderedByLevel(t *testing.T) {
	reg := loadDefault(t)
	skills := reg.SkillsFor("mago")
	require.Len(t, skills, 3)
	assert.Equal(t, []string{"raio", "escudo", "bola_fogo"},
		[]string{skills[0].ID, skills[1].ID, skills[2].ID})
	assert.Empty(t, reg.SkillsFor("nobody"))
}

func TestUnlockedBetween(t *testing.T) {
	reg := loadDefault(t)
	got := reg.UnlockedBetween("mago", 1, 3)
	require.Len(t, got, 2)
	assert.Equal(t, "escudo", got[0].ID)
	assert.Equal(t, "bola_fogo", got[1].ID)
	assert.Empty(t, reg.UnlockedBetween("mago", 3, 3))
}

func TestBuffSkills_ParseAliasedStats(t *testing.T) {
	reg := loadDefault(t)
	grito, err := reg.Skill("grito")
	require.NoError(t, err)
	assert.Equal(t, condition.StatDamage, grito.BuffStat())
	veneno, err := reg.Skill("veneno")
	require.NoError(t, err)
	assert.Equal(t, condition.StatPoison, veneno.BuffStat())
}

func TestLevelTable_DefaultThresholds(t *testing.T) {
	levels := loadDefault(t).Levels()
	assert.Equal(t, 1, levels.LevelFor(0))
	assert.Equal(t, 1, levels.LevelFor(99))
	assert.Equal(t, 2, levels.LevelFor(100))
	assert.Equal(t, 3, levels.LevelFor(250))
	assert.Equal(t, 10, levels.LevelFor(1_000_000))
	assert.Equal(t, 10, levels.MaxLevel())
	xp, ok := levels.Threshold(2)
	require.True(t, ok)
	assert.Equal(t, 100, xp)
	_, ok = levels.Threshold(11)
	assert.False(t, ok)
}

func TestNewLevelTable_RejectsBadRows(t *testing.T) {
	_, err := ruleset.NewLevelTable(nil)
	assert.Error(t, err)
	_, err = ruleset.NewLevelTable([]ruleset.LevelThreshold{{Level: 1, XP: 5}})
	assert.Error(t, err)
	_, err = ruleset.NewLevelTable([]ruleset.LevelThreshold{{Level: 1, XP: 0}, {Level: 2, XP: 0}})
	assert.Error(t, err)
	_, err = ruleset.NewLevelTable([]ruleset.LevelThreshold{{Level: 1, XP: 0}, {Level: 3, XP: 10}})
	assert.Error(t, err)
}

func TestProperty_LevelForMonotonic(t *testing.T) {
	levels := loadDefault(t).Levels()
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(-10, 10000).Draw(rt, "a")
		b := rapid.IntRange(-10, 10000).Draw(rt, "b")
		if a > b {
			a, b = b, a
		}
		la, lb := levels.LevelFor(a), levels.LevelFor(b)
		if la > lb {
			rt.Fatalf("LevelFor(%d)=%d > LevelFor(%d)=%d", a, la, b, lb)
		}
		if levels.LevelFor(a) != la {
			rt.Fatalf("LevelFor not stable for %d", a)
		}
	})
}

func minimalFS(skillYAML string) fstest.MapFS {
	return fstest.MapFS{
		"levels/levels.yaml": {Data: []byte("- level: 1\n  xp: 0\n- level: 2\n  xp: 100\n")},
		"heroes/heroes.yaml": {Data: []byte(`
- id: mago
  name: Mago
  max_hp: 80
  max_mp: 50
  base_hit: 3
  weapon: staff
  armor: cloth
`)},
		"skills/skills.yaml":     {Data: []byte(skillYAML)},
		"dungeons/dungeons.yaml": {Data: []byte("- id: d\n  name: D\n  rooms: 3\n  difficulty: easy\n  boss: boss\n")},
	}
}

func TestLoad_RejectsInvalidSkills(t *testing.T) {
	cases := map[string]string{
		"unknown type":  "- id: x\n  class: mago\n  level: 1\n  type: dance\n",
		"unknown stat":  "- id: x\n  class: mago\n  level: 1\n  type: buff\n  stat: luck\n  value: 1\n  duration: 2\n",
		"no duration":   "- id: x\n  class: mago\n  level: 1\n  type: buff\n  stat: ac\n  value: 1\n",
		"unknown class": "- id: x\n  class: paladino\n  level: 1\n  type: damage\n  value: 3\n",
		"unknown field": "- id: x\n  class: mago\n  level: 1\n  type: damage\n  value: 3\n  mana: 4\n",
		"zero hits":     "- id: x\n  class: mago\n  level: 1\n  type: damage_multi\n",
	}
	for name, y := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ruleset.Load(minimalFS(y))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MinimalContent(t *testing.T) {
	reg, err := ruleset.Load(minimalFS("- id: x\n  class: mago\n  level: 1\n  type: heal\n  value: 20\n  cost: 8\n"))
	require.NoError(t, err)
	s, err := reg.Skill("x")
	require.NoError(t, err)
	assert.Equal(t, ruleset.SkillHeal, s.Type)
	assert.Equal(t, 2, reg.Levels().MaxLevel())
}
