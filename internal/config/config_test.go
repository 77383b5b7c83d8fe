package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Rules: RulesConfig{
			HitArmorFactor:  2,
			FumbleChance:    0.05,
			CriticalChance:  0.05,
			MonsterChance:   0.6,
			HealChance:      0.3,
			HealEventAmount: 30,
			LevelUpRestore:  true,
			BackpackSlots:   6,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultMatchesValidConfig(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, validConfig().Rules, cfg.Rules)
	assert.Equal(t, "", cfg.Content.Dir)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, uint64(0), cfg.Random.Seed)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
content:
  dir: /srv/crawl/content
rules:
  hit_armor_factor: 3
  monster_chance: 0.5
  level_up_restore: false
random:
  seed: 42
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/srv/crawl/content", cfg.Content.Dir)
	assert.Equal(t, 3, cfg.Rules.HitArmorFactor)
	assert.Equal(t, 0.5, cfg.Rules.MonsterChance)
	assert.False(t, cfg.Rules.LevelUpRestore)
	assert.Equal(t, uint64(42), cfg.Random.Seed)
	// Unset keys keep their defaults.
	assert.Equal(t, 0.3, cfg.Rules.HealChance)
	assert.Equal(t, 30, cfg.Rules.HealEventAmount)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Rules.HitArmorFactor)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CRAWL_RANDOM_SEED", "7")
	t.Setenv("CRAWL_LOGGING_LEVEL", "warn")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Random.Seed)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  monster_chance: 0.8
  heal_chance: 0.3
`), 0644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rules.monster_chance plus rules.heal_chance")
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateHitArmorFactor(t *testing.T) {
	cfg := validConfig()
	cfg.Rules.HitArmorFactor = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateNegativeAmounts(t *testing.T) {
	cfg := validConfig()
	cfg.Rules.HealEventAmount = -1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Rules.BackpackSlots = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.Rules.HitArmorFactor = 0
	cfg.Rules.FumbleChance = 2
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "rules.hit_armor_factor")
	assert.Contains(t, err.Error(), "rules.fumble_chance")
}

// Property-based tests

func TestPropertyValidEventChances(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		monster := rapid.Float64Range(0, 1).Draw(t, "monster")
		heal := rapid.Float64Range(0, 1-monster).Draw(t, "heal")
		cfg := validConfig()
		cfg.Rules.MonsterChance = monster
		cfg.Rules.HealChance = heal
		if monster+heal > 1 {
			t.Skip("float rounding")
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid chances monster=%v heal=%v rejected: %v", monster, heal, err)
		}
	})
}

func TestPropertyOutOfRangeChanceRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.OneOf(
			rapid.Float64Range(-10, -0.001),
			rapid.Float64Range(1.001, 10),
		).Draw(t, "p")
		cfg := validConfig()
		cfg.Rules.CriticalChance = p
		if err := cfg.Validate(); err == nil {
			t.Fatalf("critical_chance %v accepted", p)
		}
	})
}
