// Package config provides Viper-based configuration loading for the crawl engine.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap sink: "stderr", "stdout" or a file path.
	Output string `mapstructure:"output"`
}

// ContentConfig selects where reference tables are read from.
type ContentConfig struct {
	// Dir is a directory laid out like content/. Empty means the embedded tables.
	Dir string `mapstructure:"dir"`
}

// RulesConfig holds the tunable game rules.
type RulesConfig struct {
	// HitArmorFactor is K in roll*20 + hit >= AC*K.
	HitArmorFactor int     `mapstructure:"hit_armor_factor"`
	FumbleChance   float64 `mapstructure:"fumble_chance"`
	CriticalChance float64 `mapstructure:"critical_chance"`
	// MonsterChance and HealChance split non-boss rooms; the remainder is empty.
	MonsterChance   float64 `mapstructure:"monster_chance"`
	HealChance      float64 `mapstructure:"heal_chance"`
	HealEventAmount int     `mapstructure:"heal_event_amount"`
	LevelUpRestore  bool    `mapstructure:"level_up_restore"`
	BackpackSlots   int     `mapstructure:"backpack_slots"`
}

// RandomConfig holds random source settings.
type RandomConfig struct {
	// Seed makes every roll reproducible. Zero selects the crypto source.
	Seed uint64 `mapstructure:"seed"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Content ContentConfig `mapstructure:"content"`
	Rules   RulesConfig   `mapstructure:"rules"`
	Random  RandomConfig  `mapstructure:"random"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRules(c.Rules); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateRules(r RulesConfig) error {
	var errs []string
	if r.HitArmorFactor < 1 {
		errs = append(errs, fmt.Sprintf("rules.hit_armor_factor must be >= 1, got %d", r.HitArmorFactor))
	}
	if !probability(r.FumbleChance) {
		errs = append(errs, fmt.Sprintf("rules.fumble_chance must be in [0, 1], got %v", r.FumbleChance))
	}
	if !probability(r.CriticalChance) {
		errs = append(errs, fmt.Sprintf("rules.critical_chance must be in [0, 1], got %v", r.CriticalChance))
	}
	if r.FumbleChance+r.CriticalChance > 1 {
		errs = append(errs, "rules.fumble_chance plus rules.critical_chance must not exceed 1")
	}
	if !probability(r.MonsterChance) {
		errs = append(errs, fmt.Sprintf("rules.monster_chance must be in [0, 1], got %v", r.MonsterChance))
	}
	if !probability(r.HealChance) {
		errs = append(errs, fmt.Sprintf("rules.heal_chance must be in [0, 1], got %v", r.HealChance))
	}
	if r.MonsterChance+r.HealChance > 1 {
		errs = append(errs, "rules.monster_chance plus rules.heal_chance must not exceed 1")
	}
	if r.HealEventAmount < 0 {
		errs = append(errs, fmt.Sprintf("rules.heal_event_amount must be >= 0, got %d", r.HealEventAmount))
	}
	if r.BackpackSlots < 0 {
		errs = append(errs, fmt.Sprintf("rules.backpack_slots must be >= 0, got %d", r.BackpackSlots))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func probability(p float64) bool { return p >= 0 && p <= 1 }

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with CRAWL_ prefix
	v.SetEnvPrefix("CRAWL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("content.dir", "")

	v.SetDefault("rules.hit_armor_factor", 2)
	v.SetDefault("rules.fumble_chance", 0.05)
	v.SetDefault("rules.critical_chance", 0.05)
	v.SetDefault("rules.monster_chance", 0.6)
	v.SetDefault("rules.heal_chance", 0.3)
	v.SetDefault("rules.heal_event_amount", 30)
	v.SetDefault("rules.level_up_restore", true)
	v.SetDefault("rules.backpack_slots", 6)

	v.SetDefault("random.seed", 0)
}
