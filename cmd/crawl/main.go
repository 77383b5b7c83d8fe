// Package main provides the crawl binary: a terminal dungeon crawler driving
// the rules engine over stdin and stdout.
package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/content"
	"github.com/cory-johannsen/crawl/internal/config"
	"github.com/cory-johannsen/crawl/internal/frontend/console"
	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/gameserver"
	"github.com/cory-johannsen/crawl/internal/observability"
	"github.com/cory-johannsen/crawl/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty = defaults and CRAWL_ environment")
	heroID := flag.String("hero", "", "hero archetype id; empty = choose interactively")
	dungeonID := flag.String("dungeon", "", "dungeon id; empty = choose interactively")
	seed := flag.Uint64("seed", 0, "random seed overriding random.seed; 0 = keep configured")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *seed != 0 {
		cfg.Random.Seed = *seed
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	var fsys fs.FS = content.FS
	if cfg.Content.Dir != "" {
		fsys = os.DirFS(cfg.Content.Dir)
	}
	loadStart := time.Now()
	tables, err := gameserver.LoadContent(fsys)
	if err != nil {
		logger.Fatal("loading content", zap.String("dir", cfg.Content.Dir), zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("heroes", len(tables.Rules.Archetypes())),
		zap.Int("dungeons", len(tables.Rules.Dungeons())),
		zap.Duration("elapsed", time.Since(loadStart)),
	)

	src := dice.NewCryptoSource()
	if cfg.Random.Seed != 0 {
		src = dice.NewSeededSource(cfg.Random.Seed)
		logger.Info("seeded random source", zap.Uint64("seed", cfg.Random.Seed))
	}

	engine, err := gameserver.NewEngine(tables, src, engineOptions(cfg.Rules), logger)
	if err != nil {
		logger.Fatal("creating engine", zap.Error(err))
	}

	session := console.New(engine, os.Stdin, os.Stdout, logger, console.Options{
		HeroID:    *heroID,
		DungeonID: *dungeonID,
	})

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("console", session)

	logger.Info("crawl ready", zap.Duration("startup", time.Since(start)))
	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Error("crawl exited with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// engineOptions maps the configured rules onto the engine's options.
func engineOptions(r config.RulesConfig) gameserver.Options {
	return gameserver.Options{
		Combat: combat.Rules{
			ArmorFactor:    r.HitArmorFactor,
			FumbleChance:   r.FumbleChance,
			CriticalChance: r.CriticalChance,
		},
		Encounter: dungeon.EncounterRules{
			MonsterChance: r.MonsterChance,
			HealChance:    r.HealChance,
			HealAmount:    r.HealEventAmount,
		},
		LevelUpRestore: r.LevelUpRestore,
		BackpackSlots:  r.BackpackSlots,
	}
}
