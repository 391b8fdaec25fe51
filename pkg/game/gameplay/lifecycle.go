// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"fmt"
	"math/rand"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"darkdepths/pkg/engine/config"
	"darkdepths/pkg/engine/feature"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/depth"
	"darkdepths/pkg/game/generator"
	"darkdepths/pkg/game/setup"
	"darkdepths/pkg/game/state"
)

// translatef looks up a translation that takes arguments. Calling through a
// variable keeps go vet from treating the message key as a format string.
var translatef = gotext.Get

// BuildGame creates a new game instance starting at the given depth
func BuildGame(cfg *config.Config, reg *feature.Registry, seed int64, startDepth int, log *zap.Logger) (*state.Game, error) {
	g := state.NewGame(world.NewLimits(reg, cfg.Limits), seed, log)
	g.LevelHeight = cfg.Level.Height
	g.LevelWidth = cfg.Level.Width

	if startDepth < 1 {
		startDepth = 1
	}
	if err := GenerateLevel(g, startDepth, seed); err != nil {
		return nil, err
	}

	g.ClearMessages()
	logMessage(g, "%s", gotext.Get("WELCOME"))
	ShowLevelObjectives(g)

	return g, nil
}

// GenerateLevel carves and populates a new level at the given depth from seed
func GenerateLevel(g *state.Game, level int, seed int64) error {
	g.LevelSeed = seed
	g.Rand = rand.New(rand.NewSource(seed))

	cave, err := g.EnterLevel(g.LevelHeight, g.LevelWidth, level)
	if err != nil {
		return err
	}

	p := depth.ProfileFor(level)
	gen := generator.ForBand(p.Band)
	layout, err := gen.Generate(cave, g.Rand, p)
	if err != nil {
		g.Logger().Error("level generation failed",
			zap.String("generator", gen.Name()),
			zap.Int("depth", level),
			zap.Int64("seed", seed),
			zap.Error(err))
		return fmt.Errorf("generate depth %d: %w", level, err)
	}
	g.Layout = layout

	if err := setup.CheckSolvable(cave, layout.Up, layout.Down); err != nil {
		g.Logger().Error("generated level cannot be completed",
			zap.String("generator", gen.Name()),
			zap.Int64("seed", seed),
			zap.Error(err))
		return fmt.Errorf("generate depth %d: %w", level, err)
	}

	g.Logger().Info("level generated",
		zap.String("generator", gen.Name()),
		zap.Stringer("band", p.Band),
		zap.Int("rooms", len(layout.Rooms)),
		zap.Int64("seed", seed))

	return SetupLevel(g, p)
}

// SetupLevel places the player on the up staircase and stocks the level
// with objects and monsters
func SetupLevel(g *state.Game, p depth.Profile) error {
	g.Player = g.Layout.Up
	g.Inventory = nil

	if err := placeObjects(g, p.Objects); err != nil {
		return err
	}
	if err := placeMonsters(g, p.Monsters); err != nil {
		return err
	}

	// Objects scattered into sealed pockets are of no use to anyone
	for _, obj := range setup.UnreachableObjects(g.Cave, g.Player) {
		g.Logger().Debug("removing unreachable object", zap.Stringer("object", obj))
		if err := g.Destroy(obj); err != nil {
			return err
		}
	}

	UpdateLightingExploration(g)
	return nil
}

// ResetLevel regenerates the current level from the same seed
func ResetLevel(g *state.Game) error {
	if err := GenerateLevel(g, g.Depth, g.LevelSeed); err != nil {
		return err
	}

	g.ClearMessages()
	logMessage(g, "%s", gotext.Get("LEVEL_RESET"))
	ShowLevelObjectives(g)
	return nil
}

// AdvanceLevel generates the next level down. Its seed comes from the
// current level's generator so a whole descent replays from one seed.
func AdvanceLevel(g *state.Game) error {
	next := g.Depth + 1
	if next > depth.MaxDepth {
		logMessage(g, "%s", gotext.Get("NO_DEEPER"))
		return nil
	}
	if err := GenerateLevel(g, next, g.Rand.Int63()); err != nil {
		return err
	}

	g.ClearMessages()
	logMessage(g, "%s", translatef("DESCENDED", next*50))
	ShowLevelObjectives(g)
	return nil
}

// ShowLevelObjectives describes the level the player has just arrived on
func ShowLevelObjectives(g *state.Game) {
	logMessage(g, "%s", depth.FlavourText(depth.BandOf(g.Depth)))
	if n := g.Cave.MonsterCount(); n > 0 {
		logMessage(g, "%s", gotext.GetN("LEVEL_MONSTERS", "LEVEL_MONSTERS_PLURAL", n, n))
	}
	logMessage(g, "Find the ITEM{down staircase} to go deeper.")
}
