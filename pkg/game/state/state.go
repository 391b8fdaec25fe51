// Package state holds the session: the active level, the player's memory of
// it, and the player's position. Every operation that needs to know which
// chunk is the active one goes through Game.
package state

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/generator"
)

// ViewRadius is how far the player sees when looking around
const ViewRadius = 20

// Game represents the game state for one player session
type Game struct {
	// Cave is the active level, Known the player's memory of it.
	// Known outlives Cave across level changes and is resynced on entry.
	Cave  *world.Chunk
	Known *world.Chunk

	// Layout is what the generator built for the active level
	Layout *generator.Layout

	// LevelSeed regenerates the active level; LevelHeight and LevelWidth
	// size every level
	LevelSeed   int64
	LevelHeight int
	LevelWidth  int

	Player world.Loc
	Turn   int32
	Depth  int

	MovementCount     int
	InteractionsCount int

	// Inventory holds objects the player picked up
	Inventory []*world.Object

	Messages []string

	Limits world.Limits
	Rand   *rand.Rand

	log *zap.Logger
}

// NewGame creates a new game session. A nil logger discards output.
func NewGame(lim world.Limits, seed int64, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		Messages: make([]string, 0),
		Limits:   lim,
		Rand:     rand.New(rand.NewSource(seed)),
		log:      log,
	}
}

// Logger returns the session logger
func (g *Game) Logger() *zap.Logger {
	return g.log
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AdvanceTurn moves game time forward
func (g *Game) AdvanceTurn() {
	g.Turn++
}

// EnterLevel allocates a fresh active level and makes the known chunk match
// it. The previous level, if any, is freed first.
func (g *Game) EnterLevel(height, width, depth int) (*world.Chunk, error) {
	g.LeaveLevel()

	cave, err := world.NewChunk(height, width, g.Limits, g.Turn)
	if err != nil {
		g.log.Error("level allocation failed", zap.Error(err))
		return nil, fmt.Errorf("enter level %d: %w", depth, err)
	}
	cave.Depth = depth
	cave.SetLogger(g.log.Named("cave"))

	if g.Known != nil && g.Known.Height() == height && g.Known.Width() == width {
		g.Known.Reset(g.Limits)
	} else {
		g.Known.Free()
		known, err := world.NewChunk(height, width, g.Limits, g.Turn)
		if err != nil {
			cave.Free()
			g.log.Error("known level allocation failed", zap.Error(err))
			return nil, fmt.Errorf("enter level %d: %w", depth, err)
		}
		known.SetLogger(g.log.Named("known"))
		g.Known = known
	}
	g.Known.Depth = depth
	g.Known.CreatedAt = g.Turn

	g.Cave = cave
	g.Depth = depth
	g.log.Info("entered level",
		zap.Int("depth", depth),
		zap.Int("height", height),
		zap.Int("width", width),
		zap.Int32("turn", g.Turn))
	return cave, nil
}

// LeaveLevel frees the active level. The known chunk is kept.
func (g *Game) LeaveLevel() {
	if g.Cave == nil {
		return
	}
	g.log.Debug("leaving level",
		zap.Int("depth", g.Cave.Depth),
		zap.Int("monsters", g.Cave.MonsterCount()))
	g.Cave.Free()
	g.Cave = nil
}

// shadow returns the known chunk when c is the active level
func (g *Game) shadow(c *world.Chunk) *world.Chunk {
	if c != nil && c == g.Cave {
		return g.Known
	}
	return nil
}

// ListObject lists obj in c, keeping the known chunk in step when c is the active level
func (g *Game) ListObject(c *world.Chunk, obj *world.Object) {
	c.ListObject(obj, g.shadow(c))
}

// DelistObject delists obj from c. An error means the object lists are
// corrupt; the caller must abandon the level.
func (g *Game) DelistObject(c *world.Chunk, obj *world.Object) error {
	if err := c.DelistObject(obj, g.shadow(c)); err != nil {
		g.log.Error("delist failed", zap.Stringer("object", obj), zap.Error(err))
		return err
	}
	return nil
}

// Drop puts obj on the floor of the active level
func (g *Game) Drop(obj *world.Object, loc world.Loc) error {
	if err := g.Cave.FloorCarry(obj, loc, g.Known); err != nil {
		g.log.Error("drop failed", zap.Stringer("object", obj), zap.Error(err))
		return err
	}
	return nil
}

// lift takes obj off the floor of the active level, out of the player's
// memory, and out of both object indexes
func (g *Game) lift(obj *world.Object) error {
	if err := g.Cave.FloorExcise(obj, g.Known); err != nil {
		g.log.Error("floor excise failed", zap.Stringer("object", obj), zap.Error(err))
		return err
	}
	if err := g.Forget(obj); err != nil {
		return err
	}
	return g.DelistObject(g.Cave, obj)
}

// Destroy removes obj from the active level entirely
func (g *Game) Destroy(obj *world.Object) error {
	return g.lift(obj)
}

// PickUp moves obj from the floor into the player's inventory
func (g *Game) PickUp(obj *world.Object) error {
	if err := g.lift(obj); err != nil {
		return err
	}
	g.Inventory = append(g.Inventory, obj)
	return nil
}

// DropLast drops the most recently picked up object at the player's feet
func (g *Game) DropLast() (*world.Object, error) {
	if len(g.Inventory) == 0 {
		return nil, nil
	}
	obj := g.Inventory[len(g.Inventory)-1]
	if err := g.Drop(obj, g.Player); err != nil {
		return nil, err
	}
	g.Inventory = g.Inventory[:len(g.Inventory)-1]
	g.Observe(g.Player)
	return obj, nil
}

// Carry gives obj to the monster in slot idx
func (g *Game) Carry(idx int, obj *world.Object) error {
	if err := g.Cave.MonsterCarry(idx, obj, g.Known); err != nil {
		g.log.Error("monster carry failed", zap.Int("midx", idx), zap.Error(err))
		return err
	}
	return nil
}

// Kill removes the monster in slot idx. Whatever it carried falls to the
// floor where it stood.
func (g *Game) Kill(idx int) error {
	mon := g.Cave.Monster(idx)
	if !mon.Alive() {
		return nil
	}
	for _, obj := range mon.Held.Objects() {
		mon.Held.Excise(obj)
		if err := g.Cave.FloorCarry(obj, mon.Grid, g.Known); err != nil {
			return err
		}
	}
	g.log.Debug("monster killed", zap.Int("midx", idx), zap.String("race", mon.Race))
	return g.Cave.DeleteMonster(idx, g.Known)
}

// Observe updates the player's memory of the square at loc
func (g *Game) Observe(loc world.Loc) {
	world.ObserveSquare(g.Cave, g.Known, loc)
}

// Forget drops the player's memory of obj
func (g *Game) Forget(obj *world.Object) error {
	if err := world.ForgetObject(g.Known, obj); err != nil {
		g.log.Error("forget failed", zap.Stringer("object", obj), zap.Error(err))
		return err
	}
	return nil
}

// LookAround observes every square within ViewRadius that the player can see
func (g *Game) LookAround() {
	for dy := -ViewRadius; dy <= ViewRadius; dy++ {
		for dx := -ViewRadius; dx <= ViewRadius; dx++ {
			loc := g.Player.Add(world.L(dx, dy))
			if !g.Cave.InBounds(loc) || world.Distance(g.Player, loc) > ViewRadius {
				continue
			}
			if g.Cave.LOS(g.Player, loc) {
				g.Observe(loc)
			}
		}
	}
}

// Scatter finds a random location near origin on the active level
func (g *Game) Scatter(origin world.Loc, d int, needLOS bool) world.Loc {
	loc, ok := g.Cave.Scatter(g.Rand, origin, d, needLOS)
	if !ok {
		g.log.Warn("scatter found no suitable location",
			zap.Stringer("origin", origin), zap.Int("distance", d))
	}
	return loc
}

// CountFeats counts known squares around (and, if under, beneath) the
// player that pass test, returning the last match
func (g *Game) CountFeats(test world.SquareTest, under bool) (int, world.Loc) {
	return world.CountFeats(g.Cave, g.Known, g.Player, test, under)
}

// CheckIntegrity verifies the active level against the known chunk
func (g *Game) CheckIntegrity() error {
	if g.Cave == nil || g.Known == nil {
		return nil
	}
	if err := world.CheckObjectLists(g.Cave, g.Known); err != nil {
		g.log.Error("object lists inconsistent", zap.Error(err))
		return err
	}
	return nil
}
