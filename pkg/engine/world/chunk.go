// Package world provides the dungeon level representation: the chunk grid,
// its object index and monster slots, and the geometry helpers built on it.
package world

import (
	"fmt"

	"github.com/zyedidia/generic/stack"
	"go.uber.org/zap"

	"darkdepths/pkg/engine/config"
	"darkdepths/pkg/engine/feature"
)

// Limits sizes the arrays of every chunk
type Limits struct {
	Features       *feature.Registry
	MonsterMax     int
	ObjectListSize int
	ObjectListIncr int
}

// NewLimits builds chunk limits from the configured level limits
func NewLimits(reg *feature.Registry, cfg config.LimitsConfig) Limits {
	return Limits{
		Features:       reg,
		MonsterMax:     cfg.LevelMonsterMax,
		ObjectListSize: cfg.ObjectListSize,
		ObjectListIncr: cfg.ObjectListIncr,
	}
}

// Chunk is one dungeon level, or the player's memory of one
type Chunk struct {
	Name      string
	Depth     int
	CreatedAt int32

	height int
	width  int

	squares   [][]Square
	featCount []int

	// objects[0] is reserved; len(objects) == objMax+1 and objects[objMax]
	// is only ever filled by growth.
	objects []*Object
	objMax  int
	objIncr int

	// monsters[0] is reserved
	monsters []Monster
	monMax   int
	monCnt   int
	monFree  *stack.Stack[int]

	feats   *feature.Registry
	terrain feature.Terrain

	log   *zap.Logger
	freed bool
}

// NewChunk allocates a chunk of the given size, stamped with the game turn.
// Every square starts as the unknown-grid feature.
func NewChunk(height, width int, lim Limits, turn int32) (*Chunk, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrAllocation, height, width)
	}
	if lim.Features == nil {
		return nil, fmt.Errorf("%w: no terrain table", ErrAllocation)
	}
	if lim.MonsterMax < 1 || lim.ObjectListSize < 2 || lim.ObjectListIncr < 1 {
		return nil, fmt.Errorf("%w: limits %d monsters, %d+%d objects",
			ErrAllocation, lim.MonsterMax, lim.ObjectListSize, lim.ObjectListIncr)
	}

	c := &Chunk{
		height:    height,
		width:     width,
		featCount: make([]int, lim.Features.Max()+1),
		objects:   make([]*Object, lim.ObjectListSize),
		objMax:    lim.ObjectListSize - 1,
		objIncr:   lim.ObjectListIncr,
		monsters:  make([]Monster, lim.MonsterMax),
		monMax:    1,
		monFree:   stack.New[int](),
		feats:     lim.Features,
		terrain:   lim.Features.Terrain(),
		CreatedAt: turn,
		log:       zap.NewNop(),
	}

	c.squares = make([][]Square, height)
	for y := 0; y < height; y++ {
		c.squares[y] = make([]Square, width)
		for x := 0; x < width; x++ {
			c.squares[y][x].Feat = c.terrain.None
		}
	}
	c.featCount[c.terrain.None] = height * width

	return c, nil
}

// SetLogger sets the logger used for diagnostics
func (c *Chunk) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	c.log = log
}

// Free releases everything the chunk owns: traps and object piles on every
// square, then the grid, feature counts, object index and monster slots.
// Freeing a freed chunk does nothing.
func (c *Chunk) Free() {
	if c == nil || c.freed {
		return
	}

	for y := range c.squares {
		for x := range c.squares[y] {
			sq := &c.squares[y][x]
			if sq.Trap != nil {
				freeTraps(sq.Trap)
				sq.Trap = nil
			}
			if sq.Obj != nil {
				sq.Obj.free()
				sq.Obj = nil
			}
		}
		c.squares[y] = nil
	}
	for i := range c.monsters {
		c.monsters[i].Held.free()
	}

	c.squares = nil
	c.featCount = nil
	c.objects = nil
	c.objMax = 0
	c.monsters = nil
	c.monMax = 0
	c.monCnt = 0
	c.monFree = nil
	c.Name = ""
	c.freed = true
}

// Freed reports whether Free has been called
func (c *Chunk) Freed() bool {
	return c.freed
}

// Reset returns the chunk to its freshly allocated state without
// reallocating the grid: all squares unknown, no traps, objects or monsters.
func (c *Chunk) Reset(lim Limits) {
	for y := range c.squares {
		for x := range c.squares[y] {
			sq := &c.squares[y][x]
			freeTraps(sq.Trap)
			sq.Obj.free()
			*sq = Square{Feat: c.terrain.None}
		}
	}
	for i := range c.featCount {
		c.featCount[i] = 0
	}
	c.featCount[c.terrain.None] = c.height * c.width
	for i := range c.monsters {
		c.monsters[i].Held.free()
		c.monsters[i] = Monster{}
	}
	c.objects = make([]*Object, lim.ObjectListSize)
	c.objMax = lim.ObjectListSize - 1
	c.objIncr = lim.ObjectListIncr
	c.monMax = 1
	c.monCnt = 0
	c.monFree = stack.New[int]()
}

// Height returns the number of rows
func (c *Chunk) Height() int {
	return c.height
}

// Width returns the number of columns
func (c *Chunk) Width() int {
	return c.width
}

// Features returns the terrain table the chunk was built with
func (c *Chunk) Features() *feature.Registry {
	return c.feats
}

// Terrain returns the resolved terrain constants
func (c *Chunk) Terrain() feature.Terrain {
	return c.terrain
}

// InBounds reports whether loc is on the grid
func (c *Chunk) InBounds(loc Loc) bool {
	return loc.X >= 0 && loc.X < c.width && loc.Y >= 0 && loc.Y < c.height
}

// InBoundsFully reports whether loc is on the grid and not on the outer wall ring
func (c *Chunk) InBoundsFully(loc Loc) bool {
	return loc.X > 0 && loc.X < c.width-1 && loc.Y > 0 && loc.Y < c.height-1
}

// Square returns the square at loc, or nil if out of bounds
func (c *Chunk) Square(loc Loc) *Square {
	if !c.InBounds(loc) || c.squares == nil {
		return nil
	}
	return &c.squares[loc.Y][loc.X]
}

// Feat returns the terrain at loc, or the unknown-grid feature if out of bounds
func (c *Chunk) Feat(loc Loc) int {
	sq := c.Square(loc)
	if sq == nil {
		return c.terrain.None
	}
	return sq.Feat
}

// SetFeat changes the terrain at loc and keeps the feature counts current
func (c *Chunk) SetFeat(loc Loc, feat int) bool {
	sq := c.Square(loc)
	if sq == nil || c.feats.Get(feat) == nil {
		return false
	}
	c.featCount[sq.Feat]--
	c.featCount[feat]++
	sq.Feat = feat
	return true
}

// FeatCount returns how many squares carry the given feature. Squares
// never set still count as the unknown-grid feature, so the counts always
// sum to the grid area.
func (c *Chunk) FeatCount(feat int) int {
	if feat < 0 || feat >= len(c.featCount) {
		return 0
	}
	return c.featCount[feat]
}

// HasFlag reports whether the feature at loc carries the terrain flag
func (c *Chunk) HasFlag(loc Loc, f feature.Flag) bool {
	return c.feats.Has(c.Feat(loc), f)
}

// SetInfo sets square info bits at loc
func (c *Chunk) SetInfo(loc Loc, f SquareFlag) {
	if sq := c.Square(loc); sq != nil {
		sq.Info |= f
	}
}

// ClearInfo clears square info bits at loc
func (c *Chunk) ClearInfo(loc Loc, f SquareFlag) {
	if sq := c.Square(loc); sq != nil {
		sq.Info &^= f
	}
}

// HasInfo reports whether every bit in f is set at loc
func (c *Chunk) HasInfo(loc Loc, f SquareFlag) bool {
	sq := c.Square(loc)
	return sq != nil && sq.Has(f)
}

// Pile returns the object pile at loc, which may be nil
func (c *Chunk) Pile(loc Loc) *Pile {
	sq := c.Square(loc)
	if sq == nil {
		return nil
	}
	return sq.Obj
}

// PlaceTrap puts a trap on top of the trap chain at loc
func (c *Chunk) PlaceTrap(loc Loc, kind string, visible bool) (*Trap, error) {
	sq := c.Square(loc)
	if sq == nil {
		return nil, fmt.Errorf("%w: trap at %v", ErrOutOfBounds, loc)
	}
	t := NewTrap(kind, loc)
	t.Visible = visible
	t.Next = sq.Trap
	sq.Trap = t
	sq.Info |= SquareTrap
	if !visible {
		sq.Info |= SquareInvis
	}
	return t, nil
}

// ForEachSquare iterates over all squares in row-major order
func (c *Chunk) ForEachSquare(fn func(loc Loc, sq *Square)) {
	for y := range c.squares {
		for x := range c.squares[y] {
			fn(Loc{X: x, Y: y}, &c.squares[y][x])
		}
	}
}
