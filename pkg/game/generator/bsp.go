package generator

import (
	"fmt"
	"math/rand"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/depth"
)

// BSPGenerator generates levels using Binary Space Partitioning
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *Room
}

// Constants for BSP generation
const (
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
)

// Generate carves rooms and corridors into c using the BSP algorithm
func (g *BSPGenerator) Generate(c *world.Chunk, rng *rand.Rand, p depth.Profile) (*Layout, error) {
	fillRock(c)

	// Leave the outer ring as permanent wall
	root := &bspNode{
		x:      1,
		y:      1,
		width:  c.Width() - 2,
		height: c.Height() - 2,
	}

	minSize := p.MinNodeSize
	if minSize < minRoomSize+roomPadding {
		minSize = minRoomSize + roomPadding
	}
	splitBSP(rng, root, minSize)

	bases, adjectives := depth.RoomNames(p.Band)
	createRooms(rng, root, bases, adjectives)
	carveRooms(c, root)
	connectRooms(rng, c, root)

	rooms := collectRooms(root)
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: %dx%d is too small for a room", ErrGeneration, c.Height(), c.Width())
	}

	placeDoors(rng, c)
	cutVeins(rng, c, p)

	// Start in a random room
	layout := &Layout{Rooms: rooms}
	layout.Up = rooms[rng.Intn(len(rooms))].Center()
	down, err := placeStairs(c, layout.Up)
	if err != nil {
		return nil, err
	}
	layout.Down = down

	poolLava(rng, c, p, rooms, layout.Up, layout.Down)
	if err := placeTraps(rng, c, p); err != nil {
		return nil, err
	}
	return layout, nil
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = rng.Intn(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  node.width,
			height: splitPoint,
		}
		node.right = &bspNode{
			x:      node.x,
			y:      node.y + splitPoint,
			width:  node.width,
			height: node.height - splitPoint,
		}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  splitPoint,
			height: node.height,
		}
		node.right = &bspNode{
			x:      node.x + splitPoint,
			y:      node.y,
			width:  node.width - splitPoint,
			height: node.height,
		}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// createRooms creates rooms in leaf nodes
func createRooms(rng *rand.Rand, node *bspNode, bases, adjectives []string) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(rng, node.left, bases, adjectives)
		}
		if node.right != nil {
			createRooms(rng, node.right, bases, adjectives)
		}
		return
	}

	if node.width < minRoomSize+roomPadding || node.height < minRoomSize+roomPadding {
		return
	}

	// Leaf node - create a room
	roomWidth := minRoomSize + rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + rng.Intn(node.height-minRoomSize-roomPadding+1)

	roomX := node.x + rng.Intn(node.width-roomWidth)
	roomY := node.y + rng.Intn(node.height-roomHeight)

	name := fmt.Sprintf("%s %s",
		adjectives[rng.Intn(len(adjectives))],
		bases[rng.Intn(len(bases))])

	node.room = &Room{
		Name:   name,
		X:      roomX,
		Y:      roomY,
		Width:  roomWidth,
		Height: roomHeight,
	}
}

// carveRooms turns room rectangles into floor marked as room
func carveRooms(c *world.Chunk, node *bspNode) {
	if node.room != nil {
		r := node.room
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				loc := world.L(x, y)
				carveFloor(c, loc)
				c.SetInfo(loc, world.SquareRoom)
			}
		}
	}

	if node.left != nil {
		carveRooms(c, node.left)
	}
	if node.right != nil {
		carveRooms(c, node.right)
	}
}

// connectRooms joins sibling subtrees with L-shaped corridors
func connectRooms(rng *rand.Rand, c *world.Chunk, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(rng, node.left)
	rightRoom := getRoom(rng, node.right)

	if leftRoom != nil && rightRoom != nil {
		from := leftRoom.Center()
		to := rightRoom.Center()

		if rng.Intn(2) == 0 {
			// Horizontal first, then vertical
			carveCorridorHorizontal(c, from.Y, from.X, to.X)
			carveCorridorVertical(c, to.X, from.Y, to.Y)
		} else {
			// Vertical first, then horizontal
			carveCorridorVertical(c, from.X, from.Y, to.Y)
			carveCorridorHorizontal(c, to.Y, from.X, to.X)
		}
	}

	connectRooms(rng, c, node.left)
	connectRooms(rng, c, node.right)
}

// carveCorridorHorizontal carves a one-wide corridor along a row
func carveCorridorHorizontal(c *world.Chunk, y, startX, endX int) {
	if startX > endX {
		startX, endX = endX, startX
	}
	for x := startX; x <= endX; x++ {
		carveFloor(c, world.L(x, y))
	}
}

// carveCorridorVertical carves a one-wide corridor along a column
func carveCorridorVertical(c *world.Chunk, x, startY, endY int) {
	if startY > endY {
		startY, endY = endY, startY
	}
	for y := startY; y <= endY; y++ {
		carveFloor(c, world.L(x, y))
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(rng *rand.Rand, node *bspNode) *Room {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *Room
	if node.left != nil {
		leftRoom = getRoom(rng, node.left)
	}
	if node.right != nil {
		rightRoom = getRoom(rng, node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}

	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []Room {
	var rooms []Room

	if node.room != nil {
		rooms = append(rooms, *node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}
