package model

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Point is a grid cell coordinate. One cell is one movement step.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Chebyshev is the 8-directional distance between two cells,
// used for spell ranges and monster adjacency.
func Chebyshev(a, b Point) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{0, -1}
	case South:
		return Point{0, 1}
	case East:
		return Point{1, 0}
	case West:
		return Point{-1, 0}
	default:
		return Point{}
	}
}

// Room is an axis-aligned rectangle of floor cells. Immutable after
// construction; referenced everywhere by its index in Dungeon.Rooms.
type Room struct {
	ID   int
	X, Y int
	W, H int
}

func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Room) Cells() []Point {
	cells := make([]Point, 0, r.W*r.H)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			cells = append(cells, Point{x, y})
		}
	}
	return cells
}

// DoorKind is the closed set of door kinds from the layout data.
// The numbering comes from the map format and has gaps.
type DoorKind int

const (
	KindPassage  DoorKind = 0
	KindStandard DoorKind = 1
	KindArchway  DoorKind = 2
	KindStairs   DoorKind = 3
	KindLocked   DoorKind = 5
	KindSecret   DoorKind = 6
	KindStairsUp DoorKind = 7
	KindStairsDn DoorKind = 9
)

// Passable reports whether the kind is a passage needing no open action.
// Reveal cascades flow through these automatically.
func (k DoorKind) Passable() bool {
	switch k {
	case KindPassage, KindArchway, KindStairs, KindStairsUp, KindStairsDn:
		return true
	}
	return false
}

// Openable reports whether the kind responds to an explicit open action.
func (k DoorKind) Openable() bool {
	switch k {
	case KindStandard, KindLocked, KindSecret:
		return true
	}
	return false
}

func (k DoorKind) Stairs() bool {
	switch k {
	case KindStairs, KindStairsUp, KindStairsDn:
		return true
	}
	return false
}

// Door sits on a single cell between up to two rooms. Room2 is -1 when
// only one side of the door is known (edge of the map data). Open is the
// only mutable field.
type Door struct {
	X, Y       int
	Room1      int
	Room2      int
	Horizontal bool
	Kind       DoorKind
	Open       bool
}

func (d *Door) Touches(roomID int) bool {
	return d.Room1 == roomID || d.Room2 == roomID
}

// OtherSide returns the room on the far side of the door from roomID,
// or -1 if there is none.
func (d *Door) OtherSide(roomID int) int {
	if d.Room1 == roomID {
		return d.Room2
	}
	if d.Room2 == roomID {
		return d.Room1
	}
	return -1
}

type Note struct {
	X, Y int
	Text string
}

type Column struct {
	X, Y int
}

type WaterTile struct {
	X, Y int
}

// Tile is the derived per-cell terrain. The room/door/note lists stay the
// ground truth; the grid is rebuilt from them and patched when doors open.
type Tile int

const (
	Void Tile = iota
	Floor
	DoorH
	DoorV
	DoorOpen
	NoteTile
	StairsH
	StairsV
)

// Walkable reports whether a player may occupy a cell of this tile type,
// assuming the cell is revealed.
func (t Tile) Walkable() bool {
	return t != Void
}

type Monster struct {
	X, Y int
	Room int
}

// Dungeon owns the whole exploration state for one loaded dungeon: the
// layout-derived geometry, the tile grid, the revealed and walkable sets,
// the monsters and the player position. It is mutated in place for the
// session; all mutations happen synchronously from the input step.
type Dungeon struct {
	Rooms   []*Room
	Doors   []*Door
	Notes   []Note
	Columns []Column
	Water   []WaterTile

	Tiles    map[Point]Tile
	Monsters []*Monster

	Revealed mapset.Set[int]
	Walkable mapset.Set[Point]

	Player       *Player
	PlayerPos    Point
	TargetCursor Point

	cellRoom map[Point]int
	rng      *rand.Rand
}

// DoorAt returns the door on the given cell, or nil.
func (d *Dungeon) DoorAt(x, y int) *Door {
	for _, door := range d.Doors {
		if door.X == x && door.Y == y {
			return door
		}
	}
	return nil
}

// RoomAt returns the id of the room containing the cell, or -1.
func (d *Dungeon) RoomAt(x, y int) int {
	if id, ok := d.cellRoom[Point{x, y}]; ok {
		return id
	}
	return -1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
