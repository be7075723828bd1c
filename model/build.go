package model

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// gridMargin is the ring of void cells kept around the outermost rooms so
// wall rendering has room to breathe.
const gridMargin = 3

// NewDungeon builds the exploration state from raw layout data. The rng
// drives monster placement only; inject a seeded one for deterministic
// dungeons. The room containing start is revealed immediately (falling
// back to the first room when start is in open void) and never receives
// monsters.
func NewDungeon(layout Layout, player *Player, start Point, rng *rand.Rand) (*Dungeon, error) {
	if len(layout.Rects) == 0 {
		return nil, fmt.Errorf("dungeon layout has no rooms")
	}

	d := &Dungeon{
		Notes:    make([]Note, 0, len(layout.Notes)),
		Columns:  make([]Column, 0, len(layout.Columns)),
		Water:    make([]WaterTile, 0, len(layout.Water)),
		Revealed: mapset.New[int](),
		Walkable: mapset.New[Point](),
		Player:   player,
		cellRoom: make(map[Point]int),
		rng:      rng,
	}

	for i, rc := range layout.Rects {
		if rc.W <= 0 || rc.H <= 0 {
			return nil, fmt.Errorf("room %d has degenerate size %dx%d", i, rc.W, rc.H)
		}
		room := &Room{ID: i, X: rc.X, Y: rc.Y, W: rc.W, H: rc.H}
		d.Rooms = append(d.Rooms, room)
		for _, c := range room.Cells() {
			d.cellRoom[c] = i
		}
	}

	for _, raw := range layout.Doors {
		d.Doors = append(d.Doors, d.buildDoor(raw))
	}

	for _, n := range layout.Notes {
		d.Notes = append(d.Notes, Note{X: n.Pos.X, Y: n.Pos.Y, Text: n.Text})
	}
	for _, c := range layout.Columns {
		d.Columns = append(d.Columns, Column{X: c.X, Y: c.Y})
	}
	for _, w := range layout.Water {
		d.Water = append(d.Water, WaterTile{X: w.X, Y: w.Y})
	}

	d.rebuildTiles()
	d.spawnMonsters(start)

	if startRoom := d.RoomAt(start.X, start.Y); startRoom >= 0 {
		d.RevealRoom(startRoom)
	} else {
		d.RevealRoom(0)
	}

	d.PlayerPos = start
	d.TargetCursor = start
	player.RecomputeDerived()

	return d, nil
}

// buildDoor associates a raw door cell with its rooms. Containment wins;
// doors sitting in the one-cell wall gap between rooms are caught by edge
// adjacency. Room ids are collected in input order and the first two
// survive, -1 marking a missing side.
func (d *Dungeon) buildDoor(raw RawDoor) *Door {
	connected := make([]int, 0, 2)
	for _, room := range d.Rooms {
		if room.Contains(raw.X, raw.Y) || adjacentToRoom(*room, raw.X, raw.Y) {
			connected = append(connected, room.ID)
		}
	}

	door := &Door{X: raw.X, Y: raw.Y, Room1: -1, Room2: -1, Kind: DoorKind(raw.Kind), Horizontal: true}
	if len(connected) > 0 {
		door.Room1 = connected[0]
	}
	if len(connected) > 1 {
		door.Room2 = connected[1]
		r1, r2 := d.Rooms[door.Room1], d.Rooms[door.Room2]
		// The slab is drawn along the axis the rooms are separated on,
		// straddling the wall between them. Ties stay horizontal.
		if abs(r1.Y-r2.Y) > abs(r1.X-r2.X) {
			door.Horizontal = false
		}
	}
	return door
}

func adjacentToRoom(r Room, x, y int) bool {
	return r.Contains(x+1, y) || r.Contains(x-1, y) || r.Contains(x, y+1) || r.Contains(x, y-1)
}

// rebuildTiles derives the whole tile grid from the room, door and note
// lists plus current door open state. Also used by Restore, which resets
// door state wholesale.
func (d *Dungeon) rebuildTiles() {
	minX, minY := d.Rooms[0].X, d.Rooms[0].Y
	maxX, maxY := minX, minY
	for _, r := range d.Rooms {
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.X+r.W > maxX {
			maxX = r.X + r.W
		}
		if r.Y+r.H > maxY {
			maxY = r.Y + r.H
		}
	}

	tiles := make(map[Point]Tile)
	for y := minY - gridMargin; y < maxY+gridMargin; y++ {
		for x := minX - gridMargin; x < maxX+gridMargin; x++ {
			tiles[Point{x, y}] = Void
		}
	}
	for _, r := range d.Rooms {
		for _, c := range r.Cells() {
			tiles[c] = Floor
		}
	}
	d.Tiles = tiles

	for _, door := range d.Doors {
		d.stampDoor(door)
	}

	for _, n := range d.Notes {
		p := Point{n.X, n.Y}
		if tiles[p] != Void {
			tiles[p] = NoteTile
		}
	}
}

// stampDoor writes a door's current tile. A closed secret door leaves the
// cell untouched so it reads as solid wall.
func (d *Dungeon) stampDoor(door *Door) {
	p := Point{door.X, door.Y}
	if door.Open {
		d.Tiles[p] = DoorOpen
		return
	}
	switch door.Kind {
	case KindPassage, KindArchway:
		d.Tiles[p] = DoorOpen
	case KindStairs, KindStairsUp, KindStairsDn:
		if door.Horizontal {
			d.Tiles[p] = StairsH
		} else {
			d.Tiles[p] = StairsV
		}
	case KindSecret:
		// solid wall until opened
	case KindStandard, KindLocked:
		if door.Horizontal {
			d.Tiles[p] = DoorH
		} else {
			d.Tiles[p] = DoorV
		}
	}
}

// spawnMonsters rolls 1d6 per room away from the start room; on 3 or less
// the room gets one monster on a random non-door cell.
func (d *Dungeon) spawnMonsters(start Point) {
	startRoom := d.RoomAt(start.X, start.Y)
	for _, room := range d.Rooms {
		if room.ID == startRoom {
			continue
		}
		if d.rng.Intn(6)+1 > 3 {
			continue
		}
		candidates := make([]Point, 0, room.W*room.H)
		for _, c := range room.Cells() {
			if d.DoorAt(c.X, c.Y) == nil {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		c := candidates[d.rng.Intn(len(candidates))]
		d.Monsters = append(d.Monsters, &Monster{X: c.X, Y: c.Y, Room: room.ID})
	}
}
