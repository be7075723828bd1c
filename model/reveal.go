package model

import "github.com/zyedidia/generic/mapset"

// RevealRoom lifts fog from a room and cascades through every passable
// connection: breadth-first over the room graph, crossing doors whose kind
// is a passage or which have been opened. Closed standard, locked and
// secret doors stop the cascade until opened. Revealed rooms never become
// hidden again.
func (d *Dungeon) RevealRoom(id int) {
	if id < 0 || id >= len(d.Rooms) || d.Revealed.Has(id) {
		return
	}
	d.revealRoom(id)
	d.recomputeWalkable()
}

func (d *Dungeon) revealRoom(id int) {
	if id < 0 || id >= len(d.Rooms) {
		return
	}
	queue := []int{id}
	visited := mapset.New[int]()
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited.Has(cur) {
			continue
		}
		visited.Put(cur)
		d.Revealed.Put(cur)

		for _, door := range d.Doors {
			if !door.Touches(cur) {
				continue
			}
			if !door.Kind.Passable() && !door.Open {
				continue
			}
			other := door.OtherSide(cur)
			if other < 0 || d.Revealed.Has(other) || visited.Has(other) {
				continue
			}
			queue = append(queue, other)
		}
	}
}

// IsRevealed reports whether a cell is out of the fog: inside a revealed
// room, or a door cell with at least one revealed side. A closed secret
// door is never revealed, whatever its neighbours — it reads as wall.
func (d *Dungeon) IsRevealed(x, y int) bool {
	if id := d.RoomAt(x, y); id >= 0 && d.Revealed.Has(id) {
		return true
	}
	if door := d.DoorAt(x, y); door != nil {
		if door.Kind == KindSecret && !door.Open {
			return false
		}
		if door.Room1 >= 0 && d.Revealed.Has(door.Room1) {
			return true
		}
		if door.Room2 >= 0 && d.Revealed.Has(door.Room2) {
			return true
		}
	}
	return false
}

// recomputeWalkable rebuilds the walkable set from scratch. Runs after
// every reveal or door-state change; the set is always the revealed,
// non-void subset of the grid.
func (d *Dungeon) recomputeWalkable() {
	d.Walkable = mapset.New[Point]()
	for p, t := range d.Tiles {
		if t.Walkable() && d.IsRevealed(p.X, p.Y) {
			d.Walkable.Put(p)
		}
	}
}
