package model

// OpenDoorAt opens a closed standard, locked or secret door on the given
// cell, patches its tile and reveals both sides. Lockpicking, bashing and
// discovery are all folded into the one action; the caller decides when
// it is allowed. Returns false when there is nothing there to open.
func (d *Dungeon) OpenDoorAt(x, y int) bool {
	door := d.DoorAt(x, y)
	if door == nil || door.Open || !door.Kind.Openable() {
		return false
	}
	door.Open = true
	d.Tiles[Point{x, y}] = DoorOpen
	d.revealRoom(door.Room1)
	d.revealRoom(door.Room2)
	d.recomputeWalkable()
	return true
}

// Move steps the player one cell. Walking onto a closed door opens it,
// cascading the reveal; every committed move costs the monsters one turn.
// A blocked move is a silent no-op returning false.
func (d *Dungeon) Move(dir Direction) bool {
	next := d.PlayerPos.Add(dir.Delta())
	if !d.Walkable.Has(next) {
		return false
	}
	d.PlayerPos = next
	if door := d.DoorAt(next.X, next.Y); door != nil && !door.Open && door.Kind.Openable() {
		d.OpenDoorAt(next.X, next.Y)
	}
	d.monsterTick()
	return true
}

// Interact tries to open a door under or orthogonally next to the player,
// stopping at the first success.
func (d *Dungeon) Interact() bool {
	probes := [5]Point{
		d.PlayerPos,
		d.PlayerPos.Add(North.Delta()),
		d.PlayerPos.Add(South.Delta()),
		d.PlayerPos.Add(East.Delta()),
		d.PlayerPos.Add(West.Delta()),
	}
	for _, p := range probes {
		if d.OpenDoorAt(p.X, p.Y) {
			return true
		}
	}
	return false
}
