package model

import "github.com/zyedidia/generic/mapset"

// monsterTick gives every monster in a revealed room one greedy step
// toward the player: along the axis with the larger absolute delta, ties
// going vertical. There is no pathfinding; monsters happily stall against
// a wall. Occupancy is claimed from the tick's starting positions and
// from each committed step, so monsters never collide and never swap into
// a cell another monster started the tick on.
func (d *Dungeon) monsterTick() {
	occupied := mapset.New[Point]()
	occupied.Put(d.PlayerPos)
	for _, m := range d.Monsters {
		occupied.Put(Point{m.X, m.Y})
	}

	for _, m := range d.Monsters {
		if !d.Revealed.Has(m.Room) {
			continue
		}
		dx := d.PlayerPos.X - m.X
		dy := d.PlayerPos.Y - m.Y
		if dx == 0 && dy == 0 {
			continue
		}

		var step Point
		if abs(dx) > abs(dy) {
			step = Point{sign(dx), 0}
		} else {
			step = Point{0, sign(dy)}
		}

		dest := Point{m.X + step.X, m.Y + step.Y}
		if !d.Walkable.Has(dest) || occupied.Has(dest) {
			continue
		}
		m.X, m.Y = dest.X, dest.Y
		occupied.Put(dest)
	}
}

// RemoveMonsterAt deletes the monster on the given cell. This is the hook
// the combat layer calls after a kill; the exploration core never removes
// monsters on its own.
func (d *Dungeon) RemoveMonsterAt(x, y int) bool {
	for i, m := range d.Monsters {
		if m.X == x && m.Y == y {
			d.Monsters = append(d.Monsters[:i], d.Monsters[i+1:]...)
			return true
		}
	}
	return false
}

// MonsterAt returns the monster on the given cell, or nil.
func (d *Dungeon) MonsterAt(x, y int) *Monster {
	for _, m := range d.Monsters {
		if m.X == x && m.Y == y {
			return m
		}
	}
	return nil
}
