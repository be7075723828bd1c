package model

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// MonsterState is a monster's saved position.
type MonsterState struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Room int `json:"room"`
}

// PlayerSummary is the slice of the player the save cares about.
type PlayerSummary struct {
	Name  string `json:"name"`
	Class Class  `json:"class"`
	Level int    `json:"level"`
	HP    int    `json:"hp"`
	AC    int    `json:"ac"`
}

// Snapshot captures everything needed to resume a session against the
// same layout data: position, discovery, monsters and which doors were
// opened. There is no versioning; a snapshot only makes sense with the
// layout it was taken from.
type Snapshot struct {
	PlayerPos     Point          `json:"player_pos"`
	RevealedRooms []int          `json:"revealed_rooms"`
	Monsters      []MonsterState `json:"monsters"`
	OpenedDoors   []Point        `json:"opened_doors"`
	Player        PlayerSummary  `json:"player"`
}

func (d *Dungeon) Snapshot() Snapshot {
	s := Snapshot{PlayerPos: d.PlayerPos}

	d.Revealed.Each(func(id int) {
		s.RevealedRooms = append(s.RevealedRooms, id)
	})
	sort.Ints(s.RevealedRooms)

	for _, m := range d.Monsters {
		s.Monsters = append(s.Monsters, MonsterState{X: m.X, Y: m.Y, Room: m.Room})
	}
	for _, door := range d.Doors {
		if door.Open {
			s.OpenedDoors = append(s.OpenedDoors, Point{door.X, door.Y})
		}
	}
	s.Player = PlayerSummary{
		Name:  d.Player.Name,
		Class: d.Player.Class,
		Level: d.Player.Level,
		HP:    d.Player.HP,
		AC:    d.Player.AC,
	}
	return s
}

// Restore is best-effort: revealed rooms and opened doors that the
// current layout does not know are skipped silently, everything else is
// rebuilt and the walkable set recomputed.
func (d *Dungeon) Restore(s Snapshot) {
	d.Revealed = mapset.New[int]()
	for _, id := range s.RevealedRooms {
		if id >= 0 && id < len(d.Rooms) {
			d.Revealed.Put(id)
		}
	}

	for _, door := range d.Doors {
		door.Open = false
	}
	d.rebuildTiles()
	for _, p := range s.OpenedDoors {
		door := d.DoorAt(p.X, p.Y)
		if door == nil {
			continue
		}
		door.Open = true
		d.Tiles[p] = DoorOpen
	}

	d.Monsters = d.Monsters[:0]
	for _, m := range s.Monsters {
		d.Monsters = append(d.Monsters, &Monster{X: m.X, Y: m.Y, Room: m.Room})
	}

	d.PlayerPos = s.PlayerPos
	d.TargetCursor = s.PlayerPos
	d.recomputeWalkable()
}
