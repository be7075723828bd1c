package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// openHallDungeon is one big room so monsters can roam freely. Monsters
// are placed by hand; the spawn rng is irrelevant here.
func openHallDungeon(t *testing.T, monsters ...*Monster) *Dungeon {
	t.Helper()
	layout := Layout{Rects: []Rect{{X: 0, Y: 0, W: 9, H: 9}}}
	d, err := NewDungeon(layout, testPlayer(), Point{X: 4, Y: 4}, testRNG())
	require.NoError(t, err)
	d.Monsters = monsters
	return d
}

func TestMonsterStepsAlongDominantAxis(t *testing.T) {
	tests := []struct {
		name         string
		mx, my       int
		wantX, wantY int
	}{
		{"far east walks west", 8, 4, 7, 4},
		{"far south walks north", 4, 8, 4, 7},
		{"mostly east", 8, 3, 7, 3},
		{"mostly north", 5, 0, 5, 1},
		{"mostly south goes vertical", 7, 7, 7, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := openHallDungeon(t, &Monster{X: tt.mx, Y: tt.my, Room: 0})
			require.True(t, d.Move(North)) // player (4,4) -> (4,3)
			m := d.Monsters[0]
			// recompute expectation against the player's new position
			require.Equal(t, tt.wantX, m.X)
			require.Equal(t, tt.wantY, m.Y)
		})
	}
}

func TestMonsterTieBreakPrefersVertical(t *testing.T) {
	d := openHallDungeon(t, &Monster{X: 6, Y: 6, Room: 0})
	d.monsterTick() // player still at (4,4); |dx| == |dy| == 2
	require.Equal(t, 6, d.Monsters[0].X)
	require.Equal(t, 5, d.Monsters[0].Y)
}

func TestMonstersNeverCollide(t *testing.T) {
	d := openHallDungeon(t,
		&Monster{X: 4, Y: 6, Room: 0},
		&Monster{X: 4, Y: 7, Room: 0},
		&Monster{X: 4, Y: 8, Room: 0},
		&Monster{X: 3, Y: 6, Room: 0},
	)
	for i := 0; i < 10; i++ {
		d.monsterTick()
		seen := map[Point]bool{}
		for _, m := range d.Monsters {
			p := Point{m.X, m.Y}
			require.False(t, seen[p], "tick %d: two monsters on %v", i, p)
			seen[p] = true
			require.NotEqual(t, d.PlayerPos, p, "tick %d: monster on the player", i)
		}
	}
}

func TestMonsterInHiddenRoomHolds(t *testing.T) {
	d, err := NewDungeon(twoRoomLayout(), testPlayer(), Point{X: 1, Y: 1}, testRNG())
	require.NoError(t, err)
	d.Monsters = []*Monster{{X: 5, Y: 1, Room: 1}}

	d.monsterTick()
	require.Equal(t, 5, d.Monsters[0].X)
	require.Equal(t, 1, d.Monsters[0].Y)

	require.True(t, d.OpenDoorAt(3, 1))
	d.monsterTick()
	require.Equal(t, 4, d.Monsters[0].X, "revealed monster closes in")
}

func TestMonsterStallsAgainstWall(t *testing.T) {
	// The greedy step walks the monster into room C's west wall; with no
	// pathfinding it stays pressed against it forever. Accepted behavior,
	// not a bug.
	d, err := NewDungeon(chainLayout(2, 1), testPlayer(), Point{X: 1, Y: 1}, testRNG())
	require.NoError(t, err)
	d.Monsters = []*Monster{{X: 9, Y: 0, Room: 2}}
	d.RevealRoom(2)

	for i := 0; i < 5; i++ {
		d.monsterTick()
	}
	require.Equal(t, 8, d.Monsters[0].X, "stuck on the wall toward the player")
	require.Equal(t, 0, d.Monsters[0].Y)
}

func TestRemoveMonsterAt(t *testing.T) {
	d := openHallDungeon(t,
		&Monster{X: 2, Y: 2, Room: 0},
		&Monster{X: 6, Y: 6, Room: 0},
	)
	require.False(t, d.RemoveMonsterAt(0, 0))
	require.True(t, d.RemoveMonsterAt(2, 2))
	require.Len(t, d.Monsters, 1)
	require.NotNil(t, d.MonsterAt(6, 6))
	require.Nil(t, d.MonsterAt(2, 2))
}
