package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	d, err := NewDungeon(chainLayout(1, 2), testPlayer(), Point{X: 1, Y: 1}, testRNG())
	require.NoError(t, err)

	// Explore a bit: through the standard door into B, which cascades C.
	require.True(t, d.Move(East))
	require.True(t, d.Move(East))
	require.True(t, d.Move(East))

	taken := d.Snapshot()

	// Wander on, then restore.
	d.Move(East)
	d.Move(South)
	d.Restore(taken)

	require.Equal(t, taken.PlayerPos, d.PlayerPos)
	require.Equal(t, taken, d.Snapshot(), "snapshot of a restored dungeon is identical")

	require.True(t, d.Doors[0].Open)
	require.Equal(t, DoorOpen, d.Tiles[Point{X: 3, Y: 1}])
	d.Walkable.Each(func(p Point) {
		require.True(t, d.IsRevealed(p.X, p.Y))
	})
}

func TestRestoreClosesDoorsOpenedAfterSnapshot(t *testing.T) {
	d := twoRoomDungeon(t)
	taken := d.Snapshot()

	require.True(t, d.OpenDoorAt(3, 1))
	require.True(t, d.Revealed.Has(1))

	d.Restore(taken)
	require.False(t, d.Doors[0].Open)
	require.Equal(t, DoorH, d.Tiles[Point{X: 3, Y: 1}], "door tile re-stamped closed")
	require.False(t, d.Revealed.Has(1))
	require.False(t, d.Walkable.Has(Point{X: 4, Y: 1}))
}

func TestRestoreSkipsUnknownEntries(t *testing.T) {
	d := twoRoomDungeon(t)
	taken := d.Snapshot()
	taken.OpenedDoors = append(taken.OpenedDoors, Point{X: 42, Y: 42})
	taken.RevealedRooms = append(taken.RevealedRooms, 17)

	d.Restore(taken) // best-effort, no panic
	require.False(t, d.Revealed.Has(17))
	require.Equal(t, Point{X: 1, Y: 1}, d.PlayerPos)
}

func TestSnapshotCarriesPlayerSummary(t *testing.T) {
	d := twoRoomDungeon(t)
	s := d.Snapshot()
	require.Equal(t, "Tester", s.Player.Name)
	require.Equal(t, Fighter, s.Player.Class)
	require.Equal(t, d.Player.AC, s.Player.AC)
}

func TestSnapshotMonstersSurviveRestore(t *testing.T) {
	d := twoRoomDungeon(t)
	d.Monsters = []*Monster{{X: 5, Y: 2, Room: 1}}
	taken := d.Snapshot()

	d.Monsters[0].X = 6
	d.RemoveMonsterAt(6, 2)
	require.Empty(t, d.Monsters)

	d.Restore(taken)
	require.Len(t, d.Monsters, 1)
	require.Equal(t, 5, d.Monsters[0].X)
	require.Equal(t, 2, d.Monsters[0].Y)
	require.Equal(t, 1, d.Monsters[0].Room)
}
