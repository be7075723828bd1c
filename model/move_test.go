package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveBlockedIsSilentNoop(t *testing.T) {
	d := twoRoomDungeon(t)
	d.PlayerPos = Point{X: 0, Y: 0}

	before := d.Snapshot()
	require.False(t, d.Move(North), "void above the room")
	require.False(t, d.Move(West))
	require.Equal(t, before, d.Snapshot(), "failed moves change nothing")
}

func TestMoveCommits(t *testing.T) {
	d := twoRoomDungeon(t)
	require.True(t, d.Move(East))
	require.Equal(t, Point{X: 2, Y: 1}, d.PlayerPos)
	require.True(t, d.Walkable.Has(d.PlayerPos))
}

func TestMoveOntoDoorAutoOpens(t *testing.T) {
	d := twoRoomDungeon(t)
	require.True(t, d.Move(East))
	require.True(t, d.Move(East), "door cell is walkable once its near side shows")

	door := d.Doors[0]
	require.True(t, door.Open)
	require.Equal(t, DoorOpen, d.Tiles[Point{X: 3, Y: 1}])
	require.True(t, d.Revealed.Has(1), "auto-open cascades into the far room")

	// After the cascade every floor cell of room B is walkable.
	for _, c := range d.Rooms[1].Cells() {
		require.True(t, d.Walkable.Has(c), "cell %v", c)
	}
}

func TestOpenDoorAt(t *testing.T) {
	tests := []struct {
		name string
		kind int
		want bool
	}{
		{"standard opens", 1, true},
		{"locked opens", 5, true},
		{"secret opens", 6, true},
		{"passage needs no opening", 0, false},
		{"archway needs no opening", 2, false},
		{"stairs need no opening", 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := twoRoomLayout()
			layout.Doors[0].Kind = tt.kind
			d, err := NewDungeon(layout, testPlayer(), Point{X: 1, Y: 1}, testRNG())
			require.NoError(t, err)
			require.Equal(t, tt.want, d.OpenDoorAt(3, 1))
		})
	}
}

func TestOpenDoorAtMisses(t *testing.T) {
	d := twoRoomDungeon(t)
	require.False(t, d.OpenDoorAt(1, 1), "no door here")
	require.True(t, d.OpenDoorAt(3, 1))
	require.False(t, d.OpenDoorAt(3, 1), "already open")
}

func TestInteractOpensAdjacentDoor(t *testing.T) {
	d := twoRoomDungeon(t)
	d.PlayerPos = Point{X: 2, Y: 1}

	require.True(t, d.Interact(), "door one cell east")
	require.True(t, d.Doors[0].Open)
	require.True(t, d.Revealed.Has(1))

	require.False(t, d.Interact(), "nothing left to open")
}

func TestInteractOpensDoorUnderPlayer(t *testing.T) {
	layout := twoRoomLayout()
	layout.Doors[0].Kind = 0 // walk through freely, then a second, closed door
	layout.Doors = append(layout.Doors, RawDoor{X: 3, Y: 2, Kind: 1})
	d, err := NewDungeon(layout, testPlayer(), Point{X: 1, Y: 1}, testRNG())
	require.NoError(t, err)

	d.PlayerPos = Point{X: 3, Y: 2}
	require.True(t, d.Interact())
	require.True(t, d.Doors[1].Open)
}
