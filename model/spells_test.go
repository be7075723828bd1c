package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeOf(t *testing.T) {
	tests := []struct {
		spell string
		want  int
	}{
		{"Burning Hands", 1},
		{"Sleep", 6},
		{"Magic Missile", 20},
		{"Unwritten Cantrip", 1},
	}
	for _, tt := range tests {
		t.Run(tt.spell, func(t *testing.T) {
			require.Equal(t, tt.want, RangeOf(tt.spell))
		})
	}
}

func TestIsValidTargetUsesChebyshev(t *testing.T) {
	d := openHallDungeon(t) // player at (4,4)

	require.True(t, d.IsValidTarget(Point{X: 5, Y: 5}, "Burning Hands"), "diagonal counts as 1")
	require.False(t, d.IsValidTarget(Point{X: 6, Y: 4}, "Burning Hands"))
	require.True(t, d.IsValidTarget(Point{X: 10, Y: 4}, "Sleep"))
	require.False(t, d.IsValidTarget(Point{X: 11, Y: 4}, "Sleep"))
}

func TestTargetCursorStaysInRange(t *testing.T) {
	d := openHallDungeon(t)
	d.StartTargeting("Burning Hands")
	require.Equal(t, d.PlayerPos, d.TargetCursor)

	require.True(t, d.MoveTargetCursor(East, "Burning Hands"))
	require.False(t, d.MoveTargetCursor(East, "Burning Hands"), "range 1 exhausted")
	require.Equal(t, Point{X: 5, Y: 4}, d.TargetCursor, "refused move leaves the cursor put")

	require.True(t, d.MoveTargetCursor(North, "Burning Hands"), "diagonal corner still in range")
}

func TestStartTargetingResetsCursor(t *testing.T) {
	d := openHallDungeon(t)
	d.StartTargeting("Sleep")
	for i := 0; i < 4; i++ {
		d.MoveTargetCursor(East, "Sleep")
	}
	require.Equal(t, Point{X: 8, Y: 4}, d.TargetCursor)

	d.StartTargeting("Sleep")
	require.Equal(t, d.PlayerPos, d.TargetCursor)
}
