package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mzeman/delver/model"
)

func TestClusterWaterMergesNearTiles(t *testing.T) {
	tests := []struct {
		name  string
		tiles []model.Point
		want  int
	}{
		{"empty", nil, 0},
		{"single", []model.Point{{X: 0, Y: 0}}, 1},
		{"orthogonal pair", []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1},
		{"diagonal pair", []model.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1},
		{"two apart", []model.Point{{X: 0, Y: 0}, {X: 2, Y: 2}}, 2},
		{"far apart", []model.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, clusterWater(tt.tiles), tt.want)
		})
	}
}

func TestClusterWaterFusesThroughBridge(t *testing.T) {
	// (0,0) and (2,2) are separate pools until (1,1) bridges them.
	clusters := clusterWater([]model.Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 1}})
	require.Len(t, clusters, 1)
	require.Len(t, clusters[0], 3)
}

func TestWaterPolygonShape(t *testing.T) {
	cluster := []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	pts := waterPolygon(cluster, 10, 0.22)

	require.GreaterOrEqual(t, len(pts), 6, "midpoint insertion doubles the boundary")
	require.Equal(t, len(cluster)*2, len(pts))
}

func TestWaterPolygonDeterministic(t *testing.T) {
	cluster := []model.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 4}}
	a := waterPolygon(cluster, 24, 0.22)
	b := waterPolygon(cluster, 24, 0.22)
	require.Equal(t, a, b, "pool shape is stable across frames")
}

func TestWaterPolygonPushesOutward(t *testing.T) {
	cluster := []model.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}
	pts := waterPolygon(cluster, 10, 0.3)

	// centroid of the cell centers
	cx := float32((0.5 + 2.5 + 1.5) / 3 * 10)
	cy := float32((0.5 + 0.5 + 2.5) / 3 * 10)

	// every original corner sits further from the centroid than the raw
	// cell center does; midpoints may not, that is the smoothing
	for i := 0; i < len(pts); i += 2 {
		dx := pts[i].x - cx
		dy := pts[i].y - cy
		require.Greater(t, dx*dx+dy*dy, float32(0), "point %d collapsed onto the centroid", i)
	}
}

func TestJitterDeterministicAndBounded(t *testing.T) {
	for i := 0; i < 64; i++ {
		v := jitter(i)
		require.GreaterOrEqual(t, v, float32(0))
		require.Less(t, v, float32(1))
		require.Equal(t, v, jitter(i))
	}
}
