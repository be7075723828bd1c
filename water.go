package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mzeman/delver/model"
)

var (
	colorWater    = hexRGBA(0x3f6d8e)
	colorWaterRim = hexRGBA(0x6e9bb5)
)

var whiteImage = ebiten.NewImage(1, 1)

func init() {
	whiteImage.Fill(color.White)
}

// clusterTolerance merges tiles whose centers sit within 1.5 cells of a
// cluster member. Looser than strict 8-connectivity on purpose: pools
// drawn slightly apart on the map still read as one body of water.
const clusterTolerance = 1.5

type vec2 struct {
	x, y float32
}

func near(a, b model.Point) bool {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return math.Max(dx, dy) <= clusterTolerance
}

// clusterWater flood-merges water tiles into connected clusters. A tile
// joins every cluster it is near and fuses them into one.
func clusterWater(tiles []model.Point) [][]model.Point {
	var clusters [][]model.Point
	for _, t := range tiles {
		merged := []model.Point{t}
		remaining := clusters[:0:0]
		for _, cluster := range clusters {
			touches := false
			for _, m := range cluster {
				if near(t, m) {
					touches = true
					break
				}
			}
			if touches {
				merged = append(merged, cluster...)
			} else {
				remaining = append(remaining, cluster)
			}
		}
		clusters = append(remaining, merged)
	}
	return clusters
}

// jitter is a deterministic pseudo-random value in [0,1) derived from an
// index, so a pool keeps its exact shape across frames.
func jitter(i int) float32 {
	f := math.Sin(float64(i)*12.9898) * 43758.5453
	return float32(f - math.Floor(f))
}

// waterPolygon turns a cluster of at least three tiles into an organic
// blob outline: member centers sorted by angle around the centroid, each
// pushed outward by an index-derived factor so the shape is lumpy rather
// than circular, then a midpoint inserted between every consecutive pair
// for smoothing. Coordinates are world pixels, cell (0,0) at the origin.
func waterPolygon(cluster []model.Point, cell float32, expand float32) []vec2 {
	pts := make([]vec2, len(cluster))
	var cx, cy float32
	for i, p := range cluster {
		pts[i] = vec2{(float32(p.X) + 0.5) * cell, (float32(p.Y) + 0.5) * cell}
		cx += pts[i].x
		cy += pts[i].y
	}
	cx /= float32(len(pts))
	cy /= float32(len(pts))

	sortByAngle(pts, cx, cy)

	for i := range pts {
		dx := pts[i].x - cx
		dy := pts[i].y - cy
		f := 1 + expand + 0.22*jitter(i)
		pts[i] = vec2{cx + dx*f, cy + dy*f}
	}

	out := make([]vec2, 0, len(pts)*2)
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		out = append(out, pts[i], vec2{(pts[i].x + next.x) / 2, (pts[i].y + next.y) / 2})
	}
	return out
}

func sortByAngle(pts []vec2, cx, cy float32) {
	angle := func(p vec2) float64 {
		return math.Atan2(float64(p.y-cy), float64(p.x-cx))
	}
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && angle(pts[j]) < angle(pts[j-1]); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}

func fillPolygon(screen *ebiten.Image, pts []vec2, ox, oy float32, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(ox+pts[0].x, oy+pts[0].y)
	for i := 1; i < len(pts); i++ {
		path.LineTo(ox+pts[i].x, oy+pts[i].y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

// drawWater renders revealed water tiles grouped into pools: big clusters
// as organic polygons with a rim highlight, pairs as a capsule, loners as
// a ringed circle.
func drawWater(screen *ebiten.Image, d *model.Dungeon, cam *Camera) {
	if len(d.Water) == 0 {
		return
	}
	visible := make([]model.Point, 0, len(d.Water))
	for _, w := range d.Water {
		if d.IsRevealed(w.X, w.Y) {
			visible = append(visible, model.Point{X: w.X, Y: w.Y})
		}
	}
	if len(visible) == 0 {
		return
	}

	cell := float32(cam.CellSize())
	ox, oy := cam.worldToScreen(model.Point{X: 0, Y: 0}, d.PlayerPos)
	radius := cell * 0.45

	for _, cluster := range clusterWater(visible) {
		switch len(cluster) {
		case 1:
			x := ox + (float32(cluster[0].X)+0.5)*cell
			y := oy + (float32(cluster[0].Y)+0.5)*cell
			vector.DrawFilledCircle(screen, x, y, radius, colorWater, false)
			vector.StrokeCircle(screen, x, y, radius, 2, colorWaterRim, false)
		case 2:
			drawCapsule(screen, cluster, ox, oy, cell, radius)
		default:
			fillPolygon(screen, waterPolygon(cluster, cell, 0.38), ox, oy, colorWaterRim)
			fillPolygon(screen, waterPolygon(cluster, cell, 0.22), ox, oy, colorWater)
		}
	}
}

// drawCapsule joins exactly two tiles: a circle on each center and a quad
// bridging them.
func drawCapsule(screen *ebiten.Image, pair []model.Point, ox, oy, cell, radius float32) {
	x1 := ox + (float32(pair[0].X)+0.5)*cell
	y1 := oy + (float32(pair[0].Y)+0.5)*cell
	x2 := ox + (float32(pair[1].X)+0.5)*cell
	y2 := oy + (float32(pair[1].Y)+0.5)*cell

	vector.DrawFilledCircle(screen, x1, y1, radius, colorWater, false)
	vector.DrawFilledCircle(screen, x2, y2, radius, colorWater, false)

	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// unit normal scaled to the radius
	nx := float32(-dy / length * float64(radius))
	ny := float32(dx / length * float64(radius))
	quad := []vec2{
		{x1 + nx, y1 + ny},
		{x2 + nx, y2 + ny},
		{x2 - nx, y2 - ny},
		{x1 - nx, y1 - ny},
	}
	fillPolygon(screen, quad, 0, 0, colorWater)
}
