package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mzeman/delver/model"
)

const (
	wallWidth    = 3.0
	shadowOffset = 2.5
)

var (
	colorWall   = hexRGBA(0x1c1a17)
	colorShadow = hexRGBA(0x49423a)
)

type segment struct {
	x1, y1, x2, y2 float32
}

// wallSegments marches the revealed boundary: one segment per edge of a
// revealed cell whose far side is still hidden (a closed secret door
// counts as hidden by the reveal rules). Coordinates are world pixels,
// cell (0,0) at the origin. Segment ends are pushed out half the line
// width so perpendicular segments close corners and T-junctions cleanly.
func wallSegments(d *model.Dungeon, minX, minY, maxX, maxY int, cell, width float32) []segment {
	half := width / 2
	var segs []segment

	hidden := func(x, y int) bool { return !d.IsRevealed(x, y) }

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !d.IsRevealed(x, y) {
				continue
			}
			left := float32(x) * cell
			top := float32(y) * cell
			right := left + cell
			bottom := top + cell

			if hidden(x-1, y) {
				segs = append(segs, segment{left, top - half, left, bottom + half})
			}
			if hidden(x+1, y) {
				segs = append(segs, segment{right, top - half, right, bottom + half})
			}
			if hidden(x, y-1) {
				segs = append(segs, segment{left - half, top, right + half, top})
			}
			if hidden(x, y+1) {
				segs = append(segs, segment{left - half, bottom, right + half, bottom})
			}
		}
	}
	return segs
}

// drawWalls renders the boundary outline with a dropped shadow copy
// underneath for a bit of pseudo-3D relief.
func drawWalls(screen *ebiten.Image, d *model.Dungeon, cam *Camera) {
	minX, minY, maxX, maxY := cam.visibleRange(d.PlayerPos)
	cell := float32(cam.CellSize())
	segs := wallSegments(d, minX, minY, maxX, maxY, cell, wallWidth)

	ox, oy := cam.worldToScreen(model.Point{X: 0, Y: 0}, d.PlayerPos)

	for _, s := range segs {
		vector.StrokeLine(screen,
			ox+s.x1+shadowOffset, oy+s.y1+shadowOffset,
			ox+s.x2+shadowOffset, oy+s.y2+shadowOffset,
			wallWidth, colorShadow, false)
	}
	for _, s := range segs {
		vector.StrokeLine(screen, ox+s.x1, oy+s.y1, ox+s.x2, oy+s.y2, wallWidth, colorWall, false)
	}
}
