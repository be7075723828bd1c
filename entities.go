package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mzeman/delver/model"
)

var (
	colorPlayer  = hexRGBA(0x2a6f4e)
	colorMonster = hexRGBA(0x9c2f2f)
	colorOutline = hexRGBA(0x1c1a17)
	colorColumn  = hexRGBA(0x8d8374)
	colorCursor  = hexRGBA(0xe8d44d)
	colorRange   = hexRGBA(0xe8d44d)
)

// drawEntities renders columns, monsters, the player and the spell
// targeting overlay. The player always sits on the viewport's center
// cell; everything else is drawn only once its cell is revealed.
func drawEntities(screen *ebiten.Image, g *Game) {
	d := g.Dungeon
	cam := g.Camera
	cell := float32(cam.CellSize())

	for _, c := range d.Columns {
		if !d.IsRevealed(c.X, c.Y) {
			continue
		}
		x, y := cam.worldToScreen(model.Point{X: c.X, Y: c.Y}, d.PlayerPos)
		vector.DrawFilledCircle(screen, x+cell/2, y+cell/2, cell*0.28, colorColumn, false)
		vector.StrokeCircle(screen, x+cell/2, y+cell/2, cell*0.28, 2, colorOutline, false)
	}

	for _, m := range d.Monsters {
		if !d.IsRevealed(m.X, m.Y) {
			continue
		}
		x, y := cam.worldToScreen(model.Point{X: m.X, Y: m.Y}, d.PlayerPos)
		vector.DrawFilledCircle(screen, x+cell/2, y+cell/2, cell*0.36, colorMonster, false)
		vector.StrokeCircle(screen, x+cell/2, y+cell/2, cell*0.36, 2, colorOutline, false)
	}

	if g.Mode == ModeTargeting {
		px, py := cam.worldToScreen(d.PlayerPos, d.PlayerPos)
		spellRange := float32(model.RangeOf(g.CurrentSpell()))
		vector.DrawFilledCircle(screen, px+cell/2, py+cell/2, spellRange*cell, fade(colorRange, 0.15), false)

		if d.IsRevealed(d.TargetCursor.X, d.TargetCursor.Y) || d.TargetCursor == d.PlayerPos {
			cx, cy := cam.worldToScreen(d.TargetCursor, d.PlayerPos)
			vector.StrokeRect(screen, cx+1, cy+1, cell-2, cell-2, 2, colorCursor, false)
		}
	}

	px, py := cam.worldToScreen(d.PlayerPos, d.PlayerPos)
	vector.DrawFilledCircle(screen, px+cell/2, py+cell/2, cell*0.36, colorPlayer, false)
	vector.StrokeCircle(screen, px+cell/2, py+cell/2, cell*0.36, 2, colorOutline, false)

	drawStandingNote(screen, d)
}

// drawStandingNote shows the note text while the player is on its cell.
func drawStandingNote(screen *ebiten.Image, d *model.Dungeon) {
	for _, n := range d.Notes {
		if n.X == d.PlayerPos.X && n.Y == d.PlayerPos.Y {
			text.Draw(screen, n.Text, noteFace, 10, screenHeight-36, hexRGBA(0xe8e2d2))
			return
		}
	}
}
