package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mzeman/delver/model"
)

func hexRGBA(u uint32) color.RGBA {
	return color.RGBA{
		R: uint8(0xff & (u >> 16)),
		G: uint8(0xff & (u >> 8)),
		B: uint8(0xff & u),
		A: 0xff,
	}
}

// fade scales a color toward transparent, premultiplied.
func fade(c color.RGBA, a float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

var (
	colorFloor   = hexRGBA(0xd8cfb8)
	colorGrid    = hexRGBA(0xc3b99f)
	colorDoor    = hexRGBA(0x8a5a2b)
	colorDoorRim = hexRGBA(0x5c3a18)
	colorStairs  = hexRGBA(0x6b6254)
	colorNote    = hexRGBA(0x7a2f23)
)

// drawTiles stamps the visual template of every revealed tile in view.
// Templates are flat fills plus geometric glyphs, no sprite assets.
func drawTiles(screen *ebiten.Image, d *model.Dungeon, cam *Camera) {
	minX, minY, maxX, maxY := cam.visibleRange(d.PlayerPos)
	cell := float32(cam.CellSize())

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := model.Point{X: x, Y: y}
			t, ok := d.Tiles[p]
			if !ok || t == model.Void || !d.IsRevealed(x, y) {
				continue
			}
			sx, sy := cam.worldToScreen(p, d.PlayerPos)
			drawTile(screen, t, sx, sy, cell, cam.alphaAt(d, p))
		}
	}
}

func drawTile(screen *ebiten.Image, t model.Tile, x, y, cell float32, alpha float32) {
	vector.DrawFilledRect(screen, x, y, cell, cell, fade(colorFloor, alpha), false)
	vector.StrokeRect(screen, x, y, cell, cell, 1, fade(colorGrid, alpha), false)

	switch t {
	case model.Floor:
	case model.DoorH:
		vector.DrawFilledRect(screen, x+cell*0.08, y+cell*0.34, cell*0.84, cell*0.32, fade(colorDoor, alpha), false)
		vector.StrokeRect(screen, x+cell*0.08, y+cell*0.34, cell*0.84, cell*0.32, 1, fade(colorDoorRim, alpha), false)
	case model.DoorV:
		vector.DrawFilledRect(screen, x+cell*0.34, y+cell*0.08, cell*0.32, cell*0.84, fade(colorDoor, alpha), false)
		vector.StrokeRect(screen, x+cell*0.34, y+cell*0.08, cell*0.32, cell*0.84, 1, fade(colorDoorRim, alpha), false)
	case model.DoorOpen:
		// jamb posts where the door used to hang
		post := cell * 0.16
		vector.DrawFilledRect(screen, x, y, post, post, fade(colorDoorRim, alpha), false)
		vector.DrawFilledRect(screen, x+cell-post, y, post, post, fade(colorDoorRim, alpha), false)
		vector.DrawFilledRect(screen, x, y+cell-post, post, post, fade(colorDoorRim, alpha), false)
		vector.DrawFilledRect(screen, x+cell-post, y+cell-post, post, post, fade(colorDoorRim, alpha), false)
	case model.StairsH:
		for i := 1; i <= 4; i++ {
			tx := x + cell*float32(i)/5
			vector.StrokeLine(screen, tx, y+cell*0.15, tx, y+cell*0.85, 2, fade(colorStairs, alpha), false)
		}
	case model.StairsV:
		for i := 1; i <= 4; i++ {
			ty := y + cell*float32(i)/5
			vector.StrokeLine(screen, x+cell*0.15, ty, x+cell*0.85, ty, 2, fade(colorStairs, alpha), false)
		}
	case model.NoteTile:
		text.Draw(screen, "!", noteFace, int(x+cell*0.4), int(y+cell*0.7), fade(colorNote, alpha))
	}
}
