package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/mzeman/delver/model"
)

// zoomLevels are the cell sizes the zoom key cycles through, in pixels.
var zoomLevels = []int{16, 24, 32, 48}

const (
	slideDuration = 0.14
	fadeDuration  = 0.35
)

// Camera keeps the player pinned to the viewport's center cell and slides
// the world underneath on each committed move. It also tracks per-room
// fade-in alphas for freshly revealed rooms.
type Camera struct {
	zoomIdx        int
	slideX, slideY float32
	roomAlpha      map[int]float32
}

func NewCamera() *Camera {
	return &Camera{zoomIdx: 2, roomAlpha: make(map[int]float32)}
}

func (c *Camera) CellSize() int {
	return zoomLevels[c.zoomIdx]
}

func (c *Camera) CycleZoom() {
	c.zoomIdx = (c.zoomIdx + 1) % len(zoomLevels)
}

// worldToScreen maps a cell to its top-left pixel, relative to the player
// at center plus the current slide offset.
func (c *Camera) worldToScreen(p, player model.Point) (float32, float32) {
	cell := float32(c.CellSize())
	x := float32(screenWidth)/2 - cell/2 + float32(p.X-player.X)*cell + c.slideX
	y := float32(screenHeight)/2 - cell/2 + float32(p.Y-player.Y)*cell + c.slideY
	return x, y
}

// visibleRange is the inclusive cell rectangle worth drawing, one cell of
// slack on every side for the slide.
func (c *Camera) visibleRange(player model.Point) (minX, minY, maxX, maxY int) {
	halfW := screenWidth/c.CellSize()/2 + 1
	halfH := screenHeight/c.CellSize()/2 + 1
	return player.X - halfW, player.Y - halfH, player.X + halfW, player.Y + halfH
}

// slideFrom starts the world slide compensating a one-cell player move,
// easing back to rest.
func (c *Camera) slideFrom(g *Game, dir model.Direction) {
	d := dir.Delta()
	cell := float32(c.CellSize())
	if d.X != 0 {
		c.slideX = float32(d.X) * cell
		t := gween.New(c.slideX, 0, slideDuration, ease.OutQuad)
		g.Tweens[t] = Action{onChange: func(v float32) { c.slideX = v }}
	}
	if d.Y != 0 {
		c.slideY = float32(d.Y) * cell
		t := gween.New(c.slideY, 0, slideDuration, ease.OutQuad)
		g.Tweens[t] = Action{onChange: func(v float32) { c.slideY = v }}
	}
}

// fadeInRoom starts a reveal fade for one room.
func (c *Camera) fadeInRoom(g *Game, id int) {
	c.roomAlpha[id] = 0
	t := gween.New(0, 1, fadeDuration, ease.InQuad)
	a := Action{onChange: func(v float32) { c.roomAlpha[id] = v }}
	a.addOnFinish(func() { delete(c.roomAlpha, id) })
	g.Tweens[t] = a
}

// alphaAt is the fade alpha for a cell: 1 once a room has settled, the
// in-flight fade value while it is appearing. Door cells fade with their
// first revealed room.
func (c *Camera) alphaAt(d *model.Dungeon, p model.Point) float32 {
	id := d.RoomAt(p.X, p.Y)
	if id < 0 {
		if door := d.DoorAt(p.X, p.Y); door != nil {
			if a, ok := c.roomAlpha[door.Room1]; ok {
				return a
			}
			if a, ok := c.roomAlpha[door.Room2]; ok {
				return a
			}
		}
		return 1
	}
	if a, ok := c.roomAlpha[id]; ok {
		return a
	}
	return 1
}
