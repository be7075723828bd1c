package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"

	"github.com/mzeman/delver/model"
)

const (
	screenWidth  = 960
	screenHeight = 640
)

type Mode int

const (
	ModeNormal Mode = iota + 1
	ModeTargeting
)

func (m Mode) Name() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeTargeting:
		return "TARGETING"
	default:
		return fmt.Sprintf("N/A(%d)", m)
	}
}

// spellbook is the casting order the Tab key cycles through.
var spellbook = []string{"Magic Missile", "Sleep", "Burning Hands", "Cure Wounds", "Light"}

type Game struct {
	Dungeon *model.Dungeon
	Camera  *Camera
	Clock   model.WorldClock
	Mode    Mode
	Tweens  map[*gween.Tween]Action

	spellIdx int
}

func NewGame(d *model.Dungeon, clock model.WorldClock) *Game {
	return &Game{
		Dungeon: d,
		Camera:  NewCamera(),
		Clock:   clock,
		Mode:    ModeNormal,
		Tweens:  make(map[*gween.Tween]Action),
	}
}

func (g *Game) CurrentSpell() string {
	return spellbook[g.spellIdx]
}

func (g *Game) Update() error {
	g.updateTweens(1.0 / 60.0)

	switch g.Mode {
	case ModeTargeting:
		g.updateTargeting()
	default:
		g.updateNormal()
	}
	return nil
}

func (g *Game) updateNormal() {
	if dir, ok := pressedDirection(); ok {
		before := revealedIDs(g.Dungeon)
		if g.Dungeon.Move(dir) {
			g.Camera.slideFrom(g, dir)
			g.fadeNewRooms(before)
		}
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		before := revealedIDs(g.Dungeon)
		if g.Dungeon.Interact() {
			g.fadeNewRooms(before)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.Camera.CycleZoom()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.spellIdx = (g.spellIdx + 1) % len(spellbook)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.Dungeon.StartTargeting(g.CurrentSpell())
		g.Mode = ModeTargeting
	}
}

func (g *Game) updateTargeting() {
	if dir, ok := pressedDirection(); ok {
		g.Dungeon.MoveTargetCursor(dir, g.CurrentSpell())
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		// Effect resolution belongs to the spell subsystem; the core only
		// hands over a validated target.
		log.WithFields(log.Fields{
			"spell":  g.CurrentSpell(),
			"target": g.Dungeon.TargetCursor,
		}).Info("spell cast confirmed")
		g.Mode = ModeNormal
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.Mode = ModeNormal
	}
}

func pressedDirection() (model.Direction, bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyK):
		return model.North, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyJ):
		return model.South, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyL):
		return model.East, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyH):
		return model.West, true
	}
	return 0, false
}

func revealedIDs(d *model.Dungeon) map[int]bool {
	ids := make(map[int]bool)
	d.Revealed.Each(func(id int) { ids[id] = true })
	return ids
}

func (g *Game) fadeNewRooms(before map[int]bool) {
	g.Dungeon.Revealed.Each(func(id int) {
		if !before[id] {
			g.Camera.fadeInRoom(g, id)
		}
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{34, 32, 30, 255})

	drawTiles(screen, g.Dungeon, g.Camera)
	drawWater(screen, g.Dungeon, g.Camera)
	drawWalls(screen, g.Dungeon, g.Camera)
	drawEntities(screen, g)
	g.drawStatusBar(screen)
}

func (g *Game) drawStatusBar(screen *ebiten.Image) {
	p := g.Dungeon.Player
	status := fmt.Sprintf("%s the %s   HP %d/%d   AC %d   Gear %d/%d   Day %d, %s",
		p.Name, p.Class, p.HP, p.MaxHP, p.AC, p.GearSlotsUsed, p.GearSlotsMax,
		g.Clock.Day(), g.Clock.MoonPhase())
	if g.Mode == ModeTargeting {
		status += fmt.Sprintf("   casting %s (range %d)", g.CurrentSpell(), model.RangeOf(g.CurrentSpell()))
	} else {
		status += fmt.Sprintf("   [%s]", g.CurrentSpell())
	}
	text.Draw(screen, status, statusFace, 10, screenHeight-12, color.RGBA{220, 214, 200, 255})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	path := defaultLayoutPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	layout, err := Load(path)
	if err != nil {
		log.Fatalf("cannot load dungeon layout: %v", err)
	}

	player := newStartingPlayer()
	dungeon, err := model.NewDungeon(layout, player, model.Point{X: 0, Y: 0}, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.Fatalf("cannot build dungeon: %v", err)
	}
	log.WithFields(log.Fields{
		"rooms":    len(dungeon.Rooms),
		"doors":    len(dungeon.Doors),
		"monsters": len(dungeon.Monsters),
	}).Info("dungeon ready")

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Delver")
	if err := ebiten.RunGame(NewGame(dungeon, model.SystemClock())); err != nil {
		log.Fatal(err)
	}
}

func newStartingPlayer() *model.Player {
	p := &model.Player{
		Name:  "Brannik",
		Class: model.Fighter,
		Str:   14, Dex: 12, Con: 13, Int: 9, Wis: 10, Cha: 11,
		HP: 7, MaxHP: 7, Level: 1,
		Inventory: []model.Item{
			{Name: "Longsword", Slot: model.SlotWeapon, GearSlots: 1},
			{Name: "Chain Mail", Slot: model.SlotArmor, ACBase: 13, GearSlots: 2},
			{Name: "Shield", Slot: model.SlotShield, ACBonus: 2, GearSlots: 1},
			{Name: "Torch", GearSlots: 1},
			{Name: "Rations", GearSlots: 1},
		},
	}
	p.Equip("Longsword")
	p.Equip("Chain Mail")
	p.Equip("Shield")
	return p
}
