package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/smasonuk/boxgrid"
)

const (
	dragSensitivity = 200.0
	zoomStep        = 0.9
)

// Game adapts a Scene to ebiten's Update/Draw/Layout loop.
type Game struct {
	scene   *boxgrid.Scene
	painter *Painter
	clear   color.RGBA

	width, height int
	lastX, lastY  int
	dragging      bool
}

func NewGame(scene *boxgrid.Scene, cfg boxgrid.Config) *Game {
	log.Info("Creating game...")
	return &Game{
		scene:   scene,
		painter: NewPainter(cfg.Colors.Outline),
		clear:   boxgrid.ColorFromHex(cfg.Colors.Clear),
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	g.trackPointer(x, y)
	g.orbit(x, y)

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.zoom(wy)
	}

	g.scene.Tick(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) trackPointer(x, y int) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		g.scene.Pointer().Clear()
		return
	}
	g.scene.Pointer().SetPixels(float64(x), float64(y), g.width, g.height)
}

// orbit turns left button drags into camera orbits.
func (g *Game) orbit(x, y int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = x, y
	}
	if g.dragging {
		dx := float64(x-g.lastX) / dragSensitivity
		dy := float64(y-g.lastY) / dragSensitivity
		g.scene.Camera().Orbit(-dx, -dy)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
}

func (g *Game) zoom(wheel float64) {
	if wheel > 0 {
		g.scene.Camera().Zoom(zoomStep)
	} else {
		g.scene.Camera().Zoom(1 / zoomStep)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)
	g.painter.Paint(screen, g.scene)
	ebitenutil.DebugPrint(screen, g.status())
}

func (g *Game) status() string {
	grid := g.scene.Grid()
	s := fmt.Sprintf("FPS: %0.2f\nGrid: %dx%d", ebiten.ActualFPS(), grid.Columns, grid.Rows)
	if hit, ok := g.scene.Hit(); ok {
		id := hit.Box.ID
		s += fmt.Sprintf("\nBox %d (row %d, column %d)", id, grid.Row(id), grid.Column(id))
	}
	return s
}

// Layout follows the window size so the camera aspect tracks resizes. The
// grid keeps the shape it was built with.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Camera().SetAspect(float64(outsideWidth) / float64(outsideHeight))
	}
	return g.width, g.height
}
