package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/plus3/ballplayer/config"
	"github.com/plus3/ballplayer/ecs"
	"github.com/plus3/ballplayer/ecs/debugui"
	debugui_ebiten "github.com/plus3/ballplayer/ecs/debugui/ebiten"
	"github.com/plus3/ballplayer/game"
)

var (
	backgroundColor = color.RGBA{30, 30, 36, 255}
	playerColor     = color.RGBA{70, 130, 230, 255}
	enemyColor      = color.RGBA{220, 70, 70, 255}
)

var keyBindings = map[game.Key]ebiten.Key{
	game.KeyW:     ebiten.KeyW,
	game.KeyS:     ebiten.KeyS,
	game.KeyA:     ebiten.KeyA,
	game.KeyD:     ebiten.KeyD,
	game.KeyUp:    ebiten.KeyArrowUp,
	game.KeyDown:  ebiten.KeyArrowDown,
	game.KeyLeft:  ebiten.KeyArrowLeft,
	game.KeyRight: ebiten.KeyArrowRight,
}

// Game implements ebiten.Game on top of a game.World.
type Game struct {
	world   *game.World
	sprites map[string]*ebiten.Image

	imguiBackend *debugui_ebiten.ImguiBackend
	imguiInput   *ecs.Singleton[debugui.ImguiInputState]

	watcher *config.Watcher

	width, height int
}

func NewGame(world *game.World, sprites map[string]*ebiten.Image) *Game {
	return &Game{
		world:   world,
		sprites: sprites,
	}
}

// EnableOverlay routes every update through the ImGui backend.
func (g *Game) EnableOverlay(backend *debugui_ebiten.ImguiBackend) {
	g.imguiBackend = backend
	g.imguiInput = ecs.NewSingleton[debugui.ImguiInputState](g.world.Storage)
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.reloadConfig()
	g.pollInput()
	g.syncWindow()

	dt := 1.0 / float64(ebiten.TPS())
	if g.imguiBackend != nil {
		g.imguiBackend.Frame(func() { g.world.Step(dt) })
	} else {
		g.world.Step(dt)
	}
	return nil
}

func (g *Game) pollInput() {
	input := g.world.Input()

	if g.imguiInput != nil {
		if state := g.imguiInput.Get(); state != nil && state.WantCaptureKeyboard {
			input.Reset()
			return
		}
	}

	for key, ebitenKey := range keyBindings {
		input.Set(key, ebiten.IsKeyPressed(ebitenKey))
	}
}

// syncWindow publishes the current window size. Before the first Layout call the
// configured window size is used.
func (g *Game) syncWindow() {
	width, height := g.width, g.height
	if width == 0 || height == 0 {
		width, height = ebiten.WindowSize()
	}
	if width <= 0 || height <= 0 {
		g.world.ClearWindow()
		return
	}
	g.world.SetWindow(float64(width), float64(height))
}

func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}

	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			next, err := config.Load(path)
			if err != nil {
				log.Printf("config reload: %v", err)
				continue
			}
			g.world.Config.ApplyLive(next)
			log.Printf("config reloaded: player speed %g, enemy speed %g", next.Player.Speed, next.Enemies.Speed)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	for _, entity := range g.world.Storage.Iter() {
		g.drawEntity(screen, entity, w, h)
	}

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

// worldToScreen maps world coordinates (origin at the window centre, +Y up) to pixels.
func worldToScreen(p cp.Vector, w, h float64) (float64, float64) {
	return w/2 + p.X, h/2 - p.Y
}

func (g *Game) drawEntity(screen *ebiten.Image, entity *ecs.Entity, w, h float64) {
	sx, sy := worldToScreen(entity.Transform.Translation, w, h)
	size := entity.Sprite.Size

	if img := g.sprites[entity.Sprite.Image]; img != nil {
		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(size/float64(bounds.Dx()), size/float64(bounds.Dy()))
		op.GeoM.Translate(sx-size/2, sy-size/2)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
		return
	}

	c := enemyColor
	if entity.Player != nil {
		c = playerColor
	}
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(size/2), c, true)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
