//go:build ebiten

package app

import (
	"image/color"
	"strconv"
	"time"

	"github.com/Flixlef/game-of-life/internal/render"
	"github.com/Flixlef/game-of-life/internal/ui"
	"github.com/Flixlef/game-of-life/pkg/core"
	"github.com/Flixlef/game-of-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 280

// Controls lists the GUI key bindings shown on the HUD.
var Controls = []string{
	"click   toggle cell",
	"enter   go / load generation",
	"space   go / pause",
	"n       single step",
	"r       reset",
	"s       random board",
	"q/esc   quit",
}

// Game adapts a life.Game to the ebiten.Game interface.
type Game struct {
	game    *life.Game
	sched   *core.FixedStep
	painter *render.BoardPainter
	hud     *ui.HUD

	density float64
	cells   []uint8
	seek    []rune
}

// New constructs a Game for the provided controller. sched must be the
// scheduler the controller was created with.
func New(game *life.Game, sched *core.FixedStep, cfg *Config) *Game {
	on := color.RGBA{R: 60, G: 200, B: 90, A: 255}
	off := color.RGBA{R: 24, G: 24, B: 28, A: 255}
	return &Game{
		game:    game,
		sched:   sched,
		painter: render.NewBoardPainter(game.Config().Size, cfg.Scale, on, off),
		hud:     ui.NewHUD(game, hudWidth, Controls),
		density: cfg.Density,
	}
}

// Update handles per-frame input and fires due ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= '0' && r <= '9' && len(g.seek) < 6 {
			g.seek = append(g.seek, r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.seek) > 0 {
		g.seek = g.seek[:len(g.seek)-1]
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if len(g.seek) > 0 {
			n, _ := strconv.Atoi(string(g.seek))
			g.seek = g.seek[:0]
			g.game.ShowGeneration(n)
		} else {
			g.game.Start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if g.game.State() == life.StateRunning {
			g.game.Pause()
		} else {
			g.game.Start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.game.Step()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.game.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.game.Randomize(time.Now().UnixNano(), g.density)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if x, y, ok := g.painter.CellAt(mx, my); ok {
			_ = g.game.Toggle(x, y)
		}
	}

	g.sched.Update()
	g.hud.Update(string(g.seek))
	return nil
}

// Draw renders the board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.cells = g.game.Cells(g.cells)
	mx, my := ebiten.CursorPosition()
	g.painter.Draw(screen, g.cells, mx, my)
	side := g.painter.Side()
	g.hud.Draw(screen, side, side)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.painter.Side()
	return side + g.hud.Width(), side
}
