package term

import (
	"strings"
	"testing"

	"github.com/Flixlef/game-of-life/pkg/core"
	"github.com/Flixlef/game-of-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newShell(t *testing.T) (*Shell, tcell.SimulationScreen, *life.Game) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 40)

	game := life.New(life.DefaultConfig(), core.NewFixedStep())
	return New(screen, game, 0.3), screen, game
}

func runeAt(screen tcell.SimulationScreen, col, row int) rune {
	cells, w, _ := screen.GetContents()
	c := cells[row*w+col]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestSpaceTogglesCursorCell(t *testing.T) {
	sh, screen, game := newShell(t)
	sh.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	sh.Handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	sh.Handle(key(' '))
	if !game.AliveAt(2, 2) {
		t.Fatal("space must toggle the cell under the cursor")
	}

	sh.Draw()
	if got := runeAt(screen, boardX+2, boardY+1); got != '█' {
		t.Fatalf("alive cell drawn as %q", got)
	}
	if got := runeAt(screen, boardX, boardY); got != '·' {
		t.Fatalf("dead cell drawn as %q", got)
	}
}

func TestCursorWraps(t *testing.T) {
	sh, _, game := newShell(t)
	sh.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	sh.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	sh.Handle(key(' '))
	if !game.AliveAt(20, 20) {
		t.Fatal("cursor must wrap to the opposite corner")
	}
}

func TestMouseToggleOnPressOnly(t *testing.T) {
	sh, _, game := newShell(t)
	col, row := boardX+2*4, boardY+6 // cell (5, 7)
	sh.Handle(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	sh.Handle(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	if !game.AliveAt(5, 7) {
		t.Fatal("click must toggle the cell")
	}
	sh.Handle(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone))
	sh.Handle(tcell.NewEventMouse(col+1, row, tcell.Button1, tcell.ModNone))
	if game.AliveAt(5, 7) {
		t.Fatal("second click must toggle the cell back")
	}

	sh.Handle(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	sh.Handle(tcell.NewEventMouse(100, 2, tcell.Button1, tcell.ModNone))
	if game.Population() != 0 {
		t.Fatal("clicks outside the board must be ignored")
	}
}

func TestSeekPrompt(t *testing.T) {
	sh, screen, game := newShell(t)
	_ = game.Place("glider", 3, 3)
	for i := 0; i < 3; i++ {
		sh.Handle(key('n'))
	}
	if game.CurrentGeneration() != 3 {
		t.Fatalf("n must step, generation %d", game.CurrentGeneration())
	}

	sh.Handle(key('2'))
	sh.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if game.Status() != life.StatusGenerationLoaded {
		t.Fatalf("expected generation loaded, got %s", game.Status())
	}

	sh.Handle(key('9'))
	sh.Handle(key('9'))
	sh.Handle(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	sh.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if game.Status() != life.StatusGenerationNotFound {
		t.Fatalf("expected generation not found, got %s", game.Status())
	}

	sh.Draw()
	cells, w, h := screen.GetContents()
	var b strings.Builder
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if r := cells[row*w+col].Runes; len(r) > 0 {
				b.WriteRune(r[0])
			}
		}
		b.WriteByte('\n')
	}
	if !strings.Contains(b.String(), life.StatusGenerationNotFound.Message()) {
		t.Fatalf("status message not drawn:\n%s", b.String())
	}
}

func TestEnterStartsAndResetStops(t *testing.T) {
	sh, _, game := newShell(t)
	sh.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if game.State() != life.StateRunning {
		t.Fatal("enter with an empty prompt must start auto-play")
	}
	sh.Handle(key('p'))
	if game.State() != life.StateIdle {
		t.Fatal("p must pause")
	}
	sh.Handle(key('s'))
	if game.Population() == 0 {
		t.Fatal("s must randomize the board")
	}
	sh.Handle(key('r'))
	if game.Population() != 0 || game.Status() != life.StatusNewGame {
		t.Fatal("r must reset")
	}
}

func TestRunQuits(t *testing.T) {
	sh, screen, _ := newShell(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := sh.Run(); err != nil {
		t.Fatal(err)
	}
}
