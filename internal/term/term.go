// Package term is a terminal front end for the Game of Life controller.
package term

import (
	"strconv"
	"time"

	"github.com/Flixlef/game-of-life/internal/ui"
	"github.com/Flixlef/game-of-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

const (
	boardX     = 1
	boardY     = 1
	panelWidth = 44
	refresh    = 100 * time.Millisecond
)

// Controls lists the terminal key bindings shown in the side panel.
var Controls = []string{
	"arrows  move cursor",
	"space   toggle cell (or click)",
	"enter   go / load generation",
	"p       pause",
	"n       single step",
	"r       reset",
	"s       random board",
	"q/esc   quit",
}

// Shell draws a game onto a tcell screen and maps input onto game requests.
type Shell struct {
	screen tcell.Screen
	game   *life.Game

	size    int
	density float64
	cx, cy  int
	seek    []rune
	pressed bool

	alive  tcell.Style
	dead   tcell.Style
	text   tcell.Style
	accent tcell.Style
}

// New returns a shell for game. density is used for random boards.
func New(screen tcell.Screen, game *life.Game, density float64) *Shell {
	size := game.Config().Size
	return &Shell{
		screen:  screen,
		game:    game,
		size:    size,
		density: density,
		cx:      1,
		cy:      1,
		alive:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		dead:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		text:    tcell.StyleDefault,
		accent:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
}

// Run processes events until the user quits. The screen is redrawn on every
// event and at a fixed refresh rate so auto-play ticks become visible.
func (s *Shell) Run() error {
	s.screen.EnableMouse()
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		tk := time.NewTicker(refresh)
		defer tk.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tk.C:
				_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	s.Draw()
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if s.Handle(ev) {
			return nil
		}
		s.Draw()
	}
}

// Handle applies one event and reports whether the shell should exit.
func (s *Shell) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	}
	return false
}

func (s *Shell) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		s.cy = s.wrap(s.cy - 1)
	case tcell.KeyDown:
		s.cy = s.wrap(s.cy + 1)
	case tcell.KeyLeft:
		s.cx = s.wrap(s.cx - 1)
	case tcell.KeyRight:
		s.cx = s.wrap(s.cx + 1)
	case tcell.KeyEnter:
		if len(s.seek) > 0 {
			n, _ := strconv.Atoi(string(s.seek))
			s.seek = s.seek[:0]
			s.game.ShowGeneration(n)
		} else {
			s.game.Start()
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(s.seek) > 0 {
			s.seek = s.seek[:len(s.seek)-1]
		}
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	return false
}

func (s *Shell) handleRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		if len(s.seek) < 6 {
			s.seek = append(s.seek, r)
		}
	case r == 'q':
		return true
	case r == ' ':
		_ = s.game.Toggle(s.cx, s.cy)
	case r == 'p':
		s.game.Pause()
	case r == 'n':
		s.game.Step()
	case r == 'r':
		s.game.Reset()
	case r == 's':
		s.game.Randomize(time.Now().UnixNano(), s.density)
	}
	return false
}

func (s *Shell) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	if down && !s.pressed {
		mx, my := ev.Position()
		if x, y, ok := s.cellAt(mx, my); ok {
			s.cx, s.cy = x, y
			_ = s.game.Toggle(x, y)
		}
	}
	s.pressed = down
}

// cellAt maps a screen position onto board coordinates. Each cell is two
// columns wide.
func (s *Shell) cellAt(col, row int) (int, int, bool) {
	if col < boardX || row < boardY {
		return 0, 0, false
	}
	x, y := (col-boardX)/2+1, row-boardY+1
	if x > s.size || y > s.size {
		return 0, 0, false
	}
	return x, y, true
}

func (s *Shell) wrap(c int) int {
	return ((c-1)%s.size+s.size)%s.size + 1
}

// Draw paints the board and the side panel.
func (s *Shell) Draw() {
	s.screen.Clear()
	for y := 1; y <= s.size; y++ {
		for x := 1; x <= s.size; x++ {
			r, style := '·', s.dead
			if s.game.AliveAt(x, y) {
				r, style = '█', s.alive
			}
			if x == s.cx && y == s.cy {
				style = style.Reverse(true)
			}
			col, row := boardX+(x-1)*2, boardY+y-1
			s.screen.SetContent(col, row, r, nil, style)
			if r == '█' {
				s.screen.SetContent(col+1, row, r, nil, style)
			} else {
				s.screen.SetContent(col+1, row, ' ', nil, style)
			}
		}
	}

	lines := ui.PanelLines(ui.PanelInput{
		Title:    "Game of Life",
		Message:  s.game.StatusMessage(),
		Seek:     string(s.seek),
		Params:   s.game.Parameters(),
		Controls: Controls,
	}, panelWidth)
	px := boardX + s.size*2 + 3
	for i, line := range lines {
		style := s.text
		if i == 0 {
			style = s.accent
		}
		drawString(s.screen, px, boardY+i, line, style)
	}
	s.screen.Show()
}

func drawString(screen tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
