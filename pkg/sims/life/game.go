package life

import (
	"sync"

	"github.com/Flixlef/game-of-life/pkg/core"
)

// Game owns the current board, the history of every generation and the
// auto-play state. All methods are safe for concurrent use; each request runs
// atomically with respect to the scheduler's ticks.
type Game struct {
	mu    sync.Mutex
	cfg   Config
	sched core.Scheduler

	// curIdx is the history slot current occupies, or -1 when current was
	// never recorded: the dead board after extinction, or an edited copy of
	// an older generation.
	current *Grid
	curIdx  int
	history []*Grid

	generation int
	highscore  int
	status     Status
	state      State
	epoch      uint64
}

// New creates an idle game on an all-dead board.
func New(cfg Config, sched core.Scheduler) *Game {
	if sched == nil {
		sched = core.NewTicker()
	}
	g := &Game{cfg: cfg.normalized(), sched: sched}
	g.newBoard()
	return g
}

func (g *Game) newBoard() {
	g.current = NewGrid(g.cfg.Size)
	g.history = []*Grid{g.current}
	g.curIdx = 0
	g.generation = 0
	g.status = StatusNewGame
}

// Config returns the game's fixed settings.
func (g *Game) Config() Config { return g.cfg }

// editable returns the board user edits apply to. Edits to the newest
// generation happen in place; an older generation is copied first so stored
// snapshots never change.
func (g *Game) editable() *Grid {
	if g.curIdx >= 0 && g.curIdx != len(g.history)-1 {
		g.current = g.current.Clone()
		g.curIdx = -1
	}
	return g.current
}

// Toggle flips the cell at (x, y) on the current board.
func (g *Game) Toggle(x, y int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.current.checkBounds(x, y); err != nil {
		return err
	}
	return g.editable().Toggle(x, y)
}

// Place stamps a registered pattern onto the current board with its corner
// at (x, y).
func (g *Game) Place(name string, x, y int) error {
	p, err := LookupPattern(name)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.current.checkBounds(x, y); err != nil {
		return err
	}
	return p.Stamp(g.editable(), x, y)
}

// Randomize starts a new game whose first generation is filled at random.
func (g *Game) Randomize(seed int64, density float64) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
	rng := core.NewRNG(seed)
	for i := range g.current.cells {
		g.current.cells[i].alive = rng.Chance(density)
	}
	g.current.rehash()
	return g.status
}

// Start begins auto-play. Calling it while running has no effect.
func (g *Game) Start() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateRunning {
		return g.status
	}
	g.state = StateRunning
	g.epoch++
	epoch := g.epoch
	g.sched.Start(g.cfg.Interval, func() { g.tick(epoch) })
	return g.status
}

func (g *Game) tick(epoch uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if epoch != g.epoch || g.state != StateRunning {
		return
	}
	g.advanceLocked()
}

// Pause stops auto-play and keeps the board as it is.
func (g *Game) Pause() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pauseLocked()
	return g.status
}

func (g *Game) pauseLocked() {
	g.sched.Stop()
	if g.state == StateRunning {
		g.state = StateIdle
	}
}

// Stop cancels auto-play and starts a new game. The highscore is kept.
func (g *Game) Stop() Status { return g.Reset() }

// Reset cancels auto-play and starts a new game. The highscore is kept.
func (g *Game) Reset() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
	return g.status
}

func (g *Game) resetLocked() {
	g.sched.Stop()
	g.state = StateIdle
	g.newBoard()
}

// Advance computes the next generation and applies the termination checks.
// It is the body of every auto-play tick.
func (g *Game) Advance() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.advanceLocked()
}

// Step advances one generation by hand. It does nothing while auto-play runs.
func (g *Game) Step() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateRunning {
		return g.status
	}
	return g.advanceLocked()
}

func (g *Game) advanceLocked() Status {
	next := g.current.TransitionParallel(g.cfg.Workers)

	// The dead board is shown but not recorded.
	if next.IsExtinct() {
		g.halt(StatusDeadBoard)
		g.current = next
		g.curIdx = -1
		return g.status
	}

	// A repeat of any recorded generation means the board cycles forever;
	// the last recorded board stays visible.
	fp := next.Fingerprint()
	for _, h := range g.history {
		if h.Fingerprint() == fp {
			g.halt(StatusInfiniteLoop)
			return g.status
		}
	}

	g.history = append(g.history, next)
	g.current = next
	g.curIdx = len(g.history) - 1
	g.generation++
	g.highscore = max(g.highscore, g.generation)
	g.status = StatusNormal
	if g.state == StateEnded {
		g.state = StateIdle
	}
	return g.status
}

func (g *Game) halt(s Status) {
	g.sched.Stop()
	g.state = StateEnded
	g.status = s
}

// ShowGeneration pauses auto-play and displays the n-th recorded board,
// counting from 1 for generation 0. Out-of-range requests leave the board
// unchanged.
func (g *Game) ShowGeneration(n int) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pauseLocked()
	if n < 1 || n > len(g.history) {
		g.status = StatusGenerationNotFound
		return g.status
	}
	g.current = g.history[n-1]
	g.curIdx = n - 1
	g.status = StatusGenerationLoaded
	return g.status
}

// AliveAt reports whether (x, y) is alive on the current board.
func (g *Game) AliveAt(x, y int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current.AliveAt(x, y)
}

// CurrentGeneration returns the number of transitions applied.
func (g *Game) CurrentGeneration() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generation
}

// HighScore returns the highest generation reached since the process started.
func (g *Game) HighScore() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.highscore
}

// Status returns the latest status.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// StatusMessage returns the display text of the latest status.
func (g *Game) StatusMessage() string { return g.Status().Message() }

// State returns the auto-play state.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// HistoryLen returns the number of recorded generations.
func (g *Game) HistoryLen() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.history)
}

// Population returns the number of live cells on the current board.
func (g *Game) Population() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current.Population()
}

// Fingerprint returns the current board's fingerprint.
func (g *Game) Fingerprint() Fingerprint {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current.Fingerprint()
}

// Snapshot returns a copy of the n-th recorded board, counting from 1.
func (g *Game) Snapshot(n int) (*Grid, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n < 1 || n > len(g.history) {
		return nil, false
	}
	return g.history[n-1].Clone(), true
}

// Cells copies the current board into dst; see Grid.Cells.
func (g *Game) Cells(dst []uint8) []uint8 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current.Cells(dst)
}

// String renders the current board.
func (g *Game) String() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current.String()
}

// Parameters describes the game for the HUD.
func (g *Game) Parameters() core.ParameterSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("size", "Size", g.cfg.Size),
				core.DurationParam("interval", "Interval", g.cfg.Interval),
				core.IntParam("workers", "Workers", g.cfg.Workers),
			},
		},
		{
			Name: "Game",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", g.generation),
				core.IntParam("highscore", "Highscore", g.highscore),
				core.IntParam("history", "Stored generations", len(g.history)),
				core.IntParam("population", "Population", g.current.Population()),
				core.TextParam("state", "State", g.state.String()),
			},
		},
	}}
}
