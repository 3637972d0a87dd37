package core

import (
	"sync"
	"time"
)

// Scheduler runs a tick callback at a fixed interval until stopped.
// Start is a no-op while already running and Stop is safe to call at any time,
// including from inside the tick callback.
type Scheduler interface {
	Start(interval time.Duration, tick func())
	Stop()
	Running() bool
}

// FixedStep fires ticks at a steady rate from a frame loop. The owner calls
// Update once per frame; at most one tick fires per call so a long frame never
// produces a burst of ticks.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time

	tick    func()
	running bool
}

// NewFixedStep constructs an idle FixedStep using the wall clock.
func NewFixedStep() *FixedStep {
	return &FixedStep{now: time.Now}
}

// SetClock replaces the time source. Tests use it to drive ticks manually.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
}

// Start arms the scheduler. The first tick fires one interval after the first
// Update following Start.
func (f *FixedStep) Start(interval time.Duration, tick func()) {
	if f.running {
		return
	}
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.step = interval
	f.accumulator = 0
	f.last = time.Time{}
	f.tick = tick
	f.running = true
}

// Stop disarms the scheduler.
func (f *FixedStep) Stop() {
	f.running = false
	f.tick = nil
}

// Running reports whether ticks are being produced.
func (f *FixedStep) Running() bool { return f.running }

// ShouldStep reports whether a full interval has elapsed since the last step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		// Missed intervals are dropped rather than replayed.
		f.accumulator %= f.step
		return true
	}
	return false
}

// Update fires the tick callback when it is due.
func (f *FixedStep) Update() {
	if !f.running {
		return
	}
	if f.ShouldStep() && f.tick != nil {
		f.tick()
	}
}

// Ticker runs ticks on a dedicated goroutine. Ticks are delivered sequentially;
// when a tick outlasts the interval the missed ticks are dropped.
type Ticker struct {
	mu   sync.Mutex
	stop chan struct{}
}

// NewTicker returns an idle Ticker.
func NewTicker() *Ticker { return &Ticker{} }

// Start launches the tick goroutine.
func (t *Ticker) Start(interval time.Duration, tick func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	if interval <= 0 {
		interval = time.Second / 60
	}
	stop := make(chan struct{})
	t.stop = stop
	go func() {
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tk.C:
			}
			select {
			case <-stop:
				return
			default:
			}
			tick()
		}
	}()
}

// Stop signals the goroutine to exit. It does not wait, so it may be called
// from the tick callback itself.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// Running reports whether the tick goroutine is armed.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}
