package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/gallery"
)

// TimerFiredMsg is delivered when a timer scheduled through Runtime elapses.
type TimerFiredMsg struct {
	ID int
}

// Runtime adapts the gallery controller's scheduler and dispatcher to the
// Bubble Tea loop. Scheduled callbacks come back as TimerFiredMsg and run
// inside Update, so they never race the controller.
type Runtime struct {
	pending []tea.Cmd
	timers  map[int]func()
	nextID  int
}

var _ gallery.Scheduler = (*Runtime)(nil)

// NewRuntime creates an empty runtime.
func NewRuntime() *Runtime {
	return &Runtime{timers: make(map[int]func())}
}

// AfterFunc queues a tick that fires fn after d.
func (r *Runtime) AfterFunc(d time.Duration, fn func()) gallery.Timer {
	r.nextID++
	id := r.nextID
	r.timers[id] = fn
	r.pending = append(r.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return TimerFiredMsg{ID: id}
	}))
	return &runtimeTimer{rt: r, id: id}
}

// Dispatch queues fn to run as a command, off the update loop.
func (r *Runtime) Dispatch(fn func()) {
	r.pending = append(r.pending, func() tea.Msg {
		fn()
		return nil
	})
}

// Fire runs the callback for id. Returns false for stopped or unknown timers.
func (r *Runtime) Fire(id int) bool {
	fn, ok := r.timers[id]
	if !ok {
		return false
	}
	delete(r.timers, id)
	fn()
	return true
}

// Pending is the number of timers that have not fired or been stopped.
func (r *Runtime) Pending() int {
	return len(r.timers)
}

// Drain returns the queued commands as one batch and clears the queue.
func (r *Runtime) Drain() tea.Cmd {
	if len(r.pending) == 0 {
		return nil
	}
	cmds := r.pending
	r.pending = nil
	return tea.Batch(cmds...)
}

type runtimeTimer struct {
	rt *Runtime
	id int
}

func (t *runtimeTimer) Stop() bool {
	if _, ok := t.rt.timers[t.id]; !ok {
		return false
	}
	delete(t.rt.timers, t.id)
	return true
}
