package gallery

import "log"

// MultiObserver fans out controller events to multiple observers.
// It handles nil observers gracefully by skipping them.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver that forwards events to all provided observers.
// Nil observers are filtered out and not included in the list.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// Observe forwards ev to every observer. A panicking observer does not stop
// the rest or the controller.
func (m *MultiObserver) Observe(ev Event) {
	for _, obs := range m.observers {
		safeObserve(obs, ev)
	}
}

func safeObserve(obs Observer, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("gallery: observer panic on %s: %v", ev.Action, r)
		}
	}()
	obs.Observe(ev)
}

// LogObserver writes one log line per event.
type LogObserver struct{}

// Observe implements Observer.
func (LogObserver) Observe(ev Event) {
	if ev.Selection.Open() {
		log.Printf("gallery: %s %s item=%d image=%d/%d popup=%v status=%q",
			ev.Action, ev.Selection.Kind, ev.Selection.Item, ev.Selection.Image+1, ev.Count,
			ev.Popup.Visible, ev.Popup.Status)
		return
	}
	log.Printf("gallery: %s closed popup=%v status=%q", ev.Action, ev.Popup.Visible, ev.Popup.Status)
}
