package gallery

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

const (
	// CopiedStatus is the popup text shown after a copy action.
	CopiedStatus = "Copied to clipboard!"
	// StatusResetDelay is how long CopiedStatus stays up.
	StatusResetDelay = 1500 * time.Millisecond
)

var (
	// ErrNoCollection is returned by OpenPreview for KindNone or an unknown kind.
	ErrNoCollection = errors.New("gallery: no such collection")
	// ErrOutOfRange is returned by OpenPreview for an index outside the collection.
	ErrOutOfRange = errors.New("gallery: item index out of range")
)

// Selection describes what the preview modal shows.
// The zero value is the closed state.
type Selection struct {
	Kind  Kind
	Item  int
	Image int
}

// Open reports whether the modal is visible.
func (s Selection) Open() bool {
	return s.Kind != KindNone
}

// Popup is the contact-email popup state.
type Popup struct {
	Visible bool
	Status  string
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Timer is a pending scheduled call.
type Timer interface {
	// Stop cancels the call. It reports whether the call was still pending.
	Stop() bool
}

// Scheduler runs fn once after d. fn may run on any goroutine but must not
// be invoked from inside AfterFunc itself.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Event describes one controller state change, for observers.
type Event struct {
	Action    string // open, close, navigate, copy, status-reset, toggle-popup
	Selection Selection
	Count     int // resolved image count at the time of the event
	Popup     Popup
}

// Observer receives controller events. Observe is called with the
// controller locked and must not call back into it.
type Observer interface {
	Observe(Event)
}

// Option configures a Controller.
type Option func(*Controller)

// WithClipboard sets the clipboard backend. Without one, copies only update
// the popup status.
func WithClipboard(cb Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

// WithScheduler sets the scheduler used for the status-reset timer.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithDispatcher sets how the clipboard write is run off the event loop.
// The default starts a goroutine.
func WithDispatcher(dispatch func(func())) Option {
	return func(c *Controller) { c.dispatch = dispatch }
}

// WithObserver registers an observer for controller events.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// Controller mediates the preview modal and the email popup.
// It is safe for concurrent use, so the default scheduler may reset the
// status from its own goroutine.
type Controller struct {
	mu sync.Mutex

	projects       []Item
	certifications []Item

	selection Selection
	popup     Popup
	timer     Timer
	timerGen  int

	clipboard Clipboard
	scheduler Scheduler
	dispatch  func(func())
	observer  Observer
}

// NewController creates a controller over the two read-only collections.
func NewController(projects, certifications []Item, opts ...Option) *Controller {
	c := &Controller{
		projects:       projects,
		certifications: certifications,
		scheduler:      realScheduler{},
		dispatch:       func(fn func()) { go fn() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collection returns the items for kind, or nil for KindNone.
func (c *Controller) Collection(kind Kind) []Item {
	switch kind {
	case KindProject:
		return c.projects
	case KindCertification:
		return c.certifications
	default:
		return nil
	}
}

// Selection returns the current preview selection.
func (c *Controller) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// Popup returns the current email popup state.
func (c *Controller) Popup() Popup {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.popup
}

// Images returns the resolved image sequence for the open item, or nil when
// closed.
func (c *Controller) Images() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.images()
}

func (c *Controller) images() []string {
	if !c.selection.Open() {
		return nil
	}
	return ResolveAt(c.Collection(c.selection.Kind), c.selection.Item)
}

// Current returns the open item.
func (c *Controller) Current() (Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.Collection(c.selection.Kind)
	if !c.selection.Open() || c.selection.Item < 0 || c.selection.Item >= len(items) {
		return Item{}, false
	}
	return items[c.selection.Item], true
}

// CurrentImage returns the image reference currently shown.
func (c *Controller) CurrentImage() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	images := c.images()
	if c.selection.Image < 0 || c.selection.Image >= len(images) {
		return "", false
	}
	return images[c.selection.Image], true
}

// Counter renders the position indicator, e.g. "2 / 3".
// Empty when the modal is closed.
func (c *Controller) Counter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.selection.Open() {
		return ""
	}
	return fmt.Sprintf("%d / %d", c.selection.Image+1, len(c.images()))
}

// OpenPreview shows item index of kind, starting at its first image.
// It replaces any open selection. Invalid arguments leave state unchanged.
func (c *Controller) OpenPreview(kind Kind, index int) error {
	if kind != KindProject && kind != KindCertification {
		return fmt.Errorf("%w: %s", ErrNoCollection, kind)
	}
	items := c.Collection(kind)
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: %s %d (have %d)", ErrOutOfRange, kind, index, len(items))
	}
	c.selection = Selection{Kind: kind, Item: index, Image: 0}
	c.emit("open")
	return nil
}

// ClosePreview hides the modal. Calling it while closed does nothing.
func (c *Controller) ClosePreview() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.selection.Open() {
		return
	}
	c.selection = Selection{}
	c.emit("close")
}

// Navigate steps the open item's image index with wraparound.
// No-op when closed, when the item has no images, or for an unknown dir.
func (c *Controller) Navigate(dir Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.selection.Open() {
		return
	}
	n := len(c.images())
	if n == 0 {
		return
	}
	switch dir {
	case Previous:
		c.selection.Image = (c.selection.Image - 1 + n) % n
	case Next:
		c.selection.Image = (c.selection.Image + 1) % n
	default:
		return
	}
	c.emit("navigate")
}

// CopyEmailAddress writes address to the clipboard without waiting for the
// result, shows CopiedStatus, and (re)starts the single reset timer.
func (c *Controller) CopyEmailAddress(address string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cb := c.clipboard; cb != nil {
		c.dispatch(func() {
			if err := cb.WriteAll(address); err != nil {
				log.Printf("gallery: clipboard write failed: %v", err)
			}
		})
	}

	c.popup.Status = CopiedStatus
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timerGen++
	gen := c.timerGen
	c.timer = c.scheduler.AfterFunc(StatusResetDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// A stopped timer may still fire on schedulers that cannot retract it.
		if gen != c.timerGen || c.timer == nil {
			return
		}
		c.timer = nil
		c.popup.Status = ""
		c.emit("status-reset")
	})
	c.emit("copy")
}

// ToggleEmailPopup flips the popup's visibility. Status and timer are untouched.
func (c *Controller) ToggleEmailPopup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.popup.Visible = !c.popup.Visible
	c.emit("toggle-popup")
}

// TimerPending reports whether a status-reset timer is outstanding.
func (c *Controller) TimerPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

func (c *Controller) emit(action string) {
	if c.observer == nil {
		return
	}
	c.observer.Observe(Event{
		Action:    action,
		Selection: c.selection,
		Count:     len(c.images()),
		Popup:     c.popup,
	})
}

// realScheduler is the fallback for callers without an event loop of their
// own; fn runs on the timer goroutine.
type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
