// Package clipboard provides clipboard backends for the contact-email copy
// action.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"

	"folio/internal/gallery"
)

// ErrUnavailable is returned when no system clipboard tool is installed
// (xclip/xsel/wl-copy on Linux).
var ErrUnavailable = errors.New("clipboard: no system clipboard available")

// System writes to the OS clipboard via atotto/clipboard.
type System struct{}

// Ensure System implements gallery.Clipboard.
var _ gallery.Clipboard = System{}

// WriteAll implements gallery.Clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Available reports whether a system clipboard backend was found.
func Available() bool {
	return !clipboard.Unsupported
}

// Memory is an in-process clipboard, used when the system clipboard is
// unavailable and in tests.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
}

// Ensure Memory implements gallery.Clipboard.
var _ gallery.Clipboard = (*Memory)(nil)

// WriteAll implements gallery.Clipboard.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.n++
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many times WriteAll was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

// Detect returns System when a backend is available, otherwise a Memory
// clipboard so copies still succeed within the session.
func Detect() gallery.Clipboard {
	if Available() {
		return System{}
	}
	return &Memory{}
}
