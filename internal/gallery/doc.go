// Package gallery holds the preview controller behind the portfolio's image
// modal and contact-email popup.
//
// A Controller owns two pieces of transient state:
//   - Selection: which collection/item/image the modal shows (or none)
//   - Popup: the email popup's visibility and status text
//
// Both are mutated only through Controller methods. Deferred work (the
// status-clear timer) and the clipboard write are delegated to a Scheduler
// and a dispatcher so the controller stays independent of the UI runtime
// and can be driven deterministically in tests.
package gallery
