package ui

import (
	"strings"

	"folio/internal/gallery"
)

// EmailPopup renders the contact popup from controller state.
type EmailPopup struct {
	Controller *gallery.Controller
	Address    string
}

// NewEmailPopup creates a popup for address.
func NewEmailPopup(c *gallery.Controller, address string) *EmailPopup {
	return &EmailPopup{Controller: c, Address: address}
}

// View returns the popup box, or "" when hidden.
func (p *EmailPopup) View() string {
	state := p.Controller.Popup()
	if !state.Visible {
		return ""
	}
	var b strings.Builder
	b.WriteString(Styles.Muted.Render("email") + "\n")
	b.WriteString(Styles.Normal.Render(p.Address) + "\n")
	if state.Status != "" {
		b.WriteString(Styles.Status.Render(state.Status))
	} else {
		b.WriteString(Styles.Hint.Render("c: copy · e: close"))
	}
	return Styles.BoxCompact.Render(b.String())
}
