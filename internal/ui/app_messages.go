package ui

import "folio/internal/gallery"

// NextSectionMsg moves to the next section (tab).
type NextSectionMsg struct{}

// PrevSectionMsg moves to the previous section (shift+tab).
type PrevSectionMsg struct{}

// GotoSectionMsg jumps to a section (1-7, SPC g <x>).
type GotoSectionMsg struct {
	Section Section
}

// OpenPreviewMsg opens the preview modal on an item.
type OpenPreviewMsg struct {
	Kind  gallery.Kind
	Index int
}

// OpenSelectedMsg opens the preview on the tile selected in the current section.
type OpenSelectedMsg struct{}

// ClosePreviewMsg closes the preview modal.
type ClosePreviewMsg struct{}

// NavigateMsg steps through the open item's images.
type NavigateMsg struct {
	Dir gallery.Direction
}

// CopyEmailMsg copies the contact address to the clipboard.
type CopyEmailMsg struct{}

// ToggleEmailPopupMsg shows or hides the email popup.
type ToggleEmailPopupMsg struct{}
