package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI (slate background, cyan accents)
const (
	ColorAccent    = "44"  // Cyan - for titles, the "/" section marks
	ColorHighlight = "51"  // Bright cyan - for selected items, borders
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for descriptions
	ColorSuccess   = "42"  // Green - for the copy confirmation
	ColorBackdrop  = "236" // Backdrop fill behind the preview modal
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title    lipgloss.Style // Bold accent - hero name, modal titles
	Subtitle lipgloss.Style // Role line under the hero name
	Mark     lipgloss.Style // The "/" before section headings

	Box        lipgloss.Style // Preview modal box
	BoxCompact lipgloss.Style // Email popup box

	Tab       lipgloss.Style // Inactive section tab
	TabActive lipgloss.Style // Active section tab

	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Link     lipgloss.Style
	Counter  lipgloss.Style
	Status   lipgloss.Style // Copy confirmation text
	Empty    lipgloss.Style
	Bullet   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Mark: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
	Counter: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Bullet: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}

// NewTileDelegate returns the list delegate used for gallery tiles:
// title plus a one-line description, cyan when selected.
func NewTileDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(1)
	d.ShowDescription = true
	d.Styles.SelectedTitle = Styles.Selected.
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 0, 0, 1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.
		Foreground(lipgloss.Color(ColorDim)).
		Bold(false)
	d.Styles.NormalTitle = Styles.Normal.Padding(0, 0, 0, 2)
	d.Styles.NormalDesc = Styles.Muted.Padding(0, 0, 0, 2)
	return d
}

// sectionHeading renders "/ title" the way every section opens.
func sectionHeading(title string) string {
	return Styles.Mark.Render("/") + " " + Styles.Title.Render(title)
}
