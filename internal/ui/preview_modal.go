package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/gallery"
)

const (
	previewMaxWidth = 72
	previewMinWidth = 32
)

// PreviewModal renders the open gallery item from controller state.
// Left/right (h/l) navigate images; esc or q closes.
type PreviewModal struct {
	Controller *gallery.Controller
	width      int
}

var _ View = (*PreviewModal)(nil)

// NewPreviewModal creates a modal over c.
func NewPreviewModal(c *gallery.Controller) *PreviewModal {
	return &PreviewModal{Controller: c, width: previewMaxWidth}
}

// SetWidth fits the modal to a terminal of the given width.
func (m *PreviewModal) SetWidth(termWidth int) {
	w := termWidth - 8
	if w > previewMaxWidth {
		w = previewMaxWidth
	}
	if w < previewMinWidth {
		w = previewMinWidth
	}
	m.width = w
}

// Init implements View.
func (m *PreviewModal) Init() tea.Cmd {
	return nil
}

// Update implements View. Keys become messages handled by AppModel.
func (m *PreviewModal) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "left", "h":
		return m, func() tea.Msg { return NavigateMsg{Dir: gallery.Previous} }
	case "right", "l":
		return m, func() tea.Msg { return NavigateMsg{Dir: gallery.Next} }
	case "esc", "q":
		return m, func() tea.Msg { return ClosePreviewMsg{} }
	}
	return m, nil
}

// View implements View. Empty when the preview is closed.
func (m *PreviewModal) View() string {
	item, ok := m.Controller.Current()
	if !ok {
		return ""
	}
	inner := m.width - 6 // border + padding
	text := lipgloss.NewStyle().Width(inner)

	var b strings.Builder
	b.WriteString(Styles.Title.Render(item.Title) + "\n")
	b.WriteString(Styles.Muted.Render(m.Controller.Selection().Kind.String()) + "\n\n")

	b.WriteString(renderImageFrame(m.Controller, inner) + "\n\n")

	if item.Description != "" {
		b.WriteString(text.Inherit(Styles.Normal).Render(item.Description) + "\n\n")
	}
	if item.Link != "" {
		b.WriteString(Styles.Muted.Render("link  ") + Styles.Link.Render(item.Link) + "\n\n")
	}

	hint := "esc close"
	if len(m.Controller.Images()) > 1 {
		hint = "←/h prev · →/l next · " + hint
	}
	b.WriteString(Styles.Hint.Render(hint))
	return Styles.Box.Width(m.width - 2).Render(b.String())
}

// renderImageFrame draws the current image reference with the position
// counter beneath it.
func renderImageFrame(c *gallery.Controller, width int) string {
	img, ok := c.CurrentImage()
	label := Styles.Empty.Render("no image")
	if ok {
		label = Styles.Normal.Render("▣ " + img)
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Width(width-2).
		Align(lipgloss.Center).
		Padding(1, 0)
	counter := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(Styles.Counter.Render(c.Counter()))
	return frame.Render(label) + "\n" + counter
}
