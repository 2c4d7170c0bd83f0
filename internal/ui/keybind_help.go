package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/gallery"
)

// RenderKeybindHelp produces the transient help box shown after SPC, listing
// the next keys available in section.
func RenderKeybindHelp(keyHandler *KeyHandler, section Section) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	currentSeq := strings.Join(keyHandler.Buffer, " ")
	hints := keyHandler.Registry.LeaderHints(currentSeq, section)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	helpModel := newHelpModel()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return box.Render(Styles.Muted.Render(currentSeq) + " " + helpModel.ShortHelpView(bindings))
}

// footerBindings are the always-on hints at the bottom of the screen.
func footerBindings(section Section) []key.Binding {
	b := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "section")),
	}
	if section.GalleryKind() != gallery.KindNone {
		b = append(b,
			key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "select")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "preview")),
		)
	}
	b = append(b,
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy email")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "email")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "commands")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	)
	return b
}

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}
