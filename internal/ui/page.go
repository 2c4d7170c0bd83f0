package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"folio/internal/content"
	"folio/internal/ui/textutil"
)

const (
	defaultPageWidth  = 80
	defaultPageHeight = 20
	techColumnWidth   = 24
)

// PageView shows the body of a text section (home, about, education, tech,
// contact) in a scrollable viewport.
type PageView struct {
	Section   Section
	portfolio *content.Portfolio
	viewport  viewport.Model
	width     int
}

var _ View = (*PageView)(nil)

// NewPageView creates a page for section.
func NewPageView(section Section, p *content.Portfolio) *PageView {
	v := &PageView{
		Section:   section,
		portfolio: p,
		viewport:  viewport.New(defaultPageWidth, defaultPageHeight),
		width:     defaultPageWidth,
	}
	v.refreshContent()
	return v
}

// SetSize resizes the viewport and re-wraps the content.
func (v *PageView) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.viewport.Width = width
	v.viewport.Height = height
	if width != v.width {
		v.width = width
		v.refreshContent()
	}
}

// Init implements View.
func (v *PageView) Init() tea.Cmd {
	return v.viewport.Init()
}

// Update implements View. j/k and the page keys scroll.
func (v *PageView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *PageView) View() string {
	return v.viewport.View()
}

func (v *PageView) refreshContent() {
	v.viewport.SetContent(renderPage(v.Section, v.portfolio, v.width))
	v.viewport.GotoTop()
}

func renderPage(s Section, p *content.Portfolio, width int) string {
	if p == nil {
		return Styles.Empty.Render("No content loaded.")
	}
	switch s {
	case SectionHome:
		return renderHome(p)
	case SectionAbout:
		return renderMarkdown(p.About, width)
	case SectionEducation:
		return renderEntries(p.Education, p.Work)
	case SectionTech:
		return renderTech(p.Technologies, width)
	case SectionContact:
		return renderContact(p)
	}
	return ""
}

func renderHome(p *content.Portfolio) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(p.Profile.Name) + "\n")
	b.WriteString(Styles.Subtitle.Render(p.Profile.Role) + "\n\n")
	if p.Profile.Tagline != "" {
		b.WriteString(Styles.Normal.Render(p.Profile.Tagline) + "\n")
	}
	if p.Profile.Focus != "" {
		b.WriteString(Styles.Muted.Render(p.Profile.Focus) + "\n")
	}
	b.WriteString("\n" + Styles.Hint.Render("tab: browse sections · SPC: commands"))
	return b.String()
}

// renderMarkdown renders md with glamour, falling back to the raw text.
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return Styles.Empty.Render("Nothing here yet.")
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n\r\t ")
}

func renderEntries(education, work []content.Entry) string {
	var b strings.Builder
	writeGroup := func(title string, entries []content.Entry) {
		b.WriteString(Styles.Subtitle.Render(title) + "\n")
		if len(entries) == 0 {
			b.WriteString(Styles.Empty.Render("  none") + "\n")
			return
		}
		for _, e := range entries {
			b.WriteString(Styles.Bullet.Render("▸ ") + Styles.Normal.Render(e.Heading()))
			if e.Period != "" {
				b.WriteString("  " + Styles.Muted.Render(e.Period))
			}
			b.WriteString("\n")
			for _, h := range e.Highlights {
				b.WriteString("    " + Styles.Muted.Render("· "+h) + "\n")
			}
		}
	}
	writeGroup("Education", education)
	b.WriteString("\n")
	writeGroup("Experience", work)
	return strings.TrimRight(b.String(), "\n")
}

func renderTech(tech []string, width int) string {
	if len(tech) == 0 {
		return Styles.Empty.Render("Nothing here yet.")
	}
	cols := width / techColumnWidth
	if cols < 1 {
		cols = 1
	}
	var lines []string
	var row strings.Builder
	for i, t := range tech {
		row.WriteString(Styles.Bullet.Render("◆ "))
		row.WriteString(Styles.Normal.Render(textutil.PadRightVisual(t, techColumnWidth-2)))
		if (i+1)%cols == 0 {
			lines = append(lines, strings.TrimRight(row.String(), " "))
			row.Reset()
		}
	}
	if row.Len() > 0 {
		lines = append(lines, strings.TrimRight(row.String(), " "))
	}
	return strings.Join(lines, "\n")
}

func renderContact(p *content.Portfolio) string {
	var b strings.Builder
	b.WriteString(Styles.Normal.Render("I'm always open to discussing quantum computing, collaboration, or new projects.") + "\n\n")
	for _, l := range p.Links {
		b.WriteString(Styles.Bullet.Render("→ ") + textutil.PadRightVisual(l.Label, 12) + Styles.Link.Render(l.URL) + "\n")
	}
	if p.Email != "" {
		b.WriteString("\n" + Styles.Muted.Render("email  ") + Styles.Normal.Render(p.Email) + "\n")
		b.WriteString(Styles.Hint.Render("c: copy address · e: show email popup"))
	}
	return strings.TrimRight(b.String(), "\n")
}
