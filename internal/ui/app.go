package ui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/gallery"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	headerHeight  = 4 // tabs, blank, heading, blank
	footerHeight  = 2
)

// AppModel is the root model. It owns the gallery controller and routes
// input between the section bodies and the preview/popup overlays.
type AppModel struct {
	Portfolio  *content.Portfolio
	Controller *gallery.Controller
	Runtime    *Runtime
	Focus      *FocusManager
	Tiles      map[gallery.Kind]*TileList
	Pages      map[Section]*PageView
	Preview    *PreviewModal
	Popup      *EmailPopup
	KeyHandler *KeyHandler

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for p. opts are applied to the gallery
// controller after the Bubble Tea scheduler and dispatcher.
func NewAppModel(p *content.Portfolio, opts ...gallery.Option) *AppModel {
	rt := NewRuntime()
	copts := append([]gallery.Option{
		gallery.WithScheduler(rt),
		gallery.WithDispatcher(rt.Dispatch),
	}, opts...)
	c := gallery.NewController(p.Projects, p.Certifications, copts...)

	a := &AppModel{
		Portfolio:  p,
		Controller: c,
		Runtime:    rt,
		Focus:      NewFocusManager(AllSections),
		Tiles: map[gallery.Kind]*TileList{
			gallery.KindProject:       NewTileList(gallery.KindProject, p.Projects),
			gallery.KindCertification: NewTileList(gallery.KindCertification, p.Certifications),
		},
		Pages:      make(map[Section]*PageView),
		Preview:    NewPreviewModal(c),
		Popup:      NewEmailPopup(c, p.Email),
		KeyHandler: NewKeyHandler(newRegistry()),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	for _, s := range AllSections {
		if s.GalleryKind() == gallery.KindNone {
			a.Pages[s] = NewPageView(s, p)
		}
	}
	a.Focus.OnChange = func(_, _ Section) { a.KeyHandler.Reset() }
	a.resize()
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("tab", msgCmd(NextSectionMsg{}), "Next section")
	reg.BindWithDesc("shift+tab", msgCmd(PrevSectionMsg{}), "Previous section")
	reg.BindWithDesc("c", msgCmd(CopyEmailMsg{}), "Copy email")
	reg.BindWithDesc("e", msgCmd(ToggleEmailPopupMsg{}), "Email popup")
	for i, s := range AllSections {
		reg.Bind(fmt.Sprintf("%d", i+1), msgCmd(GotoSectionMsg{Section: s}))
	}

	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC y", msgCmd(CopyEmailMsg{}), "Copy email")
	reg.BindWithDesc("SPC e", msgCmd(ToggleEmailPopupMsg{}), "Email popup")
	reg.BindIn("SPC o", msgCmd(OpenSelectedMsg{}), "Open preview",
		[]Section{SectionWork, SectionCertifications})
	for _, g := range []struct {
		key     string
		section Section
	}{
		{"h", SectionHome},
		{"a", SectionAbout},
		{"w", SectionWork},
		{"c", SectionCertifications},
		{"e", SectionEducation},
		{"t", SectionTech},
		{"m", SectionContact},
	} {
		reg.BindWithDesc("SPC g "+g.key, msgCmd(GotoSectionMsg{Section: g.section}), g.section.String())
	}
	return reg
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.Portfolio.Profile.Name == "" {
		return nil
	}
	return tea.SetWindowTitle(a.Portfolio.Profile.Name)
}

// Update implements tea.Model. Every path drains the runtime so timers and
// clipboard writes queued by the controller reach Bubble Tea.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, tea.Batch(cmd, a.Runtime.Drain())
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return nil
	case TimerFiredMsg:
		a.Runtime.Fire(msg.ID)
		return nil
	case tea.MouseMsg:
		return a.handleMouse(msg)

	case NextSectionMsg:
		a.Focus.Next()
		return nil
	case PrevSectionMsg:
		a.Focus.Prev()
		return nil
	case GotoSectionMsg:
		a.Focus.SetFocus(msg.Section)
		return nil

	case OpenPreviewMsg:
		a.openPreview(msg.Kind, msg.Index)
		return nil
	case OpenSelectedMsg:
		a.openSelected()
		return nil
	case ClosePreviewMsg:
		a.Controller.ClosePreview()
		return nil
	case NavigateMsg:
		a.Controller.Navigate(msg.Dir)
		return nil
	case CopyEmailMsg:
		if a.Portfolio.Email != "" {
			a.Controller.CopyEmailAddress(a.Portfolio.Email)
		}
		return nil
	case ToggleEmailPopupMsg:
		a.Controller.ToggleEmailPopup()
		return nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a.updateBody(msg)
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	// The open modal captures all keys except ctrl+c.
	if a.Controller.Selection().Open() {
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		_, cmd := a.Preview.Update(msg)
		return cmd
	}

	if a.KeyHandler != nil {
		if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Focus.Current); consumed {
			return keyCmd
		}
	}

	switch msg.String() {
	case "enter":
		if a.Focus.Current.GalleryKind() != gallery.KindNone {
			return msgCmd(OpenSelectedMsg{})
		}
	case "esc":
		if a.Controller.Popup().Visible {
			return msgCmd(ToggleEmailPopupMsg{})
		}
		return nil
	}
	return a.updateBody(msg)
}

// handleMouse closes the preview on a left click that lands on the backdrop.
func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !a.Controller.Selection().Open() {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if _, r := a.renderPreview(); !r.Contains(msg.X, msg.Y) {
		return msgCmd(ClosePreviewMsg{})
	}
	return nil
}

func (a *AppModel) openPreview(kind gallery.Kind, index int) {
	if err := a.Controller.OpenPreview(kind, index); err != nil {
		log.Printf("ui: open preview: %v", err)
	}
}

// openSelected opens the tile highlighted in the current gallery section.
func (a *AppModel) openSelected() {
	kind := a.Focus.Current.GalleryKind()
	tiles, ok := a.Tiles[kind]
	if !ok {
		return
	}
	if idx := tiles.Selected(); idx >= 0 {
		a.openPreview(kind, idx)
	}
}

// body returns the View shown under the current section heading.
func (a *AppModel) body() View {
	if t, ok := a.Tiles[a.Focus.Current.GalleryKind()]; ok {
		return t
	}
	if p, ok := a.Pages[a.Focus.Current]; ok {
		return p
	}
	return nil
}

func (a *AppModel) updateBody(msg tea.Msg) tea.Cmd {
	v := a.body()
	if v == nil {
		return nil
	}
	_, cmd := v.Update(msg)
	return cmd
}

func (a *AppModel) resize() {
	bodyHeight := a.height - headerHeight - footerHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	for _, t := range a.Tiles {
		t.SetSize(a.width, bodyHeight)
	}
	for _, p := range a.Pages {
		p.SetSize(a.width, bodyHeight)
	}
	a.Preview.SetWidth(a.width)
}

// renderPreview centers the modal over the backdrop.
func (a *AppModel) renderPreview() (string, Rect) {
	return placeOverlay(a.width, a.height, a.Preview.View())
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Controller.Selection().Open() {
		screen, _ := a.renderPreview()
		return screen
	}

	var b strings.Builder
	b.WriteString(a.renderTabs() + "\n\n")
	if h := a.Focus.Current.Heading(); h != "" {
		b.WriteString(sectionHeading(h) + "\n\n")
	}
	if v := a.body(); v != nil {
		b.WriteString(v.View())
	}
	if popup := a.Popup.View(); popup != "" {
		b.WriteString("\n\n" + popup)
	}

	footer := newHelpModel().ShortHelpView(footerBindings(a.Focus.Current))
	if leader := RenderKeybindHelp(a.KeyHandler, a.Focus.Current); leader != "" {
		footer = leader
	}
	return lipgloss.JoinVertical(lipgloss.Left, b.String(), "", footer)
}

func (a *AppModel) renderTabs() string {
	tabs := make([]string, 0, len(a.Focus.Order))
	for i, s := range a.Focus.Order {
		label := fmt.Sprintf("%d %s", i+1, s)
		if s == a.Focus.Current {
			tabs = append(tabs, Styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, Styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
