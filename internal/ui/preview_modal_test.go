package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/gallery"
)

func newTestController() *gallery.Controller {
	p := testPortfolio()
	return gallery.NewController(p.Projects, p.Certifications)
}

func TestPreviewModal_ClosedRendersNothing(t *testing.T) {
	m := NewPreviewModal(newTestController())
	if got := m.View(); got != "" {
		t.Errorf("closed modal rendered %q", got)
	}
}

func TestPreviewModal_ViewShowsItem(t *testing.T) {
	c := newTestController()
	if err := c.OpenPreview(gallery.KindProject, 1); err != nil {
		t.Fatal(err)
	}
	m := NewPreviewModal(c)
	view := m.View()
	for _, want := range []string{"Visualizer", "solo.png", "1 / 1", "https://example.com/viz", "esc close"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "next") {
		t.Error("single-image items should not offer navigation")
	}
}

func TestPreviewModal_NavigationHintForMultipleImages(t *testing.T) {
	c := newTestController()
	c.OpenPreview(gallery.KindCertification, 0)
	view := NewPreviewModal(c).View()
	if !strings.Contains(view, "next") || !strings.Contains(view, "1 / 2") {
		t.Errorf("expected navigation hint and counter, got:\n%s", view)
	}
}

func TestPreviewModal_KeysBecomeMessages(t *testing.T) {
	m := NewPreviewModal(newTestController())
	cases := []struct {
		key  string
		want any
	}{
		{"h", NavigateMsg{Dir: gallery.Previous}},
		{"left", NavigateMsg{Dir: gallery.Previous}},
		{"l", NavigateMsg{Dir: gallery.Next}},
		{"right", NavigateMsg{Dir: gallery.Next}},
		{"esc", ClosePreviewMsg{}},
		{"q", ClosePreviewMsg{}},
	}
	for _, tc := range cases {
		_, cmd := m.Update(keyMsg(tc.key))
		if cmd == nil {
			t.Errorf("%s: expected a command", tc.key)
			continue
		}
		if got := cmd(); got != tc.want {
			t.Errorf("%s: got %#v, want %#v", tc.key, got, tc.want)
		}
	}
	if _, cmd := m.Update(keyMsg("x")); cmd != nil {
		t.Error("unbound key should produce no command")
	}
}

func TestPreviewModal_WidthClamped(t *testing.T) {
	c := newTestController()
	c.OpenPreview(gallery.KindProject, 0)
	m := NewPreviewModal(c)

	m.SetWidth(200)
	if w := lipgloss.Width(m.View()); w != previewMaxWidth {
		t.Errorf("wide terminal: width %d, want %d", w, previewMaxWidth)
	}
	m.SetWidth(10)
	if w := lipgloss.Width(m.View()); w != previewMinWidth {
		t.Errorf("narrow terminal: width %d, want %d", w, previewMinWidth)
	}
}

func TestPlaceOverlay_CentersBox(t *testing.T) {
	box := "abcd\nefgh"
	screen, r := placeOverlay(10, 6, box)
	want := Rect{X: 3, Y: 2, W: 4, H: 2}
	if r != want {
		t.Errorf("rect = %+v, want %+v", r, want)
	}
	lines := strings.Split(screen, "\n")
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want 6", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 10 {
			t.Errorf("line %d width %d, want 10", i, w)
		}
	}
	if !strings.Contains(lines[2], "abcd") || !strings.Contains(lines[3], "efgh") {
		t.Errorf("box not on rows 2-3:\n%s", screen)
	}
	if !r.Contains(3, 2) || r.Contains(7, 2) || r.Contains(3, 4) {
		t.Error("Contains bounds are off")
	}
}
