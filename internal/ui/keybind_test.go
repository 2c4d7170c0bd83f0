package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_SectionFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindIn("SPC o", tea.Quit, "Open preview", []Section{SectionWork})

	if reg.LookupIn("SPC o", SectionWork) == nil {
		t.Error("SPC o should be active in work")
	}
	if reg.LookupIn("SPC o", SectionAbout) != nil {
		t.Error("SPC o should be inactive in about")
	}
	if _, ok := reg.LeaderHints("", SectionAbout)["o"]; ok {
		t.Error("hint for o should be hidden outside work")
	}
	if got := reg.LeaderHints("", SectionWork)["o"]; got != "Open preview" {
		t.Errorf("hint for o in work = %q", got)
	}

	// Rebinding without sections lifts the filter.
	reg.BindWithDesc("SPC o", tea.Quit, "Open")
	if reg.LookupIn("SPC o", SectionAbout) == nil {
		t.Error("rebinding should apply everywhere")
	}
}

func TestKeybindRegistry_LeaderHintsSubmenu(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC g w", tea.Quit, "work")
	reg.BindWithDesc("SPC g a", tea.Quit, "about")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	top := reg.LeaderHints("", SectionHome)
	if top["g"] != "Go to" {
		t.Errorf("g hint = %q, want Go to", top["g"])
	}
	if top["q"] != "Quit" {
		t.Errorf("q hint = %q, want Quit", top["q"])
	}

	sub := reg.LeaderHints("SPC g", SectionHome)
	if len(sub) != 2 || sub["w"] != "work" || sub["a"] != "about" {
		t.Errorf("SPC g hints = %v", sub)
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "), SectionHome)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), SectionHome)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_MultiKeySequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC g w", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), SectionHome)
	consumed, cmd := h.Handle(keyMsg("g"), SectionHome)
	if !consumed || cmd != nil {
		t.Errorf("g: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting || strings.Join(h.Buffer, " ") != "SPC g" {
		t.Fatalf("expected to wait on SPC g, buffer=%v", h.Buffer)
	}
	_, cmd = h.Handle(keyMsg("w"), SectionHome)
	if cmd == nil {
		t.Error("expected SPC g w to resolve")
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), SectionHome)
	consumed, cmd := h.Handle(keyMsg("z"), SectionHome)
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), SectionHome)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), SectionHome)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	// Outside leader mode esc is left for the views.
	if consumed, _ := h.Handle(keyMsg("esc"), SectionHome); consumed {
		t.Error("esc outside leader mode should not be consumed")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), SectionHome)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), SectionHome)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	h := NewKeyHandler(newRegistry())
	if got := RenderKeybindHelp(h, SectionHome); got != "" {
		t.Errorf("expected no help outside leader mode, got %q", got)
	}
	h.Handle(keyMsg(" "), SectionHome)
	view := RenderKeybindHelp(h, SectionHome)
	for _, want := range []string{"Go to", "Quit", "Copy email", "esc"} {
		if !strings.Contains(view, want) {
			t.Errorf("help should contain %q, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Open preview") {
		t.Errorf("Open preview should be hidden on home, got:\n%s", view)
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
