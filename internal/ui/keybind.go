package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC g w" for
// SPC then g then w. Single keys: "tab", "c", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	sections     map[string][]Section // nil/empty = applies everywhere
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		sections:     make(map[string][]Section),
	}
}

// Bind registers a key sequence to a command, replacing any existing binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help bar.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindIn(seq, cmd, desc, nil)
}

// BindIn registers a binding that is only active in the given sections.
// Empty sections means everywhere.
func (r *KeybindRegistry) BindIn(seq string, cmd tea.Cmd, desc string, sections []Section) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(sections) > 0 {
		r.sections[n] = sections
	} else {
		delete(r.sections, n)
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupIn is Lookup restricted to bindings active in section.
func (r *KeybindRegistry) LookupIn(seq string, section Section) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesTo(n, section) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix reports whether any binding continues past seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// submenuLabel names leader keys that open a further level.
var submenuLabel = map[string]string{
	"g": "Go to",
}

// LeaderHints returns the next keys available after currentSeq ("" means
// right after SPC), filtered to bindings active in section.
func (r *KeybindRegistry) LeaderHints(currentSeq string, section Section) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesTo(seq, section) {
			continue
		}
		parts := strings.Fields(strings.TrimPrefix(seq, prefix))
		if len(parts) == 0 {
			continue
		}
		key := parts[0]
		if len(parts) > 1 {
			if label, ok := submenuLabel[key]; ok {
				out[key] = label
			} else {
				out[key] = key + "…"
			}
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[key] = d
		} else {
			out[key] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesTo(seq string, section Section) bool {
	sections, ok := r.sections[seq]
	if !ok || len(sections) == 0 {
		return true
	}
	for _, s := range sections {
		if s == section {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" and " " become "SPC".
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() for space)
	LeaderSeq     string   // "SPC"
	LeaderWaiting bool     // true after the leader key until a binding resolves
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Reset leaves leader mode.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle processes a KeyMsg in the context of section. Returns (consumed, cmd).
// Consumed keys must not be passed on to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, section Section) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.Reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.LookupIn(seq, section); c != nil {
			h.Reset()
			return true, c
		}
		// Stay in leader mode while a longer binding exists.
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.Reset()
		return true, nil
	}

	if c := h.Registry.LookupIn(keyToSeqPart(s), section); c != nil {
		return true, c
	}
	return false, nil
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
