package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

var backdropStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBackdrop))

const backdropChar = "░"

// placeOverlay centers box on a width×height backdrop and returns the
// rendered screen plus the cells the box occupies. Clicks outside the
// returned Rect land on the backdrop.
func placeOverlay(width, height int, box string) (string, Rect) {
	lines := strings.Split(box, "\n")
	bw := lipgloss.Width(box)
	bh := len(lines)
	if width < bw {
		width = bw
	}
	if height < bh {
		height = bh
	}
	r := Rect{X: (width - bw) / 2, Y: (height - bh) / 2, W: bw, H: bh}

	fill := func(n int) string {
		if n <= 0 {
			return ""
		}
		return backdropStyle.Render(strings.Repeat(backdropChar, n))
	}
	full := fill(width)

	out := make([]string, 0, height)
	for y := 0; y < height; y++ {
		if y < r.Y || y >= r.Y+bh {
			out = append(out, full)
			continue
		}
		line := lines[y-r.Y]
		right := width - r.X - lipgloss.Width(line)
		out = append(out, fill(r.X)+line+fill(right))
	}
	return strings.Join(out, "\n"), r
}
