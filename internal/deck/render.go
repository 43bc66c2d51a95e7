package deck

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5c2e7"))
	bodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
)

// Render draws s into exactly height lines of width columns.
func Render(s Section, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := max(1, min(width-4, 72))
	var parts []string
	if t := strings.TrimSpace(s.Title); t != "" {
		parts = append(parts, titleStyle.Render(wordwrap.String(t, inner)), "")
	}
	if b := strings.TrimSpace(s.Body); b != "" {
		parts = append(parts, bodyStyle.Render(wordwrap.String(b, inner)))
	}
	pos := lipgloss.Center
	if strings.EqualFold(strings.TrimSpace(s.Align), "left") {
		pos = lipgloss.Left
	}
	block := lipgloss.JoinVertical(pos, parts...)
	out := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
	return fitLines(out, height)
}

func fitLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
