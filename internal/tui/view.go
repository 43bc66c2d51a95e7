package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/snapdeck/internal/deck"
	"github.com/jask/snapdeck/internal/snap"
)

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	bodyW, bodyH := a.bodyWidth(), a.bodyHeight()
	dots := a.dotColumn(bodyH)
	rows := make([]string, 0, bodyH+chromeHeight)
	for i, line := range a.bodyLines(bodyW, bodyH) {
		rows = append(rows, padLine(line, bodyW)+dots[i])
	}
	rows = append(rows, a.renderStatusBar(), a.renderFooter())
	view := strings.Join(fitRows(rows, a.height), "\n")
	return appStyle.Width(a.width).MaxWidth(a.width).Render(view)
}

// bodyLines cuts the visible window out of the stacked sections.
func (a *App) bodyLines(width, height int) []string {
	out := make([]string, height)
	n := len(a.deck.Sections)
	if n == 0 {
		out[height/2] = lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(colorMuted).Render("empty deck"))
		return out
	}
	offset := a.anim.Offset()
	for row := range out {
		doc := offset + row
		sec := doc / height
		if doc < 0 || sec >= n {
			continue
		}
		out[row] = a.sectionLines(sec, width, height)[doc%height]
	}
	return out
}

func (a *App) sectionLines(i, width, height int) []string {
	if a.rendered == nil {
		a.rendered = make(map[int][]string)
	}
	if lines, ok := a.rendered[i]; ok {
		return lines
	}
	lines := strings.Split(deck.Render(a.deck.Sections[i], width, height), "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	a.rendered[i] = lines
	return lines
}

func (a *App) dotTop(height int) int {
	return max(0, (height-len(a.page.Dots()))/2)
}

func (a *App) dotColumn(height int) []string {
	col := make([]string, height)
	blank := strings.Repeat(" ", dotsWidth)
	for i := range col {
		col[i] = blank
	}
	top := a.dotTop(height)
	for _, d := range a.page.Dots() {
		row := top + d.Index
		if row >= height {
			break
		}
		if d.Active {
			col[row] = " " + dotActiveStyle.Render("●") + " "
		} else {
			col[row] = " " + dotIdleStyle.Render("○") + " "
		}
	}
	return col
}

// dotAt maps a click to an indicator marker.
func (a *App) dotAt(x, y int) (int, bool) {
	bodyW, bodyH := a.bodyWidth(), a.bodyHeight()
	if x < bodyW || y < 0 || y >= bodyH {
		return 0, false
	}
	idx := y - a.dotTop(bodyH)
	if idx < 0 || idx >= len(a.page.Dots()) {
		return 0, false
	}
	return idx, true
}

func (a *App) renderStatusBar() string {
	st := a.page.State()
	var left string
	if st.Count == 0 {
		left = "0/0"
	} else {
		left = fmt.Sprintf("%d/%d  %s", st.Active+1, st.Count, a.deck.Titles()[st.Active])
	}
	if st.Phase == snap.Transitioning {
		left += " " + statusLockStyle.Render("⇣")
	}
	right := a.status
	if a.jump.active {
		right = "jump › " + a.jump.query + "_"
	}
	line := " " + left
	if right != "" {
		gap := max(2, a.width-ansi.StringWidth(line)-ansi.StringWidth(right)-1)
		line += strings.Repeat(" ", gap) + right
	}
	return renderBar(statusBarStyle, a.width, line)
}

func (a *App) renderFooter() string {
	scope := scopeDeck
	if a.jump.active {
		scope = scopeJump
	}
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")

	bindings := a.keys.BindingsForScope(scope)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	return renderBar(footerStyle, a.width, " "+strings.Join(parts, sep))
}

func renderBar(style lipgloss.Style, width int, text string) string {
	width = max(1, width)
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func padLine(line string, width int) string {
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}

func fitRows(rows []string, height int) []string {
	if len(rows) > height {
		rows = rows[len(rows)-height:]
	}
	return rows
}
