package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

type jumpState struct {
	active bool
	query  string
}

func (a *App) openJump() {
	a.jump = jumpState{active: true}
	a.status = ""
}

func (a *App) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	action, _ := a.keys.Action(msg, scopeJump)
	switch action {
	case actionQuit:
		return a.quit()
	case actionClose:
		a.jump = jumpState{}
		a.status = "Jump cancelled"
		return nil
	case actionSelect:
		query := a.jump.query
		a.jump = jumpState{}
		idx := a.deck.Find(query)
		if idx < 0 {
			a.status = fmt.Sprintf("No section matches %q", query)
			return nil
		}
		prev := a.page.State().Seq
		a.page.Select(idx)
		a.status = "Jumped to " + a.deck.Titles()[idx]
		return a.afterInput(prev)
	}
	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(a.jump.query); len(r) > 0 {
			a.jump.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		a.jump.query += " "
	case tea.KeyRunes:
		a.jump.query += string(msg.Runes)
	}
	return nil
}
