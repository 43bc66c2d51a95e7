package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeDeck = "deck"
	scopeJump = "jump"
)

const (
	actionNext     = "next"
	actionPrev     = "prev"
	actionPageDown = "page-down"
	actionPageUp   = "page-up"
	actionFirst    = "first"
	actionLast     = "last"
	actionJump     = "jump"
	actionQuit     = "quit"
	actionClose    = "close"
	actionSelect   = "select"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
	help     []key.Binding
}

// NewKeyRegistry builds one key.Binding per entry. Keys are normalised once
// here; an entry left with no keys is disabled.
func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{bindings: slices.Clone(bindings), help: make([]key.Binding, len(bindings))}
	for i, b := range r.bindings {
		keys := make([]string, 0, len(b.Keys))
		for _, k := range b.Keys {
			if k = normalizeKey(k); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			r.help[i] = key.NewBinding(key.WithDisabled())
			continue
		}
		r.help[i] = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], b.Description))
	}
	return r
}

// BindingsForScope returns the enabled bindings visible in scope, in
// registration order.
func (r *KeyRegistry) BindingsForScope(scope string) []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for i, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) && r.help[i].Enabled() {
			out = append(out, r.help[i])
		}
	}
	return out
}

// Action returns the first action bound to the pressed key in scope.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) (string, bool) {
	pressed := normalizeKey(msg.String())
	for i, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) || !r.help[i].Enabled() {
			continue
		}
		if slices.Contains(r.help[i].Keys(), pressed) {
			return b.Action, true
		}
	}
	return "", false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"down", "j"}, Action: actionNext, Description: "next", Scopes: []string{scopeDeck}},
		{Keys: []string{"up", "k"}, Action: actionPrev, Description: "prev", Scopes: []string{scopeDeck}},
		{Keys: []string{"pgdown"}, Action: actionPageDown, Description: "page down", Scopes: []string{scopeDeck}},
		{Keys: []string{"pgup"}, Action: actionPageUp, Description: "page up", Scopes: []string{scopeDeck}},
		{Keys: []string{"home"}, Action: actionFirst, Description: "first", Scopes: []string{scopeDeck}},
		{Keys: []string{"end"}, Action: actionLast, Description: "last", Scopes: []string{scopeDeck}},
		{Keys: []string{"g"}, Action: actionJump, Description: "jump", Scopes: []string{scopeDeck}},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeDeck}},
		{Keys: []string{"esc"}, Action: actionClose, Description: "cancel", Scopes: []string{scopeJump}},
		{Keys: []string{"enter"}, Action: actionSelect, Description: "go", Scopes: []string{scopeJump}},
		{Keys: []string{"ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeJump}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action is
// configured in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
