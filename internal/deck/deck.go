// Package deck loads the sections shown by snapdeck and renders their text.
package deck

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//go:embed default.toml
var defaultDeck []byte

// Section is one full-screen block of content.
type Section struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Body  string `toml:"body"`
	Align string `toml:"align"`
}

// BlockID identifies the section to the snap registry.
func (s Section) BlockID() string { return s.ID }

// Deck is an ordered list of sections.
type Deck struct {
	Title    string    `toml:"title"`
	Sections []Section `toml:"section"`
}

// Load reads a deck file. An empty path loads the built-in deck.
func Load(path string) (Deck, error) {
	if strings.TrimSpace(path) == "" {
		return Parse(defaultDeck)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, errors.Wrapf(err, "read deck %s", path)
	}
	d, err := Parse(data)
	if err != nil {
		return Deck{}, errors.Wrapf(err, "deck %s", path)
	}
	return d, nil
}

// Parse decodes a TOML deck and fills in missing ids.
func Parse(data []byte) (Deck, error) {
	var d Deck
	md, err := toml.Decode(string(data), &d)
	if err != nil {
		return Deck{}, errors.Wrap(err, "decode deck")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Deck{}, errors.Errorf("unknown deck keys: %v", undecoded)
	}
	seen := make(map[string]bool, len(d.Sections))
	for i := range d.Sections {
		s := &d.Sections[i]
		s.ID = strings.TrimSpace(s.ID)
		if s.ID == "" {
			s.ID = fmt.Sprintf("section-%d", i+1)
		}
		if seen[s.ID] {
			return Deck{}, errors.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
		switch strings.ToLower(strings.TrimSpace(s.Align)) {
		case "", "center", "left":
		default:
			return Deck{}, errors.Errorf("section %q: unknown align %q", s.ID, s.Align)
		}
	}
	return d, nil
}

// Titles returns section titles, falling back to ids.
func (d Deck) Titles() []string {
	out := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		out[i] = s.Title
		if strings.TrimSpace(out[i]) == "" {
			out[i] = s.ID
		}
	}
	return out
}
