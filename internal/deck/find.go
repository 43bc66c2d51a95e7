package deck

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Find resolves a jump query to a section index. A number selects that
// section (1-based); otherwise the title with a matching prefix wins, then the
// closest title by edit distance. It returns -1 when nothing is close enough.
func (d Deck) Find(query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(d.Sections) == 0 {
		return -1
	}
	if n, err := strconv.Atoi(q); err == nil {
		if n >= 1 && n <= len(d.Sections) {
			return n - 1
		}
		return -1
	}
	titles := d.Titles()
	for i, t := range titles {
		if strings.HasPrefix(strings.ToLower(t), q) {
			return i
		}
	}
	best, bestDist := -1, 0
	for i, t := range titles {
		dist := levenshtein.ComputeDistance(q, strings.ToLower(t))
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	// reject matches that share almost nothing with the query
	if bestDist > max(len(q), len(titles[best]))/2 {
		return -1
	}
	return best
}
