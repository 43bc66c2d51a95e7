package snap

// Block is an opaque content block supplied by the host.
type Block interface {
	BlockID() string
}

// Section is a registered block. Its identity is its index.
type Section struct {
	Index int
	Block Block
}

// Registry holds the ordered sections, fixed at registration.
type Registry struct {
	sections []Section
	byID     map[string]int
}

// NewRegistry registers every non-nil child in the order given. Ids only
// serve lookups; a repeated id resolves to its first occurrence.
func NewRegistry(children []Block) *Registry {
	r := &Registry{byID: make(map[string]int, len(children))}
	for _, b := range children {
		if b == nil {
			continue
		}
		idx := len(r.sections)
		if id := b.BlockID(); id != "" {
			if _, seen := r.byID[id]; !seen {
				r.byID[id] = idx
			}
		}
		r.sections = append(r.sections, Section{Index: idx, Block: b})
	}
	return r
}

func (r *Registry) Len() int { return len(r.sections) }

func (r *Registry) At(i int) (Section, bool) {
	if i < 0 || i >= len(r.sections) {
		return Section{}, false
	}
	return r.sections[i], true
}

// Index returns the position of the block with the given id, or -1.
func (r *Registry) Index(id string) int {
	if i, ok := r.byID[id]; ok {
		return i
	}
	return -1
}
