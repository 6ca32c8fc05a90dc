package engine

// Registry holds the live falling items in spawn order
// Callers iterating with removal must walk indices in reverse
type Registry struct {
	items []FallingEntity
}

func NewRegistry() *Registry {
	return &Registry{items: make([]FallingEntity, 0, 32)}
}

func (r *Registry) Add(e FallingEntity) {
	r.items = append(r.items, e)
}

// RemoveAt deletes the item at i, preserving order of the rest
func (r *Registry) RemoveAt(i int) {
	copy(r.items[i:], r.items[i+1:])
	r.items[len(r.items)-1] = FallingEntity{}
	r.items = r.items[:len(r.items)-1]
}

// At returns a pointer valid until the next Add or RemoveAt
func (r *Registry) At(i int) *FallingEntity {
	return &r.items[i]
}

func (r *Registry) Len() int {
	return len(r.items)
}

func (r *Registry) Clear() {
	clear(r.items)
	r.items = r.items[:0]
}

// Each calls fn for every item in spawn order
func (r *Registry) Each(fn func(e FallingEntity)) {
	for _, e := range r.items {
		fn(e)
	}
}
