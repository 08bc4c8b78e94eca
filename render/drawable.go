package render

import (
	"weak"

	"github.com/lixenwraith/cellsnake/core"
)

// Drawable is a rectangular entity that can be stamped into the cell grid
// Position is mutable, size is fixed at creation. Owned by its game entity
type Drawable struct {
	rect core.Rect
}

// NewDrawable creates a drawable at pos with the given size
// Negative size components are treated as zero
func NewDrawable(pos, size core.Coord) *Drawable {
	size.X = max(size.X, 0)
	size.Y = max(size.Y, 0)
	return &Drawable{rect: core.Rect{Pos: pos, Size: size}}
}

// Position returns the top-left cell
func (d *Drawable) Position() core.Coord {
	return d.rect.Pos
}

// Size returns the width/height extent
func (d *Drawable) Size() core.Coord {
	return d.rect.Size
}

// SetPosition moves the drawable; off-grid positions are legal
func (d *Drawable) SetPosition(pos core.Coord) {
	d.rect.Pos = pos
}

// Rect returns the drawable's footprint
func (d *Drawable) Rect() core.Rect {
	return d.rect
}

// Registry is a non-owning, append-only list of drawables in registration order
// Holds weak references: the registry never extends a drawable's lifetime
type Registry struct {
	refs []weak.Pointer[Drawable]
}

// Register appends d; no de-duplication, no removal
func (r *Registry) Register(d *Drawable) {
	r.refs = append(r.refs, weak.Make(d))
}

// Len returns the number of registrations, including reclaimed drawables
func (r *Registry) Len() int {
	return len(r.refs)
}

// Each calls fn for every live drawable in registration order
func (r *Registry) Each(fn func(d *Drawable)) {
	for _, ref := range r.refs {
		if d := ref.Value(); d != nil {
			fn(d)
		}
	}
}
