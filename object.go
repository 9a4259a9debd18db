package flixel

// Kind tags an Object with a caller-defined category so tile reaction
// handlers can filter which objects they respond to.
type Kind uint32

// KindAny is the zero Kind. Filters set to KindAny accept every object.
const KindAny Kind = 0

// Object is the minimal moving box the collision resolver works against:
// a world-space bounding box plus the previous-frame position the caller
// maintains for swept separation.
type Object struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	// Last is the object's position on the previous frame.
	Last Point

	// Kind is matched against tile reaction filters.
	Kind Kind
}

// Bounds returns the object's current bounding box.
func (o *Object) Bounds() Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}
