// Package physics resolves axis-aligned rectangle movement one axis at a
// time against a set of obstacles. It knows nothing about scenes, input,
// or rendering; callers hand it bodies behind a small capability interface.
package physics

// Axis selects the coordinate a move operates on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Body is the rectangle capability the resolver depends on. Positions are
// top-left corners, sizes are >= 0, and both stay valid boxes for the
// lifetime of the body.
type Body interface {
	ID() string
	Pos(a Axis) float64
	SetPos(a Axis, v float64)
	Size(a Axis) float64
	// Traversable bodies never block movement and never register contact.
	Traversable() bool
}

// World enumerates every candidate solid body. The slice order is the
// store's natural order and must be stable within a tick; the mover
// resolves against the first colliding body it finds in that order.
type World interface {
	Bodies() []Body
}
