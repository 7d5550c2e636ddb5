package physics

import "math"

// Gap is the separation left between a clamped body and its blocker.
// Resting contact is a body sitting exactly Gap units from an obstacle:
// any further move toward it clamps straight back, yielding zero
// displacement and a reported blocker.
const Gap = 1.0

// Result describes one axis move after resolution.
type Result struct {
	Before float64
	After  float64
	// Moved is After - Before. Its magnitude never exceeds the
	// requested velocity.
	Moved float64
	// Blocker is the body that stopped the move, or nil.
	Blocker Body
}

// Blocked reports whether the move was fully absorbed by a collision.
func (r Result) Blocked() bool {
	return r.Blocker != nil && r.Moved == 0
}

// Move displaces e along axis by vel and resolves the move against the
// world's bodies in their natural order. Only the first colliding body is
// resolved per call; a fast mover can still tunnel past a second obstacle
// in the same tick. The clamp is accepted only when the resulting resting
// position is within the requested distance of the starting position;
// otherwise the tentative (penetrating) position stands.
//
// Move mutates e's position. If stopped is non-nil and the move was fully
// blocked, it is invoked with the blocking body before Move returns.
func Move(w World, e Body, axis Axis, vel float64, stopped func(Body)) Result {
	before := e.Pos(axis)
	e.SetPos(axis, before+vel)

	var blocker Body
	for _, b := range w.Bodies() {
		if b == nil || b == e || b.Traversable() {
			continue
		}
		if !Collides(e, b) {
			continue
		}
		blocker = b
		rest := before
		switch {
		case vel < 0:
			rest = b.Pos(axis) + b.Size(axis) + Gap
		case vel > 0:
			rest = b.Pos(axis) - e.Size(axis) - Gap
		}
		if math.Abs(rest-before) <= math.Abs(vel) {
			e.SetPos(axis, rest)
		}
		break
	}

	after := e.Pos(axis)
	res := Result{Before: before, After: after, Moved: after - before, Blocker: blocker}
	if stopped != nil && res.Blocked() {
		stopped(blocker)
	}
	return res
}
