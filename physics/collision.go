package physics

// Epsilon absorbs floating-point error in edge comparisons. Exactly
// touching edges must keep registering as contact or resting detection
// (standing on ground, platform riding) stops working.
const Epsilon = 0.1

// Collides reports whether a and b overlap on both axes. The comparison
// is closed-interval: touching edges count as colliding. A body never
// collides with itself or with a traversable body.
func Collides(a, b Body) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if a.Traversable() || b.Traversable() {
		return false
	}
	return overlaps(a, b, AxisX) && overlaps(a, b, AxisY)
}

func overlaps(a, b Body, axis Axis) bool {
	return a.Pos(axis) <= b.Pos(axis)+b.Size(axis)+Epsilon &&
		b.Pos(axis) <= a.Pos(axis)+a.Size(axis)+Epsilon
}
