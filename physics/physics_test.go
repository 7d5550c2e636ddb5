package physics

import (
	"math"
	"testing"
)

type box struct {
	id   string
	x, y float64
	w, h float64
	pass bool
}

func (b *box) ID() string { return b.id }

func (b *box) Pos(a Axis) float64 {
	if a == AxisX {
		return b.x
	}
	return b.y
}

func (b *box) SetPos(a Axis, v float64) {
	if a == AxisX {
		b.x = v
	} else {
		b.y = v
	}
}

func (b *box) Size(a Axis) float64 {
	if a == AxisX {
		return b.w
	}
	return b.h
}

func (b *box) Traversable() bool { return b.pass }

type world []*box

func (w world) Bodies() []Body {
	out := make([]Body, 0, len(w))
	for _, b := range w {
		out = append(out, b)
	}
	return out
}

func TestCollides(t *testing.T) {
	cases := []struct {
		name string
		a, b *box
		want bool
	}{
		{
			name: "overlapping",
			a:    &box{id: "a", x: 0, y: 0, w: 10, h: 10},
			b:    &box{id: "b", x: 5, y: 5, w: 10, h: 10},
			want: true,
		},
		{
			name: "touching_edges",
			a:    &box{id: "a", x: 0, y: 0, w: 10, h: 10},
			b:    &box{id: "b", x: 10, y: 0, w: 10, h: 10},
			want: true,
		},
		{
			name: "touching_corner",
			a:    &box{id: "a", x: 0, y: 0, w: 10, h: 10},
			b:    &box{id: "b", x: 10, y: 10, w: 10, h: 10},
			want: true,
		},
		{
			name: "within_epsilon",
			a:    &box{id: "a", x: 0, y: 0, w: 10, h: 10},
			b:    &box{id: "b", x: 10.05, y: 0, w: 10, h: 10},
			want: true,
		},
		{
			name: "separated",
			a:    &box{id: "a", x: 0, y: 0, w: 10, h: 10},
			b:    &box{id: "b", x: 11.01, y: 0, w: 10, h: 10},
			want: false,
		},
		{
			name: "overlap_x_only",
			a:    &box{id: "a", x: 0, y: 0, w: 10, h: 10},
			b:    &box{id: "b", x: 5, y: 50, w: 10, h: 10},
			want: false,
		},
		{
			name: "traversable_never_collides",
			a:    &box{id: "a", x: 0, y: 0, w: 10, h: 10},
			b:    &box{id: "b", x: 5, y: 5, w: 10, h: 10, pass: true},
			want: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Collides(c.a, c.b); got != c.want {
				t.Fatalf("Collides(a,b) = %v, want %v", got, c.want)
			}
			if got := Collides(c.b, c.a); got != c.want {
				t.Fatalf("Collides(b,a) = %v, want %v (symmetry)", got, c.want)
			}
		})
	}
}

func TestCollidesSelfExclusion(t *testing.T) {
	a := &box{id: "a", x: 0, y: 0, w: 10, h: 10}
	if Collides(a, a) {
		t.Fatal("a body must never collide with itself")
	}
}

func TestMoveUnblocked(t *testing.T) {
	e := &box{id: "e", x: 0, y: 0, w: 10, h: 10}
	w := world{e, {id: "far", x: 500, y: 0, w: 10, h: 10}}

	res := Move(w, e, AxisX, 7, nil)
	if res.Moved != 7 || res.After != 7 || res.Blocker != nil {
		t.Fatalf("unblocked move: got %+v", res)
	}
}

func TestMoveZeroVelocity(t *testing.T) {
	t.Run("clear", func(t *testing.T) {
		e := &box{id: "e", x: 0, y: 0, w: 10, h: 10}
		w := world{e, {id: "far", x: 100, y: 0, w: 10, h: 10}}

		called := false
		res := Move(w, e, AxisX, 0, func(Body) { called = true })
		if res.Moved != 0 {
			t.Fatalf("Moved = %v, want 0", res.Moved)
		}
		if called {
			t.Fatal("stopped must not fire without contact")
		}
	})

	t.Run("already_overlapping", func(t *testing.T) {
		e := &box{id: "e", x: 0, y: 0, w: 10, h: 10}
		w := world{e, {id: "in", x: 5, y: 0, w: 10, h: 10}}

		var blocked Body
		res := Move(w, e, AxisX, 0, func(b Body) { blocked = b })
		if res.Moved != 0 {
			t.Fatalf("Moved = %v, want 0", res.Moved)
		}
		if blocked == nil || blocked.ID() != "in" {
			t.Fatalf("stopped fired with %v, want overlapping body", blocked)
		}
	})
}

// A body resting Gap units from an obstacle and moving further into it
// must not move at all, and the obstacle must be reported.
func TestMoveRestingContact(t *testing.T) {
	ground := &box{id: "ground", x: 0, y: 120, w: 100, h: 20}
	e := &box{id: "e", x: 10, y: 120 - 10 - Gap, w: 10, h: 10}
	w := world{e, ground}

	var blocked Body
	res := Move(w, e, AxisY, 3, func(b Body) { blocked = b })
	if res.Moved != 0 {
		t.Fatalf("Moved = %v, want 0", res.Moved)
	}
	if res.After != res.Before {
		t.Fatalf("After = %v, want %v", res.After, res.Before)
	}
	if blocked != ground {
		t.Fatalf("stopped fired with %v, want ground", blocked)
	}
}

// When the distance to the resting position is smaller than the requested
// velocity, the move clamps to exactly that distance.
func TestMovePartialClamp(t *testing.T) {
	cases := []struct {
		name        string
		startY      float64
		vel         float64
		wantMoved   float64
		wantBlocked bool
	}{
		{"down_short_gap", 107, 5, 2, true},  // resting position at 109
		{"down_exact_gap", 106, 3, 3, false}, // lands exactly on resting position, no contact yet
		{"up_short_gap", 133, -5, -2, true},  // obstacle bottom 130, resting at 131
		{"up_exact_gap", 134, -3, -3, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			obstacle := &box{id: "ob", x: 0, y: 120, w: 100, h: 10}
			e := &box{id: "e", x: 10, y: c.startY, w: 10, h: 10}
			w := world{e, obstacle}

			res := Move(w, e, AxisY, c.vel, nil)
			if res.Moved != c.wantMoved {
				t.Fatalf("Moved = %v, want %v", res.Moved, c.wantMoved)
			}
			if got := res.Blocker == obstacle; got != c.wantBlocked {
				t.Fatalf("Blocker = %v, wantBlocked %v", res.Blocker, c.wantBlocked)
			}
		})
	}
}

// If clamping would require moving further than the requested distance,
// the tentative position stands even though it still penetrates.
func TestMoveClampValidityRule(t *testing.T) {
	obstacle := &box{id: "ob", x: 0, y: 100, w: 100, h: 10}
	// Start deep inside the obstacle; resting position (89) is further
	// than the requested 2 units away.
	e := &box{id: "e", x: 10, y: 98, w: 10, h: 10}
	w := world{e, obstacle}

	res := Move(w, e, AxisY, 2, nil)
	if res.After != 100 {
		t.Fatalf("After = %v, want tentative 100", res.After)
	}
	if res.Blocker != obstacle {
		t.Fatal("penetrating move must still report its blocker")
	}
}

// Only the first colliding body in store order is resolved, even when a
// nearer body also collides at the tentative position; the clamp can pull
// the mover straight through it.
func TestMoveSingleCollisionPerCall(t *testing.T) {
	far := &box{id: "far", x: 0, y: 120, w: 100, h: 2}
	near := &box{id: "near", x: 0, y: 116, w: 100, h: 1}
	e := &box{id: "e", x: 10, y: 100, w: 10, h: 10}
	// near collides too, but far is first in store order.
	w := world{e, far, near}

	res := Move(w, e, AxisY, 15, nil)
	if res.Blocker != far {
		t.Fatalf("Blocker = %v, want first body in store order", res.Blocker)
	}
	// Clamped against far only: 120 - 10 - Gap. The resolved box still
	// penetrates near; accepted single-collision policy.
	if want := 120.0 - 10 - Gap; res.After != want {
		t.Fatalf("After = %v, want %v", res.After, want)
	}
}

func TestMoveSkipsTraversable(t *testing.T) {
	coin := &box{id: "coin", x: 0, y: 110, w: 100, h: 10, pass: true}
	e := &box{id: "e", x: 10, y: 100, w: 10, h: 10}
	w := world{e, coin}

	res := Move(w, e, AxisY, 5, nil)
	if res.Moved != 5 || res.Blocker != nil {
		t.Fatalf("traversable body blocked the move: %+v", res)
	}
}

func TestMoveDisplacementNeverExceedsVelocity(t *testing.T) {
	obstacle := &box{id: "ob", x: 0, y: 120, w: 100, h: 10}
	for start := 100.0; start < 120; start++ {
		e := &box{id: "e", x: 10, y: start, w: 10, h: 10}
		w := world{e, obstacle}
		res := Move(w, e, AxisY, 6, nil)
		if math.Abs(res.Moved) > 6 {
			t.Fatalf("start %v: |Moved| = %v exceeds requested 6", start, math.Abs(res.Moved))
		}
	}
}
