package sim

// Kind identifies a diagnostic event emitted by the orchestrator.
type Kind string

const (
	// Landed fires on the tick the player gains a ground after having none.
	Landed Kind = "landed"
	// Mounted fires when the player's ground becomes a given elevator.
	Mounted Kind = "mounted"
	// ElevatorStopped fires when the player's coupled ride move is blocked
	// (platform squeeze).
	ElevatorStopped Kind = "elevator-stopped"
	// ElevatorInverted fires when an elevator reverses direction.
	ElevatorInverted Kind = "elevator-inverted"
	// Jumping fires on the tick a grounded jump is triggered.
	Jumping Kind = "jumping"
	// RoofHit fires when an ascent is aborted by a ceiling.
	RoofHit Kind = "roof-hit"
)

// Event is one diagnostic occurrence. Events are observable side effects
// only; nothing in the core consumes them.
type Event struct {
	Kind Kind
	// Body is the id of the primary body (the player, or the elevator for
	// elevator events).
	Body string
	// Other is the id of the blocking or ground body, when one is involved.
	Other string
}

// Queue is a FIFO of events produced during ticks. Drain it after each
// Step; it is not safe for concurrent use.
type Queue struct {
	items []Event
}

// Push adds an event.
func (q *Queue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all pending events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
