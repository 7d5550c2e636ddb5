// Package sim advances a platformer stage one fixed tick at a time:
// gravity, elevator oscillation, jumping, and horizontal running, in that
// order, all resolved through the physics mover. The package owns every
// piece of cross-tick state (ground, jump counter, elevator velocities) so
// ticks stay deterministic for any stage implementation.
package sim

import (
	"github.com/mossfet/skylift/physics"
)

// Intents is the per-tick snapshot of the input latch. Fire is latched for
// parity with the input surface but has no behavior.
type Intents struct {
	Left  bool
	Right bool
	Jump  bool
	Fire  bool
}

// Stage is the scene view the orchestrator steps over.
type Stage interface {
	physics.World
	Player() physics.Body
	Elevators() []physics.Body
}

// Tuning holds the per-tick velocities and the jump length. Units are
// world units per tick; the vertical axis grows downward, so ascent
// velocities are negative.
type Tuning struct {
	Gravity     float64
	JumpVel     float64
	JumpTicks   int
	RunSpeed    float64
	ElevatorVel float64
}

// DefaultTuning returns the stock movement constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:     3,
		JumpVel:     -5,
		JumpTicks:   15,
		RunSpeed:    3,
		ElevatorVel: 1,
	}
}

// elevatorState is the persistent per-elevator state, keyed by body id and
// living for the lifetime of the sim.
type elevatorState struct {
	vel     float64
	started bool
	mounted bool
}

// Sim is the frame orchestrator. It must be stepped from a single
// goroutine; ticks never overlap.
type Sim struct {
	stage  Stage
	tune   Tuning
	events Queue

	jumpPrev   bool
	jumpTicks  int
	ground     physics.Body
	prevGround physics.Body
	facing     int
	elevators  map[string]*elevatorState
}

// New creates a Sim over stage. Zero tuning fields fall back to defaults.
func New(stage Stage, tune Tuning) *Sim {
	def := DefaultTuning()
	if tune.Gravity == 0 {
		tune.Gravity = def.Gravity
	}
	if tune.JumpVel == 0 {
		tune.JumpVel = def.JumpVel
	}
	if tune.JumpTicks == 0 {
		tune.JumpTicks = def.JumpTicks
	}
	if tune.RunSpeed == 0 {
		tune.RunSpeed = def.RunSpeed
	}
	if tune.ElevatorVel == 0 {
		tune.ElevatorVel = def.ElevatorVel
	}
	return &Sim{
		stage:     stage,
		tune:      tune,
		facing:    1,
		elevators: make(map[string]*elevatorState),
	}
}

// Events returns the queue of diagnostic events; drain it after each Step.
func (s *Sim) Events() *Queue {
	if s == nil {
		return nil
	}
	return &s.events
}

// Ground returns the body that fully blocked this tick's gravity move, or
// nil when the player is airborne.
func (s *Sim) Ground() physics.Body {
	if s == nil {
		return nil
	}
	return s.ground
}

// Facing returns the last non-zero run direction: -1 left, +1 right.
func (s *Sim) Facing() int {
	if s == nil {
		return 1
	}
	return s.facing
}

// JumpTicks returns the remaining forced-ascent ticks.
func (s *Sim) JumpTicks() int {
	if s == nil {
		return 0
	}
	return s.jumpTicks
}

// Step runs one fixed tick: gravity, elevators, jump, run. All state it
// consumes and produces lives on the Sim; in is the latch snapshot for
// this tick.
func (s *Sim) Step(in Intents) {
	if s == nil || s.stage == nil {
		return
	}
	player := s.stage.Player()
	if player == nil {
		return
	}

	totalDY := s.applyGravity(player)
	s.stepElevators(player)
	s.applyJump(player, in, totalDY)
	s.applyRun(player, in)

	s.jumpPrev = in.Jump
	s.prevGround = s.ground
}

// applyGravity moves the player down by the gravity velocity. A fully
// blocked move establishes this tick's ground.
func (s *Sim) applyGravity(player physics.Body) float64 {
	s.ground = nil
	res := physics.Move(s.stage, player, physics.AxisY, s.tune.Gravity, func(b physics.Body) {
		s.ground = b
	})
	if s.ground != nil && s.prevGround == nil {
		s.events.Push(Event{Kind: Landed, Body: player.ID(), Other: s.ground.ID()})
	}
	return res.Moved
}

// stepElevators advances every elevator and couples the player's motion to
// the one it stands on. The player's ride move runs before the elevator's
// own move so an ascending platform never collides with its rider.
func (s *Sim) stepElevators(player physics.Body) {
	for _, elev := range s.stage.Elevators() {
		if elev == nil {
			continue
		}
		st := s.elevators[elev.ID()]
		if st == nil {
			st = &elevatorState{}
			s.elevators[elev.ID()] = st
		}
		if !st.started {
			st.started = true
			st.vel = s.tune.ElevatorVel
		}

		riding := s.ground == elev
		if riding && !st.mounted {
			s.events.Push(Event{Kind: Mounted, Body: elev.ID(), Other: player.ID()})
		}
		st.mounted = riding

		if riding {
			ride := physics.Move(s.stage, player, physics.AxisY, st.vel, nil)
			// Self-contact with the platform underfoot is not a squeeze.
			if ride.Blocked() && ride.Blocker != elev {
				s.events.Push(Event{Kind: ElevatorStopped, Body: elev.ID(), Other: ride.Blocker.ID()})
			}
		}

		res := physics.Move(s.stage, elev, physics.AxisY, st.vel, nil)
		if res.Blocked() {
			// Uniform reversal: scenery and player block alike.
			st.vel = -st.vel
			s.events.Push(Event{Kind: ElevatorInverted, Body: elev.ID(), Other: res.Blocker.ID()})
		}
	}
}

// applyJump triggers a grounded jump on the rising edge of the jump intent
// and sustains the forced ascent while the counter runs. An ascent tick
// whose total vertical displacement is exactly zero hit a roof; the jump
// aborts immediately.
func (s *Sim) applyJump(player physics.Body, in Intents, totalDY float64) {
	if in.Jump && !s.jumpPrev && s.ground != nil {
		s.jumpTicks = s.tune.JumpTicks
		s.events.Push(Event{Kind: Jumping, Body: player.ID()})
	}
	if s.jumpTicks <= 0 {
		return
	}
	s.jumpTicks--
	res := physics.Move(s.stage, player, physics.AxisY, s.tune.JumpVel, nil)
	totalDY += res.Moved
	if totalDY == 0 && s.jumpTicks > 0 {
		s.jumpTicks = 0
		s.events.Push(Event{Kind: RoofHit, Body: player.ID()})
	}
}

// applyRun derives the run direction from the left/right intents (both or
// neither cancel out) and moves the player horizontally.
func (s *Sim) applyRun(player physics.Body, in Intents) {
	running := 0.0
	switch {
	case in.Left && !in.Right:
		running = -1
		s.facing = -1
	case in.Right && !in.Left:
		running = 1
		s.facing = 1
	}
	if running == 0 {
		return
	}
	physics.Move(s.stage, player, physics.AxisX, s.tune.RunSpeed*running, nil)
}
