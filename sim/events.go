// Package sim is the headless gameplay core: physics, level generation,
// difficulty scaling and the per-level state machine. It has no knowledge of
// rendering, audio or input devices. The shell feeds it an InputState
// snapshot each tick and reads a Snapshot back out. Nothing in this package
// reads the clock or global random state, so a session is fully reproducible
// from its seed and input sequence.
package sim

import "github.com/automoto/orbitfall/gamemath"

// EventKind identifies a discrete simulation event.
type EventKind int

const (
	// EventLevelStart fires once when a level has been generated and the
	// intro begins.
	EventLevelStart EventKind = iota
	// EventCountdownTick fires whenever the whole-seconds value of the
	// remaining time changes.
	EventCountdownTick
	// EventPlayerHitDebris fires when the player overlaps a debris body.
	EventPlayerHitDebris
	// EventPlayerReachedGoal fires when the player overlaps the goal.
	EventPlayerReachedGoal
	// EventTimeExpired fires when the countdown reaches zero with the goal
	// not yet reached.
	EventTimeExpired
)

func (k EventKind) String() string {
	switch k {
	case EventLevelStart:
		return "LevelStart"
	case EventCountdownTick:
		return "CountdownTick"
	case EventPlayerHitDebris:
		return "PlayerHitDebris"
	case EventPlayerReachedGoal:
		return "PlayerReachedGoal"
	case EventTimeExpired:
		return "TimeExpired"
	}
	return "Unknown"
}

// Event is a discrete occurrence surfaced to the shell (audio, UI).
type Event struct {
	Kind EventKind
	// Level is set for EventLevelStart.
	Level int
	// Seconds is set for EventCountdownTick: whole seconds remaining.
	Seconds int
}

// InputState is the per-tick input snapshot handed to the core. The shell
// builds a fresh value every tick; the core never retains it.
type InputState struct {
	Forward     bool // accelerate along the current heading
	Brake       bool // decay thrust toward zero
	GravityUp   bool // drive the gravity field toward pointing up
	GravityDown bool // drive the gravity field toward pointing down
}

// BodySnapshot is the read-only per-body view handed to renderers.
type BodySnapshot struct {
	Role    Role
	Pos     gamemath.Vec
	Vel     gamemath.Vec
	Radius  float64
	Heading float64
}

// Snapshot is the read-only view of a session at the end of a tick.
type Snapshot struct {
	Level          int
	Status         Status
	Elapsed        float64
	Remaining      float64
	TimeBudget     float64
	IntroRemaining float64

	ArenaRadius float64

	// GravityIntensity is the signed scalar the player steers; Gravity is
	// the derived field vector applied to every dynamic body.
	GravityIntensity float64
	Gravity          gamemath.Vec
	Thrust           float64
	MaxThrust        float64

	Bodies []BodySnapshot
}
