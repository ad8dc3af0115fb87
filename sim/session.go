package sim

import (
	"fmt"
	"math"

	"github.com/automoto/orbitfall/gamemath"
)

// Status is the session's lifecycle state for the current level.
type Status int

const (
	// StatusLevelIntro shows the level and freezes the simulation while
	// the intro timer runs down.
	StatusLevelIntro Status = iota
	// StatusPlaying is the live countdown phase.
	StatusPlaying
	// StatusWon means the player reached the goal; NextLevel advances.
	StatusWon
	// StatusLost means the player hit debris or ran out of time.
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusLevelIntro:
		return "level-intro"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// SessionConfig bundles everything a session needs to run levels.
type SessionConfig struct {
	World      WorldConfig
	Gravity    GravityConfig
	Thrust     ThrustConfig
	Difficulty DifficultyConfig

	// IntroSeconds is how long the level intro freeze lasts.
	IntroSeconds float64
}

// Session runs one play-through: it generates levels, steps the physics
// world under controller output, runs the countdown, and resolves win and
// loss. All randomness derives from the base seed, so two sessions with the
// same config, seed, and input sequence play out identically.
type Session struct {
	cfg        SessionConfig
	scaler     *Scaler
	generator  *Generator
	controller *GravityController

	baseSeed int64
	level    int
	status   Status

	world  *World
	params LevelParams

	elapsed        float64
	remaining      float64
	introRemaining float64

	gravity gamemath.Vec
	thrust  float64

	events []Event
	bodies []BodySnapshot
}

// NewSession starts a session at level 1. Returns an error only if level 1
// cannot be generated even after the debris fallback.
func NewSession(cfg SessionConfig, seed int64) (*Session, error) {
	s := &Session{
		cfg:        cfg,
		scaler:     NewScaler(cfg.Difficulty),
		generator:  NewGenerator(),
		controller: NewGravityController(cfg.Gravity, cfg.Thrust),
		baseSeed:   seed,
	}
	if err := s.startLevel(1); err != nil {
		return nil, err
	}
	return s, nil
}

// startLevel generates and installs the given level. If generation is
// infeasible the debris count is cut back and retried; any other failure is
// returned as-is.
func (s *Session) startLevel(level int) error {
	params := s.scaler.ParamsFor(level)
	seed := levelSeed(s.baseSeed, level)

	layout, err := s.generator.Generate(params, seed)
	for err != nil && params.DebrisCount > 0 {
		params.DebrisCount = params.DebrisCount * 3 / 4
		layout, err = s.generator.Generate(params, seed)
	}
	if err != nil {
		return fmt.Errorf("start level %d: %w", level, err)
	}

	s.level = level
	s.params = params
	s.world = NewWorld(layout, s.cfg.World)
	s.controller.Reset()

	s.elapsed = 0
	s.remaining = params.TimeBudget
	s.introRemaining = s.cfg.IntroSeconds
	s.gravity = gamemath.Vec{}
	s.thrust = 0

	if s.introRemaining > 0 {
		s.status = StatusLevelIntro
	} else {
		s.status = StatusPlaying
	}

	s.events = append(s.events[:0], Event{Kind: EventLevelStart, Level: level})
	return nil
}

// Tick advances the session by dt under the given input and returns the
// events raised this tick. The slice is reused and valid until the next
// Tick. Outside StatusPlaying and StatusLevelIntro the tick is a no-op.
func (s *Session) Tick(dt float64, in InputState) []Event {
	// Level-start events queued by startLevel are delivered on the first
	// tick after it; later ticks start from a clean queue.
	events := s.events
	s.events = s.events[:0]
	if len(events) > 0 && events[0].Kind != EventLevelStart {
		events = events[:0]
	}

	if dt <= 0 {
		return events
	}

	switch s.status {
	case StatusLevelIntro:
		s.introRemaining -= dt
		if s.introRemaining <= 0 {
			s.introRemaining = 0
			s.status = StatusPlaying
		}
		return events

	case StatusPlaying:
		// Fall through below.

	default:
		return events
	}

	s.gravity, s.thrust = s.controller.Update(dt, in)

	worldEvents := s.world.Step(dt, s.gravity, s.thrust)

	s.elapsed += dt
	before := s.remaining
	s.remaining -= dt
	if s.remaining < 0 {
		s.remaining = 0
	}

	// Loss beats win beats timeout when they land on the same tick.
	hit := containsKind(worldEvents, EventPlayerHitDebris)
	goal := containsKind(worldEvents, EventPlayerReachedGoal)

	switch {
	case hit:
		s.status = StatusLost
		events = append(events, Event{Kind: EventPlayerHitDebris, Level: s.level})
	case goal:
		s.status = StatusWon
		events = append(events, Event{Kind: EventPlayerReachedGoal, Level: s.level})
	case s.remaining == 0:
		s.status = StatusLost
		events = append(events, Event{Kind: EventTimeExpired, Level: s.level})
	default:
		if sec := wholeSecond(s.remaining); sec != wholeSecond(before) {
			events = append(events, Event{Kind: EventCountdownTick, Level: s.level, Seconds: sec})
		}
	}

	s.events = events[:0]
	return events
}

// NextLevel advances to the next level. It is only valid after a win.
func (s *Session) NextLevel() error {
	if s.status != StatusWon {
		return fmt.Errorf("next level from status %s", s.status)
	}
	return s.startLevel(s.level + 1)
}

// Restart begins a fresh play-through at level 1 with the same base seed.
func (s *Session) Restart() error {
	return s.startLevel(1)
}

// Status reports the session's current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Level reports the current level number.
func (s *Session) Level() int {
	return s.level
}

// Remaining reports the countdown seconds left.
func (s *Session) Remaining() float64 {
	return s.remaining
}

// Snapshot captures the observable session state for rendering. The body
// slice is reused between calls.
func (s *Session) Snapshot() Snapshot {
	s.bodies = s.world.AppendBodies(s.bodies[:0])
	return Snapshot{
		Level:            s.level,
		Status:           s.status,
		Elapsed:          s.elapsed,
		Remaining:        s.remaining,
		TimeBudget:       s.params.TimeBudget,
		IntroRemaining:   s.introRemaining,
		ArenaRadius:      s.world.Arena().Radius,
		GravityIntensity: s.controller.Intensity(),
		Gravity:          s.gravity,
		Thrust:           s.thrust,
		MaxThrust:        s.cfg.Thrust.Max,
		Bodies:           s.bodies,
	}
}

func containsKind(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// wholeSecond is the countdown value shown to the player: the number of
// full seconds still ahead.
func wholeSecond(remaining float64) int {
	return int(math.Ceil(remaining))
}

// levelSeed derives a per-level seed from the base seed via a splitmix64
// mixing step, so consecutive levels get uncorrelated streams.
func levelSeed(base int64, level int) int64 {
	z := uint64(base) + uint64(level)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
