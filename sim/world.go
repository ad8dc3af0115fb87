package sim

import (
	"github.com/solarlune/resolv"

	"github.com/automoto/orbitfall/gamemath"
)

// Resolv tags for the broadphase space.
const (
	tagPlayer = "player"
	tagDebris = "debris"
	tagGoal   = "goal"
)

// spacePad keeps every broadphase AABB inside the resolv space even while a
// body is being pushed back onto the boundary.
const spacePad = 64.0

// headingSpeedEpsilon is the speed below which the player's heading holds
// its last value instead of following the velocity.
const headingSpeedEpsilon = 0.5

// WorldConfig holds the physics feel parameters. Exposed as configuration
// rather than constants so they can be tuned by playtesting.
type WorldConfig struct {
	// Restitution scales the reflected radial speed on a boundary bounce.
	// Kept below 1 so bounces bleed energy.
	Restitution float64
	// MaxSpeed is a hard clamp on any dynamic body's speed.
	MaxSpeed float64
	// MaxStepDisplacement bounds how far a body may travel in a single
	// step, preventing tunneling through the boundary.
	MaxStepDisplacement float64
}

// World owns all bodies for one level and advances them under an applied
// gravity vector. Step is deterministic: the same body states and force
// inputs always produce the same result.
type World struct {
	arena  Arena
	cfg    WorldConfig
	player *Body
	goal   *Body
	debris []*Body

	// Broadphase: one AABB per body in a resolv space, queried for
	// candidate pairs before the exact circle test.
	space   *resolv.Space
	handles map[*Body]*resolv.Object
	offset  float64

	dynamic []*Body
	events  []Event
}

// NewWorld builds a physics world from a generated layout. The layout's
// bodies are copied; the layout itself is not retained.
func NewWorld(layout *Layout, cfg WorldConfig) *World {
	w := &World{
		arena:   layout.Arena,
		cfg:     cfg,
		handles: map[*Body]*resolv.Object{},
		offset:  layout.Arena.Radius + spacePad,
	}

	side := int(2 * w.offset)
	w.space = resolv.NewSpace(side, side, 32, 32)

	player := layout.Player
	w.player = &player
	w.addHandle(w.player, tagPlayer)

	goal := layout.Goal
	w.goal = &goal
	w.addHandle(w.goal, tagGoal)

	w.debris = make([]*Body, len(layout.Debris))
	for i := range layout.Debris {
		d := layout.Debris[i]
		w.debris[i] = &d
		w.addHandle(w.debris[i], tagDebris)
	}

	w.dynamic = append([]*Body{w.player}, w.debris...)
	return w
}

func (w *World) addHandle(b *Body, tag string) {
	obj := resolv.NewObject(
		b.Pos.X-b.Radius+w.offset,
		b.Pos.Y-b.Radius+w.offset,
		2*b.Radius, 2*b.Radius,
		tag,
	)
	obj.Data = b
	w.space.Add(obj)
	w.handles[b] = obj
}

func (w *World) syncHandle(b *Body) {
	obj := w.handles[b]
	obj.X = b.Pos.X - b.Radius + w.offset
	obj.Y = b.Pos.Y - b.Radius + w.offset
	obj.Update()
}

// Step advances every dynamic body by dt under the given gravity vector,
// with thrust applied to the player along its heading, and returns the
// collision events that occurred. The returned slice is reused between
// calls and valid until the next Step.
func (w *World) Step(dt float64, gravity gamemath.Vec, thrust float64) []Event {
	w.events = w.events[:0]
	if dt <= 0 {
		return w.events
	}

	for _, b := range w.dynamic {
		accel := gravity
		if b.Role == RolePlayer {
			accel = accel.Add(gamemath.FromAngle(b.Heading, thrust))
		}

		// Semi-implicit Euler: velocity first, then position.
		b.Vel = b.Vel.Add(accel.Scale(dt))
		if !b.Vel.IsFinite() {
			b.Vel = gamemath.Vec{}
		}
		b.Vel = gamemath.ClampMagnitude(b.Vel, w.cfg.MaxSpeed)

		disp := gamemath.ClampMagnitude(b.Vel.Scale(dt), w.cfg.MaxStepDisplacement)
		b.Pos = b.Pos.Add(disp)

		w.contain(b)
	}

	// The player's forward direction follows its travel direction once it
	// is actually moving; thrust can therefore never reverse it.
	if w.player.Vel.Length() > headingSpeedEpsilon {
		w.player.Heading = w.player.Vel.Angle()
	}

	w.bounceDebris()

	for _, b := range w.dynamic {
		w.syncHandle(b)
	}

	w.collectContacts()
	return w.events
}

// contain reflects a body off the inside of the arena boundary. The position
// is corrected to lie exactly on the boundary and the outward radial velocity
// component is negated and scaled by the restitution coefficient.
func (w *World) contain(b *Body) {
	dist := b.Pos.Length()
	if dist+b.Radius <= w.arena.Radius {
		return
	}

	n := b.Pos.Normalize()
	if dist == 0 {
		n = gamemath.Vec{X: 1}
	}

	b.Pos = n.Scale(w.arena.Radius - b.Radius)

	radial := b.Vel.Dot(n)
	if radial > 0 {
		b.Vel = b.Vel.Sub(n.Scale((1 + w.cfg.Restitution) * radial))
	}
}

// bounceDebris resolves debris-debris overlaps as elastic circle impulses
// with area-proportional mass. Pairs are visited in slice order, keeping the
// resolution deterministic.
func (w *World) bounceDebris() {
	for i := 0; i < len(w.debris); i++ {
		for j := i + 1; j < len(w.debris); j++ {
			a, b := w.debris[i], w.debris[j]
			delta := b.Pos.Sub(a.Pos)
			dist := delta.Length()
			minDist := a.Radius + b.Radius
			if dist >= minDist || dist == 0 {
				continue
			}

			n := delta.Scale(1 / dist)
			relative := a.Vel.Sub(b.Vel).Dot(n)
			if relative < 0 {
				// Already separating.
				continue
			}

			total := a.Mass + b.Mass
			impulse := 2 * relative / total
			a.Vel = a.Vel.Sub(n.Scale(impulse * b.Mass))
			b.Vel = b.Vel.Add(n.Scale(impulse * a.Mass))

			// Split the overlap by mass ratio so neither body tunnels.
			overlap := minDist - dist
			a.Pos = a.Pos.Sub(n.Scale(overlap * b.Mass / total))
			b.Pos = b.Pos.Add(n.Scale(overlap * a.Mass / total))

			// The split can shove a body past the wall when the pair
			// resolves right against it.
			w.contain(a)
			w.contain(b)
		}
	}
}

// collectContacts runs the player's broadphase query and emits collision
// events for exact circle overlaps.
func (w *World) collectContacts() {
	obj := w.handles[w.player]

	if check := obj.Check(0, 0, tagDebris); check != nil {
		for _, cand := range check.Objects {
			d := cand.Data.(*Body)
			if gamemath.CirclesOverlap(w.player.Pos, w.player.Radius, d.Pos, d.Radius) {
				w.events = append(w.events, Event{Kind: EventPlayerHitDebris})
				break
			}
		}
	}

	if check := obj.Check(0, 0, tagGoal); check != nil {
		for _, cand := range check.Objects {
			g := cand.Data.(*Body)
			if gamemath.CirclesOverlap(w.player.Pos, w.player.Radius, g.Pos, g.Radius) {
				w.events = append(w.events, Event{Kind: EventPlayerReachedGoal})
				break
			}
		}
	}
}

// Arena returns the level's boundary geometry.
func (w *World) Arena() Arena {
	return w.arena
}

// Player returns a copy of the player body.
func (w *World) Player() Body {
	return *w.player
}

// AppendBodies appends a snapshot of every body (player, debris, goal) to
// dst and returns it.
func (w *World) AppendBodies(dst []BodySnapshot) []BodySnapshot {
	for _, b := range w.dynamic {
		dst = append(dst, BodySnapshot{
			Role:    b.Role,
			Pos:     b.Pos,
			Vel:     b.Vel,
			Radius:  b.Radius,
			Heading: b.Heading,
		})
	}
	dst = append(dst, BodySnapshot{
		Role:   w.goal.Role,
		Pos:    w.goal.Pos,
		Radius: w.goal.Radius,
	})
	return dst
}
