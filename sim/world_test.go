package sim

import (
	"math"
	"testing"

	"github.com/automoto/orbitfall/gamemath"
)

func testWorldConfig() WorldConfig {
	return WorldConfig{
		Restitution:         0.6,
		MaxSpeed:            600,
		MaxStepDisplacement: 24,
	}
}

func testLayout(debris []Body) *Layout {
	return &Layout{
		Arena: Arena{Radius: 300},
		Player: Body{
			Role:    RolePlayer,
			Pos:     gamemath.Vec{Y: -270},
			Radius:  10,
			Mass:    100,
			Heading: math.Pi / 2,
		},
		Goal: Body{
			Role:   RoleGoal,
			Pos:    gamemath.Vec{Y: 270},
			Radius: 14,
			Mass:   196,
		},
		Debris: debris,
	}
}

func TestStepKeepsBodiesInsideArena(t *testing.T) {
	debris := []Body{
		{Role: RoleDebris, Pos: gamemath.Vec{X: 100}, Vel: gamemath.Vec{X: 80}, Radius: 12, Mass: 144},
		{Role: RoleDebris, Pos: gamemath.Vec{X: -50, Y: 120}, Vel: gamemath.Vec{Y: -90}, Radius: 8, Mass: 64},
	}
	w := NewWorld(testLayout(debris), testWorldConfig())
	gravity := gamemath.Vec{Y: 200}

	for i := 0; i < 600; i++ {
		w.Step(1.0/60, gravity, 50)
		for _, b := range w.dynamic {
			if !w.arena.Contains(*b) {
				t.Fatalf("step %d: body %s at %+v (r=%v) escaped arena", i, b.Role, b.Pos, b.Radius)
			}
		}
	}
}

func TestDebrisPairResolvingAtWallStaysContained(t *testing.T) {
	// A pair colliding right against the boundary: the overlap split would
	// push the outer body past the wall without re-containment.
	debris := []Body{
		{Role: RoleDebris, Pos: gamemath.Vec{X: 275}, Vel: gamemath.Vec{X: 60}, Radius: 10, Mass: 100},
		{Role: RoleDebris, Pos: gamemath.Vec{X: 289}, Radius: 10, Mass: 100},
	}
	w := NewWorld(testLayout(debris), testWorldConfig())

	for i := 0; i < 120; i++ {
		w.Step(1.0/60, gamemath.Vec{}, 0)
		for _, d := range w.debris {
			if !w.arena.Contains(*d) {
				t.Fatalf("step %d: debris at %+v (r=%v) outside arena after pair resolution",
					i, d.Pos, d.Radius)
			}
		}
	}
}

func TestStepIsDeterministic(t *testing.T) {
	debris := []Body{
		{Role: RoleDebris, Pos: gamemath.Vec{X: 60, Y: 40}, Vel: gamemath.Vec{X: -30, Y: 20}, Radius: 12, Mass: 144},
		{Role: RoleDebris, Pos: gamemath.Vec{X: 30, Y: 40}, Vel: gamemath.Vec{X: 30, Y: 20}, Radius: 12, Mass: 144},
	}
	a := NewWorld(testLayout(debris), testWorldConfig())
	b := NewWorld(testLayout(debris), testWorldConfig())
	gravity := gamemath.Vec{Y: 150}

	for i := 0; i < 300; i++ {
		a.Step(1.0/60, gravity, 25)
		b.Step(1.0/60, gravity, 25)
	}

	pa, pb := a.Player(), b.Player()
	if pa.Pos != pb.Pos || pa.Vel != pb.Vel {
		t.Fatalf("player diverged: %+v vs %+v", pa, pb)
	}
	for i := range a.debris {
		if a.debris[i].Pos != b.debris[i].Pos || a.debris[i].Vel != b.debris[i].Vel {
			t.Fatalf("debris %d diverged: %+v vs %+v", i, *a.debris[i], *b.debris[i])
		}
	}
}

func TestBoundaryBounceReflectsAndDamps(t *testing.T) {
	layout := testLayout(nil)
	layout.Player.Pos = gamemath.Vec{X: 295}
	layout.Player.Vel = gamemath.Vec{X: 120}
	w := NewWorld(layout, testWorldConfig())

	w.Step(1.0/60, gamemath.Vec{}, 0)

	p := w.Player()
	if p.Vel.X >= 0 {
		t.Fatalf("expected inward velocity after bounce, got %+v", p.Vel)
	}
	if got := math.Abs(p.Vel.X); got > 120 {
		t.Fatalf("bounce gained energy: |vx|=%v", got)
	}
	if dist := p.Pos.Length(); dist+p.Radius > w.arena.Radius+1e-9 {
		t.Fatalf("player left outside boundary: dist=%v r=%v", dist, p.Radius)
	}
}

func TestGoalContactEmitsEvent(t *testing.T) {
	layout := testLayout(nil)
	layout.Player.Pos = gamemath.Vec{Y: 250}
	layout.Player.Vel = gamemath.Vec{Y: 60}
	w := NewWorld(layout, testWorldConfig())

	var got bool
	for i := 0; i < 60 && !got; i++ {
		for _, e := range w.Step(1.0/60, gamemath.Vec{}, 0) {
			if e.Kind == EventPlayerReachedGoal {
				got = true
			}
		}
	}
	if !got {
		t.Fatal("player drifting into goal never emitted EventPlayerReachedGoal")
	}
}

func TestDebrisContactEmitsEvent(t *testing.T) {
	debris := []Body{
		{Role: RoleDebris, Pos: gamemath.Vec{Y: -230}, Radius: 12, Mass: 144},
	}
	layout := testLayout(debris)
	layout.Player.Vel = gamemath.Vec{Y: 80}
	w := NewWorld(layout, testWorldConfig())

	var got bool
	for i := 0; i < 60 && !got; i++ {
		for _, e := range w.Step(1.0/60, gamemath.Vec{}, 0) {
			if e.Kind == EventPlayerHitDebris {
				got = true
			}
		}
	}
	if !got {
		t.Fatal("player drifting into debris never emitted EventPlayerHitDebris")
	}
}

func TestDebrisCollisionConservesMomentum(t *testing.T) {
	debris := []Body{
		{Role: RoleDebris, Pos: gamemath.Vec{X: -20}, Vel: gamemath.Vec{X: 60}, Radius: 12, Mass: 144},
		{Role: RoleDebris, Pos: gamemath.Vec{X: 20}, Vel: gamemath.Vec{X: -60}, Radius: 12, Mass: 144},
	}
	w := NewWorld(testLayout(debris), testWorldConfig())

	momentum := func() gamemath.Vec {
		var m gamemath.Vec
		for _, d := range w.debris {
			m = m.Add(d.Vel.Scale(d.Mass))
		}
		return m
	}

	before := momentum()
	for i := 0; i < 120; i++ {
		w.Step(1.0/60, gamemath.Vec{}, 0)
	}
	after := momentum()

	if math.Abs(before.X-after.X) > 1e-6 || math.Abs(before.Y-after.Y) > 1e-6 {
		t.Fatalf("debris momentum drifted: %+v -> %+v", before, after)
	}
}

func TestNonFiniteVelocityIsZeroed(t *testing.T) {
	layout := testLayout(nil)
	layout.Player.Vel = gamemath.Vec{X: math.NaN()}
	w := NewWorld(layout, testWorldConfig())

	w.Step(1.0/60, gamemath.Vec{}, 0)

	p := w.Player()
	if !p.Vel.IsFinite() || !p.Pos.IsFinite() {
		t.Fatalf("non-finite state survived a step: %+v", p)
	}
}
