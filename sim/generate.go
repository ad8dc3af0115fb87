package sim

import (
	"errors"
	"math"
	"math/rand"

	"github.com/automoto/orbitfall/gamemath"
)

// ErrGenerationInfeasible reports that a valid layout could not be found for
// the requested parameters, even after relaxing placement margins.
var ErrGenerationInfeasible = errors.New("sim: level generation infeasible")

// Layout is a generated level: the arena plus every initial body state.
type Layout struct {
	Arena  Arena
	Player Body
	Goal   Body
	Debris []Body
}

const (
	// placementAttempts bounds how many candidate positions are sampled
	// per debris body before the margin is relaxed.
	placementAttempts = 64
	// marginRelaxations bounds how many times the clearance margin is
	// shrunk before giving up.
	marginRelaxations = 4
	// relaxationFactor shrinks the clearance margin on each relaxation.
	relaxationFactor = 0.5
	// initialClearance is the starting free-space margin, in multiples of
	// the placed body's radius, kept around every debris body.
	initialClearance = 1.5
	// rimInset places the player and goal this many player radii inside
	// the boundary.
	rimInset = 3.0
)

// Generator produces level layouts. Generate is deterministic: the same
// params and seed always produce the same layout.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds a layout for the given parameters using the seed as the
// sole source of randomness. The player spawns near the bottom rim heading
// toward the goal, the goal spawns at least MinGoalSeparation radians away
// along the rim, and debris is scattered with clearance from the player,
// the goal, and each other. Returns ErrGenerationInfeasible when no valid
// placement exists for some debris body.
func (g *Generator) Generate(params LevelParams, seed int64) (*Layout, error) {
	rng := rand.New(rand.NewSource(seed))
	arena := Arena{Radius: params.ArenaRadius}

	// Screen coordinates grow downward, so +pi/2 is the bottom of the arena.
	playerAngle := math.Pi / 2
	playerPos := gamemath.FromAngle(playerAngle, arena.Radius-rimInset*params.PlayerRadius)

	goalAngle := g.goalAngle(rng, playerAngle, params.MinGoalSeparation)
	goalPos := gamemath.FromAngle(goalAngle, arena.Radius-rimInset*params.GoalRadius)

	player := Body{
		Role:    RolePlayer,
		Pos:     playerPos,
		Radius:  params.PlayerRadius,
		Mass:    params.PlayerRadius * params.PlayerRadius,
		Heading: goalPos.Sub(playerPos).Angle(),
	}
	goal := Body{
		Role:   RoleGoal,
		Pos:    goalPos,
		Radius: params.GoalRadius,
		Mass:   params.GoalRadius * params.GoalRadius,
	}

	layout := &Layout{
		Arena:  arena,
		Player: player,
		Goal:   goal,
		Debris: make([]Body, 0, params.DebrisCount),
	}

	for i := 0; i < params.DebrisCount; i++ {
		d, ok := g.placeDebris(rng, params, layout)
		if !ok {
			return nil, ErrGenerationInfeasible
		}
		layout.Debris = append(layout.Debris, d)
	}

	return layout, nil
}

// goalAngle picks the goal's rim angle uniformly from the arc that keeps at
// least minSep radians of angular distance from the player.
func (g *Generator) goalAngle(rng *rand.Rand, playerAngle, minSep float64) float64 {
	if minSep < 0 {
		minSep = 0
	}
	if minSep > math.Pi {
		minSep = math.Pi
	}
	span := 2 * (math.Pi - minSep)
	if span <= 0 {
		return playerAngle + math.Pi
	}
	return playerAngle + minSep + rng.Float64()*span
}

// placeDebris samples candidate positions for one debris body, shrinking the
// clearance margin when the arena is too crowded. The body's drift velocity
// points in a uniform random direction at the level's debris speed.
func (g *Generator) placeDebris(rng *rand.Rand, params LevelParams, layout *Layout) (Body, bool) {
	radius := params.MinDebrisRadius
	if span := params.MaxDebrisRadius - params.MinDebrisRadius; span > 0 {
		radius += rng.Float64() * span
	}

	margin := initialClearance * radius
	for relax := 0; relax <= marginRelaxations; relax++ {
		for attempt := 0; attempt < placementAttempts; attempt++ {
			// sqrt keeps the distribution uniform over the disc area.
			maxDist := layout.Arena.Radius - radius
			dist := maxDist * math.Sqrt(rng.Float64())
			angle := rng.Float64() * 2 * math.Pi
			pos := gamemath.FromAngle(angle, dist)

			if !g.clearOf(pos, radius+margin, layout) {
				continue
			}

			dir := rng.Float64() * 2 * math.Pi
			return Body{
				Role:   RoleDebris,
				Pos:    pos,
				Vel:    gamemath.FromAngle(dir, params.DebrisSpeed),
				Radius: radius,
				Mass:   radius * radius,
			}, true
		}
		margin *= relaxationFactor
	}
	return Body{}, false
}

// clearOf reports whether a circle at pos with the given padded radius
// avoids the player, the goal, and all placed debris.
func (g *Generator) clearOf(pos gamemath.Vec, padded float64, layout *Layout) bool {
	if gamemath.CirclesOverlap(pos, padded, layout.Player.Pos, layout.Player.Radius) {
		return false
	}
	if gamemath.CirclesOverlap(pos, padded, layout.Goal.Pos, layout.Goal.Radius) {
		return false
	}
	for i := range layout.Debris {
		d := &layout.Debris[i]
		if gamemath.CirclesOverlap(pos, padded, d.Pos, d.Radius) {
			return false
		}
	}
	return true
}
