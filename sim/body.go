package sim

import "github.com/automoto/orbitfall/gamemath"

// Role tags what a body is to the rules of the game.
type Role int

const (
	RolePlayer Role = iota
	RoleDebris
	RoleGoal
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "Player"
	case RoleDebris:
		return "Debris"
	case RoleGoal:
		return "Goal"
	}
	return "Unknown"
}

// Body is a circular rigid body. All positions are world units with the
// arena center at the origin.
type Body struct {
	Role   Role
	Pos    gamemath.Vec
	Vel    gamemath.Vec
	Radius float64
	// Mass only matters for debris-debris impulses; area-proportional.
	Mass float64
	// Heading is the player's forward direction in radians. Unused for
	// other roles.
	Heading float64
}

// Arena is the hollow circular boundary, centered on the world origin.
// Immutable for the duration of a level.
type Arena struct {
	Radius float64
}

// Contains reports whether the body lies fully inside the arena.
func (a Arena) Contains(b Body) bool {
	return b.Pos.Length()+b.Radius <= a.Radius+containSlack
}

// containSlack absorbs floating-point error in containment checks.
const containSlack = 1e-9
