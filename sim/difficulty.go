package sim

import "math"

// DifficultyConfig controls how level parameters scale with the level
// number.
type DifficultyConfig struct {
	// BaseDebris and DebrisPerLevel give the linear debris count ramp,
	// capped at MaxDebris.
	BaseDebris     int
	DebrisPerLevel int
	MaxDebris      int

	// DebrisSpeed is the base debris drift speed; it grows by
	// SpeedGrowth per level, capped at MaxDebrisSpeed.
	DebrisSpeed    float64
	SpeedGrowth    float64
	MaxDebrisSpeed float64

	MinDebrisRadius float64
	MaxDebrisRadius float64

	// TimeBudget is the per-level countdown in seconds.
	TimeBudget float64

	PlayerRadius float64
	GoalRadius   float64
	ArenaRadius  float64

	// MinGoalSeparation is the smallest angular distance, in radians,
	// between the player's and the goal's spawn angles.
	MinGoalSeparation float64
}

// LevelParams is the fully resolved recipe for one level.
type LevelParams struct {
	Level             int
	ArenaRadius       float64
	PlayerRadius      float64
	GoalRadius        float64
	DebrisCount       int
	DebrisSpeed       float64
	MinDebrisRadius   float64
	MaxDebrisRadius   float64
	TimeBudget        float64
	MinGoalSeparation float64
}

// maxPackingFraction bounds how much of the arena's area debris may claim,
// so every generated level remains solvable.
const maxPackingFraction = 0.3

// Scaler maps a level number to concrete level parameters. ParamsFor is
// pure: the same config and level always yield the same params.
type Scaler struct {
	cfg DifficultyConfig
}

func NewScaler(cfg DifficultyConfig) *Scaler {
	return &Scaler{cfg: cfg}
}

// ParamsFor resolves the parameters for the given level. Levels below 1 are
// treated as level 1. Debris count and speed grow monotonically with the
// level until their caps.
func (s *Scaler) ParamsFor(level int) LevelParams {
	if level < 1 {
		level = 1
	}

	count := s.cfg.BaseDebris + s.cfg.DebrisPerLevel*(level-1)
	if count > s.cfg.MaxDebris {
		count = s.cfg.MaxDebris
	}
	if count < 0 {
		count = 0
	}

	// Never ask the generator for more debris than the arena can hold.
	if limit := s.areaCap(); count > limit {
		count = limit
	}

	speed := s.cfg.DebrisSpeed + s.cfg.SpeedGrowth*float64(level-1)
	if speed > s.cfg.MaxDebrisSpeed {
		speed = s.cfg.MaxDebrisSpeed
	}
	if speed < 0 {
		speed = 0
	}

	budget := s.cfg.TimeBudget
	if budget < 0 {
		budget = 0
	}

	minR, maxR := s.cfg.MinDebrisRadius, s.cfg.MaxDebrisRadius
	if maxR < minR {
		maxR = minR
	}

	return LevelParams{
		Level:             level,
		ArenaRadius:       s.cfg.ArenaRadius,
		PlayerRadius:      s.cfg.PlayerRadius,
		GoalRadius:        s.cfg.GoalRadius,
		DebrisCount:       count,
		DebrisSpeed:       speed,
		MinDebrisRadius:   minR,
		MaxDebrisRadius:   maxR,
		TimeBudget:        budget,
		MinGoalSeparation: s.cfg.MinGoalSeparation,
	}
}

// areaCap is the debris count at which average-size debris would claim
// maxPackingFraction of the arena.
func (s *Scaler) areaCap() int {
	avg := (s.cfg.MinDebrisRadius + s.cfg.MaxDebrisRadius) / 2
	if avg <= 0 || s.cfg.ArenaRadius <= 0 {
		return 0
	}
	arenaArea := math.Pi * s.cfg.ArenaRadius * s.cfg.ArenaRadius
	debrisArea := math.Pi * avg * avg
	return int(maxPackingFraction * arenaArea / debrisArea)
}
