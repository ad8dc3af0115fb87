package sim

import "github.com/automoto/orbitfall/gamemath"

// GravityConfig shapes the player-steered global gravity field.
type GravityConfig struct {
	// MaxIntensity is the magnitude bound; intensity stays in
	// [-MaxIntensity, MaxIntensity].
	MaxIntensity float64
	// RampPerSecond is how fast held input moves the intensity.
	RampPerSecond float64
	// BaseAngle is the direction of positive intensity.
	BaseAngle float64
	// Initial is the intensity at level start.
	Initial float64
}

// ThrustConfig shapes the player's forward drive.
type ThrustConfig struct {
	Max            float64
	AccelPerSecond float64
	BrakePerSecond float64
}

// GravityController turns held input into a signed gravity intensity and a
// thrust magnitude. Intensity ramps toward +-MaxIntensity while a gravity
// key is held and holds its value when none is; thrust ramps up under
// Forward, down under Brake, and likewise holds otherwise.
type GravityController struct {
	gravity GravityConfig
	thrust  ThrustConfig

	intensity float64
	drive     float64
}

func NewGravityController(gravity GravityConfig, thrust ThrustConfig) *GravityController {
	return &GravityController{
		gravity:   gravity,
		thrust:    thrust,
		intensity: gamemath.Clamp(gravity.Initial, -gravity.MaxIntensity, gravity.MaxIntensity),
	}
}

// Reset restores the level-start intensity and zero thrust.
func (c *GravityController) Reset() {
	c.intensity = gamemath.Clamp(c.gravity.Initial, -c.gravity.MaxIntensity, c.gravity.MaxIntensity)
	c.drive = 0
}

// Update advances the controller by dt under the given input and returns
// the gravity vector and thrust magnitude to apply this step.
func (c *GravityController) Update(dt float64, in InputState) (gamemath.Vec, float64) {
	if dt < 0 {
		dt = 0
	}

	switch {
	case in.GravityDown && !in.GravityUp:
		c.intensity = gamemath.MoveToward(c.intensity, c.gravity.MaxIntensity, c.gravity.RampPerSecond*dt)
	case in.GravityUp && !in.GravityDown:
		c.intensity = gamemath.MoveToward(c.intensity, -c.gravity.MaxIntensity, c.gravity.RampPerSecond*dt)
	}

	switch {
	case in.Brake:
		c.drive = gamemath.MoveToward(c.drive, 0, c.thrust.BrakePerSecond*dt)
	case in.Forward:
		c.drive = gamemath.MoveToward(c.drive, c.thrust.Max, c.thrust.AccelPerSecond*dt)
	}

	return gamemath.FromAngle(c.gravity.BaseAngle, c.intensity), c.drive
}

// Intensity reports the current signed gravity intensity.
func (c *GravityController) Intensity() float64 {
	return c.intensity
}

// Thrust reports the current thrust magnitude.
func (c *GravityController) Thrust() float64 {
	return c.drive
}
