package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer all drawing systems register on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// ArenaConfig contains arena geometry values
type ArenaConfig struct {
	Radius       float64
	WallStroke   float64 // boundary ring thickness in pixels
	StarPoints   int     // points on the decorative central star
	StarOuter    float64 // outer radius of the star
	StarInner    float64 // inner radius of the star
	StarSpinRate float64 // radians per second
}

// GravityFieldConfig contains the player-steered gravity parameters
type GravityFieldConfig struct {
	MaxIntensity  float64 // acceleration magnitude bound, px/s^2
	RampPerSecond float64 // intensity change rate while a key is held
	BaseAngle     float64 // direction of positive intensity (screen down)
	Initial       float64 // intensity at level start
}

// ThrustFieldConfig contains the player drive parameters
type ThrustFieldConfig struct {
	Max            float64
	AccelPerSecond float64
	BrakePerSecond float64
}

// PhysicsFieldConfig contains world integration parameters
type PhysicsFieldConfig struct {
	Restitution         float64
	MaxSpeed            float64
	MaxStepDisplacement float64
}

// DifficultyFieldConfig contains the level scaling parameters
type DifficultyFieldConfig struct {
	BaseDebris        int
	DebrisPerLevel    int
	MaxDebris         int
	DebrisSpeed       float64
	SpeedGrowth       float64
	MaxDebrisSpeed    float64
	MinDebrisRadius   float64
	MaxDebrisRadius   float64
	TimeBudget        float64
	PlayerRadius      float64
	GoalRadius        float64
	MinGoalSeparation float64
}

// GameplayConfig bundles every simulation feel parameter. Tuning overrides
// (see tuning.go) are applied to this struct before a session starts.
type GameplayConfig struct {
	Arena      ArenaConfig
	Gravity    GravityFieldConfig
	Thrust     ThrustFieldConfig
	Physics    PhysicsFieldConfig
	Difficulty DifficultyFieldConfig

	IntroSeconds     float64 // level intro freeze
	GameOverSeconds  float64 // auto-dismiss delay on the game over screen
	CountdownWarning int     // seconds left at which the countdown turns urgent
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin        float64
	GaugeWidth    float64
	GaugeHeight   float64
	GaugeBgColor  color.RGBA
	GaugePosColor color.RGBA
	GaugeNegColor color.RGBA
	TextColor     color.RGBA
	WarnColor     color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	TitleColor color.RGBA
	TextColor  color.RGBA
	TitleY     float64
	TextStartY float64
	LineHeight float64
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
}

// WorldColors contains the palette for the arena and its bodies
type WorldColors struct {
	Background color.RGBA
	Wall       color.RGBA
	Star       color.RGBA
	Player     color.RGBA
	Debris     color.RGBA
	Goal       color.RGBA
	GravityRay color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool  // Skip menu and go directly to game
	Seed       int64 // Fixed session seed (0 = derive from time)
	Fullscreen bool
	TuningFile string // Optional gameplay tuning override file
}

// Global configuration instances
var C *Config
var Gameplay GameplayConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Pause PauseConfig
var World WorldColors
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 720,
	}

	Gameplay = GameplayConfig{
		Arena: ArenaConfig{
			Radius:       336,
			WallStroke:   4,
			StarPoints:   5,
			StarOuter:    36,
			StarInner:    14,
			StarSpinRate: 0.35,
		},
		Gravity: GravityFieldConfig{
			MaxIntensity:  420,
			RampPerSecond: 840,
			BaseAngle:     math.Pi / 2,
			Initial:       210,
		},
		Thrust: ThrustFieldConfig{
			Max:            160,
			AccelPerSecond: 320,
			BrakePerSecond: 480,
		},
		Physics: PhysicsFieldConfig{
			Restitution:         0.55,
			MaxSpeed:            640,
			MaxStepDisplacement: 24,
		},
		Difficulty: DifficultyFieldConfig{
			BaseDebris:        16,
			DebrisPerLevel:    2,
			MaxDebris:         60,
			DebrisSpeed:       48,
			SpeedGrowth:       7,
			MaxDebrisSpeed:    180,
			MinDebrisRadius:   7,
			MaxDebrisRadius:   20,
			TimeBudget:        30,
			PlayerRadius:      11,
			GoalRadius:        15,
			MinGoalSeparation: 1.6,
		},
		IntroSeconds:     1.5,
		GameOverSeconds:  5,
		CountdownWarning: 5,
	}

	HUD = HUDConfig{
		Margin:        12,
		GaugeWidth:    160,
		GaugeHeight:   14,
		GaugeBgColor:  color.RGBA{R: 40, G: 40, B: 40, A: 255},
		GaugePosColor: Orange,
		GaugeNegColor: LightBlue,
		TextColor:     White,
		WarnColor:     LightRed,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 8, G: 10, B: 24, A: 255},
		TitleColor:        Yellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            220,
		MenuStartY:        340,
		MenuItemHeight:    36,
	}

	GameOver = GameOverConfig{
		TitleColor: Red,
		TextColor:  White,
		TitleY:     260,
		TextStartY: 340,
		LineHeight: 30,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
	}

	World = WorldColors{
		Background: color.RGBA{R: 4, G: 6, B: 16, A: 255},
		Wall:       color.RGBA{R: 120, G: 130, B: 180, A: 255},
		Star:       Yellow,
		Player:     color.RGBA{R: 240, G: 240, B: 255, A: 255},
		Debris:     color.RGBA{R: 150, G: 110, B: 90, A: 255},
		Goal:       Green,
		GravityRay: color.RGBA{R: 255, G: 180, B: 50, A: 90},
	}
}
