package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/orbitfall/sim"
)

// GameData holds the running simulation session and the state the render
// systems read each frame.
type GameData struct {
	Session  *sim.Session
	Snapshot sim.Snapshot

	Paused bool

	// BestLevel is the highest level reached across runs, loaded from disk.
	BestLevel int

	// EndTimer delays the scene transition after a win or loss so the
	// final moment stays on screen briefly.
	EndTimer float64

	// Over is set once the session has ended and the transition to the
	// game over scene is pending.
	Over bool

	// NewBest records whether this run set a new best level.
	NewBest bool
}

// Game is the component type for the session singleton
var Game = donburi.NewComponentType[GameData]()
