package components

import "github.com/yohamta/donburi"

// GameOverData stores the state of the game over screen
type GameOverData struct {
	ReachedLevel int
	BestLevel    int
	NewBest      bool

	// AutoDismiss counts down to an automatic return to the menu.
	AutoDismiss float64
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
