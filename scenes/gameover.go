package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/orbitfall/config"
	"github.com/automoto/orbitfall/systems"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	reachedLevel int
	bestLevel    int
	newBest      bool
}

// NewGameOverScene creates a new game over scene showing the run's results
func NewGameOverScene(sc SceneChanger, reached, best int, newBest bool) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		reachedLevel: reached,
		bestLevel:    best,
		newBest:      newBest,
	}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	systems.InitGameOver(gs.ecs, gs.reachedLevel, gs.bestLevel, gs.newBest)

	// Scene factories
	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	// Audio system
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene, createMenuScene))

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
