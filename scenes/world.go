package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/orbitfall/config"
	"github.com/automoto/orbitfall/systems"
)

// WorldScene runs one play-through of the game
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewWorldScene creates a new world scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.ecs == nil {
		// Session setup failed; a scene change is already pending.
		return
	}
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Synthesize tones up front to avoid lag on first play (important for WASM)
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := systems.InitGame(e, seed); err != nil {
		log.Printf("Could not start game: %v", err)
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}

	createGameOverScene := func(reached, best int, newBest bool) interface{} {
		return NewGameOverScene(ws.sceneChanger, reached, best, newBest)
	}

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdateGame(ws.sceneChanger, createGameOverScene))
	e.AddSystem(systems.UpdateEffects)

	// Renderers (fade sits between world and HUD so the timer stays visible)
	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawFade)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	systems.StartIntroFade(e, cfg.Gameplay.IntroSeconds)

	ws.ecs = e
}
