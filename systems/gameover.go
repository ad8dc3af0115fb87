package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/orbitfall/components"
	cfg "github.com/automoto/orbitfall/config"
	"github.com/automoto/orbitfall/fonts"
)

// InitGameOver creates the game over singleton with the run's results.
func InitGameOver(e *ecs.ECS, reached, best int, newBest bool) {
	entry := e.World.Entry(e.World.Create(components.GameOver))
	components.GameOver.SetValue(entry, components.GameOverData{
		ReachedLevel: reached,
		BestLevel:    best,
		NewBest:      newBest,
		AutoDismiss:  cfg.Gameplay.GameOverSeconds,
	})
}

// NewUpdateGameOver creates the game over system: any menu key returns to
// the main menu or restarts, and the screen auto-dismisses after a few
// seconds of inactivity.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.GameOver.First(e.World)
		if !ok {
			return
		}
		over := components.GameOver.Get(entry)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createWorldScene())
			return
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
			return
		}

		over.AutoDismiss -= tickSeconds
		if over.AutoDismiss <= 0 {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		return
	}
	over := components.GameOver.Get(entry)

	width := float64(cfg.C.Width)
	center := func(s string, perChar int) int {
		return int(width/2) - len(s)*perChar/2
	}

	title := "GAME OVER"
	text.Draw(screen, title, fonts.Title.Get(), center(title, 20), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	lines := []string{
		fmt.Sprintf("REACHED LEVEL %d", over.ReachedLevel),
		fmt.Sprintf("BEST LEVEL %d", over.BestLevel),
	}
	if over.NewBest {
		lines = append(lines, "NEW BEST!")
	}
	lines = append(lines, "ENTER TO RETRY")

	for i, line := range lines {
		y := cfg.GameOver.TextStartY + float64(i)*cfg.GameOver.LineHeight
		text.Draw(screen, line, fonts.Bold.Get(), center(line, 12), int(y), cfg.GameOver.TextColor)
	}
}
