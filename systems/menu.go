package systems

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/orbitfall/components"
	cfg "github.com/automoto/orbitfall/config"
	"github.com/automoto/orbitfall/fonts"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// menuLabels maps menu options to their display strings
var menuLabels = map[components.MainMenuOption]string{
	components.MainMenuStart:      "START",
	components.MainMenuFullscreen: "FULLSCREEN",
	components.MainMenuExit:       "EXIT",
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			Options: []components.MainMenuOption{
				components.MainMenuStart,
				components.MainMenuFullscreen,
				components.MainMenuExit,
			},
			BestLevel: LoadBestLevel(),
		})
	}
	return components.Menu.Get(entry)
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		// Navigate menu with wrap-around
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)

			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createWorldScene())
			case components.MainMenuFullscreen:
				full := !ebiten.IsFullscreen()
				ebiten.SetFullscreen(full)
				saveFullscreen(full)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

func saveFullscreen(full bool) {
	settings, err := LoadSettings()
	if err != nil || settings == nil {
		settings = &SavedSettings{SFXVolume: cfg.Audio.DefaultSFXVol}
	}
	settings.Fullscreen = full
	_ = SaveSettings(settings)
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(cfg.C.Width)

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height),
		cfg.Menu.BackgroundColor,
		false,
	)

	// Title
	title := "ORBITFALL"
	titleWidth := len(title) * 20 // Approximate width for 32pt font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, fonts.Title.Get(), titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	if menu.BestLevel > 0 {
		best := fmt.Sprintf("BEST LEVEL %d", menu.BestLevel)
		text.Draw(screen, best, fonts.Small.Get(),
			int(width/2)-len(best)*4, int(cfg.Menu.TitleY)+30, cfg.Menu.TextColorNormal)
	}

	// Menu options
	menuFont := fonts.Bold.Get()
	for i, option := range menu.Options {
		label := menuLabels[option]
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight

		clr := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			clr = cfg.Menu.TextColorSelected
			label = "> " + label
		}

		x := int(width/2) - len(label)*6
		text.Draw(screen, label, menuFont, x, int(y), clr)
	}
}
