package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/orbitfall/config"
	"github.com/automoto/orbitfall/fonts"
	"github.com/automoto/orbitfall/scenes"
	"github.com/automoto/orbitfall/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Body, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Bold, goregular.TTF, 20)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 32)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12)
	fonts.LoadFontWithSize(fonts.Timer, goregular.TTF, 44)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	config.ApplyPendingTuning()
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "skip the menu and start a run immediately")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "fixed session seed (0 = random)")
	flag.BoolVar(&config.Debug.Fullscreen, "fullscreen", false, "start in fullscreen")
	flag.StringVar(&config.Debug.TuningFile, "tuning", "", "gameplay tuning override file, reloaded on change")
	flag.Parse()

	if config.Debug.TuningFile != "" {
		if err := config.WatchTuning(config.Debug.TuningFile, nil); err != nil {
			log.Fatalf("Could not load tuning file: %v", err)
		}
	}

	ebiten.SetWindowTitle("Orbitfall")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	if config.Debug.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
