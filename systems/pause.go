package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/automoto/orbitfall/config"
	"github.com/automoto/orbitfall/fonts"
)

// DrawPauseOverlay dims the screen and shows the pause hint. Called from
// DrawHUD while the game is paused.
func DrawPauseOverlay(screen *ebiten.Image) {
	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)

	vector.DrawFilledRect(screen, 0, 0, width, height, cfg.Pause.OverlayColor, false)

	title := "PAUSED"
	text.Draw(screen, title, fonts.Title.Get(),
		cfg.C.Width/2-len(title)*10, cfg.C.Height/2, cfg.Pause.TextColor)

	hint := "ESC TO RESUME"
	text.Draw(screen, hint, fonts.Small.Get(),
		cfg.C.Width/2-len(hint)*4, cfg.C.Height/2+28, cfg.Pause.TextColor)
}
