package systems

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/orbitfall/config"
	"github.com/automoto/orbitfall/fonts"
)

// DrawHUD renders the countdown, level indicator, and the gravity and
// thrust gauges.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	game := GetGame(e)
	if game == nil {
		return
	}
	snap := &game.Snapshot

	margin := cfg.HUD.Margin
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	// Level, top-left.
	text.Draw(screen, fmt.Sprintf("LEVEL %d", snap.Level), fonts.Bold.Get(),
		int(margin), int(margin)+20, cfg.HUD.TextColor)

	// Best level, top-right.
	if game.BestLevel > 0 {
		best := fmt.Sprintf("BEST %d", game.BestLevel)
		text.Draw(screen, best, fonts.Small.Get(),
			int(width-margin)-len(best)*7, int(margin)+14, cfg.HUD.TextColor)
	}

	// Countdown, top-center. Turns urgent for the final seconds.
	seconds := int(math.Ceil(snap.Remaining))
	timerColor := cfg.HUD.TextColor
	if seconds <= cfg.Gameplay.CountdownWarning {
		timerColor = cfg.HUD.WarnColor
	}
	timerStr := fmt.Sprintf("%d", seconds)
	text.Draw(screen, timerStr, fonts.Timer.Get(),
		int(width/2)-len(timerStr)*12, int(margin)+44, timerColor)

	drawGravityGauge(screen, snap.GravityIntensity, margin, height)
	drawThrustGauge(screen, snap.Thrust, snap.MaxThrust, width, height, margin)

	if game.Paused {
		DrawPauseOverlay(screen)
	}
}

// drawGravityGauge shows the signed gravity intensity as a bar growing from
// a center mark: right of center for pull along the base axis, left for the
// inverted pull.
func drawGravityGauge(screen *ebiten.Image, intensity, margin, height float64) {
	w := cfg.HUD.GaugeWidth
	h := cfg.HUD.GaugeHeight
	x := margin
	y := height - margin - h

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h),
		cfg.HUD.GaugeBgColor, false)

	ratio := intensity / cfg.Gameplay.Gravity.MaxIntensity
	half := w / 2
	fill := half * math.Abs(ratio)
	if ratio >= 0 {
		vector.DrawFilledRect(screen, float32(x+half), float32(y), float32(fill), float32(h),
			cfg.HUD.GaugePosColor, false)
	} else {
		vector.DrawFilledRect(screen, float32(x+half-fill), float32(y), float32(fill), float32(h),
			cfg.HUD.GaugeNegColor, false)
	}

	// Center mark.
	vector.DrawFilledRect(screen, float32(x+half-1), float32(y-2), 2, float32(h+4),
		cfg.HUD.TextColor, false)

	text.Draw(screen, "GRAVITY", fonts.Small.Get(), int(x), int(y)-6, cfg.HUD.TextColor)
}

// drawThrustGauge shows the current thrust as a simple fill bar.
func drawThrustGauge(screen *ebiten.Image, thrust, maxThrust, width, height, margin float64) {
	if maxThrust <= 0 {
		return
	}
	w := cfg.HUD.GaugeWidth
	h := cfg.HUD.GaugeHeight
	x := width - margin - w
	y := height - margin - h

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h),
		cfg.HUD.GaugeBgColor, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*thrust/maxThrust), float32(h),
		cfg.HUD.GaugePosColor, false)

	text.Draw(screen, "THRUST", fonts.Small.Get(), int(x), int(y)-6, cfg.HUD.TextColor)
}
