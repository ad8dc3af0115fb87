package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/orbitfall/components"
	cfg "github.com/automoto/orbitfall/config"
	"github.com/automoto/orbitfall/gamemath"
	"github.com/automoto/orbitfall/sim"
)

// DrawWorld renders the arena and every simulated body from the session
// snapshot.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	game := GetGame(e)
	if game == nil {
		return
	}
	snap := &game.Snapshot

	cx := float32(cfg.C.Width) / 2
	cy := float32(cfg.C.Height) / 2
	r := float32(snap.ArenaRadius)

	// Arena interior and boundary ring.
	vector.DrawFilledCircle(screen, cx, cy, r, cfg.World.Background, true)
	vector.StrokeCircle(screen, cx, cy, r, float32(cfg.Gameplay.Arena.WallStroke), cfg.World.Wall, true)

	drawStar(screen, cx, cy, snap.Elapsed)

	pulse := getOrCreatePulse(e)

	for i := range snap.Bodies {
		b := &snap.Bodies[i]
		x := cx + float32(b.Pos.X)
		y := cy + float32(b.Pos.Y)

		switch b.Role {
		case sim.RolePlayer:
			drawGravityRay(screen, x, y, snap)
			vector.DrawFilledCircle(screen, x, y, float32(b.Radius), cfg.World.Player, true)
			// Heading tick.
			tip := gamemath.FromAngle(b.Heading, b.Radius*1.8)
			vector.StrokeLine(screen, x, y, x+float32(tip.X), y+float32(tip.Y), 2, cfg.World.Player, true)

		case sim.RoleDebris:
			vector.DrawFilledCircle(screen, x, y, float32(b.Radius), cfg.World.Debris, true)

		case sim.RoleGoal:
			vector.DrawFilledCircle(screen, x, y, float32(b.Radius)*0.6, cfg.World.Goal, true)
			vector.StrokeCircle(screen, x, y, float32(b.Radius)*pulse.Scale, 2, cfg.World.Goal, true)
		}
	}
}

// drawGravityRay hints the current gravity pull as a ray from the player.
func drawGravityRay(screen *ebiten.Image, x, y float32, snap *sim.Snapshot) {
	if snap.Gravity.Length() == 0 {
		return
	}
	dir := snap.Gravity.Normalize()
	maxLen := 60.0
	length := maxLen * math.Abs(snap.GravityIntensity) / cfg.Gameplay.Gravity.MaxIntensity
	vector.StrokeLine(screen, x, y,
		x+float32(dir.X*length), y+float32(dir.Y*length),
		3, cfg.World.GravityRay, true)
}

// drawStar renders the decorative spinning star at the arena center.
func drawStar(screen *ebiten.Image, cx, cy float32, elapsed float64) {
	arena := cfg.Gameplay.Arena
	points := arena.StarPoints
	if points < 2 {
		return
	}

	spin := elapsed * arena.StarSpinRate
	step := math.Pi / float64(points)

	prev := starVertex(cx, cy, spin, arena.StarOuter)
	for i := 1; i <= points*2; i++ {
		radius := arena.StarOuter
		if i%2 == 1 {
			radius = arena.StarInner
		}
		next := starVertex(cx, cy, spin+float64(i)*step, radius)
		vector.StrokeLine(screen, prev[0], prev[1], next[0], next[1], 2, cfg.World.Star, true)
		prev = next
	}
}

func starVertex(cx, cy float32, angle, radius float64) [2]float32 {
	v := gamemath.FromAngle(angle, radius)
	return [2]float32{cx + float32(v.X), cy + float32(v.Y)}
}

// DrawFade renders the level intro overlay on top of the world.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Done || fade.Alpha <= 0 {
		return
	}

	alpha := fade.Alpha
	if alpha > 1 {
		alpha = 1
	}
	overlay := color.RGBA{A: uint8(alpha * 220)}
	vector.DrawFilledRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), overlay, false)
}
