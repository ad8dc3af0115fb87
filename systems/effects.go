package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/orbitfall/components"
)

// StartIntroFade (re)starts the level intro overlay: fully dark, fading to
// clear over the given duration.
func StartIntroFade(e *ecs.ECS, duration float64) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Fade))
	}
	components.Fade.SetValue(entry, components.FadeData{
		Tween: gween.New(1, 0, float32(duration), ease.OutQuad),
		Alpha: 1,
	})
}

// getOrCreatePulse returns the goal pulse singleton, creating its looping
// scale sequence if needed.
func getOrCreatePulse(e *ecs.ECS) *components.PulseData {
	entry, ok := components.Pulse.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pulse))
		seq := gween.NewSequence(
			gween.New(1, 1.25, 0.6, ease.InOutQuad),
			gween.New(1.25, 1, 0.6, ease.InOutQuad),
		)
		seq.SetLoop(-1)
		components.Pulse.SetValue(entry, components.PulseData{Seq: seq, Scale: 1})
	}
	return components.Pulse.Get(entry)
}

// UpdateEffects advances the intro fade and the goal pulse.
func UpdateEffects(e *ecs.ECS) {
	if entry, ok := components.Fade.First(e.World); ok {
		fade := components.Fade.Get(entry)
		if fade.Tween != nil && !fade.Done {
			alpha, done := fade.Tween.Update(float32(tickSeconds))
			fade.Alpha = alpha
			fade.Done = done
		}
	}

	pulse := getOrCreatePulse(e)
	scale, _, _ := pulse.Seq.Update(float32(tickSeconds))
	pulse.Scale = scale
}
