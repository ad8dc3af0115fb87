package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives the level intro overlay: a tween from opaque to clear.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
	Done  bool
}

var Fade = donburi.NewComponentType[FadeData]()

// PulseData drives the goal's looping scale pulse.
type PulseData struct {
	Seq   *gween.Sequence
	Scale float32
}

var Pulse = donburi.NewComponentType[PulseData]()
