package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/orbitfall/config"
)

// AudioData queues sound effects requested by game systems. The audio
// system drains the queue each frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

// Audio is the component type for the audio queue singleton
var Audio = donburi.NewComponentType[AudioData]()
