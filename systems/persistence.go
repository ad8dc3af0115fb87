package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
}

// SavedProgress represents run progress stored on disk
type SavedProgress struct {
	BestLevel int `json:"bestLevel"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and progress
// storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "orbitfall",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies persisted settings to the audio and window
// state
func ApplySavedSettings(s *SavedSettings) {
	if s == nil {
		return
	}
	SetSFXVolume(s.SFXVolume)
	SetMuted(s.Muted)
	ebiten.SetFullscreen(s.Fullscreen)
}

// LoadBestLevel returns the highest level reached in any previous run, or 0
func LoadBestLevel() int {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil || data == nil {
		return 0
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return 0
	}
	return progress.BestLevel
}

// SaveBestLevel persists a new best level
func SaveBestLevel(level int) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(SavedProgress{BestLevel: level})
	if err != nil {
		return
	}
	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}
