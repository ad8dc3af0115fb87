package config

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// pendingTuning holds a reloaded gameplay config produced on viper's watch
// goroutine until the update tick installs it. The game loop reads Gameplay
// without locking, so the watcher must never write it directly.
var pendingTuning atomic.Pointer[GameplayConfig]

// watchApply is the callback registered by WatchTuning, invoked from
// ApplyPendingTuning after each install.
var watchApply func()

// LoadTuning applies gameplay overrides from a config file on top of the
// built-in defaults. Only keys present in the file are touched, so a tuning
// file can override a single value. Keys mirror the GameplayConfig layout,
// e.g. gravity.maxintensity or difficulty.timebudget.
func LoadTuning(path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	if err := v.Unmarshal(&Gameplay); err != nil {
		return fmt.Errorf("apply tuning file: %w", err)
	}
	return nil
}

// WatchTuning loads the tuning file and reapplies it whenever it changes on
// disk, so feel parameters can be tweaked while the game is running. Reloads
// are staged and installed by ApplyPendingTuning on the update tick; onApply
// runs there after each successful install. Reload errors are logged and the
// previous values kept.
func WatchTuning(path string, onApply func()) error {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	if err := v.Unmarshal(&Gameplay); err != nil {
		return fmt.Errorf("apply tuning file: %w", err)
	}
	watchApply = onApply

	base := Gameplay
	v.OnConfigChange(func(e fsnotify.Event) {
		next := base
		if err := v.Unmarshal(&next); err != nil {
			log.Printf("Warning: Could not reload tuning from %s: %v", e.Name, err)
			return
		}
		pendingTuning.Store(&next)
		log.Printf("Reloaded gameplay tuning from %s", e.Name)
	})
	v.WatchConfig()
	return nil
}

// ApplyPendingTuning installs a staged tuning reload, if any. Call it from
// the update tick so Gameplay only ever changes on the game loop goroutine.
// Returns whether new values were installed.
func ApplyPendingTuning() bool {
	next := pendingTuning.Swap(nil)
	if next == nil {
		return false
	}
	Gameplay = *next
	if watchApply != nil {
		watchApply()
	}
	return true
}
