package systems

import (
	"log"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/orbitfall/components"
	cfg "github.com/automoto/orbitfall/config"
	"github.com/automoto/orbitfall/sim"
)

// Fixed timestep; ebiten ticks at 60 TPS.
const tickSeconds = 1.0 / 60

// lossLingerSeconds keeps the final frame on screen before switching to the
// game over scene.
const lossLingerSeconds = 1.0

// SimSessionConfig assembles the simulation config from the gameplay
// configuration, so tuning overrides flow into new sessions.
func SimSessionConfig() sim.SessionConfig {
	g := cfg.Gameplay
	return sim.SessionConfig{
		World: sim.WorldConfig{
			Restitution:         g.Physics.Restitution,
			MaxSpeed:            g.Physics.MaxSpeed,
			MaxStepDisplacement: g.Physics.MaxStepDisplacement,
		},
		Gravity: sim.GravityConfig{
			MaxIntensity:  g.Gravity.MaxIntensity,
			RampPerSecond: g.Gravity.RampPerSecond,
			BaseAngle:     g.Gravity.BaseAngle,
			Initial:       g.Gravity.Initial,
		},
		Thrust: sim.ThrustConfig{
			Max:            g.Thrust.Max,
			AccelPerSecond: g.Thrust.AccelPerSecond,
			BrakePerSecond: g.Thrust.BrakePerSecond,
		},
		Difficulty: sim.DifficultyConfig{
			BaseDebris:        g.Difficulty.BaseDebris,
			DebrisPerLevel:    g.Difficulty.DebrisPerLevel,
			MaxDebris:         g.Difficulty.MaxDebris,
			DebrisSpeed:       g.Difficulty.DebrisSpeed,
			SpeedGrowth:       g.Difficulty.SpeedGrowth,
			MaxDebrisSpeed:    g.Difficulty.MaxDebrisSpeed,
			MinDebrisRadius:   g.Difficulty.MinDebrisRadius,
			MaxDebrisRadius:   g.Difficulty.MaxDebrisRadius,
			TimeBudget:        g.Difficulty.TimeBudget,
			PlayerRadius:      g.Difficulty.PlayerRadius,
			GoalRadius:        g.Difficulty.GoalRadius,
			ArenaRadius:       g.Arena.Radius,
			MinGoalSeparation: g.Difficulty.MinGoalSeparation,
		},
		IntroSeconds: g.IntroSeconds,
	}
}

// InitGame creates the session singleton for a new run. Must be called from
// the world scene before the first update.
func InitGame(e *ecs.ECS, seed int64) error {
	session, err := sim.NewSession(SimSessionConfig(), seed)
	if err != nil {
		return err
	}

	entry := e.World.Entry(e.World.Create(components.Game))
	components.Game.SetValue(entry, components.GameData{
		Session:   session,
		Snapshot:  session.Snapshot(),
		BestLevel: LoadBestLevel(),
	})
	return nil
}

// GetGame returns the session singleton, or nil before InitGame.
func GetGame(e *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

// NewUpdateGame creates the system that drives the simulation session from
// player input and routes its events to audio, effects, and persistence.
func NewUpdateGame(sceneChanger SceneChanger, createGameOverScene func(reached, best int, newBest bool) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		game := GetGame(e)
		if game == nil {
			return
		}

		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionPause).JustPressed && !game.Over {
			game.Paused = !game.Paused
		}
		if game.Paused {
			return
		}

		in := sim.InputState{
			Forward:     GetAction(input, cfg.ActionThrust).Pressed,
			Brake:       GetAction(input, cfg.ActionBrake).Pressed,
			GravityUp:   GetAction(input, cfg.ActionGravityUp).Pressed,
			GravityDown: GetAction(input, cfg.ActionGravityDown).Pressed,
		}

		for _, event := range game.Session.Tick(tickSeconds, in) {
			handleEvent(e, game, event)
		}

		switch game.Session.Status() {
		case sim.StatusWon:
			if level := game.Session.Level(); level > game.BestLevel {
				game.BestLevel = level
				SaveBestLevel(level)
			}
			if err := game.Session.NextLevel(); err != nil {
				log.Printf("Could not start next level: %v", err)
				game.Over = true
			}

		case sim.StatusLost:
			if !game.Over {
				game.Over = true
				game.EndTimer = lossLingerSeconds
				if level := game.Session.Level(); level > game.BestLevel {
					game.BestLevel = level
					game.NewBest = true
					SaveBestLevel(level)
				}
			}
			game.EndTimer -= tickSeconds
			if game.EndTimer <= 0 {
				sceneChanger.ChangeScene(createGameOverScene(game.Session.Level(), game.BestLevel, game.NewBest))
				return
			}
		}

		game.Snapshot = game.Session.Snapshot()
	}
}

func handleEvent(e *ecs.ECS, game *components.GameData, event sim.Event) {
	switch event.Kind {
	case sim.EventLevelStart:
		PlaySFX(e, cfg.SoundLevelStart)
		StartIntroFade(e, cfg.Gameplay.IntroSeconds)
	case sim.EventCountdownTick:
		if event.Seconds <= cfg.Gameplay.CountdownWarning {
			PlaySFX(e, cfg.SoundCountdownUrgent)
		} else {
			PlaySFX(e, cfg.SoundCountdownTick)
		}
	case sim.EventPlayerHitDebris:
		PlaySFX(e, cfg.SoundHitDebris)
		PlaySFX(e, cfg.SoundGameOver)
	case sim.EventPlayerReachedGoal:
		PlaySFX(e, cfg.SoundReachGoal)
	case sim.EventTimeExpired:
		PlaySFX(e, cfg.SoundGameOver)
	}
}
