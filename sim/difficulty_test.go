package sim

import "testing"

func testDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		BaseDebris:        16,
		DebrisPerLevel:    2,
		MaxDebris:         60,
		DebrisSpeed:       40,
		SpeedGrowth:       6,
		MaxDebrisSpeed:    160,
		MinDebrisRadius:   6,
		MaxDebrisRadius:   18,
		TimeBudget:        30,
		PlayerRadius:      10,
		GoalRadius:        14,
		ArenaRadius:       336,
		MinGoalSeparation: 1.5,
	}
}

func TestParamsForGrowsMonotonically(t *testing.T) {
	s := NewScaler(testDifficultyConfig())

	prev := s.ParamsFor(1)
	for level := 2; level <= 40; level++ {
		p := s.ParamsFor(level)
		if p.DebrisCount < prev.DebrisCount {
			t.Fatalf("level %d debris count %d dropped below level %d count %d",
				level, p.DebrisCount, level-1, prev.DebrisCount)
		}
		if p.DebrisSpeed < prev.DebrisSpeed {
			t.Fatalf("level %d debris speed %v dropped below level %d speed %v",
				level, p.DebrisSpeed, level-1, prev.DebrisSpeed)
		}
		prev = p
	}
}

func TestParamsForCaps(t *testing.T) {
	s := NewScaler(testDifficultyConfig())
	p := s.ParamsFor(1000)

	if p.DebrisCount != 60 {
		t.Fatalf("debris count at high level = %d, want cap 60", p.DebrisCount)
	}
	if p.DebrisSpeed != 160 {
		t.Fatalf("debris speed at high level = %v, want cap 160", p.DebrisSpeed)
	}
}

func TestParamsForFloorsLevel(t *testing.T) {
	s := NewScaler(testDifficultyConfig())

	for _, level := range []int{0, -3} {
		p := s.ParamsFor(level)
		want := s.ParamsFor(1)
		if p != want {
			t.Fatalf("ParamsFor(%d) = %+v, want level-1 params %+v", level, p, want)
		}
	}
}

func TestParamsForRespectsArenaCapacity(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.ArenaRadius = 60
	cfg.MinDebrisRadius = 15
	cfg.MaxDebrisRadius = 15
	cfg.MaxDebris = 1000
	cfg.BaseDebris = 500
	s := NewScaler(cfg)

	p := s.ParamsFor(1)
	// 0.3 * (60/15)^2 = 4.8, so at most 4 bodies fit the area budget.
	if p.DebrisCount > 4 {
		t.Fatalf("debris count %d exceeds arena capacity", p.DebrisCount)
	}
}

func TestParamsForNormalizesRadiusRange(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.MinDebrisRadius = 20
	cfg.MaxDebrisRadius = 5
	p := NewScaler(cfg).ParamsFor(1)

	if p.MaxDebrisRadius < p.MinDebrisRadius {
		t.Fatalf("radius range inverted: [%v, %v]", p.MinDebrisRadius, p.MaxDebrisRadius)
	}
}
