package laserbounce

import (
	"math"
	"testing"

	"github.com/vovakirdan/laser-bounce/internal/config"
)

func TestWeaponUnlockAtExactly200(t *testing.T) {
	sim, run, _, audio := testSim(config.PresetMedium)

	run.Score = 199
	sim.advanceDifficulty(run)
	if run.Unlocked {
		t.Fatal("unlocked below 200")
	}

	run.Score = 200
	sim.advanceDifficulty(run)
	if !run.Unlocked {
		t.Fatal("not unlocked at 200")
	}
	if run.Ammo != 30 {
		t.Errorf("Ammo = %d, want 30", run.Ammo)
	}
	if run.UnlockTier != 1 {
		t.Errorf("UnlockTier = %d, want 1", run.UnlockTier)
	}
	if run.Banner != 180 || run.BannerKind != BannerUnlocked {
		t.Errorf("banner = %d/%v, want 180/unlocked", run.Banner, run.BannerKind)
	}
	if audio.count(CueUnlock) != 1 || audio.count(CueMusicDuck) != 1 {
		t.Errorf("cues = %v, want one unlock and one duck", audio.cues)
	}
}

func TestWeaponGrantsAcrossSeveralThresholds(t *testing.T) {
	tests := []struct {
		name      string
		from, to  int
		wantAmmo  int
		wantTiers int
	}{
		{"150 to 650", 150, 650, 90, 3},
		{"150 to 200", 150, 200, 30, 1},
		{"250 to 399", 250, 399, 30, 1},
		{"250 to 400", 250, 400, 60, 2},
		{"0 to 1000", 0, 1000, 150, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, run, _, audio := testSim(config.PresetMedium)
			run.Score = tt.from
			sim.advanceDifficulty(run)
			spent := run.Ammo // whatever was granted before the jump stays granted

			run.Score = tt.to
			sim.advanceDifficulty(run)
			if run.Ammo != tt.wantAmmo {
				t.Errorf("Ammo = %d, want %d (had %d before jump)", run.Ammo, tt.wantAmmo, spent)
			}
			if run.UnlockTier != tt.wantTiers {
				t.Errorf("UnlockTier = %d, want %d", run.UnlockTier, tt.wantTiers)
			}

			if tt.from < 200 {
				// Unlocking and recharging in one tick still announces the unlock.
				if run.BannerKind != BannerUnlocked {
					t.Errorf("BannerKind = %v, want unlocked on the first grant", run.BannerKind)
				}
				if audio.count(CueUnlock) != 1 || audio.count(CueMusicDuck) != 1 {
					t.Errorf("cues = %v, want one unlock and one duck", audio.cues)
				}
			}

			// Re-evaluating at the same score grants nothing.
			sim.advanceDifficulty(run)
			if run.Ammo != tt.wantAmmo {
				t.Errorf("Ammo after re-evaluation = %d, want %d", run.Ammo, tt.wantAmmo)
			}
		})
	}
}

func TestRechargeBanner(t *testing.T) {
	sim, run, _, _ := testSim(config.PresetMedium)
	run.Score = 200
	sim.advanceDifficulty(run)
	run.Banner = 0

	run.Score = 400
	sim.advanceDifficulty(run)
	if run.BannerKind != BannerRecharged || run.Banner != 180 {
		t.Errorf("banner = %d/%v, want 180/recharged", run.Banner, run.BannerKind)
	}
}

func TestTierAdvanceCompoundsSpeed(t *testing.T) {
	sim, run, _, _ := testSim(config.PresetMedium)
	id := run.Enemies.Insert(Enemy{X: 500, Y: 500, Radius: 12, DX: 2, DY: -2, Active: true})

	run.Score = 800 // two medium steps of 400
	sim.advanceDifficulty(run)

	if run.Tier != 2 {
		t.Fatalf("Tier = %d, want 2", run.Tier)
	}
	if run.Enemies.Len() != 3 {
		t.Errorf("enemies = %d, want 3", run.Enemies.Len())
	}
	e, _ := run.Enemies.Get(id)
	want := 2 * 1.1 * 1.1
	if !approx(e.DX, want) || !approx(e.DY, -want) {
		t.Errorf("velocity = (%v, %v), want (%v, %v)", e.DX, e.DY, want, -want)
	}

	// No further advance until the next threshold.
	sim.advanceDifficulty(run)
	if run.Tier != 2 || run.Enemies.Len() != 3 {
		t.Errorf("re-evaluation advanced: tier %d, enemies %d", run.Tier, run.Enemies.Len())
	}
}

func TestTierAdvanceUsesPresetStep(t *testing.T) {
	tests := []struct {
		preset config.Preset
		score  int
		want   int
	}{
		{config.PresetEasy, 399, 0},
		{config.PresetEasy, 400, 1},
		{config.PresetMedium, 1200, 3},
		{config.PresetHard, 250, 1},
		{config.PresetHard, 1000, 4},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			sim, run, _, _ := testSim(tt.preset)
			run.Score = tt.score
			sim.advanceDifficulty(run)
			if run.Tier != tt.want {
				t.Errorf("Tier = %d, want %d", run.Tier, tt.want)
			}
			if run.Enemies.Len() != tt.want {
				t.Errorf("enemies = %d, want %d", run.Enemies.Len(), tt.want)
			}
		})
	}
}

func TestTierAdvanceSkipsInactiveEnemies(t *testing.T) {
	sim, run, _, _ := testSim(config.PresetHard)
	id := run.Enemies.Insert(Enemy{DX: 1, DY: 1, Radius: 12, Active: false})

	run.Score = 250
	sim.advanceDifficulty(run)

	e, _ := run.Enemies.Get(id)
	if e.DX != 1 || e.DY != 1 {
		t.Errorf("inactive enemy sped up to (%v, %v)", e.DX, e.DY)
	}
}

func TestZeroScoreStepDoesNotLoop(t *testing.T) {
	cfg := config.Default()
	cfg.Presets.Medium.ScoreStep = 0
	rules := NewRules(cfg, config.PresetMedium)
	sim := NewSim(rules, NewSpawner(rules, 1), nil, nil, nil)
	run := newRun(1, rules, 1600, 900)

	run.Score = 5000
	sim.advanceDifficulty(run)
	if run.Tier != 0 {
		t.Errorf("Tier = %d, want 0", run.Tier)
	}
	if math.IsNaN(run.Scale) {
		t.Error("scale is NaN")
	}
}
