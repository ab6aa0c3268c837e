package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	cfg, err := LoadMuncher("")
	if err != nil {
		t.Fatalf("LoadMuncher() failed: %v", err)
	}

	def := DefaultMuncherConfig()
	if cfg != def {
		t.Errorf("Embedded default diverged from DefaultMuncherConfig():\n%+v\nvs\n%+v", cfg, def)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := []byte(`
gameplay:
  lives: 5
  pellet_score: 1
  power_pellet_score: 2
  ghost_score: 3
actors:
  player_speed: 2.0
  ghost_speed: 1.5
  collision_radius: 0.4
timing:
  power_duration_ms: 1000
  respawn_delay_ms: 500
`)
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadMuncher(path)
	if err != nil {
		t.Fatalf("LoadMuncher(%s) failed: %v", path, err)
	}

	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	if cfg.Actors.GhostSpeed != 1.5 {
		t.Errorf("GhostSpeed = %v, expected 1.5", cfg.Actors.GhostSpeed)
	}
	if cfg.Timing.PowerDurationMS != 1000 {
		t.Errorf("PowerDurationMS = %d, expected 1000", cfg.Timing.PowerDurationMS)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadMuncher("/nonexistent/muncher.yaml")
	if err == nil {
		t.Error("Expected error for missing custom config path")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		ghostSpeed float64
		powerMS    int
	}{
		{DifficultyEasy, 2.2, 8000},
		{DifficultyNormal, 2.6, 6000},
		{DifficultyHard, 3.0, 4000},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMuncherConfig()
			ApplyMuncherPreset(&cfg, tc.preset)

			if cfg.Actors.GhostSpeed != tc.ghostSpeed {
				t.Errorf("GhostSpeed = %v, expected %v", cfg.Actors.GhostSpeed, tc.ghostSpeed)
			}
			if cfg.Timing.PowerDurationMS != tc.powerMS {
				t.Errorf("PowerDurationMS = %d, expected %d", cfg.Timing.PowerDurationMS, tc.powerMS)
			}
		})
	}
}

func TestApplyUnknownPreset(t *testing.T) {
	cfg := DefaultMuncherConfig()
	ApplyMuncherPreset(&cfg, DifficultyPreset("bogus"))

	if cfg != DefaultMuncherConfig() {
		t.Error("Unknown preset should leave config untouched")
	}
}
