package config

import (
	_ "embed"
)

//go:embed defaults/muncher.yaml
var defaultMuncherYAML []byte

// DefaultMuncherConfig returns the default gameplay configuration.
// Kept in sync with defaults/muncher.yaml as the last-resort fallback.
func DefaultMuncherConfig() MuncherConfig {
	return MuncherConfig{
		Gameplay: GameplayConfig{
			Lives:            3,
			PelletScore:      10,
			PowerPelletScore: 50,
			GhostScore:       200,
		},
		Actors: ActorsConfig{
			PlayerSpeed:     3.0,
			GhostSpeed:      2.6,
			CollisionRadius: 0.6,
		},
		Timing: TimingConfig{
			PowerDurationMS: 6000,
			RespawnDelayMS:  1500,
		},
	}
}
