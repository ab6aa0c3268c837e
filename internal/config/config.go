// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for the muncher platform.
package config

// MuncherConfig contains all gameplay tuning for the maze-chase engine.
type MuncherConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Actors   ActorsConfig   `yaml:"actors"`
	Timing   TimingConfig   `yaml:"timing"`
}

// GameplayConfig defines lives and score values.
type GameplayConfig struct {
	Lives            int `yaml:"lives"`
	PelletScore      int `yaml:"pellet_score"`
	PowerPelletScore int `yaml:"power_pellet_score"`
	GhostScore       int `yaml:"ghost_score"`
}

// ActorsConfig defines movement parameters.
type ActorsConfig struct {
	PlayerSpeed float64 `yaml:"player_speed"` // world units per tick
	GhostSpeed  float64 `yaml:"ghost_speed"`  // world units per tick

	// CollisionRadius is the player-ghost collision threshold in tiles.
	// Below 1.0 so actors passing in adjacent lanes miss.
	CollisionRadius float64 `yaml:"collision_radius"`
}

// TimingConfig defines wall-clock durations, converted to ticks at reset.
type TimingConfig struct {
	PowerDurationMS int `yaml:"power_duration_ms"`
	RespawnDelayMS  int `yaml:"respawn_delay_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyMuncherPreset adjusts the config for a difficulty preset.
// Easy slows the ghosts and lengthens the power window; hard does the
// opposite. Unknown presets leave the config untouched.
func ApplyMuncherPreset(cfg *MuncherConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Actors.GhostSpeed = 2.2
		cfg.Timing.PowerDurationMS = 8000
	case DifficultyHard:
		cfg.Actors.GhostSpeed = 3.0
		cfg.Timing.PowerDurationMS = 4000
		cfg.Gameplay.Lives = 2
	case DifficultyNormal:
		// Defaults are the normal difficulty.
	}
}
