package config

import "fmt"

// DifficultyPreset represents a named starting speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// BaseIntervalForPreset returns the level 1 drop interval in milliseconds.
func BaseIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1500
	case DifficultyHard:
		return 500
	default:
		return 1000
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// easy, normal and hard set the base interval and re-arm it on level changes;
// fixed keeps the configured interval and pins the cadence.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyFixed:
		cfg.Timing.Cadence = "fixed"
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Timing.BaseIntervalMS = BaseIntervalForPreset(preset)
		cfg.Timing.Cadence = "rearm"
	default:
		return fmt.Errorf("unknown difficulty %q", preset)
	}
	return nil
}
