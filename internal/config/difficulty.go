package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "" (config default).
func ParsePreset(name string) DifficultyPreset {
	switch name {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	default:
		return ""
	}
}

// ScatterMovesForPreset returns the shuffle length for a difficulty preset.
// Returns 0 for unknown presets.
func ScatterMovesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 200
	case DifficultyNormal:
		return 1000
	case DifficultyHard:
		return 3000
	default:
		return 0
	}
}

// ApplySlidesPreset modifies the config based on a difficulty preset.
func ApplySlidesPreset(cfg *SlidesConfig, preset DifficultyPreset) {
	if moves := ScatterMovesForPreset(preset); moves > 0 {
		cfg.Scatter.Moves = moves
	}
}
