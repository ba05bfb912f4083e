package config

// DifficultyPreset represents a named grid size preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// Presets lists all difficulty presets in ascending order.
var Presets = []DifficultyPreset{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyExpert,
}

// GridForPreset returns the board dimensions for a difficulty preset.
// Unknown presets fall back to normal.
func GridForPreset(preset DifficultyPreset) GridConfig {
	switch preset {
	case DifficultyEasy:
		return GridConfig{Rows: 3, Cols: 4}
	case DifficultyNormal:
		return GridConfig{Rows: 4, Cols: 6}
	case DifficultyHard:
		return GridConfig{Rows: 6, Cols: 9}
	case DifficultyExpert:
		return GridConfig{Rows: 8, Cols: 12}
	default:
		return GridConfig{Rows: 4, Cols: 6}
	}
}

// PieceCount returns the number of pieces for a preset's grid.
func PieceCount(preset DifficultyPreset) int {
	g := GridForPreset(preset)
	return g.Rows * g.Cols
}

// ApplyJigsawPreset overrides the configured grid with a preset's grid.
func ApplyJigsawPreset(cfg *JigsawConfig, preset DifficultyPreset) {
	cfg.Grid = GridForPreset(preset)
}
