package config

import (
	_ "embed"
)

//go:embed defaults/jigsaw.yaml
var defaultJigsawYAML []byte

// DefaultJigsawConfig returns the default jigsaw configuration.
// Kept in sync with defaults/jigsaw.yaml; used as the last-resort fallback
// if the embedded YAML fails to parse.
func DefaultJigsawConfig() JigsawConfig {
	return JigsawConfig{
		Grid: GridConfig{
			Rows: 4,
			Cols: 6,
		},
		Layout: LayoutConfig{
			Padding: 6,
		},
		Physics: PhysicsConfig{
			DragLerp:     0.2,
			MaxStep:      24,
			SnapDistance: 3,
			LockOnSnap:   true,
		},
		Shuffle: ShuffleConfig{
			Separate:    true,
			Passes:      2,
			SpacingFrac: 0.8,
			RadiusFrac:  0.45,
		},
		Audio: AudioConfig{
			Enabled: true,
			Cue:     "",
		},
	}
}
