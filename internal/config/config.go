// Package config provides YAML-based game configuration loading and
// difficulty presets for the puzzle platform.
package config

// JigsawConfig contains all configuration for the jigsaw puzzle.
type JigsawConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Layout  LayoutConfig  `yaml:"layout"`
	Physics PhysicsConfig `yaml:"physics"`
	Shuffle ShuffleConfig `yaml:"shuffle"`
	Audio   AudioConfig   `yaml:"audio"`
}

// GridConfig defines the board dimensions.
// Rows and cols must be positive; the loader does not validate them.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// LayoutConfig defines viewport layout parameters.
type LayoutConfig struct {
	// Padding is the minimum margin, in pixels, between the assembled
	// picture and the viewport edge.
	Padding int `yaml:"padding"`
}

// PhysicsConfig defines the drag and snap behavior.
type PhysicsConfig struct {
	// DragLerp is the fraction of the remaining distance a dragged
	// cluster covers per frame while easing toward the pointer.
	DragLerp float64 `yaml:"drag_lerp"`

	// MaxStep caps the per-frame movement magnitude in pixels.
	MaxStep float64 `yaml:"max_step"`

	// SnapDistance is the maximum positional error, in pixels, at which
	// a released cluster locks onto a neighbor.
	SnapDistance float64 `yaml:"snap_distance"`

	// LockOnSnap stops the release scan after the first merge, so a
	// single release performs at most one merge.
	LockOnSnap bool `yaml:"lock_on_snap"`
}

// ShuffleConfig defines the scatter and separation behavior.
type ShuffleConfig struct {
	// Separate enables the post-shuffle overlap relaxation passes.
	Separate bool `yaml:"separate"`

	// Passes is the number of relaxation passes over all cluster pairs.
	Passes int `yaml:"passes"`

	// SpacingFrac is the separation threshold as a fraction of the
	// smaller cell dimension.
	SpacingFrac float64 `yaml:"spacing_frac"`

	// RadiusFrac is the scatter disk radius as a fraction of the smaller
	// viewport dimension.
	RadiusFrac float64 `yaml:"radius_frac"`
}

// AudioConfig defines the snap feedback cue.
type AudioConfig struct {
	// Enabled toggles audio entirely.
	Enabled bool `yaml:"enabled"`

	// Cue is an optional path to a WAV file played on a successful snap.
	// Empty means the built-in synthesized click.
	Cue string `yaml:"cue"`
}
