package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the game to work with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionShuffle        // S - re-scatter the pieces
	ActionReset          // R - return every cluster to its target position
	ActionGhost          // G - toggle the dimmed full-picture preview
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionShuffle:
		return "Shuffle"
	case ActionReset:
		return "Reset"
	case ActionGhost:
		return "Ghost"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the pointer event types fed to the game.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is a single pointer event in viewport pixel coordinates.
// The platform layer translates terminal mouse cells into pixel positions;
// the game never sees raw mouse messages.
type PointerEvent struct {
	Kind PointerKind
	Pos  Vec
}

// InputFrame represents the input state for a single simulation tick:
// all actions triggered during the frame plus the pointer events received
// since the previous tick, in arrival order.
type InputFrame struct {
	Actions map[Action]bool
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event for this frame.
func (f *InputFrame) AddPointer(kind PointerKind, pos Vec) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: kind, Pos: pos})
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = append(clone.Pointer, f.Pointer...)
	return clone
}
