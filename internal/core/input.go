package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps raw terminal keys to actions at the boundary,
// keeping the game core free of any input-library vocabulary.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Arrow up, w - steer up
	ActionDown               // Arrow down, s - steer down
	ActionLeft               // Arrow left, a - steer left
	ActionRight              // Arrow right, d - steer right
	ActionPause              // Space - pause/resume while playing
	ActionRestart            // Space - restart after game over
	ActionQuit               // Esc, q, Ctrl+C - exit
	ActionConfirm            // Enter - submit name entry
	ActionCancel             // Esc - cancel name entry (submits Anonymous)
	ActionBackspace          // Backspace - delete last name character
	ActionBack               // Space, b - leave an overlay screen
	ActionShowScores         // H - toggle high-score list on game over
	ActionAudioPanel         // M - toggle the audio settings overlay
	ActionSoundToggle        // S - enable/disable sound (audio panel)
	ActionMusicUp            // Up - raise music volume (audio panel)
	ActionMusicDown          // Down - lower music volume (audio panel)
	ActionSfxUp              // Shift+Up - raise SFX volume (audio panel)
	ActionSfxDown            // Shift+Down - lower SFX volume (audio panel)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionBackspace:
		return "Backspace"
	case ActionBack:
		return "Back"
	case ActionShowScores:
		return "ShowScores"
	case ActionAudioPanel:
		return "AudioPanel"
	case ActionSoundToggle:
		return "SoundToggle"
	case ActionMusicUp:
		return "MusicUp"
	case ActionMusicDown:
		return "MusicDown"
	case ActionSfxUp:
		return "SfxUp"
	case ActionSfxDown:
		return "SfxDown"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input gathered during one simulation tick.
// Besides semantic actions it carries the printable runes typed this frame,
// which the game consumes only while in name entry.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Runes holds printable characters typed this frame, in order.
	Runes []rune
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

// AppendRune records a printable character typed this frame.
func (f *InputFrame) AppendRune(r rune) {
	f.Runes = append(f.Runes, r)
}

// Clear resets all actions and typed runes for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Runes = append(clone.Runes, f.Runes...)
	return clone
}
