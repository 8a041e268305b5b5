package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yurikov/termsnake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Several keys map to more than one action (space is pause, restart, and
// back; escape is quit and cancel). The game consumes only the action that
// applies to its current mode, so the mapper stays mode-free.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message. Printable
// runes are recorded alongside actions so name entry can read them.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) {
	switch msg.String() {
	case "ctrl+c":
		frame.Set(core.ActionQuit)
		return
	case "esc":
		frame.Set(core.ActionQuit)
		frame.Set(core.ActionCancel)
		return
	case "enter":
		frame.Set(core.ActionConfirm)
		return
	case "backspace":
		frame.Set(core.ActionBackspace)
		return
	case "up":
		frame.Set(core.ActionUp)
		frame.Set(core.ActionMusicUp)
		return
	case "down":
		frame.Set(core.ActionDown)
		frame.Set(core.ActionMusicDown)
		return
	case "left":
		frame.Set(core.ActionLeft)
		return
	case "right":
		frame.Set(core.ActionRight)
		return
	case "shift+up":
		frame.Set(core.ActionSfxUp)
		return
	case "shift+down":
		frame.Set(core.ActionSfxDown)
		return
	case " ":
		frame.Set(core.ActionPause)
		frame.Set(core.ActionRestart)
		frame.Set(core.ActionBack)
		frame.AppendRune(' ')
		return
	}

	// Letter keys double as name-entry characters, so record the rune in
	// addition to any action.
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			frame.AppendRune(r)
		}
	}

	switch msg.String() {
	case "q":
		frame.Set(core.ActionQuit)
	case "w", "k":
		frame.Set(core.ActionUp)
	case "s":
		frame.Set(core.ActionDown)
		frame.Set(core.ActionSoundToggle)
	case "j":
		frame.Set(core.ActionDown)
	case "a":
		frame.Set(core.ActionLeft)
	case "h":
		frame.Set(core.ActionLeft)
		frame.Set(core.ActionShowScores)
	case "l", "d":
		frame.Set(core.ActionRight)
	case "p":
		frame.Set(core.ActionPause)
	case "r":
		frame.Set(core.ActionRestart)
	case "b":
		frame.Set(core.ActionBack)
	case "m":
		frame.Set(core.ActionAudioPanel)
	}
}
