package game

// Mode is the session's active screen. Exactly one mode is active at a time;
// illegal combinations (name entry while not game over, for instance) are
// unrepresentable.
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
	ModeGameOver
	ModeEnteringName
	ModeShowingHighScores
	ModeShowingAudioSettings
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	case ModeEnteringName:
		return "entering_name"
	case ModeShowingHighScores:
		return "showing_high_scores"
	case ModeShowingAudioSettings:
		return "showing_audio_settings"
	default:
		return "unknown"
	}
}
