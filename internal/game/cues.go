package game

import "time"

// Cue is a named audio event. The session emits cues; how (or whether) they
// are synthesized is the audio collaborator's business.
type Cue int

const (
	CueEat Cue = iota
	CueGameOver
	CueHighScore
	CueLevelUp
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueGameOver:
		return "game_over"
	case CueHighScore:
		return "high_score"
	case CueLevelUp:
		return "level_up"
	default:
		return "unknown"
	}
}

// AudioControl is what the session needs from the audio collaborator: cue
// playback plus the settings shown on the audio panel. Volumes are in [0,1].
type AudioControl interface {
	Play(Cue)
	ToggleSound() bool
	SoundEnabled() bool
	AdjustMusicVolume(delta float64) float64
	AdjustSFXVolume(delta float64) float64
	MusicVolume() float64
	SFXVolume() float64
}

// RunRecorder receives finished runs for history storage. Implementations
// are best-effort; the session never checks for errors.
type RunRecorder interface {
	RecordRun(name string, score int, duration time.Duration)
}

// NopAudio is an AudioControl that does nothing. Used when the audio device
// is unavailable and in tests.
type NopAudio struct {
	enabled bool
	music   float64
	sfx     float64
}

// NewNopAudio creates a silent audio control with the given settings so the
// audio panel still works without a device.
func NewNopAudio(enabled bool, music, sfx float64) *NopAudio {
	return &NopAudio{enabled: enabled, music: music, sfx: sfx}
}

func (n *NopAudio) Play(Cue) {}

func (n *NopAudio) ToggleSound() bool {
	n.enabled = !n.enabled
	return n.enabled
}

func (n *NopAudio) SoundEnabled() bool { return n.enabled }

func (n *NopAudio) AdjustMusicVolume(delta float64) float64 {
	n.music = clampUnit(n.music + delta)
	return n.music
}

func (n *NopAudio) AdjustSFXVolume(delta float64) float64 {
	n.sfx = clampUnit(n.sfx + delta)
	return n.sfx
}

func (n *NopAudio) MusicVolume() float64 { return n.music }
func (n *NopAudio) SFXVolume() float64   { return n.sfx }

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
