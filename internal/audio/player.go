package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/yurikov/termsnake/internal/game"
)

// Amplitudes before the user volume is applied. Kept low so stacked cues
// don't clip.
const (
	sfxBaseAmp   = 0.35
	musicBaseAmp = 0.18
)

// cueNotes are the tone sequences for each game cue.
var cueNotes = map[game.Cue][]Note{
	game.CueEat: {
		{Freq: 400, Dur: 60 * time.Millisecond},
		{Freq: 600, Dur: 60 * time.Millisecond},
		{Freq: 800, Dur: 60 * time.Millisecond},
	},
	game.CueGameOver: {
		{Freq: 400, Dur: 150 * time.Millisecond},
		{Freq: 300, Dur: 150 * time.Millisecond},
		{Freq: 200, Dur: 250 * time.Millisecond},
	},
	game.CueHighScore: {
		{Freq: 523, Dur: 100 * time.Millisecond},
		{Freq: 659, Dur: 100 * time.Millisecond},
		{Freq: 784, Dur: 100 * time.Millisecond},
		{Freq: 1047, Dur: 200 * time.Millisecond},
	},
	game.CueLevelUp: {
		{Freq: 440, Dur: 80 * time.Millisecond},
		{Freq: 554, Dur: 80 * time.Millisecond},
		{Freq: 659, Dur: 120 * time.Millisecond},
	},
}

// backgroundMelody is a slow minor arpeggio looped under play.
var backgroundMelody = []Note{
	{Freq: 220.00, Dur: 280 * time.Millisecond},
	{Freq: 261.63, Dur: 280 * time.Millisecond},
	{Freq: 329.63, Dur: 280 * time.Millisecond},
	{Freq: 440.00, Dur: 280 * time.Millisecond},
	{Freq: 329.63, Dur: 280 * time.Millisecond},
	{Freq: 261.63, Dur: 280 * time.Millisecond},
	{Freq: 0, Dur: 560 * time.Millisecond},
}

// gain scales another streamer. Level mutations on a playing gain must
// happen under speaker.Lock.
type gain struct {
	streamer beep.Streamer
	level    float64
}

func (g *gain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= g.level
		samples[i][1] *= g.level
	}
	return n, ok
}

func (g *gain) Err() error {
	return g.streamer.Err()
}

// Player implements the game's audio control on a real speaker. All methods
// are safe without Initialize; they fall back to settings-only behavior so
// the audio panel works even when no device is available.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	musicCtrl   *beep.Ctrl
	musicGain   *gain
	enabled     bool
	musicVol    float64
	sfxVol      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player with the given settings. Call Initialize before
// expecting sound. logger may be nil.
func NewPlayer(enabled bool, musicVol, sfxVol float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:    &beep.Mixer{},
		enabled:  enabled,
		musicVol: clampUnit(musicVol),
		sfxVol:   clampUnit(sfxVol),
		logger:   logger,
	}
}

// Initialize opens the speaker and starts the background music loop.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	p.musicGain = &gain{
		streamer: NewMelody(sampleRate, backgroundMelody),
		level:    musicBaseAmp * p.musicVol,
	}
	p.musicCtrl = &beep.Ctrl{Streamer: p.musicGain, Paused: !p.enabled}
	p.mixer.Add(p.musicCtrl)

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything. The speaker itself stays open; beep has no
// teardown for it.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.musicCtrl != nil {
		p.musicCtrl.Paused = true
	}
	speaker.Unlock()

	p.mixer.Clear()
	p.initialized = false
}

// Play queues the cue's tone sequence onto the mixer.
func (p *Player) Play(c game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled {
		return
	}

	notes, ok := cueNotes[c]
	if !ok {
		p.logger.Debug("unknown audio cue", "cue", c)
		return
	}

	streamer := Sequence(notes, sfxBaseAmp*p.sfxVol)
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// ToggleSound flips the master switch, pausing or resuming the music and
// muting cues. Returns the new state.
func (p *Player) ToggleSound() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = !p.enabled

	if p.initialized && p.musicCtrl != nil {
		speaker.Lock()
		p.musicCtrl.Paused = !p.enabled
		speaker.Unlock()
	}
	return p.enabled
}

// SoundEnabled reports the master switch.
func (p *Player) SoundEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// AdjustMusicVolume changes the music volume by delta, clamped to [0, 1],
// and applies it to the playing loop. Returns the new volume.
func (p *Player) AdjustMusicVolume(delta float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicVol = clampUnit(p.musicVol + delta)

	if p.initialized && p.musicGain != nil {
		speaker.Lock()
		p.musicGain.level = musicBaseAmp * p.musicVol
		speaker.Unlock()
	}
	return p.musicVol
}

// AdjustSFXVolume changes the effects volume by delta, clamped to [0, 1].
// Applies to cues started after the change. Returns the new volume.
func (p *Player) AdjustSFXVolume(delta float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sfxVol = clampUnit(p.sfxVol + delta)
	return p.sfxVol
}

// MusicVolume returns the music volume in [0, 1].
func (p *Player) MusicVolume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicVol
}

// SFXVolume returns the effects volume in [0, 1].
func (p *Player) SFXVolume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sfxVol
}

var _ game.AudioControl = (*Player)(nil)

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
