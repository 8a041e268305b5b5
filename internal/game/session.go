package game

import (
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/yurikov/termsnake/internal/core"
	"github.com/yurikov/termsnake/internal/scores"
)

// volumeStep is the per-keypress volume change on the audio panel.
const volumeStep = 0.1

// hudHeight is the number of screen rows above the playfield.
const hudHeight = 3

// Options hold the per-installation game parameters.
type Options struct {
	GridW        int // Playfield width in cells
	GridH        int // Playfield height in cells
	InitialRate  int // Ticks per second at tier 1
	MaxRate      int // Tick rate cap
	ScorePerFood int // Points per food eaten
	TierStep     int // Points per speed tier
}

// DefaultOptions mirror the classic settings: slow start, speeding up every
// three food items.
func DefaultOptions() Options {
	return Options{
		GridW:        40,
		GridH:        18,
		InitialRate:  5,
		MaxRate:      20,
		ScorePerFood: 10,
		TierStep:     30,
	}
}

// Session owns one player's game: the snake, the food, the score, and the
// mode state machine routing input between playing, pause, game over, name
// entry, the high-score list, and the audio panel. All mutation happens
// synchronously inside Step; there is no concurrency here.
type Session struct {
	opts    Options
	rng     *rand.Rand
	spawner *Spawner

	snake *Snake
	food  core.Point

	score int
	tier  int
	death DeathCause
	tick  uint64

	mode     Mode
	prevMode Mode // Mode to return to when the audio panel closes

	nameBuf      []rune
	newHighScore bool
	runRecorded  bool
	startedAt    time.Time

	board    *scores.Board
	audio    AudioControl
	recorder RunRecorder

	screenW  int
	screenH  int
	tooSmall bool
}

// NewSession creates a session. The board must be non-nil; audio may be nil
// for a silent session and recorder may be nil to skip run history.
func NewSession(opts Options, board *scores.Board, audio AudioControl, recorder RunRecorder, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if audio == nil {
		audio = NewNopAudio(false, 0, 0)
	}

	s := &Session{
		opts:     opts,
		rng:      rand.New(rand.NewSource(seed)),
		board:    board,
		audio:    audio,
		recorder: recorder,
		screenW:  opts.GridW + 2,
		screenH:  opts.GridH + hudHeight + 2,
	}
	s.spawner = NewSpawner(s.rng)
	s.Reset()
	return s
}

// Reset starts a fresh run: length-1 snake at the center facing right, new
// food, zero score, tier 1, playing mode.
func (s *Session) Reset() {
	s.snake = NewSnake(s.opts.GridW, s.opts.GridH)
	s.food = s.spawner.Spawn(s.opts.GridW, s.opts.GridH, s.snake.Occupies)
	s.score = 0
	s.tier = 1
	s.death = DeathNone
	s.mode = ModePlaying
	s.prevMode = ModePlaying
	s.nameBuf = s.nameBuf[:0]
	s.newHighScore = false
	s.runRecorded = false
	s.startedAt = time.Now()
}

// SetViewport tells the session the terminal size so it can report when the
// playfield no longer fits. While too small, the simulation is held.
func (s *Session) SetViewport(w, h int) {
	s.screenW = w
	s.screenH = h
	s.tooSmall = w < s.opts.GridW+2 || h < s.opts.GridH+hudHeight+2
}

// Step consumes one frame of input and, while playing, advances the snake by
// one tick. Returns true when the player asked to quit.
func (s *Session) Step(in core.InputFrame) (quit bool) {
	s.tick++

	// Name entry captures all keys, including escape.
	if s.mode == ModeEnteringName {
		s.handleNameEntry(in)
		return false
	}

	if in.Has(core.ActionQuit) {
		return true
	}
	if in.Has(core.ActionAudioPanel) {
		s.toggleAudioPanel()
		return false
	}

	switch s.mode {
	case ModePlaying:
		s.handlePlaying(in)
	case ModePaused:
		if in.Has(core.ActionPause) {
			s.mode = ModePlaying
		}
	case ModeGameOver:
		s.handleGameOver(in)
	case ModeShowingHighScores:
		if in.Has(core.ActionBack) || in.Has(core.ActionShowScores) {
			s.mode = ModeGameOver
		}
	case ModeShowingAudioSettings:
		s.handleAudioPanel(in)
	}
	return false
}

func (s *Session) handlePlaying(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		s.snake.SetDirection(DirUp)
	case in.Has(core.ActionDown):
		s.snake.SetDirection(DirDown)
	case in.Has(core.ActionLeft):
		s.snake.SetDirection(DirLeft)
	case in.Has(core.ActionRight):
		s.snake.SetDirection(DirRight)
	}

	if in.Has(core.ActionPause) {
		s.mode = ModePaused
		return
	}
	if s.tooSmall {
		return
	}

	s.advance()
}

// advance moves the snake one cell and resolves food and death.
func (s *Session) advance() {
	cause := s.snake.Move(s.opts.GridW, s.opts.GridH)
	if cause != DeathNone {
		s.endRun(cause)
		return
	}

	if s.snake.Head() != s.food {
		return
	}

	s.snake.MarkGrowth()
	s.score += s.opts.ScorePerFood
	s.audio.Play(CueEat)
	s.food = s.spawner.Spawn(s.opts.GridW, s.opts.GridH, s.snake.Occupies)

	if tier := s.speedTier(); tier > s.tier {
		s.tier = tier
		s.audio.Play(CueLevelUp)
	}
}

// endRun transitions out of play after a fatal move. A qualifying score goes
// through name entry first; otherwise the run is recorded immediately.
func (s *Session) endRun(cause DeathCause) {
	s.death = cause
	s.audio.Play(CueGameOver)

	if s.board.IsHighScore(s.score) {
		s.mode = ModeEnteringName
		s.nameBuf = s.nameBuf[:0]
		s.newHighScore = false
		s.audio.Play(CueHighScore)
		return
	}

	s.mode = ModeGameOver
	s.newHighScore = false
	s.recordRun(scores.DefaultName)
}

func (s *Session) handleNameEntry(in core.InputFrame) {
	switch {
	case in.Has(core.ActionConfirm):
		s.submitName(string(s.nameBuf))
	case in.Has(core.ActionCancel):
		s.submitName("")
	case in.Has(core.ActionBackspace):
		if len(s.nameBuf) > 0 {
			s.nameBuf = s.nameBuf[:len(s.nameBuf)-1]
		}
	default:
		for _, r := range in.Runes {
			if len(s.nameBuf) >= scores.MaxNameLen {
				break
			}
			if unicode.IsPrint(r) && r != '\r' && r != '\n' {
				s.nameBuf = append(s.nameBuf, r)
			}
		}
	}
}

// submitName finishes name entry: the trimmed name (or Anonymous) goes onto
// the leaderboard and the session lands on the game-over screen.
func (s *Session) submitName(raw string) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = scores.DefaultName
	}

	s.board.Add(s.score, name)
	s.newHighScore = true
	s.mode = ModeGameOver
	s.audio.Play(CueHighScore)
	s.recordRun(name)
}

func (s *Session) handleGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		s.Reset()
	case in.Has(core.ActionShowScores):
		s.mode = ModeShowingHighScores
	}
}

func (s *Session) handleAudioPanel(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		s.mode = s.prevMode
	case in.Has(core.ActionSoundToggle):
		s.audio.ToggleSound()
	case in.Has(core.ActionSfxUp):
		s.audio.AdjustSFXVolume(volumeStep)
	case in.Has(core.ActionSfxDown):
		s.audio.AdjustSFXVolume(-volumeStep)
	case in.Has(core.ActionMusicUp):
		s.audio.AdjustMusicVolume(volumeStep)
	case in.Has(core.ActionMusicDown):
		s.audio.AdjustMusicVolume(-volumeStep)
	}
}

func (s *Session) toggleAudioPanel() {
	if s.mode == ModeShowingAudioSettings {
		s.mode = s.prevMode
		return
	}
	s.prevMode = s.mode
	s.mode = ModeShowingAudioSettings
}

// recordRun hands the finished run to the history recorder, once per run.
func (s *Session) recordRun(name string) {
	if s.runRecorded {
		return
	}
	s.runRecorded = true
	if s.recorder != nil {
		s.recorder.RecordRun(name, s.score, time.Since(s.startedAt))
	}
}

func (s *Session) speedTier() int {
	return 1 + s.score/s.opts.TierStep
}

// TickRate returns the current simulation rate in ticks per second:
// the initial rate plus one per tier above the first, capped at MaxRate.
func (s *Session) TickRate() int {
	return core.Min(s.opts.MaxRate, s.opts.InitialRate+s.tier-1)
}

// Mode returns the active screen mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Score returns the current run's score.
func (s *Session) Score() int {
	return s.score
}

// SpeedLevel returns the current speed tier, starting at 1.
func (s *Session) SpeedLevel() int {
	return s.tier
}

// Death returns how the last run ended, or DeathNone mid-run.
func (s *Session) Death() DeathCause {
	return s.death
}

// NewHighScore reports whether the finished run made the leaderboard.
func (s *Session) NewHighScore() bool {
	return s.newHighScore
}

// NameBuffer returns the name typed so far during name entry.
func (s *Session) NameBuffer() string {
	return string(s.nameBuf)
}

// Board exposes the leaderboard for rendering.
func (s *Session) Board() *scores.Board {
	return s.board
}
