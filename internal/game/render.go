package game

import (
	"fmt"

	"github.com/yurikov/termsnake/internal/core"
	"github.com/yurikov/termsnake/internal/scores"
)

// Render draws the session into the screen buffer. The playing and paused
// modes show the playfield; the game-over family of modes are full pages,
// matching the classic layout.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	switch s.mode {
	case ModeGameOver:
		s.renderGameOverPage(dst)
		return
	case ModeEnteringName:
		s.renderNameEntryPage(dst)
		return
	case ModeShowingHighScores:
		s.renderHighScoresPage(dst)
		return
	case ModeShowingAudioSettings:
		s.renderAudioPage(dst)
		return
	}

	s.renderHUD(dst)

	if s.tooSmall {
		s.renderOverlay(dst, "Terminal too small", "Resize to continue")
		return
	}

	s.renderPlayfield(dst)

	if s.mode == ModePaused {
		s.renderOverlay(dst, "PAUSED", "Press space to resume")
	}
}

func (s *Session) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d   Speed: %d (level %d)", s.score, s.TickRate(), s.tier)
	dst.DrawText(0, 0, hud)

	sound := "Sound: off"
	if s.audio.SoundEnabled() {
		sound = "Sound: ♪"
	}
	dst.DrawTextColored(dst.Width()-len([]rune(sound))-1, 0, sound, ColorForSound(s.audio.SoundEnabled()))

	if s.TickRate() < s.opts.MaxRate {
		needed := s.opts.TierStep - s.score%s.opts.TierStep
		dst.DrawTextColored(0, 1, fmt.Sprintf(" Next speed up in %d points", needed), core.ColorYellow)
	} else {
		dst.DrawTextColored(0, 1, " Maximum speed reached", core.ColorYellow)
	}

	dst.DrawHLine(0, 2, dst.Width(), '─')
}

// ColorForSound picks the HUD indicator color for the sound state.
func ColorForSound(enabled bool) core.Color {
	if enabled {
		return core.ColorYellow
	}
	return core.ColorGray
}

func (s *Session) renderPlayfield(dst *core.Screen) {
	offX := (dst.Width() - (s.opts.GridW + 2)) / 2
	offY := hudHeight

	dst.DrawBox(core.NewRect(offX, offY, s.opts.GridW+2, s.opts.GridH+2))

	// Cell (0,0) maps just inside the border.
	dst.SetColored(offX+1+s.food.X, offY+1+s.food.Y, '*', core.ColorBrightRed)

	for i, seg := range s.snake.Body() {
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = 'O', core.ColorBrightGreen
		}
		dst.SetColored(offX+1+seg.X, offY+1+seg.Y, r, c)
	}
}

func (s *Session) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredColored(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}

func (s *Session) renderGameOverPage(dst *core.Screen) {
	y := dst.Height()/2 - 5

	dst.DrawTextCenteredColored(y, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("(%s)", s.death))

	if s.newHighScore {
		dst.DrawTextCenteredColored(y+3, "NEW HIGH SCORE!", core.ColorBrightYellow)
	}

	dst.DrawTextCentered(y+4, fmt.Sprintf("Final score: %d", s.score))

	if top := s.board.Top(1); len(top) > 0 {
		dst.DrawTextCenteredColored(y+5, fmt.Sprintf("Best: %d by %s", top[0].Score, top[0].Name), core.ColorYellow)
	}

	dst.DrawTextCentered(y+7, "Space: play again")
	dst.DrawTextCentered(y+8, "H: high scores   M: audio settings")
	dst.DrawTextCentered(y+9, "Esc: quit")
}

func (s *Session) renderNameEntryPage(dst *core.Screen) {
	y := dst.Height()/2 - 6

	dst.DrawTextCenteredColored(y, "NEW HIGH SCORE!", core.ColorBrightYellow)
	dst.DrawTextCentered(y+2, fmt.Sprintf("Score: %d points", s.score))
	dst.DrawTextCentered(y+4, "Enter your name:")

	boxW := 20
	box := core.NewRect((dst.Width()-boxW)/2, y+5, boxW, 3)
	dst.DrawBox(box)

	display := string(s.nameBuf)
	// Blinking cursor while there is room left.
	if (s.tick/10)%2 == 0 && len(s.nameBuf) < scores.MaxNameLen {
		display += "|"
	}
	dst.DrawText(box.X+2, box.Y+1, display)
	dst.DrawTextColored(box.Right()-5, box.Bottom(), fmt.Sprintf("%d/%d", len(s.nameBuf), scores.MaxNameLen), core.ColorGray)

	dst.DrawTextCentered(y+9, "Enter: submit   Backspace: delete")
	dst.DrawTextCentered(y+10, "Esc: use 'Anonymous'")
}

func (s *Session) renderHighScoresPage(dst *core.Screen) {
	dst.DrawTextCenteredColored(2, "HIGH SCORES", core.ColorBrightYellow)

	top := s.board.Top(5)
	if len(top) == 0 {
		dst.DrawTextCentered(5, "No high scores yet!")
		dst.DrawTextCentered(6, "Play a game to set the first score.")
	} else {
		startY := 5
		x := core.Max(1, dst.Width()/2-18)
		for i, e := range top {
			color := core.ColorDefault
			if i == 0 {
				color = core.ColorBrightYellow
			}
			line := fmt.Sprintf("%d. %-6d %-12s", i+1, e.Score, e.Name)
			dst.DrawTextColored(x, startY+i*2, line, color)
			dst.DrawTextColored(x+3, startY+i*2+1, e.Date, core.ColorGray)
		}
	}

	dst.DrawTextCentered(dst.Height()-3, "Space: back")
	dst.DrawTextCentered(dst.Height()-2, "Esc: quit")
}

func (s *Session) renderAudioPage(dst *core.Screen) {
	dst.DrawTextCenteredColored(2, "AUDIO SETTINGS", core.ColorBrightYellow)

	enabled := "OFF"
	if s.audio.SoundEnabled() {
		enabled = "ON"
	}
	dst.DrawTextCentered(5, fmt.Sprintf("Sound effects: %s", enabled))
	dst.DrawTextCentered(6, fmt.Sprintf("Music volume: %.1f", s.audio.MusicVolume()))
	dst.DrawTextCentered(7, fmt.Sprintf("SFX volume: %.1f", s.audio.SFXVolume()))

	dst.DrawTextCentered(10, "S: toggle sound effects")
	dst.DrawTextCentered(11, "Up/Down: music volume")
	dst.DrawTextCentered(12, "Shift+Up/Down: SFX volume")
	dst.DrawTextCentered(13, "Space: back   M: close")
}
