// Package audio synthesizes the game's sound effects and background music
// with gopxl/beep. Everything is generated at runtime from sine oscillators;
// there are no sound assets to ship.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(44100)

// envelopeTime is the attack/release ramp applied to every tone to avoid
// clicks at note boundaries.
const envelopeTime = 8 * time.Millisecond

// Note is one pitch of a tone sequence. A zero frequency is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

// ToneGenerator streams a single enveloped sine tone of fixed length.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	amp  float64

	pos   int
	total int
	ramp  int
}

// NewTone creates a finite streamer playing freq for dur at the given
// amplitude. Amplitude is expected in [0, 1].
func NewTone(sr beep.SampleRate, freq float64, dur time.Duration, amp float64) *ToneGenerator {
	total := sr.N(dur)
	ramp := sr.N(envelopeTime)
	if ramp*2 > total {
		ramp = total / 2
	}
	return &ToneGenerator{
		sr:    sr,
		freq:  freq,
		amp:   amp,
		total: total,
		ramp:  ramp,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}

		t := float64(g.pos) / float64(g.sr)
		sample := g.amp * math.Sin(2*math.Pi*g.freq*t)

		// Linear attack and release ramps
		if g.pos < g.ramp {
			sample *= float64(g.pos) / float64(g.ramp)
		} else if left := g.total - g.pos; left < g.ramp {
			sample *= float64(left) / float64(g.ramp)
		}

		if g.freq == 0 {
			sample = 0
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// Sequence chains notes into one finite streamer at the given amplitude.
func Sequence(notes []Note, amp float64) beep.Streamer {
	streamers := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		streamers[i] = NewTone(sampleRate, n.Freq, n.Dur, amp)
	}
	return beep.Seq(streamers...)
}

// MelodyGenerator loops a note pattern forever, for background music.
type MelodyGenerator struct {
	sr    beep.SampleRate
	notes []Note

	idx  int
	tone *ToneGenerator
}

// NewMelody creates an endless streamer cycling through notes.
func NewMelody(sr beep.SampleRate, notes []Note) *MelodyGenerator {
	return &MelodyGenerator{sr: sr, notes: notes}
}

func (m *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if len(m.notes) == 0 {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}

	filled := 0
	for filled < len(samples) {
		if m.tone == nil {
			note := m.notes[m.idx%len(m.notes)]
			m.idx++
			m.tone = NewTone(m.sr, note.Freq, note.Dur, 1)
		}

		k, more := m.tone.Stream(samples[filled:])
		filled += k
		if !more {
			m.tone = nil
		}
	}
	return filled, true
}

func (m *MelodyGenerator) Err() error {
	return nil
}
