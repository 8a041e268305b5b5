package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain pulls every sample out of a finite streamer.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()

	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = append(out, frame[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer did not finish")
	return nil
}

func TestToneLength(t *testing.T) {
	tone := NewTone(sampleRate, 440, 100*time.Millisecond, 0.5)
	samples := drain(t, tone)

	want := sampleRate.N(100 * time.Millisecond)
	if len(samples) != want {
		t.Errorf("Tone produced %d samples, expected %d", len(samples), want)
	}
}

func TestToneAmplitudeBounded(t *testing.T) {
	tone := NewTone(sampleRate, 440, 50*time.Millisecond, 0.5)

	for i, v := range drain(t, tone) {
		if math.Abs(v) > 0.5 {
			t.Fatalf("Sample %d = %f exceeds amplitude 0.5", i, v)
		}
	}
}

func TestToneEnvelopeStartsAndEndsQuiet(t *testing.T) {
	tone := NewTone(sampleRate, 440, 100*time.Millisecond, 0.5)
	samples := drain(t, tone)

	if math.Abs(samples[0]) > 0.001 {
		t.Errorf("First sample = %f, expected a silent attack", samples[0])
	}
	if last := samples[len(samples)-1]; math.Abs(last) > 0.001 {
		t.Errorf("Last sample = %f, expected a silent release", last)
	}
}

func TestToneRestIsSilent(t *testing.T) {
	rest := NewTone(sampleRate, 0, 30*time.Millisecond, 0.5)

	for i, v := range drain(t, rest) {
		if v != 0 {
			t.Fatalf("Rest sample %d = %f, expected silence", i, v)
		}
	}
}

func TestSequenceConcatenatesNotes(t *testing.T) {
	notes := []Note{
		{Freq: 400, Dur: 60 * time.Millisecond},
		{Freq: 600, Dur: 60 * time.Millisecond},
		{Freq: 800, Dur: 60 * time.Millisecond},
	}
	samples := drain(t, Sequence(notes, 0.3))

	want := 3 * sampleRate.N(60*time.Millisecond)
	if len(samples) != want {
		t.Errorf("Sequence produced %d samples, expected %d", len(samples), want)
	}
}

func TestMelodyLoopsForever(t *testing.T) {
	melody := NewMelody(sampleRate, []Note{
		{Freq: 220, Dur: 10 * time.Millisecond},
		{Freq: 330, Dur: 10 * time.Millisecond},
	})

	buf := make([][2]float64, 1024)
	total := 0
	for i := 0; i < 100; i++ {
		n, ok := melody.Stream(buf)
		if !ok {
			t.Fatal("Melody stopped streaming")
		}
		if n != len(buf) {
			t.Fatalf("Melody filled %d of %d samples", n, len(buf))
		}
		total += n
	}

	// Far more samples than one pass through the pattern.
	if pattern := 2 * sampleRate.N(10*time.Millisecond); total <= pattern {
		t.Errorf("Melody produced %d samples, expected more than one %d-sample pass", total, pattern)
	}
}

func TestGainScalesSamples(t *testing.T) {
	tone := NewTone(sampleRate, 440, 50*time.Millisecond, 1)
	loud := drain(t, tone)

	tone = NewTone(sampleRate, 440, 50*time.Millisecond, 1)
	quiet := drain(t, &gain{streamer: tone, level: 0.25})

	if len(loud) != len(quiet) {
		t.Fatalf("Gain changed sample count: %d vs %d", len(loud), len(quiet))
	}
	for i := range loud {
		if want := loud[i] * 0.25; math.Abs(quiet[i]-want) > 1e-9 {
			t.Fatalf("Sample %d = %f, expected %f", i, quiet[i], want)
		}
	}
}
