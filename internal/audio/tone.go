package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// Note is one tone of a cue.
type Note struct {
	Freq float64 // Hz; zero is a rest
	Dur  time.Duration
	Wave WaveType
}

// cueNotes holds the melody of every cue.
var cueNotes = map[Cue][]Note{
	CueStart:    {{523.25, 60 * time.Millisecond, WaveSquare}, {783.99, 90 * time.Millisecond, WaveSquare}},
	CueWall:     {{220, 30 * time.Millisecond, WaveTriangle}},
	CuePaddle:   {{440, 45 * time.Millisecond, WaveSquare}},
	CueBlock:    {{880, 40 * time.Millisecond, WaveSquare}, {1174.66, 30 * time.Millisecond, WaveSine}},
	CueLifeLost: {{392, 90 * time.Millisecond, WaveTriangle}, {261.63, 160 * time.Millisecond, WaveTriangle}},
	CueLevelUp: {
		{523.25, 70 * time.Millisecond, WaveSquare},
		{659.25, 70 * time.Millisecond, WaveSquare},
		{783.99, 70 * time.Millisecond, WaveSquare},
		{1046.5, 140 * time.Millisecond, WaveSquare},
	},
	CueGameOver: {
		{392, 150 * time.Millisecond, WaveTriangle},
		{0, 40 * time.Millisecond, WaveSine},
		{329.63, 150 * time.Millisecond, WaveTriangle},
		{261.63, 300 * time.Millisecond, WaveTriangle},
	},
}

// Notes returns the melody for a cue, or nil.
func Notes(c Cue) []Note {
	return cueNotes[c]
}

// Duration returns the total length of a cue.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.Dur
	}
	return d
}

// Streamer renders a cue at the given sample rate and volume (in beep's
// base-2 steps, 0 is unity). It returns nil for CueNone.
func Streamer(c Cue, sr beep.SampleRate, volume float64) beep.Streamer {
	notes := cueNotes[c]
	if len(notes) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n, sr))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: volume}
}

// tone generates one note with a short linear release to avoid clicks.
func tone(n Note, sr beep.SampleRate) beep.Streamer {
	total := sr.N(n.Dur)
	release := min(sr.N(10*time.Millisecond), total)
	phase, pos := 0.0, 0

	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			val := 0.0
			if n.Freq > 0 {
				val = wave(n.Wave, phase) * 0.3
			}
			if left := total - pos; left < release {
				val *= float64(left) / float64(release)
			}
			samples[i][0] = val
			samples[i][1] = val

			phase += n.Freq / float64(sr)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	}))
}

func wave(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
