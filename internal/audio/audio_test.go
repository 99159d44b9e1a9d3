package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/vovakirdan/brickcanvas/internal/games/breakout"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		ev   breakout.Event
		want Cue
	}{
		{breakout.Event{Kind: breakout.EventPhaseChanged, Phase: breakout.PhaseRunning}, CueStart},
		{breakout.Event{Kind: breakout.EventPhaseChanged, Phase: breakout.PhasePaused}, CueNone},
		{breakout.Event{Kind: breakout.EventWallBounce}, CueWall},
		{breakout.Event{Kind: breakout.EventPaddleHit}, CuePaddle},
		{breakout.Event{Kind: breakout.EventBlockDestroyed, Points: 30}, CueBlock},
		{breakout.Event{Kind: breakout.EventLifeLost}, CueLifeLost},
		{breakout.Event{Kind: breakout.EventLevelUp}, CueLevelUp},
		{breakout.Event{Kind: breakout.EventGameOver}, CueGameOver},
	}
	for _, tt := range tests {
		if got := CueFor(tt.ev); got != tt.want {
			t.Errorf("CueFor(%v) = %v, expected %v", tt.ev.Kind, got, tt.want)
		}
	}
}

type recordingSink []Cue

func (r *recordingSink) Play(c Cue) { *r = append(*r, c) }

func TestObserverSkipsSilentEvents(t *testing.T) {
	var sink recordingSink
	obs := Observer(&sink)

	obs(breakout.Event{Kind: breakout.EventPhaseChanged, Phase: breakout.PhaseIdle})
	obs(breakout.Event{Kind: breakout.EventPaddleHit})
	obs(breakout.Event{Kind: breakout.EventBlockDestroyed})

	if len(sink) != 2 || sink[0] != CuePaddle || sink[1] != CueBlock {
		t.Errorf("played %v, expected [paddle block]", sink)
	}
}

func TestStreamerLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	for c := CueStart; c <= CueGameOver; c++ {
		s := Streamer(c, sr, 0)
		if s == nil {
			t.Fatalf("%v: nil streamer", c)
		}

		want := 0
		for _, n := range Notes(c) {
			want += sr.N(n.Dur)
		}

		got, peak := drain(s)
		if got != want {
			t.Errorf("%v: streamed %d samples, expected %d", c, got, want)
		}
		if peak == 0 || peak > 1 {
			t.Errorf("%v: peak amplitude %v out of (0, 1]", c, peak)
		}
	}

	if Streamer(CueNone, sr, 0) != nil {
		t.Error("CueNone should have no streamer")
	}
}

func TestDuration(t *testing.T) {
	if got := Duration(CuePaddle); got != 45*time.Millisecond {
		t.Errorf("Duration(paddle) = %v, expected 45ms", got)
	}
	if got := Duration(CueNone); got != 0 {
		t.Errorf("Duration(none) = %v, expected 0", got)
	}
}

func TestPlayerWithoutSpeakerIsSilent(t *testing.T) {
	p := NewPlayer()
	p.Play(CueBlock) // before Init: dropped
	if p.mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers before Init", p.mixer.Len())
	}
	p.Close()
}

func TestMutedPlayerDropsCues(t *testing.T) {
	p := NewPlayer()
	p.initialized = true // skip the speaker; muted cues never reach it
	defer func() { p.initialized = false }()

	p.SetMuted(true)
	p.Play(CueBlock)
	if p.mixer.Len() != 0 {
		t.Errorf("muted player queued %d streamers", p.mixer.Len())
	}
}

func TestVolumeScalesCues(t *testing.T) {
	p := NewPlayer()
	p.SetVolume(-1)
	if p.volume != -1 {
		t.Fatalf("volume = %v, expected -1", p.volume)
	}

	sr := beep.SampleRate(8000)
	_, full := drain(Streamer(CuePaddle, sr, 0))
	_, half := drain(Streamer(CuePaddle, sr, p.volume))
	if d := half - full/2; d > 1e-9 || d < -1e-9 {
		t.Errorf("peak at volume -1 = %v, expected half of %v", half, full)
	}
}

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for i := range k {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}
