// Package audio plays short procedural sound cues for engine events.
package audio

import (
	"fmt"

	"github.com/vovakirdan/brickcanvas/internal/games/breakout"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueStart
	CueWall
	CuePaddle
	CueBlock
	CueLifeLost
	CueLevelUp
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CueStart:
		return "start"
	case CueWall:
		return "wall"
	case CuePaddle:
		return "paddle"
	case CueBlock:
		return "block"
	case CueLifeLost:
		return "life_lost"
	case CueLevelUp:
		return "level_up"
	case CueGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// CueFor maps an engine event to its cue.
func CueFor(ev breakout.Event) Cue {
	switch ev.Kind {
	case breakout.EventPhaseChanged:
		if ev.Phase == breakout.PhaseRunning {
			return CueStart
		}
	case breakout.EventWallBounce:
		return CueWall
	case breakout.EventPaddleHit:
		return CuePaddle
	case breakout.EventBlockDestroyed:
		return CueBlock
	case breakout.EventLifeLost:
		return CueLifeLost
	case breakout.EventLevelUp:
		return CueLevelUp
	case breakout.EventGameOver:
		return CueGameOver
	}
	return CueNone
}

// Sink plays cues.
type Sink interface {
	Play(Cue)
}

// Observer returns an engine observer forwarding event cues to sink.
func Observer(sink Sink) breakout.Observer {
	return func(ev breakout.Event) {
		if c := CueFor(ev); c != CueNone {
			sink.Play(c)
		}
	}
}
