// Package breakout implements the brick-breaking game engine: ball, paddle
// and block simulation, collision resolution, scoring, level progression and
// drawing onto a canvas.Surface.
package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickcanvas/internal/core"
)

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first start
	PhaseRunning               // Simulation advancing every frame
	PhasePaused                // Frame loop alive, simulation frozen
	PhaseGameOver              // No lives left; only Start or Reset leave it
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Ball is the single ball in play.
type Ball struct {
	Pos    core.Vec   `json:"pos"`
	Vel    core.Vec   `json:"vel"`
	Radius float64    `json:"radius"`
	Color  core.Color `json:"color"`
}

// Paddle is the player's paddle. X and Y are the top-left corner.
type Paddle struct {
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Speed  float64    `json:"speed"`
	Color  core.Color `json:"color"`
}

// Rect returns the paddle bounds.
func (p Paddle) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the paddle's horizontal center.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Block is one brick of the grid. Destroyed blocks stay in the slice.
type Block struct {
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Color     core.Color `json:"color"`
	Destroyed bool       `json:"destroyed"`
	Points    int        `json:"points"`
}

// Rect returns the block bounds.
func (b Block) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// GameState is the complete simulation state.
type GameState struct {
	Phase  Phase   `json:"phase"`
	Score  int     `json:"score"`
	Lives  int     `json:"lives"`
	Level  int     `json:"level"`
	Ball   Ball    `json:"ball"`
	Paddle Paddle  `json:"paddle"`
	Blocks []Block `json:"blocks"`
}

// Running reports whether a run is in progress, paused or not.
func (s GameState) Running() bool {
	return s.Phase == PhaseRunning || s.Phase == PhasePaused
}

// Paused reports whether the run is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// Remaining returns the number of blocks not yet destroyed.
func (s GameState) Remaining() int {
	n := 0
	for _, b := range s.Blocks {
		if !b.Destroyed {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the state for determinism testing.
func (s GameState) Hash() uint64 {
	h := uint64(s.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Level) //#nosec G115 -- hash computation

	for _, f := range []float64{
		s.Ball.Pos.X, s.Ball.Pos.Y, s.Ball.Vel.X, s.Ball.Vel.Y,
		s.Paddle.X, s.Paddle.Y, s.Paddle.Width,
	} {
		h = h*31 + math.Float64bits(f)
	}

	for _, b := range s.Blocks {
		if b.Destroyed {
			h = h*31 + 1
		} else {
			h = h*31 + 2
		}
	}
	return h
}
