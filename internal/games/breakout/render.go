package breakout

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/brickcanvas/internal/canvas"
	"github.com/vovakirdan/brickcanvas/internal/core"
)

// Drawing constants, in surface pixels
const (
	blockRadius   = 4
	hudMargin     = 20
	hudBaseline   = 30
	hudFontSize   = 20
	titleFontSize = 36
	textFontSize  = 18
	panelWidth    = 420
	panelHeight   = 140
	panelRadius   = 12
)

// Render draws the current state. It has no effect on the simulation.
func (e *Engine) Render() {
	if e.destroyed {
		return
	}
	ctx := e.ctx
	w, h := e.width, e.height
	s := &e.state

	// Background
	ctx.Clear(e.theme.bgTop)
	ctx.SetShadow(canvas.Shadow{})
	ctx.SetFill(canvas.Linear(0, 0, 0, h,
		canvas.Stop{Offset: 0, Color: e.theme.bgTop},
		canvas.Stop{Offset: 1, Color: e.theme.bgBottom},
	))
	ctx.FillRect(0, 0, w, h)

	e.drawBlocks()
	e.drawPaddle()
	e.drawBall()
	e.drawHUD()

	switch s.Phase {
	case PhaseIdle:
		e.drawOverlay("BRICKCANVAS", "Press SPACE, click or tap to start")
	case PhasePaused:
		e.drawOverlay("PAUSED", "Press SPACE to resume")
	case PhaseGameOver:
		e.drawOverlay("GAME OVER", fmt.Sprintf("Final score %d - press SPACE to play again", s.Score))
	}
}

func (e *Engine) drawBlocks() {
	ctx := e.ctx
	for _, b := range e.state.Blocks {
		if b.Destroyed {
			continue
		}
		ctx.SetFill(canvas.Linear(b.X, b.Y, b.X, b.Y+b.Height,
			canvas.Stop{Offset: 0, Color: b.Color.Blend(core.ColorWhite, 0.25)},
			canvas.Stop{Offset: 1, Color: b.Color},
		))
		ctx.BeginPath()
		ctx.RoundRect(b.X, b.Y, b.Width, b.Height, blockRadius)
		ctx.Fill()
	}
}

func (e *Engine) drawPaddle() {
	ctx := e.ctx
	p := e.state.Paddle

	ctx.SetShadow(canvas.Shadow{Color: p.Color, Blur: 10})
	ctx.SetFill(canvas.Solid(p.Color))
	ctx.BeginPath()
	ctx.RoundRect(p.X, p.Y, p.Width, p.Height, p.Height/2)
	ctx.Fill()
	ctx.SetShadow(canvas.Shadow{})
}

func (e *Engine) drawBall() {
	ctx := e.ctx
	b := e.state.Ball

	ctx.SetShadow(canvas.Shadow{Color: b.Color, Blur: 15})
	ctx.SetFill(canvas.Solid(b.Color))
	ctx.BeginPath()
	ctx.Arc(b.Pos.X, b.Pos.Y, b.Radius, 0, 2*math.Pi)
	ctx.Fill()
	ctx.SetShadow(canvas.Shadow{})
}

func (e *Engine) drawHUD() {
	ctx := e.ctx
	s := e.state

	ctx.SetFont(hudFontSize, true)
	ctx.SetFill(canvas.Solid(e.theme.text))
	ctx.FillText(fmt.Sprintf("Score: %d", s.Score), hudMargin, hudBaseline, canvas.AlignLeft)
	ctx.FillText(fmt.Sprintf("Level %d", s.Level), e.width/2, hudBaseline, canvas.AlignCenter)

	ctx.SetFill(canvas.Solid(e.theme.accent))
	ctx.FillText("Lives: "+strings.Repeat("♥", s.Lives), e.width-hudMargin, hudBaseline, canvas.AlignRight)
}

// drawOverlay draws a centered modal panel with a title and a hint line.
func (e *Engine) drawOverlay(title, hint string) {
	ctx := e.ctx
	cx, cy := e.width/2, e.height/2
	pw := math.Min(panelWidth, e.width-2*hudMargin)

	ctx.SetShadow(canvas.Shadow{Color: core.ColorBlack, Blur: 20, OffsetY: 4})
	ctx.SetFill(canvas.Solid(e.theme.overlay))
	ctx.BeginPath()
	ctx.RoundRect(cx-pw/2, cy-panelHeight/2, pw, panelHeight, panelRadius)
	ctx.Fill()
	ctx.SetShadow(canvas.Shadow{})

	ctx.SetStroke(canvas.Solid(e.theme.accent), 2)
	ctx.Stroke()

	ctx.SetFont(titleFontSize, true)
	ctx.SetFill(canvas.Solid(e.theme.accent))
	ctx.FillText(title, cx, cy-20, canvas.AlignCenter)

	ctx.SetFont(textFontSize, false)
	ctx.SetFill(canvas.Solid(e.theme.text))
	ctx.FillText(hint, cx, cy+25, canvas.AlignCenter)
}
