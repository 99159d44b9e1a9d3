package desktop

import (
	"errors"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/brickcanvas/internal/config"
	"github.com/vovakirdan/brickcanvas/internal/core"
	"github.com/vovakirdan/brickcanvas/internal/frame"
	"github.com/vovakirdan/brickcanvas/internal/games/breakout"
	"github.com/vovakirdan/brickcanvas/internal/input"
	"github.com/vovakirdan/brickcanvas/internal/status"
)

// Options configures the desktop window.
type Options struct {
	Config    config.BreakoutConfig
	Width     int // Initial window width
	Height    int // Initial window height
	TickRate  int
	Board     *status.Board
	Logger    *log.Logger
	Observers []breakout.Observer
	Sound     Sound // Toggled with M, optional
}

// Sound is the audio output the mute key controls.
type Sound interface {
	SetMuted(muted bool)
}

var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionToggle: {ebiten.KeySpace, ebiten.KeyP},
	core.ActionReset:  {ebiten.KeyR},
	core.ActionQuit:   {ebiten.KeyEscape, ebiten.KeyQ},
}

// Game implements ebiten.Game. The engine is created on the first Layout
// call, once the window size is known.
type Game struct {
	opts    Options
	surface *Surface
	engine  *breakout.Engine
	queue   *frame.Queue
	target  *input.Target
	cursor  image.Point
	touches []ebiten.TouchID
	muted   bool
	err     error
}

// NewGame creates a game for the given options.
func NewGame(opts Options) *Game {
	return &Game{
		opts:   opts,
		queue:  frame.NewQueue(),
		target: input.NewTarget(),
	}
}

// Engine returns the engine, or nil before the first Layout.
func (g *Game) Engine() *breakout.Engine {
	return g.engine
}

func (g *Game) start(w, h int) error {
	g.surface = NewSurface(w, h)
	engineOpts := []breakout.Option{
		breakout.WithScheduler(g.queue),
		breakout.WithInput(g.target),
	}
	if g.opts.Logger != nil {
		engineOpts = append(engineOpts, breakout.WithLogger(g.opts.Logger))
	}
	for _, o := range g.opts.Observers {
		engineOpts = append(engineOpts, breakout.WithObserver(o))
	}
	engine, err := breakout.New(g.surface, g.opts.Config, engineOpts...)
	if err != nil {
		return err
	}
	g.engine = engine
	return nil
}

// Update polls input, runs due animation frames and publishes the snapshot.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.engine == nil {
		return nil
	}

	if g.pollKeys() {
		g.engine.Destroy()
		return ebiten.Termination
	}
	g.pollMouse()
	g.pollTouches()

	g.queue.Flush(time.Now())

	if g.opts.Board != nil {
		g.opts.Board.Publish(g.engine.Snapshot())
	}
	return nil
}

// pollKeys dispatches key transitions. It reports whether quit was pressed.
func (g *Game) pollKeys() bool {
	if g.opts.Sound != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.muted = !g.muted
		g.opts.Sound.SetMuted(g.muted)
	}
	for action, keys := range keyBindings {
		for _, k := range keys {
			switch {
			case inpututil.IsKeyJustPressed(k):
				if action == core.ActionQuit {
					return true
				}
				g.target.Dispatch(input.Event{Kind: input.KeyDown, Action: action})
			case inpututil.IsKeyJustReleased(k):
				g.target.Dispatch(input.Event{Kind: input.KeyUp, Action: action})
			}
		}
	}
	return false
}

func (g *Game) pollMouse() {
	x, y := ebiten.CursorPosition()
	if p := image.Pt(x, y); p != g.cursor {
		g.cursor = p
		g.target.Dispatch(input.Event{Kind: input.PointerMove, X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.target.Dispatch(input.Event{Kind: input.Click, X: float64(x), Y: float64(y)})
	}
}

func (g *Game) pollTouches() {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.target.Dispatch(input.Event{Kind: input.TouchStart, X: float64(x), Y: float64(y)})
	}
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		g.target.Dispatch(input.Event{Kind: input.TouchMove, X: float64(x), Y: float64(y)})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.target.Dispatch(input.Event{Kind: input.TouchEnd, X: float64(x), Y: float64(y)})
	}
}

// Draw shows the last rendered canvas.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		return
	}
	screen.DrawImage(g.surface.Image(), nil)
}

// Layout keeps the canvas at the window size and resizes the engine when the
// window changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	switch {
	case g.err != nil:
	case g.engine == nil:
		g.err = g.start(w, h)
	case w != g.surface.Width() || h != g.surface.Height():
		g.surface.Resize(w, h)
		g.engine.ResizeSurface()
	}
	return w, h
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 800, 600
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("brickcanvas")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	g := NewGame(opts)
	err := ebiten.RunGame(g)
	if g.engine != nil {
		g.engine.Destroy()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
