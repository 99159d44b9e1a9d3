package breakout

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/brickcanvas/internal/canvas"
	"github.com/vovakirdan/brickcanvas/internal/config"
	"github.com/vovakirdan/brickcanvas/internal/core"
	"github.com/vovakirdan/brickcanvas/internal/frame"
	"github.com/vovakirdan/brickcanvas/internal/input"
)

// ErrNoContext is returned by New when the surface has no 2D context.
var ErrNoContext = canvas.ErrNoContext

// nominalFPS is the frame rate the per-frame speeds are tuned for.
const nominalFPS = 60

// Scheduler delivers animation-frame callbacks. *frame.Queue implements it.
type Scheduler interface {
	RequestFrame(cb frame.Callback) frame.ID
	CancelFrame(id frame.ID)
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler sets the frame scheduler. By default the engine owns a
// frame.Queue reachable through Frames.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithInput registers the engine's input handlers on t.
func WithInput(t *input.Target) Option {
	return func(e *Engine) { e.target = t }
}

// WithObserver adds an event observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// WithLogger sets the logger. Logging is discarded by default.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// theme holds the parsed configuration colors.
type theme struct {
	ball, paddle    core.Color
	palette         []core.Color
	bgTop, bgBottom core.Color
	text, accent    core.Color
	overlay         core.Color
}

// Engine runs the game against a drawing surface.
//
// It is not safe for concurrent use: lifecycle calls, input dispatch and
// frame flushes must happen on one goroutine (the host's loop).
type Engine struct {
	surface canvas.Surface
	ctx     canvas.Context
	cfg     config.BreakoutConfig
	theme   theme

	// Surface size in native pixels, refreshed by ResizeSurface
	width, height float64

	state    GameState
	controls Controls

	sched     Scheduler
	queue     *frame.Queue // Set when the engine owns its scheduler
	frameID   frame.ID
	lastFrame time.Time

	target    *input.Target
	scope     *input.Scope
	observers []Observer
	logger    *log.Logger
	destroyed bool
}

// New creates an engine drawing onto surface, renders the idle screen once
// and registers input handlers when WithInput is given.
func New(surface canvas.Surface, cfg config.BreakoutConfig, opts ...Option) (*Engine, error) {
	if surface == nil {
		return nil, fmt.Errorf("breakout: nil surface: %w", ErrNoContext)
	}
	ctx, err := surface.Context2D()
	switch {
	case err != nil && errors.Is(err, ErrNoContext):
		return nil, fmt.Errorf("breakout: %w", err)
	case err != nil:
		return nil, fmt.Errorf("breakout: %w: %w", ErrNoContext, err)
	case ctx == nil:
		return nil, fmt.Errorf("breakout: %w", ErrNoContext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: invalid config: %w", err)
	}

	e := &Engine{
		surface: surface,
		ctx:     ctx,
		cfg:     cfg,
		theme:   parseTheme(cfg),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sched == nil {
		e.queue = frame.NewQueue()
		e.sched = e.queue
	}

	e.measure()
	e.init()

	if e.target != nil {
		e.scope = input.NewScope(e.target)
		e.bindInput(e.scope)
	}

	e.logger.Debug("engine created", "width", e.width, "height", e.height, "blocks", len(e.state.Blocks))
	e.Render()
	return e, nil
}

// Frames returns the engine-owned frame queue, or nil when a scheduler was
// supplied with WithScheduler.
func (e *Engine) Frames() *frame.Queue {
	return e.queue
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.BreakoutConfig {
	return e.cfg
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// Destroyed reports whether Destroy has been called.
func (e *Engine) Destroyed() bool {
	return e.destroyed
}

// Snapshot returns a copy of the game state. The block slice is copied, so
// the caller may keep or modify it freely.
func (e *Engine) Snapshot() GameState {
	s := e.state
	s.Blocks = append([]Block(nil), e.state.Blocks...)
	return s
}

// measure reads the surface's native size.
func (e *Engine) measure() {
	e.width = float64(e.surface.Width())
	e.height = float64(e.surface.Height())
}

// init builds a fresh Idle run: level 1, full lives, new grid.
func (e *Engine) init() {
	e.state = GameState{
		Phase: PhaseIdle,
		Lives: e.cfg.Gameplay.Lives,
		Level: 1,
		Paddle: Paddle{
			Width:  e.cfg.Paddle.Width,
			Height: e.cfg.Paddle.Height,
			Speed:  e.cfg.Physics.PaddleSpeed,
			Color:  e.theme.paddle,
		},
		Ball: Ball{
			Radius: e.cfg.Ball.Radius,
			Color:  e.theme.ball,
		},
	}
	e.state.Paddle.X = (e.width - e.state.Paddle.Width) / 2
	e.state.Paddle.Y = e.height - e.cfg.Paddle.BottomOffset
	e.serve()
	e.state.Blocks = GenerateBlocks(e.cfg.Blocks, e.theme.palette, e.state.Level, e.width)
	e.controls.Reset()
	e.lastFrame = time.Time{}
}

// placeBall puts the ball above the paddle center.
func (e *Engine) placeBall() {
	p := e.state.Paddle
	e.state.Ball.Pos = core.V(p.CenterX(), p.Y-e.state.Ball.Radius-e.cfg.Ball.ResetGap)
}

// serve places the ball above the paddle with the initial velocity.
func (e *Engine) serve() {
	e.placeBall()
	e.state.Ball.Vel = core.V(e.cfg.Physics.InitialVX, e.cfg.Physics.InitialVY)
}

func (e *Engine) setPhase(p Phase) {
	if e.state.Phase == p {
		return
	}
	e.logger.Debug("phase changed", "from", e.state.Phase, "to", p)
	e.state.Phase = p
	e.emit(EventPhaseChanged, 0)
}

// Start begins a run. It is ignored while a run is in progress. Starting
// from GameOver begins a fresh run.
func (e *Engine) Start() {
	if e.destroyed || e.state.Running() {
		return
	}
	if e.state.Phase == PhaseGameOver {
		e.init()
	}
	e.setPhase(PhaseRunning)
	e.lastFrame = time.Time{}
	e.requestFrame()
}

// Pause freezes a running simulation. The frame loop keeps running.
func (e *Engine) Pause() {
	if e.destroyed || e.state.Phase != PhaseRunning {
		return
	}
	e.setPhase(PhasePaused)
}

// Resume continues a paused simulation.
func (e *Engine) Resume() {
	if e.destroyed || e.state.Phase != PhasePaused {
		return
	}
	e.setPhase(PhaseRunning)
}

// Toggle starts, pauses or resumes depending on the phase.
func (e *Engine) Toggle() {
	switch e.state.Phase {
	case PhaseIdle, PhaseGameOver:
		e.Start()
	case PhaseRunning:
		e.Pause()
	case PhasePaused:
		e.Resume()
	}
}

// Reset stops the frame loop and returns to a fresh Idle run.
func (e *Engine) Reset() {
	if e.destroyed {
		return
	}
	e.cancelFrame()
	prev := e.state.Phase
	e.init()
	if prev != PhaseIdle {
		e.emit(EventPhaseChanged, 0)
	}
	e.logger.Debug("engine reset")
	e.Render()
}

// ResizeSurface adapts to the surface's current size: the paddle and ball
// are clamped into the new bounds and the grid is rebuilt for the current
// level. Before the serve the ball stays on the paddle.
func (e *Engine) ResizeSurface() {
	if e.destroyed {
		return
	}
	e.measure()

	p := &e.state.Paddle
	p.Y = e.height - e.cfg.Paddle.BottomOffset
	ClampPaddle(p, e.width)

	b := &e.state.Ball
	b.Pos.X = core.ClampF(b.Pos.X, b.Radius, e.width-b.Radius)
	b.Pos.Y = core.ClampF(b.Pos.Y, b.Radius, e.height-b.Radius)
	if e.state.Phase == PhaseIdle {
		e.placeBall()
	}

	e.state.Blocks = GenerateBlocks(e.cfg.Blocks, e.theme.palette, e.state.Level, e.width)
	e.logger.Debug("surface resized", "width", e.width, "height", e.height, "blocks", len(e.state.Blocks))
	e.Render()
}

// Destroy stops the frame loop and removes every input listener. It is
// safe to call more than once; later lifecycle calls are ignored.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.cancelFrame()
	if e.scope != nil {
		n := e.scope.Close()
		e.logger.Debug("engine destroyed", "listeners", n)
	}
}

func (e *Engine) requestFrame() {
	if e.frameID != 0 {
		return
	}
	e.frameID = e.sched.RequestFrame(e.onFrame)
}

func (e *Engine) cancelFrame() {
	if e.frameID == 0 {
		return
	}
	e.sched.CancelFrame(e.frameID)
	e.frameID = 0
}

// onFrame is the animation-frame callback: update, draw, reschedule while a
// run is in progress.
func (e *Engine) onFrame(now time.Time) {
	e.frameID = 0
	if e.destroyed {
		return
	}

	dt := 1.0 / nominalFPS
	if !e.lastFrame.IsZero() {
		dt = now.Sub(e.lastFrame).Seconds()
	}
	e.lastFrame = now

	e.Update(dt)
	e.Render()

	if e.state.Running() {
		e.requestFrame()
	}
}

// motionFactor converts the frame delta into a motion multiplier. Motion is
// frame-coupled unless physics.time_scaled is set.
func (e *Engine) motionFactor(dt float64) float64 {
	if !e.cfg.Physics.TimeScaled {
		return 1
	}
	return core.ClampF(dt*nominalFPS, 0, e.cfg.Physics.MaxTimeScale)
}

// Update advances the simulation by one frame. It does nothing unless the
// engine is running and not paused.
func (e *Engine) Update(dt float64) {
	if e.destroyed || e.state.Phase != PhaseRunning {
		return
	}
	f := e.motionFactor(dt)

	e.updatePaddle(f)

	ball := &e.state.Ball
	prev := ball.Pos
	ball.Move(f)
	if BounceWalls(ball, e.width) {
		e.emit(EventWallBounce, 0)
	}

	if FellOff(ball, e.height) {
		e.loseLife()
		return
	}

	if BouncePaddle(ball, e.state.Paddle, e.cfg.Physics.Deflection, e.cfg.Physics.BallSpeed) {
		e.emit(EventPaddleHit, 0)
	}

	if i, _ := HitBlock(ball, prev, e.state.Blocks); i >= 0 {
		points := e.state.Blocks[i].Points
		e.state.Score += points
		e.emit(EventBlockDestroyed, points)
	}

	if len(e.state.Blocks) > 0 && e.state.Remaining() == 0 {
		e.levelUp()
	}
}

func (e *Engine) updatePaddle(f float64) {
	p := &e.state.Paddle
	c := e.controls.Read()

	switch {
	case c.HasPointer:
		p.X = c.PointerX - p.Width/2
	case c.Left && !c.Right:
		p.X -= p.Speed * f
	case c.Right && !c.Left:
		p.X += p.Speed * f
	}
	ClampPaddle(p, e.width)
}

// loseLife takes a life and serves again. The paddle returns to the
// center unless a pointer is steering it, so it stays under the cursor.
func (e *Engine) loseLife() {
	e.state.Lives--
	e.logger.Debug("life lost", "lives", e.state.Lives, "score", e.state.Score)

	if e.state.Lives <= 0 {
		e.state.Lives = 0
		e.setPhase(PhaseGameOver)
		e.emit(EventGameOver, 0)
		e.logger.Info("game over", "score", e.state.Score, "level", e.state.Level)
		return
	}
	e.emit(EventLifeLost, 0)
	if !e.controls.Read().HasPointer {
		e.state.Paddle.X = (e.width - e.state.Paddle.Width) / 2
	}
	e.serve()
}

func (e *Engine) levelUp() {
	e.state.Level++
	e.state.Blocks = GenerateBlocks(e.cfg.Blocks, e.theme.palette, e.state.Level, e.width)

	b := &e.state.Ball
	e.placeBall()
	b.Vel = b.Vel.WithLen(b.Speed() + e.cfg.Physics.SpeedIncrement)

	e.logger.Info("level complete", "level", e.state.Level, "score", e.state.Score, "speed", b.Speed())
	e.emit(EventLevelUp, 0)
}

func parseTheme(cfg config.BreakoutConfig) theme {
	t := theme{
		ball:     hexOr(cfg.Ball.Color, core.ColorWhite),
		paddle:   hexOr(cfg.Paddle.Color, core.ColorWhite),
		bgTop:    hexOr(cfg.Theme.BackgroundTop, core.ColorBlack),
		bgBottom: hexOr(cfg.Theme.BackgroundBottom, core.ColorBlack),
		text:     hexOr(cfg.Theme.Text, core.ColorWhite),
		accent:   hexOr(cfg.Theme.Accent, core.ColorYellow),
		overlay:  hexOr(cfg.Theme.Overlay, core.ColorBlack),
	}
	for _, hex := range cfg.Blocks.Palette {
		t.palette = append(t.palette, hexOr(hex, core.ColorGray))
	}
	return t
}

func hexOr(hex string, fallback core.Color) core.Color {
	c, err := core.ParseHex(hex)
	if err != nil {
		return fallback
	}
	return c
}
