package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickcanvas/internal/canvas/cells"
	"github.com/vovakirdan/brickcanvas/internal/config"
	"github.com/vovakirdan/brickcanvas/internal/core"
	"github.com/vovakirdan/brickcanvas/internal/frame"
	"github.com/vovakirdan/brickcanvas/internal/games/breakout"
	"github.com/vovakirdan/brickcanvas/internal/input"
	"github.com/vovakirdan/brickcanvas/internal/status"
)

// Sound is the audio output the mute key controls.
type Sound interface {
	SetMuted(muted bool)
}

// Options configures a terminal game model.
type Options struct {
	Config    config.BreakoutConfig
	Runtime   core.RuntimeConfig
	Board     *status.Board       // Receives a snapshot every tick, optional
	Logger    *log.Logger         // Engine logger, optional
	Observers []breakout.Observer // Engine event observers, optional
	Renderer  *lipgloss.Renderer  // Nil uses the default renderer
	Sound     Sound               // Enables the mute key, optional
}

// Model is the Bubble Tea model running one engine on a cell surface.
type Model struct {
	engine   *breakout.Engine
	surface  *cells.Surface
	queue    *frame.Queue
	target   *input.Target
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	hold     *holdTracker
	painter  *Painter
	hud      hudStyles
	board    *status.Board
	config   core.RuntimeConfig
	sound    Sound
	muted    bool
	now      func() time.Time
	quitting bool
}

// NewModel creates the surface and the engine for a terminal of the
// configured size.
func NewModel(opts Options) (Model, error) {
	rc := opts.Runtime
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}

	surface := cells.NewSurface(max(rc.ScreenW, 1), surfaceRows(rc.ScreenH), cells.DefaultCellW, cells.DefaultCellH)
	queue := frame.NewQueue()
	target := input.NewTarget()

	engineOpts := []breakout.Option{
		breakout.WithScheduler(queue),
		breakout.WithInput(target),
	}
	if opts.Logger != nil {
		engineOpts = append(engineOpts, breakout.WithLogger(opts.Logger))
	}
	for _, o := range opts.Observers {
		engineOpts = append(engineOpts, breakout.WithObserver(o))
	}

	engine, err := breakout.New(surface, opts.Config, engineOpts...)
	if err != nil {
		return Model{}, err
	}

	keys := DefaultKeyMap()
	keys.Mute.SetEnabled(opts.Sound != nil)
	painter := NewPainter(opts.Renderer)
	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		engine:  engine,
		surface: surface,
		queue:   queue,
		target:  target,
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    h,
		hold:    newHoldTracker(),
		painter: painter,
		hud:     newHUDStyles(painter, opts.Config.Theme),
		board:   opts.Board,
		config:  rc,
		sound:   opts.Sound,
		now:     time.Now,
	}, nil
}

// Engine returns the engine driven by the model.
func (m Model) Engine() *breakout.Engine {
	return m.engine
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("brickcanvas"),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if key.Matches(msg, m.keys.Mute) {
		m.muted = !m.muted
		m.sound.SetMuted(m.muted)
		return m, nil
	}

	action, quit := m.mapper.MapKey(msg)
	if quit {
		m.quitting = true
		m.engine.Destroy()
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		// Terminals cannot hold two keys; a new direction ends the other.
		other := core.ActionRight
		if action == core.ActionRight {
			other = core.ActionLeft
		}
		if m.hold.Release(other) {
			m.target.Dispatch(input.Event{Kind: input.KeyUp, Action: other})
		}
		if m.hold.Press(action, m.now()) {
			m.target.Dispatch(input.Event{Kind: input.KeyDown, Action: action})
		}
	case core.ActionToggle, core.ActionReset:
		m.target.Dispatch(input.Event{Kind: input.KeyDown, Action: action})
	}

	return m, nil
}

// handleMouse maps mouse motion and left clicks to pointer events. The play
// surface starts below the status line; events use cell centers.
func (m Model) handleMouse(msg tea.MouseMsg) {
	x := float64(msg.X) + 0.5
	y := float64(msg.Y-1) + 0.5

	switch msg.Action {
	case tea.MouseActionMotion:
		m.target.Dispatch(input.Event{Kind: input.PointerMove, X: x, Y: y})
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.target.Dispatch(input.Event{Kind: input.PointerMove, X: x, Y: y})
		m.target.Dispatch(input.Event{Kind: input.Click, X: x, Y: y})
	}
}

// handleResize processes window resize events. The run keeps going; the
// engine clamps its objects into the new bounds.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout fits the surface between the status line and the help view. The
// engine rebuilds its grid on resize, so an unchanged size is skipped.
func (m Model) layout() {
	cols, rows := max(m.config.ScreenW, 1), surfaceRows(m.config.ScreenH)
	scr := m.surface.Screen()
	if scr.Width() == cols && scr.Height() == rows {
		return
	}
	m.surface.Resize(cols, rows)
	m.engine.ResizeSurface()
}

// surfaceRows returns the play surface height for a terminal height.
func surfaceRows(termH int) int {
	return max(termH-statusRows-helpRows, 1)
}

// handleTick releases expired keys, runs due animation frames and publishes
// the snapshot.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.hold.Expire(now) {
		m.target.Dispatch(input.Event{Kind: input.KeyUp, Action: a})
	}

	m.queue.Flush(now)

	if m.board != nil {
		m.board.Publish(m.engine.Snapshot())
	}

	if m.engine.Destroyed() {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the status line, the play surface and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	if pad := helpRows - lipgloss.Height(helpView); pad > 0 {
		helpView += strings.Repeat("\n", pad)
	}

	return renderHUD(m.hud, m.engine.Snapshot(), m.config.ScreenW) + "\n" +
		m.painter.RenderScreen(m.surface.Screen()) + "\n" +
		helpView
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.engine.Destroy()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err = p.Run()
	return err
}
