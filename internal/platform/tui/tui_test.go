package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickcanvas/internal/config"
	"github.com/vovakirdan/brickcanvas/internal/core"
	"github.com/vovakirdan/brickcanvas/internal/games/breakout"
	"github.com/vovakirdan/brickcanvas/internal/status"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, board *status.Board) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:   config.DefaultConfig(),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Board:    board,
		Renderer: lipgloss.NewRenderer(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	m.now = func() time.Time { return t0 }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm, cmd
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runes("a"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runes("d"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionToggle, false},
		{"p", runes("p"), core.ActionToggle, false},
		{"r", runes("r"), core.ActionReset, false},
		{"q", runes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runes("x"), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHoldTracker(t *testing.T) {
	h := newHoldTracker()

	if !h.Press(core.ActionLeft, t0) {
		t.Fatal("first press should be a fresh key down")
	}
	if got := h.Expire(t0.Add(firstHold - time.Millisecond)); len(got) != 0 {
		t.Errorf("expired before the first hold window: %v", got)
	}

	// A repeat keeps the key held for the shorter window
	if h.Press(core.ActionLeft, t0.Add(500*time.Millisecond)) {
		t.Error("repeat should not be a fresh key down")
	}
	got := h.Expire(t0.Add(500*time.Millisecond + repeatHold))
	if len(got) != 1 || got[0] != core.ActionLeft {
		t.Errorf("Expire() = %v, expected [Left]", got)
	}

	if h.Release(core.ActionLeft) {
		t.Error("released key should no longer be held")
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	p := NewPainter(lipgloss.NewRenderer(io.Discard))
	red := core.RGB(255, 0, 0)
	blue := core.RGB(0, 0, 255)

	s := core.NewScreen(4, 2)
	s.SetCell(0, 0, 'a', red)
	s.SetCell(1, 0, 'b', red)
	s.SetCell(2, 0, 'c', blue)
	s.SetCell(0, 1, 'd', blue)

	if got := p.RenderScreen(s); got != "abc \nd   " {
		t.Errorf("RenderScreen() = %q", got)
	}
	// red, blue and the unset color
	if len(p.styles) != 3 {
		t.Errorf("cached styles = %d, expected 3", len(p.styles))
	}
}

func TestSpaceStartsAndTicksAdvance(t *testing.T) {
	m := newTestModel(t, nil)
	before := m.Engine().Snapshot().Ball.Pos

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Engine().Phase() != breakout.PhaseRunning {
		t.Fatalf("phase = %v, expected running", m.Engine().Phase())
	}

	m, cmd := update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	after := m.Engine().Snapshot().Ball.Pos
	if after.X != before.X+3 || after.Y != before.Y-3 {
		t.Errorf("ball moved %v -> %v, expected one serve step", before, after)
	}
}

func TestHeldKeyReleasedAfterTimeout(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, runes(" "))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	start := m.Engine().Snapshot().Paddle.X
	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	moved := m.Engine().Snapshot().Paddle.X
	if moved != start-10 {
		t.Fatalf("paddle x = %v, expected %v", moved, start-10)
	}

	m, _ = update(t, m, TickMsg(t0.Add(firstHold+time.Millisecond)))
	if got := m.Engine().Snapshot().Paddle.X; got != moved {
		t.Errorf("paddle kept moving after release: %v -> %v", moved, got)
	}
}

func TestOppositeKeyReleasesHeldDirection(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, runes(" "))
	m, _ = update(t, m, runes("a"))
	m, _ = update(t, m, runes("d"))

	start := m.Engine().Snapshot().Paddle.X
	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if got := m.Engine().Snapshot().Paddle.X; got != start+10 {
		t.Errorf("paddle x = %v, expected %v", got, start+10)
	}
}

func TestClickStartsAndSnapsPaddle(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Engine().Phase() != breakout.PhaseRunning {
		t.Fatalf("phase = %v, expected running", m.Engine().Phase())
	}

	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	// Column 20 center is 20.5 cells, 205 surface pixels
	if got := m.Engine().Snapshot().Paddle.CenterX(); got != 205 {
		t.Errorf("paddle center = %v, expected 205", got)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, runes(" "))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if w, h := m.surface.Screen().Width(), m.surface.Screen().Height(); w != 100 || h != 37 {
		t.Errorf("surface = %dx%d cells, expected 100x37", w, h)
	}
	s := m.Engine().Snapshot()
	if s.Phase != breakout.PhaseRunning {
		t.Errorf("phase = %v, resize should keep the run", s.Phase)
	}
	if s.Paddle.Y != 37*20-30 {
		t.Errorf("paddle y = %v, expected %v", s.Paddle.Y, 37*20-30)
	}
}

// playUntilScore starts the run and ticks until the first block breaks.
func playUntilScore(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, runes(" "))
	now := t0
	for range 600 {
		now = now.Add(16 * time.Millisecond)
		m, _ = update(t, m, TickMsg(now))
		if m.Engine().Snapshot().Score > 0 {
			return m
		}
	}
	t.Fatal("ball never reached the blocks")
	return m
}

func TestHelpToggleKeepsLevel(t *testing.T) {
	m := playUntilScore(t, newTestModel(t, nil))
	rows := m.surface.Screen().Height()
	before := m.Engine().Snapshot()

	m, _ = update(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Error("? should show the full help")
	}
	if lines := strings.Split(m.View(), "\n"); len(lines) != 24 {
		t.Errorf("view with full help has %d lines, expected 24", len(lines))
	}
	m, _ = update(t, m, runes("?"))

	after := m.Engine().Snapshot()
	if got := m.surface.Screen().Height(); got != rows {
		t.Errorf("surface rows = %d, expected %d", got, rows)
	}
	if after.Remaining() != before.Remaining() || after.Score != before.Score {
		t.Errorf("help toggle changed the level: remaining %d -> %d, score %d -> %d",
			before.Remaining(), after.Remaining(), before.Score, after.Score)
	}
}

func TestSameSizeResizeKeepsBlocks(t *testing.T) {
	m := playUntilScore(t, newTestModel(t, nil))
	before := m.Engine().Snapshot().Remaining()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if got := m.Engine().Snapshot().Remaining(); got != before {
		t.Errorf("remaining = %d, expected %d", got, before)
	}
}

type soundSwitch struct{ calls []bool }

func (s *soundSwitch) SetMuted(muted bool) { s.calls = append(s.calls, muted) }

func TestMuteKey(t *testing.T) {
	m := newTestModel(t, nil)
	if strings.Contains(m.View(), "mute") {
		t.Error("mute help shown without a sound output")
	}
	m, _ = update(t, m, runes("m")) // no sound: ignored

	sound := &soundSwitch{}
	m, err := NewModel(Options{
		Config:   config.DefaultConfig(),
		Runtime:  core.RuntimeConfig{ScreenW: 100, ScreenH: 24, TickRate: 60},
		Renderer: lipgloss.NewRenderer(io.Discard),
		Sound:    sound,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	m, _ = update(t, m, runes("m"))
	m, _ = update(t, m, runes("m"))

	if len(sound.calls) != 2 || !sound.calls[0] || sound.calls[1] {
		t.Errorf("SetMuted calls = %v, expected [true false]", sound.calls)
	}
	if !strings.Contains(m.View(), "mute") {
		t.Error("mute help missing")
	}
}

func TestQuitDestroysEngine(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if !m.Engine().Destroyed() {
		t.Error("engine should be destroyed")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}

	_, cmd = update(t, m, TickMsg(t0))
	if cmd != nil {
		t.Error("ticks should stop once the engine is destroyed")
	}
}

func TestTickPublishesSnapshot(t *testing.T) {
	board := status.NewBoard()
	m := newTestModel(t, board)

	update(t, m, TickMsg(t0))
	r, ok := board.Latest()
	if !ok {
		t.Fatal("board should hold a report after a tick")
	}
	if r.State.Lives != 3 || len(r.State.Blocks) != 24 {
		t.Errorf("report = lives %d, blocks %d", r.State.Lives, len(r.State.Blocks))
	}
}

func TestViewLayout(t *testing.T) {
	m := newTestModel(t, nil)
	lines := strings.Split(m.View(), "\n")

	if len(lines) != 24 {
		t.Fatalf("view has %d lines, expected 24", len(lines))
	}
	if !strings.Contains(lines[0], "Score 0") || !strings.Contains(lines[0], "♥♥♥") {
		t.Errorf("status line = %q", lines[0])
	}
	if !strings.Contains(m.View(), "BRICKCANVAS") {
		t.Error("idle overlay title missing")
	}
	if !strings.Contains(lines[22], "quit") {
		t.Errorf("help line = %q", lines[22])
	}
}

func TestRenderLevelTable(t *testing.T) {
	out, err := RenderLevelTable(config.DefaultConfig(), 1, 800)
	if err != nil {
		t.Fatalf("RenderLevelTable() failed: %v", err)
	}
	for _, want := range []string{"#ff6b6b", "#feca57", "3 rows x 8 columns", "24 blocks", "480 points"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	narrow, err := RenderLevelTable(config.DefaultConfig(), 1, 50)
	if err != nil {
		t.Fatalf("RenderLevelTable() failed: %v", err)
	}
	if !strings.Contains(narrow, "too narrow") {
		t.Errorf("narrow output = %q", narrow)
	}
}
