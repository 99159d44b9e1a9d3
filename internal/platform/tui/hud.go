package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickcanvas/internal/config"
	"github.com/vovakirdan/brickcanvas/internal/games/breakout"
)

// statusRows is the height of the status line above the play surface.
const statusRows = 1

// helpRows is the height reserved below the play surface. It fits the full
// help view; the short view is padded so toggling help never resizes the
// surface.
const helpRows = 2

// hudStyles holds the styles of the status line.
type hudStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	lives lipgloss.Style
	phase lipgloss.Style
	sep   string
}

func newHUDStyles(p *Painter, theme config.Theme) hudStyles {
	accent := lipgloss.Color(theme.Accent)
	text := lipgloss.Color(theme.Text)
	return hudStyles{
		title: p.Style().Bold(true).Foreground(accent),
		label: p.Style().Foreground(lipgloss.Color("#888888")),
		value: p.Style().Bold(true).Foreground(text),
		lives: p.Style().Foreground(accent),
		phase: p.Style().Italic(true).Foreground(lipgloss.Color("#aaaaaa")),
		sep:   p.Style().Foreground(lipgloss.Color("#444444")).Render(" │ "),
	}
}

// renderHUD formats the status line for a snapshot, truncated to width.
func renderHUD(st hudStyles, s breakout.GameState, width int) string {
	parts := []string{
		st.title.Render("BRICKCANVAS"),
		st.label.Render("Score ") + st.value.Render(fmt.Sprint(s.Score)),
		st.label.Render("Level ") + st.value.Render(fmt.Sprint(s.Level)),
		st.label.Render("Lives ") + st.lives.Render(strings.Repeat("♥", max(s.Lives, 0))),
		st.label.Render("Blocks ") + st.value.Render(fmt.Sprintf("%d/%d", s.Remaining(), len(s.Blocks))),
		st.phase.Render(s.Phase.String()),
	}
	line := strings.Join(parts, st.sep)
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
