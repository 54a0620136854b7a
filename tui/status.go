package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

// lowHealth is the point below which the health readout turns red.
const lowHealth = 30

// renderStatusBar produces a full-width inverted status line showing the
// candidate, current room, health, score and challenge progress.
func (m Model) renderStatusBar() string {
	s := m.state

	name := s.PlayerName
	if name == "" {
		name = "Candidate"
	}
	left := fmt.Sprintf(" %s | %s", name, m.engine.World.Name(s.Location))
	if s.Phase == types.PhaseNaming || s.Phase == types.PhaseIntro {
		left = " " + m.engine.World.Title
	}

	health := fmt.Sprintf("HP %d/%d", s.Health, s.MaxHealth)
	rest := fmt.Sprintf(" | Score %d | %d/%d ", s.Score, state.CompletedCount(s), len(types.Challenges))

	// Drop the room name before the numbers when the bar is narrow.
	if lipgloss.Width(left)+lipgloss.Width(health)+lipgloss.Width(rest)+2 > m.width {
		left = " " + name
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(health) - lipgloss.Width(rest)
	if gap < 0 {
		gap = 0
	}

	healthStyle := styleStatusBar
	if s.Health < lowHealth {
		healthStyle = styleStatusLow
	}

	return styleStatusBar.Render(left+strings.Repeat(" ", gap)) +
		healthStyle.Render(health) +
		styleStatusBar.Render(rest)
}
