package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/aurorexam/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusLow = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleRoomDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeading = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	styleYouSee = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// colorStyles maps the engine's display hints onto terminal colors.
var colorStyles = map[types.Color]lipgloss.Style{
	types.ColorDamage:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	types.ColorHealing: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	types.ColorMagic:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	types.ColorGold:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	types.ColorWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
}

// styleFor returns the narrative style for a result color.
func styleFor(c types.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return styleRoomDesc
}

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindHeading
	kindYouSee
	kindExits
	kindSystem
	kindError
	kindTrace
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "You notice:"):
		return kindYouSee
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	case strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "You don't have"),
		strings.HasPrefix(line, "There's no "),
		strings.HasPrefix(line, "I don't understand"):
		return kindError
	case isHeading(line):
		return kindHeading
	default:
		return kindNarrative
	}
}

// isHeading reports whether a line is a shouted title such as a room name
// or "=== EXAMINATION RESULTS ===".
func isHeading(line string) bool {
	letters := 0
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 4
}

// styledYouSee renders "You notice: item1, item2." with item names bold.
func styledYouSee(line string, base lipgloss.Style) string {
	const prefix = "You notice: "
	if !strings.HasPrefix(line, prefix) {
		return base.Render(line)
	}
	return base.Render(prefix) + styleYouSee.Render(line[len(prefix):])
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
