// Package tui provides a Bubble Tea terminal UI for the examination engine.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/aurorexam/engine"
	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	color    types.Color
	isInput  bool // true for echoed player input
	isSystem bool // true for meta-command output
}

// Model is the Bubble Tea model for the examination TUI.
type Model struct {
	engine *engine.Engine
	state  types.GameState

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated narrative lines (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	lastCmd  string
}

// resultMsg carries one engine result into the Update loop.
type resultMsg struct {
	input  string // echoed player input (empty for the banner)
	result types.CommandResult
}

// New creates a TUI model wired to the given engine, starting from s.
func New(eng *engine.Engine, s types.GameState, historySize int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		state:   s,
		input:   ti,
		history: NewHistory(historySize),
	}
}

// Run starts the Bubble Tea program with a fresh examination.
func Run(eng *engine.Engine, historySize int, trace bool) error {
	m := New(eng, state.New(), historySize)
	m.trace = trace
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the banner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.begin())
}

func (m Model) begin() tea.Cmd {
	eng, s := m.engine, m.state
	return func() tea.Msg {
		return resultMsg{result: eng.Begin(s)}
	}
}

// Update handles messages (key presses, window resize, engine results).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case resultMsg:
		m = m.applyResult(msg.input, msg.result)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendLines(input, output, types.ColorNone, true)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Handle "again" / "g" once the examination is under way.
	if m.state.Phase == types.PhasePlaying {
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if m.lastCmd == "" {
				m = m.appendLines(input, []string{"Nothing to repeat."}, types.ColorNone, true)
				return m, nil
			}
			input = m.lastCmd
		} else {
			m.lastCmd = input
		}
	}

	m = m.applyResult(input, m.engine.Process(m.state, input))
	return m, nil
}

// applyResult adopts the engine's new state and shows its message.
func (m Model) applyResult(input string, result types.CommandResult) Model {
	m.state = result.State
	if result.State.Phase != types.PhasePlaying {
		m.lastCmd = ""
	}
	m = m.appendLines(input, strings.Split(result.Message, "\n"), result.Color, false)
	if m.trace {
		m = m.appendLines("", m.formatTrace(result), types.ColorNone, false)
	}
	return m
}

// appendLines adds lines to the narrative and refreshes the viewport.
func (m Model) appendLines(input string, lines []string, color types.Color, isSystem bool) Model {
	if input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + input, isInput: true,
		})
	}

	for _, line := range lines {
		rl := rawLine{text: line, color: color, isSystem: isSystem}
		if !isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLine(wrapped, rl.kind, rl.color))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// renderLine applies the style for a line's kind, falling back to the
// color the engine attached to the whole result.
func renderLine(line string, kind lineKind, color types.Color) string {
	switch kind {
	case kindHeading:
		if color == types.ColorGold || color == types.ColorDamage {
			return styleFor(color).Bold(true).Render(line)
		}
		return styleHeading.Render(line)
	case kindYouSee:
		return styledYouSee(line, styleRoomDesc)
	case kindExits:
		return styleExits.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleFor(color).Render(line)
	}
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	case "/history":
		recent := m.history.Recent(10)
		if len(recent) == 0 {
			return []string{"No commands yet."}, false
		}
		return recent, false

	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdHelp() []string {
	return []string{
		"System:",
		"  /quit         — Exit the examination",
		"  /help         — Show this help",
		"  /history      — Show your recent commands",
		"  /state        — Debug: dump current state",
		"  /trace        — Toggle debug trace output",
		"",
		"Type HELP for examination commands.",
		"  again (g)     — Repeat your last command",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
}

func (m *Model) cmdState() []string {
	out, err := state.Dump(m.state)
	if err != nil {
		return []string{fmt.Sprintf("State dump failed: %v", err)}
	}
	return strings.Split(strings.TrimRight(string(out), "\n"), "\n")
}

func (m *Model) formatTrace(result types.CommandResult) []string {
	s := result.State
	lines := []string{
		fmt.Sprintf("[trace] color=%q phase=%s location=%s", result.Color, s.Phase, s.Location),
		fmt.Sprintf("[trace] attempts=%d hints=%d episkey=%d",
			s.AttemptCounts[s.Location], s.HintsUsed, s.EpiskeyCasts),
	}
	if r, ok := m.engine.RNG.(*engine.RNG); ok {
		lines = append(lines, fmt.Sprintf("[trace] seed=%d rng=%d", r.Seed(), r.Position()))
	}
	if s.Combat != nil {
		lines = append(lines, fmt.Sprintf("[trace] %s %d/%d round=%d blocks=%d",
			s.Combat.Opponent, s.Combat.OpponentHealth, s.Combat.OpponentMaxHealth, s.Combat.Round, s.Combat.Blocks))
	}
	return lines
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
