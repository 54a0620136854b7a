package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/aurorexam/engine"
	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/loader"
	"github.com/nathoo/aurorexam/types"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"You notice: Essence of Dittany.", kindYouSee},
		{"Exits: north, east.", kindExits},
		{"[No additional penalty for repeated hint]", kindSystem},
		{"[trace] color=\"magic\" phase=playing", kindTrace},
		{"You can't go that way.", kindError},
		{"You don't have that.", kindError},
		{"There's no sword here.", kindError},
		{"I don't understand that command. Type HELP for assistance.", kindError},
		{"EXAMINATION ENTRANCE HALL", kindHeading},
		{"=== EXAMINATION RESULTS ===", kindHeading},
		{"GRADE: O - Outstanding", kindNarrative},
		{"A vaulted hall of dark stone.", kindNarrative},
		{"OK.", kindNarrative},
		{"", kindNarrative},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestStyleFor(t *testing.T) {
	for _, c := range []types.Color{types.ColorDamage, types.ColorHealing, types.ColorMagic, types.ColorGold, types.ColorWarning} {
		_, ok := colorStyles[c]
		assert.True(t, ok, "no style for %s", c)
	}
	assert.Equal(t, styleRoomDesc.Render("x"), styleFor(types.ColorNone).Render("x"))
	assert.Equal(t, styleRoomDesc.Render("x"), styleFor(types.ColorNormal).Render("x"))
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"The chamber stretches before you under a vaulted ceiling.", 30,
			"The chamber stretches before\nyou under a vaulted ceiling."},
		{"", 80, ""},
		{"one", 80, "one"},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("north")
	h.Push("lumos")

	for _, want := range []string{"lumos", "north", "look", "look"} {
		prev, ok := h.Prev()
		if !ok || prev != want {
			t.Errorf("expected %q, got %q (ok=%v)", want, prev, ok)
		}
	}
}

func TestHistory_Next(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("north")

	h.Prev() // "north"
	h.Prev() // "look"

	next, ok := h.Next()
	if !ok || next != "north" {
		t.Errorf("expected 'north', got %q (ok=%v)", next, ok)
	}

	_, ok = h.Next()
	if ok {
		t.Error("expected false when past newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
	assert.Empty(t, h.Recent(3))
}

func TestHistory_MaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c") // "a" evicted

	assert.Equal(t, []string{"b", "c"}, h.Recent(5))
}

func TestHistory_DefaultSize(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, defaultHistorySize, h.max)
}

func TestHistory_SkipsDuplicatesAndBlanks(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("look")
	h.Push("")

	if len(h.entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(h.entries))
	}
}

func TestHistory_ResetCursor(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("north")

	h.Prev() // "north"
	h.ResetCursor()

	prev, ok := h.Prev()
	if !ok || prev != "north" {
		t.Errorf("expected 'north' after reset, got %q", prev)
	}
}

func TestHistory_Recent(t *testing.T) {
	h := NewHistory(10)
	for _, c := range []string{"a", "b", "c", "d"} {
		h.Push(c)
	}
	assert.Equal(t, []string{"c", "d"}, h.Recent(2))
	assert.Equal(t, []string{"a", "b", "c", "d"}, h.Recent(0))
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	eng := engine.New(loader.MustDefault(), engine.WithRand(engine.NewRNG(1)))
	m := New(eng, state.New(), 20)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

// submit types a line and presses enter.
func submit(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.input.SetValue(line)
	updated, _ := m.handleEnter()
	return updated.(Model)
}

func TestModel_BeginAndName(t *testing.T) {
	m := newTestModel(t)
	msg := m.begin()()
	updated, _ := m.Update(msg)
	m = updated.(Model)
	require.Equal(t, types.PhaseNaming, m.state.Phase)

	m = submit(t, m, "Alice")
	assert.Equal(t, types.PhasePlaying, m.state.Phase)
	assert.Equal(t, "Alice", m.state.PlayerName)
	assert.Contains(t, m.View(), "Alice")
	assert.Contains(t, m.View(), "Examination Entrance Hall")
}

func TestModel_ThreadsStateThroughTurns(t *testing.T) {
	m := newTestModel(t)
	m = m.applyResult("", m.engine.Begin(m.state))
	for _, line := range []string{"Alice", "alohomora", "north"} {
		m = submit(t, m, line)
	}
	assert.Equal(t, types.DarkCorridor, m.state.Location)
	assert.Equal(t, 10, m.state.Score)
	assert.Equal(t, []string{"Alice", "alohomora", "north"}, m.history.Recent(0))
}

func TestModel_Again(t *testing.T) {
	m := newTestModel(t)
	m = m.applyResult("", m.engine.Begin(m.state))
	m = submit(t, m, "Alice")

	m = submit(t, m, "g")
	assert.Equal(t, "> g", m.rawLines[len(m.rawLines)-3].text)
	assert.Equal(t, "Nothing to repeat.", m.rawLines[len(m.rawLines)-2].text)

	m = submit(t, m, "hint")
	m = submit(t, m, "again")
	assert.Equal(t, 2, m.state.HintRequestCounts[types.EntranceHall])
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, updated.(Model).quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, updated.(Model).View())
}

func TestStatusBar(t *testing.T) {
	m := newTestModel(t)
	m.state = state.New()
	m.state.Phase = types.PhasePlaying
	m.state.PlayerName = "Alice"
	m.state.Health = 20
	m.state.Score = 35
	m.state.ChallengesCompleted[types.ChallengeAlohomora] = true

	bar := m.renderStatusBar()
	for _, want := range []string{"Alice", "Examination Entrance Hall", "HP 20/100", "Score 35", "1/9"} {
		assert.Contains(t, bar, want)
	}

	m.width = 30
	assert.NotContains(t, m.renderStatusBar(), "Examination Entrance Hall")
}

func TestHandleMeta_Quit(t *testing.T) {
	m := newTestModel(t)

	_, quit := m.handleMeta("/quit")
	if !quit {
		t.Error("expected quit=true for /quit")
	}
	_, quit = m.handleMeta("/exit")
	if !quit {
		t.Error("expected quit=true for /exit")
	}
}

func TestHandleMeta_Help(t *testing.T) {
	m := newTestModel(t)

	output, quit := m.handleMeta("/help")
	if quit {
		t.Error("help should not quit")
	}
	joined := strings.Join(output, "\n")
	for _, expected := range []string{"/quit", "/state", "/history", "HELP"} {
		if !strings.Contains(joined, expected) {
			t.Errorf("expected %q in help output", expected)
		}
	}
}

func TestHandleMeta_Trace(t *testing.T) {
	m := newTestModel(t)

	output, _ := m.handleMeta("/trace")
	if !m.trace {
		t.Error("expected trace to be enabled")
	}
	if len(output) == 0 || !strings.Contains(output[0], "enabled") {
		t.Errorf("expected enabled message, got %v", output)
	}

	output, _ = m.handleMeta("/trace")
	if m.trace {
		t.Error("expected trace to be disabled")
	}
	if len(output) == 0 || !strings.Contains(output[0], "disabled") {
		t.Errorf("expected disabled message, got %v", output)
	}
}

func TestHandleMeta_History(t *testing.T) {
	m := newTestModel(t)
	output, _ := m.handleMeta("/history")
	assert.Equal(t, []string{"No commands yet."}, output)

	m.history.Push("lumos")
	output, _ = m.handleMeta("/history")
	assert.Equal(t, []string{"lumos"}, output)
}

func TestHandleMeta_Unknown(t *testing.T) {
	m := newTestModel(t)

	output, quit := m.handleMeta("/save")
	if quit {
		t.Error("unknown command should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Unknown command") {
		t.Errorf("expected unknown command message, got %v", output)
	}
}

func TestHandleMeta_State(t *testing.T) {
	m := newTestModel(t)

	output, _ := m.handleMeta("/state")
	joined := strings.Join(output, "\n")
	assert.Contains(t, joined, "location: entrance_hall")
	assert.Contains(t, joined, "phase: intro")
}

func TestFormatTrace_SeedAndDraws(t *testing.T) {
	m := newTestModel(t)
	m.engine.RNG.Intn(6)

	lines := m.formatTrace(types.CommandResult{State: m.state, Color: types.ColorNormal})
	rng := m.engine.RNG.(*engine.RNG)
	assert.Contains(t, lines, fmt.Sprintf("[trace] seed=1 rng=%d", rng.Position()))
	assert.Equal(t, int64(1), rng.Position())
	assert.Equal(t, kindTrace, classifyLine(lines[len(lines)-1]))
}
