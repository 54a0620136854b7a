package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nathoo/aurorexam/engine"
	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/loader"
	"github.com/nathoo/aurorexam/types"
)

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := &CLI{
		Engine: engine.New(loader.MustDefault(), engine.WithRand(engine.NewRNG(7))),
		State:  state.New(),
		In:     strings.NewReader(input),
		Out:    &out,
	}
	return c, &out
}

func TestCLI_BannerAndNaming(t *testing.T) {
	c, out := newTestCLI(t, "Alice\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "THE AUROR EXAMINATION") {
		t.Error("expected banner in output")
	}
	if !strings.Contains(output, "What is your name, candidate?") {
		t.Error("expected name prompt in output")
	}
	if !strings.Contains(output, "Good luck, Alice.") {
		t.Error("expected greeting after naming")
	}
	assert.Equal(t, types.PhasePlaying, c.State.Phase)
	assert.Equal(t, "Alice", c.State.PlayerName)
}

func TestCLI_BasicGameplay(t *testing.T) {
	c, out := newTestCLI(t, "Alice\nalohomora\nnorth\n/quit\n")
	c.Run()

	assert.Contains(t, out.String(), "unlocked")
	assert.Equal(t, types.DarkCorridor, c.State.Location)
	assert.Equal(t, 10, c.State.Score)
}

func TestCLI_HelpCommand(t *testing.T) {
	c, out := newTestCLI(t, "/help\n/quit\n")
	c.Run()

	output := out.String()
	for _, want := range []string{"/quit", "/state", "/trace", "again"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in help output", want)
		}
	}
}

func TestCLI_UnknownMetaCommand(t *testing.T) {
	c, out := newTestCLI(t, "/save\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Unknown command: /save") {
		t.Error("expected unknown command message")
	}
}

func TestCLI_TraceToggle(t *testing.T) {
	c, out := newTestCLI(t, "/trace\nAlice\n/trace\nlook\n/quit\n")
	c.Run()

	output := out.String()
	assert.Contains(t, output, "Trace output enabled")
	assert.Contains(t, output, "Trace output disabled")
	assert.Contains(t, output, "[trace] color=normal phase=playing location=entrance_hall")
	assert.Equal(t, 1, strings.Count(output, "[trace] health="), "trace stops once disabled")
}

func TestCLI_TraceReportsSeedAndDraws(t *testing.T) {
	c, out := newTestCLI(t, "/trace\nAlice\nstupefy\n/quit\n")
	c.Run()

	rng := c.Engine.RNG.(*engine.RNG)
	assert.Contains(t, out.String(), fmt.Sprintf("[trace] seed=7 rng=%d\n", rng.Position()))
}

func TestCLI_StateCommand(t *testing.T) {
	c, out := newTestCLI(t, "Alice\n/state\n/quit\n")
	c.Run()

	output := out.String()
	assert.Contains(t, output, "player_name: Alice")
	assert.Contains(t, output, "location: entrance_hall")
	assert.Contains(t, output, "health: 100")
}

func TestCLI_EmptyInputAndComments(t *testing.T) {
	c, out := newTestCLI(t, "\n# a comment\n\n/quit\n")
	c.Run()

	// The engine re-prompts on a blank name; the CLI never sends one.
	assert.NotContains(t, out.String(), "Please tell the examiners your name")
	assert.Equal(t, types.PhaseNaming, c.State.Phase)
}

func TestCLI_EchoInput(t *testing.T) {
	c, out := newTestCLI(t, "Alice\nlook\n/quit\n")
	c.EchoInput = true
	c.Run()

	assert.Contains(t, out.String(), "> look\n")
}

func TestCLI_Again_RepeatsLastCommand(t *testing.T) {
	c, out := newTestCLI(t, "Alice\nhint\nagain\n/quit\n")
	c.Run()

	assert.Equal(t, 2, c.State.HintRequestCounts[types.EntranceHall])
	assert.Equal(t, 1, c.State.HintsUsed)
	assert.Contains(t, out.String(), "No additional penalty")
}

func TestCLI_G_RepeatsLastCommand(t *testing.T) {
	c, _ := newTestCLI(t, "Alice\nhint\ng\n/quit\n")
	c.Run()

	assert.Equal(t, 2, c.State.HintRequestCounts[types.EntranceHall])
}

func TestCLI_Again_NothingToRepeat(t *testing.T) {
	c, out := newTestCLI(t, "Alice\nagain\n/quit\n")
	c.Run()

	// The name is not a game command and is never repeated.
	assert.Contains(t, out.String(), "Nothing to repeat")
	assert.Empty(t, c.lastCmd)
}

func TestCLI_EndOfInput(t *testing.T) {
	c, out := newTestCLI(t, "Alice\nquit\n")
	c.Run()

	output := out.String()
	assert.Contains(t, output, "Thank you for taking the Auror Examination.")
	assert.Contains(t, output, "EXAMINATION RESULTS")
	assert.Equal(t, types.PhaseDeath, c.State.Phase)
}
