package engine

import (
	"testing"

	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/loader"
	"github.com/nathoo/aurorexam/types"
)

// scripted is a Rand that replays fixed values, then returns 0.
type scripted struct {
	vals  []int
	calls int
}

func (r *scripted) Intn(n int) int {
	defer func() { r.calls++ }()
	if r.calls >= len(r.vals) {
		return 0
	}
	return r.vals[r.calls] % n
}

func newEngine(vals ...int) *Engine {
	return New(loader.MustDefault(), WithRand(&scripted{vals: vals}))
}

// playing returns a fresh state that has already been through naming.
func playing() types.GameState {
	s := state.New()
	s.Phase = types.PhasePlaying
	s.PlayerName = "Alice"
	return s
}

// at places a playing candidate in a room as if they had just arrived
// on an earlier turn.
func at(loc types.LocationID) types.GameState {
	s := playing()
	s.Location = loc
	s.Visited[loc] = true
	s.JourneyLog = []types.JourneyEntry{{Location: loc}}
	return s
}

// run threads the state through a sequence of inputs and returns the
// last result.
func run(t *testing.T, e *Engine, s types.GameState, inputs ...string) types.CommandResult {
	t.Helper()
	r := types.CommandResult{State: s}
	for _, in := range inputs {
		r = e.Process(r.State, in)
	}
	return r
}
