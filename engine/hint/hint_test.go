package hint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

func at(loc types.LocationID) types.GameState {
	s := state.New()
	s.Phase = types.PhasePlaying
	s.Location = loc
	return s
}

func TestHint_FirstRequestCharges(t *testing.T) {
	s := at(types.EntranceHall)
	s.Score = 10

	r := Hint(s)

	assert.Equal(t, 8, r.State.Score)
	assert.Equal(t, 1, r.State.HintsUsed)
	assert.Equal(t, 1, r.State.HintRequestCounts[types.EntranceHall])
	assert.Contains(t, r.Message, "charms are made for opening locks")
	assert.Contains(t, r.Message, "[-2 points for hint]")
	assert.Equal(t, types.ColorMagic, r.Color)

	// The input state is untouched.
	assert.Equal(t, 10, s.Score)
	assert.Zero(t, s.HintRequestCounts[types.EntranceHall])
}

func TestHint_RepeatIsFree(t *testing.T) {
	s := at(types.ChasmRoom)
	s.Score = 30

	first := Hint(s)
	second := Hint(first.State)
	third := Hint(second.State)

	for _, r := range []types.CommandResult{second, third} {
		assert.Equal(t, 28, r.State.Score, "repeat hints must not charge again")
		assert.Equal(t, 1, r.State.HintsUsed)
		assert.Contains(t, r.Message, "feather lesson")
		assert.Contains(t, r.Message, "No additional penalty")
	}
	assert.Equal(t, 3, third.State.HintRequestCounts[types.ChasmRoom])
}

func TestHint_ChargedOncePerLocation(t *testing.T) {
	s := at(types.EntranceHall)
	r := Hint(s)

	r.State.Location = types.PreparationRoom
	r = Hint(r.State)

	assert.Equal(t, 2, r.State.HintsUsed, "a new location is charged again")
	assert.Equal(t, -4, r.State.Score)
}

func TestHint_SolvedFallsBackToDefault(t *testing.T) {
	s := at(types.EntranceHall)
	s.Challenges.DoorUnlocked = true

	r := Hint(s)
	assert.Contains(t, r.Message, "examine your surroundings")
}

func TestHint_EveryChallengeRoomHasSpecificText(t *testing.T) {
	for loc, e := range hints {
		r := Hint(at(loc))
		if !strings.HasPrefix(r.Message, e.tiers[0]) {
			t.Errorf("Hint(%s) = %q, want first tier", loc, r.Message)
		}
		if e.tiers[0] == "" || e.tiers[1] == "" {
			t.Errorf("%s has an empty tier", loc)
		}
	}
}
