// Package state creates, copies and inspects the examination state.
// GameState is a value: every turn works on a deep copy from Clone.
package state

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/nathoo/aurorexam/types"
)

const (
	StartHealth      = 100
	DeathEaterHealth = 100
)

// New creates a fresh examination state in the intro phase.
func New() types.GameState {
	return types.GameState{
		Health:              StartHealth,
		MaxHealth:           StartHealth,
		Location:            types.EntranceHall,
		Inventory:           []types.ItemID{},
		Visited:             map[types.LocationID]bool{types.EntranceHall: true},
		ChallengesCompleted: map[types.ChallengeID]bool{},
		Phase:               types.PhaseIntro,
		JourneyLog:          []types.JourneyEntry{{Location: types.EntranceHall}},
		Challenges: types.ChallengeState{
			DementorPhase:    types.DementorInitial,
			DeathEaterHealth: DeathEaterHealth,
		},
		AttemptCounts:     map[types.LocationID]int{},
		HintRequestCounts: map[types.LocationID]int{},
		PickedUp:          map[string]bool{},
	}
}

// Clone returns a deep copy of s sharing no maps, slices or pointers.
func Clone(s types.GameState) types.GameState {
	c := s
	c.Inventory = slices.Clone(s.Inventory)
	if c.Inventory == nil {
		c.Inventory = []types.ItemID{}
	}
	c.JourneyLog = slices.Clone(s.JourneyLog)
	c.Visited = cloneMap(s.Visited)
	c.ChallengesCompleted = cloneMap(s.ChallengesCompleted)
	c.AttemptCounts = cloneMap(s.AttemptCounts)
	c.HintRequestCounts = cloneMap(s.HintRequestCounts)
	c.PickedUp = cloneMap(s.PickedUp)
	if s.Combat != nil {
		combat := *s.Combat
		c.Combat = &combat
	}
	return c
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return maps.Clone(m)
}

// HasItem returns true if the player carries the item.
func HasItem(s types.GameState, item types.ItemID) bool {
	return slices.Contains(s.Inventory, item)
}

// Completed reports whether a challenge has been completed.
func Completed(s types.GameState, id types.ChallengeID) bool {
	return s.ChallengesCompleted[id]
}

// CompletedCount returns how many of the scored challenges are complete.
func CompletedCount(s types.GameState) int {
	n := 0
	for _, id := range types.Challenges {
		if s.ChallengesCompleted[id] {
			n++
		}
	}
	return n
}

// PickupKey identifies a room item so it is only ever collected once.
func PickupKey(loc types.LocationID, item types.ItemID) string {
	return string(loc) + "/" + string(item)
}

// Available reports whether a room's static item is still there.
func Available(s types.GameState, loc types.LocationID, item types.ItemID) bool {
	return !s.PickedUp[PickupKey(loc, item)]
}

// Dump renders the state as YAML for debugging.
func Dump(s types.GameState) ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling state: %w", err)
	}
	return out, nil
}
