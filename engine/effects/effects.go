// Package effects implements the shared state mutations every resolver goes
// through: health, score, inventory, completion and relocation.
// Each function is one atomic operation on a working copy. No logic in effects.
package effects

import (
	"slices"

	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

// Damage decrements health, clamping to 0. Returns true if the player died.
func Damage(s *types.GameState, amount int) bool {
	s.Health -= amount
	if s.Health < 0 {
		s.Health = 0
	}
	return s.Health == 0
}

// Heal increments health, clamping to MaxHealth. Returns the amount healed.
func Heal(s *types.GameState, amount int) int {
	before := s.Health
	s.Health += amount
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
	return s.Health - before
}

// Award adds points to the score.
func Award(s *types.GameState, points int) {
	s.Score += points
}

// Complete marks a challenge complete. Returns false if it already was.
func Complete(s *types.GameState, id types.ChallengeID) bool {
	if s.ChallengesCompleted[id] {
		return false
	}
	if s.ChallengesCompleted == nil {
		s.ChallengesCompleted = map[types.ChallengeID]bool{}
	}
	s.ChallengesCompleted[id] = true
	return true
}

// Give adds an item to the inventory. Returns false if already carried.
func Give(s *types.GameState, item types.ItemID) bool {
	if state.HasItem(*s, item) {
		return false
	}
	s.Inventory = append(s.Inventory, item)
	return true
}

// Pickup gives a room's static item and records it as collected.
func Pickup(s *types.GameState, loc types.LocationID, item types.ItemID) bool {
	if !state.Available(*s, loc, item) || !Give(s, item) {
		return false
	}
	if s.PickedUp == nil {
		s.PickedUp = map[string]bool{}
	}
	s.PickedUp[state.PickupKey(loc, item)] = true
	return true
}

// Consume removes an item from the inventory. Returns false if not carried.
func Consume(s *types.GameState, item types.ItemID) bool {
	i := slices.Index(s.Inventory, item)
	if i < 0 {
		return false
	}
	s.Inventory = slices.Delete(s.Inventory, i, i+1)
	return true
}

// Relocate moves the player, marks the destination visited and records the
// step: the last journey entry gains the direction taken and the
// destination is appended as the new current entry.
func Relocate(s *types.GameState, to types.LocationID, dir types.Direction) {
	if n := len(s.JourneyLog); n > 0 {
		s.JourneyLog[n-1] = types.JourneyEntry{Location: s.Location, Direction: dir}
	}
	s.JourneyLog = append(s.JourneyLog, types.JourneyEntry{Location: to})
	s.Location = to
	if s.Visited == nil {
		s.Visited = map[types.LocationID]bool{}
	}
	s.Visited[to] = true
}
