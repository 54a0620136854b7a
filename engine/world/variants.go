package world

import "github.com/nathoo/aurorexam/types"

// DefaultVariant is the description used by rooms that never change.
const DefaultVariant = "default"

// variants lists the description keys each state-dependent room can select.
// The loader checks that the world definition provides every one of them.
var variants = map[types.LocationID][]string{
	types.EntranceHall:      {"locked", "unlocked"},
	types.DarkCorridor:      {"dark", "lit"},
	types.DeepTunnel:        {"dark", "lit"},
	types.ShadowPassage:     {"dark", "lit", "cleared"},
	types.ChasmRoom:         {"chasm", "bridged"},
	types.ChasmOtherSide:    {"sealed", "open"},
	types.DementorChamber:   {"engaged", "defeated"},
	types.InferiLake:        {"engaged", "cleared"},
	types.CreatureEnclosure: {"wary", "bowed", "trusting"},
	types.GuardCorridor:     {"patrol", "alerted", "unseen", "clear"},
	types.TrainingHall:      {"drill", "complete"},
	types.DeathEaterChamber: {"duel", "defeated"},
	types.FinalChamber:      {"mirror", "gazed"},
}

// Variants returns the description keys a room needs.
func Variants(id types.LocationID) []string {
	if v, ok := variants[id]; ok {
		return v
	}
	return []string{DefaultVariant}
}

// Variant picks the description key for the player's current room.
func Variant(s types.GameState) string {
	c := s.Challenges
	switch s.Location {
	case types.EntranceHall:
		if c.DoorUnlocked {
			return "unlocked"
		}
		return "locked"
	case types.DarkCorridor, types.DeepTunnel:
		if c.LumosActive {
			return "lit"
		}
		return "dark"
	case types.ShadowPassage:
		switch {
		case c.PassageCleared:
			return "cleared"
		case c.LumosActive:
			return "lit"
		}
		return "dark"
	case types.ChasmRoom:
		if c.LevitationBridgeBuilt {
			return "bridged"
		}
		return "chasm"
	case types.ChasmOtherSide:
		if BarrierOpen(s) {
			return "open"
		}
		return "sealed"
	case types.DementorChamber:
		if c.DementorDefeated {
			return "defeated"
		}
		return "engaged"
	case types.InferiLake:
		if c.InferiCleared {
			return "cleared"
		}
		return "engaged"
	case types.CreatureEnclosure:
		switch {
		case c.HippogriffTrusts:
			return "trusting"
		case c.HippogriffBowed:
			return "bowed"
		}
		return "wary"
	case types.GuardCorridor:
		switch {
		case c.StealthPassed:
			return "clear"
		case c.WearingCloak || c.StealthActive:
			return "unseen"
		case c.GuardsAlerted:
			return "alerted"
		}
		return "patrol"
	case types.TrainingHall:
		if c.TrainingComplete {
			return "complete"
		}
		return "drill"
	case types.DeathEaterChamber:
		if c.DeathEaterDefeated {
			return "defeated"
		}
		return "duel"
	case types.FinalChamber:
		if c.MirrorLookedOnce {
			return "gazed"
		}
		return "mirror"
	}
	return DefaultVariant
}
