// Package world holds the static location graph and the rules that decide
// whether the player may move along an edge and how a room reads right now.
package world

import (
	"slices"
	"strings"

	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

// Map is the immutable examination map, built once at start-up.
type Map struct {
	Title     string
	Start     types.LocationID
	Locations map[types.LocationID]types.Location
}

// Location returns a room definition.
func (m *Map) Location(id types.LocationID) (types.Location, bool) {
	loc, ok := m.Locations[id]
	return loc, ok
}

// Name returns the display name of a room, or its ID if unknown.
func (m *Map) Name(id types.LocationID) string {
	if loc, ok := m.Locations[id]; ok && loc.Name != "" {
		return loc.Name
	}
	return string(id)
}

// Order lists every room: those reachable from Start breadth-first along
// exits in direction order, then any unreachable ones sorted by ID.
func (m *Map) Order() []types.LocationID {
	seen := map[types.LocationID]bool{}
	var out []types.LocationID
	queue := []types.LocationID{m.Start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		loc, ok := m.Locations[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		for _, dir := range types.Directions {
			if next, ok := loc.Connections[dir]; ok && !seen[next] {
				queue = append(queue, next)
			}
		}
	}

	var rest []types.LocationID
	for id := range m.Locations {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}

// Gate names the rule that rejected a move.
type Gate int

const (
	GateNone Gate = iota
	GateNoExit
	GateSealedDoor
	GateDarkness
	GateChasm
	GateDementor
	GateInferi
	GateNarrowPassage
	GateHippogriff
	GateGuards
	GateDeathEater
	GateBarrier
)

// Move is the outcome of a legality check.
type Move struct {
	Allowed     bool
	Message     string
	Destination types.LocationID
	Gate        Gate
}

func blocked(g Gate, msg string) Move {
	return Move{Gate: g, Message: msg}
}

// CanMoveTo decides whether the player may leave in dir. Gates are checked
// in a fixed order: missing exit, sealed door, darkness, chasm, engaged
// hostiles (which block every exit), then the guarded edges further on.
func (m *Map) CanMoveTo(s types.GameState, dir types.Direction) Move {
	loc, ok := m.Locations[s.Location]
	if !ok {
		return blocked(GateNoExit, "You can't go that way.")
	}
	dest, ok := loc.Connections[dir]
	if !ok {
		return blocked(GateNoExit, "You can't go that way.")
	}
	c := s.Challenges

	switch {
	case s.Location == types.EntranceHall && dir == types.North && !c.DoorUnlocked:
		return blocked(GateSealedDoor, "The great door to the north is sealed shut. Runes glow faintly along its frame. Perhaps a spell could open it.")

	case loc.Dark && !c.LumosActive && dir != loc.Retreat:
		return blocked(GateDarkness, "It's too dark to see where you're going. You could stumble into anything. Light your wand, or retreat the way you came.")

	case s.Location == types.ChasmRoom && dir == types.North && !c.LevitationBridgeBuilt:
		return blocked(GateChasm, "A yawning chasm blocks your path. You'd need some way to cross it.")

	case s.Location == types.DementorChamber && c.DementorEngaged && !c.DementorDefeated:
		return blocked(GateDementor, "The Dementor's cold grip holds you in place. You cannot flee!")

	case s.Location == types.InferiLake && c.InferiEngaged && !c.InferiCleared:
		return blocked(GateInferi, "Pale hands close around your ankles from the black water. The Inferi won't let you leave!")

	case s.Location == types.ShadowPassage && dir == types.East && !c.PassageCleared:
		return blocked(GateNarrowPassage, "The gap between the rocks is far too narrow to squeeze through as you are.")

	case s.Location == types.CreatureEnclosure && dir == types.North && !c.HippogriffTrusts:
		return blocked(GateHippogriff, "The hippogriff rears up, wings spread wide, blocking your way!")

	case s.Location == types.GuardCorridor && dir == types.North && !c.StealthPassed && !c.WearingCloak && !c.StealthActive:
		return blocked(GateGuards, "The guards stand shoulder to shoulder across the corridor. You'll need to get past them somehow.")

	case s.Location == types.DeathEaterChamber && dir == types.North && !c.DeathEaterDefeated:
		return blocked(GateDeathEater, "The Death Eater blocks the way forward. You must defeat them first!")

	case s.Location == types.ChasmOtherSide && dir == types.North && !BarrierOpen(s):
		return blocked(GateBarrier, "A shimmering barrier seals the passage north. Words burn in the air: 'Only those who have faced the Dementor, the Inferi and the Hippogriff may pass.'")
	}

	return Move{Allowed: true, Destination: dest}
}

// BarrierOpen reports whether the three eastern trials are behind the player.
func BarrierOpen(s types.GameState) bool {
	c := s.Challenges
	return c.DementorDefeated && c.InferiCleared && c.HippogriffTrusts
}

// InDarkness reports whether the player stands unlit in a dark room.
func (m *Map) InDarkness(s types.GameState) bool {
	loc, ok := m.Locations[s.Location]
	return ok && loc.Dark && !s.Challenges.LumosActive
}

// Describe renders the current room. Descriptions depend on state, so
// callers must not cache them.
func (m *Map) Describe(s types.GameState) string {
	loc, ok := m.Locations[s.Location]
	if !ok {
		return "You are nowhere at all."
	}

	text := loc.Text[Variant(s)]
	if text == "" {
		text = loc.Text[DefaultVariant]
	}

	var b strings.Builder
	b.WriteString(strings.ToUpper(loc.Name))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(text))

	// Nothing else is visible in the dark.
	if m.InDarkness(s) {
		return b.String()
	}

	var items []string
	for _, item := range loc.Items {
		if state.Available(s, loc.ID, item) && !state.HasItem(s, item) {
			items = append(items, item.DisplayName())
		}
	}
	if len(items) > 0 {
		b.WriteString("\n\nYou notice: " + strings.Join(items, ", ") + ".")
	}

	var exits []string
	for _, dir := range types.Directions {
		if _, ok := loc.Connections[dir]; ok {
			exits = append(exits, string(dir))
		}
	}
	if len(exits) > 0 {
		b.WriteString("\nExits: " + strings.Join(exits, ", ") + ".")
	}
	return b.String()
}
