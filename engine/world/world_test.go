package world

import (
	"strings"
	"testing"

	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

// testMap returns a small slice of the examination map.
func testMap() *Map {
	text := func(keys ...string) map[string]string {
		m := map[string]string{}
		for _, k := range keys {
			m[k] = "The room is " + k + "."
		}
		return m
	}
	return &Map{
		Title: "Test",
		Start: types.EntranceHall,
		Locations: map[types.LocationID]types.Location{
			types.EntranceHall: {
				ID:   types.EntranceHall,
				Name: "Entrance Hall",
				Connections: map[types.Direction]types.LocationID{
					types.North: types.DarkCorridor,
					types.East:  types.PreparationRoom,
				},
				Text: text("locked", "unlocked"),
			},
			types.PreparationRoom: {
				ID:          types.PreparationRoom,
				Name:        "Preparation Room",
				Connections: map[types.Direction]types.LocationID{types.West: types.EntranceHall},
				Items:       []types.ItemID{types.ItemDittany},
				Text:        text(DefaultVariant),
			},
			types.DarkCorridor: {
				ID:   types.DarkCorridor,
				Name: "Dark Corridor",
				Connections: map[types.Direction]types.LocationID{
					types.South: types.EntranceHall,
					types.North: types.DeepTunnel,
				},
				Dark:    true,
				Retreat: types.South,
				Text:    text("dark", "lit"),
			},
			types.DementorChamber: {
				ID:   types.DementorChamber,
				Name: "Dementor Chamber",
				Connections: map[types.Direction]types.LocationID{
					types.West: types.ChasmOtherSide,
					types.East: types.BeyondDementor,
				},
				Text: text("engaged", "defeated"),
			},
			types.ChasmOtherSide: {
				ID:   types.ChasmOtherSide,
				Name: "Far Side of the Chasm",
				Connections: map[types.Direction]types.LocationID{
					types.North: types.TrainingHall,
					types.East:  types.DementorChamber,
				},
				Text: text("sealed", "open"),
			},
			types.CreatureEnclosure: {
				ID:   types.CreatureEnclosure,
				Name: "Creature Enclosure",
				Connections: map[types.Direction]types.LocationID{
					types.North: types.BeyondCreature,
					types.South: types.LakeShore,
				},
				Text: text("wary", "bowed", "trusting"),
			},
			types.GuardCorridor: {
				ID:   types.GuardCorridor,
				Name: "Guard Corridor",
				Connections: map[types.Direction]types.LocationID{
					types.North: types.BeyondGuards,
					types.South: types.BeyondCreature,
				},
				Text: text("patrol", "alerted", "unseen", "clear"),
			},
		},
	}
}

func at(loc types.LocationID) types.GameState {
	s := state.New()
	s.Phase = types.PhasePlaying
	s.Location = loc
	return s
}

func TestCanMoveTo(t *testing.T) {
	m := testMap()

	tests := []struct {
		name     string
		setup    func() types.GameState
		dir      types.Direction
		wantOK   bool
		wantGate Gate
	}{
		{
			name:     "no exit",
			setup:    func() types.GameState { return at(types.EntranceHall) },
			dir:      types.West,
			wantGate: GateNoExit,
		},
		{
			name:     "sealed door",
			setup:    func() types.GameState { return at(types.EntranceHall) },
			dir:      types.North,
			wantGate: GateSealedDoor,
		},
		{
			name: "unlocked door",
			setup: func() types.GameState {
				s := at(types.EntranceHall)
				s.Challenges.DoorUnlocked = true
				return s
			},
			dir:    types.North,
			wantOK: true,
		},
		{
			name:     "darkness blocks onward movement",
			setup:    func() types.GameState { return at(types.DarkCorridor) },
			dir:      types.North,
			wantGate: GateDarkness,
		},
		{
			name:   "darkness allows retreat",
			setup:  func() types.GameState { return at(types.DarkCorridor) },
			dir:    types.South,
			wantOK: true,
		},
		{
			name: "lit corridor",
			setup: func() types.GameState {
				s := at(types.DarkCorridor)
				s.Challenges.LumosActive = true
				return s
			},
			dir:    types.North,
			wantOK: true,
		},
		{
			name: "engaged dementor blocks the way back too",
			setup: func() types.GameState {
				s := at(types.DementorChamber)
				s.Challenges.DementorEngaged = true
				return s
			},
			dir:      types.West,
			wantGate: GateDementor,
		},
		{
			name: "defeated dementor",
			setup: func() types.GameState {
				s := at(types.DementorChamber)
				s.Challenges.DementorEngaged = true
				s.Challenges.DementorDefeated = true
				return s
			},
			dir:    types.East,
			wantOK: true,
		},
		{
			name:     "hippogriff without trust",
			setup:    func() types.GameState { return at(types.CreatureEnclosure) },
			dir:      types.North,
			wantGate: GateHippogriff,
		},
		{
			name:   "hippogriff retreat is free",
			setup:  func() types.GameState { return at(types.CreatureEnclosure) },
			dir:    types.South,
			wantOK: true,
		},
		{
			name:     "guards without stealth",
			setup:    func() types.GameState { return at(types.GuardCorridor) },
			dir:      types.North,
			wantGate: GateGuards,
		},
		{
			name: "guards with cloak",
			setup: func() types.GameState {
				s := at(types.GuardCorridor)
				s.Challenges.WearingCloak = true
				return s
			},
			dir:    types.North,
			wantOK: true,
		},
		{
			name: "guards with muffled steps",
			setup: func() types.GameState {
				s := at(types.GuardCorridor)
				s.Challenges.StealthActive = true
				return s
			},
			dir:    types.North,
			wantOK: true,
		},
		{
			name: "barrier with two of three trials",
			setup: func() types.GameState {
				s := at(types.ChasmOtherSide)
				s.Challenges.DementorDefeated = true
				s.Challenges.InferiCleared = true
				return s
			},
			dir:      types.North,
			wantGate: GateBarrier,
		},
		{
			name: "barrier with all three trials",
			setup: func() types.GameState {
				s := at(types.ChasmOtherSide)
				s.Challenges.DementorDefeated = true
				s.Challenges.InferiCleared = true
				s.Challenges.HippogriffTrusts = true
				return s
			},
			dir:    types.North,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mv := m.CanMoveTo(tt.setup(), tt.dir)
			if mv.Allowed != tt.wantOK {
				t.Fatalf("Allowed = %v, want %v (%s)", mv.Allowed, tt.wantOK, mv.Message)
			}
			if !tt.wantOK {
				if mv.Gate != tt.wantGate {
					t.Errorf("Gate = %v, want %v", mv.Gate, tt.wantGate)
				}
				if mv.Message == "" {
					t.Error("rejected move should carry a message")
				}
			}
		})
	}
}

func TestCanMoveTo_NoExitBeatsDarkness(t *testing.T) {
	mv := testMap().CanMoveTo(at(types.DarkCorridor), types.East)
	if mv.Gate != GateNoExit {
		t.Errorf("Gate = %v, want GateNoExit", mv.Gate)
	}
}

func TestDescribe_FollowsState(t *testing.T) {
	m := testMap()
	s := at(types.EntranceHall)

	if got := m.Describe(s); !strings.Contains(got, "The room is locked.") {
		t.Errorf("locked description missing:\n%s", got)
	}
	s.Challenges.DoorUnlocked = true
	if got := m.Describe(s); !strings.Contains(got, "The room is unlocked.") {
		t.Errorf("unlocked description missing:\n%s", got)
	}
	if got := m.Describe(s); !strings.Contains(got, "Exits: north, east.") {
		t.Errorf("exits line missing:\n%s", got)
	}
}

func TestDescribe_Items(t *testing.T) {
	m := testMap()
	s := at(types.PreparationRoom)

	if got := m.Describe(s); !strings.Contains(got, "You notice: Essence of Dittany.") {
		t.Errorf("item line missing:\n%s", got)
	}
	s.PickedUp[state.PickupKey(types.PreparationRoom, types.ItemDittany)] = true
	if got := m.Describe(s); strings.Contains(got, "You notice") {
		t.Errorf("collected item still listed:\n%s", got)
	}
}

func TestDescribe_DarkHidesExits(t *testing.T) {
	m := testMap()
	s := at(types.DarkCorridor)

	got := m.Describe(s)
	if !strings.Contains(got, "The room is dark.") || strings.Contains(got, "Exits:") {
		t.Errorf("dark room description wrong:\n%s", got)
	}
	s.Challenges.LumosActive = true
	if got := m.Describe(s); !strings.Contains(got, "Exits: north, south.") {
		t.Errorf("lit room should list exits:\n%s", got)
	}
}

func TestVariant(t *testing.T) {
	s := at(types.GuardCorridor)
	if got := Variant(s); got != "patrol" {
		t.Errorf("Variant = %q, want patrol", got)
	}
	s.Challenges.GuardsAlerted = true
	if got := Variant(s); got != "alerted" {
		t.Errorf("Variant = %q, want alerted", got)
	}
	s.Challenges.WearingCloak = true
	if got := Variant(s); got != "unseen" {
		t.Errorf("Variant = %q, want unseen", got)
	}
	s.Challenges.StealthPassed = true
	if got := Variant(s); got != "clear" {
		t.Errorf("Variant = %q, want clear", got)
	}

	if got := Variant(at(types.WaterPassage)); got != DefaultVariant {
		t.Errorf("Variant(water_passage) = %q, want default", got)
	}
}

func TestVariants_EveryKeyReachable(t *testing.T) {
	for id, keys := range variants {
		if len(keys) < 2 {
			t.Errorf("%s lists %d variants; static rooms should use the default", id, len(keys))
		}
	}
	if got := Variants(types.WaterPassage); len(got) != 1 || got[0] != DefaultVariant {
		t.Errorf("Variants(water_passage) = %v, want [default]", got)
	}
}

func TestOrder(t *testing.T) {
	got := testMap().Order()
	want := []types.LocationID{
		types.EntranceHall, types.DarkCorridor, types.PreparationRoom,
		types.ChasmOtherSide, types.CreatureEnclosure, types.DementorChamber, types.GuardCorridor,
	}
	if len(got) != len(want) {
		t.Fatalf("Order() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Order()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
