package state

import (
	"strings"
	"testing"

	"github.com/nathoo/aurorexam/types"
)

func TestNew(t *testing.T) {
	s := New()

	if s.Health != 100 || s.MaxHealth != 100 {
		t.Errorf("health = %d/%d, want 100/100", s.Health, s.MaxHealth)
	}
	if s.Location != types.EntranceHall {
		t.Errorf("location = %q, want %q", s.Location, types.EntranceHall)
	}
	if s.Phase != types.PhaseIntro {
		t.Errorf("phase = %q, want %q", s.Phase, types.PhaseIntro)
	}
	if !s.Visited[types.EntranceHall] || len(s.Visited) != 1 {
		t.Errorf("visited = %v, want only entrance_hall", s.Visited)
	}
	if len(s.JourneyLog) != 1 || s.JourneyLog[0] != (types.JourneyEntry{Location: types.EntranceHall}) {
		t.Errorf("journey = %v, want [entrance_hall]", s.JourneyLog)
	}
	if s.Challenges.DementorPhase != types.DementorInitial {
		t.Errorf("dementor phase = %q, want initial", s.Challenges.DementorPhase)
	}
	if s.Challenges.DeathEaterHealth != 100 {
		t.Errorf("death eater health = %d, want 100", s.Challenges.DeathEaterHealth)
	}
	if s.Combat != nil {
		t.Error("combat should be nil at start")
	}
}

func TestClone_NoAliasing(t *testing.T) {
	s := New()
	s.Inventory = append(s.Inventory, types.ItemDittany)
	s.Combat = &types.CombatState{Opponent: "training dummy", OpponentHealth: 30}

	c := Clone(s)
	c.Inventory[0] = types.ItemHealingHerbs
	c.Visited[types.DarkCorridor] = true
	c.ChallengesCompleted[types.ChallengeLumos] = true
	c.AttemptCounts[types.EntranceHall] = 9
	c.HintRequestCounts[types.EntranceHall] = 9
	c.PickedUp["x"] = true
	c.JourneyLog[0].Direction = types.North
	c.Combat.OpponentHealth = 1

	if s.Inventory[0] != types.ItemDittany {
		t.Error("inventory shared between clone and original")
	}
	if s.Visited[types.DarkCorridor] {
		t.Error("visited shared between clone and original")
	}
	if s.ChallengesCompleted[types.ChallengeLumos] {
		t.Error("challenges shared between clone and original")
	}
	if s.AttemptCounts[types.EntranceHall] != 0 || s.HintRequestCounts[types.EntranceHall] != 0 {
		t.Error("counters shared between clone and original")
	}
	if s.PickedUp["x"] {
		t.Error("pickups shared between clone and original")
	}
	if s.JourneyLog[0].Direction != "" {
		t.Error("journey shared between clone and original")
	}
	if s.Combat.OpponentHealth != 30 {
		t.Error("combat shared between clone and original")
	}
}

func TestClone_NilMaps(t *testing.T) {
	c := Clone(types.GameState{})
	// Writing to every map must not panic.
	c.Visited[types.EntranceHall] = true
	c.ChallengesCompleted[types.ChallengeFinal] = true
	c.AttemptCounts[types.EntranceHall]++
	c.HintRequestCounts[types.EntranceHall]++
	c.PickedUp["a"] = true
	if c.Inventory == nil {
		t.Error("inventory should be an empty slice, not nil")
	}
}

func TestHasItem(t *testing.T) {
	s := New()
	s.Inventory = []types.ItemID{types.ItemDittany}

	if !HasItem(s, types.ItemDittany) {
		t.Error("expected dittany in inventory")
	}
	if HasItem(s, types.ItemInvisibilityCloak) {
		t.Error("did not expect cloak in inventory")
	}
}

func TestCompletedCount(t *testing.T) {
	s := New()
	s.ChallengesCompleted[types.ChallengeAlohomora] = true
	s.ChallengesCompleted[types.ChallengeLumos] = true
	s.ChallengesCompleted["not_a_challenge"] = true

	if got := CompletedCount(s); got != 2 {
		t.Errorf("CompletedCount = %d, want 2", got)
	}
	if !Completed(s, types.ChallengeLumos) || Completed(s, types.ChallengeDuel) {
		t.Error("Completed reports the wrong challenges")
	}
}

func TestAvailable(t *testing.T) {
	s := New()
	if !Available(s, types.PreparationRoom, types.ItemDittany) {
		t.Error("fresh room item should be available")
	}
	s.PickedUp[PickupKey(types.PreparationRoom, types.ItemDittany)] = true
	if Available(s, types.PreparationRoom, types.ItemDittany) {
		t.Error("picked-up room item should not be available")
	}
	if !Available(s, types.ArmoryCorridor, types.ItemDittany) {
		t.Error("pickups are tracked per room")
	}
}

func TestDump(t *testing.T) {
	s := New()
	s.PlayerName = "Alice"

	out, err := Dump(s)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	text := string(out)
	for _, want := range []string{"player_name: Alice", "location: entrance_hall", "phase: intro", "death_eater_health: 100"} {
		if !strings.Contains(text, want) {
			t.Errorf("dump missing %q:\n%s", want, text)
		}
	}
}
