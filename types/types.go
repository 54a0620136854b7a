// Package types defines the core data types for the examination engine.
// These are pure data with no logic; behavior lives in the engine packages.
package types

// Phase drives top-level command routing.
type Phase string

const (
	PhaseIntro   Phase = "intro"
	PhaseNaming  Phase = "naming"
	PhasePlaying Phase = "playing"
	PhaseVictory Phase = "victory"
	PhaseDeath   Phase = "death"
)

// Color is a display hint attached to a command result.
type Color string

const (
	ColorNone    Color = ""
	ColorNormal  Color = "normal"
	ColorDamage  Color = "damage"
	ColorHealing Color = "healing"
	ColorMagic   Color = "magic"
	ColorGold    Color = "gold"
	ColorWarning Color = "warning"
)

// CommandType classifies a parsed command.
type CommandType string

const (
	CommandUnknown  CommandType = "unknown"
	CommandMovement CommandType = "movement"
	CommandSpell    CommandType = "spell"
	CommandAction   CommandType = "action"
	CommandSystem   CommandType = "system"
)

// Direction is a canonical movement token.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
	Enter Direction = "enter"
	Exit  Direction = "exit"
)

// Directions lists every movement token in display order.
var Directions = []Direction{North, South, East, West, Up, Down, Enter, Exit}

// LocationID identifies a room on the examination map.
type LocationID string

const (
	EntranceHall      LocationID = "entrance_hall"
	PreparationRoom   LocationID = "preparation_room"
	WaterPassage      LocationID = "water_passage"
	DarkCorridor      LocationID = "dark_corridor"
	DeepTunnel        LocationID = "deep_tunnel"
	ShadowPassage     LocationID = "shadow_passage"
	HiddenRoom        LocationID = "hidden_room"
	ChasmRoom         LocationID = "chasm_room"
	ChasmOtherSide    LocationID = "chasm_other_side"
	DementorChamber   LocationID = "dementor_chamber"
	BeyondDementor    LocationID = "beyond_dementor"
	InferiLake        LocationID = "inferi_lake"
	LakeShore         LocationID = "lake_shore"
	CreatureEnclosure LocationID = "creature_enclosure"
	BeyondCreature    LocationID = "beyond_creature"
	GuardCorridor     LocationID = "guard_corridor"
	BeyondGuards      LocationID = "beyond_guards"
	ArmoryCorridor    LocationID = "armory_corridor"
	TrainingHall      LocationID = "training_hall"
	DeathEaterChamber LocationID = "death_eater_chamber"
	FinalApproach     LocationID = "final_approach"
	FinalChamber      LocationID = "final_chamber"
)

// ItemID identifies a carryable item.
type ItemID string

const (
	ItemDittany           ItemID = "dittany"
	ItemWiggenweld        ItemID = "wiggenweld_potion"
	ItemHealingHerbs      ItemID = "healing_herbs"
	ItemInvisibilityCloak ItemID = "invisibility_cloak"
)

var itemNames = map[ItemID]string{
	ItemDittany:           "Essence of Dittany",
	ItemWiggenweld:        "Wiggenweld Potion",
	ItemHealingHerbs:      "Dried Healing Herbs",
	ItemInvisibilityCloak: "Invisibility Cloak",
}

// DisplayName returns the human-readable item name.
func (i ItemID) DisplayName() string {
	if n, ok := itemNames[i]; ok {
		return n
	}
	return string(i)
}

// Known reports whether the item is part of the examination.
func (i ItemID) Known() bool {
	_, ok := itemNames[i]
	return ok
}

// ChallengeID identifies one of the nine scored challenges.
type ChallengeID string

const (
	ChallengeAlohomora  ChallengeID = "alohomora"
	ChallengeLumos      ChallengeID = "lumos"
	ChallengeLevitation ChallengeID = "levitation"
	ChallengeDementor   ChallengeID = "dementor"
	ChallengeInferi     ChallengeID = "inferi"
	ChallengeHippogriff ChallengeID = "hippogriff"
	ChallengeStealth    ChallengeID = "stealth"
	ChallengeDuel       ChallengeID = "duel"
	ChallengeFinal      ChallengeID = "final"
)

// Challenges lists the scored challenges in examination order.
var Challenges = []ChallengeID{
	ChallengeAlohomora, ChallengeLumos, ChallengeLevitation,
	ChallengeDementor, ChallengeInferi, ChallengeHippogriff,
	ChallengeStealth, ChallengeDuel, ChallengeFinal,
}

// DementorPhase is the dementor encounter state machine.
type DementorPhase string

const (
	DementorInitial      DementorPhase = "initial"
	DementorMemoryNeeded DementorPhase = "memory_needed"
	DementorComplete     DementorPhase = "complete"
)

// ChallengeState holds one flag, enum or counter per puzzle.
// Completion flags never revert once set.
type ChallengeState struct {
	DoorUnlocked           bool          `yaml:"door_unlocked"`
	PassageCleared         bool          `yaml:"passage_cleared"`
	LumosActive            bool          `yaml:"lumos_active"`
	LevitationBridgeBuilt  bool          `yaml:"levitation_bridge_built"`
	DementorDefeated       bool          `yaml:"dementor_defeated"`
	DementorPhase          DementorPhase `yaml:"dementor_phase"`
	DementorEngaged        bool          `yaml:"dementor_engaged"`
	PatronusForm           string        `yaml:"patronus_form,omitempty"`
	InferiCleared          bool          `yaml:"inferi_cleared"`
	InferiEngaged          bool          `yaml:"inferi_engaged"`
	HippogriffBowed        bool          `yaml:"hippogriff_bowed"`
	HippogriffTrusts       bool          `yaml:"hippogriff_trusts"`
	HippogriffRidden       bool          `yaml:"hippogriff_ridden"`
	DeathEaterDefeated     bool          `yaml:"death_eater_defeated"`
	DeathEaterHealth       int           `yaml:"death_eater_health"`
	DuelRound              int           `yaml:"duel_round"`
	DuelDefending          bool          `yaml:"duel_defending"`
	StealthPassed          bool          `yaml:"stealth_passed"`
	StealthActive          bool          `yaml:"stealth_active"`
	GuardsAlerted          bool          `yaml:"guards_alerted"`
	WearingCloak           bool          `yaml:"wearing_cloak"`
	TrainingComplete       bool          `yaml:"training_complete"`
	FinalChallengeComplete bool          `yaml:"final_challenge_complete"`
	AwaitingMemory         bool          `yaml:"awaiting_memory"`
	MirrorLookedOnce       bool          `yaml:"mirror_looked_once"`
}

// CombatState is the structured training-dummy bout. Nil when no bout runs.
type CombatState struct {
	Opponent          string `yaml:"opponent"`
	OpponentHealth    int    `yaml:"opponent_health"`
	OpponentMaxHealth int    `yaml:"opponent_max_health"`
	OpponentBracing   bool   `yaml:"opponent_bracing"`
	Round             int    `yaml:"round"`
	Blocks            int    `yaml:"blocks"`
}

// JourneyEntry is one step of the movement audit trail. Direction is empty
// on the last entry, which always names the current location.
type JourneyEntry struct {
	Location  LocationID `yaml:"location"`
	Direction Direction  `yaml:"direction,omitempty"`
}

// GameState is the single aggregate threaded through every turn.
type GameState struct {
	PlayerName          string               `yaml:"player_name"`
	Health              int                  `yaml:"health"`
	MaxHealth           int                  `yaml:"max_health"`
	Location            LocationID           `yaml:"location"`
	Inventory           []ItemID             `yaml:"inventory"`
	Visited             map[LocationID]bool  `yaml:"visited"`
	ChallengesCompleted map[ChallengeID]bool `yaml:"challenges_completed"`
	Phase               Phase                `yaml:"phase"`
	Score               int                  `yaml:"score"`
	HintsUsed           int                  `yaml:"hints_used"`
	EpiskeyCasts        int                  `yaml:"episkey_casts"`
	JourneyLog          []JourneyEntry       `yaml:"journey_log"`
	Challenges          ChallengeState       `yaml:"challenges"`
	Combat              *CombatState         `yaml:"combat,omitempty"`
	AttemptCounts       map[LocationID]int   `yaml:"attempt_counts"`
	HintRequestCounts   map[LocationID]int   `yaml:"hint_request_counts"`
	PickedUp            map[string]bool      `yaml:"picked_up"`
	RestartPending      bool                 `yaml:"restart_pending"`
}

// CommandResult is the engine's per-turn output.
type CommandResult struct {
	Message string
	State   GameState
	Color   Color
}

// ParsedCommand is the normalized form of one input line.
type ParsedCommand struct {
	Type   CommandType
	Verb   string
	Target string
}

// Location is a static room definition. Text holds the description
// variants keyed by the name the world map selects for the current state.
type Location struct {
	ID          LocationID               `yaml:"id"`
	Name        string                   `yaml:"name"`
	Connections map[Direction]LocationID `yaml:"connections"`
	Items       []ItemID                 `yaml:"items,omitempty"`
	Challenge   ChallengeID              `yaml:"challenge,omitempty"`
	Dark        bool                     `yaml:"dark,omitempty"`
	Retreat     Direction                `yaml:"retreat,omitempty"`
	Text        map[string]string        `yaml:"-"`
}
