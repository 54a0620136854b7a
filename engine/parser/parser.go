// Package parser converts command strings into ParsedCommand values.
// Intentionally dumb: no NLP, just word tables and the spell matcher.
package parser

import (
	"strings"

	"github.com/nathoo/aurorexam/engine/spells"
	"github.com/nathoo/aurorexam/types"
)

// Action is a verb from the fixed action vocabulary.
type Action string

const (
	ActionExamine Action = "examine"
	ActionTake    Action = "take"
	ActionUse     Action = "use"
	ActionDrop    Action = "drop"
	ActionRead    Action = "read"
	ActionOpen    Action = "open"
	ActionClose   Action = "close"
	ActionAttack  Action = "attack"
	ActionBow     Action = "bow"
	ActionRide    Action = "ride"
	ActionLeave   Action = "leave"
	ActionCrawl   Action = "crawl"
	ActionClaim   Action = "claim"
	ActionWear    Action = "wear"
	ActionRemove  Action = "remove"
	ActionTouch   Action = "touch"
	ActionSee     Action = "see"
)

var actions = map[Action]bool{
	ActionExamine: true, ActionTake: true, ActionUse: true, ActionDrop: true,
	ActionRead: true, ActionOpen: true, ActionClose: true, ActionAttack: true,
	ActionBow: true, ActionRide: true, ActionLeave: true, ActionCrawl: true,
	ActionClaim: true, ActionWear: true, ActionRemove: true, ActionTouch: true,
	ActionSee: true,
}

// System is a meta-command verb.
type System string

const (
	SystemHelp           System = "help"
	SystemHint           System = "hint"
	SystemInventory      System = "inventory"
	SystemLook           System = "look"
	SystemScore          System = "score"
	SystemJourney        System = "journey"
	SystemQuit           System = "quit"
	SystemRestart        System = "restart"
	SystemRestartConfirm System = "restart confirm"
)

var systemCommands = map[string]System{
	"help":            SystemHelp,
	"h":               SystemHelp,
	"?":               SystemHelp,
	"hint":            SystemHint,
	"hints":           SystemHint,
	"clue":            SystemHint,
	"inventory":       SystemInventory,
	"inv":             SystemInventory,
	"i":               SystemInventory,
	"items":           SystemInventory,
	"look":            SystemLook,
	"l":               SystemLook,
	"look around":     SystemLook,
	"score":           SystemScore,
	"journey":         SystemJourney,
	"map":             SystemJourney,
	"quit":            SystemQuit,
	"restart":         SystemRestart,
	"restart confirm": SystemRestartConfirm,
}

var directionExpansions = map[string]types.Direction{
	"n":     types.North,
	"s":     types.South,
	"e":     types.East,
	"w":     types.West,
	"u":     types.Up,
	"d":     types.Down,
	"north": types.North,
	"south": types.South,
	"east":  types.East,
	"west":  types.West,
	"up":    types.Up,
	"down":  types.Down,
	"enter": types.Enter,
	"exit":  types.Exit,
}

// Words that may precede a direction: "go north", "walk n".
var movementVerbs = map[string]bool{
	"go": true, "walk": true, "move": true, "head": true, "run": true,
}

var verbAliases = map[string]Action{
	// Examine
	"look":    ActionExamine,
	"x":       ActionExamine,
	"inspect": ActionExamine,
	"check":   ActionExamine,
	"study":   ActionExamine,

	// Take
	"get":    ActionTake,
	"grab":   ActionTake,
	"pickup": ActionTake,

	// Use
	"drink":   ActionUse,
	"apply":   ActionUse,
	"consume": ActionUse,
	"eat":     ActionUse,

	// Mirror
	"turn":  ActionLeave,
	"gaze":  ActionSee,
	"stare": ActionSee,
	"peer":  ActionSee,
	"reach": ActionTouch,

	// Misc
	"hit":    ActionAttack,
	"strike": ActionAttack,
	"fight":  ActionAttack,
	"don":    ActionWear,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Parse converts a raw command string into a ParsedCommand.
// It has no state dependency: the same input always parses the same way.
func Parse(input string) types.ParsedCommand {
	words := strings.Fields(strings.ToLower(input))
	if len(words) == 0 {
		return types.ParsedCommand{Type: types.CommandUnknown}
	}
	text := strings.Join(words, " ")

	if dir, ok := parseDirection(words); ok {
		return types.ParsedCommand{Type: types.CommandMovement, Verb: string(dir)}
	}

	if sys, ok := systemCommands[text]; ok {
		return types.ParsedCommand{Type: types.CommandSystem, Verb: string(sys)}
	}

	// Spells, with or without a leading "cast".
	incantation := strings.TrimPrefix(text, "cast ")
	if incantation == string(spells.Accio) || strings.HasPrefix(incantation, "accio ") {
		target := strings.Join(stripArticles(strings.Fields(strings.TrimPrefix(incantation, string(spells.Accio)))), " ")
		return types.ParsedCommand{Type: types.CommandSpell, Verb: string(spells.Accio), Target: target}
	}
	if m, ok := spells.Match(incantation); ok {
		return types.ParsedCommand{Type: types.CommandSpell, Verb: string(m.Spell)}
	}

	words = expandMultiWordVerbs(words)
	verb := Action(words[0])
	if alias, ok := verbAliases[words[0]]; ok {
		verb = alias
	}
	if actions[verb] {
		return types.ParsedCommand{
			Type:   types.CommandAction,
			Verb:   string(verb),
			Target: strings.Join(stripArticles(words[1:]), " "),
		}
	}

	// Long gibberish reads as a botched incantation.
	if len(text) > 3 {
		return types.ParsedCommand{Type: types.CommandSpell, Verb: string(spells.Unknown)}
	}
	return types.ParsedCommand{Type: types.CommandUnknown, Verb: text}
}

func parseDirection(words []string) (types.Direction, bool) {
	switch len(words) {
	case 1:
		dir, ok := directionExpansions[words[0]]
		return dir, ok
	case 2:
		if movementVerbs[words[0]] {
			dir, ok := directionExpansions[words[1]]
			return dir, ok
		}
	}
	return "", false
}

// expandMultiWordVerbs handles "look at", "pick up", "turn away" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "look":
		if words[1] == "at" {
			return append([]string{string(ActionExamine)}, words[2:]...)
		}
		if words[1] == "into" {
			return append([]string{string(ActionTouch)}, words[2:]...)
		}
	case "gaze", "stare", "peer":
		if words[1] == "into" || words[1] == "at" {
			return append([]string{string(ActionSee)}, words[2:]...)
		}
	case "pick":
		if words[1] == "up" {
			return append([]string{string(ActionTake)}, words[2:]...)
		}
	case "turn", "walk":
		if words[1] == "away" {
			return append([]string{string(ActionLeave)}, words[2:]...)
		}
	case "reach":
		if words[1] == "for" || words[1] == "into" {
			return append([]string{string(ActionTouch)}, words[2:]...)
		}
	case "put":
		if words[1] == "on" {
			return append([]string{string(ActionWear)}, words[2:]...)
		}
	case "take":
		if words[1] == "off" {
			return append([]string{string(ActionRemove)}, words[2:]...)
		}
	}

	return words
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}
