package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/aurorexam/engine/hint"
	"github.com/nathoo/aurorexam/engine/parser"
	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

// system resolves meta-commands. RESTART is handled by the pipeline.
func (e *Engine) system(s types.GameState, verb parser.System) types.CommandResult {
	switch verb {
	case parser.SystemHelp:
		return reply(s, helpText, types.ColorNone)
	case parser.SystemHint:
		return hint.Hint(s)
	case parser.SystemInventory:
		return reply(s, inventory(s), types.ColorNone)
	case parser.SystemLook:
		return reply(s, e.Describe(s), types.ColorNone)
	case parser.SystemScore:
		return reply(s, progress(s), types.ColorGold)
	case parser.SystemJourney:
		return reply(s, e.journey(s), types.ColorNone)
	case parser.SystemQuit:
		s.Phase = types.PhaseDeath
		return reply(s, "Thank you for taking the Auror Examination.", types.ColorNone)
	}
	return reply(s, "I don't understand that command. Type HELP for assistance.", types.ColorNone)
}

func inventory(s types.GameState) string {
	if len(s.Inventory) == 0 {
		return "You are carrying nothing but your wand."
	}
	var b strings.Builder
	b.WriteString("You are carrying:")
	for _, item := range s.Inventory {
		b.WriteString("\n- " + item.DisplayName())
		if item == types.ItemInvisibilityCloak && s.Challenges.WearingCloak {
			b.WriteString(" (wearing)")
		}
	}
	return b.String()
}

func progress(s types.GameState) string {
	var b strings.Builder
	b.WriteString("EXAMINATION PROGRESS\n\n")
	fmt.Fprintf(&b, "Challenges completed: %d/%d\n", state.CompletedCount(s), len(types.Challenges))
	fmt.Fprintf(&b, "Score: %d\n", s.Score)
	fmt.Fprintf(&b, "Hints used: %d\n", s.HintsUsed)
	fmt.Fprintf(&b, "Health: %d/%d", s.Health, s.MaxHealth)
	return b.String()
}

func (e *Engine) journey(s types.GameState) string {
	var b strings.Builder
	b.WriteString("YOUR JOURNEY")
	for i, step := range s.JourneyLog {
		fmt.Fprintf(&b, "\n%d. %s", i+1, e.World.Name(step.Location))
		if step.Direction != "" {
			fmt.Fprintf(&b, " (went %s)", step.Direction)
		}
		if i == len(s.JourneyLog)-1 {
			b.WriteString(" → YOU ARE HERE")
		}
	}
	return b.String()
}
