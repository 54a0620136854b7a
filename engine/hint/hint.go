// Package hint gives progressive nudges for the challenge at the player's
// location. Only the first request at a location costs points.
package hint

import (
	"github.com/nathoo/aurorexam/engine/effects"
	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

// Penalty is the score deducted for the first hint at a location.
const Penalty = 2

const defaultHint = "Pay attention to descriptions and examine your surroundings. The answer is usually in front of you."

type entry struct {
	solved func(types.ChallengeState) bool
	tiers  [2]string
}

var hints = map[types.LocationID]entry{
	types.EntranceHall: {
		solved: func(c types.ChallengeState) bool { return c.DoorUnlocked },
		tiers: [2]string{
			"The door is sealed by magic, not by iron. Some charms are made for opening locks.",
			"First-years learn an unlocking charm. It begins with 'Aloho...'",
		},
	},
	types.DarkCorridor: {
		solved: func(c types.ChallengeState) bool { return c.LumosActive },
		tiers: [2]string{
			"You can't see a thing. A wand can be made to give light.",
			"The wand-lighting charm is the simplest spell there is.",
		},
	},
	types.DeepTunnel: {
		solved: func(c types.ChallengeState) bool { return c.LumosActive },
		tiers: [2]string{
			"Stumbling around blind is dangerous. Light first, then explore.",
			"The wand-lighting charm is the simplest spell there is.",
		},
	},
	types.ShadowPassage: {
		solved: func(c types.ChallengeState) bool { return c.PassageCleared },
		tiers: [2]string{
			"The gap is too tight for you as you are. Think about changing yourself, or how you move.",
			"Get down on hands and knees and CRAWL, or shrink yourself with a charm.",
		},
	},
	types.ChasmRoom: {
		solved: func(c types.ChallengeState) bool { return c.LevitationBridgeBuilt },
		tiers: [2]string{
			"The blocks are too heavy to carry. A charm that lifts objects would help.",
			"Remember Charms class and the feather lesson. Swish and flick.",
		},
	},
	types.DementorChamber: {
		solved: func(c types.ChallengeState) bool { return c.DementorDefeated },
		tiers: [2]string{
			"This creature feeds on happiness. A guardian made of light can drive it away.",
			"The Patronus Charm needs a powerful happy memory behind it.",
		},
	},
	types.InferiLake: {
		solved: func(c types.ChallengeState) bool { return c.InferiCleared },
		tiers: [2]string{
			"The dead fear something ancient and primal. Think of warmth and light.",
			"Inferi are destroyed by fire. Which fire spells do you know?",
		},
	},
	types.CreatureEnclosure: {
		solved: func(c types.ChallengeState) bool { return c.HippogriffTrusts },
		tiers: [2]string{
			"This creature values pride and respect above all. Mind your manners.",
			"Hold its gaze and BOW. If it stares back, keep your head low and BOW again.",
		},
	},
	types.GuardCorridor: {
		solved: func(c types.ChallengeState) bool { return c.StealthPassed },
		tiers: [2]string{
			"Two against one is poor odds. Stealth may be wiser than combat.",
			"Muffle your footsteps, confuse their minds, or hide yourself completely.",
		},
	},
	types.TrainingHall: {
		solved: func(c types.ChallengeState) bool { return c.TrainingComplete },
		tiers: [2]string{
			"The dummy tests attack and defence alike. Winning on offence alone won't do.",
			"Raise a shield charm against at least one of its hexes, then bring it down.",
		},
	},
	types.DeathEaterChamber: {
		solved: func(c types.ChallengeState) bool { return c.DeathEaterDefeated },
		tiers: [2]string{
			"A proper duel needs attack and defence. Trade spells wisely.",
			"Stun or disarm your opponent. A shield charm softens their counter-attacks.",
		},
	},
	types.FinalChamber: {
		solved: func(c types.ChallengeState) bool { return c.FinalChallengeComplete },
		tiers: [2]string{
			"Remember what Dumbledore said about this mirror. What would a wise wizard do?",
			"Those who seek power are tempted. Those who seek wisdom turn away.",
		},
	},
}

// Hint returns the nudge for the current location. The first request at a
// location increments HintsUsed and deducts Penalty; repeats are free and
// show the more specific text. Solved challenges fall back to a generic hint.
func Hint(s types.GameState) types.CommandResult {
	next := state.Clone(s)
	requests := next.HintRequestCounts[next.Location]
	next.HintRequestCounts[next.Location] = requests + 1

	text := defaultHint
	if e, ok := hints[next.Location]; ok && !e.solved(next.Challenges) {
		text = e.tiers[0]
		if requests > 0 {
			text = e.tiers[1]
		}
	}

	if requests > 0 {
		return types.CommandResult{
			Message: text + "\n\n[No additional penalty for repeated hint]",
			State:   next,
			Color:   types.ColorMagic,
		}
	}

	next.HintsUsed++
	effects.Award(&next, -Penalty)
	return types.CommandResult{
		Message: text + "\n\n[-2 points for hint]",
		State:   next,
		Color:   types.ColorMagic,
	}
}
