package engine

import (
	"github.com/nathoo/aurorexam/engine/effects"
	"github.com/nathoo/aurorexam/engine/world"
	"github.com/nathoo/aurorexam/types"
)

const (
	darkStumbleDamage   = 5
	hippogriffBlockHurt = 25
	dementorEntryDamage = 10
	inferiEntryDamage   = 10
	stealthPoints       = 10
)

// move resolves a movement command. Rejected moves in the dark and past an
// untrusting hippogriff hurt; allowed moves may trigger entry effects.
func (e *Engine) move(s types.GameState, dir types.Direction) types.CommandResult {
	mv := e.World.CanMoveTo(s, dir)
	if !mv.Allowed {
		switch {
		case e.World.InDarkness(s):
			msg := mv.Message + "\n\nYou stumble blindly and crack your head against the stone. (-5 health)"
			if effects.Damage(&s, darkStumbleDamage) {
				return die(s, msg, "You lose your footing in the dark and fall. CANDIDATE FELL.")
			}
			return reply(s, msg, types.ColorDamage)

		case mv.Gate == world.GateHippogriff:
			msg := mv.Message + "\n\nThe hippogriff lashes out with its talons and throws you back. (-25 health)"
			if effects.Damage(&s, hippogriffBlockHurt) {
				return die(s, msg, "The hippogriff's talons find their mark. MAULED.")
			}
			return reply(s, msg, types.ColorDamage)
		}
		return reply(s, mv.Message, types.ColorWarning)
	}

	var prefix string
	color := types.ColorNormal
	c := &s.Challenges

	if s.Location == types.GuardCorridor && dir == types.North && !c.StealthPassed {
		c.StealthPassed = true
		effects.Award(&s, stealthPoints)
		effects.Complete(&s, types.ChallengeStealth)
		if c.WearingCloak {
			prefix = "Hidden beneath the cloak, you slip between the guards. Neither of them so much as blinks. [+10 points]\n\n"
		} else {
			prefix = "Your footsteps make no sound at all. You pass within inches of the guards and they never turn. [+10 points]\n\n"
		}
		color = types.ColorMagic
	}

	if s.Location == types.TrainingHall && s.Combat != nil {
		s.Combat = nil
		prefix = "You walk away from the training dummy. The drill is abandoned.\n\n"
	}

	effects.Relocate(&s, mv.Destination, dir)
	msg := prefix + e.Describe(s)

	switch s.Location {
	case types.DementorChamber:
		if !c.DementorDefeated {
			c.DementorEngaged = true
			msg += "\n\nThe temperature plummets. A Dementor turns its hooded face toward you and every happy thought drains away. (-10 health)"
			if effects.Damage(&s, dementorEntryDamage) {
				return die(s, msg, "The Dementor lowers its hood. The Dementor's Kiss. CANDIDATE LOST.")
			}
			color = types.ColorDamage
		}

	case types.InferiLake:
		if !c.InferiCleared {
			c.InferiEngaged = true
			msg += "\n\nThe black water churns. Pale, dead hands burst from the surface and drag at your legs. (-10 health)"
			if effects.Damage(&s, inferiEntryDamage) {
				return die(s, msg, "The Inferi pull you beneath the black water. DROWNED.")
			}
			color = types.ColorDamage
		}

	case types.GuardCorridor:
		if !c.StealthPassed && !c.WearingCloak && !c.StealthActive {
			c.GuardsAlerted = true
			msg += "\n\n\"Who's there?\" Both guards spin toward you, wands raised."
			color = types.ColorWarning
		}

	case types.TrainingHall:
		if !c.TrainingComplete && s.Combat == nil {
			s.Combat = newDrill()
			msg += "\n\n" + drillIntro
		}
	}

	return reply(s, msg, color)
}
