package engine

import (
	"github.com/nathoo/aurorexam/engine/effects"
	"github.com/nathoo/aurorexam/engine/spells"
	"github.com/nathoo/aurorexam/types"
)

const (
	dementorStandingDamage = 10
	inferiStandingDamage   = 15
	guardStandingDamage    = 15
	duelStandingDamage     = 15
)

var guardAttacks = []string{
	"A guard's Stunning Spell clips your shoulder. (-15 health)",
	"\"Intruder!\" A jet of red light slams into your chest. (-15 health)",
	"The second guard's hex catches you across the ribs. (-15 health)",
	"Both guards fire at once. You dodge one curse but not the other. (-15 health)",
}

var duelPunishments = []string{
	"The Death Eater takes advantage of your hesitation. A curse scorches your arm. (-15 health)",
	"\"Too slow!\" The Death Eater's hex sends you staggering. (-15 health)",
	"While you're distracted, a jet of green-tinged light grazes your side. (-15 health)",
	"The Death Eater laughs and lashes out with a Cutting Curse. (-15 health)",
}

// hazards applies the standing damage of every unresolved threat around the
// player, in order: dementor, inferi, alerted guards, an unanswered duel.
// It is skipped on the turn the player arrived. The command's message is
// kept; damage is appended and death replaces only the color and phase.
func (e *Engine) hazards(before types.GameState, r types.CommandResult, cmd types.ParsedCommand) types.CommandResult {
	s := r.State
	if s.Phase != types.PhasePlaying || before.Location != s.Location {
		return r
	}
	c := &s.Challenges
	msg := r.Message
	hurt := false

	hit := func(amount int, note string) bool {
		hurt = true
		msg += "\n\n" + note
		return effects.Damage(&s, amount)
	}

	if s.Location == types.DementorChamber && c.DementorEngaged && !c.DementorDefeated {
		if hit(dementorStandingDamage, "The Dementor draws closer. You feel your happiness being pulled out of you. (-10 health)") {
			return die(s, msg, "Cold fills you completely. The Dementor's Kiss. CANDIDATE LOST.")
		}
	}

	if s.Location == types.InferiLake && c.InferiEngaged && !c.InferiCleared {
		if hit(inferiStandingDamage, "Cold hands claw at you from the water, dragging you deeper. (-15 health)") {
			return die(s, msg, "The Inferi pull you beneath the black water. DROWNED.")
		}
	}

	if s.Location == types.GuardCorridor && c.GuardsAlerted && !c.WearingCloak && !c.StealthActive && !c.StealthPassed {
		if hit(guardStandingDamage, pick(e.RNG, guardAttacks)) {
			return die(s, msg, "You collapse. The guards bind you and drag you out of the examination. SUBDUED BY GUARDS.")
		}
	}

	if s.Location == types.DeathEaterChamber && !c.DeathEaterDefeated && !isCombatCommand(cmd) {
		c.DuelRound++
		if hit(duelStandingDamage, duelPunishments[c.DuelRound%len(duelPunishments)]) {
			return die(s, msg, "The Death Eater stands over you as the world goes dark. DEFEATED IN COMBAT.")
		}
	}

	if !hurt {
		return r
	}
	color := types.ColorDamage
	if r.Color == types.ColorMagic {
		color = types.ColorMagic
	}
	return reply(s, msg, color)
}

func isCombatCommand(cmd types.ParsedCommand) bool {
	return cmd.Type == types.CommandSpell && isCombatSpell(spells.Spell(cmd.Verb))
}
