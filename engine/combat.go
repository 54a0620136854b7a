package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/aurorexam/engine/effects"
	"github.com/nathoo/aurorexam/engine/spells"
	"github.com/nathoo/aurorexam/types"
)

// duelPower is the damage a spell deals to the Death Eater.
var duelPower = map[spells.Spell]int{
	spells.Stupefy:           25,
	spells.Expelliarmus:      25,
	spells.Reducto:           30,
	spells.Confringo:         30,
	spells.Incendio:          30,
	spells.PetrificusTotalus: 20,
	spells.Impedimenta:       15,
	spells.Flipendo:          15,
}

const defaultDuelPower = 20

func spellPower(sp spells.Spell) int {
	if p, ok := duelPower[sp]; ok {
		return p
	}
	return defaultDuelPower
}

func isShield(sp spells.Spell) bool {
	return sp == spells.Protego || sp == spells.ProtegoMaxima
}

func isOffensive(sp spells.Spell) bool {
	cat, _ := spells.CategoryOf(sp)
	return cat == spells.CategoryOffense && sp != spells.Sectumsempra
}

// isCombatSpell reports whether casting sp counts as taking part in a fight.
func isCombatSpell(sp spells.Spell) bool {
	return isOffensive(sp) || isShield(sp)
}

var duelCounters = [3][3]string{
	// Death Eater above 70 health.
	{
		"The Death Eater sneers and sends a volley of curses back at you.",
		"\"Is that the best the Ministry can do?\" A hex whistles past your ear.",
		"The Death Eater sidesteps gracefully and answers with a vicious jinx.",
	},
	// Above 30.
	{
		"The Death Eater snarls, bleeding now, and fires back wildly.",
		"Your opponent staggers but raises their wand again, furious.",
		"\"You'll pay for that!\" The Death Eater's curses come faster.",
	},
	// Nearly beaten.
	{
		"The Death Eater sways on their feet, barely able to hold their wand.",
		"Your opponent gasps for breath. One more good spell should do it.",
		"The Death Eater backs away, desperate curses flying wide.",
	},
}

var shieldLines = []string{
	"Your shield blazes into being. The Death Eater's curse shatters against it.",
	"You hold the shield steady. A hex ricochets off it and scorches the wall.",
	"The Death Eater circles, probing your shield for a weakness.",
	"Your shield shudders under a heavy blow, but holds.",
}

// duel resolves one exchange against the Death Eater. Incoming damage is
// the counter to the previous round: none on the first exchange, 5 when
// the player shielded, 15 otherwise.
func (e *Engine) duel(s types.GameState, sp spells.Spell) types.CommandResult {
	c := &s.Challenges

	if isShield(sp) {
		c.DuelDefending = true
		c.DuelRound++
		return reply(s, shieldLines[c.DuelRound%len(shieldLines)], types.ColorMagic)
	}

	incoming := 15
	switch {
	case c.DuelRound == 0:
		incoming = 0
	case c.DuelDefending:
		incoming = 5
	}

	dmg := spellPower(sp)
	c.DeathEaterHealth = max(0, c.DeathEaterHealth-dmg)

	var b strings.Builder
	fmt.Fprintf(&b, "You cast %s! The spell strikes the Death Eater. (%d damage)", strings.ToUpper(string(sp)), dmg)

	if incoming > 0 {
		fmt.Fprintf(&b, "\n\nThe Death Eater's counter-curse catches you. (-%d health)", incoming)
		if effects.Damage(&s, incoming) {
			return die(s, b.String(), "The Death Eater stands over you as the world goes dark. DEFEATED IN COMBAT.")
		}
	}

	if c.DeathEaterHealth <= 0 {
		c.DeathEaterDefeated = true
		c.DuelDefending = false
		effects.Award(&s, 10)
		effects.Complete(&s, types.ChallengeDuel)
		b.WriteString("\n\nThe Death Eater crumples to the floor, defeated. [+10 points]")
		if sp == spells.Expelliarmus {
			effects.Award(&s, 5)
			b.WriteString("\nYou disarmed rather than harmed. The examiners note your mercy. [+5 points]")
		}
		return reply(s, b.String(), types.ColorGold)
	}

	c.DuelRound++
	c.DuelDefending = false
	band := 2
	switch {
	case c.DeathEaterHealth > 70:
		band = 0
	case c.DeathEaterHealth > 30:
		band = 1
	}
	b.WriteString("\n\n" + duelCounters[band][c.DuelRound%3])
	return reply(s, b.String(), types.ColorMagic)
}

// Training drill. The dummy fights back with the dice formula and a
// weighted behavior table, and is never allowed to finish the player off.

const (
	dummyHealth  = 30
	dummyDefense = 1
	dummyAttack  = 2
	drillPoints  = 5
)

const drillIntro = `An enchanted training dummy creaks to life and raises a stick like a wand.
"DRILL BEGINS," booms a disembodied voice. "Strike the dummy and shield against its hexes."`

// dummyBehavior lists what the dummy can do after each player spell.
var dummyBehavior = []struct {
	action string
	weight int
}{
	{"hex", 60},
	{"brace", 25},
	{"idle", 15},
}

func newDrill() *types.CombatState {
	return &types.CombatState{
		Opponent:          "training dummy",
		OpponentHealth:    dummyHealth,
		OpponentMaxHealth: dummyHealth,
	}
}

// DamageCalc computes damage: max(1, roll(1d6) + attack - defense).
// If defending, defense gets +2 bonus. Returns (damage, dieRoll).
func DamageCalc(attackerAttack, defenderDefense int, defending bool, r Rand) (damage, dieRoll int) {
	dieRoll = roll(r, 6)
	def := defenderDefense
	if defending {
		def += 2
	}
	damage = dieRoll + attackerAttack - def
	if damage < 1 {
		damage = 1
	}
	return damage, dieRoll
}

// DummyTurn selects the dummy's next action.
func DummyTurn(r Rand) string {
	weights := make([]int, len(dummyBehavior))
	for i, b := range dummyBehavior {
		weights[i] = b.weight
	}
	return dummyBehavior[weightedSelect(r, weights)].action
}

// drill resolves a spell cast during the training bout.
func (e *Engine) drill(s types.GameState, sp spells.Spell) types.CommandResult {
	cb := s.Combat
	var out []string
	shielded := isShield(sp)

	if shielded {
		out = append(out, "You raise a shield and wait for the dummy to strike.")
	} else {
		attack := spellPower(sp) / 5
		dmg, dieRoll := DamageCalc(attack, dummyDefense, cb.OpponentBracing, e.RNG)
		def := dummyDefense
		if cb.OpponentBracing {
			def += 2
		}
		cb.OpponentHealth = max(0, cb.OpponentHealth-dmg)
		out = append(out,
			fmt.Sprintf("Your %s strikes the %s!", strings.ToUpper(string(sp)), cb.Opponent),
			fmt.Sprintf("  Roll: 1d6+%d → [%d]+%d = %d vs defense %d → %d damage",
				attack, dieRoll, attack, dieRoll+attack, def, dmg))
	}
	cb.OpponentBracing = false

	if cb.OpponentHealth <= 0 {
		if cb.Blocks > 0 {
			s.Combat = nil
			s.Challenges.TrainingComplete = true
			effects.Award(&s, drillPoints)
			out = append(out, "", "The dummy collapses into a heap of straw. \"DRILL COMPLETE,\" the voice booms. [+5 points]")
			return reply(s, strings.Join(out, "\n"), types.ColorGold)
		}
		cb.OpponentHealth = cb.OpponentMaxHealth
		cb.Round = 0
		out = append(out, "", "The dummy falls apart, then stitches itself back together. \"ATTACK ALONE IS NOT ENOUGH. BLOCK A HEX.\"")
		return reply(s, strings.Join(out, "\n"), types.ColorWarning)
	}

	color := types.ColorMagic
	switch DummyTurn(e.RNG) {
	case "hex":
		if shielded {
			cb.Blocks++
			out = append(out, fmt.Sprintf("The %s fires a hex. It splashes harmlessly off your shield.", cb.Opponent))
			break
		}
		dmg, _ := DamageCalc(dummyAttack, 0, false, e.RNG)
		// Drill hexes sting but never finish a candidate off.
		dmg = min(dmg, max(0, s.Health-1))
		effects.Damage(&s, dmg)
		out = append(out, fmt.Sprintf("The %s fires a stinging hex at you. (-%d health)", cb.Opponent, dmg))
		color = types.ColorDamage
	case "brace":
		cb.OpponentBracing = true
		out = append(out, fmt.Sprintf("The %s hunches behind its straw arms, bracing.", cb.Opponent))
	default:
		out = append(out, fmt.Sprintf("The %s wobbles in place.", cb.Opponent))
	}
	cb.Round++
	out = append(out, fmt.Sprintf("  Dummy: %d/%d", cb.OpponentHealth, cb.OpponentMaxHealth))
	return reply(s, strings.Join(out, "\n"), color)
}
