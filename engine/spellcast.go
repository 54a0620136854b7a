package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nathoo/aurorexam/engine/effects"
	"github.com/nathoo/aurorexam/engine/spells"
	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

const (
	puzzlePoints      = 10
	minMemoryLength   = 10
	maxEpiskeyCasts   = 3
	episkeyBaseHeal   = 15
	attackRetaliation = 40
	guardFightDamage  = 20
	aguamentiDamage   = 10
)

var patronusForms = []string{"stag", "phoenix", "otter", "doe", "wolf", "eagle", "lion"}

// cast resolves a spell. Context decides most outcomes: the same
// incantation does different things in different rooms.
func (e *Engine) cast(s types.GameState, cmd types.ParsedCommand) types.CommandResult {
	sp := spells.Spell(cmd.Verb)
	c := &s.Challenges

	// Fights take every combat spell first.
	if isCombatSpell(sp) {
		if s.Location == types.DeathEaterChamber && !c.DeathEaterDefeated {
			return e.duel(s, sp)
		}
		if s.Location == types.TrainingHall && s.Combat != nil {
			return e.drill(s, sp)
		}
	}

	switch sp {
	case spells.Lumos, spells.LumosMaxima:
		return e.lumos(s)
	case spells.Nox:
		return e.nox(s)
	case spells.Alohomora:
		return e.alohomora(s)
	case spells.WingardiumLeviosa:
		return e.levitate(s)
	case spells.Reducio:
		return e.shrink(s)
	case spells.ExpectoPatronum:
		return e.patronus(s)
	case spells.Incendio, spells.Confringo:
		if s.Location == types.InferiLake && !c.InferiCleared {
			return e.burnInferi(s, sp)
		}
	case spells.Aguamenti:
		return e.aguamenti(s)
	case spells.Confundo:
		return e.confundo(s)
	case spells.Muffliato:
		return e.muffliato(s)
	case spells.Episkey, spells.VulneraSanentur:
		return e.episkey(s)
	case spells.Accio:
		return e.accio(s, cmd.Target)
	case spells.Revelio, spells.HomenumRevelio:
		return e.revelio(s, sp)
	case spells.Sectumsempra:
		return reply(s, "You stop yourself. That is a curse invented to maim, and no Auror would be trusted with a wand again after using it.", types.ColorWarning)
	case spells.Unknown:
		return reply(s, "Nothing happens. That doesn't seem to be a proper incantation.", types.ColorNone)
	}

	if isOffensive(sp) {
		return e.offensive(s, sp)
	}
	if isShield(sp) {
		return reply(s, "A shimmering shield springs up around you, then fades. There's nothing here to defend against.", types.ColorMagic)
	}
	return reply(s, "You cast the spell, but it doesn't seem to have any effect here.", types.ColorMagic)
}

func (e *Engine) lumos(s types.GameState) types.CommandResult {
	c := &s.Challenges
	dark := e.World.InDarkness(s)
	if loc, ok := e.World.Location(s.Location); ok && loc.Dark && !state.Completed(s, types.ChallengeLumos) {
		c.LumosActive = true
		effects.Award(&s, puzzlePoints)
		effects.Complete(&s, types.ChallengeLumos)
		msg := "Light blooms from the tip of your wand, pushing the darkness back. [+10 points]\n\n" + e.Describe(s)
		return reply(s, msg, types.ColorMagic)
	}
	if c.LumosActive {
		return reply(s, "Your wand is already lit.", types.ColorNone)
	}
	c.LumosActive = true
	if dark {
		return reply(s, "Your wand flares with light.\n\n"+e.Describe(s), types.ColorMagic)
	}
	return reply(s, "The tip of your wand glows with a soft, steady light.", types.ColorMagic)
}

func (e *Engine) nox(s types.GameState) types.CommandResult {
	if !s.Challenges.LumosActive {
		return reply(s, "Your wand isn't lit.", types.ColorNone)
	}
	s.Challenges.LumosActive = false
	if e.World.InDarkness(s) {
		return reply(s, "Your wand goes dark. Blackness closes in around you.", types.ColorWarning)
	}
	return reply(s, "The light at your wand tip winks out.", types.ColorMagic)
}

func (e *Engine) alohomora(s types.GameState) types.CommandResult {
	if s.Location != types.EntranceHall {
		return reply(s, "You cast Alohomora, but there's nothing here to unlock.", types.ColorNone)
	}
	if s.Challenges.DoorUnlocked {
		return reply(s, "The door is already unlocked.", types.ColorNone)
	}
	s.Challenges.DoorUnlocked = true
	effects.Award(&s, puzzlePoints)
	effects.Complete(&s, types.ChallengeAlohomora)
	return reply(s, "The runes around the door flare gold, then fade. With a heavy clunk the great door swings open to the north. [+10 points]", types.ColorMagic)
}

func (e *Engine) levitate(s types.GameState) types.CommandResult {
	if s.Location != types.ChasmRoom {
		return reply(s, "You lift a loose pebble into the air and let it fall. Nothing here needs levitating.", types.ColorNone)
	}
	if s.Challenges.LevitationBridgeBuilt {
		return reply(s, "The floating bridge already spans the chasm.", types.ColorNone)
	}
	s.Challenges.LevitationBridgeBuilt = true
	effects.Award(&s, puzzlePoints)
	effects.Complete(&s, types.ChallengeLevitation)
	return reply(s, "Swish and flick. One by one the stone blocks rise and drift into place, forming a bridge across the chasm. [+10 points]", types.ColorMagic)
}

func (e *Engine) shrink(s types.GameState) types.CommandResult {
	if s.Location != types.ShadowPassage {
		return reply(s, "Nothing here needs shrinking.", types.ColorNone)
	}
	if s.Challenges.PassageCleared {
		return reply(s, "The way through is already clear.", types.ColorNone)
	}
	return e.throughPassage(s, 10, "You turn your wand on yourself. The world swells as you shrink to half your size and slip easily through the gap. A moment later you return to normal. [+10 points]")
}

// throughPassage clears the narrow passage and puts the player beyond it.
func (e *Engine) throughPassage(s types.GameState, points int, msg string) types.CommandResult {
	s.Challenges.PassageCleared = true
	effects.Award(&s, points)
	effects.Relocate(&s, types.HiddenRoom, types.East)
	return reply(s, msg+"\n\n"+e.Describe(s), types.ColorMagic)
}

func (e *Engine) patronus(s types.GameState) types.CommandResult {
	c := &s.Challenges
	if s.Location != types.DementorChamber {
		return reply(s, "A wisp of silver mist curls from your wand and fades. There is nothing here to drive away.", types.ColorMagic)
	}
	if c.DementorDefeated {
		return reply(s, "Your Patronus circles the empty chamber. The Dementor is long gone.", types.ColorMagic)
	}
	c.DementorPhase = types.DementorMemoryNeeded
	c.AwaitingMemory = true
	return reply(s, "Only a thin silver mist leaves your wand. The Dementor barely slows.\n\nYou need a memory, the happiest you have. Focus on it. What memory do you choose?", types.ColorMagic)
}

// memory takes the raw input as the happy memory behind a Patronus.
func (e *Engine) memory(s types.GameState, input string) types.CommandResult {
	text := strings.TrimSpace(input)
	if utf8.RuneCountInString(text) < minMemoryLength {
		return reply(s, "The memory flickers and fails. It isn't strong enough. Think of something truly happy, and describe it.", types.ColorWarning)
	}
	c := &s.Challenges
	form := pick(e.RNG, patronusForms)
	c.PatronusForm = form
	c.AwaitingMemory = false
	c.DementorDefeated = true
	c.DementorEngaged = false
	c.DementorPhase = types.DementorComplete
	effects.Award(&s, puzzlePoints)
	effects.Complete(&s, types.ChallengeDementor)
	msg := fmt.Sprintf("You hold the memory close and cry \"EXPECTO PATRONUM!\"\n\nA blazing silver %s bursts from your wand and charges. The Dementor reels away and flees into the dark. Warmth floods back into the chamber. [+10 points]", form)
	return reply(s, msg, types.ColorMagic)
}

func (e *Engine) burnInferi(s types.GameState, sp spells.Spell) types.CommandResult {
	c := &s.Challenges
	c.InferiCleared = true
	c.InferiEngaged = false
	effects.Award(&s, puzzlePoints)
	effects.Complete(&s, types.ChallengeInferi)
	msg := fmt.Sprintf("%s! A roaring wall of fire erupts from your wand. The Inferi shriek and sink back beneath the water, their grip broken. [+10 points]", strings.ToUpper(string(sp)))
	return reply(s, msg, types.ColorMagic)
}

func (e *Engine) aguamenti(s types.GameState) types.CommandResult {
	c := &s.Challenges
	if s.Location == types.InferiLake && c.InferiEngaged && !c.InferiCleared {
		msg := "Water gushes from your wand into the lake. The Inferi surge toward it, stronger than before, and drag you toward the edge. (-10 health)"
		if effects.Damage(&s, aguamentiDamage) {
			return die(s, msg, "The Inferi pull you beneath the black water. DROWNED.")
		}
		return reply(s, msg, types.ColorDamage)
	}
	return reply(s, "A jet of clear water shoots from your wand and splashes across the floor.", types.ColorMagic)
}

// offensive handles attack spells cast outside a duel or drill.
func (e *Engine) offensive(s types.GameState, sp spells.Spell) types.CommandResult {
	c := &s.Challenges
	switch {
	case s.Location == types.InferiLake && !c.InferiCleared:
		return reply(s, "Your spell blasts the nearest Inferius back into the lake, but two more claw their way out. Spells like that only delay them.", types.ColorWarning)

	case s.Location == types.CreatureEnclosure && !c.HippogriffTrusts:
		return e.hippogriffRetaliates(s, "Your spell stings the hippogriff's flank. It screeches in fury and rakes you with its talons.")

	case s.Location == types.GuardCorridor && !c.StealthPassed:
		msg := fmt.Sprintf("%s! You open fire on the guards. A furious exchange of spells fills the corridor before both of them go down, but not before one catches you hard. (-20 health)", strings.ToUpper(string(sp)))
		if effects.Damage(&s, guardFightDamage) {
			return die(s, msg, "You collapse beside the fallen guards. COMBAT CASUALTY.")
		}
		c.StealthPassed = true
		c.GuardsAlerted = false
		effects.Award(&s, 5)
		effects.Complete(&s, types.ChallengeStealth)
		return reply(s, msg+"\n\nThe way north is clear, though an Auror should prefer a quieter solution. [+5 points]", types.ColorDamage)
	}
	return reply(s, "The spell flashes across the room and finds no target.", types.ColorMagic)
}

func (e *Engine) hippogriffRetaliates(s types.GameState, msg string) types.CommandResult {
	msg += " (-40 health) [-5 points]"
	s.Score = max(0, s.Score-5)
	if effects.Damage(&s, attackRetaliation) {
		return die(s, msg, "The hippogriff's talons find their mark. MAULED.")
	}
	return reply(s, msg, types.ColorDamage)
}

func (e *Engine) confundo(s types.GameState) types.CommandResult {
	c := &s.Challenges
	if s.Location != types.GuardCorridor || c.StealthPassed {
		return reply(s, "There's no one here to confuse.", types.ColorNone)
	}
	msg := "The guards' eyes glaze over. They mutter about a disturbance on the floor below and wander off down a side passage. [+10 points]"
	if c.GuardsAlerted {
		msg = "Mid-curse, the guards falter. \"Did you hear that? Downstairs!\" They lower their wands and hurry away. [+10 points]"
	}
	c.StealthPassed = true
	c.GuardsAlerted = false
	effects.Award(&s, puzzlePoints)
	effects.Complete(&s, types.ChallengeStealth)
	return reply(s, msg, types.ColorMagic)
}

func (e *Engine) muffliato(s types.GameState) types.CommandResult {
	c := &s.Challenges
	if s.Location != types.GuardCorridor || c.StealthPassed {
		return reply(s, "A soft buzzing fills the air, but there's no one here to overhear you.", types.ColorMagic)
	}
	c.StealthActive = true
	c.GuardsAlerted = false
	return reply(s, "A low buzzing fills the guards' ears. They shake their heads and stop listening. Your footsteps are silent now.", types.ColorMagic)
}

func (e *Engine) episkey(s types.GameState) types.CommandResult {
	if s.EpiskeyCasts >= maxEpiskeyCasts {
		return reply(s, "You've exhausted your healing magic for this examination.", types.ColorWarning)
	}
	if s.Health >= s.MaxHealth {
		return reply(s, "You're not injured.", types.ColorNone)
	}
	s.EpiskeyCasts++
	healed := effects.Heal(&s, episkeyBaseHeal+e.RNG.Intn(6))
	msg := fmt.Sprintf("A warm tingle spreads through your body as your wounds knit together. (+%d health)", healed)
	return reply(s, msg, types.ColorHealing)
}

func (e *Engine) accio(s types.GameState, target string) types.CommandResult {
	target = strings.TrimSpace(target)
	if target == "" {
		return reply(s, "Accio what? Name the thing you want to summon.", types.ColorNone)
	}
	if target == "wand" {
		return reply(s, "Your wand twitches in your hand. It's already here.", types.ColorNone)
	}

	item, ok := itemByName(target)
	if !ok || (item != types.ItemDittany && item != types.ItemInvisibilityCloak) {
		return reply(s, "Nothing happens. Whatever you're trying to summon isn't within reach.", types.ColorNone)
	}
	if state.HasItem(s, item) {
		return reply(s, fmt.Sprintf("You already have the %s.", item.DisplayName()), types.ColorNone)
	}

	from := s.Location
	if item == types.ItemDittany && s.Location == types.BeyondGuards {
		from = types.ArmoryCorridor
	}
	if !e.roomHas(s, from, item) {
		return reply(s, "Nothing happens. Whatever you're trying to summon isn't within reach.", types.ColorNone)
	}
	effects.Pickup(&s, from, item)
	return reply(s, fmt.Sprintf("The %s zooms into your hand.", item.DisplayName()), types.ColorMagic)
}

var revelations = map[types.LocationID]string{
	types.EntranceHall:      "The runes around the door glow brighter, tracing the outline of a simple lock.",
	types.ShadowPassage:     "A faint glow outlines a chamber beyond the narrow gap to the east.",
	types.HiddenRoom:        "Something on the shelves shimmers at the edge of sight, there and not there.",
	types.ChasmRoom:         "Ghostly outlines of stone blocks hover over the chasm, showing where a bridge could be.",
	types.GuardCorridor:     "Two figures glow warmly in your mind's eye. Both of them are very much awake.",
	types.FinalChamber:      "The mirror's frame blazes with enchantment. Whatever it shows, it is not the truth.",
	types.DeathEaterChamber: "Dark magic clings to the walls like soot.",
}

func (e *Engine) revelio(s types.GameState, sp spells.Spell) types.CommandResult {
	if text, ok := revelations[s.Location]; ok {
		return reply(s, text, types.ColorMagic)
	}
	if sp == spells.HomenumRevelio {
		return reply(s, "You sense no other human presence nearby.", types.ColorMagic)
	}
	return reply(s, "Nothing hidden reveals itself here.", types.ColorMagic)
}
