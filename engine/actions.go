package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nathoo/aurorexam/engine/effects"
	"github.com/nathoo/aurorexam/engine/parser"
	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

const (
	bowPoints        = 15
	ridePoints       = 5
	crawlPoints      = 5
	mirrorLeavePts   = 20
	mirrorGazePoints = 10
)

// itemWords maps the nouns players type to items.
var itemWords = map[string]types.ItemID{
	"dittany":             types.ItemDittany,
	"essence":             types.ItemDittany,
	"essence of dittany":  types.ItemDittany,
	"vial":                types.ItemDittany,
	"potion":              types.ItemWiggenweld,
	"wiggenweld":          types.ItemWiggenweld,
	"wiggenweld potion":   types.ItemWiggenweld,
	"herbs":               types.ItemHealingHerbs,
	"healing herbs":       types.ItemHealingHerbs,
	"dried healing herbs": types.ItemHealingHerbs,
	"cloak":               types.ItemInvisibilityCloak,
	"invisibility cloak":  types.ItemInvisibilityCloak,
}

var healAmounts = map[types.ItemID]int{
	types.ItemDittany:      35,
	types.ItemWiggenweld:   50,
	types.ItemHealingHerbs: 20,
}

func itemByName(name string) (types.ItemID, bool) {
	item, ok := itemWords[name]
	return item, ok
}

// roomHas reports whether an item still lies in a room.
func (e *Engine) roomHas(s types.GameState, loc types.LocationID, item types.ItemID) bool {
	l, ok := e.World.Location(loc)
	return ok && slices.Contains(l.Items, item) && state.Available(s, loc, item) && !state.HasItem(s, item)
}

// act resolves an action verb.
func (e *Engine) act(s types.GameState, cmd types.ParsedCommand) types.CommandResult {
	target := cmd.Target
	switch parser.Action(cmd.Verb) {
	case parser.ActionExamine:
		return e.examine(s, target)
	case parser.ActionTake:
		return e.take(s, target)
	case parser.ActionUse:
		return e.use(s, target)
	case parser.ActionDrop:
		return e.drop(s, target)
	case parser.ActionRead:
		return e.read(s)
	case parser.ActionOpen:
		return e.open(s)
	case parser.ActionClose:
		return reply(s, "There's nothing here to close.", types.ColorNone)
	case parser.ActionAttack:
		return e.attack(s)
	case parser.ActionBow:
		return e.bow(s)
	case parser.ActionRide:
		return e.ride(s)
	case parser.ActionLeave:
		return e.leave(s)
	case parser.ActionCrawl:
		return e.crawl(s)
	case parser.ActionClaim:
		return reply(s, "There's nothing to claim here.", types.ColorNone)
	case parser.ActionWear:
		return e.wear(s, target)
	case parser.ActionRemove:
		return e.remove(s, target)
	case parser.ActionTouch:
		return e.touch(s)
	case parser.ActionSee:
		return e.see(s)
	}
	return reply(s, "I don't understand that command. Type HELP for assistance.", types.ColorNone)
}

var itemDescriptions = map[types.ItemID]string{
	types.ItemDittany:           "A small glass vial of brown liquid. Essence of Dittany heals wounds in moments.",
	types.ItemWiggenweld:        "A flask of green potion that smells of grass and peppermint. A powerful restorative.",
	types.ItemHealingHerbs:      "A bundle of dried herbs tied with string. Chewing them eases pain a little.",
	types.ItemInvisibilityCloak: "Silvery, fluid fabric that makes whatever it covers vanish from sight.",
}

type scenery struct {
	loc   types.LocationID
	nouns []string
	text  string
}

var sceneryText = []scenery{
	{types.EntranceHall, []string{"door", "runes", "frame"}, "The great door is bound by a locking enchantment. The runes along the frame pulse with a steady, patient light."},
	{types.ChasmRoom, []string{"chasm", "blocks", "stones", "stone"}, "The chasm is far too wide to jump. Heavy stone blocks lie scattered near the edge, each one too heavy to carry."},
	{types.ShadowPassage, []string{"gap", "passage", "rocks"}, "The gap between the rocks is barely a hand's width wider than your shoulders. Something lies beyond it to the east."},
	{types.DementorChamber, []string{"dementor", "creature"}, "A tall, hooded figure of rot and shadow. Looking at it makes you feel you will never be happy again."},
	{types.InferiLake, []string{"inferi", "lake", "water", "bodies"}, "Pale shapes drift just beneath the black surface. Dead things, animated by dark magic, and they fear only fire."},
	{types.CreatureEnclosure, []string{"hippogriff", "creature", "beast"}, "Half horse, half eagle, with storm-grey feathers and orange eyes. It watches you with proud suspicion."},
	{types.GuardCorridor, []string{"guards", "guard"}, "Two examiners in the guise of guards, wands drawn, watching the corridor for any sign of movement."},
	{types.TrainingHall, []string{"dummy", "training dummy"}, "A straw-stuffed dummy on a wooden frame, its stick raised like a wand."},
	{types.DeathEaterChamber, []string{"death eater", "eater", "opponent", "mask"}, "A masked figure in black robes, wand raised, waiting for you to make the first move."},
	{types.FinalChamber, []string{"mirror", "mirror of erised", "erised"}, "An ornate mirror on clawed feet. The inscription reads: 'Erised stra ehru oyt ube cafru oyt on wohsi.' It shows not your face but your heart's desire."},
}

func (e *Engine) examine(s types.GameState, target string) types.CommandResult {
	if target == "" || target == "room" || target == "around" {
		return reply(s, e.Describe(s), types.ColorNone)
	}
	if e.World.InDarkness(s) {
		return reply(s, "It's too dark to make anything out.", types.ColorNone)
	}
	if item, ok := itemByName(target); ok && (state.HasItem(s, item) || e.roomHas(s, s.Location, item)) {
		return reply(s, itemDescriptions[item], types.ColorNone)
	}
	for _, sc := range sceneryText {
		if sc.loc == s.Location && slices.Contains(sc.nouns, target) {
			return reply(s, sc.text, types.ColorNone)
		}
	}
	if target == "wand" {
		return reply(s, "Your wand: eleven inches, supple, and ready.", types.ColorNone)
	}
	return reply(s, fmt.Sprintf("You see nothing special about the %s.", target), types.ColorNone)
}

func (e *Engine) take(s types.GameState, target string) types.CommandResult {
	if target == "" {
		return reply(s, "Take what?", types.ColorNone)
	}
	if s.Location == types.FinalChamber && strings.Contains(target, "mirror") {
		return e.touch(s)
	}
	item, ok := itemByName(target)
	if ok && state.HasItem(s, item) {
		return reply(s, fmt.Sprintf("You already have the %s.", item.DisplayName()), types.ColorNone)
	}
	if !ok || !e.roomHas(s, s.Location, item) || e.World.InDarkness(s) {
		return reply(s, fmt.Sprintf("There's no %s here.", target), types.ColorNone)
	}
	effects.Pickup(&s, s.Location, item)
	return reply(s, fmt.Sprintf("Taken: %s.", item.DisplayName()), types.ColorNormal)
}

func (e *Engine) use(s types.GameState, target string) types.CommandResult {
	if target == "" {
		return reply(s, "Use what?", types.ColorNone)
	}
	item, ok := itemByName(target)
	if !ok || !state.HasItem(s, item) {
		return reply(s, "You don't have that.", types.ColorNone)
	}
	if item == types.ItemInvisibilityCloak {
		return e.wear(s, target)
	}
	if s.Health >= s.MaxHealth {
		return reply(s, fmt.Sprintf("You're already at full health. Better save the %s.", item.DisplayName()), types.ColorNone)
	}
	effects.Consume(&s, item)
	healed := effects.Heal(&s, healAmounts[item])
	return reply(s, fmt.Sprintf("You use the %s. Warmth spreads through you. (+%d health)", item.DisplayName(), healed), types.ColorHealing)
}

func (e *Engine) drop(s types.GameState, target string) types.CommandResult {
	item, ok := itemByName(target)
	if !ok || !state.HasItem(s, item) {
		return reply(s, "You don't have that.", types.ColorNone)
	}
	return reply(s, fmt.Sprintf("You'd better hold on to the %s. You may need it.", item.DisplayName()), types.ColorNone)
}

// runeNudges are free, flavor-only pointers carved into the walls.
var runeNudges = map[types.LocationID]func(types.ChallengeState) string{
	types.EntranceHall: func(c types.ChallengeState) string {
		if c.DoorUnlocked {
			return "The runes have gone quiet. The way north is open."
		}
		return "The runes read: 'What is closed to the hand opens to the wand.'"
	},
	types.ChasmRoom: func(c types.ChallengeState) string {
		if c.LevitationBridgeBuilt {
			return "The runes read: 'Well lifted.'"
		}
		return "The runes read: 'Make light of heavy things.'"
	},
	types.ChasmOtherSide: func(c types.ChallengeState) string {
		return "The runes read: 'Face the cold, the drowned and the proud, and the way north will open.'"
	},
	types.GuardCorridor: func(c types.ChallengeState) string {
		return "Scratched into the wall: 'Those who are not seen are not stopped.'"
	},
	types.FinalChamber: func(c types.ChallengeState) string {
		return "Carved above the mirror: 'It does not do to dwell on dreams and forget to live.'"
	},
}

func (e *Engine) read(s types.GameState) types.CommandResult {
	if e.World.InDarkness(s) {
		return reply(s, "It's far too dark to read anything.", types.ColorNone)
	}
	if nudge, ok := runeNudges[s.Location]; ok {
		return reply(s, nudge(s.Challenges), types.ColorMagic)
	}
	return reply(s, "There's nothing here to read.", types.ColorNone)
}

func (e *Engine) open(s types.GameState) types.CommandResult {
	if s.Location != types.EntranceHall {
		return reply(s, "There's nothing here to open.", types.ColorNone)
	}
	if s.Challenges.DoorUnlocked {
		return reply(s, "The door already stands open.", types.ColorNone)
	}
	return reply(s, "You heave against the door. It won't budge. Whatever holds it shut is magical.", types.ColorNone)
}

func (e *Engine) attack(s types.GameState) types.CommandResult {
	c := s.Challenges
	switch {
	case s.Location == types.CreatureEnclosure && !c.HippogriffTrusts:
		return e.hippogriffRetaliates(s, "You lunge at the hippogriff. It rears up with a shriek and rakes you with its talons.")
	case s.Location == types.DeathEaterChamber && !c.DeathEaterDefeated:
		return reply(s, "Fists against a wand? Use your spells!", types.ColorWarning)
	case s.Location == types.TrainingHall && s.Combat != nil:
		return reply(s, "Punching straw won't impress the examiners. Use your spells!", types.ColorWarning)
	}
	return reply(s, "There's nothing here to attack.", types.ColorNone)
}

func (e *Engine) bow(s types.GameState) types.CommandResult {
	c := &s.Challenges
	if s.Location != types.CreatureEnclosure {
		return reply(s, "You bow politely to no one in particular.", types.ColorNone)
	}
	if c.HippogriffTrusts {
		return reply(s, "The hippogriff dips its head in return. It already trusts you.", types.ColorNone)
	}
	if !c.HippogriffBowed {
		c.HippogriffBowed = true
		return reply(s, "You bow low, never breaking eye contact. The hippogriff stares at you for a long moment, unblinking.", types.ColorNormal)
	}
	c.HippogriffTrusts = true
	effects.Award(&s, bowPoints)
	effects.Complete(&s, types.ChallengeHippogriff)
	return reply(s, "You hold your bow. Slowly, the hippogriff bends its scaly knees and bows back. It will let you pass. [+15 points]", types.ColorMagic)
}

func (e *Engine) ride(s types.GameState) types.CommandResult {
	c := &s.Challenges
	if s.Location != types.CreatureEnclosure {
		return reply(s, "There's nothing here to ride.", types.ColorNone)
	}
	if !c.HippogriffTrusts {
		return reply(s, "The hippogriff would never let a stranger climb onto its back. Earn its trust first.", types.ColorWarning)
	}
	msg := "You climb onto the hippogriff's back. With a few great beats of its wings it carries you over the enclosure wall and sets you down."
	if !c.HippogriffRidden {
		c.HippogriffRidden = true
		effects.Award(&s, ridePoints)
		msg += " [+5 points]"
	}
	effects.Relocate(&s, types.BeyondCreature, types.North)
	return reply(s, msg+"\n\n"+e.Describe(s), types.ColorMagic)
}

func (e *Engine) crawl(s types.GameState) types.CommandResult {
	if s.Location != types.ShadowPassage {
		return reply(s, "You crawl around on the floor for a while. Nothing comes of it.", types.ColorNone)
	}
	if s.Challenges.PassageCleared {
		return reply(s, "The way through is already clear.", types.ColorNone)
	}
	return e.throughPassage(s, crawlPoints, "You drop to your hands and knees and squeeze through the gap, scraping your robes on the rock. [+5 points]")
}

func (e *Engine) wear(s types.GameState, target string) types.CommandResult {
	item, ok := itemByName(target)
	if target != "" && (!ok || item != types.ItemInvisibilityCloak) {
		return reply(s, "You can't wear that.", types.ColorNone)
	}
	if !state.HasItem(s, types.ItemInvisibilityCloak) {
		return reply(s, "You don't have anything to wear.", types.ColorNone)
	}
	c := &s.Challenges
	if c.WearingCloak {
		return reply(s, "You're already wearing the Invisibility Cloak.", types.ColorNone)
	}
	c.WearingCloak = true
	msg := "You swing the Invisibility Cloak around your shoulders. Your body vanishes from sight."
	if s.Location == types.GuardCorridor && c.GuardsAlerted && !c.StealthPassed {
		c.GuardsAlerted = false
		msg += "\n\n\"Where did they go?\" The guards lower their wands, baffled, searching the empty air."
	}
	return reply(s, msg, types.ColorMagic)
}

func (e *Engine) remove(s types.GameState, target string) types.CommandResult {
	item, ok := itemByName(target)
	if target != "" && (!ok || item != types.ItemInvisibilityCloak) {
		return reply(s, "You're not wearing that.", types.ColorNone)
	}
	if !s.Challenges.WearingCloak {
		return reply(s, "You're not wearing anything you can remove.", types.ColorNone)
	}
	s.Challenges.WearingCloak = false
	return reply(s, "You pull off the Invisibility Cloak and fold it away. You're visible again.", types.ColorNormal)
}

// The mirror: looking is risky, reaching is fatal, walking away is right.

func (e *Engine) touch(s types.GameState) types.CommandResult {
	if s.Location != types.FinalChamber || s.Challenges.FinalChallengeComplete {
		return reply(s, "Nothing here reacts to your touch.", types.ColorNone)
	}
	s.Score = 0
	s.Challenges.FinalChallengeComplete = true
	return die(s, "You reach for the figure in the mirror. Your fingers sink into the glass, and it pulls you in.",
		"You are lost in your own desire. CANDIDATE LOST TO THE MIRROR.")
}

func (e *Engine) see(s types.GameState) types.CommandResult {
	c := &s.Challenges
	if s.Location != types.FinalChamber || c.FinalChallengeComplete {
		return reply(s, "You see nothing out of the ordinary.", types.ColorNone)
	}
	if !c.MirrorLookedOnce {
		c.MirrorLookedOnce = true
		return reply(s, "You gaze into the mirror. You see yourself in Auror robes, decorated, admired, everything you ever wanted. It's hard to look away.\n\nSomething tells you that looking again would be dangerous.", types.ColorWarning)
	}
	c.FinalChallengeComplete = true
	if e.RNG.Intn(10) == 0 {
		s.Score = 0
		return die(s, "You look again, and cannot stop looking. Days pass in a heartbeat.",
			"The examiners find you still staring, hollow-eyed. CANDIDATE LOST TO THE MIRROR.")
	}
	effects.Award(&s, mirrorGazePoints)
	effects.Complete(&s, types.ChallengeFinal)
	return win(s, "You look again, then force yourself to step back. The vision fades. You were tempted, but you came away. [+10 points]", types.ColorWarning)
}

func (e *Engine) leave(s types.GameState) types.CommandResult {
	if s.Location != types.FinalChamber || s.Challenges.FinalChallengeComplete {
		return reply(s, "If you want to go somewhere, choose a direction.", types.ColorNone)
	}
	s.Challenges.FinalChallengeComplete = true
	effects.Award(&s, mirrorLeavePts)
	effects.Complete(&s, types.ChallengeFinal)
	return win(s, "You turn your back on the mirror. Whatever it offers, it isn't real. A door opens where none was before, and the examiners step through, applauding. [+20 points]", types.ColorGold)
}
