package engine

const banner = `THE AUROR EXAMINATION
Ministry of Magic, Department of Magical Law Enforcement

Only the finest witches and wizards become Aurors. Today you will be
tested on spellwork, courage, judgement and restraint.`

const namePrompt = "What is your name, candidate?"

const briefing = `Your examination takes place beneath the Ministry, in a network of
enchanted chambers prepared by the Auror Office. Each chamber holds a trial:
locks and darkness, dark creatures, guards, a duel, and one final test of
character. You begin with full health. Hints are available, but every
hint you ask for will cost you.

Your performance will be graded when the examination ends.`

const tips = "Type HELP for a list of commands, or JOURNEY to review the path you have taken."

const restartPrompt = "Are you sure you want to restart? All progress will be lost. Type RESTART again (or RESTART CONFIRM) to confirm."

const unforgivableRefusal = `The Ministry of Magic strictly forbids the Unforgivable Curses. Casting
one means immediate disqualification and a life sentence in Azkaban.
Your wand refuses to obey.`

const helpText = `AUROR EXAMINATION: COMMANDS

MOVEMENT
  NORTH, SOUTH, EAST, WEST, UP, DOWN (or N, S, E, W, U, D)

SPELLS
  Type an incantation to cast it, for example LUMOS or CAST LUMOS.
  ACCIO <thing> summons something nearby.

ACTIONS
  EXAMINE <thing>, TAKE <item>, USE <item>, READ <thing>
  WEAR / REMOVE <item>, BOW, RIDE, CRAWL, ATTACK
  OPEN / CLOSE, LEAVE, TOUCH, SEE

OTHER
  LOOK (L)        describe your surroundings
  INVENTORY (I)   list what you carry
  SCORE           show your progress
  JOURNEY (MAP)   review the path you have taken
  HINT            ask the examiners for help (costs points)
  RESTART         start over
  QUIT            end the examination`
