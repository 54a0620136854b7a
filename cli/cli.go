// Package cli provides plain line-oriented terminal I/O and meta-command
// dispatch for the examination engine. It is also the script player.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/aurorexam/engine"
	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

// CLI handles terminal interaction with the player. It owns the game
// state between turns and threads it through the engine.
type CLI struct {
	Engine    *engine.Engine
	State     types.GameState
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine with a fresh examination.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		State:  state.New(),
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop. It shows the banner, then loops:
// prompt → input → engine → output.
func (c *CLI) Run() {
	c.apply(c.Engine.Begin(c.State))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if c.State.Phase == types.PhasePlaying && (lower == "again" || lower == "g") {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else if c.State.Phase == types.PhasePlaying {
			c.lastCmd = input
		}

		c.apply(c.Engine.Process(c.State, input))
	}
}

func (c *CLI) apply(result types.CommandResult) {
	c.State = result.State
	c.printResult(result)
	if c.Trace {
		c.printTrace(result)
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit         — Exit",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"  /trace        — Toggle debug trace output",
		"",
		"Type HELP (without the slash) for examination commands.",
		"  again (g)     — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	out, err := state.Dump(c.State)
	if err != nil {
		c.printSystem(fmt.Sprintf("State dump failed: %v", err))
		return
	}
	c.printLine(strings.TrimRight(string(out), "\n"))
}

func (c *CLI) printTrace(result types.CommandResult) {
	s := result.State
	c.printLine(fmt.Sprintf("[trace] color=%s phase=%s location=%s", colorName(result.Color), s.Phase, s.Location))
	c.printLine(fmt.Sprintf("[trace] health=%d/%d score=%d hints=%d challenges=%d/%d",
		s.Health, s.MaxHealth, s.Score, s.HintsUsed, state.CompletedCount(s), len(types.Challenges)))
	if r, ok := c.Engine.RNG.(*engine.RNG); ok {
		c.printLine(fmt.Sprintf("[trace] seed=%d rng=%d", r.Seed(), r.Position()))
	}
	if s.Combat != nil {
		c.printLine(fmt.Sprintf("[trace] %s %d/%d round=%d blocks=%d",
			s.Combat.Opponent, s.Combat.OpponentHealth, s.Combat.OpponentMaxHealth, s.Combat.Round, s.Combat.Blocks))
	}
}

func colorName(col types.Color) string {
	if col == types.ColorNone {
		return "none"
	}
	return string(col)
}

func (c *CLI) printResult(result types.CommandResult) {
	c.printLine(result.Message)
	c.printLine("")
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
