// Package engine provides the Process() orchestrator that wires together
// parsing, movement, spells, actions and standing hazards into a single turn.
package engine

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nathoo/aurorexam/engine/parser"
	"github.com/nathoo/aurorexam/engine/spells"
	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/engine/world"
	"github.com/nathoo/aurorexam/types"
)

// Engine holds the static world and the random source. It keeps no game
// state of its own: every call takes a GameState and returns a new one.
type Engine struct {
	World *world.Map
	RNG   Rand
	Log   zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.RNG = r }
}

// WithLogger sets the turn logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.Log = l }
}

// New creates an engine for a world map.
func New(m *world.Map, opts ...Option) *Engine {
	e := &Engine{
		World: m,
		RNG:   NewRNG(time.Now().UnixNano()),
		Log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Describe returns the description of the player's current room.
func (e *Engine) Describe(s types.GameState) string {
	return e.World.Describe(s)
}

// Begin shows the opening banner and asks for the candidate's name.
func (e *Engine) Begin(s types.GameState) types.CommandResult {
	next := state.Clone(s)
	next.Phase = types.PhaseNaming
	return reply(next, banner+"\n\n"+namePrompt, types.ColorGold)
}

// Process runs one player input against s. The returned state never
// shares memory with s.
func (e *Engine) Process(s types.GameState, input string) types.CommandResult {
	var r types.CommandResult
	switch s.Phase {
	case types.PhaseNaming:
		r = e.name(s, input)
	case types.PhasePlaying:
		r = e.play(s, input)
	case types.PhaseVictory:
		r = e.afterVictory(s, input)
	case types.PhaseDeath:
		r = e.afterDeath(s, input)
	default:
		r = e.Begin(s)
	}

	e.Log.Debug().
		Str("phase", string(r.State.Phase)).
		Str("location", string(r.State.Location)).
		Str("input", input).
		Int("health", r.State.Health).
		Int("score", r.State.Score).
		Msg("turn")
	if r.State.Phase != s.Phase {
		e.Log.Info().
			Str("from", string(s.Phase)).
			Str("to", string(r.State.Phase)).
			Int("score", r.State.Score).
			Msg("phase change")
	}
	return r
}

func (e *Engine) name(s types.GameState, input string) types.CommandResult {
	next := state.Clone(s)
	name := strings.TrimSpace(input)
	if name == "" {
		return reply(next, "Please tell the examiners your name, candidate.", types.ColorWarning)
	}
	next.PlayerName = name
	next.Phase = types.PhasePlaying

	var b strings.Builder
	b.WriteString("Good luck, " + name + ".\n\n")
	b.WriteString(briefing)
	b.WriteString("\n\n")
	b.WriteString(e.Describe(next))
	b.WriteString("\n\n" + tips)
	return reply(next, b.String(), types.ColorNormal)
}

// play is the per-turn pipeline for the playing phase.
func (e *Engine) play(s types.GameState, input string) types.CommandResult {
	next := state.Clone(s)
	cmd := parser.Parse(input)

	if next.Challenges.AwaitingMemory {
		next.AttemptCounts[next.Location]++
		next.RestartPending = false
		r := e.memory(next, input)
		return e.finish(s, e.hazards(s, r, cmd))
	}

	if cmd.Type != types.CommandSystem {
		next.AttemptCounts[next.Location]++
	}

	if spells.IsUnforgivable(incantation(input)) {
		next.RestartPending = false
		return reply(next, unforgivableRefusal, types.ColorWarning)
	}

	pending := next.RestartPending
	next.RestartPending = false
	if cmd.Type == types.CommandSystem {
		switch parser.System(cmd.Verb) {
		case parser.SystemRestartConfirm:
			return e.restart()
		case parser.SystemRestart:
			if pending {
				return e.restart()
			}
			next.RestartPending = true
			return reply(next, restartPrompt, types.ColorWarning)
		}
	}

	r := e.dispatch(next, cmd)
	return e.finish(s, e.hazards(s, r, cmd))
}

func (e *Engine) dispatch(s types.GameState, cmd types.ParsedCommand) types.CommandResult {
	switch cmd.Type {
	case types.CommandMovement:
		return e.move(s, types.Direction(cmd.Verb))
	case types.CommandSpell:
		return e.cast(s, cmd)
	case types.CommandAction:
		return e.act(s, cmd)
	case types.CommandSystem:
		return e.system(s, parser.System(cmd.Verb))
	}
	return reply(s, "I don't understand that command. Type HELP for assistance.", types.ColorNone)
}

// finish appends the examination results when the turn ended the run.
func (e *Engine) finish(before types.GameState, r types.CommandResult) types.CommandResult {
	if before.Phase != types.PhasePlaying {
		return r
	}
	if r.State.Phase == types.PhaseVictory || r.State.Phase == types.PhaseDeath {
		r.Message += "\n\n" + Summary(r.State)
	}
	return r
}

func (e *Engine) afterVictory(s types.GameState, input string) types.CommandResult {
	if isRestart(input) {
		return e.restart()
	}
	next := state.Clone(s)
	next.Phase = types.PhaseDeath
	msg := "Your examination is complete. The Ministry will be in touch, " + displayName(next) + ". Type RESTART to take it again."
	return reply(next, msg, types.ColorGold)
}

func (e *Engine) afterDeath(s types.GameState, input string) types.CommandResult {
	if isRestart(input) {
		return e.restart()
	}
	return reply(state.Clone(s), "The examination has ended. Type RESTART to try again.", types.ColorWarning)
}

// restart discards everything and asks for a name again.
func (e *Engine) restart() types.CommandResult {
	next := state.New()
	next.Phase = types.PhaseNaming
	return reply(next, "The examination resets around you.\n\n"+banner+"\n\n"+namePrompt, types.ColorGold)
}

func isRestart(input string) bool {
	cmd := parser.Parse(input)
	if cmd.Type != types.CommandSystem {
		return false
	}
	v := parser.System(cmd.Verb)
	return v == parser.SystemRestart || v == parser.SystemRestartConfirm
}

// incantation normalizes input the way the parser does before spell matching.
func incantation(input string) string {
	text := strings.Join(strings.Fields(strings.ToLower(input)), " ")
	return strings.TrimPrefix(text, "cast ")
}

func reply(s types.GameState, msg string, color types.Color) types.CommandResult {
	return types.CommandResult{Message: msg, State: s, Color: color}
}

// die ends the run. The message that led to it is kept as a prefix.
func die(s types.GameState, msg, epitaph string) types.CommandResult {
	s.Phase = types.PhaseDeath
	if msg != "" {
		epitaph = msg + "\n\n" + epitaph
	}
	return reply(s, epitaph, types.ColorDamage)
}

func win(s types.GameState, msg string, color types.Color) types.CommandResult {
	s.Phase = types.PhaseVictory
	return reply(s, msg, color)
}

func displayName(s types.GameState) string {
	if s.PlayerName == "" {
		return "candidate"
	}
	return s.PlayerName
}
