package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nathoo/aurorexam/cli"
	"github.com/nathoo/aurorexam/config"
	"github.com/nathoo/aurorexam/engine"
	"github.com/nathoo/aurorexam/engine/world"
	"github.com/nathoo/aurorexam/loader"
	"github.com/nathoo/aurorexam/tui"
)

var scriptFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the examination",
	Long: `Starts the examination in the full-screen terminal UI, or in plain
line mode with --plain or when stdout is not a terminal.

With --script, commands are read from a file (one per line, # comments
allowed) and echoed, which is handy for replaying a run with --seed.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.Bool("plain", false, "use plain line-oriented I/O instead of the TUI")
	pf.Bool("trace", false, "print state after every turn")
	pf.Int64("seed", 0, "random seed (0 seeds from the clock)")
	pf.StringVar(&scriptFile, "script", "", "read commands from a file instead of the terminal")

	bind(config.KeyPlain, "plain")
	bind(config.KeyTrace, "trace")
	bind(config.KeySeed, "seed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	m, err := loadWorld(cfg.World)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng := engine.New(m,
		engine.WithRand(engine.NewRNG(seed)),
		engine.WithLogger(log.Logger),
	)
	log.Info().Int64("seed", seed).Str("world", m.Title).Int("rooms", len(m.Locations)).Msg("examination starting")

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := cli.New(eng)
		c.In = f
		c.Out = cmd.OutOrStdout()
		c.EchoInput = true
		c.Trace = cfg.Trace
		c.Run()
		return nil
	}

	// Use plain CLI if --plain or stdout is not a terminal.
	if cfg.Plain || !isTerminal() {
		c := cli.New(eng)
		c.Out = cmd.OutOrStdout()
		c.Trace = cfg.Trace
		c.Run()
		return nil
	}

	return tui.Run(eng, cfg.HistorySize, cfg.Trace)
}

// loadWorld returns the built-in map, or the Lua definition at path.
func loadWorld(path string) (*world.Map, error) {
	if path == "" {
		m, err := loader.Default()
		if err != nil {
			return nil, fmt.Errorf("loading built-in world: %w", err)
		}
		return m, nil
	}
	m, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}
	log.Debug().Str("path", path).Msg("loaded custom world")
	return m, nil
}
