package main

import (
	"github.com/spf13/cobra"

	"github.com/nathoo/aurorexam/config"
)

var (
	cfgFile string
	v       = config.New()
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "aurorexam",
	Short: "Take the Auror Examination",
	Long: `A text adventure in which a candidate works through nine magical
trials beneath the Ministry of Magic and is graded on the way out.

Run without a subcommand to start playing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = c
		return setupLogging(cfg)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogging()
	},
	RunE: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.aurorexam.yaml)")
	pf.String("world", "", "Lua world file or directory (default: built-in examination)")
	pf.String("log-level", "", "log level: trace, debug, info, warn, error, disabled")
	pf.String("log-file", "", "write logs to this file instead of stderr")

	bind(config.KeyWorld, "world")
	bind(config.KeyLogLevel, "log-level")
	bind(config.KeyLogFile, "log-file")

	addPlayFlags(rootCmd)
}

func bind(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}
