package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nathoo/aurorexam/engine/grade"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Compute the grade for a score, remaining health and hint count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		score, _ := cmd.Flags().GetInt("score")
		health, _ := cmd.Flags().GetInt("health")
		hints, _ := cmd.Flags().GetInt("hints")
		if health < 0 || health > 100 {
			return fmt.Errorf("health must be between 0 and 100, got %d", health)
		}

		g := grade.For(score, health, hints)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "GRADE: %s - %s\n", g.Letter, g.Title)
		fmt.Fprintf(out, "%s\n", g.Description)
		fmt.Fprintf(out, "Total: %d (%d%%)\n", g.Total, g.Percentage)
		return nil
	},
}

func init() {
	f := gradeCmd.Flags()
	f.Int("score", 0, "examination score")
	f.Int("health", 100, "health remaining")
	f.Int("hints", 0, "hints used")
	rootCmd.AddCommand(gradeCmd)
}
