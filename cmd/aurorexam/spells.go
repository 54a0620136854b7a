package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nathoo/aurorexam/engine/spells"
)

var spellsCmd = &cobra.Command{
	Use:   "spells [incantation]",
	Short: "List the spell dictionary, or check how an incantation is heard",
	Long: `Without arguments, prints every spell the examiners recognise, grouped
by category. With an incantation, reports which spell it matches, allowing
for small misspellings.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) > 0 {
			text := strings.ToLower(strings.Join(args, " "))
			r, ok := spells.Match(text)
			if !ok {
				fmt.Fprintf(out, "%q is not a recognised spell.\n", text)
				return nil
			}
			how := "exact"
			if !r.Exact {
				how = fmt.Sprintf("%d edit(s)", spells.Distance(text, string(r.Spell)))
			}
			fmt.Fprintf(out, "%s (%s, %s)\n", r.Spell, r.Category, how)
			return nil
		}

		category, _ := cmd.Flags().GetString("category")
		for _, c := range spells.Categories {
			if category != "" && string(c) != category {
				continue
			}
			list := spells.InCategory(c)
			names := make([]string, len(list))
			for i, s := range list {
				names[i] = string(s)
			}
			fmt.Fprintf(out, "%s:\n  %s\n", strings.ToUpper(string(c)), strings.Join(names, ", "))
		}
		return nil
	},
}

func init() {
	spellsCmd.Flags().String("category", "", "only list one category (light, defense, offense, utility, healing, unforgivable)")
	rootCmd.AddCommand(spellsCmd)
}
