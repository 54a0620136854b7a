package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/aurorexam/engine/grade"
	"github.com/nathoo/aurorexam/engine/state"
	"github.com/nathoo/aurorexam/types"
)

// Summary renders the examination results for a finished run.
func Summary(s types.GameState) string {
	g := grade.Calculate(s)

	var b strings.Builder
	b.WriteString("=== EXAMINATION RESULTS ===\n")
	fmt.Fprintf(&b, "Candidate: %s\n", displayName(s))
	fmt.Fprintf(&b, "Final score: %d\n", s.Score)
	fmt.Fprintf(&b, "Health remaining: %d/%d\n", s.Health, s.MaxHealth)
	fmt.Fprintf(&b, "Hints used: %d\n", s.HintsUsed)
	fmt.Fprintf(&b, "Challenges completed: %d/%d\n\n", state.CompletedCount(s), len(types.Challenges))
	fmt.Fprintf(&b, "GRADE: %s - %s\n", g.Letter, g.Title)
	b.WriteString(g.Description)
	b.WriteString("\n\nType RESTART to take the examination again.")
	return b.String()
}
