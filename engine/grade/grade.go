// Package grade turns a finished examination into an O.W.L.-style grade.
package grade

import "github.com/nathoo/aurorexam/types"

// Grade is the examination result.
type Grade struct {
	Letter      string `yaml:"letter"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Total       int    `yaml:"total"`
	Percentage  int    `yaml:"percentage"`
}

type band struct {
	min                         int
	letter, title, description string
}

// bands are checked top to bottom; the first whose minimum is met wins.
var bands = []band{
	{95, "O", "Outstanding", "Elite Auror material. Welcome to the Department."},
	{85, "E", "Exceeds Expectations", "Excellent Auror candidate. You will serve the Ministry well."},
	{75, "E", "Exceeds Expectations", "Strong Auror candidate. Report for duty."},
	{65, "A", "Acceptable", "Qualified Auror. Additional training recommended."},
	{55, "A", "Acceptable", "Probationary Auror. Close supervision required."},
	{45, "P", "Poor", "You must retake the examination."},
	{30, "D", "Dreadful", "Failed. You are not Auror material."},
	{0, "T", "Troll", "Catastrophic failure. How did you even get here?"},
}

// Total is score plus a fifth of remaining health, minus two per hint,
// never below zero.
func Total(score, health, hints int) int {
	return max(0, score+health/5-hints*2)
}

// Calculate grades a final state.
func Calculate(s types.GameState) Grade {
	return For(s.Score, s.Health, s.HintsUsed)
}

// For grades raw figures.
func For(score, health, hints int) Grade {
	total := Total(score, health, hints)
	pct := min(100, total)

	for _, b := range bands {
		if pct >= b.min {
			return Grade{
				Letter:      b.letter,
				Title:       b.title,
				Description: b.description,
				Total:       total,
				Percentage:  pct,
			}
		}
	}
	// Unreachable: the last band has no minimum.
	return Grade{Total: total, Percentage: pct}
}
