package grade

import (
	"testing"

	"github.com/nathoo/aurorexam/engine/state"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name                 string
		score, health, hints int
		wantLetter           string
		wantTitle            string
		wantTotal            int
	}{
		{"perfect", 80, 100, 0, "O", "Outstanding", 100},
		{"capped percentage", 120, 100, 0, "O", "Outstanding", 140},
		{"dead with hints", 0, 0, 5, "T", "Troll", 0},
		{"exceeds upper", 70, 75, 0, "E", "Exceeds Expectations", 85},
		{"exceeds lower", 60, 75, 0, "E", "Exceeds Expectations", 75},
		{"acceptable upper", 50, 75, 0, "A", "Acceptable", 65},
		{"acceptable lower", 40, 75, 0, "A", "Acceptable", 55},
		{"poor", 30, 75, 0, "P", "Poor", 45},
		{"dreadful", 20, 50, 0, "D", "Dreadful", 30},
		{"just below dreadful", 20, 49, 0, "T", "Troll", 29},
		{"hints push below band", 80, 100, 3, "E", "Exceeds Expectations", 94},
		{"health rounds down", 90, 29, 0, "O", "Outstanding", 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := For(tt.score, tt.health, tt.hints)
			if g.Letter != tt.wantLetter || g.Title != tt.wantTitle {
				t.Errorf("For(%d, %d, %d) = %s/%s, want %s/%s",
					tt.score, tt.health, tt.hints, g.Letter, g.Title, tt.wantLetter, tt.wantTitle)
			}
			if g.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", g.Total, tt.wantTotal)
			}
			if g.Description == "" {
				t.Error("Description is empty")
			}
		})
	}
}

func TestFor_PercentageCapped(t *testing.T) {
	if g := For(200, 100, 0); g.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100", g.Percentage)
	}
}

func TestCalculate_UsesState(t *testing.T) {
	s := state.New()
	s.Score = 80
	s.HintsUsed = 0

	g := Calculate(s)
	if g.Letter != "O" || g.Total != 100 {
		t.Errorf("Calculate = %+v, want O with total 100", g)
	}
}

func TestTotal_NeverNegative(t *testing.T) {
	if got := Total(-10, 0, 10); got != 0 {
		t.Errorf("Total = %d, want 0", got)
	}
}
