package handlers

import "testing"

func TestScoreToTON(t *testing.T) {
	tests := []struct {
		name       string
		score      int64
		tapsPerTON int64
		want       float64
	}{
		{"Standard conversion", 3000, 1000, 3.0},
		{"Sub-unit score", 500, 1000, 0.5},
		{"Zero score", 0, 1000, 0},
		{"Negative score", -100, 1000, 0},
		{"Zero divisor", 3000, 0, 0},
		{"Single tap", 1, 1000, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreToTON(tt.score, tt.tapsPerTON); got != tt.want {
				t.Errorf("ScoreToTON(%d, %d) = %v, want %v", tt.score, tt.tapsPerTON, got, tt.want)
			}
		})
	}
}
