package tablestats

import "testing"

func TestEstimatedProblemsToMaster(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		correct int
		want    int
	}{
		// ceil(50*0.86)=43 required; already above it.
		{"already master", 50, 44, 0},
		{"untouched table", 0, 0, 0},
		// required=43, remaining=3, rate=0.8 → ceil(3/0.8)=4.
		{"advanced table", 50, 40, 4},
		// required=9, remaining=9, rate floors at 0.5 → 18.
		{"all missed", 10, 0, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{Table: 4, TotalProblems: tt.total, CorrectProblems: tt.correct}
			if got := EstimatedProblemsToMaster(r); got != tt.want {
				t.Errorf("estimate(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
			}
		})
	}
}
