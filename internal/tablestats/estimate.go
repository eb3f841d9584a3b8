package tablestats

import "math"

// EstimatedProblemsToMaster estimates how many more problems are needed
// before the table classifies as master. It computes the correct-answer
// deficit against the 86% bar and scales it by the current correct rate,
// assumed to be at least 50%. A heuristic, not an exact projection.
func EstimatedProblemsToMaster(r *Record) int {
	requiredCorrect := int(math.Ceil(float64(r.TotalProblems) * masterFloor))
	remaining := requiredCorrect - r.CorrectProblems
	if remaining <= 0 {
		return 0
	}
	rate := r.CorrectRate()
	if rate < 0.5 {
		rate = 0.5
	}
	return int(math.Ceil(float64(remaining) / rate))
}
