package question

import "math/rand"

// choice generation constants, matching the in-game tuning: a fixed
// number of options, near misses within ±10 of the answer, and fillers
// anywhere in 1..100.
const (
	numChoices  = 9
	nearbyRange = 10
	randomCeil  = 100
)

// Choices builds a shuffled answer-choice list that always contains the
// correct answer exactly once. Half the distractors cluster near the
// answer so a child cannot pick by magnitude alone.
func Choices(q Question) []int {
	answer := q.Answer()
	choices := []int{answer}
	seen := map[int]bool{answer: true}

	for len(choices) < numChoices {
		var c int
		if rand.Intn(2) == 0 {
			c = answer + rand.Intn(2*nearbyRange+1) - nearbyRange
			if c < 1 {
				c = 1
			}
		} else {
			c = rand.Intn(randomCeil) + 1
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		choices = append(choices, c)
	}

	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}
