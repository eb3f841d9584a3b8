package question

import (
	"fmt"
	"math/rand"
)

// MinTable and MaxTable bound the multiplication tables practiced.
const (
	MinTable = 1
	MaxTable = 9
)

// Question is a single multiplication fact. Questions are created per
// round and never persisted; only aggregated counters survive a round.
type Question struct {
	First  int
	Second int
}

// New creates a question for the given operands.
func New(first, second int) Question {
	return Question{First: first, Second: second}
}

// Random returns a uniformly random fact over 1x1 .. 9x9.
func Random() Question {
	return Question{
		First:  rand.Intn(MaxTable) + 1,
		Second: rand.Intn(MaxTable) + 1,
	}
}

// Answer returns the product.
func (q Question) Answer() int {
	return q.First * q.Second
}

// Identifier returns the stable fact key, e.g. "3x4". It is used as the
// map key for difficulty and bonus tracking.
func (q Question) Identifier() string {
	return fmt.Sprintf("%dx%d", q.First, q.Second)
}

// Prompt returns the display text for the question.
func (q Question) Prompt() string {
	return fmt.Sprintf("%d × %d = ?", q.First, q.Second)
}

// ParseIdentifier extracts the operands from a fact key. It reports
// false for anything that is not of the form "AxB" with positive
// operands.
func ParseIdentifier(id string) (first, second int, ok bool) {
	n, err := fmt.Sscanf(id, "%dx%d", &first, &second)
	if err != nil || n != 2 || first < 1 || second < 1 {
		return 0, 0, false
	}
	return first, second, true
}
