package question

import (
	"fmt"
	"math/rand"
)

// Mode selects how questions are drawn during a round.
type Mode int

const (
	// ModeRandom draws uniformly from all 81 facts.
	ModeRandom Mode = iota
	// ModeSequential walks one table in order (Nx1 .. Nx9).
	ModeSequential
	// ModeTable draws randomly within one table.
	ModeTable
	// ModeHolePunch shows the product and asks for a missing operand.
	ModeHolePunch
	// ModeChallenge mixes the learner's difficult facts into the draw.
	ModeChallenge
)

func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeTable:
		return "table"
	case ModeHolePunch:
		return "holepunch"
	case ModeChallenge:
		return "challenge"
	default:
		return "random"
	}
}

// Generator produces questions for a round according to a mode. The
// zero value is a random-mode generator.
type Generator struct {
	Mode  Mode
	Table int // table for sequential/table modes
	next  int // next multiplier for sequential mode

	// DifficultFacts supplies the current difficult facts for
	// ModeChallenge. May be nil, in which case the draw is random.
	DifficultFacts func() []Question
}

// NewGenerator creates a generator for the given mode. Table is clamped
// into [MinTable, MaxTable] for the modes that use it.
func NewGenerator(mode Mode, table int) *Generator {
	if table < MinTable {
		table = MinTable
	}
	if table > MaxTable {
		table = MaxTable
	}
	return &Generator{Mode: mode, Table: table}
}

// Next returns the next question for the round.
func (g *Generator) Next() Question {
	switch g.Mode {
	case ModeSequential:
		g.next++
		if g.next > MaxTable {
			g.next = 1
		}
		return Question{First: g.Table, Second: g.next}
	case ModeTable:
		return Question{First: g.Table, Second: rand.Intn(MaxTable) + 1}
	case ModeChallenge:
		// Half the questions come from the difficult list when one exists.
		if g.DifficultFacts != nil && rand.Intn(2) == 0 {
			if facts := g.DifficultFacts(); len(facts) > 0 {
				return facts[rand.Intn(len(facts))]
			}
		}
		return Random()
	default:
		return Random()
	}
}

// HolePunchPrompt renders the hole-punch form of a question: the product
// and one operand are shown, the other operand is the answer.
func HolePunchPrompt(q Question) (prompt string, answer int) {
	if rand.Intn(2) == 0 {
		return fmt.Sprintf("%d × ? = %d", q.First, q.Answer()), q.Second
	}
	return fmt.Sprintf("? × %d = %d", q.Second, q.Answer()), q.First
}
