package question

import (
	"strings"
	"testing"
)

func TestAnswerAndIdentifier(t *testing.T) {
	q := New(3, 4)
	if q.Answer() != 12 {
		t.Errorf("answer = %d, want 12", q.Answer())
	}
	if q.Identifier() != "3x4" {
		t.Errorf("identifier = %q, want 3x4", q.Identifier())
	}
	if q.Prompt() != "3 × 4 = ?" {
		t.Errorf("prompt = %q", q.Prompt())
	}
}

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		id     string
		first  int
		second int
		ok     bool
	}{
		{"3x4", 3, 4, true},
		{"9x9", 9, 9, true},
		{"0x4", 0, 0, false},
		{"3x", 0, 0, false},
		{"nonsense", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		first, second, ok := ParseIdentifier(tt.id)
		if ok != tt.ok || first != tt.first || second != tt.second {
			t.Errorf("ParseIdentifier(%q) = %d, %d, %v; want %d, %d, %v",
				tt.id, first, second, ok, tt.first, tt.second, tt.ok)
		}
	}
}

func TestRandomStaysInBounds(t *testing.T) {
	for i := 0; i < 500; i++ {
		q := Random()
		if q.First < MinTable || q.First > MaxTable ||
			q.Second < MinTable || q.Second > MaxTable {
			t.Fatalf("out of bounds: %+v", q)
		}
	}
}

func TestChoicesContainAnswerOnce(t *testing.T) {
	for i := 0; i < 100; i++ {
		q := Random()
		choices := Choices(q)
		if len(choices) != 9 {
			t.Fatalf("got %d choices, want 9", len(choices))
		}
		count := 0
		seen := map[int]bool{}
		for _, c := range choices {
			if c == q.Answer() {
				count++
			}
			if c < 1 {
				t.Errorf("choice %d below 1", c)
			}
			if seen[c] {
				t.Errorf("duplicate choice %d", c)
			}
			seen[c] = true
		}
		if count != 1 {
			t.Errorf("answer appears %d times", count)
		}
	}
}

func TestSequentialGeneratorWalksTableInOrder(t *testing.T) {
	g := NewGenerator(ModeSequential, 7)
	for want := 1; want <= 9; want++ {
		q := g.Next()
		if q.First != 7 || q.Second != want {
			t.Fatalf("step %d: got %dx%d", want, q.First, q.Second)
		}
	}
	// Wraps back to the start of the table.
	q := g.Next()
	if q.First != 7 || q.Second != 1 {
		t.Fatalf("after wrap: got %dx%d", q.First, q.Second)
	}
}

func TestTableGeneratorStaysOnTable(t *testing.T) {
	g := NewGenerator(ModeTable, 6)
	for i := 0; i < 100; i++ {
		q := g.Next()
		if q.First != 6 {
			t.Fatalf("got table %d, want 6", q.First)
		}
		if q.Second < MinTable || q.Second > MaxTable {
			t.Fatalf("multiplier out of bounds: %d", q.Second)
		}
	}
}

func TestGeneratorClampsTable(t *testing.T) {
	if g := NewGenerator(ModeTable, 0); g.Table != MinTable {
		t.Errorf("table = %d, want %d", g.Table, MinTable)
	}
	if g := NewGenerator(ModeTable, 42); g.Table != MaxTable {
		t.Errorf("table = %d, want %d", g.Table, MaxTable)
	}
}

func TestHolePunchPromptHidesOneOperand(t *testing.T) {
	q := New(6, 7)
	for i := 0; i < 50; i++ {
		prompt, answer := HolePunchPrompt(q)
		if !strings.Contains(prompt, "?") || !strings.Contains(prompt, "42") {
			t.Fatalf("bad prompt %q", prompt)
		}
		if answer != 6 && answer != 7 {
			t.Fatalf("hidden operand = %d", answer)
		}
		// The shown operand must be the other one.
		if answer == 6 && !strings.Contains(prompt, "7") {
			t.Errorf("prompt %q should show 7", prompt)
		}
		if answer == 7 && !strings.Contains(prompt, "6") {
			t.Errorf("prompt %q should show 6", prompt)
		}
	}
}

func TestChallengeGeneratorMixesDifficultFacts(t *testing.T) {
	g := NewGenerator(ModeChallenge, 0)
	g.DifficultFacts = func() []Question { return []Question{New(7, 8)} }

	hits := 0
	for i := 0; i < 400; i++ {
		q := g.Next()
		if q.First < MinTable || q.First > MaxTable ||
			q.Second < MinTable || q.Second > MaxTable {
			t.Fatalf("out of bounds: %+v", q)
		}
		if q.First == 7 && q.Second == 8 {
			hits++
		}
	}
	// Roughly half the draws should come from the one-fact difficult
	// list; far more than the ~5 random draws of 7x8 would produce.
	if hits < 100 {
		t.Errorf("difficult fact drawn %d/400 times", hits)
	}
}

func TestChallengeGeneratorWithoutSourceIsRandom(t *testing.T) {
	g := NewGenerator(ModeChallenge, 0)
	for i := 0; i < 100; i++ {
		q := g.Next()
		if q.First < MinTable || q.First > MaxTable {
			t.Fatalf("out of bounds: %+v", q)
		}
	}
}
