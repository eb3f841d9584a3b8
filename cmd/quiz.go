package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kukulab/kuku/internal/question"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Quick drill in the plain terminal (no database)",
	Long: `Answer a round of questions without the game interface.

Nothing is recorded — no points, no stats, no badges. Useful for a quick
drill, or for trying out a table before practicing it for real.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().Int("table", 0, "Drill a single table 1-9 (0 = mixed)")
	quizCmd.Flags().String("mode", "random", "Question order: random, sequential, table, or holepunch")
	quizCmd.Flags().Int("count", 10, "Number of questions")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	table, _ := cmd.Flags().GetInt("table")
	modeVal, _ := cmd.Flags().GetString("mode")
	count, _ := cmd.Flags().GetInt("count")

	var mode question.Mode
	switch strings.ToLower(modeVal) {
	case "random":
		mode = question.ModeRandom
	case "sequential":
		mode = question.ModeSequential
	case "table":
		mode = question.ModeTable
	case "holepunch":
		mode = question.ModeHolePunch
	default:
		return fmt.Errorf("invalid mode %q: must be random, sequential, table, or holepunch", modeVal)
	}

	if mode == question.ModeSequential || mode == question.ModeTable {
		if table < question.MinTable || table > question.MaxTable {
			return fmt.Errorf("mode %s needs --table between %d and %d",
				mode, question.MinTable, question.MaxTable)
		}
	}

	gen := question.NewGenerator(mode, table)
	scanner := bufio.NewScanner(os.Stdin)

	var correct, answered int
	for i := 1; i <= count; i++ {
		q := gen.Next()

		prompt := q.Prompt()
		expected := q.Answer()
		if mode == question.ModeHolePunch {
			prompt, expected = question.HolePunchPrompt(q)
		}

		fmt.Printf("%2d/%d  %s  ", i, count, prompt)
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Println("(skipped)")
			continue
		}

		answered++
		n, err := strconv.Atoi(input)
		if err == nil && n == expected {
			correct++
			fmt.Println("✓ Correct!")
		} else {
			fmt.Printf("✗ Not quite. %d × %d = %d\n", q.First, q.Second, q.Answer())
		}
	}

	fmt.Printf("\n%d/%d correct\n", correct, answered)
	return nil
}
