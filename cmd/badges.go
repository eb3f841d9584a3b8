package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/kukulab/kuku/internal/badges"
	"github.com/kukulab/kuku/internal/store"
	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List earned and locked badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		evaluator, err := badges.NewEvaluator(context.Background(), st.BadgesRepo())
		if err != nil {
			return fmt.Errorf("load badges: %w", err)
		}

		earnedAt := make(map[badges.Type]string)
		for _, e := range evaluator.Earned() {
			earnedAt[e.Type] = e.EarnedAt.Format("2006-01-02")
		}

		fmt.Printf("Badges: %d / %d earned\n", evaluator.EarnedCount(), evaluator.TotalCount())
		fmt.Println(strings.Repeat("─", 64))

		for _, t := range badges.All {
			info := t.DisplayInfo()
			if when, ok := earnedAt[t]; ok {
				fmt.Printf("%s %-20s  %s  %s\n", info.Icon, info.Title, when, info.Description)
			} else {
				fmt.Printf("  %-20s  locked      %s\n", info.Title, info.Requirement)
			}
		}
		return nil
	},
}
