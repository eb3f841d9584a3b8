package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/kukulab/kuku/internal/badges"
	"github.com/kukulab/kuku/internal/challenge"
	"github.com/kukulab/kuku/internal/difficulty"
	"github.com/kukulab/kuku/internal/level"
	"github.com/kukulab/kuku/internal/points"
	"github.com/kukulab/kuku/internal/question"
	"github.com/kukulab/kuku/internal/store"
	"github.com/kukulab/kuku/internal/tablestats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
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

		ctx := context.Background()

		levels, err := level.NewEngine(ctx, st.LevelRepo())
		if err != nil {
			return fmt.Errorf("load level state: %w", err)
		}
		balance, err := points.NewBalance(ctx, st.PointsRepo())
		if err != nil {
			return fmt.Errorf("load points: %w", err)
		}
		tables, err := tablestats.NewTracker(ctx, st.TableStatsRepo())
		if err != nil {
			return fmt.Errorf("load table stats: %w", err)
		}
		diff, err := difficulty.NewTracker(ctx, st.DifficultyRepo())
		if err != nil {
			return fmt.Errorf("load difficulty tracker: %w", err)
		}
		evaluator, err := badges.NewEvaluator(ctx, st.BadgesRepo())
		if err != nil {
			return fmt.Errorf("load badges: %w", err)
		}
		challenges := challenge.NewTracker(st.ChallengeRepo())

		sep := strings.Repeat("─", 52)

		fmt.Printf("Level %d — %s\n", levels.Level(), levels.Title())
		fmt.Printf("Experience: %d total, %d to next level\n",
			levels.TotalExperience(), levels.ExperienceToNext())
		fmt.Printf("Points:     %d earned\n", balance.TotalEarned())
		fmt.Printf("Streak:     %d day(s)\n", challenges.CurrentStreak(ctx))
		if day, err := challenges.GetOrCreateToday(ctx); err == nil {
			fmt.Printf("Today:      %d / %d problems\n",
				day.CompletedProblems, day.TargetProblems)
		}
		fmt.Printf("Badges:     %d / %d earned\n",
			evaluator.EarnedCount(), evaluator.TotalCount())

		fmt.Println()
		fmt.Println("Tables")
		fmt.Println(sep)
		fmt.Printf("%5s  %8s  %8s  %7s  %s\n",
			"Table", "Answered", "Correct", "Rate", "Level")
		fmt.Println(sep)
		for table := question.MinTable; table <= question.MaxTable; table++ {
			rec := tables.Get(table)
			if rec.TotalProblems == 0 {
				fmt.Printf("%5d  %8d  %8s  %7s  %s\n", table, 0, "-", "-", "-")
				continue
			}
			fmt.Printf("%5d  %8d  %8d  %6.0f%%  %s\n",
				table, rec.TotalProblems, rec.CorrectProblems,
				rec.CorrectRate()*100, rec.Level())
		}

		tricky := diff.Difficult()
		if len(tricky) > 0 {
			fmt.Println()
			fmt.Println("Tricky facts")
			fmt.Println(sep)
			for _, r := range tricky {
				fmt.Printf("  %d × %d   missed %.0f%% of %d tries\n",
					r.First, r.Second, r.IncorrectPercent(), r.TotalAttempts())
			}
		}

		return nil
	},
}
