package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kukulab/kuku/internal/achievement"
	"github.com/kukulab/kuku/internal/app"
	"github.com/kukulab/kuku/internal/badges"
	"github.com/kukulab/kuku/internal/challenge"
	"github.com/kukulab/kuku/internal/difficulty"
	"github.com/kukulab/kuku/internal/engine"
	"github.com/kukulab/kuku/internal/level"
	"github.com/kukulab/kuku/internal/llm"
	"github.com/kukulab/kuku/internal/messaging"
	"github.com/kukulab/kuku/internal/parentauth"
	"github.com/kukulab/kuku/internal/points"
	"github.com/kukulab/kuku/internal/store"
	"github.com/kukulab/kuku/internal/tablestats"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds every subsystem, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := context.Background()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts, err := buildOptions(ctx, st)
	if err != nil {
		return err
	}

	return app.Run(opts)
}

// buildOptions wires the store-backed subsystems into app options.
func buildOptions(ctx context.Context, st *store.Store) (app.Options, error) {
	diff, err := difficulty.NewTracker(ctx, st.DifficultyRepo())
	if err != nil {
		return app.Options{}, fmt.Errorf("load difficulty tracker: %w", err)
	}
	tables, err := tablestats.NewTracker(ctx, st.TableStatsRepo())
	if err != nil {
		return app.Options{}, fmt.Errorf("load table stats: %w", err)
	}
	balance, err := points.NewBalance(ctx, st.PointsRepo())
	if err != nil {
		return app.Options{}, fmt.Errorf("load points: %w", err)
	}
	levels, err := level.NewEngine(ctx, st.LevelRepo())
	if err != nil {
		return app.Options{}, fmt.Errorf("load level state: %w", err)
	}
	evaluator, err := badges.NewEvaluator(ctx, st.BadgesRepo())
	if err != nil {
		return app.Options{}, fmt.Errorf("load badges: %w", err)
	}

	challenges := challenge.NewTracker(st.ChallengeRepo())
	achievements := achievement.NewRecorder(st.AchievementRepo())

	eng, err := engine.New(ctx, engine.Deps{
		Difficulty:   diff,
		Tables:       tables,
		Points:       balance,
		Levels:       levels,
		Badges:       evaluator,
		Challenge:    challenges,
		Achievements: achievements,
		Log:          st.AnswerLog(),
	})
	if err != nil {
		return app.Options{}, fmt.Errorf("build engine: %w", err)
	}

	opts := app.Options{
		Engine:       eng,
		Difficulty:   diff,
		Tables:       tables,
		Points:       balance,
		Levels:       levels,
		Badges:       evaluator,
		Challenge:    challenges,
		Achievements: achievements,
		Mailbox:      messaging.NewMailbox(st.MessageRepo()),
		Guard:        parentauth.NewGuard(st.SettingRepo()),
		History:      st,
		Ledger:       st,
		Version:      version,
	}

	// The LLM provider is optional; the game runs fine without it.
	provider, err := buildLLMProvider(ctx, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Encouragement drafting will be unavailable.")
	} else {
		opts.LLMProvider = provider
	}

	return opts, nil
}

// buildLLMProvider reads provider config from the environment, falling
// back to API-key discovery when no explicit provider is set.
func buildLLMProvider(ctx context.Context, st *store.Store) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, st.EventRepo())
}
