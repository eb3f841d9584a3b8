package store

import (
	"context"
	"testing"
	"time"

	"github.com/kukulab/kuku/internal/badges"
	"github.com/kukulab/kuku/internal/challenge"
	"github.com/kukulab/kuku/internal/difficulty"
	"github.com/kukulab/kuku/internal/engine"
	"github.com/kukulab/kuku/internal/level"
	"github.com/kukulab/kuku/internal/llm"
	"github.com/kukulab/kuku/internal/messaging"
	"github.com/kukulab/kuku/internal/points"
	"github.com/kukulab/kuku/internal/question"
	"github.com/kukulab/kuku/internal/tablestats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAnswerLogAppendAndCount(t *testing.T) {
	s := openTestStore(t)
	log := s.AnswerLog()
	ctx := context.Background()

	n, err := log.Count(ctx)
	if err != nil {
		t.Fatalf("count (empty): %v", err)
	}
	if n != 0 {
		t.Fatalf("count = %d, want 0", n)
	}

	err = log.Append(ctx, engine.Answer{
		Identifier:    "3x4",
		First:         3,
		Second:        4,
		Correct:       true,
		Elapsed:       2500 * time.Millisecond,
		PointsAwarded: 1,
		Mode:          question.ModeRandom,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = log.Append(ctx, engine.Answer{
		Identifier: "7x8",
		First:      7,
		Second:     8,
		TimedOut:   true,
		Elapsed:    10 * time.Second,
		Mode:       question.ModeTable,
	})
	if err != nil {
		t.Fatalf("append timeout: %v", err)
	}

	n, err = log.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}

	history, err := s.AnswerHistory(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[0].Identifier != "3x4" || !history[0].Correct {
		t.Errorf("history = %+v", history)
	}
	if history[1].Identifier != "7x8" || history[1].Correct {
		t.Errorf("history[1] = %+v", history[1])
	}
}

func TestAverageAnswerTime(t *testing.T) {
	s := openTestStore(t)
	log := s.AnswerLog()
	ctx := context.Background()

	avg, err := s.AverageAnswerTime(ctx, 10)
	if err != nil {
		t.Fatalf("average (empty): %v", err)
	}
	if avg != 0 {
		t.Errorf("average = %v, want 0", avg)
	}

	for _, ms := range []int{2000, 4000, 6000} {
		log.Append(ctx, engine.Answer{
			Identifier: "2x2", First: 2, Second: 2, Correct: true,
			Elapsed: time.Duration(ms) * time.Millisecond,
		})
	}
	avg, err = s.AverageAnswerTime(ctx, 10)
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if avg != 4*time.Second {
		t.Errorf("average = %v, want 4s", avg)
	}
}

func TestDifficultyRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.DifficultyRepo()
	ctx := context.Background()

	rec := &difficulty.Record{
		Identifier:      "7x8",
		First:           7,
		Second:          8,
		IncorrectCount:  1,
		LastIncorrectAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rec.CorrectCount = 2
	rec.IncorrectCount = 3
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("records = %d, want 1", len(all))
	}
	got := all[0]
	if got.Identifier != "7x8" || got.CorrectCount != 2 || got.IncorrectCount != 3 {
		t.Errorf("record = %+v", got)
	}
}

func TestTableStatsRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.TableStatsRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for table := 1; table <= 9; table++ {
		err := repo.Upsert(ctx, &tablestats.Record{
			Table:         table,
			TotalProblems: table * 2,
			LastUpdated:   now,
		})
		if err != nil {
			t.Fatalf("upsert table %d: %v", table, err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 9 {
		t.Fatalf("records = %d, want 9", len(all))
	}
	// Ordered by table number.
	for i, rec := range all {
		if rec.Table != i+1 {
			t.Errorf("record %d table = %d", i, rec.Table)
		}
	}
}

func TestPointsRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PointsRepo()
	ctx := context.Background()

	st, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if st != nil {
		t.Fatal("expected nil state when none exists")
	}

	want := &points.State{
		TotalEarned: 42,
		Available:   17,
		BonusLedger: map[string]int{"7x8": 10},
		LastUpdated: time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.AppendEvent(ctx, points.Event{
		Kind: "earn", Amount: 2, QuestionID: "7x8", Bonus: true, At: want.LastUpdated,
	}); err != nil {
		t.Fatalf("append event: %v", err)
	}

	st, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.TotalEarned != 42 || st.Available != 17 || st.BonusLedger["7x8"] != 10 {
		t.Errorf("state = %+v", st)
	}

	// Save again updates the same row.
	want.Available = 0
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save again: %v", err)
	}
	n, err := s.Client().PointState.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("point state rows = %d, want 1", n)
	}
}

func TestLevelRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.LevelRepo()
	ctx := context.Background()

	eng, err := level.NewEngine(ctx, repo)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	eng.UpdateExperience(ctx, 15)

	reloaded, err := level.NewEngine(ctx, repo)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Level() != 2 || reloaded.TotalExperience() != 15 {
		t.Errorf("reloaded level=%d exp=%d", reloaded.Level(), reloaded.TotalExperience())
	}
	if len(reloaded.History()) != 1 || reloaded.History()[0].ToLevel != 2 {
		t.Errorf("history = %+v", reloaded.History())
	}
}

func TestChallengeRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChallengeRepo()
	ctx := context.Background()

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	got, err := repo.Get(ctx, day)
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing day")
	}

	d := &challenge.Day{
		Day:            day,
		TargetProblems: 5,
		StreakCount:    3,
		CreatedAt:      day,
	}
	if err := repo.Upsert(ctx, d); err != nil {
		t.Fatalf("insert: %v", err)
	}
	d.CompletedProblems = 5
	if err := repo.Upsert(ctx, d); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = repo.Get(ctx, day)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CompletedProblems != 5 || got.StreakCount != 3 || !got.IsCompleted() {
		t.Errorf("day = %+v", got)
	}
}

func TestBadgesRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.BadgesRepo()
	ctx := context.Background()

	err := repo.Insert(ctx, &badges.Badge{
		Type:     badges.TypeStreak10,
		EarnedAt: time.Now().UTC().Truncate(time.Second),
		IsNew:    true,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 || all[0].Type != badges.TypeStreak10 || !all[0].IsNew {
		t.Errorf("badges = %+v", all)
	}

	if err := repo.MarkAllSeen(ctx); err != nil {
		t.Fatalf("mark seen: %v", err)
	}
	all, _ = repo.All(ctx)
	if all[0].IsNew {
		t.Error("badge still new after mark seen")
	}
}

func TestBadgeCountersPersist(t *testing.T) {
	s := openTestStore(t)
	repo := s.BadgesRepo()
	ctx := context.Background()

	c, err := repo.LoadCounters(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if c != (badges.Counters{}) {
		t.Errorf("counters = %+v, want zero", c)
	}

	want := badges.Counters{CorrectStreak: 4, FastAnswers: 9, SuperFastAnswer: 2}
	if err := repo.SaveCounters(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	c, err = repo.LoadCounters(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c != want {
		t.Errorf("counters = %+v, want %+v", c, want)
	}
}

func TestMessageRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.MessageRepo()
	ctx := context.Background()

	mb := messaging.NewMailbox(repo)
	if _, err := mb.SendText(ctx, messaging.SenderParent, "Great job!"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := mb.SendStudyReport(ctx, messaging.StudySession{
		TotalProblems:  10,
		CorrectAnswers: 9,
		AverageTimeSec: 3.2,
		NewMasteries:   []int{4},
	}); err != nil {
		t.Fatalf("send report: %v", err)
	}

	unread, err := mb.UnreadCount(ctx, messaging.SenderChild)
	if err != nil {
		t.Fatalf("unread: %v", err)
	}
	if unread != 1 {
		t.Errorf("child unread = %d, want 1", unread)
	}

	recent, err := mb.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d messages, want 2", len(recent))
	}
	report := recent[0]
	if report.Type != messaging.TypeStudyReport || report.Session == nil {
		t.Fatalf("newest message = %+v", report)
	}
	if report.Session.TotalProblems != 10 || report.Session.NewMasteries[0] != 4 {
		t.Errorf("session = %+v", report.Session)
	}
}

func TestEventRepoAppendsLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var repo llm.EventRepo = s.EventRepo()
	err := repo.AppendLLMRequest(ctx, llm.RequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "encouragement",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    850,
		Success:      true,
		RequestBody:  "[user]\ndraft a note\n",
		ResponseBody: `{"message": "Great work today!"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := s.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	got := events[0]
	if got.Purpose != "encouragement" || got.InputTokens != 120 || !got.Success {
		t.Errorf("event = %+v", got)
	}
}

func TestSettingRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingRepo()
	ctx := context.Background()

	val, err := repo.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if val != "" {
		t.Errorf("value = %q, want empty", val)
	}

	if err := repo.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	val, _ = repo.Get(ctx, "k")
	if val != "v2" {
		t.Errorf("value = %q, want v2", val)
	}

	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	val, _ = repo.Get(ctx, "k")
	if val != "" {
		t.Errorf("value after delete = %q", val)
	}
}
