// Package achievement records notable practice milestones so they can
// be shown and shared later.
package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type classifies an achievement.
type Type string

const (
	TypeTableMastery       Type = "table_mastery"
	TypeStreakAchievement  Type = "streak_achievement"
	TypeSpeedImprovement   Type = "speed_improvement"
	TypeChallengeComplete  Type = "challenge_complete"
	TypePerfectScore       Type = "perfect_score"
	TypeDailyGoal          Type = "daily_goal"
	TypeWeeklyGoal         Type = "weekly_goal"
	TypeTimeRecord         Type = "time_record"
	TypeDifficultyOvercome Type = "difficulty_overcome"
)

// DisplayName returns the human-readable label for a type.
func (t Type) DisplayName() string {
	switch t {
	case TypeTableMastery:
		return "Table Master"
	case TypeStreakAchievement:
		return "Streak"
	case TypeSpeedImprovement:
		return "Got Faster"
	case TypeChallengeComplete:
		return "Challenge Clear"
	case TypePerfectScore:
		return "Perfect Score"
	case TypeDailyGoal:
		return "Daily Goal"
	case TypeWeeklyGoal:
		return "Weekly Goal"
	case TypeTimeRecord:
		return "Time Record"
	case TypeDifficultyOvercome:
		return "Overcame a Tricky One"
	default:
		return string(t)
	}
}

// Achievement is one recorded milestone. Special achievements survive
// cleanup and get highlighted in the parent dashboard.
type Achievement struct {
	ID          uuid.UUID
	Type        Type
	Title       string
	Description string
	Metadata    map[string]string
	EarnedAt    time.Time
	IsSpecial   bool
	IsShared    bool
}

// Repo persists achievements.
type Repo interface {
	Insert(ctx context.Context, a *Achievement) error
	Recent(ctx context.Context, limit int) ([]*Achievement, error)
	Unshared(ctx context.Context) ([]*Achievement, error)
	MarkShared(ctx context.Context, id uuid.UUID) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
}

// Recorder creates achievements with the standard titles.
type Recorder struct {
	repo Repo
	now  func() time.Time
}

// NewRecorder creates a recorder over the given repo.
func NewRecorder(repo Repo) *Recorder {
	return &Recorder{repo: repo, now: time.Now}
}

func (r *Recorder) record(ctx context.Context, a *Achievement) (*Achievement, error) {
	a.ID = uuid.New()
	a.EarnedAt = r.now()
	if err := r.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// TableMastery records mastering one multiplication table.
func (r *Recorder) TableMastery(ctx context.Context, table int) (*Achievement, error) {
	return r.record(ctx, &Achievement{
		Type:        TypeTableMastery,
		Title:       fmt.Sprintf("Mastered the %ds!", table),
		Description: fmt.Sprintf("Learned the %d times table by heart.", table),
		Metadata:    map[string]string{"table": fmt.Sprint(table)},
		IsSpecial:   true,
	})
}

// Streak records a run of consecutive practice days. A week or more is
// special.
func (r *Recorder) Streak(ctx context.Context, days int) (*Achievement, error) {
	return r.record(ctx, &Achievement{
		Type:        TypeStreakAchievement,
		Title:       fmt.Sprintf("%d days in a row!", days),
		Description: fmt.Sprintf("Practiced %d days without a break.", days),
		Metadata:    map[string]string{"streak": fmt.Sprint(days)},
		IsSpecial:   days >= 7,
	})
}

// SpeedImprovement records a faster average answer time. Improvements
// of 20% or more are special.
func (r *Recorder) SpeedImprovement(ctx context.Context, previousSec, newSec float64) (*Achievement, error) {
	percent := 0
	if previousSec > 0 {
		percent = int((previousSec - newSec) / previousSec * 100)
	}
	return r.record(ctx, &Achievement{
		Type:        TypeSpeedImprovement,
		Title:       "Got faster!",
		Description: fmt.Sprintf("Answers are %d%% quicker than before.", percent),
		Metadata: map[string]string{
			"previousTime": fmt.Sprintf("%.1f", previousSec),
			"newTime":      fmt.Sprintf("%.1f", newSec),
			"improvement":  fmt.Sprint(percent),
		},
		IsSpecial: percent >= 20,
	})
}

// ChallengeComplete records finishing the daily challenge.
func (r *Recorder) ChallengeComplete(ctx context.Context, target, completed int) (*Achievement, error) {
	return r.record(ctx, &Achievement{
		Type:        TypeChallengeComplete,
		Title:       "Daily challenge cleared!",
		Description: fmt.Sprintf("Hit today's goal of %d problems.", target),
		Metadata: map[string]string{
			"target":    fmt.Sprint(target),
			"completed": fmt.Sprint(completed),
		},
	})
}

// PerfectScore records a session with every answer correct. Ten or more
// problems makes it special.
func (r *Recorder) PerfectScore(ctx context.Context, problems int) (*Achievement, error) {
	return r.record(ctx, &Achievement{
		Type:        TypePerfectScore,
		Title:       "Perfect score!",
		Description: fmt.Sprintf("Got all %d problems right.", problems),
		Metadata:    map[string]string{"problems": fmt.Sprint(problems)},
		IsSpecial:   problems >= 10,
	})
}

// DifficultyOvercome records turning a difficult question into a
// reliable one.
func (r *Recorder) DifficultyOvercome(ctx context.Context, questionID string, previousRate, newRate float64) (*Achievement, error) {
	improvement := int((newRate - previousRate) * 100)
	return r.record(ctx, &Achievement{
		Type:        TypeDifficultyOvercome,
		Title:       "Overcame a tricky one!",
		Description: fmt.Sprintf("%s is no longer a problem.", questionID),
		Metadata: map[string]string{
			"question":    questionID,
			"improvement": fmt.Sprint(improvement),
		},
		IsSpecial: true,
	})
}

// Recent returns the newest achievements, most recent first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]*Achievement, error) {
	return r.repo.Recent(ctx, limit)
}

// Unshared returns achievements not yet shared with a parent.
func (r *Recorder) Unshared(ctx context.Context) ([]*Achievement, error) {
	return r.repo.Unshared(ctx)
}

// MarkShared flags an achievement as shared.
func (r *Recorder) MarkShared(ctx context.Context, id uuid.UUID) error {
	return r.repo.MarkShared(ctx, id)
}

// Cleanup removes non-special achievements older than the given number
// of months.
func (r *Recorder) Cleanup(ctx context.Context, months int) error {
	return r.repo.DeleteOlderThan(ctx, r.now().AddDate(0, -months, 0))
}
