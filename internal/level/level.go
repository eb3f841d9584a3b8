package level

import (
	"context"
	"time"
)

// MaxLevel caps the level curve.
const MaxLevel = 50

// UpRecord is one level-up history entry.
type UpRecord struct {
	FromLevel             int
	ToLevel               int
	At                    time.Time
	TotalExperienceAtTime int
}

// State is the persisted level record. TotalExperience mirrors the
// lifetime earned points.
type State struct {
	Level           int
	TotalExperience int
	Title           Title
	History         []UpRecord
	CreatedAt       time.Time
	LastUpdated     time.Time
}

// Repo persists the level state.
type Repo interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, st *State) error
}

// ExperienceRequiredForLevel returns the cumulative experience needed to
// reach a level: 0 for level 1, then (5L²+5L−10)/2, which is always
// integral. The gentle quadratic puts level 50 at about 6,400
// experience.
func ExperienceRequiredForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (5*level*level + 5*level - 10) / 2
}

// LevelFromExperience returns the largest level in [1,MaxLevel] whose
// requirement is within the given total experience.
func LevelFromExperience(experience int) int {
	lvl := 1
	for lvl < MaxLevel {
		if experience < ExperienceRequiredForLevel(lvl+1) {
			break
		}
		lvl++
	}
	return lvl
}

// Engine wraps the state with level-up detection and persistence.
type Engine struct {
	state *State
	repo  Repo
	now   func() time.Time
}

// NewEngine loads the level state, creating a fresh level-1 state when
// none exists.
func NewEngine(ctx context.Context, repo Repo) (*Engine, error) {
	e := &Engine{repo: repo, now: time.Now}
	if repo != nil {
		st, err := repo.Load(ctx)
		if err != nil {
			return nil, err
		}
		e.state = st
	}
	if e.state == nil {
		now := e.now()
		e.state = &State{Level: 1, Title: TitleForLevel(1), CreatedAt: now, LastUpdated: now}
	}
	return e, nil
}

// Level returns the current level.
func (e *Engine) Level() int { return e.state.Level }

// TotalExperience returns the stored experience total.
func (e *Engine) TotalExperience() int { return e.state.TotalExperience }

// Title returns the current title band.
func (e *Engine) Title() Title { return e.state.Title }

// History returns the level-up history, oldest first.
func (e *Engine) History() []UpRecord { return e.state.History }

// UpdateExperience stores the new total and recomputes the level. When
// the computed level exceeds the stored one, the level and title advance
// and a history entry is appended. The level never goes down through
// this path.
func (e *Engine) UpdateExperience(ctx context.Context, newTotal int) (didLevelUp bool, newLevel int) {
	e.state.TotalExperience = newTotal
	e.state.LastUpdated = e.now()

	calculated := LevelFromExperience(newTotal)
	if calculated > e.state.Level {
		rec := UpRecord{
			FromLevel:             e.state.Level,
			ToLevel:               calculated,
			At:                    e.now(),
			TotalExperienceAtTime: newTotal,
		}
		e.state.Level = calculated
		e.state.Title = TitleForLevel(calculated)
		e.state.History = append(e.state.History, rec)
		e.persist(ctx)
		return true, calculated
	}
	e.persist(ctx)
	return false, 0
}

// Progress returns how far into the current level the experience total
// is, in [0,1]. At MaxLevel the next requirement no longer grows, so
// progress reads 1.
func (e *Engine) Progress() float64 {
	cur := ExperienceRequiredForLevel(e.state.Level)
	var next int
	if e.state.Level >= MaxLevel {
		next = cur
	} else {
		next = ExperienceRequiredForLevel(e.state.Level + 1)
	}
	span := next - cur
	if span <= 0 {
		return 1.0
	}
	p := float64(e.state.TotalExperience-cur) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ExperienceToNext returns the experience still missing for the next
// level, or 0 at the cap.
func (e *Engine) ExperienceToNext() int {
	if e.state.Level >= MaxLevel {
		return 0
	}
	missing := ExperienceRequiredForLevel(e.state.Level+1) - e.state.TotalExperience
	if missing < 0 {
		return 0
	}
	return missing
}

func (e *Engine) persist(ctx context.Context) {
	if e.repo == nil {
		return
	}
	_ = e.repo.Save(ctx, e.state)
}
