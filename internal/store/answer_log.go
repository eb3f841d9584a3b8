package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kukulab/kuku/ent"
	"github.com/kukulab/kuku/ent/answerevent"
	"github.com/kukulab/kuku/internal/engine"
	"github.com/kukulab/kuku/internal/tablestats"
)

// AnswerLog returns the append-only answer log backed by this store.
func (s *Store) AnswerLog() engine.AnswerLog {
	return &answerLog{store: s}
}

type answerLog struct {
	store *Store
}

func (l *answerLog) Append(ctx context.Context, a engine.Answer) error {
	seqNum, err := l.store.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = l.store.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetIdentifier(a.Identifier).
		SetFirst(a.First).
		SetSecond(a.Second).
		SetCorrect(a.Correct).
		SetTimeout(a.TimedOut).
		SetElapsedMs(int(a.Elapsed.Milliseconds())).
		SetPointsAwarded(a.PointsAwarded).
		SetMode(a.Mode.String()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (l *answerLog) Count(ctx context.Context) (int, error) {
	n, err := l.store.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answer events: %w", err)
	}
	return n, nil
}

// AnswerHistory replays the full answer log in event order, for
// rebuilding table statistics from scratch.
func (s *Store) AnswerHistory(ctx context.Context) ([]tablestats.AnswerHistory, error) {
	events, err := s.client.AnswerEvent.Query().
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	out := make([]tablestats.AnswerHistory, 0, len(events))
	for _, e := range events {
		out = append(out, tablestats.AnswerHistory{
			Identifier: e.Identifier,
			Correct:    e.Correct,
		})
	}
	return out, nil
}

// AnswerRecord is one row of the recent-answers view.
type AnswerRecord struct {
	Identifier string
	First      int
	Second     int
	Correct    bool
	TimedOut   bool
	Elapsed    time.Duration
	Points     int
	Mode       string
	At         time.Time
}

// RecentAnswers returns the latest answered questions, newest first.
func (s *Store) RecentAnswers(ctx context.Context, limit int) ([]AnswerRecord, error) {
	events, err := s.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}

	out := make([]AnswerRecord, 0, len(events))
	for _, e := range events {
		out = append(out, AnswerRecord{
			Identifier: e.Identifier,
			First:      e.First,
			Second:     e.Second,
			Correct:    e.Correct,
			TimedOut:   e.Timeout,
			Elapsed:    time.Duration(e.ElapsedMs) * time.Millisecond,
			Points:     e.PointsAwarded,
			Mode:       e.Mode,
			At:         e.Timestamp,
		})
	}
	return out, nil
}

// AverageAnswerTime returns the mean elapsed time of the most recent
// lastN answers. Returns 0 when no answers exist.
func (s *Store) AverageAnswerTime(ctx context.Context, lastN int) (time.Duration, error) {
	events, err := s.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query recent answers: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	var total int
	for _, e := range events {
		total += e.ElapsedMs
	}
	return time.Duration(total/len(events)) * time.Millisecond, nil
}
