package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/kukulab/kuku/internal/store"
)

func downKey() tea.Msg {
	return tea.KeyPressMsg{Code: 'j'}
}

type fakeSource struct {
	answers []store.AnswerRecord
	err     error
}

func (f *fakeSource) RecentAnswers(_ context.Context, limit int) ([]store.AnswerRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.answers) > limit {
		return f.answers[:limit], nil
	}
	return f.answers, nil
}

func loaded(t *testing.T, src Source) *HistoryScreen {
	t.Helper()
	s := New(src)
	msg := s.Init()()
	updated, _ := s.Update(msg)
	return updated.(*HistoryScreen)
}

func TestEmptyHistoryShowsHint(t *testing.T) {
	s := loaded(t, &fakeSource{})
	view := s.View(80, 24)
	if !strings.Contains(view, "Nothing answered yet") {
		t.Errorf("missing empty state:\n%s", view)
	}
}

func TestLoadErrorIsDisplayed(t *testing.T) {
	s := loaded(t, &fakeSource{err: errors.New("database locked")})
	view := s.View(80, 24)
	if !strings.Contains(view, "database locked") {
		t.Errorf("missing error message:\n%s", view)
	}
}

func TestAnswersGroupedByDay(t *testing.T) {
	day1 := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	s := loaded(t, &fakeSource{answers: []store.AnswerRecord{
		{First: 3, Second: 4, Correct: true, Elapsed: 2 * time.Second, Points: 1, At: day1},
		{First: 7, Second: 8, Correct: false, TimedOut: true, At: day2},
	}})

	view := s.View(80, 24)
	if !strings.Contains(view, "Mar 02, 2025") || !strings.Contains(view, "Mar 01, 2025") {
		t.Errorf("missing day headers:\n%s", view)
	}
	if !strings.Contains(view, "3 × 4 = 12") {
		t.Errorf("missing correct answer row:\n%s", view)
	}
	if !strings.Contains(view, "timed out") {
		t.Errorf("missing timeout note:\n%s", view)
	}
}

func TestScrollStopsAtEnds(t *testing.T) {
	s := loaded(t, &fakeSource{answers: []store.AnswerRecord{
		{First: 1, Second: 1, At: time.Now()},
		{First: 2, Second: 2, At: time.Now()},
	}})

	if s.offset != 0 {
		t.Fatalf("initial offset = %d", s.offset)
	}
	s.offset = 1
	updated, _ := s.Update(downKey())
	if updated.(*HistoryScreen).offset != 1 {
		t.Errorf("scrolled past end")
	}
}
