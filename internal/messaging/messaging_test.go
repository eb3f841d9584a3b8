package messaging

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kukulab/kuku/internal/llm"
)

type memRepo struct {
	msgs []*Message
}

func (m *memRepo) Insert(_ context.Context, msg *Message) error {
	m.msgs = append(m.msgs, msg)
	return nil
}

func (m *memRepo) Recent(_ context.Context, limit int) ([]*Message, error) {
	out := make([]*Message, len(m.msgs))
	copy(out, m.msgs)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) UnreadCount(_ context.Context, recipient Sender) (int, error) {
	n := 0
	for _, msg := range m.msgs {
		if msg.Sender != recipient && !msg.IsRead {
			n++
		}
	}
	return n, nil
}

func (m *memRepo) MarkAllRead(_ context.Context, recipient Sender) error {
	for _, msg := range m.msgs {
		if msg.Sender != recipient {
			msg.IsRead = true
		}
	}
	return nil
}

func (m *memRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) error {
	kept := m.msgs[:0]
	for _, msg := range m.msgs {
		if !msg.SentAt.Before(cutoff) {
			kept = append(kept, msg)
		}
	}
	m.msgs = kept
	return nil
}

func TestSendTextRejectsEmpty(t *testing.T) {
	mb := NewMailbox(&memRepo{})
	ctx := context.Background()

	if _, err := mb.SendText(ctx, SenderParent, "   "); err == nil {
		t.Error("blank message accepted")
	}
	msg, err := mb.SendText(ctx, SenderParent, "Great job!")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Type != TypeText || msg.Sender != SenderParent {
		t.Errorf("message = %+v", msg)
	}
}

func TestUnreadCountsPerRecipient(t *testing.T) {
	mb := NewMailbox(&memRepo{})
	ctx := context.Background()

	mb.SendText(ctx, SenderParent, "Keep it up!")
	mb.SendText(ctx, SenderParent, "One more try!")
	mb.SendText(ctx, SenderChild, "Done practicing!")

	childUnread, _ := mb.UnreadCount(ctx, SenderChild)
	if childUnread != 2 {
		t.Errorf("child unread = %d, want 2", childUnread)
	}
	parentUnread, _ := mb.UnreadCount(ctx, SenderParent)
	if parentUnread != 1 {
		t.Errorf("parent unread = %d, want 1", parentUnread)
	}

	mb.MarkAllRead(ctx, SenderChild)
	childUnread, _ = mb.UnreadCount(ctx, SenderChild)
	if childUnread != 0 {
		t.Errorf("child unread after read = %d", childUnread)
	}
	parentUnread, _ = mb.UnreadCount(ctx, SenderParent)
	if parentUnread != 1 {
		t.Errorf("parent unread unchanged = %d, want 1", parentUnread)
	}
}

func TestStudyReportContent(t *testing.T) {
	mb := NewMailbox(&memRepo{})

	msg, err := mb.SendStudyReport(context.Background(), StudySession{
		TotalProblems:  20,
		CorrectAnswers: 18,
		AverageTimeSec: 4.2,
		NewMasteries:   []int{7},
	})
	if err != nil {
		t.Fatalf("send report: %v", err)
	}
	if msg.Type != TypeStudyReport || msg.Sender != SenderChild {
		t.Errorf("message = %+v", msg)
	}
	for _, want := range []string{"20 problems", "18 right", "90%", "4.2s", "the 7s"} {
		if !strings.Contains(msg.Content, want) {
			t.Errorf("report missing %q:\n%s", want, msg.Content)
		}
	}
	if msg.Session == nil || msg.Session.TotalProblems != 20 {
		t.Error("session data not attached")
	}
}

func TestRecentNewestFirst(t *testing.T) {
	mb := NewMailbox(&memRepo{})
	ctx := context.Background()

	mb.SendText(ctx, SenderChild, "first")
	mb.SendText(ctx, SenderChild, "second")
	mb.SendText(ctx, SenderChild, "third")

	recent, _ := mb.Recent(ctx, 2)
	if len(recent) != 2 || recent[0].Content != "third" || recent[1].Content != "second" {
		t.Errorf("recent order wrong: %v", recent)
	}
}

func TestDraftEncouragement(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"message": "You solved so many today, wonderful work!"}`),
	})

	text, err := DraftEncouragement(context.Background(), provider, StudySession{
		TotalProblems:  10,
		CorrectAnswers: 9,
		AverageTimeSec: 3.5,
	})
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if text != "You solved so many today, wonderful work!" {
		t.Errorf("text = %q", text)
	}
	if provider.CallCount() != 1 {
		t.Errorf("calls = %d", provider.CallCount())
	}
	req := provider.Calls[0]
	if req.Schema == nil || req.Schema.Name != "encouragement" {
		t.Error("encouragement should request the structured schema")
	}
	if !strings.Contains(req.Messages[0].Content, "10 problems") {
		t.Errorf("prompt missing session facts: %s", req.Messages[0].Content)
	}
}
