// Package messaging carries messages between the child and a parent:
// free text, generated study reports, and achievement announcements.
package messaging

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who wrote a message.
type Sender string

const (
	SenderChild  Sender = "child"
	SenderParent Sender = "parent"
)

// Type classifies a message.
type Type string

const (
	TypeText        Type = "text"
	TypeStudyReport Type = "study_report"
	TypeAchievement Type = "achievement"
)

// StudySession summarizes one practice session for a study report.
type StudySession struct {
	TotalProblems  int
	CorrectAnswers int
	AverageTimeSec float64
	NewMasteries   []int
	Date           time.Time
}

// CorrectRate returns correct/total in [0,1].
func (s StudySession) CorrectRate() float64 {
	if s.TotalProblems <= 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalProblems)
}

// Message is one entry in the parent-child conversation.
type Message struct {
	ID            uuid.UUID
	Sender        Sender
	Type          Type
	Content       string
	IsRead        bool
	AchievementID *uuid.UUID
	Session       *StudySession
	SentAt        time.Time
}

// Repo persists messages.
type Repo interface {
	Insert(ctx context.Context, m *Message) error
	Recent(ctx context.Context, limit int) ([]*Message, error)
	UnreadCount(ctx context.Context, recipient Sender) (int, error)
	MarkAllRead(ctx context.Context, recipient Sender) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
}

// Mailbox creates and reads messages.
type Mailbox struct {
	repo Repo
	now  func() time.Time
}

// NewMailbox creates a mailbox over the given repo.
func NewMailbox(repo Repo) *Mailbox {
	return &Mailbox{repo: repo, now: time.Now}
}

func (m *Mailbox) send(ctx context.Context, msg *Message) (*Message, error) {
	msg.ID = uuid.New()
	msg.SentAt = m.now()
	if err := m.repo.Insert(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// SendText sends a free-text message.
func (m *Mailbox) SendText(ctx context.Context, from Sender, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("messaging: empty message")
	}
	return m.send(ctx, &Message{Sender: from, Type: TypeText, Content: content})
}

// SendStudyReport sends a child-to-parent report generated from a
// session summary.
func (m *Mailbox) SendStudyReport(ctx context.Context, session StudySession) (*Message, error) {
	return m.send(ctx, &Message{
		Sender:  SenderChild,
		Type:    TypeStudyReport,
		Content: FormatStudyReport(session),
		Session: &session,
	})
}

// SendAchievement sends a child-to-parent achievement announcement.
func (m *Mailbox) SendAchievement(ctx context.Context, title string, achievementID uuid.UUID) (*Message, error) {
	id := achievementID
	return m.send(ctx, &Message{
		Sender:        SenderChild,
		Type:          TypeAchievement,
		Content:       fmt.Sprintf("I did it! %s!", title),
		AchievementID: &id,
	})
}

// Recent returns the newest messages, most recent first.
func (m *Mailbox) Recent(ctx context.Context, limit int) ([]*Message, error) {
	return m.repo.Recent(ctx, limit)
}

// UnreadCount returns how many messages addressed to the recipient are
// unread. A message is addressed to whoever did not send it.
func (m *Mailbox) UnreadCount(ctx context.Context, recipient Sender) (int, error) {
	return m.repo.UnreadCount(ctx, recipient)
}

// MarkAllRead marks every message addressed to the recipient as read.
func (m *Mailbox) MarkAllRead(ctx context.Context, recipient Sender) error {
	return m.repo.MarkAllRead(ctx, recipient)
}

// Cleanup removes messages older than the given number of days.
func (m *Mailbox) Cleanup(ctx context.Context, days int) error {
	return m.repo.DeleteOlderThan(ctx, m.now().AddDate(0, 0, -days))
}

// FormatStudyReport renders a session summary as report text.
func FormatStudyReport(s StudySession) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today I solved %d problems and got %d right!", s.TotalProblems, s.CorrectAnswers)
	fmt.Fprintf(&b, "\nCorrect rate: %d%%", int(s.CorrectRate()*100))
	fmt.Fprintf(&b, "\nAverage time: %.1fs", s.AverageTimeSec)
	if len(s.NewMasteries) > 0 {
		parts := make([]string, len(s.NewMasteries))
		for i, table := range s.NewMasteries {
			parts[i] = fmt.Sprintf("the %ds", table)
		}
		fmt.Fprintf(&b, "\nNewly mastered: %s", strings.Join(parts, ", "))
	}
	return b.String()
}

// QuickReplies are canned parent responses offered in the dashboard.
var QuickReplies = []string{
	"Great job!",
	"Keep it up!",
	"Amazing work today!",
	"So proud of you!",
	"Let's celebrate this weekend!",
}
