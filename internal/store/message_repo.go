package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kukulab/kuku/ent"
	entmessage "github.com/kukulab/kuku/ent/message"
	"github.com/kukulab/kuku/ent/schema"
	"github.com/kukulab/kuku/internal/messaging"
)

// MessageRepo returns the parent/child message repo backed by this store.
func (s *Store) MessageRepo() messaging.Repo {
	return &messageRepo{client: s.client}
}

type messageRepo struct {
	client *ent.Client
}

func (r *messageRepo) Insert(ctx context.Context, m *messaging.Message) error {
	builder := r.client.Message.Create().
		SetUUID(m.ID).
		SetSender(string(m.Sender)).
		SetMsgType(string(m.Type)).
		SetContent(m.Content).
		SetIsRead(m.IsRead).
		SetSentAt(m.SentAt)

	if m.AchievementID != nil {
		builder = builder.SetAchievementUUID(*m.AchievementID)
	}
	if m.Session != nil {
		builder = builder.SetSession(&schema.StudySession{
			TotalProblems:  m.Session.TotalProblems,
			CorrectAnswers: m.Session.CorrectAnswers,
			AverageTimeSec: m.Session.AverageTimeSec,
			NewMasteries:   m.Session.NewMasteries,
		})
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

func (r *messageRepo) Recent(ctx context.Context, limit int) ([]*messaging.Message, error) {
	rows, err := r.client.Message.Query().
		Order(ent.Desc(entmessage.FieldSentAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}

	out := make([]*messaging.Message, 0, len(rows))
	for _, row := range rows {
		msg := &messaging.Message{
			ID:            row.UUID,
			Sender:        messaging.Sender(row.Sender),
			Type:          messaging.Type(row.MsgType),
			Content:       row.Content,
			IsRead:        row.IsRead,
			AchievementID: row.AchievementUUID,
			SentAt:        row.SentAt,
		}
		if row.Session != nil {
			msg.Session = &messaging.StudySession{
				TotalProblems:  row.Session.TotalProblems,
				CorrectAnswers: row.Session.CorrectAnswers,
				AverageTimeSec: row.Session.AverageTimeSec,
				NewMasteries:   row.Session.NewMasteries,
			}
		}
		out = append(out, msg)
	}
	return out, nil
}

func (r *messageRepo) UnreadCount(ctx context.Context, recipient messaging.Sender) (int, error) {
	n, err := r.client.Message.Query().
		Where(
			entmessage.SenderNEQ(string(recipient)),
			entmessage.IsRead(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return n, nil
}

func (r *messageRepo) MarkAllRead(ctx context.Context, recipient messaging.Sender) error {
	_, err := r.client.Message.Update().
		Where(
			entmessage.SenderNEQ(string(recipient)),
			entmessage.IsRead(false),
		).
		SetIsRead(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark messages read: %w", err)
	}
	return nil
}

func (r *messageRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	_, err := r.client.Message.Delete().
		Where(entmessage.SentAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete old messages: %w", err)
	}
	return nil
}
