package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kukulab/kuku/ent"
	"github.com/kukulab/kuku/ent/llmevent"
	"github.com/kukulab/kuku/internal/llm"
)

// EventRepo returns the LLM event sink backed by this store.
func (s *Store) EventRepo() llm.EventRepo {
	return &eventRepo{store: s}
}

type eventRepo struct {
	store *Store
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data llm.RequestEventData) error {
	seqNum, err := r.store.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.store.client.LLMEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)

	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}
	if data.RequestBody != "" {
		builder = builder.SetRequestBody(data.RequestBody)
	}
	if data.ResponseBody != "" {
		builder = builder.SetResponseBody(data.ResponseBody)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm event: %w", err)
	}
	return nil
}

// LLMEventRecord is one stored LLM call, for the inspection CLI.
type LLMEventRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts limits LLM event queries.
type QueryOpts struct {
	Limit int
}

// QueryLLMEvents returns recent LLM events, newest first.
func (s *Store) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	q := s.client.LLMEvent.Query().
		Order(ent.Desc(llmevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	out := make([]LLMEventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, recordFromEntity(e))
	}
	return out, nil
}

// GetLLMEvent returns a single LLM event by ID, or nil if not found.
func (s *Store) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	e, err := s.client.LLMEvent.Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	rec := recordFromEntity(e)
	return &rec, nil
}

func recordFromEntity(e *ent.LLMEvent) LLMEventRecord {
	return LLMEventRecord{
		ID:           e.ID,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}

// LLMPurposeUsage aggregates token usage for one purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMUsageByPurpose aggregates LLM usage grouped by purpose.
func (s *Store) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	var rows []struct {
		Purpose string  `json:"purpose"`
		Calls   int     `json:"calls"`
		In      int     `json:"in_tokens"`
		Out     int     `json:"out_tokens"`
		Latency float64 `json:"avg_latency"`
	}
	err := s.client.LLMEvent.Query().
		GroupBy(llmevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmevent.FieldInputTokens), "in_tokens"),
			ent.As(ent.Sum(llmevent.FieldOutputTokens), "out_tokens"),
			ent.As(ent.Mean(llmevent.FieldLatencyMs), "avg_latency"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}

	out := make([]LLMPurposeUsage, 0, len(rows))
	for _, r := range rows {
		out = append(out, LLMPurposeUsage{
			Purpose:      r.Purpose,
			Calls:        r.Calls,
			InputTokens:  r.In,
			OutputTokens: r.Out,
			AvgLatencyMs: int64(r.Latency),
		})
	}
	return out, nil
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LLMUsageByModel aggregates LLM usage grouped by model, for cost estimates.
func (s *Store) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []struct {
		Model string `json:"model"`
		Calls int    `json:"calls"`
		In    int    `json:"in_tokens"`
		Out   int    `json:"out_tokens"`
	}
	err := s.client.LLMEvent.Query().
		GroupBy(llmevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmevent.FieldInputTokens), "in_tokens"),
			ent.As(ent.Sum(llmevent.FieldOutputTokens), "out_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}

	out := make([]LLMModelUsage, 0, len(rows))
	for _, r := range rows {
		out = append(out, LLMModelUsage{
			Model:        r.Model,
			Calls:        r.Calls,
			InputTokens:  r.In,
			OutputTokens: r.Out,
		})
	}
	return out, nil
}
