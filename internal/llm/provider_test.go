package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderHandsOutCannedDrafts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"message": "Nine out of ten, amazing!"}`),
			Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		},
		MockResponse{Content: json.RawMessage(`{"message": "You are getting faster every day."}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "draft a note"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"message": "Nine out of ten, amazing!"}` {
		t.Fatalf("content = %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("input tokens = %d, want 10", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("stop reason = %q, want 'end'", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "another one"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"message": "You are getting faster every day."}` {
		t.Fatalf("content = %s", resp2.Content)
	}
}

func TestMockProviderEmptyQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"message": "ok"}`)},
	)

	req := Request{
		System:   "You help a parent encourage their child.",
		Messages: []Message{{Role: RoleUser, Content: "The child solved 5 problems."}},
		Schema:   noteSchema(),
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	got := mock.Calls[0]
	if got.System != req.System {
		t.Fatalf("system = %q", got.System)
	}
	if got.Schema == nil || got.Schema.Name != "note" {
		t.Fatalf("schema = %+v, want note", got.Schema)
	}
}

func TestMockProviderReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestRequestDefaultMaxTokens(t *testing.T) {
	if got := (Request{}).maxTokens(); got != defaultMaxTokens {
		t.Fatalf("maxTokens() = %d, want %d", got, defaultMaxTokens)
	}
	if got := (Request{MaxTokens: 64}).maxTokens(); got != 64 {
		t.Fatalf("maxTokens() = %d, want 64", got)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("purpose = %q, want 'unknown'", p)
	}

	ctx = WithPurpose(ctx, "encouragement")
	if p := PurposeFrom(ctx); p != "encouragement" {
		t.Fatalf("purpose = %q, want 'encouragement'", p)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "openrouter with key",
			cfg:     Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLookupCostKnownModels(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	// 1M input + 1M output at mini rates.
	if got := c.Cost(1_000_000, 1_000_000); got != 0.75 {
		t.Fatalf("cost = %v, want 0.75", got)
	}
	if LookupCost("some/unlisted-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
