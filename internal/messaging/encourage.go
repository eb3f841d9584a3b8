package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kukulab/kuku/internal/llm"
)

const encourageSystem = `You help a parent encourage their elementary-school child
who is practicing multiplication tables. Write one short, warm message in
plain language a young child understands. No emoji. At most two sentences.`

// encourageSchema constrains the response to a single message field so
// the provider's structured-output validation applies.
var encourageSchema = &llm.Schema{
	Name: "encouragement",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":      "string",
				"maxLength": 300,
			},
		},
		"required":             []string{"message"},
		"additionalProperties": false,
	},
}

// DraftEncouragement asks the LLM for a parent reply suggestion based on
// the child's latest study report. The caller decides whether to send
// it.
func DraftEncouragement(ctx context.Context, provider llm.Provider, session StudySession) (string, error) {
	prompt := fmt.Sprintf(
		"The child solved %d problems with %d correct (%.0f%%), averaging %.1f seconds per answer. Suggest an encouraging reply.",
		session.TotalProblems, session.CorrectAnswers, session.CorrectRate()*100, session.AverageTimeSec,
	)

	resp, err := provider.Generate(llm.WithPurpose(ctx, "encouragement"), llm.Request{
		System:    encourageSystem,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    encourageSchema,
		MaxTokens: 200,
	})
	if err != nil {
		return "", fmt.Errorf("draft encouragement: %w", err)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("draft encouragement: decode response: %w", err)
	}
	return out.Message, nil
}
