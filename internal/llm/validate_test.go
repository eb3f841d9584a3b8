package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// noteSchema mirrors the shape the messaging layer requests: one short
// message field, nothing else.
func noteSchema() *Schema {
	return &Schema{
		Name:        "note",
		Description: "A short note from parent to child",
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
}

func TestValidateResponseAcceptsNote(t *testing.T) {
	raw := json.RawMessage(`{"message": "Nine out of ten, you are getting so fast!"}`)
	if err := validateResponse(noteSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseMissingMessage(t *testing.T) {
	raw := json.RawMessage(`{}`)
	err := validateResponse(noteSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestValidateResponseRejectsExtraFields(t *testing.T) {
	raw := json.RawMessage(`{"message": "Well done!", "mood": "proud"}`)
	if err := validateResponse(noteSchema(), raw); err == nil {
		t.Fatal("expected error for additional property")
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"message": 42}`)
	err := validateResponse(noteSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestValidateResponseOverlongMessage(t *testing.T) {
	long := make([]byte, 0, 400)
	for range 40 {
		long = append(long, "wonderful "...)
	}
	raw, _ := json.Marshal(map[string]string{"message": string(long)})
	if err := validateResponse(noteSchema(), raw); err == nil {
		t.Fatal("expected error for message over maxLength")
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`You did great today!`) // plain text, not JSON
	err := validateResponse(noteSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestValidateResponseEmpty(t *testing.T) {
	if err := validateResponse(noteSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponseNilSchemaPassesAnything(t *testing.T) {
	raw := json.RawMessage(`{"anything": "goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	s := noteSchema()
	raw := json.RawMessage(`{"message": "Great focus today!"}`)
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Fatal("schema not cached after validation")
	}
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
