package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash-lite", "gemini-2.5-flash-lite"}, // exact IDs pass through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchemaFromNoteDefinition(t *testing.T) {
	schema := buildGeminiSchema(noteSchema().Definition)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	msg, ok := schema.Properties["message"]
	if !ok {
		t.Fatal("message property missing")
	}
	if msg.Type != "STRING" {
		t.Fatalf("message type = %s, want STRING", msg.Type)
	}
}

func TestBuildGeminiSchemaKeywords(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "study summary",
		"properties": map[string]any{
			"tone": map[string]any{"type": "string", "enum": []any{"warm", "proud", "playful"}},
			"tables": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"tone"},
	}

	schema := buildGeminiSchema(def)

	if schema.Description != "study summary" {
		t.Fatalf("description = %q", schema.Description)
	}
	if len(schema.Properties["tone"].Enum) != 3 {
		t.Fatalf("enum values = %d, want 3", len(schema.Properties["tone"].Enum))
	}
	if schema.Properties["tables"].Type != "ARRAY" {
		t.Fatalf("tables type = %s, want ARRAY", schema.Properties["tables"].Type)
	}
	if schema.Properties["tables"].Items.Type != "INTEGER" {
		t.Fatalf("items type = %s, want INTEGER", schema.Properties["tables"].Items.Type)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "tone" {
		t.Fatalf("required = %v", schema.Required)
	}
}
