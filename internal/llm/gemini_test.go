package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"analysis": map[string]any{"type": "string"},
			"severity": map[string]any{
				"type": "string",
				"enum": []any{"Normal", "Mild", "Moderate", "Severe"},
			},
			"confidence": map[string]any{"type": "number"},
			"recommendations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"analysis", "severity"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["analysis"].Type != genai.TypeString {
		t.Fatalf("expected STRING for analysis, got %s", schema.Properties["analysis"].Type)
	}
	if schema.Properties["confidence"].Type != genai.TypeNumber {
		t.Fatalf("expected NUMBER for confidence, got %s", schema.Properties["confidence"].Type)
	}
	if len(schema.Properties["severity"].Enum) != 4 {
		t.Fatalf("expected 4 enum values, got %d", len(schema.Properties["severity"].Enum))
	}
	if schema.Properties["recommendations"].Type != genai.TypeArray {
		t.Fatalf("expected ARRAY for recommendations, got %s", schema.Properties["recommendations"].Type)
	}
	if schema.Properties["recommendations"].Items.Type != genai.TypeString {
		t.Fatalf("expected STRING items, got %s", schema.Properties["recommendations"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiContents(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "Summarize the examination."},
		{Role: RoleAssistant, Content: "{}"},
	})
	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" {
		t.Errorf("expected user role, got %q", contents[0].Role)
	}
	if contents[1].Role != "model" {
		t.Errorf("expected model role, got %q", contents[1].Role)
	}
}
