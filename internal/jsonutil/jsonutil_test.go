package jsonutil

import (
	"strings"
	"testing"
)

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n[1, 2]\n```", "[1, 2]"},
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
		{"multiline body", "```json\n{\n  \"a\": 1\n}\n```", "{\n  \"a\": 1\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkdownFences(tt.in); got != tt.want {
				t.Errorf("StripMarkdownFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	got, err := ExtractJSON(`Here are your titles: {"titles": ["a", "b"]} hope that helps!`)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if got != `{"titles": ["a", "b"]}` {
		t.Errorf("ExtractJSON() = %q", got)
	}
}

func TestExtractJSONArrayBeforeObject(t *testing.T) {
	got, err := ExtractJSON(`[{"sequence": 1}]`)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if got != `[{"sequence": 1}]` {
		t.Errorf("ExtractJSON() = %q", got)
	}
}

func TestExtractJSONNoContent(t *testing.T) {
	if _, err := ExtractJSON("nothing here"); err == nil {
		t.Error("ExtractJSON() error = nil, want failure on prose without JSON")
	}
}

func TestParseJSONRecoversWrappedPayload(t *testing.T) {
	type payload struct {
		Titles []string `json:"titles"`
	}
	got, err := ParseJSON[payload]("```json\n{\"titles\": [\"first\", \"second\"]}\n```")
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if len(got.Titles) != 2 || got.Titles[0] != "first" {
		t.Errorf("ParseJSON() = %+v", got)
	}
}

func TestParseJSONErrorIncludesRawText(t *testing.T) {
	raw := `Here you go: {"titles": [}`
	_, err := ParseJSON[map[string]any](raw)
	if err == nil {
		t.Fatal("ParseJSON() error = nil, want parse failure")
	}
	if !strings.Contains(err.Error(), raw) {
		t.Errorf("error %q does not include the raw response text", err)
	}
}

func TestPreviewTruncates(t *testing.T) {
	long := strings.Repeat("x", 400)
	got := Preview(long, 300)
	if len(got) != 303 || !strings.HasSuffix(got, "...") {
		t.Errorf("Preview() length = %d, want 303 with ellipsis", len(got))
	}
	if got := Preview("short", 300); got != "short" {
		t.Errorf("Preview(short) = %q", got)
	}
}
