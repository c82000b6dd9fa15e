// Package jsonutil extracts and parses JSON from model responses that
// may arrive wrapped in markdown code fences or embedded in prose.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripMarkdownFences removes ```json ... ``` or ``` ... ``` wrapping.
// Returns the content between the fences, or the original text if no
// fences are found.
func StripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return text
	}

	endIdx := len(lines) - 1
	for i := len(lines) - 1; i >= 1; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			endIdx = i
			break
		}
	}

	return strings.Join(lines[1:endIdx], "\n")
}

// ExtractJSON returns the JSON object or array embedded in text: the
// substring between the first opening brace/bracket and the last
// matching closing one.
func ExtractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)

	objIdx := strings.Index(text, "{")
	arrIdx := strings.Index(text, "[")
	if objIdx == -1 && arrIdx == -1 {
		return "", fmt.Errorf("no JSON content found")
	}

	start := objIdx
	endChar := "}"
	if objIdx == -1 || (arrIdx != -1 && arrIdx < objIdx) {
		start = arrIdx
		endChar = "]"
	}

	text = text[start:]
	end := strings.LastIndex(text, endChar)
	if end == -1 {
		return "", fmt.Errorf("no closing %s found", endChar)
	}
	return text[:end+1], nil
}

// ParseJSON strips fences, extracts the embedded JSON and unmarshals it
// into T. The returned error includes a preview of the offending text so
// malformed model output can be diagnosed.
func ParseJSON[T any](raw string) (T, error) {
	var zero T

	jsonStr, err := ExtractJSON(StripMarkdownFences(raw))
	if err != nil {
		return zero, fmt.Errorf("%w (raw text: %s)", err, Preview(raw, 300))
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("invalid JSON: %w (raw text: %s)", err, Preview(raw, 300))
	}
	return result, nil
}

// Preview truncates s to at most n bytes for inclusion in error
// messages and logs.
func Preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
