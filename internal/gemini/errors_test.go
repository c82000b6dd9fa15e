package gemini

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/auth"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/jsonutil"
)

func TestNormalizeClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"missing credential", auth.ErrNoAPIKey, KindCredentialMissing},
		{"wrapped missing credential", fmt.Errorf("resolving key: %w", auth.ErrNoAPIKey), KindCredentialMissing},
		{"structured 429", &genai.APIError{Code: 429, Message: "resource exhausted"}, KindRateLimited},
		{"structured backend", &genai.APIError{Code: 500, Message: "internal failure", Status: "INTERNAL"}, KindBackend},
		{"unstructured 429", errors.New("googleapi: Error 429: too many requests"), KindRateLimited},
		{"unstructured rate limit phrase", errors.New("upstream rate limit reached"), KindRateLimited},
		{"unstructured quota", errors.New("Quota exceeded for model"), KindRateLimited},
		{"network failure", errors.New("dial tcp 142.250.0.1:443: i/o timeout"), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize("generateTitles", tt.err)
			if got.Kind != tt.want {
				t.Errorf("normalize(%v).Kind = %v, want %v", tt.err, got.Kind, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("normalized error does not wrap the original %v", tt.err)
			}
		})
	}
}

func TestNormalizePassesThroughGatewayErrors(t *testing.T) {
	orig := &Error{Kind: KindMalformedResponse, Op: "generateStory", Message: "bad json"}
	got := normalize("generateTitles", fmt.Errorf("story stage: %w", orig))
	if got != orig {
		t.Errorf("normalize() re-wrapped an already normalized error: %v", got)
	}
}

func TestRateLimitedErrorMessage(t *testing.T) {
	err := normalize("generateImage", &genai.APIError{Code: 429, Message: "resource exhausted"})
	msg := err.Error()
	if !strings.Contains(msg, "[Rate Limit Exceeded]") {
		t.Errorf("rate limited message = %q, want retry banner", msg)
	}
	if !strings.Contains(msg, "resource exhausted") {
		t.Errorf("rate limited message = %q, want backend detail included", msg)
	}
}

func TestBackendErrorMessageVerbatim(t *testing.T) {
	err := normalize("generateStory", &genai.APIError{Code: 503, Message: "model overloaded"})
	if !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("backend message = %q, want backend text passed through", err.Error())
	}
}

func TestMalformedResponseKeepsRawText(t *testing.T) {
	raw := `Here you go: {"titles": [}`
	_, parseErr := jsonutil.ParseJSON[titlesResponse](raw)
	if parseErr == nil {
		t.Fatal("expected a parse failure for truncated JSON")
	}

	err := malformed("generateTitles", parseErr)
	if err.Kind != KindMalformedResponse {
		t.Fatalf("Kind = %v, want KindMalformedResponse", err.Kind)
	}
	if !strings.Contains(err.Error(), raw) {
		t.Errorf("malformed error %q does not embed the raw response", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(&Error{Kind: KindRateLimited}); got != KindRateLimited {
		t.Errorf("KindOf(gateway error) = %v, want KindRateLimited", got)
	}
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(foreign error) = %v, want KindUnknown", got)
	}
}
