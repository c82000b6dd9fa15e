package gemini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/auth"
)

// Kind classifies every error the gateway can surface. Classification
// happens once, in normalize; step controllers only ever see *Error.
type Kind int

const (
	// KindCredentialMissing means no API key is configured. Terminal
	// for the attempt; the user must supply one.
	KindCredentialMissing Kind = iota

	// KindRateLimited is a backend 429. Carries a retry hint; the
	// gateway never retries on its own.
	KindRateLimited

	// KindBackend is any other structured backend error, message
	// passed through verbatim.
	KindBackend

	// KindMalformedResponse means the response body could not be
	// parsed as the expected structure, even after fence/brace
	// recovery. The raw text is embedded for diagnosis.
	KindMalformedResponse

	// KindUnknown covers network failures, timeouts and everything
	// else.
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindCredentialMissing:
		return "credential_missing"
	case KindRateLimited:
		return "rate_limited"
	case KindBackend:
		return "backend_error"
	case KindMalformedResponse:
		return "malformed_response"
	}
	return "unknown"
}

// Error is the normalized gateway error.
type Error struct {
	Kind    Kind
	Op      string // capability that failed, e.g. "generateTitles"
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindCredentialMissing:
		return e.Message
	case KindRateLimited:
		return fmt.Sprintf("[Rate Limit Exceeded] The AI service is busy. Please wait a moment and try again. Details: %s", e.Message)
	case KindBackend:
		return fmt.Sprintf("An API error occurred in %s: %s", e.Op, e.Message)
	case KindMalformedResponse:
		return fmt.Sprintf("Could not parse the AI response in %s: %s", e.Op, e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("An unknown error occurred in %s.", e.Op)
	}
	return fmt.Sprintf("An error occurred in %s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the gateway error kind, or KindUnknown for foreign
// errors.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

// normalize maps any error from a capability call onto the taxonomy.
// Priority: missing credential, rate limit, structured backend error,
// then unknown. Malformed responses are raised directly by the parsing
// sites, not here.
func normalize(op string, err error) *Error {
	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}

	if errors.Is(err, auth.ErrNoAPIKey) {
		return &Error{Kind: KindCredentialMissing, Op: op, Message: err.Error(), Err: err}
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 {
			log.Warn().Str("op", op).Int("code", apiErr.Code).Msg("Gemini rate limit hit")
			return &Error{Kind: KindRateLimited, Op: op, Message: apiErr.Message, Err: err}
		}
		log.Error().Str("op", op).Int("code", apiErr.Code).Str("status", apiErr.Status).Msg("Gemini API error")
		return &Error{Kind: KindBackend, Op: op, Message: apiErr.Message, Err: err}
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	if strings.Contains(msg, "429") ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "resource exhausted") ||
		strings.Contains(lower, "quota") {
		log.Warn().Str("op", op).Msg("Gemini rate limit hit (unstructured error)")
		return &Error{Kind: KindRateLimited, Op: op, Message: msg, Err: err}
	}

	log.Error().Err(err).Str("op", op).Msg("Unclassified gateway error")
	return &Error{Kind: KindUnknown, Op: op, Message: msg, Err: err}
}

// malformed wraps a parse failure, keeping the raw response text in the
// message so the offending output can be inspected.
func malformed(op string, parseErr error) *Error {
	return &Error{Kind: KindMalformedResponse, Op: op, Message: parseErr.Error(), Err: parseErr}
}
