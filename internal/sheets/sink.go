// Package sheets forwards intermediate artifacts to an optional
// spreadsheet webhook. Delivery is best effort: a failed send is
// reported to the caller but must never block or fail the pipeline.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Result reports the outcome of the local dispatch. Like a no-cors
// browser fetch, the remote endpoint's verdict is not observable; only
// transport failures count as failures.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type payload struct {
	SessionID string         `json:"sessionId"`
	Data      map[string]any `json:"data"`
}

// Sink posts workflow artifacts to the configured sheet endpoint.
type Sink struct {
	client *http.Client
}

// NewSink creates a sink with a short dispatch timeout.
func NewSink() *Sink {
	return &Sink{client: &http.Client{Timeout: 10 * time.Second}}
}

// Send posts data for the session to sheetURL. An empty sheetURL is a
// configured no-op, not an error. A missing session id is a failure
// because rows cannot be correlated without one.
func (s *Sink) Send(ctx context.Context, sessionID, sheetURL string, data map[string]any) Result {
	if sheetURL == "" {
		return Result{Success: true, Message: "sheet URL not configured; skipping save"}
	}
	if sessionID == "" {
		return Result{Success: false, Message: "session id missing; cannot save"}
	}

	body, err := json.Marshal(payload{SessionID: sessionID, Data: data})
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("failed to encode sheet payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sheetURL, bytes.NewReader(body))
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("failed to build sheet request: %v", err)}
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("Sheet dispatch failed")
		return Result{Success: false, Message: fmt.Sprintf("failed to save data to sheet: %v", err)}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	log.Debug().Str("session_id", sessionID).Int("fields", len(data)).Msg("Data dispatched to sheet")
	return Result{Success: true, Message: "data sent to sheet"}
}
