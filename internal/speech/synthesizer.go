package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrNoAudioData is returned when a chunk (or the whole narration)
// yields no audio payload. Partial audio is never returned: a narration
// with a silent gap in the middle is not independently useful.
var ErrNoAudioData = errors.New("audio generation did not return valid data")

// Backend is the streaming speech capability of the gateway.
type Backend interface {
	SynthesizeChunk(ctx context.Context, text, voice string) ([]byte, error)
}

// punctuation spacing the TTS model needs to pause naturally
var ttsReplacer = strings.NewReplacer(
	"...", "... ",
	"?", "? ",
	"!", "! ",
)

// Synthesizer drives chunked narration synthesis. It does not retry
// failed chunks; a caller retries by re-invoking the whole operation,
// and is expected to cache full results keyed by content+voice.
type Synthesizer struct {
	backend Backend
	limit   int
}

// NewSynthesizer creates a synthesizer with the default chunk budget.
func NewSynthesizer(backend Backend) *Synthesizer {
	return &Synthesizer{backend: backend, limit: CharLimit}
}

// Synthesize converts text to a single base64 audio payload. onProgress
// (optional) receives the completed-chunk percentage before each chunk
// is issued, and 100 when all chunks are done. If any chunk returns no
// audio the whole operation fails; earlier chunk audio is discarded.
func (s *Synthesizer) Synthesize(ctx context.Context, text, voice string, onProgress func(float64)) (string, error) {
	chunks := SplitChunks(text, s.limit)
	log.Debug().Int("chunks", len(chunks)).Int("text_length", len(text)).Str("voice", voice).Msg("Starting chunked speech synthesis")

	var combined []byte
	for i, chunk := range chunks {
		if onProgress != nil {
			onProgress(float64(i) / float64(len(chunks)) * 100)
		}

		audio, err := s.backend.SynthesizeChunk(ctx, ttsReplacer.Replace(chunk), voice)
		if err != nil {
			return "", err
		}
		if len(audio) == 0 {
			log.Error().Int("chunk", i+1).Int("chunks", len(chunks)).Msg("Speech chunk returned no audio data")
			return "", fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), ErrNoAudioData)
		}
		combined = append(combined, audio...)
	}

	if onProgress != nil {
		onProgress(100)
	}
	if len(combined) == 0 {
		return "", ErrNoAudioData
	}

	log.Debug().Int("audio_bytes", len(combined)).Msg("Chunked speech synthesis complete")
	return base64.StdEncoding.EncodeToString(combined), nil
}
