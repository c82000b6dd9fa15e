package gemini

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// SynthesizeChunk streams speech synthesis for one chunk of narration
// text and returns the accumulated encoded audio payload. Chunking and
// the no-audio failure policy live in the speech package; this is the
// raw streaming capability.
func (g *Gateway) SynthesizeChunk(ctx context.Context, text, voice string) ([]byte, error) {
	const op = "generateSpeech"

	client, err := g.ai(ctx, op)
	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		Temperature:        genai.Ptr[float32](1.0),
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}

	start := time.Now()
	var audio []byte
	for resp, err := range client.Models.GenerateContentStream(ctx, ModelTTS, genai.Text(text), config) {
		if err != nil {
			return nil, normalize(op, err)
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if part.InlineData != nil {
					audio = append(audio, part.InlineData.Data...)
				}
			}
		}
	}

	log.Debug().
		Str("voice", voice).
		Int("text_length", len(text)).
		Int("audio_bytes", len(audio)).
		Dur("duration", time.Since(start)).
		Msg("Speech chunk synthesized")
	return audio, nil
}
