package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/gemini"
)

// AudioPartState is the per-part narration status. Audio state is local
// to this controller, not part of the shared workflow store: no other
// stage reads it.
type AudioPartState struct {
	IsLoading bool    `json:"isLoading"`
	AudioData string  `json:"audioData"`
	Error     string  `json:"error"`
	Progress  float64 `json:"progress"`
}

// audioCacheKey keys the session cache by title and part so retrying a
// later step never re-incurs the synthesis cost for identical text.
func audioCacheKey(title string, part int) string {
	return fmt.Sprintf("audio_part_%s_%d", title, part)
}

// GenerateAudioPart synthesizes narration for one story part (1-based).
// A cached payload for the same title and part is reused without a
// backend call.
func (c *Controller) GenerateAudioPart(ctx context.Context, part int) error {
	snap := c.store.Snapshot()
	if snap.Story == nil {
		return errors.New("no story to narrate")
	}
	if part < 1 || part > len(snap.Story.Parts) {
		return fmt.Errorf("part %d out of range (story has %d parts)", part, len(snap.Story.Parts))
	}

	key := audioCacheKey(snap.SelectedTitle, part)
	if cached, ok := c.kv.Get(key); ok {
		log.Debug().Int("part", part).Msg("Audio cache hit")
		c.setAudioState(part, AudioPartState{AudioData: cached, Progress: 100})
		return nil
	}

	c.mu.Lock()
	if c.audio[part].IsLoading {
		c.mu.Unlock()
		return ErrBusy
	}
	c.audio[part] = AudioPartState{IsLoading: true}
	c.mu.Unlock()

	onProgress := func(pct float64) {
		c.mu.Lock()
		state := c.audio[part]
		state.Progress = pct
		c.audio[part] = state
		c.mu.Unlock()
	}

	text := snap.Story.Parts[part-1].Content
	audio, err := c.synth.Synthesize(ctx, text, gemini.DefaultVoice, onProgress)
	if err != nil {
		log.Error().Err(err).Int("part", part).Msg("Audio generation failed")
		c.setAudioState(part, AudioPartState{Error: err.Error()})
		return err
	}

	c.kv.Set(key, audio)
	c.setAudioState(part, AudioPartState{AudioData: audio, Progress: 100})
	return nil
}

func (c *Controller) setAudioState(part int, state AudioPartState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.audio[part] = state
}

// AudioStates returns a snapshot of every part's audio status, keyed by
// 1-based part number.
func (c *Controller) AudioStates() map[int]AudioPartState {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[int]AudioPartState, len(c.audio))
	for k, v := range c.audio {
		out[k] = v
	}
	return out
}

// resetAudio drops the local per-part states (the KV cache survives, it
// is keyed by title).
func (c *Controller) resetAudio() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.audio = make(map[int]AudioPartState)
}
