package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

type fakeBackend struct {
	calls    []string
	voice    string
	response func(text string) ([]byte, error)
}

func (f *fakeBackend) SynthesizeChunk(ctx context.Context, text, voice string) ([]byte, error) {
	f.calls = append(f.calls, text)
	f.voice = voice
	return f.response(text)
}

func TestSynthesizeCombinesChunksInOrder(t *testing.T) {
	backend := &fakeBackend{response: func(text string) ([]byte, error) {
		return []byte(text[:1]), nil
	}}
	s := &Synthesizer{backend: backend, limit: 20}

	var progress []float64
	got, err := s.Synthesize(context.Background(), "Aaa aaa aaa. Bbb bbb. Ccc ccc ccc ccc.", "Enceladus",
		func(p float64) { progress = append(progress, p) })
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(got)
	if err != nil {
		t.Fatalf("result is not valid base64: %v", err)
	}
	if string(raw) != "ABC" {
		t.Errorf("combined audio = %q, want %q", raw, "ABC")
	}
	if backend.voice != "Enceladus" {
		t.Errorf("voice = %q, want %q", backend.voice, "Enceladus")
	}

	if len(progress) != 4 {
		t.Fatalf("got %d progress callbacks, want 4: %v", len(progress), progress)
	}
	if progress[0] != 0 || progress[len(progress)-1] != 100 {
		t.Errorf("progress = %v, want first 0 and last 100", progress)
	}
	for i := 1; i < len(progress); i++ {
		if progress[i] < progress[i-1] {
			t.Errorf("progress went backwards: %v", progress)
		}
	}
}

func TestSynthesizeSpacesPunctuationForPauses(t *testing.T) {
	backend := &fakeBackend{response: func(string) ([]byte, error) {
		return []byte{1}, nil
	}}
	s := NewSynthesizer(backend)

	if _, err := s.Synthesize(context.Background(), "Really?Yes!", "Enceladus", nil); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	joined := strings.Join(backend.calls, "")
	if !strings.Contains(joined, "? ") || !strings.Contains(joined, "! ") {
		t.Errorf("sent text %q lacks pause spacing after punctuation", joined)
	}
}

func TestSynthesizeEmptyChunkFailsWholeOperation(t *testing.T) {
	n := 0
	backend := &fakeBackend{response: func(string) ([]byte, error) {
		n++
		if n == 2 {
			return nil, nil
		}
		return []byte("audio"), nil
	}}
	s := &Synthesizer{backend: backend, limit: 15}

	got, err := s.Synthesize(context.Background(), "First chunk. Second chunk. Third chunk.", "Enceladus", nil)
	if !errors.Is(err, ErrNoAudioData) {
		t.Fatalf("Synthesize() error = %v, want ErrNoAudioData", err)
	}
	if got != "" {
		t.Errorf("Synthesize() returned partial audio %q, want empty", got)
	}
	if !strings.Contains(err.Error(), "chunk 2 of") {
		t.Errorf("error = %q, want failing chunk identified", err)
	}
}

func TestSynthesizeBackendErrorPropagates(t *testing.T) {
	boom := errors.New("quota exceeded")
	backend := &fakeBackend{response: func(string) ([]byte, error) {
		return nil, boom
	}}
	s := NewSynthesizer(backend)

	if _, err := s.Synthesize(context.Background(), "Some narration.", "Enceladus", nil); !errors.Is(err, boom) {
		t.Errorf("Synthesize() error = %v, want backend error", err)
	}
}
