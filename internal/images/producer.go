// Package images drives one-image-at-a-time generation across an
// ordered scene list, pacing calls to stay under the image backend's
// request-rate ceiling and resuming past already-produced images.
package images

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/workflow"
)

// DefaultDelay is the pause after each successful generation. The image
// backend allows roughly 5 requests per minute on the free tier; this
// keeps the loop comfortably under that.
const DefaultDelay = 12500 * time.Millisecond

// Backend is the single-image capability of the gateway.
type Backend interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Producer generates images sequentially, emitting transitions into the
// workflow store as it goes. Re-entrancy is the caller's problem: the
// owning controller holds the in-flight flag.
type Producer struct {
	backend Backend
	delay   time.Duration
}

// NewProducer creates a producer with the default inter-call delay.
func NewProducer(backend Backend) *Producer {
	return &Producer{backend: backend, delay: DefaultDelay}
}

// NewProducerWithDelay creates a producer with a custom pacing delay.
func NewProducerWithDelay(backend Backend, delay time.Duration) *Producer {
	return &Producer{backend: backend, delay: delay}
}

// Produce walks descriptions in ascending sequence order, skipping any
// sequence already present in existing (resume semantics), and emits
// one AddGeneratedImage per new image. On the first failure it records
// an error naming the 1-based index, clears progress and stops; images
// produced so far stay in the store, so re-invoking continues from the
// point of failure. The returned error is the failure, nil when every
// description has an image.
func (p *Producer) Produce(ctx context.Context, descriptions []workflow.ImageDescription, existing []workflow.GeneratedImage, dispatch func(workflow.Transition)) error {
	descs := append([]workflow.ImageDescription(nil), descriptions...)
	sort.Slice(descs, func(i, j int) bool { return descs[i].Sequence < descs[j].Sequence })

	produced := make(map[int]bool, len(existing))
	for _, img := range existing {
		produced[img.SequenceNumber] = true
	}

	total := len(descs)
	for i, desc := range descs {
		if err := ctx.Err(); err != nil {
			dispatch(workflow.SetProgress{})
			return err
		}
		if produced[desc.Sequence] {
			continue
		}

		dispatch(workflow.SetProgress{Progress: &workflow.Progress{
			Message:    fmt.Sprintf("Generating image %d of %d: %q", i+1, total, desc.Scene),
			Percentage: float64(i+1) / float64(total) * 100,
		}})

		encoded, err := p.backend.GenerateImage(ctx, desc.Prompt)
		if err != nil {
			log.Error().Err(err).Int("sequence", desc.Sequence).Msg("Image generation failed, halting loop")
			dispatch(workflow.SetError{Message: fmt.Sprintf("Failed to generate image %d. %s", i+1, err)})
			dispatch(workflow.SetProgress{})
			return err
		}

		dispatch(workflow.AddGeneratedImage{Image: workflow.GeneratedImage{
			ID:             uuid.NewString(),
			SequenceNumber: desc.Sequence,
			Description:    desc.Scene,
			EncodedImage:   encoded,
		}})
		log.Debug().Int("sequence", desc.Sequence).Int("total", total).Msg("Image generated")

		// pacing sleep is deliberately not cancellable mid-wait
		time.Sleep(p.delay)
	}

	dispatch(workflow.SetProgress{})
	return nil
}
