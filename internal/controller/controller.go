// Package controller implements the seven step controllers of the
// wizard. Each stage reads the workflow store, triggers its generation
// call when the entry condition holds, and dispatches transitions back.
// Re-entrancy is guarded by per-stage busy flags held here, outside the
// store, so a re-render or duplicate request never double-fires a
// generation.
package controller

import (
	"context"
	"sync"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/images"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/sheets"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/speech"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/store"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/workflow"
)

// Gateway is the request/response slice of the generation backend the
// controllers call directly. The streaming speech and single-image
// capabilities are consumed through the speech and images packages.
type Gateway interface {
	GenerateTitles(ctx context.Context, topic string) ([]string, error)
	GenerateStory(ctx context.Context, title string) (*workflow.Story, error)
	GenerateImageDescriptions(ctx context.Context, storySummary string, count int) ([]workflow.ImageDescription, error)
	GenerateThumbnailDescription(ctx context.Context, title, storySummary string) (string, error)
	GenerateYoutubeDescription(ctx context.Context, title, storySummary string) (string, error)
}

// Controller owns the stage logic for one interactive session.
type Controller struct {
	store    *workflow.Store
	gw       Gateway
	synth    *speech.Synthesizer
	producer *images.Producer
	sink     *sheets.Sink
	kv       store.KV

	mu    sync.Mutex
	busy  map[int]bool
	audio map[int]AudioPartState
}

// New wires a controller over its collaborators.
func New(st *workflow.Store, gw Gateway, synth *speech.Synthesizer, producer *images.Producer, sink *sheets.Sink, kv store.KV) *Controller {
	return &Controller{
		store:    st,
		gw:       gw,
		synth:    synth,
		producer: producer,
		sink:     sink,
		kv:       kv,
		busy:     make(map[int]bool),
		audio:    make(map[int]AudioPartState),
	}
}

// Store exposes the workflow store for snapshot reads by the shell.
func (c *Controller) Store() *workflow.Store { return c.store }

// tryAcquire marks a stage in flight. Returns false when the stage is
// already generating.
func (c *Controller) tryAcquire(stage int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy[stage] {
		return false
	}
	c.busy[stage] = true
	return true
}

func (c *Controller) release(stage int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.busy, stage)
}

func (c *Controller) anyBusy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.busy) > 0
}

func (c *Controller) stageBusy(stage int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy[stage]
}

// ImagesInFlight reports whether the sequential image loop is running.
func (c *Controller) ImagesInFlight() bool {
	return c.stageBusy(workflow.StepImages)
}

// sameSession reports whether the run the result belongs to is still
// the active one. Late results from an abandoned run are discarded by
// the stages instead of being applied to state.
func (c *Controller) sameSession(id string) bool {
	return c.store.Snapshot().SessionID == id
}
