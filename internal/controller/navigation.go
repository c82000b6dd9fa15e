package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/workflow"
)

// CanAdvance reports whether the current stage's advance gate is open.
func (c *Controller) CanAdvance() bool {
	snap := c.store.Snapshot()
	switch snap.CurrentStep {
	case workflow.StepTitles:
		return snap.SelectedTitle != "" && !snap.IsLoading
	case workflow.StepStory:
		return snap.Story != nil && !snap.IsLoading
	case workflow.StepAudio:
		// audio completion is not required to continue
		return snap.Story != nil
	case workflow.StepImageDescriptions:
		return len(snap.ImageDescriptions) > 0 && !snap.IsLoading
	case workflow.StepImages:
		return len(snap.ImageDescriptions) > 0 &&
			len(snap.GeneratedImages) == len(snap.ImageDescriptions) &&
			!c.stageBusy(workflow.StepImages)
	case workflow.StepYoutubeDescription:
		return snap.YoutubeDescription != "" && !snap.IsLoading
	}
	return false
}

// Advance moves to the next step. Advancing is always an explicit user
// action; the gate for the current stage must be open.
func (c *Controller) Advance() error {
	snap := c.store.Snapshot()
	if snap.CurrentStep >= workflow.StepThumbnail {
		return errors.New("already at the final step")
	}
	if !c.CanAdvance() {
		return fmt.Errorf("step %d is not complete", snap.CurrentStep)
	}
	c.store.Dispatch(workflow.NextStep{})
	return nil
}

// Back moves to the previous step. Retreating is always available
// except while a generation is in flight.
func (c *Controller) Back() error {
	snap := c.store.Snapshot()
	if snap.CurrentStep <= workflow.StepTitles {
		return errors.New("already at the first step")
	}
	if snap.IsLoading || c.anyBusy() {
		return errors.New("cannot go back while a generation is in progress")
	}
	c.store.Dispatch(workflow.PreviousStep{})
	return nil
}

// Reset restarts the wizard, preserving settings. In-flight work is
// abandoned; its eventual result is discarded by the session guard.
func (c *Controller) Reset() {
	c.store.Dispatch(workflow.Reset{})
	c.resetAudio()
	log.Info().Msg("Workflow reset")
}

// UpdateSettings applies a partial settings change, enforcing the
// description-count bounds.
func (c *Controller) UpdateSettings(numberOfDescriptions *int, sheetURL *string) error {
	if numberOfDescriptions != nil {
		n := *numberOfDescriptions
		if n < workflow.MinDescriptionCount || n > workflow.MaxDescriptionCount {
			return fmt.Errorf("numberOfDescriptions must be between %d and %d",
				workflow.MinDescriptionCount, workflow.MaxDescriptionCount)
		}
	}
	c.store.Dispatch(workflow.UpdateSettings{
		NumberOfDescriptions: numberOfDescriptions,
		SheetURL:             sheetURL,
	})
	return nil
}

// AutoTrigger evaluates the active step's entry condition and runs its
// generation when the required upstream artifact exists and the step's
// own artifact does not. Title and audio stages never auto-trigger;
// they are user-initiated.
func (c *Controller) AutoTrigger(ctx context.Context) {
	snap := c.store.Snapshot()
	switch snap.CurrentStep {
	case workflow.StepStory:
		if snap.SelectedTitle != "" && snap.Story == nil {
			c.runLogged(ctx, "story", c.GenerateStory)
		}
	case workflow.StepImageDescriptions:
		if snap.Story != nil && len(snap.ImageDescriptions) == 0 {
			c.runLogged(ctx, "image_descriptions", c.GenerateImageDescriptions)
		}
	case workflow.StepImages:
		if len(snap.ImageDescriptions) > 0 && len(snap.GeneratedImages) < len(snap.ImageDescriptions) {
			c.runLogged(ctx, "images", c.ProduceImages)
		}
	case workflow.StepYoutubeDescription:
		if snap.Story != nil && snap.YoutubeDescription == "" {
			c.runLogged(ctx, "youtube_description", c.GenerateYoutubeDescription)
		}
	case workflow.StepThumbnail:
		if snap.SelectedTitle != "" && snap.Story != nil && snap.Story.Summary != "" && snap.ThumbnailDescription == "" {
			c.runLogged(ctx, "thumbnail", c.GenerateThumbnail)
		}
	}
}

func (c *Controller) runLogged(ctx context.Context, stage string, fn func(context.Context) error) {
	if err := fn(ctx); err != nil && !errors.Is(err, ErrBusy) {
		log.Warn().Err(err).Str("stage", stage).Msg("Stage generation failed")
	}
}
