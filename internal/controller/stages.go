package controller

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/sheets"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/workflow"
)

// ErrBusy is returned when a stage is asked to generate while its
// previous generation is still in flight.
var ErrBusy = errors.New("generation already in progress for this stage")

// GenerateTitles starts a fresh workflow run for topic and generates
// the candidate titles. A new session id is issued for the run.
func (c *Controller) GenerateTitles(ctx context.Context, topic string) error {
	if topic == "" {
		c.store.Dispatch(workflow.SetError{Message: "Please enter a topic."})
		return errors.New("topic is required")
	}
	if !c.tryAcquire(workflow.StepTitles) {
		return ErrBusy
	}
	defer c.release(workflow.StepTitles)

	sessionID := uuid.NewString()
	c.store.Dispatch(workflow.SetSessionID{ID: sessionID})
	c.store.Dispatch(workflow.StartWorkflow{Topic: topic})
	log.Info().Str("session_id", sessionID).Str("topic", topic).Msg("Workflow started")

	titles, err := c.gw.GenerateTitles(ctx, topic)
	if !c.sameSession(sessionID) {
		log.Debug().Str("session_id", sessionID).Msg("Discarding late title result for abandoned session")
		return nil
	}
	if err != nil {
		c.store.Dispatch(workflow.SetError{Message: err.Error()})
		return err
	}
	c.store.Dispatch(workflow.SetTitles{Titles: titles})
	return nil
}

// SelectTitle records the user's choice. The title must be one of the
// generated candidates; the store does not enforce membership, the
// controller does.
func (c *Controller) SelectTitle(title string) error {
	snap := c.store.Snapshot()
	for _, t := range snap.Titles {
		if t == title {
			c.store.Dispatch(workflow.SelectTitle{Title: title})
			return nil
		}
	}
	return errors.New("title is not one of the generated candidates")
}

// GenerateStory generates the four-part script for the selected title.
func (c *Controller) GenerateStory(ctx context.Context) error {
	snap := c.store.Snapshot()
	if snap.SelectedTitle == "" {
		c.store.Dispatch(workflow.SetError{Message: "No title selected."})
		return errors.New("no title selected")
	}
	if !c.tryAcquire(workflow.StepStory) {
		return ErrBusy
	}
	defer c.release(workflow.StepStory)

	c.store.Dispatch(workflow.SetLoading{Loading: true})
	story, err := c.gw.GenerateStory(ctx, snap.SelectedTitle)
	if !c.sameSession(snap.SessionID) {
		log.Debug().Msg("Discarding late story result for abandoned session")
		return nil
	}
	if err != nil {
		c.store.Dispatch(workflow.SetError{Message: err.Error()})
		return err
	}
	c.store.Dispatch(workflow.SetStory{Story: story})

	c.logToSheet(ctx, map[string]any{
		"step":       "story_creation",
		"title":      snap.SelectedTitle,
		"summary":    story.Summary,
		"characters": story.Characters,
		"locations":  story.Locations,
	})
	return nil
}

// GenerateImageDescriptions generates the scene list from the story
// summary, using the configured description count.
func (c *Controller) GenerateImageDescriptions(ctx context.Context) error {
	snap := c.store.Snapshot()
	if snap.Story == nil || snap.Story.Summary == "" {
		c.store.Dispatch(workflow.SetError{Message: "Story summary is not available."})
		return errors.New("story summary is not available")
	}
	if !c.tryAcquire(workflow.StepImageDescriptions) {
		return ErrBusy
	}
	defer c.release(workflow.StepImageDescriptions)

	c.store.Dispatch(workflow.SetLoading{Loading: true})
	descriptions, err := c.gw.GenerateImageDescriptions(ctx, snap.Story.Summary, snap.Settings.NumberOfDescriptions)
	if !c.sameSession(snap.SessionID) {
		log.Debug().Msg("Discarding late description result for abandoned session")
		return nil
	}
	if err != nil {
		c.store.Dispatch(workflow.SetError{Message: err.Error()})
		return err
	}
	c.store.Dispatch(workflow.SetImageDescriptions{Descriptions: descriptions})

	c.logToSheet(ctx, map[string]any{
		"step":  "image_descriptions",
		"title": snap.SelectedTitle,
		"count": len(descriptions),
	})
	return nil
}

// ProduceImages runs the sequential image loop for every description
// that does not have an image yet. Safe to re-invoke after a failure:
// completed images are skipped.
func (c *Controller) ProduceImages(ctx context.Context) error {
	snap := c.store.Snapshot()
	if len(snap.ImageDescriptions) == 0 {
		return errors.New("no image descriptions to generate from")
	}
	if !c.tryAcquire(workflow.StepImages) {
		return ErrBusy
	}
	defer c.release(workflow.StepImages)

	c.store.Dispatch(workflow.SetLoading{Loading: true})

	sessionID := snap.SessionID
	dispatch := func(t workflow.Transition) {
		if c.sameSession(sessionID) {
			c.store.Dispatch(t)
		}
	}
	return c.producer.Produce(ctx, snap.ImageDescriptions, snap.GeneratedImages, dispatch)
}

// GenerateYoutubeDescription generates the SEO description.
func (c *Controller) GenerateYoutubeDescription(ctx context.Context) error {
	snap := c.store.Snapshot()
	if snap.Story == nil || snap.SelectedTitle == "" {
		c.store.Dispatch(workflow.SetError{Message: "Story summary or title is not available."})
		return errors.New("story or title is not available")
	}
	if !c.tryAcquire(workflow.StepYoutubeDescription) {
		return ErrBusy
	}
	defer c.release(workflow.StepYoutubeDescription)

	c.store.Dispatch(workflow.SetLoading{Loading: true})
	description, err := c.gw.GenerateYoutubeDescription(ctx, snap.SelectedTitle, snap.Story.Summary)
	if !c.sameSession(snap.SessionID) {
		return nil
	}
	if err != nil {
		c.store.Dispatch(workflow.SetError{Message: err.Error()})
		return err
	}
	c.store.Dispatch(workflow.SetYoutubeDescription{Description: description})

	c.logToSheet(ctx, map[string]any{
		"step":        "youtube_description",
		"title":       snap.SelectedTitle,
		"description": description,
	})
	return nil
}

// GenerateThumbnail generates the thumbnail prompt for the final step.
func (c *Controller) GenerateThumbnail(ctx context.Context) error {
	snap := c.store.Snapshot()
	if snap.SelectedTitle == "" || snap.Story == nil || snap.Story.Summary == "" {
		c.store.Dispatch(workflow.SetError{Message: "Title or story summary missing."})
		return errors.New("title or story summary missing")
	}
	if !c.tryAcquire(workflow.StepThumbnail) {
		return ErrBusy
	}
	defer c.release(workflow.StepThumbnail)

	c.store.Dispatch(workflow.SetLoading{Loading: true})
	description, err := c.gw.GenerateThumbnailDescription(ctx, snap.SelectedTitle, snap.Story.Summary)
	if !c.sameSession(snap.SessionID) {
		return nil
	}
	if err != nil {
		c.store.Dispatch(workflow.SetError{Message: err.Error()})
		return err
	}
	c.store.Dispatch(workflow.SetThumbnailDescription{Description: description})
	return nil
}

// SendFinalPackage forwards the assembled content package to the sheet
// endpoint. The outcome is reported to the caller but never becomes a
// stage error: a failed background log must not block the user.
func (c *Controller) SendFinalPackage(ctx context.Context) sheets.Result {
	snap := c.store.Snapshot()
	data := map[string]any{
		"step":                 "final_package",
		"topic":                snap.Topic,
		"title":                snap.SelectedTitle,
		"youtubeDescription":   snap.YoutubeDescription,
		"thumbnailDescription": snap.ThumbnailDescription,
		"imageCount":           len(snap.GeneratedImages),
	}
	if snap.Story != nil {
		data["summary"] = snap.Story.Summary
	}
	result := c.sink.Send(ctx, snap.SessionID, snap.Settings.SheetURL, data)
	if !result.Success {
		log.Warn().Str("message", result.Message).Msg("Final package sheet send failed")
	}
	return result
}

// logToSheet is the per-stage fire-and-forget artifact log.
func (c *Controller) logToSheet(ctx context.Context, data map[string]any) {
	snap := c.store.Snapshot()
	result := c.sink.Send(ctx, snap.SessionID, snap.Settings.SheetURL, data)
	if !result.Success {
		log.Warn().Str("message", result.Message).Msg("Sheet logging failed; continuing")
	}
}
