package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/controller"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/export"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/store"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/workflow"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func httpError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func registerRoutes(mux *http.ServeMux, ctrl *controller.Controller, kv store.KV) {
	// state snapshot polled by the browser
	mux.HandleFunc("/api/state", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			httpError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"state":      ctrl.Store().Snapshot(),
			"audio":      ctrl.AudioStates(),
			"canAdvance": ctrl.CanAdvance(),
		})
	})

	mux.HandleFunc("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		var req struct {
			NumberOfDescriptions *int    `json:"numberOfDescriptions"`
			SheetURL             *string `json:"sheetUrl"`
			APIKey               *string `json:"apiKey"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.APIKey != nil {
			kv.Set(store.KeyAPIKey, *req.APIKey)
			log.Info().Msg("API key updated from settings")
		}
		if err := ctrl.UpdateSettings(req.NumberOfDescriptions, req.SheetURL); err != nil {
			httpError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, ctrl.Store().Snapshot().Settings)
	})

	mux.HandleFunc("/api/workflow/start", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		var req struct {
			Topic string `json:"topic"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := ctrl.GenerateTitles(r.Context(), req.Topic); err != nil {
			if errors.Is(err, controller.ErrBusy) {
				httpError(w, http.StatusConflict, err.Error())
				return
			}
			// the stage error is already in the store; report it too
			httpError(w, http.StatusBadGateway, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, ctrl.Store().Snapshot())
	})

	mux.HandleFunc("/api/workflow/reset", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		ctrl.Reset()
		respondJSON(w, http.StatusOK, ctrl.Store().Snapshot())
	})

	mux.HandleFunc("/api/titles/select", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		var req struct {
			Title string `json:"title"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := ctrl.SelectTitle(req.Title); err != nil {
			httpError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, ctrl.Store().Snapshot())
	})

	mux.HandleFunc("/api/step/next", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		if err := ctrl.Advance(); err != nil {
			httpError(w, http.StatusConflict, err.Error())
			return
		}
		// stage entry effects run in the background; the browser polls
		go ctrl.AutoTrigger(context.Background())
		respondJSON(w, http.StatusOK, ctrl.Store().Snapshot())
	})

	mux.HandleFunc("/api/step/back", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		if err := ctrl.Back(); err != nil {
			httpError(w, http.StatusConflict, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, ctrl.Store().Snapshot())
	})

	// manual (re)triggers for the generation stages
	stageTriggers := map[string]func(context.Context) error{
		"/api/generate/story":        ctrl.GenerateStory,
		"/api/generate/descriptions": ctrl.GenerateImageDescriptions,
		"/api/generate/youtube":      ctrl.GenerateYoutubeDescription,
		"/api/generate/thumbnail":    ctrl.GenerateThumbnail,
	}
	for path, fn := range stageTriggers {
		fn := fn
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if !requirePost(w, r) {
				return
			}
			if err := fn(r.Context()); err != nil {
				if errors.Is(err, controller.ErrBusy) {
					httpError(w, http.StatusConflict, err.Error())
					return
				}
				httpError(w, http.StatusBadGateway, err.Error())
				return
			}
			respondJSON(w, http.StatusOK, ctrl.Store().Snapshot())
		})
	}

	// the image loop runs for minutes; fire it and let the client poll
	mux.HandleFunc("/api/generate/images", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		if len(ctrl.Store().Snapshot().ImageDescriptions) == 0 {
			httpError(w, http.StatusBadRequest, "no image descriptions to generate from")
			return
		}
		if ctrl.ImagesInFlight() {
			httpError(w, http.StatusConflict, controller.ErrBusy.Error())
			return
		}
		go func() {
			if err := ctrl.ProduceImages(context.Background()); err != nil {
				log.Warn().Err(err).Msg("Image production halted")
			}
		}()
		respondJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
	})

	mux.HandleFunc("/api/audio/generate", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		var req struct {
			Part int `json:"part"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		go func() {
			if err := ctrl.GenerateAudioPart(context.Background(), req.Part); err != nil {
				log.Warn().Err(err).Int("part", req.Part).Msg("Audio generation failed")
			}
		}()
		respondJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
	})

	mux.HandleFunc("/api/sheet/final", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		respondJSON(w, http.StatusOK, ctrl.SendFinalPackage(r.Context()))
	})

	registerExportRoutes(mux, ctrl)
}

func registerExportRoutes(mux *http.ServeMux, ctrl *controller.Controller) {
	mux.HandleFunc("/api/export/story.txt", func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Store().Snapshot()
		if snap.Story == nil {
			httpError(w, http.StatusNotFound, "no story yet")
			return
		}
		serveDownload(w, "story.txt", "text/plain; charset=utf-8",
			[]byte(export.StoryText(snap.SelectedTitle, snap.Story)))
	})

	mux.HandleFunc("/api/export/descriptions.txt", func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Store().Snapshot()
		if len(snap.ImageDescriptions) == 0 {
			httpError(w, http.StatusNotFound, "no image descriptions yet")
			return
		}
		serveDownload(w, "image_descriptions.txt", "text/plain; charset=utf-8",
			[]byte(export.DescriptionsText(snap.ImageDescriptions)))
	})

	mux.HandleFunc("/api/export/youtube.txt", func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Store().Snapshot()
		if snap.YoutubeDescription == "" {
			httpError(w, http.StatusNotFound, "no description yet")
			return
		}
		serveDownload(w, "youtube_description.txt", "text/plain; charset=utf-8",
			[]byte(snap.YoutubeDescription))
	})

	mux.HandleFunc("/api/export/images.zip", func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Store().Snapshot()
		if len(snap.GeneratedImages) == 0 {
			httpError(w, http.StatusNotFound, "no images yet")
			return
		}
		data, err := export.ImagesZip(snap.GeneratedImages)
		if err != nil {
			httpError(w, http.StatusInternalServerError, err.Error())
			return
		}
		serveDownload(w, "generated_images.zip", "application/zip", data)
	})

	mux.HandleFunc("/api/export/image", func(w http.ResponseWriter, r *http.Request) {
		img, ok := findImage(w, r, ctrl)
		if !ok {
			return
		}
		data, err := export.ImageJPEG(img)
		if err != nil {
			httpError(w, http.StatusInternalServerError, err.Error())
			return
		}
		serveDownload(w, fmt.Sprintf("image_%d.jpeg", img.SequenceNumber), "image/jpeg", data)
	})

	mux.HandleFunc("/api/media/preview", func(w http.ResponseWriter, r *http.Request) {
		img, ok := findImage(w, r, ctrl)
		if !ok {
			return
		}
		data, err := export.PreviewJPEG(img, export.PreviewMaxDimension)
		if err != nil {
			httpError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(data)
	})

	mux.HandleFunc("/api/export/audio", func(w http.ResponseWriter, r *http.Request) {
		part, err := strconv.Atoi(r.URL.Query().Get("part"))
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid part")
			return
		}
		state, ok := ctrl.AudioStates()[part]
		if !ok || state.AudioData == "" {
			httpError(w, http.StatusNotFound, "no audio for this part yet")
			return
		}
		data, err := export.AudioBytes(state.AudioData)
		if err != nil {
			httpError(w, http.StatusInternalServerError, err.Error())
			return
		}
		serveDownload(w, fmt.Sprintf("story_part_%d.mp3", part), "audio/mpeg", data)
	})
}

func findImage(w http.ResponseWriter, r *http.Request, ctrl *controller.Controller) (workflow.GeneratedImage, bool) {
	seq, err := strconv.Atoi(r.URL.Query().Get("sequence"))
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid sequence")
		return workflow.GeneratedImage{}, false
	}
	for _, img := range ctrl.Store().Snapshot().GeneratedImages {
		if img.SequenceNumber == seq {
			return img, true
		}
	}
	httpError(w, http.StatusNotFound, "image not found")
	return workflow.GeneratedImage{}, false
}

func serveDownload(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
