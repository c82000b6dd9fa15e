package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/controller"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/gemini"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/images"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/logging"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/sheets"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/speech"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/store"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/workflow"
)

var portFlag int

var rootCmd = &cobra.Command{
	Use:   "studio-web",
	Short: "Local web server for the YouTube content-creation wizard",
	Long: `Studio Web starts a local server exposing the seven-step content
pipeline (titles, story, narration, image descriptions, images, SEO
description, thumbnail) as a JSON API driven from the browser.

Examples:
  studio-web
  studio-web --port 9090`,
	Run: runMain,
}

func init() {
	rootCmd.Flags().IntVar(&portFlag, "port", 8080, "Port to listen on")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMain(cmd *cobra.Command, args []string) {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()
	logging.Init()

	kv := store.NewMemory()
	gw := gemini.New(kv)
	ctrl := controller.New(
		workflow.NewStore(),
		gw,
		speech.NewSynthesizer(gw),
		images.NewProducer(gw),
		sheets.NewSink(),
		kv,
	)

	mux := http.NewServeMux()
	registerRoutes(mux, ctrl, kv)

	addr := fmt.Sprintf(":%d", portFlag)
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		log.Info().Str("addr", addr).Msg("Studio web server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown error")
	}
}
