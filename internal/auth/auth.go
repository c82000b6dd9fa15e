// Package auth resolves the Gemini API credential for the session.
package auth

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/store"
)

// ErrNoAPIKey is returned when no credential is configured anywhere.
// The gateway surfaces it as its credential-missing error kind.
var ErrNoAPIKey = errors.New("API key is not set; add it in the settings menu or set GEMINI_API_KEY")

// APIKey retrieves the Gemini API key.
// Priority order:
//  1. the session store (set through the settings surface)
//  2. GEMINI_API_KEY environment variable (cached back into the session
//     store for the rest of the run)
func APIKey(kv store.KV) (string, error) {
	if key, ok := kv.Get(store.KeyAPIKey); ok && key != "" {
		log.Debug().Msg("Using API key from session store")
		return key, nil
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		log.Debug().Msg("Using API key from environment variable")
		kv.Set(store.KeyAPIKey, key)
		return key, nil
	}

	log.Error().Msg("No API key configured")
	return "", ErrNoAPIKey
}
