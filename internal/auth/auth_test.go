package auth

import (
	"errors"
	"testing"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/store"
)

func TestAPIKeyPrefersSessionStore(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	kv := store.NewMemory()
	kv.Set(store.KeyAPIKey, "session-key")

	got, err := APIKey(kv)
	if err != nil {
		t.Fatalf("APIKey() error = %v", err)
	}
	if got != "session-key" {
		t.Errorf("APIKey() = %q, want session-key", got)
	}
}

func TestAPIKeyFallsBackToEnvAndCaches(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	kv := store.NewMemory()

	got, err := APIKey(kv)
	if err != nil {
		t.Fatalf("APIKey() error = %v", err)
	}
	if got != "env-key" {
		t.Errorf("APIKey() = %q, want env-key", got)
	}
	if cached, _ := kv.Get(store.KeyAPIKey); cached != "env-key" {
		t.Errorf("session store not updated with env key, got %q", cached)
	}
}

func TestAPIKeyMissingEverywhere(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	kv := store.NewMemory()

	if _, err := APIKey(kv); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("APIKey() error = %v, want ErrNoAPIKey", err)
	}
}
