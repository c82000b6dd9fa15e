package gemini

import "os"

// Gemini model IDs used by the pipeline.
const (
	// ModelText handles every structured and free-text capability.
	ModelText = "gemini-2.5-flash"

	// ModelImage is the Imagen model behind single-image generation.
	ModelImage = "imagen-4.0-generate-001"

	// ModelTTS is the streaming speech-synthesis model.
	ModelTTS = "gemini-2.5-pro-preview-tts"
)

// DefaultVoice is the prebuilt narration voice.
const DefaultVoice = "Enceladus"

// TextModel returns the text model to use, resolved from the
// GEMINI_MODEL environment variable when set.
func TextModel() string {
	if env := os.Getenv("GEMINI_MODEL"); env != "" {
		return env
	}
	return ModelText
}
