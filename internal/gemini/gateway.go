// Package gemini is the gateway to the generative backend. Every
// capability call goes through a single error-normalization step (see
// errors.go) before a result reaches a step controller.
package gemini

import (
	"context"
	"encoding/base64"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/auth"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/jsonutil"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/store"
	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/workflow"
)

// Gateway wraps the Gemini client. The credential is resolved per call
// so a key supplied mid-session takes effect without a restart; the
// underlying client is rebuilt only when the key changes.
type Gateway struct {
	kv store.KV

	mu        sync.Mutex
	client    *genai.Client
	clientKey string
}

// New creates a gateway reading its credential from the session store.
func New(kv store.KV) *Gateway {
	return &Gateway{kv: kv}
}

func (g *Gateway) ai(ctx context.Context, op string) (*genai.Client, error) {
	key, err := auth.APIKey(g.kv)
	if err != nil {
		return nil, normalize(op, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil && g.clientKey == key {
		return g.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, normalize(op, err)
	}
	g.client = client
	g.clientKey = key
	return client, nil
}

type titlesResponse struct {
	Titles []string `json:"titles"`
}

// GenerateTitles produces candidate video titles for a topic.
func (g *Gateway) GenerateTitles(ctx context.Context, topic string) ([]string, error) {
	const op = "generateTitles"

	client, err := g.ai(ctx, op)
	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"titles": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
		},
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, TextModel(), genai.Text(titlesPrompt(topic)), config)
	if err != nil {
		return nil, normalize(op, err)
	}

	raw := resp.Text()
	log.Debug().Str("op", op).Int("response_length", len(raw)).Dur("duration", time.Since(start)).Msg("Gemini response received")

	parsed, err := jsonutil.ParseJSON[titlesResponse](raw)
	if err != nil {
		return nil, malformed(op, err)
	}
	return parsed.Titles, nil
}

// GenerateStory produces the four-part script for the selected title.
func (g *Gateway) GenerateStory(ctx context.Context, title string) (*workflow.Story, error) {
	const op = "generateStory"

	client, err := g.ai(ctx, op)
	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"parts": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"title":   {Type: genai.TypeString},
							"content": {Type: genai.TypeString},
						},
						Required: []string{"title", "content"},
					},
					MinItems: genai.Ptr[int64](4),
					MaxItems: genai.Ptr[int64](4),
				},
				"summary":    {Type: genai.TypeString},
				"characters": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"locations":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"parts", "summary", "characters", "locations"},
		},
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, TextModel(), genai.Text(storyPrompt(title)), config)
	if err != nil {
		return nil, normalize(op, err)
	}

	raw := resp.Text()
	log.Debug().Str("op", op).Int("response_length", len(raw)).Dur("duration", time.Since(start)).Msg("Gemini response received")

	story, err := jsonutil.ParseJSON[workflow.Story](raw)
	if err != nil {
		return nil, malformed(op, err)
	}
	return &story, nil
}

type descriptionsResponse struct {
	Descriptions []workflow.ImageDescription `json:"descriptions"`
}

// GenerateImageDescriptions produces count cinematic scene descriptions
// for the story summary.
func (g *Gateway) GenerateImageDescriptions(ctx context.Context, storySummary string, count int) ([]workflow.ImageDescription, error) {
	const op = "generateImageDescriptions"

	client, err := g.ai(ctx, op)
	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"descriptions": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"sequence": {Type: genai.TypeInteger},
							"scene":    {Type: genai.TypeString},
							"prompt":   {Type: genai.TypeString},
						},
						Required: []string{"sequence", "scene", "prompt"},
					},
				},
			},
			Required: []string{"descriptions"},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, TextModel(), genai.Text(imageDescriptionsPrompt(storySummary, count)), config)
	if err != nil {
		return nil, normalize(op, err)
	}

	raw := resp.Text()
	parsed, err := jsonutil.ParseJSON[descriptionsResponse](raw)
	if err != nil {
		return nil, malformed(op, err)
	}
	return parsed.Descriptions, nil
}

// GenerateImage renders a single 16:9 JPEG for a scene prompt and
// returns it base64-encoded.
func (g *Gateway) GenerateImage(ctx context.Context, prompt string) (string, error) {
	const op = "generateImage"

	client, err := g.ai(ctx, op)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
		AspectRatio:    "16:9",
	}

	start := time.Now()
	resp, err := client.Models.GenerateImages(ctx, ModelImage, imagePrompt(prompt), config)
	if err != nil {
		return "", normalize(op, err)
	}
	log.Debug().Str("op", op).Dur("duration", time.Since(start)).Msg("Imagen response received")

	if resp == nil || len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return "", &Error{Kind: KindUnknown, Op: op, Message: "image generation returned no images"}
	}
	return base64.StdEncoding.EncodeToString(resp.GeneratedImages[0].Image.ImageBytes), nil
}

// GenerateThumbnailDescription produces the free-text thumbnail prompt.
func (g *Gateway) GenerateThumbnailDescription(ctx context.Context, title, storySummary string) (string, error) {
	return g.freeText(ctx, "generateThumbnailDescription", thumbnailPrompt(title, storySummary))
}

// GenerateYoutubeDescription produces the SEO video description.
func (g *Gateway) GenerateYoutubeDescription(ctx context.Context, title, storySummary string) (string, error) {
	return g.freeText(ctx, "generateYoutubeDescription", youtubeDescriptionPrompt(title, storySummary))
}

func (g *Gateway) freeText(ctx context.Context, op, prompt string) (string, error) {
	client, err := g.ai(ctx, op)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, TextModel(), genai.Text(prompt), nil)
	if err != nil {
		return "", normalize(op, err)
	}
	return resp.Text(), nil
}
