// Package export turns in-memory workflow state into downloadable
// artifacts: plain text, JPEG images, MP3 audio, preview thumbnails and
// a zip bundle of all produced images.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/workflow"
)

// PreviewMaxDimension bounds the grid preview thumbnails served to the
// browser.
const PreviewMaxDimension = 480

// StoryText renders the full script as plain text.
func StoryText(title string, story *workflow.Story) string {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")
	if story == nil {
		return sb.String()
	}
	for i, part := range story.Parts {
		fmt.Fprintf(&sb, "--- Parte %d: %s ---\n\n%s\n\n", i+1, part.Title, part.Content)
	}
	if story.Summary != "" {
		fmt.Fprintf(&sb, "--- Resumo ---\n\n%s\n", story.Summary)
	}
	return sb.String()
}

// DescriptionsText renders the scene list as plain text.
func DescriptionsText(descriptions []workflow.ImageDescription) string {
	var sb strings.Builder
	for _, d := range descriptions {
		fmt.Fprintf(&sb, "%d. %s\n%s\n\n", d.Sequence, d.Scene, d.Prompt)
	}
	return sb.String()
}

// ImageJPEG decodes one produced image's base64 payload into raw JPEG
// bytes.
func ImageJPEG(img workflow.GeneratedImage) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(img.EncodedImage)
	if err != nil {
		return nil, fmt.Errorf("image %d: invalid base64 payload: %w", img.SequenceNumber, err)
	}
	return data, nil
}

// AudioBytes decodes a cached base64 audio payload for an MP3 download.
func AudioBytes(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 audio payload: %w", err)
	}
	return data, nil
}

// ImagesZip bundles every produced image into a zip archive with
// image_<sequence>.jpeg entries.
func ImagesZip(images []workflow.GeneratedImage) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, img := range images {
		data, err := ImageJPEG(img)
		if err != nil {
			return nil, err
		}
		entry, err := zw.Create(fmt.Sprintf("image_%d.jpeg", img.SequenceNumber))
		if err != nil {
			return nil, fmt.Errorf("image %d: create zip entry: %w", img.SequenceNumber, err)
		}
		if _, err := entry.Write(data); err != nil {
			return nil, fmt.Errorf("image %d: write zip entry: %w", img.SequenceNumber, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize zip: %w", err)
	}
	log.Debug().Int("images", len(images)).Int("zip_bytes", buf.Len()).Msg("Image bundle created")
	return buf.Bytes(), nil
}

// PreviewJPEG downscales a produced image so the browser grid does not
// pull full-resolution frames. Images already within maxDimension are
// returned unchanged.
func PreviewJPEG(img workflow.GeneratedImage, maxDimension int) ([]byte, error) {
	data, err := ImageJPEG(img)
	if err != nil {
		return nil, err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image %d: decode: %w", img.SequenceNumber, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDimension && h <= maxDimension {
		return data, nil
	}

	scale := float64(maxDimension) / float64(w)
	if h > w {
		scale = float64(maxDimension) / float64(h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("image %d: encode preview: %w", img.SequenceNumber, err)
	}
	return buf.Bytes(), nil
}
