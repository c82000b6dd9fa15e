package export

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/HEITORHOG1/Youtube-content-creation-tool/internal/workflow"
)

func encodedJPEG(t *testing.T, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("encode test jpeg: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestStoryText(t *testing.T) {
	story := &workflow.Story{
		Parts: []workflow.StoryPart{
			{Title: "Abertura", Content: "Era uma vez."},
			{Title: "Conflito", Content: "Tudo mudou."},
		},
		Summary: "Uma historia curta.",
	}
	got := StoryText("Meu Video", story)

	for _, want := range []string{"Meu Video", "Parte 1: Abertura", "Era uma vez.", "Parte 2: Conflito", "Resumo", "Uma historia curta."} {
		if !strings.Contains(got, want) {
			t.Errorf("StoryText missing %q:\n%s", want, got)
		}
	}
}

func TestStoryTextNilStory(t *testing.T) {
	if got := StoryText("Titulo", nil); got != "Titulo\n\n" {
		t.Errorf("StoryText(nil) = %q", got)
	}
}

func TestDescriptionsText(t *testing.T) {
	got := DescriptionsText([]workflow.ImageDescription{
		{Sequence: 1, Scene: "opening shot", Prompt: "a wide plaza"},
		{Sequence: 2, Scene: "close up", Prompt: "a marble bust"},
	})
	if !strings.Contains(got, "1. opening shot\na wide plaza") {
		t.Errorf("DescriptionsText = %q", got)
	}
	if !strings.Contains(got, "2. close up") {
		t.Errorf("DescriptionsText = %q", got)
	}
}

func TestImagesZipEntries(t *testing.T) {
	images := []workflow.GeneratedImage{
		{SequenceNumber: 1, EncodedImage: base64.StdEncoding.EncodeToString([]byte("jpeg-one"))},
		{SequenceNumber: 2, EncodedImage: base64.StdEncoding.EncodeToString([]byte("jpeg-two"))},
	}

	data, err := ImagesZip(images)
	if err != nil {
		t.Fatalf("ImagesZip() error = %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("result is not a zip: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("zip has %d entries, want 2", len(zr.File))
	}
	wantNames := map[string]string{"image_1.jpeg": "jpeg-one", "image_2.jpeg": "jpeg-two"}
	for _, f := range zr.File {
		wantBody, ok := wantNames[f.Name]
		if !ok {
			t.Errorf("unexpected zip entry %q", f.Name)
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %q: %v", f.Name, err)
		}
		var buf bytes.Buffer
		buf.ReadFrom(rc)
		rc.Close()
		if buf.String() != wantBody {
			t.Errorf("entry %q = %q, want %q", f.Name, buf.String(), wantBody)
		}
	}
}

func TestImagesZipRejectsBadPayload(t *testing.T) {
	_, err := ImagesZip([]workflow.GeneratedImage{{SequenceNumber: 1, EncodedImage: "not base64!!"}})
	if err == nil {
		t.Error("ImagesZip() error = nil, want failure on invalid payload")
	}
}

func TestPreviewJPEGDownscales(t *testing.T) {
	img := workflow.GeneratedImage{SequenceNumber: 1, EncodedImage: encodedJPEG(t, 1600, 900)}

	data, err := PreviewJPEG(img, PreviewMaxDimension)
	if err != nil {
		t.Fatalf("PreviewJPEG() error = %v", err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("preview is not decodable: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() > PreviewMaxDimension || b.Dy() > PreviewMaxDimension {
		t.Errorf("preview is %dx%d, want both dimensions <= %d", b.Dx(), b.Dy(), PreviewMaxDimension)
	}
}

func TestPreviewJPEGSmallImageUnchanged(t *testing.T) {
	encoded := encodedJPEG(t, 320, 180)
	img := workflow.GeneratedImage{SequenceNumber: 1, EncodedImage: encoded}

	data, err := PreviewJPEG(img, PreviewMaxDimension)
	if err != nil {
		t.Fatalf("PreviewJPEG() error = %v", err)
	}
	raw, _ := base64.StdEncoding.DecodeString(encoded)
	if !bytes.Equal(data, raw) {
		t.Error("small image was re-encoded, want original bytes passed through")
	}
}
