// Package workflow owns the shared state of the seven-step content
// pipeline. The state is mutated exclusively through the closed set of
// transitions in transition.go, applied by the Store; every other
// component works against read-only snapshots.
package workflow

// Step numbers for the seven pipeline stages, in order.
const (
	StepTitles = 1 + iota
	StepStory
	StepAudio
	StepImageDescriptions
	StepImages
	StepYoutubeDescription
	StepThumbnail
)

// DefaultDescriptionCount is the number of image descriptions requested
// when the user has not changed it in settings.
const DefaultDescriptionCount = 15

// Settings bounds for the image-description count.
const (
	MinDescriptionCount = 5
	MaxDescriptionCount = 25
)

// StoryPart is one of the four narration parts of a generated story.
type StoryPart struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Story is the structured script produced by the story stage.
// Parts always has length 4.
type Story struct {
	Parts      []StoryPart `json:"parts"`
	Summary    string      `json:"summary"`
	Characters []string    `json:"characters"`
	Locations  []string    `json:"locations"`
}

// ImageDescription is one scene to illustrate. Sequence numbers are
// unique and contiguous starting at 1.
type ImageDescription struct {
	Sequence int    `json:"sequence"`
	Scene    string `json:"scene"`
	Prompt   string `json:"prompt"`
}

// GeneratedImage is one produced illustration. EncodedImage is the
// base64 JPEG payload returned by the image backend.
type GeneratedImage struct {
	ID             string `json:"id"`
	SequenceNumber int    `json:"sequenceNumber"`
	Description    string `json:"description"`
	EncodedImage   string `json:"encodedImage"`
}

// Progress describes an in-flight generation for the UI.
type Progress struct {
	Message    string  `json:"message"`
	Percentage float64 `json:"percentage"`
}

// Settings holds the user-editable options. They survive a workflow
// reset.
type Settings struct {
	NumberOfDescriptions int    `json:"numberOfDescriptions"`
	SheetURL             string `json:"sheetUrl"`
}

// State is the single mutable aggregate for a workflow run.
type State struct {
	CurrentStep          int                `json:"currentStep"`
	SessionID            string             `json:"sessionId"`
	Topic                string             `json:"topic"`
	Titles               []string           `json:"titles"`
	SelectedTitle        string             `json:"selectedTitle"`
	Story                *Story             `json:"story"`
	ImageDescriptions    []ImageDescription `json:"imageDescriptions"`
	GeneratedImages      []GeneratedImage   `json:"generatedImages"`
	ThumbnailDescription string             `json:"thumbnailDescription"`
	YoutubeDescription   string             `json:"youtubeDescription"`
	IsLoading            bool               `json:"isLoading"`
	Error                string             `json:"error"`
	Progress             *Progress          `json:"progress"`
	Settings             Settings           `json:"settings"`
}

// initialState returns the defaults a fresh workflow starts from.
func initialState() State {
	return State{
		CurrentStep: StepTitles,
		Settings: Settings{
			NumberOfDescriptions: DefaultDescriptionCount,
		},
	}
}

// clone returns a deep copy of the state so callers can never reach the
// Store's slices through a snapshot.
func (s State) clone() State {
	out := s
	if s.Titles != nil {
		out.Titles = append([]string(nil), s.Titles...)
	}
	if s.Story != nil {
		story := *s.Story
		story.Parts = append([]StoryPart(nil), s.Story.Parts...)
		story.Characters = append([]string(nil), s.Story.Characters...)
		story.Locations = append([]string(nil), s.Story.Locations...)
		out.Story = &story
	}
	if s.ImageDescriptions != nil {
		out.ImageDescriptions = append([]ImageDescription(nil), s.ImageDescriptions...)
	}
	if s.GeneratedImages != nil {
		out.GeneratedImages = append([]GeneratedImage(nil), s.GeneratedImages...)
	}
	if s.Progress != nil {
		p := *s.Progress
		out.Progress = &p
	}
	return out
}
