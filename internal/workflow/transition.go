package workflow

import "sort"

// Transition is one named state change. The set of implementations in
// this file is closed; reduce handles every one of them, and nothing
// else can mutate a State.
type Transition interface {
	transition()
}

// StartWorkflow begins a fresh run for a topic. Everything except the
// session id and the settings is reset; loading is turned on for the
// title generation that follows.
type StartWorkflow struct{ Topic string }

// SetSessionID records the id issued for this run.
type SetSessionID struct{ ID string }

// SetTitles replaces the candidate title list.
type SetTitles struct{ Titles []string }

// SelectTitle records the user's title choice.
type SelectTitle struct{ Title string }

// NextStep advances one step. The controller only dispatches this at
// valid boundaries; the reducer does not clamp.
type NextStep struct{}

// PreviousStep retreats one step. Same boundary contract as NextStep.
type PreviousStep struct{}

// SetStory replaces the generated story.
type SetStory struct{ Story *Story }

// SetImageDescriptions replaces the scene list. Regenerating
// descriptions invalidates any previously produced images.
type SetImageDescriptions struct{ Descriptions []ImageDescription }

// AddGeneratedImage appends one produced image. The caller checks
// membership before dispatching; the reducer only keeps the collection
// sorted by sequence number.
type AddGeneratedImage struct{ Image GeneratedImage }

// SetThumbnailDescription stores the thumbnail prompt.
type SetThumbnailDescription struct{ Description string }

// SetYoutubeDescription stores the SEO description.
type SetYoutubeDescription struct{ Description string }

// SetLoading toggles the loading flag. Starting a new attempt always
// clears a stale error, even before the attempt's outcome is known.
type SetLoading struct{ Loading bool }

// SetError records a stage error. Empty string clears it.
type SetError struct{ Message string }

// SetProgress updates (or clears, when nil) the progress indicator.
// Loading tracks progress presence.
type SetProgress struct{ Progress *Progress }

// UpdateSettings shallow-merges the provided fields into settings.
// Nil fields are left untouched.
type UpdateSettings struct {
	NumberOfDescriptions *int
	SheetURL             *string
}

// Reset restores defaults, preserving settings only.
type Reset struct{}

func (StartWorkflow) transition()           {}
func (SetSessionID) transition()            {}
func (SetTitles) transition()               {}
func (SelectTitle) transition()             {}
func (NextStep) transition()                {}
func (PreviousStep) transition()            {}
func (SetStory) transition()                {}
func (SetImageDescriptions) transition()    {}
func (AddGeneratedImage) transition()       {}
func (SetThumbnailDescription) transition() {}
func (SetYoutubeDescription) transition()   {}
func (SetLoading) transition()              {}
func (SetError) transition()                {}
func (SetProgress) transition()             {}
func (UpdateSettings) transition()          {}
func (Reset) transition()                   {}

// reduce is the pure transition function: (state, transition) -> state.
func reduce(s State, t Transition) State {
	switch t := t.(type) {
	case StartWorkflow:
		next := initialState()
		next.SessionID = s.SessionID
		next.Settings = s.Settings
		next.Topic = t.Topic
		next.IsLoading = true
		return next
	case SetSessionID:
		s.SessionID = t.ID
		return s
	case SetTitles:
		s.Titles = t.Titles
		s.IsLoading = false
		return s
	case SelectTitle:
		s.SelectedTitle = t.Title
		return s
	case NextStep:
		s.CurrentStep++
		s.Error = ""
		s.Progress = nil
		return s
	case PreviousStep:
		s.CurrentStep--
		s.Error = ""
		s.Progress = nil
		return s
	case SetStory:
		s.Story = t.Story
		s.IsLoading = false
		return s
	case SetImageDescriptions:
		s.ImageDescriptions = t.Descriptions
		s.GeneratedImages = nil
		s.IsLoading = false
		return s
	case AddGeneratedImage:
		images := append(append([]GeneratedImage(nil), s.GeneratedImages...), t.Image)
		sort.SliceStable(images, func(i, j int) bool {
			return images[i].SequenceNumber < images[j].SequenceNumber
		})
		s.GeneratedImages = images
		return s
	case SetThumbnailDescription:
		s.ThumbnailDescription = t.Description
		s.IsLoading = false
		return s
	case SetYoutubeDescription:
		s.YoutubeDescription = t.Description
		s.IsLoading = false
		return s
	case SetLoading:
		s.IsLoading = t.Loading
		s.Error = ""
		return s
	case SetError:
		s.Error = t.Message
		s.IsLoading = false
		s.Progress = nil
		return s
	case SetProgress:
		s.Progress = t.Progress
		s.IsLoading = t.Progress != nil
		return s
	case UpdateSettings:
		if t.NumberOfDescriptions != nil {
			s.Settings.NumberOfDescriptions = *t.NumberOfDescriptions
		}
		if t.SheetURL != nil {
			s.Settings.SheetURL = *t.SheetURL
		}
		return s
	case Reset:
		next := initialState()
		next.Settings = s.Settings
		return next
	}
	return s
}
