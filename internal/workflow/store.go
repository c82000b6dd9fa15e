package workflow

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Store is the single owner of the workflow state. Transitions are
// applied atomically; a reader never observes a half-applied change.
// Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore creates a store holding the default initial state.
func NewStore() *Store {
	return &Store{state: initialState()}
}

// Dispatch applies one transition.
func (st *Store) Dispatch(t Transition) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.state = reduce(st.state, t)
	log.Debug().
		Str("transition", transitionName(t)).
		Int("step", st.state.CurrentStep).
		Bool("loading", st.state.IsLoading).
		Msg("Applied workflow transition")
}

// Snapshot returns a deep copy of the current state.
func (st *Store) Snapshot() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.clone()
}

func transitionName(t Transition) string {
	switch t.(type) {
	case StartWorkflow:
		return "start_workflow"
	case SetSessionID:
		return "set_session_id"
	case SetTitles:
		return "set_titles"
	case SelectTitle:
		return "select_title"
	case NextStep:
		return "next_step"
	case PreviousStep:
		return "previous_step"
	case SetStory:
		return "set_story"
	case SetImageDescriptions:
		return "set_image_descriptions"
	case AddGeneratedImage:
		return "add_generated_image"
	case SetThumbnailDescription:
		return "set_thumbnail_description"
	case SetYoutubeDescription:
		return "set_youtube_description"
	case SetLoading:
		return "set_loading"
	case SetError:
		return "set_error"
	case SetProgress:
		return "set_progress"
	case UpdateSettings:
		return "update_settings"
	case Reset:
		return "reset"
	}
	return "unknown"
}
