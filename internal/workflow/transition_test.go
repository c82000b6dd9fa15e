package workflow

import "testing"

func TestStepNavigationMovesByOne(t *testing.T) {
	st := NewStore()

	if got := st.Snapshot().CurrentStep; got != StepTitles {
		t.Fatalf("initial CurrentStep = %d, want %d", got, StepTitles)
	}

	st.Dispatch(NextStep{})
	if got := st.Snapshot().CurrentStep; got != 2 {
		t.Errorf("after NextStep CurrentStep = %d, want 2", got)
	}

	st.Dispatch(NextStep{})
	st.Dispatch(PreviousStep{})
	if got := st.Snapshot().CurrentStep; got != 2 {
		t.Errorf("after Next,Next,Previous CurrentStep = %d, want 2", got)
	}
}

func TestStepNavigationClearsErrorAndProgress(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetError{Message: "boom"})
	st.Dispatch(NextStep{})

	snap := st.Snapshot()
	if snap.Error != "" {
		t.Errorf("NextStep left Error = %q, want empty", snap.Error)
	}
	if snap.Progress != nil {
		t.Error("NextStep left Progress set, want nil")
	}
}

func TestSetImageDescriptionsClearsGeneratedImages(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddGeneratedImage{Image: GeneratedImage{ID: "a", SequenceNumber: 1}})
	st.Dispatch(AddGeneratedImage{Image: GeneratedImage{ID: "b", SequenceNumber: 2}})

	st.Dispatch(SetImageDescriptions{Descriptions: []ImageDescription{
		{Sequence: 1, Scene: "opening", Prompt: "p1"},
	}})

	snap := st.Snapshot()
	if len(snap.GeneratedImages) != 0 {
		t.Errorf("GeneratedImages has %d entries after SetImageDescriptions, want 0", len(snap.GeneratedImages))
	}
	if len(snap.ImageDescriptions) != 1 {
		t.Errorf("ImageDescriptions has %d entries, want 1", len(snap.ImageDescriptions))
	}
	if snap.IsLoading {
		t.Error("IsLoading = true after SetImageDescriptions, want false")
	}
}

func TestAddGeneratedImageKeepsSequenceOrder(t *testing.T) {
	st := NewStore()
	for _, seq := range []int{3, 1, 5, 2, 4} {
		st.Dispatch(AddGeneratedImage{Image: GeneratedImage{SequenceNumber: seq}})
	}

	snap := st.Snapshot()
	if len(snap.GeneratedImages) != 5 {
		t.Fatalf("GeneratedImages has %d entries, want 5", len(snap.GeneratedImages))
	}
	for i, img := range snap.GeneratedImages {
		if img.SequenceNumber != i+1 {
			t.Errorf("GeneratedImages[%d].SequenceNumber = %d, want %d", i, img.SequenceNumber, i+1)
		}
	}
}

func TestStartWorkflowPreservesSessionAndSettings(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetSessionID{ID: "session-1"})
	n := 20
	st.Dispatch(UpdateSettings{NumberOfDescriptions: &n})
	st.Dispatch(SetTitles{Titles: []string{"old title"}})

	st.Dispatch(StartWorkflow{Topic: "ancient Rome"})

	snap := st.Snapshot()
	if snap.SessionID != "session-1" {
		t.Errorf("SessionID = %q, want %q", snap.SessionID, "session-1")
	}
	if snap.Settings.NumberOfDescriptions != 20 {
		t.Errorf("Settings.NumberOfDescriptions = %d, want 20", snap.Settings.NumberOfDescriptions)
	}
	if snap.Topic != "ancient Rome" {
		t.Errorf("Topic = %q, want %q", snap.Topic, "ancient Rome")
	}
	if len(snap.Titles) != 0 {
		t.Errorf("Titles has %d entries after StartWorkflow, want 0", len(snap.Titles))
	}
	if !snap.IsLoading {
		t.Error("IsLoading = false after StartWorkflow, want true")
	}
}

func TestResetPreservesSettingsOnly(t *testing.T) {
	st := NewStore()
	n := 20
	url := "https://example.com/sheet"
	st.Dispatch(UpdateSettings{NumberOfDescriptions: &n, SheetURL: &url})
	st.Dispatch(StartWorkflow{Topic: "ancient Rome"})
	st.Dispatch(SetTitles{Titles: []string{"t1", "t2"}})
	st.Dispatch(SelectTitle{Title: "t2"})

	st.Dispatch(Reset{})

	snap := st.Snapshot()
	if snap.Settings.NumberOfDescriptions != 20 {
		t.Errorf("Settings.NumberOfDescriptions = %d after Reset, want 20", snap.Settings.NumberOfDescriptions)
	}
	if snap.Settings.SheetURL != url {
		t.Errorf("Settings.SheetURL = %q after Reset, want %q", snap.Settings.SheetURL, url)
	}
	if snap.Topic != "" || len(snap.Titles) != 0 || snap.SelectedTitle != "" {
		t.Errorf("Reset left workflow fields: topic=%q titles=%d selected=%q",
			snap.Topic, len(snap.Titles), snap.SelectedTitle)
	}
	if snap.CurrentStep != StepTitles {
		t.Errorf("CurrentStep = %d after Reset, want %d", snap.CurrentStep, StepTitles)
	}
}

func TestSetLoadingClearsStaleError(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetError{Message: "previous attempt failed"})

	st.Dispatch(SetLoading{Loading: true})

	snap := st.Snapshot()
	if snap.Error != "" {
		t.Errorf("Error = %q after SetLoading, want empty", snap.Error)
	}
	if !snap.IsLoading {
		t.Error("IsLoading = false, want true")
	}
}

func TestSetProgressDrivesLoading(t *testing.T) {
	st := NewStore()

	st.Dispatch(SetProgress{Progress: &Progress{Message: "working", Percentage: 40}})
	if snap := st.Snapshot(); !snap.IsLoading {
		t.Error("IsLoading = false while progress set, want true")
	}

	st.Dispatch(SetProgress{})
	snap := st.Snapshot()
	if snap.IsLoading {
		t.Error("IsLoading = true after progress cleared, want false")
	}
	if snap.Progress != nil {
		t.Error("Progress still set after clear")
	}
}

func TestSetErrorStopsLoadingAndProgress(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetProgress{Progress: &Progress{Message: "working", Percentage: 40}})

	st.Dispatch(SetError{Message: "backend exploded"})

	snap := st.Snapshot()
	if snap.Error != "backend exploded" {
		t.Errorf("Error = %q, want %q", snap.Error, "backend exploded")
	}
	if snap.IsLoading {
		t.Error("IsLoading = true after SetError, want false")
	}
	if snap.Progress != nil {
		t.Error("Progress still set after SetError")
	}
}

func TestUpdateSettingsMergesPartially(t *testing.T) {
	st := NewStore()
	url := "https://example.com/hook"
	st.Dispatch(UpdateSettings{SheetURL: &url})

	snap := st.Snapshot()
	if snap.Settings.NumberOfDescriptions != DefaultDescriptionCount {
		t.Errorf("NumberOfDescriptions = %d, want default %d",
			snap.Settings.NumberOfDescriptions, DefaultDescriptionCount)
	}
	if snap.Settings.SheetURL != url {
		t.Errorf("SheetURL = %q, want %q", snap.Settings.SheetURL, url)
	}
}

func TestSnapshotIsIsolatedFromStore(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetTitles{Titles: []string{"a", "b"}})

	snap := st.Snapshot()
	snap.Titles[0] = "mutated"

	if got := st.Snapshot().Titles[0]; got != "a" {
		t.Errorf("store title = %q after snapshot mutation, want %q", got, "a")
	}
}
