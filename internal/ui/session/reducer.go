package session

import (
	"fmt"

	"quizkit/internal/quiz"
	"quizkit/internal/upload"
)

// dropUnsupportedNotice is shown when the terminal cannot deliver drops.
const dropUnsupportedNotice = "This terminal does not deliver dropped files; use the picker instead."

// Reduce applies an event to the session state. It is a pure function;
// all I/O happens in the controller before events are dispatched.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventFilesChosen:
		return reduceFilesChosen(state, event)
	case EventDropUnsupported:
		state.Notice = dropUnsupportedNotice
		return state
	case EventSubmit:
		return reduceSubmit(state, event)
	case EventEncoded:
		return reduceEncoded(state, event)
	case EventEncodeFailed:
		return reduceEncodeFailed(state, event)
	case EventSnapshot:
		return reduceSnapshot(state, event)
	case EventStreamDone:
		return reduceStreamDone(state, event)
	case EventStreamFailed:
		return reduceStreamFailed(state, event)
	case EventTitle:
		return reduceTitle(state, event)
	case EventAnswer:
		return reduceAnswer(state, event)
	case EventCursor:
		return reduceCursor(state, event)
	case EventClear:
		return NewState()
	}
	return state
}

// reduceFilesChosen runs the acceptance predicate over a raw selection.
// Picker and drop selections funnel through the same path.
func reduceFilesChosen(state State, event Event) State {
	if state.Phase != PhaseIdle && state.Phase != PhaseAwaitingUpload {
		return state
	}
	accepted, rejected := upload.Accept(event.Candidates)
	if rejected > 0 {
		state.Notice = rejectionNotice(rejected)
	} else {
		state.Notice = ""
	}
	if len(accepted) == 0 {
		return state
	}
	// Single-file workflow: a new selection replaces the staged set.
	state.Staged = accepted
	state.Phase = PhaseAwaitingUpload
	return state
}

// reduceSubmit starts a submission when the guard allows it.
func reduceSubmit(state State, event Event) State {
	if !state.CanSubmit() {
		return state
	}
	state.Phase = PhaseSubmitting
	state.SubmissionID = event.SubmissionID
	state.Slots = nil
	state.Set = nil
	state.Notice = ""
	state.Title = TitlePending
	state.TitleText = ""
	return state
}

// reduceEncoded moves to streaming once encoding has completed.
func reduceEncoded(state State, event Event) State {
	if state.Phase != PhaseSubmitting || event.SubmissionID != state.SubmissionID {
		return state
	}
	state.Phase = PhaseStreaming
	return state
}

// reduceEncodeFailed aborts the submission before any network call.
func reduceEncodeFailed(state State, event Event) State {
	if event.SubmissionID != state.SubmissionID {
		return state
	}
	return failSession(state, "Could not read the selected file: "+event.Err)
}

// reduceSnapshot replaces the slot view with the latest partial array.
func reduceSnapshot(state State, event Event) State {
	if state.Phase != PhaseStreaming || event.SubmissionID != state.SubmissionID {
		return state
	}
	state.Slots = quiz.Slots(event.Drafts)
	return state
}

// reduceStreamDone finalizes the terminal set. The view switches on the
// locally validated length, not on the stream's finish signal alone.
func reduceStreamDone(state State, event Event) State {
	if state.Phase != PhaseStreaming || event.SubmissionID != state.SubmissionID {
		return state
	}
	state.Slots = quiz.Slots(event.Drafts)
	set, err := quiz.Finalize(state.Slots)
	if err != nil {
		return failSession(state, "Quiz generation failed: "+err.Error())
	}
	state.Phase = PhaseComplete
	state.Set = set
	state.Cursor = 0
	state.Picks = make([]quiz.Letter, len(set))
	return state
}

// reduceStreamFailed clears staged files and recovers to a clean upload
// state. No partial quiz is ever shown.
func reduceStreamFailed(state State, event Event) State {
	if event.SubmissionID != state.SubmissionID {
		return state
	}
	if state.Phase != PhaseSubmitting && state.Phase != PhaseStreaming {
		return state
	}
	return failSession(state, "Quiz generation failed: "+event.Err)
}

// reduceTitle stores the side-channel title whenever it resolves. The
// title may arrive after the quiz stream completes.
func reduceTitle(state State, event Event) State {
	if event.SubmissionID != state.SubmissionID {
		return state
	}
	state.Title = TitleReady
	state.TitleText = event.Title
	return state
}

// reduceAnswer records a pick for the question under the cursor. Picks
// are final once made.
func reduceAnswer(state State, event Event) State {
	if state.Phase != PhaseComplete {
		return state
	}
	if state.Cursor < 0 || state.Cursor >= len(state.Picks) {
		return state
	}
	if state.Picks[state.Cursor] != "" {
		return state
	}
	if event.Letter.Index() == -1 {
		return state
	}
	picks := make([]quiz.Letter, len(state.Picks))
	copy(picks, state.Picks)
	picks[state.Cursor] = event.Letter
	state.Picks = picks
	return state
}

// reduceCursor moves between questions in the quiz view.
func reduceCursor(state State, event Event) State {
	if state.Phase != PhaseComplete || len(state.Set) == 0 {
		return state
	}
	next := state.Cursor + event.Delta
	if next < 0 {
		next = 0
	}
	if next > len(state.Set)-1 {
		next = len(state.Set) - 1
	}
	state.Cursor = next
	return state
}

// failSession recovers any failure to a re-submittable state equivalent
// to Idle: staged files cleared, no partial quiz retained.
func failSession(state State, notice string) State {
	next := NewState()
	next.Notice = notice
	// A stale submission ID keeps late events from the failed run inert.
	next.SubmissionID = ""
	return next
}

// rejectionNotice formats the non-fatal acceptance warning.
func rejectionNotice(rejected int) string {
	if rejected == 1 {
		return "1 file was skipped: only PDF files up to 5 MB are supported."
	}
	return fmt.Sprintf("%d files were skipped: only PDF files up to 5 MB are supported.", rejected)
}
