// Package session owns the quiz session state machine: file staging,
// submission, stream consumption, and the completed quiz view.
package session

import (
	"quizkit/internal/quiz"
	"quizkit/internal/upload"
)

// Phase identifies the session's lifecycle position.
type Phase int

const (
	// PhaseIdle is the initial state: no files staged.
	PhaseIdle Phase = iota
	// PhaseAwaitingUpload has staged files and an enabled submit control.
	PhaseAwaitingUpload
	// PhaseSubmitting encodes staged files before the network call.
	PhaseSubmitting
	// PhaseStreaming consumes the generator's partial question stream.
	PhaseStreaming
	// PhaseComplete shows the validated quiz.
	PhaseComplete
)

// TitleState tracks the independently resolved display title.
type TitleState int

const (
	// TitleNone means no title request is in flight.
	TitleNone TitleState = iota
	// TitlePending means the title request has not resolved yet.
	TitlePending
	// TitleReady means the title text is available.
	TitleReady
)

// State is the single source of truth for a quiz session. All fields are
// owned by the session controller; asynchronous work reports back only
// through events.
type State struct {
	Phase        Phase
	Staged       []upload.Candidate
	Notice       string
	SubmissionID string
	Slots        []quiz.Slot
	Set          quiz.Set
	Title        TitleState
	TitleText    string

	// Quiz view: one pick per question, empty letter when unanswered.
	Cursor int
	Picks  []quiz.Letter
}

// NewState returns the initial session state.
func NewState() State {
	return State{Phase: PhaseIdle}
}

// CanSubmit reports whether the submit control is enabled.
func (s State) CanSubmit() bool {
	return s.Phase == PhaseAwaitingUpload && len(s.Staged) > 0
}

// Answered reports whether the question at index has a pick.
func (s State) Answered(index int) bool {
	return index >= 0 && index < len(s.Picks) && s.Picks[index] != ""
}

// AnsweredCount returns how many questions have picks.
func (s State) AnsweredCount() int {
	count := 0
	for _, pick := range s.Picks {
		if pick != "" {
			count++
		}
	}
	return count
}

// Score returns the number of correct picks.
func (s State) Score() int {
	score := 0
	for i, question := range s.Set {
		if i < len(s.Picks) && s.Picks[i] == question.Answer {
			score++
		}
	}
	return score
}

// DisplayTitle merges the title result at render time.
func (s State) DisplayTitle() string {
	if s.Title == TitleReady && s.TitleText != "" {
		return s.TitleText
	}
	if len(s.Staged) > 0 {
		return s.Staged[0].Name
	}
	return "Quiz"
}
