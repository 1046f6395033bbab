package session

import (
	"quizkit/internal/quiz"
	"quizkit/internal/upload"
)

// EventKind identifies the type of session event.
type EventKind int

const (
	// EventFilesChosen delivers a raw selection from picker or drop.
	EventFilesChosen EventKind = iota
	// EventDropUnsupported marks a drop attempt on a terminal that does
	// not deliver dropped files.
	EventDropUnsupported
	// EventSubmit starts a submission for the staged files.
	EventSubmit
	// EventEncoded marks encoding complete and the stream request sent.
	EventEncoded
	// EventEncodeFailed marks a failed file read before any network call.
	EventEncodeFailed
	// EventSnapshot delivers a partial question array increment.
	EventSnapshot
	// EventStreamDone delivers the final question array.
	EventStreamDone
	// EventStreamFailed marks a transport or validation failure.
	EventStreamFailed
	// EventTitle delivers the resolved display title.
	EventTitle
	// EventAnswer records a pick for the question under the cursor.
	EventAnswer
	// EventCursor moves the quiz view cursor by a delta.
	EventCursor
	// EventClear discards the session back to the initial state.
	EventClear
)

// Event carries a session update. Events produced by asynchronous work
// carry the submission ID they belong to; the reducer drops events from
// stale submissions.
type Event struct {
	Kind         EventKind
	SubmissionID string
	Candidates   []upload.Candidate
	Drafts       []quiz.Draft
	Title        string
	Err          string
	Letter       quiz.Letter
	Delta        int
}
