package cli

import (
	"fmt"
	"io"
	"time"

	"quizkit/internal/progress"
	"quizkit/internal/quiz"
	"quizkit/internal/ui/session"
	"quizkit/internal/upload"
)

// runPlain drives a full session on plain line output. It is
// non-interactive: the generated questions are printed with their
// answers once the stream completes.
func runPlain(controller *session.Controller, staged []upload.Candidate, stdout, stderr io.Writer) int {
	if len(staged) == 0 {
		fmt.Fprintln(stderr, "Run failed: plain mode needs a PDF file argument")
		return ExitUsage
	}

	state := session.NewState()
	state = session.Reduce(state, session.Event{Kind: session.EventFilesChosen, Candidates: staged})
	if state.Notice != "" {
		fmt.Fprintln(stderr, state.Notice)
	}
	if !state.CanSubmit() {
		fmt.Fprintln(stderr, "Run failed: no acceptable PDF files")
		return ExitError
	}

	for _, candidate := range state.Staged {
		fmt.Fprintf(stdout, "Uploading %s...\n", candidate.Name)
	}
	id := controller.Submit(state.Staged)
	state = session.Reduce(state, session.Event{Kind: session.EventSubmit, SubmissionID: id})

	lastLabel := ""
	var titleGrace <-chan time.Time
	for {
		if state.Phase == session.PhaseComplete {
			if state.Title != session.TitlePending {
				break
			}
			if titleGrace == nil {
				// The title request may still resolve; wait briefly.
				titleGrace = time.After(2 * time.Second)
			}
		}

		select {
		case event := <-controller.Events():
			state = session.Reduce(state, event)
		case <-titleGrace:
			titleGrace = nil
			state.Title = session.TitleNone
			continue
		}

		if state.Phase == session.PhaseStreaming {
			label := progress.Project(state.Slots).Label
			if label != lastLabel {
				fmt.Fprintln(stdout, label)
				lastLabel = label
			}
		}
		if state.Phase == session.PhaseIdle && state.Notice != "" {
			fmt.Fprintf(stderr, "Run failed: %s\n", state.Notice)
			return ExitError
		}
	}

	printQuiz(stdout, state)
	return ExitOK
}

// printQuiz renders the completed quiz with answers revealed.
func printQuiz(w io.Writer, state session.State) {
	fmt.Fprintf(w, "\nQuiz: %s\n", state.DisplayTitle())
	for i, question := range state.Set {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, question.Prompt)
		for j, option := range question.Options {
			letter := quiz.Letters[j]
			marker := "  "
			if letter == question.Answer {
				marker = "* "
			}
			fmt.Fprintf(w, "   %s%s) %s\n", marker, letter, option)
		}
	}
	fmt.Fprintf(w, "\nGenerated %d questions. Answers are marked with *.\n", len(state.Set))
}
