// Package progress derives user-facing completion feedback from the
// partially streamed question slots.
package progress

import (
	"fmt"

	"quizkit/internal/quiz"
)

// Projection is the derived progress view: a percentage and status line.
type Projection struct {
	Pct   int
	Label string
}

// analyzingLabel is shown before the stream emits its first draft.
const analyzingLabel = "Analyzing PDF content"

// Project derives progress from the current slots. It is a pure function
// of its input and is recomputed on every partial update. The label names
// the next question being produced, not the last completed one.
func Project(slots []quiz.Slot) Projection {
	if len(slots) == 0 {
		return Projection{Pct: 0, Label: analyzingLabel}
	}
	pct := quiz.CountReceived(slots) * 100 / quiz.QuestionCount
	next := quiz.CountStarted(slots) + 1
	if next > quiz.QuestionCount {
		next = quiz.QuestionCount
	}
	return Projection{
		Pct:   pct,
		Label: fmt.Sprintf("Generating question %d of %d", next, quiz.QuestionCount),
	}
}

// Fraction returns the percentage as a 0..1 value for progress bars.
func (p Projection) Fraction() float64 {
	return float64(p.Pct) / 100
}
