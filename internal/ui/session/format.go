package session

import (
	"fmt"
	"strings"

	"quizkit/internal/quiz"
	"quizkit/internal/upload"
)

// formatSize renders a byte count in user-facing units.
func formatSize(size int64) string {
	const (
		kb = 1024
		mb = 1024 * 1024
	)
	switch {
	case size >= mb:
		return fmt.Sprintf("%.1f MB", float64(size)/mb)
	case size >= kb:
		return fmt.Sprintf("%.1f KB", float64(size)/kb)
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// formatStaged renders the staged file line.
func formatStaged(staged []upload.Candidate) string {
	if len(staged) == 0 {
		return ""
	}
	parts := make([]string, 0, len(staged))
	for _, candidate := range staged {
		parts = append(parts, candidate.Name+" ("+formatSize(candidate.SizeBytes)+")")
	}
	return strings.Join(parts, ", ")
}

// formatQuestionHeader renders the "Question N of M" line.
func formatQuestionHeader(index int, total int) string {
	return fmt.Sprintf("Question %d of %d", index+1, total)
}

// formatScore renders the running or final score line.
func formatScore(state State) string {
	answered := state.AnsweredCount()
	if answered == 0 {
		return ""
	}
	if answered == len(state.Set) {
		return fmt.Sprintf("Final score: %d/%d", state.Score(), len(state.Set))
	}
	return fmt.Sprintf("Score so far: %d/%d", state.Score(), answered)
}

// optionLabel renders one option with its letter prefix.
func optionLabel(letter quiz.Letter, text string) string {
	return string(letter) + ") " + text
}
