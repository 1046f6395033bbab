package session

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizkit/internal/progress"
	"quizkit/internal/quiz"
)

// renderHeader renders the application title line.
func renderHeader(state State, noColor bool) string {
	switch state.Phase {
	case PhaseComplete:
		return stylize(state.DisplayTitle(), noColor, lipgloss.Color("33"))
	default:
		return stylize("quizkit | PDF to quiz", noColor, lipgloss.Color("33"))
	}
}

// renderNotice renders the warning or error line, if any.
func renderNotice(state State, noColor bool) string {
	if state.Notice == "" {
		return ""
	}
	return stylize(state.Notice, noColor, lipgloss.Color("220"))
}

// renderStaged renders the staged-file summary and submit hint.
func renderStaged(state State, noColor bool) string {
	if len(state.Staged) == 0 {
		return ""
	}
	line := "Staged: " + formatStaged(state.Staged)
	hint := "Press enter to generate a quiz, or pick another file."
	return line + "\n" + stylize(hint, noColor, lipgloss.Color("242"))
}

// renderProgress renders the streaming progress section.
func renderProgress(state State, bar string, noColor bool) string {
	projection := progress.Project(state.Slots)
	label := stylize(projection.Label, noColor, lipgloss.Color("242"))
	return bar + "\n" + label
}

// renderQuiz renders the completed quiz view for the current cursor.
func renderQuiz(state State, noColor bool) string {
	if len(state.Set) == 0 {
		return ""
	}
	question := state.Set[state.Cursor]
	pick := state.Picks[state.Cursor]

	var builder strings.Builder
	builder.WriteString(stylize(formatQuestionHeader(state.Cursor, len(state.Set)), noColor, lipgloss.Color("240")))
	builder.WriteString("\n\n")
	builder.WriteString(question.Prompt)
	builder.WriteString("\n\n")
	for i, option := range question.Options {
		letter := quiz.Letters[i]
		builder.WriteString(renderOption(letter, option, question.Answer, pick, noColor))
		builder.WriteString("\n")
	}
	if score := formatScore(state); score != "" {
		builder.WriteString("\n")
		builder.WriteString(stylize(score, noColor, lipgloss.Color("33")))
	}
	return builder.String()
}

// renderOption renders one answer option, revealing correctness once the
// question has been answered.
func renderOption(letter quiz.Letter, text string, correct quiz.Letter, pick quiz.Letter, noColor bool) string {
	label := optionLabel(letter, text)
	if pick == "" {
		return "  " + label
	}
	switch {
	case letter == correct:
		return "  " + stylize(label+"  ✓", noColor, lipgloss.Color("42"))
	case letter == pick:
		return "  " + stylize(label+"  ✗", noColor, lipgloss.Color("196"))
	default:
		return "  " + stylize(label, noColor, lipgloss.Color("242"))
	}
}

// renderHelp renders the keybinding footer for the current phase.
func renderHelp(state State, noColor bool) string {
	var help string
	switch state.Phase {
	case PhaseIdle:
		help = "enter: pick file | q: quit"
	case PhaseAwaitingUpload:
		help = "enter: generate quiz | q: quit"
	case PhaseSubmitting, PhaseStreaming:
		help = "q: quit"
	case PhaseComplete:
		help = "a-d: answer | ←/→: question | r: new quiz | q: quit"
	}
	return stylize(help, noColor, lipgloss.Color("240"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
