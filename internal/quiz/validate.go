package quiz

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question draft.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// ParseLetter parses an answer letter, accepting surrounding whitespace.
func ParseLetter(value string) (Letter, error) {
	letter := Letter(strings.ToUpper(strings.TrimSpace(value)))
	if letter.Index() == -1 {
		return "", fmt.Errorf("invalid answer letter %q", value)
	}
	return letter, nil
}

// Validate checks a draft against the full question schema and returns the
// validated question when every field is present and well-formed.
func Validate(draft Draft) (Question, error) {
	collector := &issueCollector{}

	prompt := strings.TrimSpace(draft.Prompt)
	if prompt == "" {
		collector.add("question", "is required")
	}

	options := make([]string, 0, len(draft.Options))
	for _, option := range draft.Options {
		options = append(options, strings.TrimSpace(option))
	}
	if len(options) != OptionCount {
		collector.add("options", fmt.Sprintf("must have exactly %d entries, got %d", OptionCount, len(options)))
	} else {
		for i, option := range options {
			if option == "" {
				collector.add(fmt.Sprintf("options[%d]", i), "is required")
			}
		}
	}

	letter, err := ParseLetter(draft.Answer)
	if err != nil {
		if strings.TrimSpace(draft.Answer) == "" {
			collector.add("answer", "is required")
		} else {
			collector.add("answer", fmt.Sprintf("must be one of A-D, got %q", draft.Answer))
		}
	}

	if err := collector.result(); err != nil {
		return Question{}, err
	}
	return Question{Prompt: prompt, Options: options, Answer: letter}, nil
}
