package quiz

// QuestionCount is the fixed number of questions in a generated quiz.
const QuestionCount = 4

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Letter identifies one of the four answer options.
type Letter string

// Valid answer letters, in option order.
const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters lists all valid answer letters in option order.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD}

// Index returns the zero-based option index for a letter, or -1.
func (l Letter) Index() int {
	for i, letter := range Letters {
		if l == letter {
			return i
		}
	}
	return -1
}

// Draft is a partially streamed question record. Any subset of fields may
// be absent while the stream is still populating it.
type Draft struct {
	Prompt  string   `json:"question,omitempty"`
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"answer,omitempty"`
}

// Empty reports whether no field of the draft has arrived yet.
func (d Draft) Empty() bool {
	return d.Prompt == "" && len(d.Options) == 0 && d.Answer == ""
}

// Question is a fully validated multiple-choice question.
type Question struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Answer  Letter   `json:"answer"`
}

// Set is the terminal, immutable sequence of validated questions that
// drives the quiz view.
type Set []Question
