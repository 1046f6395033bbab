package quiz

import "fmt"

// SlotState identifies how far a streamed question slot has progressed.
type SlotState int

const (
	// SlotPending marks a slot whose index exists but holds no content yet.
	SlotPending SlotState = iota
	// SlotDraft marks a slot holding a partial, not yet valid draft.
	SlotDraft
	// SlotValid marks a slot holding a fully validated question.
	SlotValid
)

// Slot is the per-index view of the growing stream: a tagged union of
// pending, draft, and valid states.
type Slot struct {
	State    SlotState
	Draft    Draft
	Question Question
}

// Classify places a draft into the slot union. An empty draft stays
// pending; a draft passing full validation becomes valid.
func Classify(draft Draft) Slot {
	if draft.Empty() {
		return Slot{State: SlotPending}
	}
	question, err := Validate(draft)
	if err != nil {
		return Slot{State: SlotDraft, Draft: draft}
	}
	return Slot{State: SlotValid, Draft: draft, Question: question}
}

// Slots classifies a streamed partial array. Slots are replaced in place
// per index, never merged field by field.
func Slots(drafts []Draft) []Slot {
	slots := make([]Slot, len(drafts))
	for i, draft := range drafts {
		slots[i] = Classify(draft)
	}
	return slots
}

// CountReceived returns the number of slots the stream has emitted,
// including pending ones.
func CountReceived(slots []Slot) int {
	return len(slots)
}

// CountStarted returns the number of slots with any content.
func CountStarted(slots []Slot) int {
	count := 0
	for _, slot := range slots {
		if slot.State != SlotPending {
			count++
		}
	}
	return count
}

// Finalize builds the terminal question set from the final slots. Slots
// failing full-field validation are dropped; a terminal set short of the
// required count is an error rather than a silent short quiz.
func Finalize(slots []Slot) (Set, error) {
	set := make(Set, 0, QuestionCount)
	for _, slot := range slots {
		if slot.State == SlotValid {
			set = append(set, slot.Question)
		}
	}
	if len(set) != QuestionCount {
		return nil, fmt.Errorf("generator finished with %d valid questions, want %d", len(set), QuestionCount)
	}
	return set, nil
}
