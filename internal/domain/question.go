package domain

import (
	"fmt"
	"strings"
	"time"
)

// ChoiceLabel identifies one option of a multiple-choice question.
type ChoiceLabel string

const (
	ChoiceA ChoiceLabel = "A"
	ChoiceB ChoiceLabel = "B"
	ChoiceC ChoiceLabel = "C"
	ChoiceD ChoiceLabel = "D"
)

// ChoiceLabels lists every valid label in display order.
var ChoiceLabels = []ChoiceLabel{ChoiceA, ChoiceB, ChoiceC, ChoiceD}

// ParseChoiceLabel normalizes s (trimmed, upper-cased) and reports whether it names a valid label.
func ParseChoiceLabel(s string) (ChoiceLabel, bool) {
	label := ChoiceLabel(strings.ToUpper(strings.TrimSpace(s)))
	return label, label.Valid()
}

// Valid reports whether l is one of ChoiceLabels.
func (l ChoiceLabel) Valid() bool {
	for _, c := range ChoiceLabels {
		if l == c {
			return true
		}
	}
	return false
}

// Question is a single multiple-choice record of a pool.
type Question struct {
	ID          string                 `json:"id"`
	Prompt      string                 `json:"prompt"`
	Options     map[ChoiceLabel]string `json:"options"`
	Correct     ChoiceLabel            `json:"correct"`
	Explanation string                 `json:"explanation,omitempty"`
}

// NewQuestion creates a Question with the four options in label order.
func NewQuestion(id, prompt string, options [4]string, correct ChoiceLabel, explanation string) Question {
	opts := make(map[ChoiceLabel]string, len(ChoiceLabels))
	for i, label := range ChoiceLabels {
		opts[label] = options[i]
	}
	return Question{
		ID:          id,
		Prompt:      prompt,
		Options:     opts,
		Correct:     correct,
		Explanation: explanation,
	}
}

// Validate checks the record invariants: a prompt, four options and a correct label among them.
func (q Question) Validate() error {
	if q.ID == "" {
		return NewInvalidInputError("question id is required")
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return NewInvalidInputError(fmt.Sprintf("question %s: prompt is required", q.ID))
	}
	for _, label := range ChoiceLabels {
		if strings.TrimSpace(q.Options[label]) == "" {
			return NewInvalidInputError(fmt.Sprintf("question %s: option %s is required", q.ID, label))
		}
	}
	if _, ok := q.Options[q.Correct]; !ok {
		return NewInvalidInputError(fmt.Sprintf("question %s: correct label %q is not an option", q.ID, q.Correct))
	}
	return nil
}

// IsCorrect reports whether answer matches the correct label.
func (q Question) IsCorrect(answer ChoiceLabel) bool {
	return answer != "" && answer == q.Correct
}

// Pool is the ordered set of questions produced by one upload. Treat it as read-only.
type Pool []Question

// Validate checks every question and that ids are unique.
func (p Pool) Validate() error {
	seen := make(map[string]struct{}, len(p))
	for _, q := range p {
		if err := q.Validate(); err != nil {
			return err
		}
		if _, dup := seen[q.ID]; dup {
			return NewInvalidInputError(fmt.Sprintf("duplicate question id %s in pool", q.ID))
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}

// Selection is the ordered subset of a pool presented as a quiz.
type Selection []Question

// IDs returns the question ids in selection order.
func (s Selection) IDs() []string {
	ids := make([]string, len(s))
	for i, q := range s {
		ids[i] = q.ID
	}
	return ids
}

// PoolInfo describes a stored pool.
type PoolInfo struct {
	ID            string
	Name          string
	QuestionCount int
	CreatedAt     time.Time
}

// MinQuizCount is the smallest quiz the controller will start.
const MinQuizCount = 1

// DefaultQuizCount returns the pre-filled count for a pool of size total, capped by preferred.
func DefaultQuizCount(total, preferred int) int {
	if total < preferred {
		return total
	}
	return preferred
}
