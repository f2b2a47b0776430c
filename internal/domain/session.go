package domain

import (
	"time"

	"quiz-deck/internal/util"
)

// SessionPhase is the stage of a stored quiz session.
type SessionPhase string

const (
	PhaseQuiz    SessionPhase = "quiz"
	PhaseResults SessionPhase = "results"
)

// QuizSession is the server-side state of one quiz run.
type QuizSession struct {
	ID            string                 `json:"id"`
	PoolID        string                 `json:"pool_id"`
	Phase         SessionPhase           `json:"phase"`
	Questions     Selection              `json:"questions"`
	CurrentIndex  int                    `json:"current_index"`
	Answers       map[string]ChoiceLabel `json:"answers"`
	SelectedCount int                    `json:"selected_count"`
	Results       *QuizResults           `json:"results,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// NewQuizSession starts a session in the quiz phase over selection.
func NewQuizSession(id, poolID string, selection Selection) *QuizSession {
	now := time.Now()
	return &QuizSession{
		ID:            id,
		PoolID:        poolID,
		Phase:         PhaseQuiz,
		Questions:     selection,
		Answers:       make(map[string]ChoiceLabel),
		SelectedCount: len(selection),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CurrentQuestion returns the question at CurrentIndex.
func (s *QuizSession) CurrentQuestion() (Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// IsLastQuestion reports whether CurrentIndex points at the final question.
func (s *QuizSession) IsLastQuestion() bool {
	return s.CurrentIndex == len(s.Questions)-1
}

// Answer records label for the current question, replacing any earlier answer.
func (s *QuizSession) Answer(label ChoiceLabel) error {
	if s.Phase != PhaseQuiz {
		return NewInvalidPhaseError(s.ID, s.Phase, "answer")
	}
	if !label.Valid() {
		return ValidationErrors{NewInvalidFormatError("choice", string(label))}
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return NewInternalError("session has no current question", nil)
	}
	if s.Answers == nil {
		s.Answers = make(map[string]ChoiceLabel)
	}
	s.Answers[q.ID] = label
	s.touch()
	return nil
}

// Next advances to the following question, completing the quiz when already on the last one.
// It reports whether the quiz was completed.
func (s *QuizSession) Next(excellentThreshold int) (bool, error) {
	if s.Phase != PhaseQuiz {
		return false, NewInvalidPhaseError(s.ID, s.Phase, "advance")
	}
	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
		s.touch()
		return false, nil
	}
	s.Complete(excellentThreshold)
	return true, nil
}

// Previous moves back one question; it does nothing on the first question.
func (s *QuizSession) Previous() error {
	if s.Phase != PhaseQuiz {
		return NewInvalidPhaseError(s.ID, s.Phase, "go back")
	}
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
		s.touch()
	}
	return nil
}

// Submit completes the quiz from any question. Unanswered questions score as incorrect.
func (s *QuizSession) Submit(excellentThreshold int) (*QuizResults, error) {
	if s.Phase != PhaseQuiz {
		return nil, NewInvalidPhaseError(s.ID, s.Phase, "submit")
	}
	return s.Complete(excellentThreshold), nil
}

// AnsweredCount returns how many questions of the selection have an answer.
func (s *QuizSession) AnsweredCount() int {
	n := 0
	for _, q := range s.Questions {
		if _, ok := s.Answers[q.ID]; ok {
			n++
		}
	}
	return n
}

// Complete scores the session and moves it to the results phase.
func (s *QuizSession) Complete(excellentThreshold int) *QuizResults {
	s.Results = Score(s.Questions, s.Answers, excellentThreshold)
	s.Phase = PhaseResults
	s.touch()
	return s.Results
}

// Restart replaces the questions with a fresh selection and clears answers and results.
func (s *QuizSession) Restart(selection Selection) error {
	if s.Phase != PhaseResults {
		return NewInvalidPhaseError(s.ID, s.Phase, "retake")
	}
	s.Questions = selection
	s.SelectedCount = len(selection)
	s.CurrentIndex = 0
	s.Answers = make(map[string]ChoiceLabel)
	s.Results = nil
	s.Phase = PhaseQuiz
	s.touch()
	return nil
}

func (s *QuizSession) touch() {
	s.UpdatedAt = time.Now()
}

// ReviewItem pairs a question with the answer given for it.
type ReviewItem struct {
	Question   Question    `json:"question"`
	UserAnswer ChoiceLabel `json:"user_answer,omitempty"`
	IsCorrect  bool        `json:"is_correct"`
}

// QuizResults is the scored outcome of a session.
type QuizResults struct {
	Correct    int          `json:"correct"`
	Incorrect  int          `json:"incorrect"`
	Total      int          `json:"total"`
	Percentage int          `json:"percentage"`
	Excellent  bool         `json:"excellent"`
	Review     []ReviewItem `json:"review"`
}

// Score compares answers against each question's correct label. Unanswered questions count as incorrect.
func Score(questions Selection, answers map[string]ChoiceLabel, excellentThreshold int) *QuizResults {
	results := &QuizResults{
		Total:  len(questions),
		Review: make([]ReviewItem, 0, len(questions)),
	}
	for _, q := range questions {
		answer := answers[q.ID]
		ok := q.IsCorrect(answer)
		if ok {
			results.Correct++
		}
		results.Review = append(results.Review, ReviewItem{Question: q, UserAnswer: answer, IsCorrect: ok})
	}
	results.Incorrect = results.Total - results.Correct
	results.Percentage = util.Percentage(results.Correct, results.Total)
	results.Excellent = results.Percentage >= excellentThreshold
	return results
}

// ResultRecord is the persisted summary of a completed session.
type ResultRecord struct {
	ID          string
	SessionID   string
	PoolID      string
	Total       int
	Correct     int
	Incorrect   int
	Percentage  int
	CompletedAt time.Time
}
