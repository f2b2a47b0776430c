package dto

// StartSessionRequest asks for a quiz of Count questions drawn from a pool.
// @Description Request body for starting a quiz session
type StartSessionRequest struct {
	PoolID string `json:"pool_id"`
	Count  int    `json:"count"`
}

// AnswerRequest selects an option for the current question.
// @Description Request body for answering the current question
type AnswerRequest struct {
	Choice string `json:"choice"`
}

// OptionResponse is one labelled option of a question.
type OptionResponse struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuestionResponse is a question as shown during the quiz, without the answer key.
type QuestionResponse struct {
	ID      string           `json:"id"`
	Prompt  string           `json:"prompt"`
	Options []OptionResponse `json:"options"`
}

// SessionResponse is the state of a quiz session.
// @Description Quiz session state; Question is set in the quiz phase, Results in the results phase
type SessionResponse struct {
	ID             string            `json:"id"`
	PoolID         string            `json:"pool_id"`
	Phase          string            `json:"phase"`
	CurrentIndex   int               `json:"current_index"`
	Total          int               `json:"total"`
	AnsweredCount  int               `json:"answered_count"`
	IsLast         bool              `json:"is_last"`
	Question       *QuestionResponse `json:"question,omitempty"`
	SelectedAnswer string            `json:"selected_answer,omitempty"`
	Results        *ResultsResponse  `json:"results,omitempty"`
}

// ReviewItemResponse shows one question after completion, including the answer key.
type ReviewItemResponse struct {
	QuestionID    string           `json:"question_id"`
	Prompt        string           `json:"prompt"`
	Options       []OptionResponse `json:"options"`
	CorrectAnswer string           `json:"correct_answer"`
	UserAnswer    string           `json:"user_answer,omitempty"`
	IsCorrect     bool             `json:"is_correct"`
	Explanation   string           `json:"explanation,omitempty"`
}

// ResultsResponse is the scored outcome of a completed session.
// @Description Score summary and per-question review
type ResultsResponse struct {
	Correct    int                  `json:"correct"`
	Incorrect  int                  `json:"incorrect"`
	Total      int                  `json:"total"`
	Percentage int                  `json:"percentage"`
	Excellent  bool                 `json:"excellent"`
	Review     []ReviewItemResponse `json:"review"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
