package dto

import "time"

// PoolResponse describes an imported question pool and the quiz sizes it allows.
// @Description Question pool with count bounds
type PoolResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	QuestionCount int       `json:"question_count"`
	MinCount      int       `json:"min_count"`
	MaxCount      int       `json:"max_count"`
	DefaultCount  int       `json:"default_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ResultSummaryResponse is one completed quiz of a pool.
type ResultSummaryResponse struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Total       int       `json:"total"`
	Correct     int       `json:"correct"`
	Incorrect   int       `json:"incorrect"`
	Percentage  int       `json:"percentage"`
	CompletedAt time.Time `json:"completed_at"`
}

// PoolResultsResponse lists the completed quizzes of a pool, newest first.
type PoolResultsResponse struct {
	PoolID  string                  `json:"pool_id"`
	Results []ResultSummaryResponse `json:"results"`
}
