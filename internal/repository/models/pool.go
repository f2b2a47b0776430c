package models

import "database/sql"

// Pool is the row shape of the pools table.
type Pool struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	QuestionCount int    `db:"question_count"`
	CreatedAt     int64  `db:"created_at"`
}

// Question is the row shape of the questions table.
type Question struct {
	PoolID       string         `db:"pool_id"`
	ID           string         `db:"id"`
	Position     int            `db:"position"`
	Prompt       string         `db:"prompt"`
	OptionA      string         `db:"option_a"`
	OptionB      string         `db:"option_b"`
	OptionC      string         `db:"option_c"`
	OptionD      string         `db:"option_d"`
	CorrectLabel string         `db:"correct_label"`
	Explanation  sql.NullString `db:"explanation"`
}

// QuizResult is the row shape of the quiz_results table.
type QuizResult struct {
	ID          string `db:"id"`
	SessionID   string `db:"session_id"`
	PoolID      string `db:"pool_id"`
	Total       int    `db:"total"`
	Correct     int    `db:"correct"`
	Incorrect   int    `db:"incorrect"`
	Percentage  int    `db:"percentage"`
	CompletedAt int64  `db:"completed_at"`
}
