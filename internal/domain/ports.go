package domain

import (
	"context"
	"io"
)

// QuestionSource turns an uploaded document into a pool of validated questions.
type QuestionSource interface {
	// Supports reports whether the file name has a format this source can decode.
	Supports(fileName string) bool

	// Parse decodes r. Rows that fail validation are dropped; an empty result is a *NoValidQuestionsError.
	Parse(ctx context.Context, r io.Reader) (Pool, error)
}

// PoolRepository defines the interface for question pool persistence
type PoolRepository interface {
	// SavePool persists the pool metadata and all of its questions.
	SavePool(ctx context.Context, info *PoolInfo, pool Pool) error

	// GetPool returns the pool metadata, or nil when it does not exist.
	GetPool(ctx context.Context, id string) (*PoolInfo, error)

	// GetQuestions returns the questions of a pool in upload order.
	GetQuestions(ctx context.Context, poolID string) (Pool, error)

	// DeletePool removes a pool and its questions. Deleting a missing pool is not an error.
	DeletePool(ctx context.Context, id string) error
}

// ResultRepository defines the interface for completed quiz result persistence
type ResultRepository interface {
	// SaveResult persists the summary of a completed session.
	SaveResult(ctx context.Context, result *ResultRecord) error

	// ListByPool returns the results recorded for a pool, newest first.
	ListByPool(ctx context.Context, poolID string) ([]*ResultRecord, error)
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
