package repository

import (
	"context"
	"fmt"

	"quiz-deck/internal/domain"
	"quiz-deck/internal/repository/models"
	"quiz-deck/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	insertResultQuery = `INSERT INTO quiz_results
		(id, session_id, pool_id, total, correct, incorrect, percentage, completed_at)
		VALUES (:id, :session_id, :pool_id, :total, :correct, :incorrect, :percentage, :completed_at)`

	selectResultsByPoolQuery = `SELECT id "id", session_id "session_id", pool_id "pool_id", total "total",
		correct "correct", incorrect "incorrect", percentage "percentage", completed_at "completed_at"
		FROM quiz_results WHERE pool_id = ? ORDER BY completed_at DESC, id DESC`
)

// ResultDatabaseAdapter implements domain.ResultRepository using sqlx.
type ResultDatabaseAdapter struct {
	db DBTX
}

func NewResultDatabaseAdapter(db *sqlx.DB) domain.ResultRepository {
	return &ResultDatabaseAdapter{db: db}
}

func (a *ResultDatabaseAdapter) SaveResult(ctx context.Context, result *domain.ResultRecord) error {
	row := models.QuizResult{
		ID:          result.ID,
		SessionID:   result.SessionID,
		PoolID:      result.PoolID,
		Total:       result.Total,
		Correct:     result.Correct,
		Incorrect:   result.Incorrect,
		Percentage:  result.Percentage,
		CompletedAt: util.ToEpochMillis(result.CompletedAt),
	}
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, insertResultQuery, row); err != nil {
		return fmt.Errorf("failed to insert result %s: %w", result.ID, err)
	}
	return nil
}

func (a *ResultDatabaseAdapter) ListByPool(ctx context.Context, poolID string) ([]*domain.ResultRecord, error) {
	exec := GetExecutor(ctx, a.db)

	var rows []models.QuizResult
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(selectResultsByPoolQuery), poolID); err != nil {
		return nil, fmt.Errorf("failed to list results of pool %s: %w", poolID, err)
	}

	results := make([]*domain.ResultRecord, 0, len(rows))
	for _, r := range rows {
		results = append(results, &domain.ResultRecord{
			ID:          r.ID,
			SessionID:   r.SessionID,
			PoolID:      r.PoolID,
			Total:       r.Total,
			Correct:     r.Correct,
			Incorrect:   r.Incorrect,
			Percentage:  r.Percentage,
			CompletedAt: util.FromEpochMillis(r.CompletedAt),
		})
	}
	return results, nil
}
