package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-deck/internal/domain"
	"quiz-deck/internal/repository/models"
	"quiz-deck/internal/util"

	"github.com/jmoiron/sqlx"
)

// Column aliases are quoted so that drivers that upper-case identifiers still match the db tags.
const (
	insertPoolQuery = `INSERT INTO pools (id, name, question_count, created_at)
		VALUES (:id, :name, :question_count, :created_at)`

	insertQuestionQuery = `INSERT INTO questions
		(pool_id, id, position, prompt, option_a, option_b, option_c, option_d, correct_label, explanation)
		VALUES (:pool_id, :id, :position, :prompt, :option_a, :option_b, :option_c, :option_d, :correct_label, :explanation)`

	selectPoolQuery = `SELECT id "id", name "name", question_count "question_count", created_at "created_at"
		FROM pools WHERE id = ?`

	selectQuestionsQuery = `SELECT pool_id "pool_id", id "id", position "position", prompt "prompt",
		option_a "option_a", option_b "option_b", option_c "option_c", option_d "option_d",
		correct_label "correct_label", explanation "explanation"
		FROM questions WHERE pool_id = ? ORDER BY position`

	deleteQuestionsQuery = `DELETE FROM questions WHERE pool_id = ?`
	deleteResultsQuery   = `DELETE FROM quiz_results WHERE pool_id = ?`
	deletePoolQuery      = `DELETE FROM pools WHERE id = ?`
)

// PoolDatabaseAdapter implements domain.PoolRepository using sqlx.
type PoolDatabaseAdapter struct {
	db DBTX
}

func NewPoolDatabaseAdapter(db *sqlx.DB) domain.PoolRepository {
	return &PoolDatabaseAdapter{db: db}
}

// SavePool inserts the pool row and one row per question. Run it inside a transaction so a
// failed question insert leaves no partial pool.
func (a *PoolDatabaseAdapter) SavePool(ctx context.Context, info *domain.PoolInfo, pool domain.Pool) error {
	exec := GetExecutor(ctx, a.db)

	if _, err := exec.NamedExecContext(ctx, insertPoolQuery, toModelPool(info)); err != nil {
		return fmt.Errorf("failed to insert pool %s: %w", info.ID, err)
	}
	for i, q := range pool {
		if _, err := exec.NamedExecContext(ctx, insertQuestionQuery, toModelQuestion(info.ID, i, q)); err != nil {
			return fmt.Errorf("failed to insert question %s of pool %s: %w", q.ID, info.ID, err)
		}
	}
	return nil
}

func (a *PoolDatabaseAdapter) GetPool(ctx context.Context, id string) (*domain.PoolInfo, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.Pool
	if err := exec.GetContext(ctx, &row, exec.Rebind(selectPoolQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pool %s: %w", id, err)
	}
	return toDomainPoolInfo(row), nil
}

func (a *PoolDatabaseAdapter) GetQuestions(ctx context.Context, poolID string) (domain.Pool, error) {
	exec := GetExecutor(ctx, a.db)

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(selectQuestionsQuery), poolID); err != nil {
		return nil, fmt.Errorf("failed to get questions of pool %s: %w", poolID, err)
	}

	pool := make(domain.Pool, 0, len(rows))
	for _, r := range rows {
		pool = append(pool, toDomainQuestion(r))
	}
	return pool, nil
}

// DeletePool removes the pool together with its questions and recorded results.
func (a *PoolDatabaseAdapter) DeletePool(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, a.db)

	for _, q := range []string{deleteQuestionsQuery, deleteResultsQuery, deletePoolQuery} {
		if _, err := exec.ExecContext(ctx, exec.Rebind(q), id); err != nil {
			return fmt.Errorf("failed to delete pool %s: %w", id, err)
		}
	}
	return nil
}

func toModelPool(info *domain.PoolInfo) models.Pool {
	return models.Pool{
		ID:            info.ID,
		Name:          info.Name,
		QuestionCount: info.QuestionCount,
		CreatedAt:     util.ToEpochMillis(info.CreatedAt),
	}
}

func toDomainPoolInfo(row models.Pool) *domain.PoolInfo {
	return &domain.PoolInfo{
		ID:            row.ID,
		Name:          row.Name,
		QuestionCount: row.QuestionCount,
		CreatedAt:     util.FromEpochMillis(row.CreatedAt),
	}
}

func toModelQuestion(poolID string, position int, q domain.Question) models.Question {
	return models.Question{
		PoolID:       poolID,
		ID:           q.ID,
		Position:     position,
		Prompt:       q.Prompt,
		OptionA:      q.Options[domain.ChoiceA],
		OptionB:      q.Options[domain.ChoiceB],
		OptionC:      q.Options[domain.ChoiceC],
		OptionD:      q.Options[domain.ChoiceD],
		CorrectLabel: string(q.Correct),
		Explanation:  util.StringToNullString(q.Explanation),
	}
}

func toDomainQuestion(r models.Question) domain.Question {
	return domain.NewQuestion(
		r.ID,
		r.Prompt,
		[4]string{r.OptionA, r.OptionB, r.OptionC, r.OptionD},
		domain.ChoiceLabel(r.CorrectLabel),
		r.Explanation.String,
	)
}
