package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"time"

	"quiz-deck/internal/config"
	"quiz-deck/internal/domain"
	"quiz-deck/internal/dto"
	"quiz-deck/internal/logger"
	"quiz-deck/internal/util"

	"go.uber.org/zap"
)

// PoolService imports question spreadsheets and serves the resulting pools.
type PoolService interface {
	ImportPool(ctx context.Context, fileName string, r io.Reader) (*dto.PoolResponse, error)
	GetPool(ctx context.Context, poolID string) (*dto.PoolResponse, error)
	GetQuestions(ctx context.Context, poolID string) (domain.Pool, error)
	DeletePool(ctx context.Context, poolID string) error
	ListResults(ctx context.Context, poolID string) (*dto.PoolResultsResponse, error)
}

type poolService struct {
	pools     domain.PoolRepository
	results   domain.ResultRepository
	source    domain.QuestionSource
	txManager domain.TransactionManager
	cfg       config.QuizConfig
}

func NewPoolService(
	pools domain.PoolRepository,
	results domain.ResultRepository,
	source domain.QuestionSource,
	txManager domain.TransactionManager,
	cfg config.QuizConfig,
) PoolService {
	return &poolService{
		pools:     pools,
		results:   results,
		source:    source,
		txManager: txManager,
		cfg:       cfg,
	}
}

func (s *poolService) ImportPool(ctx context.Context, fileName string, r io.Reader) (*dto.PoolResponse, error) {
	if !s.source.Supports(fileName) {
		return nil, domain.NewUnsupportedFileError(fileName)
	}

	pool, err := s.source.Parse(ctx, r)
	if err != nil {
		var noValid *domain.NoValidQuestionsError
		if errors.As(err, &noValid) {
			return nil, domain.NewError(domain.CodeNoValidQuestions, "No valid questions found in the Excel file", err).
				WithContext("rows_read", noValid.RowsRead)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, domain.NewError(domain.CodeInvalidInput, "Failed to read the Excel file", err).
			WithContext("file_name", fileName)
	}
	if err := pool.Validate(); err != nil {
		return nil, domain.NewInternalError("parsed pool is inconsistent", err)
	}

	info := &domain.PoolInfo{
		ID:            util.NewULID(),
		Name:          filepath.Base(fileName),
		QuestionCount: len(pool),
		CreatedAt:     time.Now().UTC(),
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.pools.SavePool(txCtx, info, pool)
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to save question pool", err)
	}

	logger.Get().Info("Imported question pool",
		zap.String("pool_id", info.ID),
		zap.String("name", info.Name),
		zap.Int("questions", info.QuestionCount),
	)
	return s.toPoolResponse(info), nil
}

func (s *poolService) GetPool(ctx context.Context, poolID string) (*dto.PoolResponse, error) {
	info, err := s.getInfo(ctx, poolID)
	if err != nil {
		return nil, err
	}
	return s.toPoolResponse(info), nil
}

func (s *poolService) GetQuestions(ctx context.Context, poolID string) (domain.Pool, error) {
	if _, err := s.getInfo(ctx, poolID); err != nil {
		return nil, err
	}
	pool, err := s.pools.GetQuestions(ctx, poolID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load questions", err)
	}
	return pool, nil
}

func (s *poolService) DeletePool(ctx context.Context, poolID string) error {
	if _, err := s.getInfo(ctx, poolID); err != nil {
		return err
	}
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.pools.DeletePool(txCtx, poolID)
	})
	if err != nil {
		return domain.NewInternalError("failed to delete question pool", err)
	}
	logger.Get().Info("Deleted question pool", zap.String("pool_id", poolID))
	return nil
}

func (s *poolService) ListResults(ctx context.Context, poolID string) (*dto.PoolResultsResponse, error) {
	if _, err := s.getInfo(ctx, poolID); err != nil {
		return nil, err
	}
	records, err := s.results.ListByPool(ctx, poolID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list results", err)
	}

	resp := &dto.PoolResultsResponse{PoolID: poolID, Results: make([]dto.ResultSummaryResponse, 0, len(records))}
	for _, r := range records {
		resp.Results = append(resp.Results, dto.ResultSummaryResponse{
			ID:          r.ID,
			SessionID:   r.SessionID,
			Total:       r.Total,
			Correct:     r.Correct,
			Incorrect:   r.Incorrect,
			Percentage:  r.Percentage,
			CompletedAt: r.CompletedAt,
		})
	}
	return resp, nil
}

func (s *poolService) getInfo(ctx context.Context, poolID string) (*domain.PoolInfo, error) {
	info, err := s.pools.GetPool(ctx, poolID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load question pool", err)
	}
	if info == nil {
		return nil, domain.NewPoolNotFoundError(poolID)
	}
	return info, nil
}

func (s *poolService) toPoolResponse(info *domain.PoolInfo) *dto.PoolResponse {
	return &dto.PoolResponse{
		ID:            info.ID,
		Name:          info.Name,
		QuestionCount: info.QuestionCount,
		MinCount:      domain.MinQuizCount,
		MaxCount:      info.QuestionCount,
		DefaultCount:  domain.DefaultQuizCount(info.QuestionCount, s.cfg.DefaultCount),
		CreatedAt:     info.CreatedAt,
	}
}
