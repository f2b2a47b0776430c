package service

import (
	"context"
	"errors"
	"time"

	"quiz-deck/internal/config"
	"quiz-deck/internal/domain"
	"quiz-deck/internal/dto"
	"quiz-deck/internal/logger"
	"quiz-deck/internal/sampler"
	"quiz-deck/internal/util"
	"quiz-deck/internal/validation"

	"go.uber.org/zap"
)

// SessionService drives a quiz from count selection through results and retakes.
type SessionService interface {
	StartSession(ctx context.Context, req *dto.StartSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Answer(ctx context.Context, sessionID string, choice string) (*dto.SessionResponse, error)
	Next(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Previous(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Submit(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Retake(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	GetResults(ctx context.Context, sessionID string) (*dto.ResultsResponse, error)
	Reset(ctx context.Context, sessionID string) error
}

type sessionService struct {
	pools     PoolService
	store     SessionStore
	results   domain.ResultRepository
	sampler   *sampler.Sampler
	validator *validation.Validator
	cfg       config.QuizConfig
}

func NewSessionService(
	pools PoolService,
	store SessionStore,
	results domain.ResultRepository,
	smp *sampler.Sampler,
	cfg config.QuizConfig,
) SessionService {
	if smp == nil {
		smp = sampler.New(nil)
	}
	return &sessionService{
		pools:     pools,
		store:     store,
		results:   results,
		sampler:   smp,
		validator: validation.NewValidator(),
		cfg:       cfg,
	}
}

func (s *sessionService) StartSession(ctx context.Context, req *dto.StartSessionRequest) (*dto.SessionResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	if errs := s.validator.ValidateStartSessionRequest(req.PoolID, req.Count); len(errs) > 0 {
		return nil, errs
	}

	pool, err := s.pools.GetQuestions(ctx, req.PoolID)
	if err != nil {
		return nil, err
	}
	if errs := s.validator.ValidateQuizCount(req.Count, len(pool)); len(errs) > 0 {
		return nil, errs
	}

	selection, err := s.selectQuestions(pool, req.Count)
	if err != nil {
		return nil, err
	}

	session := domain.NewQuizSession(util.NewULID(), req.PoolID, selection)
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("Started quiz session",
		zap.String("session_id", session.ID),
		zap.String("pool_id", session.PoolID),
		zap.Int("count", session.SelectedCount),
		zap.Int("pool_size", len(pool)),
	)
	return toSessionResponse(session), nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

func (s *sessionService) Answer(ctx context.Context, sessionID string, choice string) (*dto.SessionResponse, error) {
	label, errs := s.validator.ValidateChoice(choice)
	if len(errs) > 0 {
		return nil, errs
	}
	return s.update(ctx, sessionID, func(session *domain.QuizSession) error {
		return session.Answer(label)
	})
}

// Next on the last question completes the quiz.
func (s *sessionService) Next(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return s.update(ctx, sessionID, func(session *domain.QuizSession) error {
		_, err := session.Next(s.cfg.ExcellentThreshold)
		return err
	})
}

func (s *sessionService) Previous(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return s.update(ctx, sessionID, func(session *domain.QuizSession) error {
		return session.Previous()
	})
}

func (s *sessionService) Submit(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return s.update(ctx, sessionID, func(session *domain.QuizSession) error {
		_, err := session.Submit(s.cfg.ExcellentThreshold)
		return err
	})
}

// Retake draws a new selection of the same size from the session's pool.
func (s *sessionService) Retake(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return s.update(ctx, sessionID, func(session *domain.QuizSession) error {
		if session.Phase != domain.PhaseResults {
			return domain.NewInvalidPhaseError(session.ID, session.Phase, "retake")
		}
		pool, err := s.pools.GetQuestions(ctx, session.PoolID)
		if err != nil {
			return err
		}
		selection, err := s.selectQuestions(pool, session.SelectedCount)
		if err != nil {
			return err
		}
		return session.Restart(selection)
	})
}

func (s *sessionService) GetResults(ctx context.Context, sessionID string) (*dto.ResultsResponse, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase != domain.PhaseResults || session.Results == nil {
		return nil, domain.NewInvalidPhaseError(session.ID, session.Phase, "view results")
	}
	return toResultsResponse(session.Results), nil
}

// Reset discards the session. Resetting an unknown session succeeds.
func (s *sessionService) Reset(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	logger.Get().Info("Reset quiz session", zap.String("session_id", sessionID))
	return nil
}

// update loads a session, applies fn and saves it. A transition into the results phase
// records the outcome in the result history.
func (s *sessionService) update(ctx context.Context, sessionID string, fn func(*domain.QuizSession) error) (*dto.SessionResponse, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	before := session.Phase
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	if before == domain.PhaseQuiz && session.Phase == domain.PhaseResults {
		s.recordResult(ctx, session)
	}
	return toSessionResponse(session), nil
}

func (s *sessionService) selectQuestions(pool domain.Pool, count int) (domain.Selection, error) {
	selection, err := s.sampler.SelectRandom(pool, count)
	if err != nil {
		var countErr *domain.InvalidCountError
		if errors.As(err, &countErr) {
			return nil, domain.NewInvalidCountDomainError(countErr)
		}
		return nil, domain.NewInternalError("failed to select questions", err)
	}
	return selection, nil
}

// recordResult persists the completed quiz. Failures are logged; the session outcome stands.
func (s *sessionService) recordResult(ctx context.Context, session *domain.QuizSession) {
	if s.results == nil || session.Results == nil {
		return
	}
	record := &domain.ResultRecord{
		ID:          util.NewULID(),
		SessionID:   session.ID,
		PoolID:      session.PoolID,
		Total:       session.Results.Total,
		Correct:     session.Results.Correct,
		Incorrect:   session.Results.Incorrect,
		Percentage:  session.Results.Percentage,
		CompletedAt: time.Now().UTC(),
	}
	if err := s.results.SaveResult(ctx, record); err != nil {
		logger.Get().Error("Failed to record quiz result",
			zap.Error(err),
			zap.String("session_id", session.ID),
			zap.String("pool_id", session.PoolID),
		)
		return
	}
	logger.Get().Info("Quiz completed",
		zap.String("session_id", session.ID),
		zap.Int("correct", record.Correct),
		zap.Int("total", record.Total),
		zap.Int("percentage", record.Percentage),
	)
}
