package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quiz-deck/internal/cache"
	"quiz-deck/internal/domain"
	"quiz-deck/internal/logger"

	"go.uber.org/zap"
)

// SessionStore persists quiz sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session *domain.QuizSession) error
	Load(ctx context.Context, sessionID string) (*domain.QuizSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// cacheSessionStore keeps sessions as JSON in a domain.Cache. Every save refreshes the TTL.
type cacheSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

func NewSessionStore(c domain.Cache, ttl time.Duration) SessionStore {
	return &cacheSessionStore{cache: c, ttl: ttl}
}

func (s *cacheSessionStore) Save(ctx context.Context, session *domain.QuizSession) error {
	if session == nil {
		return domain.NewInvalidInputError("cannot store nil session")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to marshal session", err)
	}

	key := cache.SessionStateKey(session.ID)
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to store session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError("failed to store session", err)
	}
	return nil
}

func (s *cacheSessionStore) Load(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	key := cache.SessionStateKey(sessionID)
	data, err := s.cache.Get(ctx, key)
	if errors.Is(err, domain.ErrCacheMiss) {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	if err != nil {
		logger.Get().Error("Failed to load session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError("failed to load session", err)
	}

	var session domain.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		logger.Get().Error("Corrupt session in cache, discarding", zap.Error(err), zap.String("key", key))
		_ = s.cache.Delete(ctx, key)
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	if session.Answers == nil {
		session.Answers = make(map[string]domain.ChoiceLabel)
	}
	return &session, nil
}

func (s *cacheSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, cache.SessionStateKey(sessionID)); err != nil {
		return domain.NewInternalError("failed to delete session", err)
	}
	return nil
}
