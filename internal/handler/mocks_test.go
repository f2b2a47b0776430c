package handler

import (
	"context"
	"errors"
	"io"
	"time"

	"quiz-deck/internal/domain"
	"quiz-deck/internal/dto"
)

// MockPoolService is a mock implementation of service.PoolService
type MockPoolService struct {
	ImportPoolFunc  func(ctx context.Context, fileName string, r io.Reader) (*dto.PoolResponse, error)
	GetPoolFunc     func(ctx context.Context, poolID string) (*dto.PoolResponse, error)
	DeletePoolFunc  func(ctx context.Context, poolID string) error
	ListResultsFunc func(ctx context.Context, poolID string) (*dto.PoolResultsResponse, error)
}

func (m *MockPoolService) ImportPool(ctx context.Context, fileName string, r io.Reader) (*dto.PoolResponse, error) {
	if m.ImportPoolFunc != nil {
		return m.ImportPoolFunc(ctx, fileName, r)
	}
	return nil, errors.New("ImportPoolFunc not implemented")
}

func (m *MockPoolService) GetPool(ctx context.Context, poolID string) (*dto.PoolResponse, error) {
	if m.GetPoolFunc != nil {
		return m.GetPoolFunc(ctx, poolID)
	}
	return nil, errors.New("GetPoolFunc not implemented")
}

func (m *MockPoolService) GetQuestions(ctx context.Context, poolID string) (domain.Pool, error) {
	return nil, errors.New("GetQuestions not implemented")
}

func (m *MockPoolService) DeletePool(ctx context.Context, poolID string) error {
	if m.DeletePoolFunc != nil {
		return m.DeletePoolFunc(ctx, poolID)
	}
	return errors.New("DeletePoolFunc not implemented")
}

func (m *MockPoolService) ListResults(ctx context.Context, poolID string) (*dto.PoolResultsResponse, error) {
	if m.ListResultsFunc != nil {
		return m.ListResultsFunc(ctx, poolID)
	}
	return nil, errors.New("ListResultsFunc not implemented")
}

type sessionFunc func(ctx context.Context, sessionID string) (*dto.SessionResponse, error)

// MockSessionService is a mock implementation of service.SessionService
type MockSessionService struct {
	StartSessionFunc func(ctx context.Context, req *dto.StartSessionRequest) (*dto.SessionResponse, error)
	GetSessionFunc   sessionFunc
	AnswerFunc       func(ctx context.Context, sessionID, choice string) (*dto.SessionResponse, error)
	NextFunc         sessionFunc
	PreviousFunc     sessionFunc
	SubmitFunc       sessionFunc
	RetakeFunc       sessionFunc
	GetResultsFunc   func(ctx context.Context, sessionID string) (*dto.ResultsResponse, error)
	ResetFunc        func(ctx context.Context, sessionID string) error
}

func call(fn sessionFunc, ctx context.Context, id string) (*dto.SessionResponse, error) {
	if fn != nil {
		return fn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *MockSessionService) StartSession(ctx context.Context, req *dto.StartSessionRequest) (*dto.SessionResponse, error) {
	if m.StartSessionFunc != nil {
		return m.StartSessionFunc(ctx, req)
	}
	return nil, errors.New("StartSessionFunc not implemented")
}

func (m *MockSessionService) GetSession(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return call(m.GetSessionFunc, ctx, id)
}

func (m *MockSessionService) Answer(ctx context.Context, id, choice string) (*dto.SessionResponse, error) {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, id, choice)
	}
	return nil, errors.New("AnswerFunc not implemented")
}

func (m *MockSessionService) Next(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return call(m.NextFunc, ctx, id)
}

func (m *MockSessionService) Previous(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return call(m.PreviousFunc, ctx, id)
}

func (m *MockSessionService) Submit(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return call(m.SubmitFunc, ctx, id)
}

func (m *MockSessionService) Retake(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return call(m.RetakeFunc, ctx, id)
}

func (m *MockSessionService) GetResults(ctx context.Context, id string) (*dto.ResultsResponse, error) {
	if m.GetResultsFunc != nil {
		return m.GetResultsFunc(ctx, id)
	}
	return nil, errors.New("GetResultsFunc not implemented")
}

func (m *MockSessionService) Reset(ctx context.Context, id string) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, id)
	}
	return errors.New("ResetFunc not implemented")
}

// failingCache is a domain.Cache whose Ping always fails.
type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) (string, error) { return "", domain.ErrCacheMiss }
func (failingCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.New("down")
}
func (failingCache) Delete(ctx context.Context, key string) error { return errors.New("down") }
func (failingCache) Ping(ctx context.Context) error               { return errors.New("connection refused") }
