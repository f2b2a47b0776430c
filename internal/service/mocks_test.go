package service

import (
	"context"
	"io"
	"time"

	"quiz-deck/internal/domain"
	"quiz-deck/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockPoolRepository ---
type MockPoolRepository struct {
	mock.Mock
}

func (m *MockPoolRepository) SavePool(ctx context.Context, info *domain.PoolInfo, pool domain.Pool) error {
	args := m.Called(ctx, info, pool)
	return args.Error(0)
}

func (m *MockPoolRepository) GetPool(ctx context.Context, id string) (*domain.PoolInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PoolInfo), args.Error(1)
}

func (m *MockPoolRepository) GetQuestions(ctx context.Context, poolID string) (domain.Pool, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Pool), args.Error(1)
}

func (m *MockPoolRepository) DeletePool(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockResultRepository ---
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) SaveResult(ctx context.Context, result *domain.ResultRecord) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) ListByPool(ctx context.Context, poolID string) ([]*domain.ResultRecord, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ResultRecord), args.Error(1)
}

// --- MockQuestionSource ---
type MockQuestionSource struct {
	mock.Mock
}

func (m *MockQuestionSource) Supports(fileName string) bool {
	return m.Called(fileName).Bool(0)
}

func (m *MockQuestionSource) Parse(ctx context.Context, r io.Reader) (domain.Pool, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Pool), args.Error(1)
}

// --- MockPoolService ---
type MockPoolService struct {
	mock.Mock
}

func (m *MockPoolService) ImportPool(ctx context.Context, fileName string, r io.Reader) (*dto.PoolResponse, error) {
	args := m.Called(ctx, fileName, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PoolResponse), args.Error(1)
}

func (m *MockPoolService) GetPool(ctx context.Context, poolID string) (*dto.PoolResponse, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PoolResponse), args.Error(1)
}

func (m *MockPoolService) GetQuestions(ctx context.Context, poolID string) (domain.Pool, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Pool), args.Error(1)
}

func (m *MockPoolService) DeletePool(ctx context.Context, poolID string) error {
	return m.Called(ctx, poolID).Error(0)
}

func (m *MockPoolService) ListResults(ctx context.Context, poolID string) (*dto.PoolResultsResponse, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PoolResultsResponse), args.Error(1)
}

// passthroughTxManager runs fn directly and counts the calls.
type passthroughTxManager struct {
	calls int
}

func (p *passthroughTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

// mockCache is a manual domain.Cache whose behaviour each test overrides per method.
type mockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, expiration time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", domain.ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

func (m *mockCache) Ping(ctx context.Context) error { return nil }

var (
	_ domain.PoolRepository     = (*MockPoolRepository)(nil)
	_ domain.ResultRepository   = (*MockResultRepository)(nil)
	_ domain.QuestionSource     = (*MockQuestionSource)(nil)
	_ domain.TransactionManager = (*passthroughTxManager)(nil)
	_ domain.Cache              = (*mockCache)(nil)
	_ PoolService               = (*MockPoolService)(nil)
)
