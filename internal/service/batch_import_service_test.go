package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quiz-deck/internal/domain"
	"quiz-deck/internal/dto"
	"quiz-deck/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0o600))
	return path
}

func TestBatchImportService_ImportFiles(t *testing.T) {
	dir := t.TempDir()
	good1 := writeFile(t, dir, "linux.xlsx")
	good2 := writeFile(t, dir, "network.xlsx")
	bad := writeFile(t, dir, "empty.xlsx")
	missing := filepath.Join(dir, "missing.xlsx")

	pools := new(MockPoolService)
	pools.On("ImportPool", mock.Anything, "linux.xlsx", mock.Anything).Return(&dto.PoolResponse{ID: "p1", QuestionCount: 12}, nil)
	pools.On("ImportPool", mock.Anything, "network.xlsx", mock.Anything).Return(&dto.PoolResponse{ID: "p2", QuestionCount: 3}, nil)
	pools.On("ImportPool", mock.Anything, "empty.xlsx", mock.Anything).
		Return(nil, domain.NewError(domain.CodeNoValidQuestions, "No valid questions", nil))

	svc := NewBatchImportService(pools, 2, logger.Get())
	report, err := svc.ImportFiles(context.Background(), []string{good1, bad, missing, good2})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 2, report.Failed)
	require.Len(t, report.Files, 4)
	assert.Equal(t, "p1", report.Files[0].PoolID)
	assert.Equal(t, 12, report.Files[0].QuestionCount)
	assert.Error(t, report.Files[1].Err)
	assert.ErrorIs(t, report.Files[2].Err, os.ErrNotExist)
	assert.Equal(t, "p2", report.Files[3].PoolID)
	pools.AssertNumberOfCalls(t, "ImportPool", 3)
}

func TestBatchImportService_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewBatchImportService(new(MockPoolService), 0, logger.Get())
	report, err := svc.ImportFiles(ctx, []string{"a.xlsx"})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, report.Succeeded)
}
