package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FileImportResult is the outcome of importing one spreadsheet.
type FileImportResult struct {
	Path          string
	PoolID        string
	QuestionCount int
	Err           error
}

// BatchImportReport summarizes a bulk import, in the order the paths were given.
type BatchImportReport struct {
	Files     []FileImportResult
	Succeeded int
	Failed    int
	Duration  time.Duration
}

// BatchImportService imports many spreadsheets with bounded parallelism.
type BatchImportService interface {
	ImportFiles(ctx context.Context, paths []string) (*BatchImportReport, error)
}

type batchImportService struct {
	pools       PoolService
	concurrency int
	logger      *zap.Logger
}

func NewBatchImportService(pools PoolService, concurrency int, logger *zap.Logger) BatchImportService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &batchImportService{pools: pools, concurrency: concurrency, logger: logger}
}

// ImportFiles imports every path. A failing file is recorded in the report and does not stop the
// others; only cancellation of ctx aborts the batch.
func (s *batchImportService) ImportFiles(ctx context.Context, paths []string) (*BatchImportReport, error) {
	start := time.Now()
	report := &BatchImportReport{Files: make([]FileImportResult, len(paths))}
	s.logger.Info("Starting batch import", zap.Int("files", len(paths)), zap.Int("concurrency", s.concurrency))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	var mu sync.Mutex
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := s.importFile(gctx, path)
			report.Files[i] = res

			mu.Lock()
			if res.Err != nil {
				report.Failed++
			} else {
				report.Succeeded++
			}
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	report.Duration = time.Since(start)
	s.logger.Info("Batch import finished",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration),
	)
	if err != nil {
		return report, fmt.Errorf("batch import aborted: %w", err)
	}
	return report, nil
}

func (s *batchImportService) importFile(ctx context.Context, path string) FileImportResult {
	res := FileImportResult{Path: path}

	f, err := os.Open(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to open %s: %w", path, err)
		s.logger.Error("Skipping file", zap.String("path", path), zap.Error(res.Err))
		return res
	}
	defer f.Close()

	pool, err := s.pools.ImportPool(ctx, filepath.Base(path), f)
	if err != nil {
		res.Err = err
		s.logger.Error("Failed to import file", zap.String("path", path), zap.Error(err))
		return res
	}

	res.PoolID = pool.ID
	res.QuestionCount = pool.QuestionCount
	s.logger.Debug("Imported file", zap.String("path", path), zap.String("pool_id", pool.ID))
	return res
}
