// Command import_pools loads question spreadsheets from disk into the pool database.
//
//	import_pools -dir ./sheets
//	import_pools linux.xlsx networking.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"quiz-deck/internal/adapter/spreadsheet"
	"quiz-deck/internal/config"
	"quiz-deck/internal/database"
	"quiz-deck/internal/logger"
	"quiz-deck/internal/repository"
	"quiz-deck/internal/service"

	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "", "directory whose .xlsx files are imported")
	concurrency := flag.Int("concurrency", 0, "parallel imports (defaults to import.concurrency)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	paths := flag.Args()
	if *dir != "" {
		matches, err := filepath.Glob(filepath.Join(*dir, "*"+spreadsheet.FileExtension))
		if err != nil {
			l.Fatal("Failed to list directory", zap.String("dir", *dir), zap.Error(err))
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: import_pools [-dir DIR] [FILE.xlsx ...]")
		os.Exit(2)
	}

	workers := cfg.Import.Concurrency
	if *concurrency > 0 {
		workers = *concurrency
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, cfg.DB.Driver, database.Up); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}

	poolService := service.NewPoolService(
		repository.NewPoolDatabaseAdapter(db),
		repository.NewResultDatabaseAdapter(db),
		spreadsheet.NewExcelQuestionSource(),
		repository.NewTransactionManagerAdapter(db),
		cfg.Quiz,
	)

	report, err := service.NewBatchImportService(poolService, workers, l).ImportFiles(ctx, paths)
	if err != nil {
		l.Fatal("Import aborted", zap.Error(err))
	}

	for _, f := range report.Files {
		if f.Err != nil {
			fmt.Printf("FAIL %s: %v\n", f.Path, f.Err)
			continue
		}
		fmt.Printf("OK   %s -> pool %s (%d questions)\n", f.Path, f.PoolID, f.QuestionCount)
	}
	fmt.Printf("%d imported, %d failed in %s\n", report.Succeeded, report.Failed, report.Duration)

	if report.Failed > 0 {
		os.Exit(1)
	}
}
