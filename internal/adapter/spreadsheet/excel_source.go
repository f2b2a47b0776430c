package spreadsheet

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quiz-deck/internal/domain"
	"quiz-deck/internal/logger"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Column positions of a question row.
const (
	colPrompt = iota
	colOptionA
	colOptionB
	colOptionC
	colOptionD
	colCorrect
	colExplanation

	requiredColumns = colCorrect + 1
)

// FileExtension is the only spreadsheet format accepted for upload.
const FileExtension = ".xlsx"

// ExcelQuestionSource implements domain.QuestionSource for .xlsx workbooks.
type ExcelQuestionSource struct{}

// NewExcelQuestionSource creates a new ExcelQuestionSource.
func NewExcelQuestionSource() domain.QuestionSource {
	return &ExcelQuestionSource{}
}

// Supports reports whether fileName has the .xlsx extension.
func (s *ExcelQuestionSource) Supports(fileName string) bool {
	return strings.EqualFold(filepath.Ext(fileName), FileExtension)
}

// Parse decodes the first worksheet of the workbook in r into a pool.
// Rows missing a prompt, any of the four options, or a valid correct label are skipped.
func (s *ExcelQuestionSource) Parse(ctx context.Context, r io.Reader) (domain.Pool, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &domain.NoValidQuestionsError{}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	pool := make(domain.Pool, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q, ok := rowToQuestion(row, len(pool))
		if !ok {
			skipped++
			continue
		}
		pool = append(pool, q)
	}

	if len(pool) == 0 {
		return nil, &domain.NoValidQuestionsError{RowsRead: len(rows)}
	}

	logger.Get().Debug("Parsed question spreadsheet",
		zap.String("sheet", sheets[0]),
		zap.Int("rows", len(rows)),
		zap.Int("questions", len(pool)),
		zap.Int("skipped", skipped),
	)
	return pool, nil
}

// rowToQuestion converts one row; index is the position among kept rows and becomes the id.
func rowToQuestion(row []string, index int) (domain.Question, bool) {
	if len(row) < requiredColumns {
		return domain.Question{}, false
	}

	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = strings.TrimSpace(c)
	}
	for i := 0; i < requiredColumns; i++ {
		if cells[i] == "" {
			return domain.Question{}, false
		}
	}

	correct, ok := domain.ParseChoiceLabel(cells[colCorrect])
	if !ok {
		return domain.Question{}, false
	}

	var explanation string
	if len(cells) > colExplanation {
		explanation = cells[colExplanation]
	}

	return domain.NewQuestion(
		fmt.Sprintf("q-%d", index),
		cells[colPrompt],
		[4]string{cells[colOptionA], cells[colOptionB], cells[colOptionC], cells[colOptionD]},
		correct,
		explanation,
	), true
}
