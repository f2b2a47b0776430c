package validation

import (
	"path/filepath"
	"strings"

	"quiz-deck/internal/domain"
	"quiz-deck/internal/util"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID checks that field holds a ULID.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !util.IsULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

// ValidateStartSessionRequest checks the request shape. The upper bound of count depends on
// the pool and is checked by ValidateQuizCount once the pool is loaded.
func (v *Validator) ValidateStartSessionRequest(poolID string, count int) domain.ValidationErrors {
	errs := v.ValidateID("pool_id", poolID)
	if count < domain.MinQuizCount {
		errs = append(errs, domain.ValidationError{
			Code:    domain.CodeOutOfRange,
			Field:   "count",
			Message: "count must be at least 1",
			Value:   count,
		})
	}
	return errs
}

// ValidateQuizCount checks 1 <= count <= available.
func (v *Validator) ValidateQuizCount(count, available int) domain.ValidationErrors {
	if count < domain.MinQuizCount || count > available {
		return domain.ValidationErrors{domain.NewOutOfRangeError("count", count, domain.MinQuizCount, available)}
	}
	return nil
}

// ValidateChoice parses an answer label, accepting lower case and surrounding spaces.
func (v *Validator) ValidateChoice(choice string) (domain.ChoiceLabel, domain.ValidationErrors) {
	if strings.TrimSpace(choice) == "" {
		return "", domain.ValidationErrors{domain.NewMissingFieldError("choice")}
	}
	label, ok := domain.ParseChoiceLabel(choice)
	if !ok {
		return "", domain.ValidationErrors{domain.NewInvalidFormatError("choice", choice)}
	}
	return label, nil
}

// ValidateUpload checks the uploaded file name and size.
func (v *Validator) ValidateUpload(fileName string, size int64, maxBytes int) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if name := strings.TrimSpace(fileName); name == "" || filepath.Base(name) == "." {
		errs = append(errs, domain.NewMissingFieldError("file"))
	}
	if size <= 0 {
		errs = append(errs, domain.ValidationError{
			Code:    domain.CodeInvalidInput,
			Field:   "file",
			Message: "file is empty",
		})
	} else if maxBytes > 0 && size > int64(maxBytes) {
		errs = append(errs, domain.NewOutOfRangeError("file", size, 1, maxBytes))
	}
	return errs
}
