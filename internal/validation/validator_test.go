package validation

import (
	"testing"

	"quiz-deck/internal/domain"
	"quiz-deck/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateID("pool_id", util.NewULID()))

	errs := v.ValidateID("pool_id", "")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	errs = v.ValidateID("session_id", "not-a-ulid")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
	assert.Equal(t, "session_id", errs[0].Field)
}

func TestValidateStartSessionRequest(t *testing.T) {
	v := NewValidator()
	id := util.NewULID()

	assert.Empty(t, v.ValidateStartSessionRequest(id, 1))
	assert.Empty(t, v.ValidateStartSessionRequest(id, 500))

	errs := v.ValidateStartSessionRequest(id, 0)
	require.Len(t, errs, 1)
	assert.Equal(t, "count", errs[0].Field)

	errs = v.ValidateStartSessionRequest("", -3)
	assert.Len(t, errs, 2)
}

func TestValidateQuizCount(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		count, available int
		ok               bool
	}{
		{1, 5, true},
		{5, 5, true},
		{0, 5, false},
		{6, 5, false},
		{-1, 5, false},
		{1, 0, false},
	}
	for _, tt := range tests {
		errs := v.ValidateQuizCount(tt.count, tt.available)
		if tt.ok {
			assert.Empty(t, errs, "count=%d available=%d", tt.count, tt.available)
			continue
		}
		require.Len(t, errs, 1, "count=%d available=%d", tt.count, tt.available)
		assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
	}
}

func TestValidateChoice(t *testing.T) {
	v := NewValidator()

	label, errs := v.ValidateChoice(" b ")
	assert.Empty(t, errs)
	assert.Equal(t, domain.ChoiceB, label)

	_, errs = v.ValidateChoice("")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	_, errs = v.ValidateChoice("E")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}

func TestValidateUpload(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateUpload("linux.xlsx", 2048, 10<<20))
	assert.Len(t, v.ValidateUpload("linux.xlsx", 0, 10<<20), 1)
	assert.Len(t, v.ValidateUpload("linux.xlsx", 11<<20, 10<<20), 1)
	assert.Len(t, v.ValidateUpload("", 10, 0), 1)
}
