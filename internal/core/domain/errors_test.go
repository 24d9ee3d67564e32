package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidationErrors_Error joins all violations into one message
func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	errs.Add("name", "is required")
	errs.Add("score", "must be less than or equal to %d, got %s", 100, "101")

	msg := errs.Error()
	assert.Contains(t, msg, "name: is required")
	assert.Contains(t, msg, "score: must be less than or equal to 100, got 101")
}

// TestValidationErrors_MatchesInvalidInput supports errors.Is matching.
func TestValidationErrors_MatchesInvalidInput(t *testing.T) {
	var errs ValidationErrors
	errs.Add("name", "is required")

	var err error = errs
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrNotFound))
}

// TestValidationErrors_HasField reports per-field membership.
func TestValidationErrors_HasField(t *testing.T) {
	var errs ValidationErrors
	errs.Add("weights", "must sum to 1.0")

	assert.True(t, errs.HasField("weights"))
	assert.False(t, errs.HasField("targets"))
}

// TestValidationErrors_ErrorAs extracts the aggregate from a wrapped error.
func TestValidationErrors_ErrorAs(t *testing.T) {
	_, err := NewCompanyCreate(Record{})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.NotEmpty(t, verrs)
	for _, fe := range verrs {
		assert.NotEmpty(t, fe.Field)
		assert.NotEmpty(t, fe.Message)
	}
}
