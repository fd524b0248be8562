package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("create: %w", NewValidationError([]string{"a", "b"}))

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrStore)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"a", "b"}, verr.Messages)
	assert.Equal(t, "validation failed: 2 rule(s)", verr.Error())
}

func TestStoreError_MatchesSentinelAndCause(t *testing.T) {
	cause := errors.New("pg failure")
	err := fmt.Errorf("update: %w", NewStoreError("check constraint", cause))

	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "store error: check constraint")
}
