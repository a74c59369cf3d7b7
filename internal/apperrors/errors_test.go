package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/cashier_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("service: %w", apperrors.NewAppError(404, "calculation missing", apperrors.ErrNotFound))

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "service: calculation missing: resource not found", err.Error())

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
}

func TestAppError_WithoutCause(t *testing.T) {
	err := apperrors.NewAppError(500, "boom", nil)
	assert.Equal(t, "boom", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
