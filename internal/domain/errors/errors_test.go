package errors_test

import (
	"testing"

	domainerrors "opinalocal/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsSentinelIdentity(t *testing.T) {
	err := domainerrors.ErrRatingOutOfRange.WithDetails("score out of range for category: Food")

	assert.True(t, errors.Is(err, domainerrors.ErrRatingOutOfRange))
	assert.Equal(t, "score out of range for category: Food", err.Details())
	assert.Equal(t, domainerrors.ErrRatingOutOfRange.Message(), err.Message())
}

func TestBaseError_WrappedWithDetailsKeepsSentinelIdentity(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrUnknownCategory.WithDetails("unknown standard category: Vibes"), "failed to submit review")

	assert.True(t, errors.Is(err, domainerrors.ErrUnknownCategory))
	assert.False(t, errors.Is(err, domainerrors.ErrRatingOutOfRange))
}

func TestBaseError_IsDistinguishesErrorCodes(t *testing.T) {
	assert.False(t, errors.Is(domainerrors.ErrUserNotFound, domainerrors.ErrRestaurantNotFound))
	assert.False(t, errors.Is(domainerrors.ErrUserNotFound.WithDetails("id missing"), domainerrors.ErrRestaurantNotFound))
}
