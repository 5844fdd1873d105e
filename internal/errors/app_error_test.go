package errors_test

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdarven/storefront/internal/errors"
)

func TestAppError(t *testing.T) {
	t.Run("Wraps the cause", func(t *testing.T) {
		cause := stdErrors.New("upstream timeout")

		err := errors.ThirdPartyError("Failed to submit order").WithError(cause)

		assert.Equal(t, "Failed to submit order", err.Error())
		assert.Equal(t, http.StatusBadGateway, err.StatusCode)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("IsAppError finds wrapped app errors", func(t *testing.T) {
		wrapped := fmt.Errorf("checkout: %w", errors.ConflictError("Checkout already in progress"))

		appErr, ok := errors.IsAppError(wrapped)

		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeConflict, appErr.Code)
		assert.Equal(t, http.StatusConflict, appErr.StatusCode)

		_, ok = errors.IsAppError(stdErrors.New("plain"))
		assert.False(t, ok)
	})

	t.Run("Details accumulate", func(t *testing.T) {
		err := errors.ValidationError("Validation failed").
			WithDetail("Field color is required").
			WithDetails([]string{"Field chest is required", "Field sleeves is required"})

		assert.Len(t, err.Details, 3)
	})
}

func TestFromValidation(t *testing.T) {
	type form struct {
		Email      string   `validate:"required,email"`
		BottomWear string   `validate:"required,oneof=pajama shalwar"`
		Chest      *float64 `validate:"required"`
		Quantity   int      `validate:"min=1"`
	}

	// Arrange
	validate := validator.New()
	err := validate.Struct(form{Email: "not-an-email", BottomWear: "dhoti"})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	// Act
	appErr := errors.FromValidation(validationErrs)

	// Assert
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, []string{
		"Field Email must be a valid email address",
		"Field BottomWear must be one of: pajama shalwar",
		"Field Chest is required",
		"Field Quantity must be at least 1",
	}, appErr.Details)
}
