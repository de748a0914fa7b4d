package exceptions

import (
	"phonebook-service/internal/pkg/dto/requests"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	t.Run("missing required field", func(t *testing.T) {
		err := validate.Struct(&requests.RegisterUser{Password: "plaintext1"})
		require.Error(t, err)

		assert.Equal(t, "email is required", FormatFirstValidationError(err))
	})

	t.Run("password below the minimum length", func(t *testing.T) {
		err := validate.Struct(&requests.RegisterUser{Email: "user@example.com", Password: "short"})
		require.Error(t, err)

		assert.Equal(t, "password must be at least 6 characters long", FormatFirstValidationError(err))
	})

	t.Run("subscription outside the enum", func(t *testing.T) {
		err := validate.Struct(&requests.RegisterUser{
			Email:        "user@example.com",
			Password:     "plaintext1",
			Subscription: "platinum",
		})
		require.Error(t, err)

		assert.Equal(t, "subscription must be one of [starter, pro, business]", FormatFirstValidationError(err))
	})

	t.Run("malformed email", func(t *testing.T) {
		err := validate.Struct(&requests.LoginUser{Email: "not-an-email", Password: "plaintext1"})
		require.Error(t, err)

		assert.Equal(t, "email must be a valid email", FormatFirstValidationError(err))
	})

	t.Run("valid struct produces no error to format", func(t *testing.T) {
		err := validate.Struct(&requests.RegisterUser{
			Email:        "user@example.com",
			Password:     "plaintext1",
			Subscription: "pro",
		})
		assert.NoError(t, err)
	})
}
