package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound))
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
		assert.Equal(t, "Employee not found", got.Message)
		assert.Nil(t, got.Details)
	})

	t.Run("wrapped cause goes to details", func(t *testing.T) {
		err := apperror.Wrap(errors.New("Table 'cb_app.mark_attendance' doesn't exist"),
			apperror.CodeStorage, "Failed to mark attendance", http.StatusInternalServerError)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, "Failed to mark attendance", got.Message)
		assert.Equal(t, "Table 'cb_app.mark_attendance' doesn't exist", got.Details)
	})

	t.Run("storage passes the driver message through", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.Storage(errors.New("connection refused")))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeStorage, got.Code)
		assert.Equal(t, "connection refused", got.Message)
		assert.Nil(t, got.Details)
	})

	t.Run("plain error is a storage error", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("driver: bad connection"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeStorage, got.Code)
		assert.Equal(t, "driver: bad connection", got.Message)
	})

	t.Run("errors.Is sees through the wrapper", func(t *testing.T) {
		cause := errors.New("boom")
		assert.ErrorIs(t, apperror.Storage(cause), cause)
		assert.Nil(t, apperror.Storage(nil))
	})
}

type loginInput struct {
	EmailAddress string `json:"email_address" binding:"required"`
	Password     string `json:"password" binding:"required,min=3"`
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	t.Run("required field", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(loginInput{Password: "abc"})
		mapped := apperror.MapValidationError(err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(mapped, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(t, "Email Address is required", appErr.Message)
	})

	t.Run("invalid field", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(loginInput{EmailAddress: "a@b.c", Password: "x"})
		mapped := apperror.MapValidationError(err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(mapped, &appErr))
		assert.Equal(t, "Password is invalid", appErr.Message)
	})

	t.Run("non validator error", func(t *testing.T) {
		mapped := apperror.MapValidationError(errors.New("unexpected EOF"))
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(mapped).Status)
		assert.Equal(t, apperror.CodeValidation, apperror.ToHTTP(mapped).Code)
	})
}

func TestAppError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := apperror.New(apperror.CodeUnauthorized, "Invalid credentials", http.StatusUnauthorized)
		assert.EqualError(t, err, "Invalid credentials")
		assert.Nil(t, err.Unwrap())
	})

	t.Run("message and cause", func(t *testing.T) {
		cause := errors.New("i/o timeout")
		err := apperror.Wrap(cause, apperror.CodeStorage, "Failed to save application", http.StatusInternalServerError)
		assert.EqualError(t, err, "Failed to save application: i/o timeout")
		assert.Same(t, cause, err.Unwrap())
	})

	t.Run("wrapping nil", func(t *testing.T) {
		assert.Nil(t, apperror.Wrap(nil, apperror.CodeStorage, "unused", http.StatusInternalServerError))
	})
}
