package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "lead"}
		assert.Equal(t, "lead not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "lead"}
		err2 := &NotFoundError{Entity: "lead"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "lead"}
		err2 := &NotFoundError{Entity: "user"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrLeadNotFound, ErrLeadNotFound))
		assert.False(t, errors.Is(ErrLeadNotFound, ErrUserNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrLeadNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrUserNotFound)))
		assert.False(t, IsNotFound(ErrCustomFieldAlreadySet))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.Equal(t, "user already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "campaign"}
		assert.Equal(t, "campaign already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "phone", Message: "required"}
		assert.Equal(t, "validation error: phone - required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "missing required column"}
		assert.Equal(t, "validation error: missing required column", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("phone", "required")))
		assert.False(t, IsValidation(ErrLeadNotFound))
	})
}

func TestUpstreamError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &UpstreamError{Service: "suggestion service", Message: "connection refused"}
		assert.Equal(t, "suggestion service unavailable: connection refused", err.Error())
	})

	t.Run("Error message without detail", func(t *testing.T) {
		assert.Equal(t, "suggestion service unavailable", ErrSuggestionUnavailable.Error())
	})

	t.Run("errors.Is matches same service", func(t *testing.T) {
		err := NewUpstreamError("suggestion service", "timeout")
		assert.True(t, errors.Is(err, ErrSuggestionUnavailable))
	})

	t.Run("IsUpstream helper", func(t *testing.T) {
		assert.True(t, IsUpstream(ErrSuggestionUnavailable))
		assert.False(t, IsUpstream(ErrInvalidDisposition))
	})
}

func TestAuthenticationErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(ErrUserPending))
	assert.True(t, IsAuthentication(ErrUserInactive))
	assert.False(t, IsAuthentication(ErrLeadNotFound))

	assert.True(t, IsAuthorization(NewAuthorizationError("admin only")))
	assert.False(t, IsAuthorization(ErrInvalidCredentials))
}
