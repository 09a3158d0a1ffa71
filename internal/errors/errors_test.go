package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "business"}
		assert.Equal(t, "business not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "business"}
		err2 := &NotFoundError{Entity: "business"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "business"}
		err2 := &NotFoundError{Entity: "ticket"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTicketNotFound, ErrTicketNotFound))
		assert.False(t, errors.Is(ErrTicketNotFound, ErrBusinessNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTicketNotFound))
		assert.True(t, IsNotFound(ErrEmailNotFound))
		assert.False(t, IsNotFound(ErrInvalidStatus))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "workspace", Context: "with this name"}
		assert.Equal(t, "workspace already exists with this name", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "workspace"}
		assert.Equal(t, "workspace already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "workspace", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "workspace", Context: "with this name"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrWorkspaceExists))
		assert.False(t, IsAlreadyExists(ErrWorkspaceNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTicketNotFound))
	})

	t.Run("Predefined validation errors", func(t *testing.T) {
		assert.True(t, IsValidation(ErrContactBusinessMismatch))
		assert.True(t, IsValidation(ErrActivityAnchorMissing))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "no valid session", ErrUnauthenticated.Error())
		assert.Equal(t, "user has no workspace", ErrNoWorkspace.Error())
	})

	t.Run("errors.Is distinguishes session errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrUnauthenticated, ErrUnauthenticated))
		assert.False(t, errors.Is(ErrUnauthenticated, ErrNoWorkspace))
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrUnauthenticated))
		assert.True(t, IsAuthentication(ErrNoWorkspace))
		assert.False(t, IsAuthentication(ErrTicketNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("stage", "unknown stage")
		assert.Equal(t, "validation error: stage - unknown stage", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("Helpers unwrap wrapped errors", func(t *testing.T) {
		wrapped := wrap(ErrBusinessNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrBusinessNotFound))
	})
}

func wrap(err error) error {
	return &wrapper{err: err}
}

type wrapper struct{ err error }

func (w *wrapper) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrapper) Unwrap() error { return w.err }
