package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found. Out-of-tenant
// access is deliberately reported with the same error so that probing IDs
// never reveals whether a row exists in another workspace.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthenticationError
func (e *AuthenticationError) Is(target error) bool {
	t, ok := target.(*AuthenticationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// Session resolution errors. Every workspace-scoped operation fails closed on
// these; there is no partial-auth mode.
var (
	ErrUnauthenticated = &AuthenticationError{Message: "no valid session"}
	ErrNoWorkspace     = &AuthenticationError{Message: "user has no workspace"}
)

// Entity Not Found Errors
var (
	ErrWorkspaceNotFound      = &NotFoundError{Entity: "workspace"}
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrBusinessNotFound       = &NotFoundError{Entity: "business"}
	ErrContactNotFound        = &NotFoundError{Entity: "contact"}
	ErrJobApplicationNotFound = &NotFoundError{Entity: "job application"}
	ErrTicketNotFound         = &NotFoundError{Entity: "ticket"}
	ErrTicketCommentNotFound  = &NotFoundError{Entity: "ticket comment"}
	ErrActivityNotFound       = &NotFoundError{Entity: "activity"}
	ErrEmailNotFound          = &NotFoundError{Entity: "email"}
)

// Already Exists Errors
var (
	ErrWorkspaceExists = &AlreadyExistsError{Entity: "workspace", Context: "with this name"}
	ErrUserExists      = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStage            = errors.New("invalid stage")
	ErrInvalidPriority         = errors.New("invalid priority")
	ErrInvalidActivityType     = errors.New("invalid activity type")
	ErrContactBusinessMismatch = &ValidationError{Field: "contact_id", Message: "contact does not belong to the business"}
	ErrActivityAnchorMissing   = &ValidationError{Field: "anchor", Message: "activity requires a business, ticket or job application anchor"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
