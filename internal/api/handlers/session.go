package handlers

import (
	"errors"
	"net/http"

	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/scope"

	"github.com/gin-gonic/gin"
)

// SessionResolver resolves the caller's workspace scope from a request
type SessionResolver interface {
	Resolve(c *gin.Context) (scope.Scope, error)
}

// resolveScope resolves the caller's scope and writes the error response
// itself on failure. A missing or invalid session is 401; an authenticated
// user with no workspace is 403.
func resolveScope(c *gin.Context, r SessionResolver) (scope.Scope, bool) {
	sc, err := r.Resolve(c)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNoWorkspace):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session", "details": err.Error()})
		}
		return scope.Scope{}, false
	}
	return sc, true
}
