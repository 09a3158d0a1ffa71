package auth

import (
	"errors"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/scope"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserLookup is the slice of the user repository the session resolver needs
type UserLookup interface {
	GetByEmail(email string) (*models.User, error)
}

// ScopeResolver turns validated session claims into the request-scoped
// (user, workspace) pair. It is the single entry point every workspace-scoped
// operation calls first; there is no partial-auth mode.
type ScopeResolver struct {
	users UserLookup
}

// NewScopeResolver creates a new scope resolver
func NewScopeResolver(users UserLookup) *ScopeResolver {
	return &ScopeResolver{users: users}
}

// Resolve fails closed: no validated claims means ErrUnauthenticated, a user
// without a workspace assignment means ErrNoWorkspace. On success the returned
// scope is passed explicitly into every downstream call instead of being
// re-fetched per action.
func (r *ScopeResolver) Resolve(c *gin.Context) (scope.Scope, error) {
	claims, ok := GetAuthClaims(c)
	if !ok || claims.Email == "" {
		return scope.Scope{}, apperrors.ErrUnauthenticated
	}

	user, err := r.users.GetByEmail(claims.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scope.Scope{}, apperrors.ErrUnauthenticated
		}
		return scope.Scope{}, err
	}

	if user.WorkspaceID == nil {
		return scope.Scope{}, apperrors.ErrNoWorkspace
	}

	return scope.Scope{UserID: user.ID, WorkspaceID: *user.WorkspaceID}, nil
}
