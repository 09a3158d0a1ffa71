// Package scope holds the workspace guard: the request-scoped tenant identity
// and the membership predicate every read and write must pass through.
package scope

import "github.com/google/uuid"

// Scope is the request-scoped tenant context produced once by the session
// resolver and passed explicitly into every downstream call.
type Scope struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
}

// Anchored is implemented by entities whose workspace membership may be
// carried directly or inherited through one or more parent anchors (business,
// job application, ticket). Implementations return every candidate workspace
// ID reachable from the loaded anchors; membership is a logical OR across all
// of them. New anchor kinds extend the returned slice, never this predicate.
type Anchored interface {
	AnchorWorkspaceIDs() []uuid.UUID
}

// Belongs reports whether the entity is a member of the workspace via any
// anchor path.
func Belongs(e Anchored, workspaceID uuid.UUID) bool {
	if e == nil {
		return false
	}
	for _, id := range e.AnchorWorkspaceIDs() {
		if id == workspaceID {
			return true
		}
	}
	return false
}

// Contains is a convenience wrapper over Belongs for the common case of
// checking against a resolved scope.
func (s Scope) Contains(e Anchored) bool {
	return Belongs(e, s.WorkspaceID)
}
