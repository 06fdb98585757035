// Package authz holds the owner-or-admin capability check. Authorization is
// a pure function of the caller's identity and the record owner — the caller
// is always passed explicitly, never read from ambient request state.
package authz

import (
	"github.com/google/uuid"

	"shiftdesk/internal/model"
)

// Identity is the authenticated caller, extracted from the JWT claims.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

func (i Identity) IsAdmin() bool { return i.Role == model.RoleAdmin }

// CanAccess is the owner-or-admin rule: admins may act on any record,
// everyone else only on records they own.
func CanAccess(caller Identity, ownerID uuid.UUID) bool {
	return caller.IsAdmin() || caller.UserID == ownerID
}
