// Package authz evaluates role and ownership predicates against an
// already-authenticated caller. Pure checks, no side effects; a denial is
// always reported as an error wrapping ErrDenied.
package authz

import (
	"errors"
	"fmt"

	"github.com/sharktalent/backend/internal/models"
)

var ErrDenied = errors.New("access denied")

// Caller is the authenticated identity resolved from the bearer token.
type Caller struct {
	ID   string
	Role models.Role
}

func (c Caller) IsAdmin() bool { return c.Role == models.RoleAdmin }

// RequireRole allows only callers holding exactly the given role.
// Admins do not bypass role checks here; operations that grant an admin
// bypass use RequireOwnerOrAdmin instead.
func RequireRole(c Caller, role models.Role) error {
	if c.Role == role {
		return nil
	}
	return fmt.Errorf("%w: %s role required", ErrDenied, role)
}

// RequireOwner allows only the owner of the resource.
func RequireOwner(c Caller, ownerID string) error {
	if c.ID == ownerID {
		return nil
	}
	return ErrDenied
}

// RequireOwnerOrAdmin allows the resource owner or any admin.
func RequireOwnerOrAdmin(c Caller, ownerID string) error {
	if c.ID == ownerID || c.IsAdmin() {
		return nil
	}
	return ErrDenied
}
