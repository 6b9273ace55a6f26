package authz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharktalent/backend/internal/models"
)

func TestRequireRole(t *testing.T) {
	client := Caller{ID: "u1", Role: models.RoleClient}
	admin := Caller{ID: "u2", Role: models.RoleAdmin}

	require.NoError(t, RequireRole(client, models.RoleClient))

	err := RequireRole(client, models.RoleFreelancer)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDenied))

	// admins do not bypass role checks
	assert.Error(t, RequireRole(admin, models.RoleClient))
}

func TestRequireOwner(t *testing.T) {
	owner := Caller{ID: "u1", Role: models.RoleClient}
	admin := Caller{ID: "u2", Role: models.RoleAdmin}

	require.NoError(t, RequireOwner(owner, "u1"))

	// no admin bypass on plain ownership
	err := RequireOwner(admin, "u1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDenied))
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	owner := Caller{ID: "u1", Role: models.RoleClient}
	admin := Caller{ID: "u2", Role: models.RoleAdmin}
	other := Caller{ID: "u3", Role: models.RoleFreelancer}

	require.NoError(t, RequireOwnerOrAdmin(owner, "u1"))
	require.NoError(t, RequireOwnerOrAdmin(admin, "u1"))

	err := RequireOwnerOrAdmin(other, "u1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDenied))
}
