package authz_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"shiftdesk/internal/authz"
	"shiftdesk/internal/model"
)

func TestCanAccess(t *testing.T) {
	owner := uuid.New()
	admin := authz.Identity{UserID: uuid.New(), Role: model.RoleAdmin}
	self := authz.Identity{UserID: owner, Role: model.RoleEmployee}
	other := authz.Identity{UserID: uuid.New(), Role: model.RoleEmployee}

	assert.True(t, authz.CanAccess(admin, owner))
	assert.True(t, authz.CanAccess(self, owner))
	assert.False(t, authz.CanAccess(other, owner))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, authz.Identity{Role: model.RoleAdmin}.IsAdmin())
	assert.False(t, authz.Identity{Role: model.RoleEmployee}.IsAdmin())
	assert.False(t, authz.Identity{Role: ""}.IsAdmin())
}
