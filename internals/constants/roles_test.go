// file: internals/constants/roles_test.go
package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCapabilities(t *testing.T) {
	assert.False(t, CanBookDirectly(RoleUser))
	assert.False(t, CanBookDirectly(RoleStudent))
	assert.True(t, CanBookDirectly(RoleInstructor))
	assert.True(t, CanBookDirectly(RoleAdmin))

	assert.True(t, MustRequestApproval(RoleUser))
	assert.True(t, MustRequestApproval(RoleStudent))
	assert.False(t, MustRequestApproval(RoleInstructor))
	assert.False(t, MustRequestApproval(RoleAdmin))
}

func TestIsValidRole(t *testing.T) {
	for _, role := range AllRoles {
		assert.True(t, IsValidRole(role), role)
	}

	assert.False(t, IsValidRole("superadmin"))
	assert.False(t, IsValidRole(""))
	assert.False(t, IsValidRole("Admin")) // case sensitive

	// role di luar closed set tidak dapat hak apa pun
	assert.False(t, CanBookDirectly("superadmin"))
	assert.False(t, MustRequestApproval("superadmin"))
}
