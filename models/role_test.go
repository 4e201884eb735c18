package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleHierarchy(t *testing.T) {
	assert.True(t, RoleOwner.AtLeast(RoleManager))
	assert.True(t, RoleManager.AtLeast(RoleReceptionist))
	assert.True(t, RoleReceptionist.AtLeast(RoleReceptionist))
	assert.True(t, RoleGuest.AtLeast(RoleGuest))

	assert.False(t, RoleGuest.AtLeast(RoleReceptionist))
	assert.False(t, RoleReceptionist.AtLeast(RoleManager))
	assert.False(t, RoleManager.AtLeast(RoleOwner))
}

func TestUnknownRolesNeverPass(t *testing.T) {
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("superuser").AtLeast(RoleGuest))
	assert.False(t, RoleOwner.AtLeast(Role("superuser")))
	assert.False(t, Role("").AtLeast(RoleGuest))
}

func TestActorIsStaff(t *testing.T) {
	assert.False(t, Actor{Role: RoleGuest}.IsStaff())
	assert.False(t, Actor{ID: 1, Role: Role("superuser")}.IsStaff())
	assert.True(t, Actor{ID: 1, Role: RoleReceptionist}.IsStaff())
	assert.True(t, Actor{ID: 1, Role: RoleOwner}.IsStaff())
}
