package services

import (
	"testing"

	"horizon-hotel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCreateAndAuthenticate(t *testing.T) {
	db := openTestDB(t)
	svc := NewAdminService(db)

	admin, err := svc.Create("Front Desk", " Front.Desk ", "s3cret", models.RoleReceptionist)
	require.NoError(t, err)
	assert.Equal(t, "front.desk", admin.Username)
	assert.NotEqual(t, "s3cret", admin.Password, "password is stored hashed")

	authed, err := svc.Authenticate("FRONT.DESK", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, authed.ID)

	_, err = svc.Authenticate("front.desk", "wrong")
	assert.Error(t, err)

	_, err = svc.Authenticate("nobody", "s3cret")
	assert.Error(t, err)
}

func TestAdminCreateValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewAdminService(db)

	_, err := svc.Create("", "front.desk", "s3cret", models.RoleReceptionist)
	assert.Error(t, err)

	_, err = svc.Create("Front Desk", "front.desk", "", models.RoleReceptionist)
	assert.Error(t, err)

	// Guests are not staff accounts; unknown roles are rejected too.
	_, err = svc.Create("Front Desk", "front.desk", "s3cret", models.RoleGuest)
	assert.Error(t, err)

	_, err = svc.Create("Front Desk", "front.desk", "s3cret", models.Role("superuser"))
	assert.Error(t, err)
}
