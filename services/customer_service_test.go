package services

import (
	"testing"

	"horizon-hotel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateCustomer(t *testing.T) {
	db := openTestDB(t)
	svc := NewCustomerService(db)

	created, err := svc.FindOrCreate("Ticha Boonmee", "Ticha@Example.com", "0812345678", "")
	require.NoError(t, err)
	assert.Equal(t, "ticha@example.com", created.Email)

	// Same email in a different case reuses the record and refreshes the
	// phone number.
	reused, err := svc.FindOrCreate("Ticha Boonmee", "TICHA@EXAMPLE.COM", "0899999999", "ID-42")
	require.NoError(t, err)
	assert.Equal(t, created.ID, reused.ID)
	assert.Equal(t, "0899999999", reused.Phone)
	assert.Equal(t, "ID-42", reused.IDNumber)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = svc.FindOrCreate("", "someone@example.com", "", "")
	assert.Error(t, err)
	_, err = svc.FindOrCreate("No Email", "", "", "")
	assert.Error(t, err)
}

func TestCustomerSearch(t *testing.T) {
	db := openTestDB(t)
	svc := NewCustomerService(db)

	_, err := svc.FindOrCreate("Ticha Boonmee", "ticha@example.com", "", "")
	require.NoError(t, err)
	_, err = svc.FindOrCreate("Somsak Prasert", "somsak@example.com", "", "")
	require.NoError(t, err)

	found, err := svc.Search("ticha", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ticha Boonmee", found[0].FullName)

	found, err = svc.Search("example.com", 10)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}
