package services

import (
	"testing"

	"horizon-hotel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomTypeUpdateFiltersFields(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Deluxe", 5, 3000)
	svc := NewRoomTypeService(db)

	updated, err := svc.Update(rt.ID, map[string]interface{}{
		"base_price":  3500,
		"total_rooms": 6,
		"type_name":   "Renamed", // identity field, silently dropped
	})
	require.NoError(t, err)
	assert.Equal(t, 3500.0, updated.BasePrice)
	assert.Equal(t, 6, updated.TotalRooms)
	assert.Equal(t, "Deluxe", updated.TypeName)
}

func TestRoomTypeDeactivateHidesFromSale(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Deluxe", 5, 3000)
	seedRoomType(t, db, "Standard", 10, 2000)
	svc := NewRoomTypeService(db)

	require.NoError(t, svc.Deactivate(rt.ID))

	active, err := svc.List(false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := svc.List(true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Deactivated room types no longer accept bookings.
	_, err = NewBookingService(db, nil, nil).Create(bookingRequest(rt.ID, "2026-09-10", "2026-09-12", 2), asGuest)
	assert.ErrorIs(t, err, models.ErrRoomTypeNotFound)
}

func TestRoomTypeCreateDefaults(t *testing.T) {
	db := openTestDB(t)
	svc := NewRoomTypeService(db)

	rt := &models.RoomType{TypeName: "Family", TotalRooms: 3, BasePrice: 2500}
	require.NoError(t, svc.Create(rt))
	assert.Equal(t, 1, rt.MaxOccupancy)
	assert.Equal(t, 2, rt.StandardOccupancy)
	assert.True(t, rt.Active)

	assert.Error(t, svc.Create(&models.RoomType{TypeName: "  "}))
	assert.ErrorIs(t, svc.Create(&models.RoomType{TypeName: "Bad", BasePrice: -1}), models.ErrInvalidAmount)
}
