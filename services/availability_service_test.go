package services

import (
	"testing"

	"horizon-hotel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCountsOverlappingActiveBookings(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Deluxe", 5, 3000)
	svc := NewAvailabilityService(db)

	seedBooking(t, db, rt.ID, "2026-09-10", "2026-09-14", models.BookingStatusConfirmed, 12000)
	seedBooking(t, db, rt.ID, "2026-09-12", "2026-09-15", models.BookingStatusPending, 9000)
	seedBooking(t, db, rt.ID, "2026-09-11", "2026-09-13", models.BookingStatusCheckedIn, 6000)

	avail, err := svc.Calculate(rt.ID, day("2026-09-12"), day("2026-09-13"))
	require.NoError(t, err)

	assert.Equal(t, 5, avail.TotalRooms)
	assert.Equal(t, 3, avail.ActiveBookings)
	assert.Equal(t, 2, avail.AvailableRooms)
	assert.InDelta(t, 60.0, avail.OccupancyRate, 0.001)
}

func TestCalculateIgnoresTerminalBookings(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Deluxe", 5, 3000)
	svc := NewAvailabilityService(db)

	seedBooking(t, db, rt.ID, "2026-09-10", "2026-09-14", models.BookingStatusCancelled, 12000)
	seedBooking(t, db, rt.ID, "2026-09-10", "2026-09-14", models.BookingStatusCheckedOut, 12000)

	avail, err := svc.Calculate(rt.ID, day("2026-09-11"), day("2026-09-13"))
	require.NoError(t, err)
	assert.Equal(t, 0, avail.ActiveBookings)
	assert.Equal(t, 5, avail.AvailableRooms)
}

func TestCalculateBackToBackStaysDoNotOverlap(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard", 1, 2000)
	svc := NewAvailabilityService(db)

	// Guest A checks out the morning of the 14th; guest B checks in that
	// afternoon. The check-out day is exclusive so the room is free.
	seedBooking(t, db, rt.ID, "2026-09-10", "2026-09-14", models.BookingStatusConfirmed, 8000)

	avail, err := svc.Calculate(rt.ID, day("2026-09-14"), day("2026-09-16"))
	require.NoError(t, err)
	assert.Equal(t, 0, avail.ActiveBookings)
	assert.Equal(t, 1, avail.AvailableRooms)

	avail, err = svc.Calculate(rt.ID, day("2026-09-13"), day("2026-09-16"))
	require.NoError(t, err)
	assert.Equal(t, 1, avail.ActiveBookings)
	assert.Equal(t, 0, avail.AvailableRooms)
}

func TestCalculateSubtractsRoomBlocks(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Deluxe", 5, 3000)
	svc := NewAvailabilityService(db)

	require.NoError(t, db.Create(&models.RoomBlock{
		RoomTypeID: rt.ID,
		StartDate:  day("2026-09-10"),
		EndDate:    day("2026-09-20"),
		RoomsCount: 2,
		Reason:     models.BlockReasonMaintenance,
	}).Error)
	require.NoError(t, db.Create(&models.RoomBlock{
		RoomTypeID: rt.ID,
		StartDate:  day("2026-09-01"),
		EndDate:    day("2026-09-05"),
		RoomsCount: 3,
		Reason:     models.BlockReasonRenovation,
	}).Error)

	// Only the first block overlaps the queried range.
	avail, err := svc.Calculate(rt.ID, day("2026-09-12"), day("2026-09-14"))
	require.NoError(t, err)
	assert.Equal(t, 2, avail.BlockedRooms)
	assert.Equal(t, 3, avail.AvailableRooms)
}

func TestCalculateFloorsAtZero(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard", 1, 2000)
	svc := NewAvailabilityService(db)

	seedBooking(t, db, rt.ID, "2026-09-10", "2026-09-14", models.BookingStatusConfirmed, 8000)
	require.NoError(t, db.Create(&models.RoomBlock{
		RoomTypeID: rt.ID,
		StartDate:  day("2026-09-01"),
		EndDate:    day("2026-09-30"),
		RoomsCount: 1,
		Reason:     models.BlockReasonAdminHold,
	}).Error)

	avail, err := svc.Calculate(rt.ID, day("2026-09-11"), day("2026-09-13"))
	require.NoError(t, err)
	assert.Equal(t, 0, avail.AvailableRooms)
	assert.InDelta(t, 100.0, avail.OccupancyRate, 0.001)
}

func TestCalculateZeroRoomPool(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Coming Soon", 0, 2000)
	svc := NewAvailabilityService(db)

	avail, err := svc.Calculate(rt.ID, day("2026-09-10"), day("2026-09-12"))
	require.NoError(t, err)
	assert.Equal(t, 0, avail.AvailableRooms)
	assert.Equal(t, 0.0, avail.OccupancyRate)
}

func TestCalculateReportsOverstays(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard", 5, 2000)
	svc := NewAvailabilityService(db)

	// Checked in long ago and never checked out.
	seedBooking(t, db, rt.ID, "2026-01-05", "2026-01-08", models.BookingStatusCheckedIn, 6000)

	avail, err := svc.Calculate(rt.ID, day("2026-09-01"), day("2026-09-03"))
	require.NoError(t, err)
	assert.Equal(t, 1, avail.Overstays)
	// The overstay does not overlap the queried range, so it is reported
	// without reducing availability twice.
	assert.Equal(t, 0, avail.ActiveBookings)
	assert.Equal(t, 5, avail.AvailableRooms)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard", 5, 2000)
	svc := NewAvailabilityService(db)

	_, err := svc.Calculate(rt.ID, day("2026-09-10"), day("2026-09-10"))
	assert.ErrorIs(t, err, models.ErrInvalidDateRange)

	_, err = svc.Calculate(rt.ID, day("2026-09-12"), day("2026-09-10"))
	assert.ErrorIs(t, err, models.ErrInvalidDateRange)

	_, err = svc.Calculate(999, day("2026-09-10"), day("2026-09-12"))
	assert.ErrorIs(t, err, models.ErrRoomTypeNotFound)

	require.NoError(t, db.Model(rt).Update("active", false).Error)
	_, err = svc.Calculate(rt.ID, day("2026-09-10"), day("2026-09-12"))
	assert.ErrorIs(t, err, models.ErrRoomTypeNotFound)
}
