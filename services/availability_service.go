package services

import (
	"errors"
	"fmt"
	"time"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/utils"

	"gorm.io/gorm"
)

// Availability is the remaining-capacity picture for one room type over a
// date range.
type Availability struct {
	RoomTypeID     uint    `json:"room_type_id"`
	TotalRooms     int     `json:"total_rooms"`
	ActiveBookings int     `json:"active_bookings"`
	BlockedRooms   int     `json:"blocked_rooms"`
	Overstays      int     `json:"overstays"`
	AvailableRooms int     `json:"available_rooms"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}

// AvailabilityService answers "how many rooms of this type remain free for
// this range". It is a pure read; the booking service re-runs the same
// counting inside its creation transaction.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// Calculate computes availability for [start, end). Bookings in Pending,
// Confirmed or Checked-In consume capacity; Cancelled and Checked-Out do
// not. Active room blocks overlapping the range reduce capacity further.
func (s *AvailabilityService) Calculate(roomTypeID uint, start, end time.Time) (*Availability, error) {
	return calculateAvailability(s.DB, roomTypeID, start, end)
}

// calculateAvailability is shared with BookingService, which calls it on a
// transaction handle so the count and the insert see the same snapshot.
func calculateAvailability(db *gorm.DB, roomTypeID uint, start, end time.Time) (*Availability, error) {
	start = utils.DayOf(start)
	end = utils.DayOf(end)
	if !end.After(start) {
		return nil, models.ErrInvalidDateRange
	}

	var roomType models.RoomType
	if err := db.Where("id = ? AND active = ?", roomTypeID, true).First(&roomType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	// Overlap test for half-open ranges: check_in < end AND check_out > start.
	var activeCount int64
	if err := db.Model(&models.Booking{}).
		Where("room_type_id = ?", roomTypeID).
		Where("status IN ?", models.ActiveBookingStatuses()).
		Where("check_in < ? AND check_out > ?", end, start).
		Count(&activeCount).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	var blocked struct {
		Total int64
	}
	if err := db.Model(&models.RoomBlock{}).
		Select("COALESCE(SUM(rooms_count), 0) AS total").
		Where("room_type_id = ?", roomTypeID).
		Where("start_date < ? AND end_date > ?", end, start).
		Scan(&blocked).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	// Overstays are reported, not double-subtracted: a checked-in booking
	// past its check-out already counts as active for ranges it overlaps.
	today := utils.DayOf(time.Now())
	var overstays int64
	if err := db.Model(&models.Booking{}).
		Where("room_type_id = ?", roomTypeID).
		Where("status = ?", models.BookingStatusCheckedIn).
		Where("check_out < ?", today).
		Count(&overstays).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	available := roomType.TotalRooms - int(activeCount) - int(blocked.Total)
	if available < 0 {
		available = 0
	}

	rate := 0.0
	if roomType.TotalRooms > 0 {
		rate = float64(roomType.TotalRooms-available) / float64(roomType.TotalRooms) * 100
	}

	return &Availability{
		RoomTypeID:     roomTypeID,
		TotalRooms:     roomType.TotalRooms,
		ActiveBookings: int(activeCount),
		BlockedRooms:   int(blocked.Total),
		Overstays:      int(overstays),
		AvailableRooms: available,
		OccupancyRate:  rate,
	}, nil
}
