package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingRequest carries everything needed to create a booking.
// Customer fields use the lookup-then-create pattern keyed on email.
type CreateBookingRequest struct {
	RoomTypeID  uint      `json:"room_type_id"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	GuestsCount int       `json:"guests_count"`
	Breakfast   bool      `json:"breakfast"`
	Vehicle     bool      `json:"vehicle"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	CustomerIDNum string `json:"customer_id_number"`
}

// BookingService owns the booking lifecycle: creation under the
// availability guard and the legal status transitions afterwards.
type BookingService struct {
	DB       *gorm.DB
	Notifier Notifier
	Audit    *AuditService

	// Per-room-type locks serialize concurrent creations in this process;
	// the SELECT ... FOR UPDATE on the room type row inside the creation
	// transaction serializes across processes. Together they make the
	// availability check and the insert atomic relative to other creations.
	mu        sync.Mutex
	roomLocks map[uint]*sync.Mutex
}

func NewBookingService(db *gorm.DB, notifier Notifier, audit *AuditService) *BookingService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &BookingService{
		DB:        db,
		Notifier:  notifier,
		Audit:     audit,
		roomLocks: make(map[uint]*sync.Mutex),
	}
}

func (s *BookingService) roomTypeLock(roomTypeID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.roomLocks[roomTypeID]
	if !ok {
		lock = &sync.Mutex{}
		s.roomLocks[roomTypeID] = lock
	}
	return lock
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// Create validates the request, re-checks availability inside a locked
// transaction, prices the stay and persists the booking in Pending.
// Returns ErrNoAvailability when the last room went to someone else.
func (s *BookingService) Create(req CreateBookingRequest, actor models.Actor) (*models.Booking, error) {
	checkIn := utils.DayOf(req.CheckIn)
	checkOut := utils.DayOf(req.CheckOut)
	if !checkOut.After(checkIn) {
		return nil, models.ErrInvalidDateRange
	}
	if req.GuestsCount <= 0 {
		return nil, models.ErrInvalidStay
	}

	lock := s.roomTypeLock(req.RoomTypeID)
	lock.Lock()
	defer lock.Unlock()

	var booking *models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var roomType models.RoomType
		if err := lockForUpdate(tx).
			Where("id = ? AND active = ?", req.RoomTypeID, true).
			First(&roomType).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRoomTypeNotFound
			}
			return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
		}

		if req.GuestsCount > roomType.MaxOccupancy {
			return models.ErrMaxOccupancyExceeded
		}

		availability, err := calculateAvailability(tx, req.RoomTypeID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if availability.AvailableRooms <= 0 {
			return models.ErrNoAvailability
		}

		quote, err := computePrice(tx, &roomType, checkIn, checkOut, req.GuestsCount, req.Breakfast, req.Vehicle)
		if err != nil {
			return err
		}

		customer, err := findOrCreateCustomer(tx, req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.CustomerIDNum)
		if err != nil {
			return err
		}

		var createdBy *uint
		if actor.IsStaff() {
			id := actor.ID
			createdBy = &id
		}

		booking = &models.Booking{
			ReferenceCode: newReferenceCode(),
			CustomerID:    customer.ID,
			RoomTypeID:    roomType.ID,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			Nights:        quote.Nights,
			GuestsCount:   req.GuestsCount,
			Breakfast:     req.Breakfast,
			Vehicle:       req.Vehicle,
			BasePrice:     quote.BaseTotal,
			ExtrasPrice:   quote.ExtrasTotal,
			TotalAmount:   quote.GrandTotal,
			Status:        models.BookingStatusPending,
			CreatedByID:   createdBy,
		}
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		booking.Customer = *customer
		booking.RoomType = roomType
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Audit != nil {
		s.Audit.Record("booking_created", "booking", booking.ID, actor, nil, booking,
			fmt.Sprintf("ref=%s total=%.2f", booking.ReferenceCode, booking.TotalAmount))
	}
	s.Notifier.BookingCreated(booking)

	return booking, nil
}

// TransitionStatus moves a booking along the legal edge set:
//
//	Pending    → Confirmed, Cancelled
//	Confirmed  → Checked-In, Cancelled
//	Checked-In → Checked-Out
//
// Checked-Out and Cancelled are terminal. Staff only.
func (s *BookingService) TransitionStatus(bookingID uint, newStatus models.BookingStatus, actor models.Actor) (*models.Booking, error) {
	if !actor.IsStaff() {
		return nil, models.ErrForbidden
	}
	if !newStatus.IsValid() {
		return nil, models.ErrInvalidTransition
	}

	var booking models.Booking
	var previous models.BookingStatus

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrBookingNotFound
			}
			return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
		}

		previous = booking.Status
		if !previous.CanTransitionTo(newStatus) {
			return models.ErrInvalidTransition
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{
			"status":     newStatus,
			"updated_at": now,
		}

		switch newStatus {
		case models.BookingStatusConfirmed:
			if booking.AssignedStaffID == nil && actor.ID != 0 {
				id := actor.ID
				booking.AssignedStaffID = &id
				updates["assigned_staff_id"] = actor.ID
			}
		case models.BookingStatusCheckedIn:
			booking.CheckedInAt = &now
			updates["checked_in_at"] = now
		case models.BookingStatusCheckedOut:
			booking.CheckedOutAt = &now
			updates["checked_out_at"] = now
		}

		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		booking.Status = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Customer").Preload("RoomType").First(&booking, bookingID).Error; err == nil {
		booking.Status = newStatus
	}

	if s.Audit != nil {
		s.Audit.Record("status_changed", "booking", booking.ID, actor,
			map[string]interface{}{"status": previous},
			map[string]interface{}{"status": newStatus},
			fmt.Sprintf("ref=%s", booking.ReferenceCode))
	}
	s.Notifier.StatusChanged(&booking, previous, newStatus)

	return &booking, nil
}

// Cancel is a convenience wrapper for the Cancelled transition; the edge
// set already restricts it to Pending and Confirmed bookings.
func (s *BookingService) Cancel(bookingID uint, actor models.Actor) (*models.Booking, error) {
	return s.TransitionStatus(bookingID, models.BookingStatusCancelled, actor)
}

func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Customer").Preload("RoomType").Preload("Payments").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return &booking, nil
}

func (s *BookingService) GetByReference(ref string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Customer").Preload("RoomType").Preload("Payments").
		Where("reference_code = ?", strings.TrimSpace(ref)).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return &booking, nil
}

// BookingFilter narrows List results. Zero values mean "no filter".
type BookingFilter struct {
	Status     models.BookingStatus
	RoomTypeID uint
	From       time.Time
	To         time.Time
	Limit      int
	Offset     int
}

func (s *BookingService) List(filter BookingFilter) ([]models.Booking, int64, error) {
	query := s.DB.Model(&models.Booking{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RoomTypeID != 0 {
		query = query.Where("room_type_id = ?", filter.RoomTypeID)
	}
	if !filter.From.IsZero() && !filter.To.IsZero() {
		query = query.Where("check_in < ? AND check_out > ?", utils.DayOf(filter.To), utils.DayOf(filter.From))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var bookings []models.Booking
	err := query.
		Preload("Customer").
		Preload("RoomType").
		Order("id DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return bookings, total, nil
}

// ListOverstays returns checked-in bookings whose check-out day has passed
// without a checkout transition. Used by the nightly sweep.
func (s *BookingService) ListOverstays(today time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Preload("Customer").
		Preload("RoomType").
		Where("status = ?", models.BookingStatusCheckedIn).
		Where("check_out < ?", utils.DayOf(today)).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return bookings, nil
}
