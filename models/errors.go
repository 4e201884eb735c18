package models

import "errors"

// Sentinel errors returned by the service layer. Controllers match them
// with errors.Is and map them onto HTTP status codes.
var (
	ErrInvalidDateRange     = errors.New("invalid_date_range")
	ErrInvalidStay          = errors.New("invalid_stay")
	ErrRoomTypeNotFound     = errors.New("room_type_not_found")
	ErrNoAvailability       = errors.New("no_availability")
	ErrBookingNotFound      = errors.New("booking_not_found")
	ErrCustomerNotFound     = errors.New("customer_not_found")
	ErrInvalidTransition    = errors.New("invalid_transition")
	ErrInvalidBookingState  = errors.New("invalid_booking_state")
	ErrInvalidAmount        = errors.New("invalid_amount")
	ErrMaxOccupancyExceeded = errors.New("max_occupancy_exceeded")
	ErrOverlappingOverride  = errors.New("overlapping_override")
	ErrStorageUnavailable   = errors.New("storage_unavailable")
	ErrConcurrencyConflict  = errors.New("concurrency_conflict")
	ErrForbidden            = errors.New("forbidden")
)
