package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingStatus is the booking lifecycle state.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusCheckedIn  BookingStatus = "Checked-In"
	BookingStatusCheckedOut BookingStatus = "Checked-Out"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// bookingTransitions is the full legal edge set. Statuses missing a key
// (or mapped to an empty set) are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusCheckedIn, BookingStatusCancelled},
	BookingStatusCheckedIn:  {BookingStatusCheckedOut},
	BookingStatusCheckedOut: {},
	BookingStatusCancelled:  {},
}

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0 && s.IsValid()
}

// CanTransitionTo reports whether s → next is a legal edge.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func AllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCheckedIn,
		BookingStatusCheckedOut,
		BookingStatusCancelled,
	}
}

// ActiveBookingStatuses are the statuses that consume room capacity.
// Pending counts conservatively so a half-paid booking cannot be
// oversold while it waits for payment.
func ActiveBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCheckedIn,
	}
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	CustomerID uint `gorm:"index;column:customer_id" json:"customer_id"`
	RoomTypeID uint `gorm:"index;column:room_type_id" json:"room_type_id"`

	CheckIn  time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out" json:"check_out"`
	Nights   int       `gorm:"column:nights" json:"nights"`

	GuestsCount int  `gorm:"column:guests_count;default:1" json:"guests_count"`
	Breakfast   bool `gorm:"default:false" json:"breakfast"`
	Vehicle     bool `gorm:"default:false" json:"vehicle"`

	// Price snapshots taken at creation. TotalAmount never changes after
	// the booking is created; PaidAmount is re-derived from payment rows.
	BasePrice   float64 `gorm:"column:base_price" json:"base_price"`
	ExtrasPrice float64 `gorm:"column:extras_price" json:"extras_price"`
	TotalAmount float64 `gorm:"column:total_amount" json:"total_amount"`
	PaidAmount  float64 `gorm:"column:paid_amount;default:0" json:"paid_amount"`

	Status BookingStatus `gorm:"column:status;size:32;index" json:"status"`

	// Nil for public self-service bookings.
	CreatedByID     *uint `gorm:"column:created_by_id" json:"created_by_id,omitempty"`
	AssignedStaffID *uint `gorm:"column:assigned_staff_id" json:"assigned_staff_id,omitempty"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checked_out_at,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Customer Customer  `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	RoomType RoomType  `gorm:"foreignKey:RoomTypeID;references:ID" json:"room_type,omitempty"`
	Payments []Payment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

// OutstandingBalance is the remaining amount due, floored at zero.
func (b Booking) OutstandingBalance() float64 {
	if b.PaidAmount >= b.TotalAmount {
		return 0
	}
	return b.TotalAmount - b.PaidAmount
}

// IsOverstay reports whether a checked-in booking has passed its
// check-out date without being checked out.
func (b Booking) IsOverstay(today time.Time) bool {
	return b.Status == BookingStatusCheckedIn && b.CheckOut.Before(today)
}
