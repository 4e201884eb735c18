package services

import (
	"errors"
	"fmt"
	"time"

	"horizon-hotel-backend/models"

	"gorm.io/gorm"
)

// PaymentResult reports the booking's money position after a payment.
type PaymentResult struct {
	PaymentID          uint    `json:"payment_id"`
	PaidAmount         float64 `json:"paid_amount"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	AutoConfirmed      bool    `json:"auto_confirmed"`
}

// ReconcileResult compares the stored paid amount against the true sum of
// payment rows.
type ReconcileResult struct {
	BookingID    uint    `json:"booking_id"`
	StoredPaid   float64 `json:"stored_paid"`
	DerivedPaid  float64 `json:"derived_paid"`
	TotalAmount  float64 `json:"total_amount"`
	Outstanding  float64 `json:"outstanding_balance"`
	Drift        float64 `json:"drift"`
	Consistent   bool    `json:"consistent"`
	PaymentCount int     `json:"payment_count"`
}

// PaymentService appends payments and keeps a booking's paid amount in
// step with the sum of its payment rows. Payments are append-only; the
// paid amount is always re-derived inside the recording transaction.
type PaymentService struct {
	DB       *gorm.DB
	Notifier Notifier
	Audit    *AuditService
}

func NewPaymentService(db *gorm.DB, notifier Notifier, audit *AuditService) *PaymentService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &PaymentService{DB: db, Notifier: notifier, Audit: audit}
}

// Record appends a payment against a booking. The booking row is locked
// for the duration so racing payments and status changes serialize. A
// payment that would push the derived sum past the booking total is
// rejected with ErrInvalidAmount. Full payment of a Pending booking
// auto-advances it to Confirmed.
func (s *PaymentService) Record(bookingID uint, amount float64, method models.PaymentMethod, receiptRef string, actor models.Actor) (*PaymentResult, error) {
	if !actor.IsStaff() {
		return nil, models.ErrForbidden
	}
	if amount <= 0 {
		return nil, models.ErrInvalidAmount
	}
	if !method.IsValid() {
		return nil, models.ErrInvalidAmount
	}

	var booking models.Booking
	var payment models.Payment
	var result PaymentResult
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
		if booking.Status.IsTerminal() {
			return models.ErrInvalidBookingState
		}

		// Derive the current position from the payment rows, never from
		// the cached column.
		var paidSoFar struct {
			Total float64
		}
		if err := tx.Model(&models.Payment{}).
			Select("COALESCE(SUM(amount_paid), 0) AS total").
			Where("booking_id = ?", bookingID).
			Scan(&paidSoFar).Error; err != nil {
			return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
		}

		if paidSoFar.Total+amount > booking.TotalAmount {
			return models.ErrInvalidAmount
		}

		var recordedBy *uint
		if actor.ID != 0 {
			id := actor.ID
			recordedBy = &id
		}

		payment = models.Payment{
			BookingID:    bookingID,
			AmountPaid:   amount,
			Method:       method,
			ReceiptRef:   receiptRef,
			PaidAt:       time.Now().UTC(),
			RecordedByID: recordedBy,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}

		newPaid := paidSoFar.Total + amount
		updates := map[string]interface{}{"paid_amount": newPaid}

		autoConfirmed := false
		if newPaid >= booking.TotalAmount && booking.Status == models.BookingStatusPending {
			updates["status"] = models.BookingStatusConfirmed
			autoConfirmed = true
		}

		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update booking payment state: %w", err)
		}

		booking.PaidAmount = newPaid
		if autoConfirmed {
			booking.Status = models.BookingStatusConfirmed
		}

		result = PaymentResult{
			PaymentID:          payment.ID,
			PaidAmount:         newPaid,
			OutstandingBalance: booking.OutstandingBalance(),
			AutoConfirmed:      autoConfirmed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Customer").Preload("RoomType").First(&booking, bookingID).Error; err != nil {
		booking.ID = bookingID
	}

	if s.Audit != nil {
		s.Audit.Record("payment_recorded", "booking", bookingID, actor,
			map[string]interface{}{"paid_amount": result.PaidAmount - amount, "status": previous},
			map[string]interface{}{"paid_amount": result.PaidAmount, "status": booking.Status},
			fmt.Sprintf("amount=%.2f method=%s", amount, method))
	}
	s.Notifier.PaymentConfirmed(&booking, &payment)
	if result.AutoConfirmed {
		s.Notifier.StatusChanged(&booking, previous, models.BookingStatusConfirmed)
	}

	return &result, nil
}

// Reconcile recomputes the payment sum for a booking without writing
// anything. Used by integrity checks to detect drift in the cached
// paid_amount column.
func (s *PaymentService) Reconcile(bookingID uint) (*ReconcileResult, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	var payments []models.Payment
	if err := s.DB.Where("booking_id = ?", bookingID).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	derived := 0.0
	for _, p := range payments {
		derived += p.AmountPaid
	}

	outstanding := booking.TotalAmount - derived
	if outstanding < 0 {
		outstanding = 0
	}

	return &ReconcileResult{
		BookingID:    bookingID,
		StoredPaid:   booking.PaidAmount,
		DerivedPaid:  derived,
		TotalAmount:  booking.TotalAmount,
		Outstanding:  outstanding,
		Drift:        booking.PaidAmount - derived,
		Consistent:   booking.PaidAmount == derived,
		PaymentCount: len(payments),
	}, nil
}

// ListByBooking returns a booking's payments oldest first.
func (s *PaymentService) ListByBooking(bookingID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("booking_id = ?", bookingID).Order("id ASC").Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return payments, nil
}
