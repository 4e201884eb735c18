package services

import (
	"log"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/utils"
)

// Notifier receives lifecycle events. Implementations must be safe to call
// fire-and-forget: booking and payment operations never wait on, or fail
// because of, a notification.
type Notifier interface {
	BookingCreated(booking *models.Booking)
	PaymentConfirmed(booking *models.Booking, payment *models.Payment)
	StatusChanged(booking *models.Booking, from, to models.BookingStatus)
}

// EmailNotifier sends customer emails over SMTP (mock-logged when SMTP is
// not configured). Every send runs in its own goroutine; errors are logged
// and dropped.
type EmailNotifier struct {
	CurrencyCode string
}

func NewEmailNotifier(currencyCode string) *EmailNotifier {
	if currencyCode == "" {
		currencyCode = utils.EnvOrDefault("CURRENCY_CODE", "THB")
	}
	return &EmailNotifier{CurrencyCode: currencyCode}
}

func (n *EmailNotifier) BookingCreated(booking *models.Booking) {
	if booking == nil || booking.Customer.Email == "" {
		return
	}
	b := *booking
	go func() {
		if err := utils.SendBookingConfirmationEmail(
			b.Customer.Email,
			b.Customer.FullName,
			b.ReferenceCode,
			b.RoomType.TypeName,
			b.CheckIn.Format("2006-01-02"),
			b.CheckOut.Format("2006-01-02"),
			b.Nights,
			b.TotalAmount,
			n.CurrencyCode,
		); err != nil {
			log.Printf("notify: booking_created email failed for %s: %v", b.ReferenceCode, err)
		}
	}()
}

func (n *EmailNotifier) PaymentConfirmed(booking *models.Booking, payment *models.Payment) {
	if booking == nil || payment == nil || booking.Customer.Email == "" {
		return
	}
	b := *booking
	p := *payment
	go func() {
		if err := utils.SendPaymentReceiptEmail(
			b.Customer.Email,
			b.Customer.FullName,
			b.ReferenceCode,
			p.AmountPaid,
			b.PaidAmount,
			b.OutstandingBalance(),
			n.CurrencyCode,
		); err != nil {
			log.Printf("notify: payment_confirmed email failed for %s: %v", b.ReferenceCode, err)
		}
	}()
}

func (n *EmailNotifier) StatusChanged(booking *models.Booking, from, to models.BookingStatus) {
	if booking == nil || booking.Customer.Email == "" {
		return
	}
	b := *booking
	go func() {
		if err := utils.SendStatusChangeEmail(
			b.Customer.Email,
			b.Customer.FullName,
			b.ReferenceCode,
			to.String(),
		); err != nil {
			log.Printf("notify: status_changed email failed for %s: %v", b.ReferenceCode, err)
		}
	}()
}

// NopNotifier discards all events. Used in tests.
type NopNotifier struct{}

func (NopNotifier) BookingCreated(*models.Booking)                                      {}
func (NopNotifier) PaymentConfirmed(*models.Booking, *models.Payment)                   {}
func (NopNotifier) StatusChanged(*models.Booking, models.BookingStatus, models.BookingStatus) {}
