package models

import (
	"time"
)

// PaymentMethod is the closed set of accepted payment channels.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobileMoney, PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

// Payment rows are append-only. Reconciliation always derives a booking's
// paid amount by summing these rows, never by trusting a running total.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID  uint          `gorm:"index;column:booking_id" json:"booking_id"`
	AmountPaid float64       `gorm:"column:amount_paid" json:"amount_paid"`
	Method     PaymentMethod `gorm:"column:method;size:32" json:"method"`
	ReceiptRef string        `gorm:"column:receipt_ref;size:128" json:"receipt_ref,omitempty"`

	PaidAt       time.Time `gorm:"column:paid_at" json:"paid_at"`
	RecordedByID *uint     `gorm:"column:recorded_by_id" json:"recorded_by_id,omitempty"`

	CreatedAt time.Time
}
