package models

import "time"

// HotelSetting is a single-row table holding hotel-wide configuration,
// including the extras rates the pricing engine reads.
type HotelSetting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HotelName    string `gorm:"size:255" json:"hotelName"`
	CurrencyCode string `gorm:"size:8;default:THB" json:"currencyCode"`

	// Breakfast is charged per guest per night; the vehicle fee is flat
	// per stay.
	BreakfastRate float64 `gorm:"column:breakfast_rate;default:0" json:"breakfast_rate"`
	VehicleFee    float64 `gorm:"column:vehicle_fee;default:0" json:"vehicle_fee"`

	ContactEmail string `gorm:"size:255" json:"contactEmail"`
	ContactPhone string `gorm:"size:64" json:"contactPhone"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
