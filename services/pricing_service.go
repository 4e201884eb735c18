package services

import (
	"errors"
	"fmt"
	"time"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/utils"

	"gorm.io/gorm"
)

// PriceQuote is the full cost breakdown for a stay.
type PriceQuote struct {
	Nights       int       `json:"nights"`
	NightlyRates []float64 `json:"nightly_rates"`
	BaseTotal    float64   `json:"base_total"`
	ExtrasTotal  float64   `json:"extras_total"`
	GrandTotal   float64   `json:"grand_total"`
}

type PricingService struct {
	DB *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{DB: db}
}

// ComputePrice prices a stay night by night. Each night uses the active
// seasonal override covering it, or the room type's base price. Guests
// beyond the room type's standard occupancy add the per-night extra guest
// fee. Breakfast is charged per guest per night and the vehicle fee is
// flat, both at the rates in HotelSetting.
//
// Deterministic given the room type, overrides and settings; no writes.
func (s *PricingService) ComputePrice(roomType *models.RoomType, checkIn, checkOut time.Time, guests int, breakfast, vehicle bool) (*PriceQuote, error) {
	return computePrice(s.DB, roomType, checkIn, checkOut, guests, breakfast, vehicle)
}

func computePrice(db *gorm.DB, roomType *models.RoomType, checkIn, checkOut time.Time, guests int, breakfast, vehicle bool) (*PriceQuote, error) {
	checkIn = utils.DayOf(checkIn)
	checkOut = utils.DayOf(checkOut)

	nights := utils.NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil, models.ErrInvalidStay
	}
	if guests <= 0 {
		return nil, models.ErrInvalidStay
	}

	var overrides []models.SeasonalPriceOverride
	if err := db.
		Where("room_type_id = ? AND active = ?", roomType.ID, true).
		Where("start_date < ? AND end_date >= ?", checkOut, checkIn).
		Find(&overrides).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	quote := &PriceQuote{
		Nights:       nights,
		NightlyRates: make([]float64, 0, nights),
	}

	extraGuests := 0
	if roomType.StandardOccupancy > 0 && guests > roomType.StandardOccupancy {
		extraGuests = guests - roomType.StandardOccupancy
	}

	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		rate := roomType.BasePrice
		for _, o := range overrides {
			if o.CoversNight(night) {
				rate = o.OverridePrice
				break
			}
		}
		rate += float64(extraGuests) * roomType.ExtraGuestFee
		quote.NightlyRates = append(quote.NightlyRates, rate)
		quote.BaseTotal += rate
	}

	var setting models.HotelSetting
	if err := db.First(&setting).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	if breakfast {
		quote.ExtrasTotal += setting.BreakfastRate * float64(guests) * float64(nights)
	}
	if vehicle {
		quote.ExtrasTotal += setting.VehicleFee
	}

	quote.GrandTotal = quote.BaseTotal + quote.ExtrasTotal
	return quote, nil
}
