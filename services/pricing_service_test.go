package services

import (
	"testing"

	"horizon-hotel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePriceBaseWithExtraGuest(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Suite", 2, 4000)
	svc := NewPricingService(db)

	// Three guests against a standard occupancy of two adds the 500
	// extra guest fee to every night.
	quote, err := svc.ComputePrice(rt, day("2026-09-10"), day("2026-09-13"), 3, false, false)
	require.NoError(t, err)

	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, []float64{4500, 4500, 4500}, quote.NightlyRates)
	assert.Equal(t, 13500.0, quote.BaseTotal)
	assert.Equal(t, 0.0, quote.ExtrasTotal)
	assert.Equal(t, 13500.0, quote.GrandTotal)
}

func TestComputePricePartialOverride(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Deluxe", 5, 4000)
	svc := NewPricingService(db)

	// Override covers the first two nights of a four-night stay; the
	// inclusive end date means the night of the 11th is still covered.
	require.NoError(t, db.Create(&models.SeasonalPriceOverride{
		RoomTypeID:    rt.ID,
		StartDate:     day("2026-12-10"),
		EndDate:       day("2026-12-11"),
		OverridePrice: 5200,
		Active:        true,
	}).Error)

	quote, err := svc.ComputePrice(rt, day("2026-12-10"), day("2026-12-14"), 2, false, false)
	require.NoError(t, err)

	assert.Equal(t, []float64{5200, 5200, 4000, 4000}, quote.NightlyRates)
	assert.Equal(t, 18400.0, quote.GrandTotal)
}

func TestComputePriceInactiveOverrideIgnored(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard", 10, 2000)
	svc := NewPricingService(db)

	require.NoError(t, db.Create(&models.SeasonalPriceOverride{
		RoomTypeID:    rt.ID,
		StartDate:     day("2026-10-01"),
		EndDate:       day("2026-10-31"),
		OverridePrice: 9999,
		Active:        false,
	}).Error)

	quote, err := svc.ComputePrice(rt, day("2026-10-05"), day("2026-10-07"), 2, false, false)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, quote.GrandTotal)
}

func TestComputePriceExtras(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard", 10, 2000)
	seedSettings(t, db, 250, 150)
	svc := NewPricingService(db)

	// Breakfast is per guest per night, the vehicle fee flat per stay:
	// 250 * 2 guests * 2 nights + 150 = 1150.
	quote, err := svc.ComputePrice(rt, day("2026-09-01"), day("2026-09-03"), 2, true, true)
	require.NoError(t, err)

	assert.Equal(t, 4000.0, quote.BaseTotal)
	assert.Equal(t, 1150.0, quote.ExtrasTotal)
	assert.Equal(t, 5150.0, quote.GrandTotal)
}

func TestComputePriceDeterministic(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Deluxe", 5, 3200)
	seedSettings(t, db, 250, 150)
	svc := NewPricingService(db)

	first, err := svc.ComputePrice(rt, day("2026-09-01"), day("2026-09-05"), 3, true, false)
	require.NoError(t, err)
	second, err := svc.ComputePrice(rt, day("2026-09-01"), day("2026-09-05"), 3, true, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputePriceRejectsEmptyStay(t *testing.T) {
	db := openTestDB(t)
	rt := seedRoomType(t, db, "Standard", 10, 2000)
	svc := NewPricingService(db)

	_, err := svc.ComputePrice(rt, day("2026-09-03"), day("2026-09-03"), 2, false, false)
	assert.ErrorIs(t, err, models.ErrInvalidStay)

	_, err = svc.ComputePrice(rt, day("2026-09-03"), day("2026-09-01"), 2, false, false)
	assert.ErrorIs(t, err, models.ErrInvalidStay)

	_, err = svc.ComputePrice(rt, day("2026-09-01"), day("2026-09-03"), 0, false, false)
	assert.ErrorIs(t, err, models.ErrInvalidStay)
}
