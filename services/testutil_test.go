package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own in-memory database. The DSN is
// keyed on the test name so parallel tests never share state, and the
// pool is pinned to one connection so every session sees the same
// in-memory store.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.HotelSetting{},
		&models.RoomType{},
		&models.SeasonalPriceOverride{},
		&models.RoomBlock{},
		&models.Customer{},
		&models.Booking{},
		&models.Payment{},
		&models.AuditLog{},
	))
	return db
}

func day(s string) time.Time {
	d, err := utils.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

var (
	asGuest        = models.Actor{Role: models.RoleGuest}
	asReceptionist = models.Actor{ID: 7, Role: models.RoleReceptionist}
	asManager      = models.Actor{ID: 3, Role: models.RoleManager}
)

func seedRoomType(t *testing.T, db *gorm.DB, name string, totalRooms int, basePrice float64) *models.RoomType {
	t.Helper()
	rt := &models.RoomType{
		TypeName:          name,
		TotalRooms:        totalRooms,
		BasePrice:         basePrice,
		MaxOccupancy:      4,
		StandardOccupancy: 2,
		ExtraGuestFee:     500,
		Active:            true,
	}
	require.NoError(t, db.Create(rt).Error)
	return rt
}

func seedSettings(t *testing.T, db *gorm.DB, breakfastRate, vehicleFee float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.HotelSetting{
		HotelName:     "Horizon Hotel",
		CurrencyCode:  "THB",
		BreakfastRate: breakfastRate,
		VehicleFee:    vehicleFee,
	}).Error)
}

// seedBooking inserts a booking row directly, bypassing the service, so
// tests can put the lifecycle into any starting state.
func seedBooking(t *testing.T, db *gorm.DB, roomTypeID uint, checkIn, checkOut string, status models.BookingStatus, total float64) *models.Booking {
	t.Helper()
	customer := models.Customer{FullName: "Seed Guest", Email: fmt.Sprintf("seed-%d@example.com", time.Now().UnixNano())}
	require.NoError(t, db.Create(&customer).Error)

	b := &models.Booking{
		ReferenceCode: newReferenceCode(),
		CustomerID:    customer.ID,
		RoomTypeID:    roomTypeID,
		CheckIn:       day(checkIn),
		CheckOut:      day(checkOut),
		Nights:        utils.NightsBetween(day(checkIn), day(checkOut)),
		GuestsCount:   2,
		TotalAmount:   total,
		Status:        status,
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func bookingRequest(roomTypeID uint, checkIn, checkOut string, guests int) CreateBookingRequest {
	return CreateBookingRequest{
		RoomTypeID:    roomTypeID,
		CheckIn:       day(checkIn),
		CheckOut:      day(checkOut),
		GuestsCount:   guests,
		CustomerName:  "Ticha Boonmee",
		CustomerEmail: "ticha@example.com",
		CustomerPhone: "0812345678",
	}
}
