package jobs

import (
	"fmt"
	"testing"
	"time"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/services"
	"horizon-hotel-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestOverstaySweepFlagsLateCheckouts(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.RoomType{}, &models.Customer{}, &models.Booking{},
		&models.Payment{}, &models.AuditLog{},
	))

	rt := models.RoomType{TypeName: "Standard", TotalRooms: 5, BasePrice: 2000, Active: true}
	require.NoError(t, db.Create(&rt).Error)
	customer := models.Customer{FullName: "Late Guest", Email: "late@example.com"}
	require.NoError(t, db.Create(&customer).Error)

	yesterday := utils.DayOf(time.Now()).AddDate(0, 0, -1)
	late := models.Booking{
		ReferenceCode: "BK-LATE0001",
		CustomerID:    customer.ID,
		RoomTypeID:    rt.ID,
		CheckIn:       yesterday.AddDate(0, 0, -3),
		CheckOut:      yesterday,
		Status:        models.BookingStatusCheckedIn,
	}
	require.NoError(t, db.Create(&late).Error)

	onTime := models.Booking{
		ReferenceCode: "BK-OK000001",
		CustomerID:    customer.ID,
		RoomTypeID:    rt.ID,
		CheckIn:       yesterday,
		CheckOut:      yesterday.AddDate(0, 0, 5),
		Status:        models.BookingStatusCheckedIn,
	}
	require.NoError(t, db.Create(&onTime).Error)

	auditSvc := services.NewAuditService(db)
	sweep := NewOverstaySweep(services.NewBookingService(db, nil, auditSvc), auditSvc)
	sweep.Run()

	var flags []models.AuditLog
	require.NoError(t, db.Where("action = ?", "overstay_flagged").Find(&flags).Error)
	require.Len(t, flags, 1)
	assert.Equal(t, late.ID, flags[0].EntityID)

	// Sweeping never mutates the booking; check-out stays a front desk
	// action.
	var reloaded models.Booking
	require.NoError(t, db.First(&reloaded, late.ID).Error)
	assert.Equal(t, models.BookingStatusCheckedIn, reloaded.Status)
}
