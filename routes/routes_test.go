package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"horizon-hotel-backend/controllers"
	"horizon-hotel-backend/middleware"
	"horizon-hotel-backend/models"
	"horizon-hotel-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Admin{}, &models.HotelSetting{}, &models.RoomType{},
		&models.SeasonalPriceOverride{}, &models.RoomBlock{}, &models.Customer{},
		&models.Booking{}, &models.Payment{}, &models.AuditLog{},
	))

	auditSvc := services.NewAuditService(db)
	adminSvc := services.NewAdminService(db)
	bookingSvc := services.NewBookingService(db, nil, auditSvc)
	paymentSvc := services.NewPaymentService(db, nil, auditSvc)

	r := SetupRouter(
		controllers.NewAuthController(adminSvc),
		controllers.NewAvailabilityController(services.NewAvailabilityService(db)),
		controllers.NewBookingController(bookingSvc),
		controllers.NewPaymentController(paymentSvc),
		controllers.NewRoomTypeController(services.NewRoomTypeService(db)),
		controllers.NewRoomBlockController(services.NewRoomBlockService(db)),
		controllers.NewOverrideController(services.NewOverrideService(db)),
		controllers.NewCustomerController(services.NewCustomerService(db)),
		controllers.NewSettingsController(services.NewSettingsService(db)),
		controllers.NewAdminController(adminSvc),
		controllers.NewReportController(services.NewReportService(db), auditSvc),
	)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestBookingFlowOverHTTP walks the booking through creation, payment and
// check-in the way the front desk would.
func TestBookingFlowOverHTTP(t *testing.T) {
	r, db := newTestServer(t)

	require.NoError(t, db.Create(&models.RoomType{
		TypeName: "Suite", TotalRooms: 2, BasePrice: 4000,
		MaxOccupancy: 4, StandardOccupancy: 2, ExtraGuestFee: 500, Active: true,
	}).Error)

	staff := &models.Admin{ID: 9, Username: "front.desk", Role: models.RoleReceptionist}
	token, err := middleware.IssueToken(staff)
	require.NoError(t, err)

	// Anonymous guest checks availability, then books.
	w := doJSON(t, r, http.MethodGet, "/api/availability?room_type_id=1&from=2026-09-10&to=2026-09-13", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/bookings", "", gin.H{
		"room_type_id":   1,
		"check_in":       "2026-09-10",
		"check_out":      "2026-09-13",
		"guests_count":   3,
		"customer_name":  "Ticha Boonmee",
		"customer_email": "ticha@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.BookingStatusPending, created.Data.Status)
	assert.Equal(t, 13500.0, created.Data.TotalAmount)

	bookingPath := fmt.Sprintf("/api/bookings/%d", created.Data.ID)

	// Guests cannot reach staff endpoints.
	w = doJSON(t, r, http.MethodGet, bookingPath, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Full payment auto-confirms.
	w = doJSON(t, r, http.MethodPost, bookingPath+"/payments", token, gin.H{
		"amount": 13500,
		"method": "card",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, bookingPath, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched struct {
		Data models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, models.BookingStatusConfirmed, fetched.Data.Status)
	assert.Equal(t, 13500.0, fetched.Data.PaidAmount)

	// Check in, then an illegal cancel bounces with 409.
	w = doJSON(t, r, http.MethodPost, bookingPath+"/status", token, gin.H{"status": "Checked-In"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, bookingPath+"/cancel", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestManagerOnlyRoutes(t *testing.T) {
	r, _ := newTestServer(t)

	receptionist, err := middleware.IssueToken(&models.Admin{ID: 9, Username: "front.desk", Role: models.RoleReceptionist})
	require.NoError(t, err)
	manager, err := middleware.IssueToken(&models.Admin{ID: 2, Username: "manager", Role: models.RoleManager})
	require.NoError(t, err)

	body := gin.H{"typeName": "Standard", "total_rooms": 10, "base_price": 2000}

	w := doJSON(t, r, http.MethodPost, "/api/room-types", receptionist, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/room-types", manager, body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
