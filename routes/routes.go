package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"horizon-hotel-backend/controllers"
	"horizon-hotel-backend/middleware"
	"horizon-hotel-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires all controllers onto the gin engine. Public routes
// (availability, room types, booking creation) accept anonymous guests;
// everything else requires a staff token.
func SetupRouter(
	ac *controllers.AuthController,
	avc *controllers.AvailabilityController,
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	rtc *controllers.RoomTypeController,
	rbc *controllers.RoomBlockController,
	oc *controllers.OverrideController,
	cc *controllers.CustomerController,
	sc *controllers.SettingsController,
	adc *controllers.AdminController,
	rc *controllers.ReportController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.Auth())
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
		}

		// Public: guests browse availability and create bookings.
		api.GET("/availability", avc.GetAvailability)
		api.GET("/room-types", rtc.GetRoomTypes)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.CreateBooking)

			staff := bookings.Group("")
			staff.Use(middleware.RequireRole(models.RoleReceptionist))
			{
				staff.GET("", bc.GetBookings)
				staff.GET("/:id", bc.GetBookingDetails)
				staff.POST("/:id/status", bc.TransitionBooking)
				staff.POST("/:id/cancel", bc.CancelBooking)
				staff.POST("/:id/payments", pc.RecordPayment)
				staff.GET("/:id/payments", pc.ListPayments)
				staff.GET("/:id/reconcile", pc.ReconcileBooking)
			}
		}

		customers := api.Group("/customers")
		customers.Use(middleware.RequireRole(models.RoleReceptionist))
		{
			customers.GET("", cc.SearchCustomers)
			customers.GET("/:id", cc.GetCustomer)
		}

		roomTypes := api.Group("/room-types")
		roomTypes.Use(middleware.RequireRole(models.RoleManager))
		{
			roomTypes.POST("", rtc.CreateRoomType)
			roomTypes.PATCH("/:id", rtc.UpdateRoomType)
			roomTypes.DELETE("/:id", rtc.DeactivateRoomType)
		}

		blocks := api.Group("/room-blocks")
		blocks.Use(middleware.RequireRole(models.RoleManager))
		{
			blocks.GET("", rbc.GetBlocks)
			blocks.POST("", rbc.CreateBlock)
			blocks.DELETE("/:id", rbc.DeleteBlock)
		}

		overrides := api.Group("/price-overrides")
		overrides.Use(middleware.RequireRole(models.RoleManager))
		{
			overrides.GET("", oc.GetOverrides)
			overrides.POST("", oc.CreateOverride)
			overrides.DELETE("/:id", oc.DeactivateOverride)
		}

		settings := api.Group("/settings")
		settings.Use(middleware.RequireRole(models.RoleManager))
		{
			settings.GET("/hotel", sc.GetHotelSettings)
			settings.PUT("/hotel", sc.UpdateHotelSettings)
		}

		reports := api.Group("/reports")
		reports.Use(middleware.RequireRole(models.RoleManager))
		{
			reports.GET("/occupancy", rc.GetOccupancyReport)
			reports.GET("/revenue", rc.GetRevenueReport)
			reports.GET("/audit", rc.GetAuditTrail)
		}

		admins := api.Group("/admins")
		admins.Use(middleware.RequireRole(models.RoleOwner))
		{
			admins.GET("", adc.GetAdmins)
			admins.POST("", adc.CreateAdmin)
			admins.DELETE("/:id", adc.DeleteAdmin)
		}
	}

	return r
}
