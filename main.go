package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"horizon-hotel-backend/config"
	"horizon-hotel-backend/controllers"
	"horizon-hotel-backend/jobs"
	"horizon-hotel-backend/routes"
	"horizon-hotel-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	// Collaborators
	auditService := services.NewAuditService(db)
	settingsService := services.NewSettingsService(db)

	currency := ""
	if setting, err := settingsService.Get(); err == nil {
		currency = setting.CurrencyCode
	}
	notifier := services.NewEmailNotifier(currency)

	// Core services
	availabilityService := services.NewAvailabilityService(db)
	bookingService := services.NewBookingService(db, notifier, auditService)
	paymentService := services.NewPaymentService(db, notifier, auditService)
	customerService := services.NewCustomerService(db)
	roomTypeService := services.NewRoomTypeService(db)
	roomBlockService := services.NewRoomBlockService(db)
	overrideService := services.NewOverrideService(db)
	adminService := services.NewAdminService(db)
	reportService := services.NewReportService(db)

	// Controllers
	authController := controllers.NewAuthController(adminService)
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(paymentService)
	roomTypeController := controllers.NewRoomTypeController(roomTypeService)
	roomBlockController := controllers.NewRoomBlockController(roomBlockService)
	overrideController := controllers.NewOverrideController(overrideService)
	customerController := controllers.NewCustomerController(customerService)
	settingsController := controllers.NewSettingsController(settingsService)
	adminController := controllers.NewAdminController(adminService)
	reportController := controllers.NewReportController(reportService, auditService)

	router := routes.SetupRouter(
		authController,
		availabilityController,
		bookingController,
		paymentController,
		roomTypeController,
		roomBlockController,
		overrideController,
		customerController,
		settingsController,
		adminController,
		reportController,
	)

	// Nightly overstay sweep
	sweep := jobs.NewOverstaySweep(bookingService, auditService)
	scheduler := jobs.Schedule(sweep)
	defer scheduler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
