package controllers

import (
	"net/http"
	"strconv"

	"horizon-hotel-backend/middleware"
	"horizon-hotel-backend/models"
	"horizon-hotel-backend/services"
	"horizon-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateBookingPayload struct {
	RoomTypeID  uint   `json:"room_type_id" binding:"required"`
	CheckIn     string `json:"check_in" binding:"required"`
	CheckOut    string `json:"check_out" binding:"required"`
	GuestsCount int    `json:"guests_count" binding:"required"`
	Breakfast   bool   `json:"breakfast"`
	Vehicle     bool   `json:"vehicle"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	CustomerIDNum string `json:"customer_id_number"`
}

type TransitionPayload struct {
	Status string `json:"status" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking (POST /api/bookings) - open to self-service guests and
// staff alike; the actor decides whether created_by is recorded.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDay(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in format, expected yyyy-mm-dd")
		return
	}
	checkOut, err := utils.ParseDay(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out format, expected yyyy-mm-dd")
		return
	}

	req := services.CreateBookingRequest{
		RoomTypeID:    payload.RoomTypeID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		GuestsCount:   payload.GuestsCount,
		Breakfast:     payload.Breakfast,
		Vehicle:       payload.Vehicle,
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
		CustomerIDNum: payload.CustomerIDNum,
	}

	booking, err := ctrl.BookingSvc.Create(req, middleware.ActorFrom(c))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings (GET /api/bookings) - staff listing with optional filters.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	filter := services.BookingFilter{
		Status: models.BookingStatus(c.Query("status")),
	}
	if v, err := strconv.ParseUint(c.Query("room_type_id"), 10, 64); err == nil {
		filter.RoomTypeID = uint(v)
	}
	if from, err := utils.ParseDay(c.Query("from")); err == nil {
		filter.From = from
	}
	if to, err := utils.ParseDay(c.Query("to")); err == nil {
		filter.To = to
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = v
	}

	bookings, total, err := ctrl.BookingSvc.List(filter)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"bookings": bookings, "total": total})
}

// GetBookingDetails (GET /api/bookings/:id) - accepts a numeric id or a
// reference code.
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	idParam := c.Param("id")

	var booking *models.Booking
	var err error
	if id, convErr := strconv.ParseUint(idParam, 10, 64); convErr == nil {
		booking, err = ctrl.BookingSvc.GetByID(uint(id))
	} else {
		booking, err = ctrl.BookingSvc.GetByReference(idParam)
	}
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// TransitionBooking (POST /api/bookings/:id/status) - staff only.
func (ctrl *BookingController) TransitionBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	var payload TransitionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status required")
		return
	}

	booking, err := ctrl.BookingSvc.TransitionStatus(uint(id), models.BookingStatus(payload.Status), middleware.ActorFrom(c))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking (POST /api/bookings/:id/cancel) - staff only; allowed
// from Pending and Confirmed.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := ctrl.BookingSvc.Cancel(uint(id), middleware.ActorFrom(c))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
