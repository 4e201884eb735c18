package controllers

import (
	"net/http"
	"strconv"

	"horizon-hotel-backend/services"
	"horizon-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// GetAvailability (GET /api/availability?room_type_id=&from=&to=) -
// public, so guests can check before booking.
func (ctrl *AvailabilityController) GetAvailability(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Query("room_type_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room_type_id required")
		return
	}
	from, err := utils.ParseDay(c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from date, expected yyyy-mm-dd")
		return
	}
	to, err := utils.ParseDay(c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to date, expected yyyy-mm-dd")
		return
	}

	availability, err := ctrl.AvailabilitySvc.Calculate(uint(roomTypeID), from, to)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, availability)
}
