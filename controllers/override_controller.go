package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/services"
	"horizon-hotel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateOverridePayload struct {
	RoomTypeID    uint    `json:"room_type_id" binding:"required"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date" binding:"required"`
	OverridePrice float64 `json:"override_price" binding:"required"`
	Reason        string  `json:"reason"`
}

type OverrideController struct {
	OverrideSvc *services.OverrideService
}

func NewOverrideController(svc *services.OverrideService) *OverrideController {
	return &OverrideController{OverrideSvc: svc}
}

func (ctrl *OverrideController) CreateOverride(c *gin.Context) {
	var payload CreateOverridePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid override payload: "+err.Error())
		return
	}

	start, err := utils.ParseDay(payload.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start_date, expected yyyy-mm-dd")
		return
	}
	end, err := utils.ParseDay(payload.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end_date, expected yyyy-mm-dd")
		return
	}

	override := models.SeasonalPriceOverride{
		RoomTypeID:    payload.RoomTypeID,
		StartDate:     start,
		EndDate:       end,
		OverridePrice: payload.OverridePrice,
		Reason:        payload.Reason,
	}
	if err := ctrl.OverrideSvc.Create(&override); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, override)
}

func (ctrl *OverrideController) GetOverrides(c *gin.Context) {
	var roomTypeID uint
	if v, err := strconv.ParseUint(c.Query("room_type_id"), 10, 64); err == nil {
		roomTypeID = uint(v)
	}
	includeInactive := c.Query("include_inactive") == "true"

	overrides, err := ctrl.OverrideSvc.List(roomTypeID, includeInactive)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, overrides)
}

func (ctrl *OverrideController) DeactivateOverride(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid override id")
		return
	}
	if err := ctrl.OverrideSvc.Deactivate(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "override not found")
			return
		}
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "override deactivated"})
}
