package controllers

import (
	"net/http"
	"strconv"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/services"
	"horizon-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

// GetRoomTypes (GET /api/room-types) - public so the booking form can
// list what is on sale. Staff pass ?include_inactive=true.
func (ctrl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	roomTypes, err := ctrl.RoomTypeSvc.List(includeInactive)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roomTypes)
}

func (ctrl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var roomType models.RoomType
	if err := c.ShouldBindJSON(&roomType); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type payload: "+err.Error())
		return
	}
	if err := ctrl.RoomTypeSvc.Create(&roomType); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, roomType)
}

func (ctrl *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	roomType, err := ctrl.RoomTypeSvc.Update(uint(id), updates)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roomType)
}

// DeactivateRoomType (DELETE /api/room-types/:id) - room types are only
// ever deactivated, never removed.
func (ctrl *RoomTypeController) DeactivateRoomType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}
	if err := ctrl.RoomTypeSvc.Deactivate(uint(id)); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room type deactivated"})
}
