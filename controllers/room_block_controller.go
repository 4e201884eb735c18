package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"horizon-hotel-backend/middleware"
	"horizon-hotel-backend/models"
	"horizon-hotel-backend/services"
	"horizon-hotel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateBlockPayload struct {
	RoomTypeID uint   `json:"room_type_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	RoomsCount int    `json:"rooms_count" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

type RoomBlockController struct {
	BlockSvc *services.RoomBlockService
}

func NewRoomBlockController(svc *services.RoomBlockService) *RoomBlockController {
	return &RoomBlockController{BlockSvc: svc}
}

func (ctrl *RoomBlockController) CreateBlock(c *gin.Context) {
	var payload CreateBlockPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid block payload: "+err.Error())
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

	block := models.RoomBlock{
		RoomTypeID: payload.RoomTypeID,
		StartDate:  start,
		EndDate:    end,
		RoomsCount: payload.RoomsCount,
		Reason:     payload.Reason,
	}
	if err := ctrl.BlockSvc.Create(&block, middleware.ActorFrom(c)); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, block)
}

func (ctrl *RoomBlockController) GetBlocks(c *gin.Context) {
	var roomTypeID uint
	if v, err := strconv.ParseUint(c.Query("room_type_id"), 10, 64); err == nil {
		roomTypeID = uint(v)
	}
	from, _ := utils.ParseDay(c.Query("from"))
	to, _ := utils.ParseDay(c.Query("to"))

	blocks, err := ctrl.BlockSvc.List(roomTypeID, from, to)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, blocks)
}

func (ctrl *RoomBlockController) DeleteBlock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid block id")
		return
	}
	if err := ctrl.BlockSvc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "block not found")
			return
		}
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "block removed"})
}
