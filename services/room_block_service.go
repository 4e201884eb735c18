package services

import (
	"errors"
	"fmt"
	"time"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/utils"

	"gorm.io/gorm"
)

type RoomBlockService struct {
	DB *gorm.DB
}

func NewRoomBlockService(db *gorm.DB) *RoomBlockService {
	return &RoomBlockService{DB: db}
}

// Create removes block.RoomsCount rooms from availability over the
// half-open range [StartDate, EndDate).
func (s *RoomBlockService) Create(block *models.RoomBlock, actor models.Actor) error {
	block.StartDate = utils.DayOf(block.StartDate)
	block.EndDate = utils.DayOf(block.EndDate)
	if !block.EndDate.After(block.StartDate) {
		return models.ErrInvalidDateRange
	}
	if block.RoomsCount <= 0 {
		return models.ErrInvalidAmount
	}
	if !models.IsValidBlockReason(block.Reason) {
		return fmt.Errorf("invalid block reason: %s", block.Reason)
	}

	var roomType models.RoomType
	if err := s.DB.Where("id = ? AND active = ?", block.RoomTypeID, true).First(&roomType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrRoomTypeNotFound
		}
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	if actor.ID != 0 {
		id := actor.ID
		block.CreatedByID = &id
	}

	if err := s.DB.Create(block).Error; err != nil {
		return fmt.Errorf("failed to create room block: %w", err)
	}
	return nil
}

func (s *RoomBlockService) List(roomTypeID uint, from, to time.Time) ([]models.RoomBlock, error) {
	query := s.DB.Order("start_date ASC")
	if roomTypeID != 0 {
		query = query.Where("room_type_id = ?", roomTypeID)
	}
	if !from.IsZero() && !to.IsZero() {
		query = query.Where("start_date < ? AND end_date > ?", utils.DayOf(to), utils.DayOf(from))
	}
	var blocks []models.RoomBlock
	if err := query.Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return blocks, nil
}

// Delete releases a block's rooms back into availability.
func (s *RoomBlockService) Delete(id uint) error {
	result := s.DB.Delete(&models.RoomBlock{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
