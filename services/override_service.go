package services

import (
	"errors"
	"fmt"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/utils"

	"gorm.io/gorm"
)

// OverrideService manages seasonal price overrides. Overlapping active
// overrides for the same room type are rejected at creation, so pricing
// never has to pick between two overrides for one night.
type OverrideService struct {
	DB *gorm.DB
}

func NewOverrideService(db *gorm.DB) *OverrideService {
	return &OverrideService{DB: db}
}

func (s *OverrideService) Create(override *models.SeasonalPriceOverride) error {
	override.StartDate = utils.DayOf(override.StartDate)
	override.EndDate = utils.DayOf(override.EndDate)
	// Override ranges are inclusive on both ends; a one-day override has
	// StartDate == EndDate.
	if override.EndDate.Before(override.StartDate) {
		return models.ErrInvalidDateRange
	}
	if override.OverridePrice < 0 {
		return models.ErrInvalidAmount
	}

	var roomType models.RoomType
	if err := s.DB.Where("id = ? AND active = ?", override.RoomTypeID, true).First(&roomType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrRoomTypeNotFound
		}
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	var overlapping int64
	if err := s.DB.Model(&models.SeasonalPriceOverride{}).
		Where("room_type_id = ? AND active = ?", override.RoomTypeID, true).
		Where("start_date <= ? AND end_date >= ?", override.EndDate, override.StartDate).
		Count(&overlapping).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	if overlapping > 0 {
		return models.ErrOverlappingOverride
	}

	override.Active = true
	if err := s.DB.Create(override).Error; err != nil {
		return fmt.Errorf("failed to create price override: %w", err)
	}
	return nil
}

func (s *OverrideService) List(roomTypeID uint, includeInactive bool) ([]models.SeasonalPriceOverride, error) {
	query := s.DB.Order("start_date ASC")
	if roomTypeID != 0 {
		query = query.Where("room_type_id = ?", roomTypeID)
	}
	if !includeInactive {
		query = query.Where("active = ?", true)
	}
	var overrides []models.SeasonalPriceOverride
	if err := query.Find(&overrides).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return overrides, nil
}

// Deactivate retires an override; future pricing falls back to the base
// rate for its range. Existing booking snapshots are unaffected.
func (s *OverrideService) Deactivate(id uint) error {
	var override models.SeasonalPriceOverride
	if err := s.DB.First(&override, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	if err := s.DB.Model(&override).Update("active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate override: %w", err)
	}
	return nil
}
