package services

import (
	"errors"
	"fmt"
	"strings"

	"horizon-hotel-backend/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) List(includeInactive bool) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	query := s.DB.Order("id ASC")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&roomTypes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return roomTypes, nil
}

func (s *RoomTypeService) GetByID(id uint) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := s.DB.First(&roomType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return &roomType, nil
}

func (s *RoomTypeService) Create(roomType *models.RoomType) error {
	roomType.TypeName = strings.TrimSpace(roomType.TypeName)
	if roomType.TypeName == "" {
		return errors.New("type name required")
	}
	if roomType.TotalRooms < 0 || roomType.BasePrice < 0 || roomType.ExtraGuestFee < 0 {
		return models.ErrInvalidAmount
	}
	if roomType.MaxOccupancy < 1 {
		roomType.MaxOccupancy = 1
	}
	if roomType.StandardOccupancy <= 0 {
		roomType.StandardOccupancy = 2
	}
	roomType.Active = true
	if err := s.DB.Create(roomType).Error; err != nil {
		return fmt.Errorf("failed to create room type: %w", err)
	}
	return nil
}

// Update lets staff change price, capacity and surcharge settings. The
// identity fields stay as they are; room types referenced by bookings are
// never renamed out from under them.
func (s *RoomTypeService) Update(id uint, updates map[string]interface{}) (*models.RoomType, error) {
	roomType, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	allowed := map[string]bool{
		"description":        true,
		"total_rooms":        true,
		"base_price":         true,
		"max_occupancy":      true,
		"standard_occupancy": true,
		"extra_guest_fee":    true,
		"active":             true,
	}
	filtered := map[string]interface{}{}
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return roomType, nil
	}

	if err := s.DB.Model(roomType).Updates(filtered).Error; err != nil {
		return nil, fmt.Errorf("failed to update room type: %w", err)
	}
	return s.GetByID(id)
}

// Deactivate takes a room type off sale. Room types are never deleted;
// existing bookings keep referencing them.
func (s *RoomTypeService) Deactivate(id uint) error {
	roomType, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.DB.Model(roomType).Update("active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate room type: %w", err)
	}
	return nil
}
