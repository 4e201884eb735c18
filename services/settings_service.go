package services

import (
	"errors"
	"fmt"

	"horizon-hotel-backend/models"

	"gorm.io/gorm"
)

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get returns the singleton settings row, creating a default one on first
// access so callers never see a missing row.
func (s *SettingsService) Get() (*models.HotelSetting, error) {
	var setting models.HotelSetting
	err := s.DB.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.HotelSetting{HotelName: "Horizon Hotel", CurrencyCode: "THB"}
		if err := s.DB.Create(&setting).Error; err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
		return &setting, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return &setting, nil
}

func (s *SettingsService) Update(updates map[string]interface{}) (*models.HotelSetting, error) {
	setting, err := s.Get()
	if err != nil {
		return nil, err
	}

	allowed := map[string]bool{
		"hotel_name":     true,
		"currency_code":  true,
		"breakfast_rate": true,
		"vehicle_fee":    true,
		"contact_email":  true,
		"contact_phone":  true,
	}
	filtered := map[string]interface{}{}
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return setting, nil
	}

	if err := s.DB.Model(setting).Updates(filtered).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return s.Get()
}
