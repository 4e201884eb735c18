package services

import (
	"errors"
	"fmt"
	"strings"

	"horizon-hotel-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func (s *AdminService) List() ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.DB.Order("id ASC").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return admins, nil
}

func (s *AdminService) Create(fullName, username, password string, role models.Role) (*models.Admin, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	fullName = strings.TrimSpace(fullName)
	if username == "" || password == "" || fullName == "" {
		return nil, errors.New("full name, username and password required")
	}
	if !role.IsValid() || role == models.RoleGuest {
		return nil, errors.New("invalid staff role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.Admin{
		FullName: fullName,
		Username: username,
		Password: string(hash),
		Role:     role,
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return &admin, nil
}

// Authenticate checks staff credentials and returns the account on match.
func (s *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid credentials")
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	return &admin, nil
}

func (s *AdminService) Delete(id uint) error {
	result := s.DB.Delete(&models.Admin{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
