package services

import (
	"errors"
	"fmt"
	"strings"

	"horizon-hotel-backend/models"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// FindOrCreate reuses the customer with a matching email when one exists,
// otherwise creates a new record. Email comparison is case-insensitive.
func (s *CustomerService) FindOrCreate(fullName, email, phone, idNumber string) (*models.Customer, error) {
	return findOrCreateCustomer(s.DB, fullName, email, phone, idNumber)
}

func findOrCreateCustomer(db *gorm.DB, fullName, email, phone, idNumber string) (*models.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	fullName = strings.TrimSpace(fullName)
	if email == "" || fullName == "" {
		return nil, errors.New("customer name and email required")
	}

	var customer models.Customer
	err := db.Where("LOWER(email) = ?", email).First(&customer).Error
	if err == nil {
		// Refresh contact details the guest may have updated.
		updates := map[string]interface{}{}
		if phone != "" && phone != customer.Phone {
			updates["phone"] = phone
		}
		if idNumber != "" && idNumber != customer.IDNumber {
			updates["id_number"] = idNumber
		}
		if len(updates) > 0 {
			if err := db.Model(&customer).Updates(updates).Error; err != nil {
				return nil, fmt.Errorf("failed to update customer: %w", err)
			}
		}
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	customer = models.Customer{
		FullName: fullName,
		Email:    email,
		Phone:    strings.TrimSpace(phone),
		IDNumber: strings.TrimSpace(idNumber),
	}
	if err := db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return &customer, nil
}

// Search lists customers matching a name or email fragment, newest first.
func (s *CustomerService) Search(query string, limit int) ([]models.Customer, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var customers []models.Customer
	err := s.DB.
		Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", q, q).
		Order("id DESC").
		Limit(limit).
		Find(&customers).Error
	return customers, err
}
