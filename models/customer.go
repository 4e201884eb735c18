package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer is created on first booking, or reused when an email match
// exists (lookup-then-create, see CustomerService.FindOrCreate).
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:255" json:"fullName"`
	Email    string `gorm:"size:255;index" json:"email"`
	Phone    string `gorm:"size:64" json:"phone"`
	IDNumber string `gorm:"column:id_number;size:64" json:"id_number,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
