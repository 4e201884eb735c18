package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is a staff account. Password holds a bcrypt hash.
type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:255" json:"fullName"`
	Username string `gorm:"size:255;uniqueIndex" json:"username"`
	Password string `gorm:"size:255" json:"-"`
	Role     Role   `gorm:"size:32;default:receptionist" json:"role"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
