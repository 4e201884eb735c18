package models

import (
	"time"

	"gorm.io/gorm"
)

// Valid reasons for taking rooms out of availability.
const (
	BlockReasonMaintenance = "maintenance"
	BlockReasonAdminHold   = "admin_hold"
	BlockReasonRenovation  = "renovation"
	BlockReasonEmergency   = "emergency"
)

// RoomBlock removes RoomsCount rooms from a room type's pool for the
// range [StartDate, EndDate). It does not reference a physical room.
type RoomBlock struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomTypeID uint      `gorm:"index;column:room_type_id" json:"room_type_id"`
	StartDate  time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate    time.Time `gorm:"column:end_date" json:"end_date"`
	RoomsCount int       `gorm:"column:rooms_count" json:"rooms_count"`
	Reason     string    `gorm:"size:64" json:"reason"`

	CreatedByID *uint `gorm:"column:created_by_id" json:"created_by_id,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"-"`
}

func IsValidBlockReason(reason string) bool {
	switch reason {
	case BlockReasonMaintenance, BlockReasonAdminHold, BlockReasonRenovation, BlockReasonEmergency:
		return true
	default:
		return false
	}
}
