package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType is a category of room with a shared capacity pool. Physical
// rooms are not tracked individually; TotalRooms is the pool size.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string `gorm:"size:100;uniqueIndex" json:"typeName"`
	Description string `gorm:"type:text" json:"description"`

	TotalRooms   int     `gorm:"column:total_rooms;default:0" json:"total_rooms"`
	BasePrice    float64 `gorm:"column:base_price" json:"base_price"`
	MaxOccupancy int     `gorm:"column:max_occupancy;default:2" json:"max_occupancy"`

	// Guests beyond StandardOccupancy pay ExtraGuestFee per guest per night.
	StandardOccupancy int     `gorm:"column:standard_occupancy;default:2" json:"standard_occupancy"`
	ExtraGuestFee     float64 `gorm:"column:extra_guest_fee;default:0" json:"extra_guest_fee"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
