package models

import (
	"time"

	"gorm.io/gorm"
)

// SeasonalPriceOverride replaces a room type's nightly base price for the
// inclusive date range [StartDate, EndDate]. Active overrides for the same
// room type must not overlap; the service layer rejects overlaps at
// creation so any night resolves to at most one override.
type SeasonalPriceOverride struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomTypeID uint      `gorm:"index;column:room_type_id" json:"room_type_id"`
	StartDate  time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate    time.Time `gorm:"column:end_date" json:"end_date"`

	OverridePrice float64 `gorm:"column:override_price" json:"override_price"`
	Reason        string  `gorm:"size:255" json:"reason"`
	Active        bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"-"`
}

// CoversNight reports whether the override window contains the night
// starting at the given date.
func (o SeasonalPriceOverride) CoversNight(night time.Time) bool {
	return !night.Before(o.StartDate) && !night.After(o.EndDate)
}
