package models

import (
	"time"

	"gorm.io/gorm"
)

// SeasonalPricing scales a RoomType's base price for every calendar day
// inside [StartDate, EndDate] (inclusive on both ends). Multiple rules
// may overlap; services.PricingService resolves overlaps by picking the
// narrowest matching range.
type SeasonalPricing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomTypeID uint      `gorm:"column:room_type_id;index" json:"room_type_id"`
	Season     string    `gorm:"size:80" json:"season"`
	Multiplier float64   `gorm:"type:decimal(4,2)" json:"multiplier"`
	StartDate  time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate    time.Time `gorm:"column:end_date" json:"end_date"`
	Active     bool      `gorm:"index" json:"active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
}
