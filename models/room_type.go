package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room type categories form a closed tier set.
const (
	CategoryStandard  = "standard"
	CategorySuperior  = "superior"
	CategoryDeluxe    = "deluxe"
	CategorySuite     = "suite"
	CategoryExecutive = "executive"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryStandard, CategorySuperior, CategoryDeluxe, CategorySuite, CategoryExecutive:
		return true
	}
	return false
}

// RoomType is a bookable tier of rooms, not a physical room.
// Never hard-deleted: Active=false retires it while keeping booking
// history intact.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string         `gorm:"size:120" json:"name"`
	Category     string         `gorm:"size:40;index" json:"category"`
	Description  string         `gorm:"type:text" json:"description"`
	BasePrice    float64        `gorm:"type:decimal(10,2)" json:"base_price"`
	MaxOccupancy int            `gorm:"column:max_occupancy" json:"max_occupancy"`
	Amenities    datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	ImageURLs    datatypes.JSON `gorm:"column:image_urls" json:"image_urls,omitempty"`
	Active       bool           `gorm:"index" json:"active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Rooms []Room `gorm:"foreignKey:RoomTypeID" json:"rooms,omitempty"`
}
