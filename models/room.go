package models

import (
	"time"

	"gorm.io/gorm"
)

// Room is a physical, numbered unit belonging to a RoomType.
// Available=false means the room is out of service (maintenance);
// it is independent of booking state.
type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber string `gorm:"column:room_number;uniqueIndex;size:50" json:"room_number"`
	RoomTypeID uint   `gorm:"column:room_type_id;index" json:"room_type_id"`
	Floor      string `gorm:"size:10" json:"floor,omitempty"`
	Available  bool   `json:"available"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
}
